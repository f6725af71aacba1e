package observe

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"default", func(*Config) {}, nil},
		{"all enabled", func(c *Config) {
			c.Tracing = TracingConfig{Enabled: true, Exporter: "stdout", SamplePct: 1.0}
			c.Metrics = MetricsConfig{Enabled: true, Exporter: "prometheus"}
			c.Logging = LoggingConfig{Enabled: true, Level: "debug"}
		}, nil},
		{"missing service name", func(c *Config) { c.ServiceName = "" }, ErrMissingServiceName},
		{"unknown tracing exporter", func(c *Config) {
			c.Tracing = TracingConfig{Enabled: true, Exporter: "jaeger"}
		}, ErrInvalidTracingExporter},
		{"sample pct too high", func(c *Config) {
			c.Tracing = TracingConfig{Enabled: true, Exporter: "stdout", SamplePct: 1.5}
		}, ErrInvalidSamplePct},
		{"sample pct negative", func(c *Config) {
			c.Tracing = TracingConfig{Enabled: true, Exporter: "stdout", SamplePct: -0.1}
		}, ErrInvalidSamplePct},
		{"unknown metrics exporter", func(c *Config) {
			c.Metrics = MetricsConfig{Enabled: true, Exporter: "badvalue"}
		}, ErrInvalidMetricsExporter},
		{"unknown log level", func(c *Config) {
			c.Logging = LoggingConfig{Enabled: true, Level: "verbose"}
		}, ErrInvalidLogLevel},
		{"disabled subsystems are not validated", func(c *Config) {
			c.Tracing.Exporter = "bogus"
			c.Logging.Level = "bogus"
		}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewObserver_Disabled(t *testing.T) {
	obs, err := NewObserver(context.Background(), DefaultConfig())
	if err != nil {
		t.Fatalf("NewObserver() error = %v", err)
	}
	if obs.Tracer() == nil || obs.Meter() == nil || obs.Logger() == nil {
		t.Fatal("disabled observer must still return usable primitives")
	}
	if err := obs.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}

func TestNewObserver_Enabled(t *testing.T) {
	var out bytes.Buffer
	cfg := DefaultConfig()
	cfg.Output = &out
	cfg.Tracing = TracingConfig{Enabled: true, Exporter: "stdout", SamplePct: 1.0}
	cfg.Metrics = MetricsConfig{Enabled: true, Exporter: "stdout"}
	cfg.Logging = LoggingConfig{Enabled: true, Level: "info"}

	obs, err := NewObserver(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewObserver() error = %v", err)
	}

	obs.Logger().Info(context.Background(), "hello")
	if !bytes.Contains(out.Bytes(), []byte(`"msg":"hello"`)) {
		t.Errorf("log line not written to Output: %q", out.String())
	}

	if err := obs.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}

func TestNewObserver_InvalidConfig(t *testing.T) {
	_, err := NewObserver(context.Background(), Config{})
	if !errors.Is(err, ErrMissingServiceName) {
		t.Fatalf("NewObserver() error = %v, want ErrMissingServiceName", err)
	}
}

func TestNoop(t *testing.T) {
	obs := Noop()
	if obs.Logger().WithCredential(CredentialMeta{Name: "X"}) == nil {
		t.Fatal("WithCredential returned nil")
	}
	if err := obs.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}
