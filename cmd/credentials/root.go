package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/jonwraymond/credentials/credentials"
	"github.com/jonwraymond/credentials/observe"
)

type cliConfig struct {
	secretfile    string
	logLevel      string
	allowOverride bool
	traces        string
	metrics       string

	// lookup replaces os.LookupEnv in tests.
	lookup func(string) (string, bool)
}

// client builds a credentials client. Logs go to stderr so stdout carries
// only resolved values.
func (c *cliConfig) client(ctx context.Context, stderr io.Writer) (*credentials.Client, func(), error) {
	opts := []credentials.Option{credentials.WithAllowOverride(c.allowOverride)}
	if c.secretfile != "" {
		opts = append(opts, credentials.WithSecretfilePath(c.secretfile))
	}
	if c.lookup != nil {
		opts = append(opts, credentials.WithLookupEnv(c.lookup))
	}

	shutdown := func() {}
	if c.logLevel != "" || c.traces != "" || c.metrics != "" {
		cfg := observe.DefaultConfig()
		cfg.Version = version
		cfg.Output = stderr
		if c.logLevel != "" {
			cfg.Logging = observe.LoggingConfig{Enabled: true, Level: c.logLevel}
		}
		if c.traces != "" {
			cfg.Tracing = observe.TracingConfig{Enabled: true, Exporter: c.traces, SamplePct: observe.MaxSamplePct}
		}
		if c.metrics != "" {
			cfg.Metrics = observe.MetricsConfig{Enabled: true, Exporter: c.metrics}
		}
		obs, err := observe.NewObserver(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		shutdown = func() { _ = obs.Shutdown(context.WithoutCancel(ctx)) }
		opts = append(opts, credentials.WithObserver(obs))
	}

	client, err := credentials.New(opts...)
	if err != nil {
		shutdown()
		return nil, nil, err
	}
	return client, shutdown, nil
}

func newRootCommand(cfg *cliConfig) *cobra.Command {
	root := &cobra.Command{
		Use:   "credentials",
		Short: "Resolve secrets from the environment or Vault",
		Long: `credentials resolves secret names through a Secretfile.

Names listed in the Secretfile as "NAME path:key" are read from Vault
(VAULT_ADDR, with VAULT_TOKEN, ~/.vault-token or VAULT_KUBERNETES_ROLE).
Other names are read from environment variables of the same name.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&cfg.secretfile, "secretfile", "", "Secretfile path (default: ./Secretfile if present)")
	root.PersistentFlags().StringVar(&cfg.logLevel, "log-level", "", "Log to stderr at this level: debug, info, warn, error")
	root.PersistentFlags().BoolVar(&cfg.allowOverride, "allow-override", false, "Let set environment variables override Secretfile entries")
	root.PersistentFlags().StringVar(&cfg.traces, "traces", "", "Export resolution spans: stdout, otlp")
	root.PersistentFlags().StringVar(&cfg.metrics, "metrics", "", "Export resolution metrics: stdout, otlp")

	root.AddCommand(
		newGetCommand(cfg),
		newFileCommand(cfg),
		newCheckCommand(cfg),
	)
	return root
}
