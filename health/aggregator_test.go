package health

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func fixed(name string, r Result) Checker {
	return NewCheckerFunc(name, func(context.Context) Result { return r })
}

func TestNewAggregator_Defaults(t *testing.T) {
	agg := NewAggregator()
	if agg.config.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", agg.config.Timeout, DefaultTimeout)
	}
	if agg.config.Sequential {
		t.Error("Sequential should default to false")
	}
}

func TestAggregator_RegisterKeepsOrder(t *testing.T) {
	agg := NewAggregator()
	agg.Register(fixed("secretfile", Healthy("")), fixed("vault", Healthy("")), nil)
	agg.Register(fixed("secretfile", Degraded("replaced")))

	names := agg.Names()
	if strings.Join(names, ",") != "secretfile,vault" {
		t.Fatalf("Names() = %v", names)
	}

	report := agg.Run(context.Background())
	if report.Results[0].Message != "replaced" {
		t.Errorf("replaced checker not used: %+v", report.Results[0])
	}
}

func TestAggregator_Run(t *testing.T) {
	tests := []struct {
		name    string
		results []Result
		want    Status
	}{
		{"none", nil, StatusHealthy},
		{"all healthy", []Result{Healthy("a"), Healthy("b")}, StatusHealthy},
		{"one degraded", []Result{Healthy("a"), Degraded("b")}, StatusDegraded},
		{"one unhealthy", []Result{Degraded("a"), Unhealthy("b", nil), Healthy("c")}, StatusUnhealthy},
	}

	for _, tt := range tests {
		for _, sequential := range []bool{false, true} {
			agg := NewAggregator(AggregatorConfig{Sequential: sequential})
			for i, r := range tt.results {
				agg.Register(fixed(string(rune('a'+i)), r))
			}

			report := agg.Run(context.Background())
			if report.Status != tt.want {
				t.Errorf("%s (sequential=%v): Status = %v, want %v", tt.name, sequential, report.Status, tt.want)
			}
			if len(report.Results) != len(tt.results) {
				t.Fatalf("%s: %d results, want %d", tt.name, len(report.Results), len(tt.results))
			}
			for i, nr := range report.Results {
				if nr.Name != string(rune('a'+i)) {
					t.Errorf("%s: result %d name = %q", tt.name, i, nr.Name)
				}
			}
		}
	}
}

func TestAggregator_Timeout(t *testing.T) {
	agg := NewAggregator(AggregatorConfig{Timeout: 20 * time.Millisecond})
	agg.Register(NewCheckerFunc("slow", func(ctx context.Context) Result {
		<-ctx.Done()
		time.Sleep(50 * time.Millisecond)
		return Healthy("late")
	}))

	report := agg.Run(context.Background())
	if report.Status != StatusUnhealthy {
		t.Fatalf("Status = %v, want unhealthy", report.Status)
	}
	if !errors.Is(report.Results[0].Error, ErrCheckTimeout) {
		t.Errorf("Error = %v, want ErrCheckTimeout", report.Results[0].Error)
	}
}

func TestReport_Failed(t *testing.T) {
	report := Report{Results: []NamedResult{
		{Name: "secretfile", Result: Healthy("ok")},
		{Name: "vault", Result: Unhealthy("down", errors.New("connection refused"))},
	}}
	err := report.Failed()
	if err == nil || err.Error() != "vault: connection refused" {
		t.Fatalf("Failed() = %v", err)
	}

	if err := (Report{}).Failed(); err != nil {
		t.Fatalf("empty Failed() = %v, want nil", err)
	}
}
