package observe

import (
	"context"
	"errors"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func findMetric(rm metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}

func sumValue(t *testing.T, rm metricdata.ResourceMetrics, name string) int64 {
	t.Helper()
	m := findMetric(rm, name)
	if m == nil {
		return 0
	}
	sum, ok := m.Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("%s: expected Sum[int64], got %T", name, m.Data)
	}
	var total int64
	for _, dp := range sum.DataPoints {
		total += dp.Value
	}
	return total
}

func newTestMetrics(t *testing.T) (*sdkmetric.ManualReader, *metricsImpl) {
	t.Helper()
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	m, err := newMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatalf("newMetrics() error = %v", err)
	}
	return reader, m
}

func TestMetrics_RecordResolution(t *testing.T) {
	reader, m := newTestMetrics(t)
	ctx := context.Background()

	m.RecordResolution(ctx, CredentialMeta{Name: "A", Backend: "vault"}, 10*time.Millisecond, nil)
	m.RecordResolution(ctx, CredentialMeta{Name: "B"}, time.Millisecond, errors.New("not found"))

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(ctx, &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}

	if got := sumValue(t, rm, MetricResolveTotal); got != 2 {
		t.Errorf("%s = %d, want 2", MetricResolveTotal, got)
	}
	if got := sumValue(t, rm, MetricResolveErrors); got != 1 {
		t.Errorf("%s = %d, want 1", MetricResolveErrors, got)
	}

	hist := findMetric(rm, MetricResolveDuration)
	if hist == nil {
		t.Fatalf("%s not found", MetricResolveDuration)
	}
	if h, ok := hist.Data.(metricdata.Histogram[float64]); !ok || len(h.DataPoints) != 2 {
		t.Errorf("%s data = %#v, want 2 data points", MetricResolveDuration, hist.Data)
	}
}
