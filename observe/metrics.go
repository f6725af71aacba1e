package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric names.
const (
	MetricResolveTotal    = "credentials.resolve.total"
	MetricResolveErrors   = "credentials.resolve.errors"
	MetricResolveDuration = "credentials.resolve.duration_ms"
)

// Metrics records resolution counters and latency.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: implementations must not panic.
type Metrics interface {
	RecordResolution(ctx context.Context, meta CredentialMeta, duration time.Duration, err error)
}

type metricsImpl struct {
	totalCount   metric.Int64Counter
	errorCount   metric.Int64Counter
	durationHist metric.Float64Histogram
}

func newMetrics(meter metric.Meter) (*metricsImpl, error) {
	totalCount, err := meter.Int64Counter(
		MetricResolveTotal,
		metric.WithDescription("Total number of credential resolutions"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		MetricResolveErrors,
		metric.WithDescription("Total number of failed credential resolutions"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		MetricResolveDuration,
		metric.WithDescription("Credential resolution duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		totalCount:   totalCount,
		errorCount:   errorCount,
		durationHist: durationHist,
	}, nil
}

// RecordResolution records one completed fetch. Memo hits are not recorded.
func (m *metricsImpl) RecordResolution(ctx context.Context, meta CredentialMeta, duration time.Duration, err error) {
	opt := metric.WithAttributes(
		attribute.String("credential.name", meta.Name),
		attribute.String("credential.backend", meta.BackendName()),
	)

	m.totalCount.Add(ctx, 1, opt)
	if err != nil {
		m.errorCount.Add(ctx, 1, opt)
	}
	m.durationHist.Record(ctx, float64(duration.Microseconds())/1000, opt)
}
