package observe

import (
	"context"
	"time"
)

// ResolveFunc fetches one credential value.
type ResolveFunc func(ctx context.Context, meta CredentialMeta) (string, error)

// Middleware wraps resolution with tracing, metrics and logging.
//
// Contract:
//   - Concurrency: Wrap returns a ResolveFunc safe for concurrent use.
//   - Errors: errors from the wrapped function are recorded and returned unchanged.
//   - The resolved value is returned untouched and never recorded.
type Middleware struct {
	tracer  Tracer
	metrics Metrics
	logger  Logger
}

// NewMiddleware creates a Middleware from its parts.
func NewMiddleware(tracer Tracer, metrics Metrics, logger Logger) *Middleware {
	return &Middleware{
		tracer:  tracer,
		metrics: metrics,
		logger:  logger,
	}
}

// Wrap wraps fn with a span, the resolution metrics and one log line.
func (m *Middleware) Wrap(fn ResolveFunc) ResolveFunc {
	return func(ctx context.Context, meta CredentialMeta) (string, error) {
		ctx, span := m.tracer.StartSpan(ctx, meta)
		start := time.Now()

		value, err := fn(ctx, meta)

		duration := time.Since(start)
		m.tracer.EndSpan(span, err)
		m.metrics.RecordResolution(ctx, meta, duration, err)

		logger := m.logger.WithCredential(meta)
		fields := []Field{{Key: "duration_ms", Value: float64(duration.Milliseconds())}}
		if err != nil {
			fields = append(fields, Field{Key: "error", Value: err.Error()})
			logger.Error(ctx, "credential resolution failed", fields...)
		} else {
			logger.Info(ctx, "credential resolved", fields...)
		}

		return value, err
	}
}

// MiddlewareFromObserver creates a Middleware from an Observer.
func MiddlewareFromObserver(obs Observer) (*Middleware, error) {
	if obs == nil {
		return nil, ErrNilObserver
	}
	metrics, err := newMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}
	return NewMiddleware(newTracer(obs.Tracer()), metrics, obs.Logger()), nil
}
