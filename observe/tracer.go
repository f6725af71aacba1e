package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// CredentialMeta identifies a credential resolution for telemetry.
// It never carries the resolved value.
type CredentialMeta struct {
	Name    string // logical name (required)
	Backend string // "env" or "vault"
	Path    string // Vault path; empty for env
	Key     string // Vault field key; empty for env
}

// BackendName returns Backend, or "env" when it is empty.
func (m CredentialMeta) BackendName() string {
	if m.Backend == "" {
		return "env"
	}
	return m.Backend
}

// SpanName returns the span name for this resolution.
// Format: credentials.resolve.<backend>
func (m CredentialMeta) SpanName() string {
	return "credentials.resolve." + m.BackendName()
}

// Tracer starts and ends resolution spans.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: EndSpan must be best-effort and must not panic.
type Tracer interface {
	StartSpan(ctx context.Context, meta CredentialMeta) (context.Context, trace.Span)
	EndSpan(span trace.Span, err error)
}

type tracerImpl struct {
	tracer trace.Tracer
}

func newTracer(t trace.Tracer) Tracer {
	return &tracerImpl{tracer: t}
}

func (t *tracerImpl) StartSpan(ctx context.Context, meta CredentialMeta) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{
		attribute.String("credential.name", meta.Name),
		attribute.String("credential.backend", meta.BackendName()),
		attribute.Bool("credential.error", false),
	}
	if meta.Path != "" {
		attrs = append(attrs, attribute.String("credential.path", meta.Path))
	}
	if meta.Key != "" {
		attrs = append(attrs, attribute.String("credential.key", meta.Key))
	}

	return t.tracer.Start(ctx, meta.SpanName(),
		trace.WithAttributes(attrs...),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

func (t *tracerImpl) EndSpan(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.Bool("credential.error", true))
		span.RecordError(err)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
