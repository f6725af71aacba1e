package resilience

import (
	"context"
	"time"
)

// Executor composes a bulkhead and a timeout.
type Executor struct {
	bulkhead *Bulkhead
	timeout  *Timeout
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// NewExecutor creates a new executor. With no options it runs op directly.
func NewExecutor(opts ...ExecutorOption) *Executor {
	e := &Executor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// WithBulkhead limits concurrency.
func WithBulkhead(b *Bulkhead) ExecutorOption {
	return func(e *Executor) {
		e.bulkhead = b
	}
}

// WithTimeout sets a per-call deadline.
func WithTimeout(timeout time.Duration) ExecutorOption {
	return func(e *Executor) {
		e.timeout = NewTimeout(TimeoutConfig{Timeout: timeout})
	}
}

// Execute runs op through the configured patterns.
//
// The timeout is outermost so that time spent waiting for a bulkhead slot
// counts against the deadline.
func (e *Executor) Execute(ctx context.Context, op func(context.Context) error) error {
	execute := op

	if e.bulkhead != nil {
		inner := execute
		execute = func(ctx context.Context) error {
			return e.bulkhead.Execute(ctx, inner)
		}
	}

	if e.timeout != nil {
		inner := execute
		execute = func(ctx context.Context) error {
			return e.timeout.Execute(ctx, inner)
		}
	}

	return execute(ctx)
}

// Do runs op through e and returns its result.
// A nil Executor runs op directly.
func Do[T any](ctx context.Context, e *Executor, op func(context.Context) (T, error)) (T, error) {
	if e == nil {
		return op(ctx)
	}
	var out T
	err := e.Execute(ctx, func(ctx context.Context) error {
		var err error
		out, err = op(ctx)
		return err
	})
	return out, err
}
