package resilience

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// DefaultTimeout is used when TimeoutConfig.Timeout is not positive.
const DefaultTimeout = 30 * time.Second

// TimeoutConfig configures the timeout wrapper.
type TimeoutConfig struct {
	// Timeout is the maximum duration for the operation.
	// Default: DefaultTimeout
	Timeout time.Duration
}

// Timeout runs operations under a deadline.
type Timeout struct {
	config TimeoutConfig
}

// NewTimeout creates a new timeout wrapper.
func NewTimeout(config TimeoutConfig) *Timeout {
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	return &Timeout{config: config}
}

// Execute runs op with a context that expires after the configured timeout.
//
// op must honor its context; Execute waits for it to return. When the
// deadline set here fires, the returned error matches ErrTimeout and still
// wraps op's own error. A deadline or cancellation inherited from ctx is
// returned unchanged.
func (t *Timeout) Execute(ctx context.Context, op func(context.Context) error) error {
	tctx, cancel := context.WithTimeoutCause(ctx, t.config.Timeout, ErrTimeout)
	defer cancel()

	err := op(tctx)
	if err == nil {
		return nil
	}
	if ctx.Err() == nil && errors.Is(context.Cause(tctx), ErrTimeout) {
		return fmt.Errorf("%w after %s: %w", ErrTimeout, t.config.Timeout, err)
	}
	return err
}

// Config returns the timeout configuration.
func (t *Timeout) Config() TimeoutConfig {
	return t.config
}
