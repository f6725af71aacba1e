package resilience

import "errors"

var (
	// ErrBulkheadFull is returned when no slot frees up within MaxWait.
	ErrBulkheadFull = errors.New("resilience: bulkhead at capacity")

	// ErrTimeout is returned when an operation exceeds its Timeout.
	ErrTimeout = errors.New("resilience: operation timed out")
)
