package cache

import (
	"errors"
	"strings"
)

// MaxKeyLength is the maximum allowed length for a cache key.
const MaxKeyLength = 512

// Sentinel errors for cache operations.
var (
	ErrNilStore   = errors.New("cache: store is nil")
	ErrInvalidKey = errors.New("cache: key is invalid")
	ErrKeyTooLong = errors.New("cache: key exceeds max length")
)

// Outcome is the terminal result of a fetch: either a value or an error.
type Outcome[V any] struct {
	Value V
	Err   error
}

// Store holds terminal outcomes keyed by string.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Immutability: once a key holds an outcome, Set must not replace it.
type Store[V any] interface {
	// Get returns the outcome stored for key, if any.
	Get(key string) (Outcome[V], bool)

	// Set stores out for key unless the key already holds an outcome.
	// It reports whether out was stored.
	Set(key string, out Outcome[V]) bool

	// Len returns the number of stored outcomes.
	Len() int
}

// ValidateKey checks if a key is valid for caching.
func ValidateKey(key string) error {
	if key == "" || strings.TrimSpace(key) == "" {
		return ErrInvalidKey
	}
	if len(key) > MaxKeyLength {
		return ErrKeyTooLong
	}
	// Reject keys with newlines or carriage returns
	if strings.ContainsAny(key, "\n\r") {
		return ErrInvalidKey
	}
	return nil
}
