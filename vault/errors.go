package vault

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig matches every configuration error.
	ErrInvalidConfig = errors.New("vault: invalid configuration")

	// ErrMissingAddr is returned when no Vault address is configured.
	// It matches ErrInvalidConfig.
	ErrMissingAddr = fmt.Errorf("%w: VAULT_ADDR is not set", ErrInvalidConfig)

	// ErrVault matches StatusError and ErrMalformedResponse.
	ErrVault = errors.New("vault: request failed")

	// ErrMalformedResponse is returned for a 2xx response whose body is not a
	// Vault secret. It matches ErrVault.
	ErrMalformedResponse = fmt.Errorf("%w: malformed response", ErrVault)

	// ErrTransport matches TransportError.
	ErrTransport = errors.New("vault: transport failure")

	// ErrKeyNotFound matches KeyNotFoundError.
	ErrKeyNotFound = errors.New("vault: key not found")
)

// StatusError reports a non-2xx response. The response body is withheld.
type StatusError struct {
	Method string
	Path   string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("vault: %s %s: unexpected status %d", e.Method, e.Path, e.Status)
}

// Is reports whether target is ErrVault.
func (e *StatusError) Is(target error) bool {
	return target == ErrVault
}

// TransportError reports a failure to reach Vault: connection, TLS, or timeout.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("vault: %s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Is reports whether target is ErrTransport.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// KeyNotFoundError reports a secret without the requested field.
type KeyNotFoundError struct {
	Path string
	Key  string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("vault: secret %s has no key %q", e.Path, e.Key)
}

// Is reports whether target is ErrKeyNotFound.
func (e *KeyNotFoundError) Is(target error) bool {
	return target == ErrKeyNotFound
}
