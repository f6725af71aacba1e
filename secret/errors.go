package secret

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound matches NotFoundError.
	ErrNotFound = errors.New("secret: not found")

	// ErrInvalidName is returned for names that are empty, blank, too long or
	// contain line breaks.
	ErrInvalidName = errors.New("secret: invalid name")

	// ErrVaultUnavailable is returned when a name maps to Vault and the
	// Resolver has no Vault backend.
	ErrVaultUnavailable = errors.New("secret: vault backend is not configured")
)

// NotFoundError reports a name with no Secretfile entry whose environment
// variable is unset.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("secret: environment variable %s is not set", e.Name)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
