package auth

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingToken is returned when no token source yields a token.
	ErrMissingToken = errors.New("auth: no vault token available")

	// ErrAuthFailure matches LoginError.
	ErrAuthFailure = errors.New("auth: vault login rejected")

	// ErrMalformedAuthResponse is returned when a login response lacks
	// auth.client_token.
	ErrMalformedAuthResponse = errors.New("auth: login response has no client token")

	// ErrNilLoginClient indicates a Kubernetes authenticator without a LoginClient.
	ErrNilLoginClient = errors.New("auth: login client is nil")
)

// LoginError reports a non-2xx response to a login request.
type LoginError struct {
	Mount  string
	Status int
	// Body is the trimmed response body. Login responses carry Vault's error
	// messages, not secrets.
	Body string
}

func (e *LoginError) Error() string {
	msg := fmt.Sprintf("auth: login at auth/%s rejected with status %d", e.Mount, e.Status)
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// Is reports whether target is ErrAuthFailure.
func (e *LoginError) Is(target error) bool {
	return target == ErrAuthFailure
}
