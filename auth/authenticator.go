package auth

import (
	"context"
	"fmt"
	"time"
)

// Method indicates how a Session was obtained.
type Method string

const (
	MethodToken      Method = "token"
	MethodTokenFile  Method = "token_file"
	MethodKubernetes Method = "kubernetes"
)

// Session is an established Vault identity.
type Session struct {
	Token      string
	Method     Method
	ObtainedAt time.Time

	// Identity is set when the credential presented to Vault was a JWT.
	Identity *Identity
}

// String describes the session without its token.
func (s *Session) String() string {
	if s == nil {
		return "<nil session>"
	}
	return fmt.Sprintf("session{method=%s obtained=%s}", s.Method, s.ObtainedAt.Format(time.RFC3339))
}

// Authenticator produces a Vault session.
//
// Contract:
//   - Concurrency: implementations must be safe for concurrent use.
//   - Context: Authenticate should honor cancellation/deadlines on network calls.
//   - Errors: a missing credential source is reported as ErrMissingToken so
//     that Chain can move on to the next source.
type Authenticator interface {
	// Name identifies the strategy in logs and errors.
	Name() string

	Authenticate(ctx context.Context) (*Session, error)
}

// AuthenticatorFunc adapts a function to Authenticator.
type AuthenticatorFunc struct {
	name string
	fn   func(ctx context.Context) (*Session, error)
}

// NewAuthenticatorFunc creates an AuthenticatorFunc.
func NewAuthenticatorFunc(name string, fn func(ctx context.Context) (*Session, error)) *AuthenticatorFunc {
	return &AuthenticatorFunc{name: name, fn: fn}
}

// Name returns the authenticator name.
func (f *AuthenticatorFunc) Name() string { return f.name }

// Authenticate calls the wrapped function.
func (f *AuthenticatorFunc) Authenticate(ctx context.Context) (*Session, error) {
	return f.fn(ctx)
}

// StaticToken returns an authenticator that always yields token.
func StaticToken(token string) Authenticator {
	return NewAuthenticatorFunc(string(MethodToken), func(context.Context) (*Session, error) {
		if token == "" {
			return nil, ErrMissingToken
		}
		return &Session{Token: token, Method: MethodToken, ObtainedAt: time.Now()}, nil
	})
}

var _ Authenticator = (*AuthenticatorFunc)(nil)
