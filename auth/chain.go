package auth

import (
	"context"
	"errors"
	"strings"
)

// ChainAuthenticator tries authenticators in order.
//
// It moves to the next authenticator only when the current one reports
// ErrMissingToken; any other error stops the chain. If every source is
// missing, the returned error matches ErrMissingToken and names each source.
type ChainAuthenticator struct {
	auths []Authenticator
}

// Chain creates a ChainAuthenticator.
func Chain(auths ...Authenticator) *ChainAuthenticator {
	return &ChainAuthenticator{auths: auths}
}

// Name lists the chained strategies, e.g. "token,token_file".
func (c *ChainAuthenticator) Name() string {
	names := make([]string, len(c.auths))
	for i, a := range c.auths {
		names[i] = a.Name()
	}
	return strings.Join(names, ",")
}

// Authenticate returns the first session obtained.
func (c *ChainAuthenticator) Authenticate(ctx context.Context) (*Session, error) {
	if len(c.auths) == 0 {
		return nil, ErrMissingToken
	}

	var missing []error
	for _, a := range c.auths {
		session, err := a.Authenticate(ctx)
		if err == nil {
			return session, nil
		}
		if !errors.Is(err, ErrMissingToken) {
			return nil, err
		}
		missing = append(missing, err)
	}
	return nil, errors.Join(missing...)
}

var _ Authenticator = (*ChainAuthenticator)(nil)
