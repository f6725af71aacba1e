package auth

import (
	"context"

	"github.com/jonwraymond/credentials/cache"
)

// OnceAuthenticator runs its inner authenticator at most once.
//
// Concurrent first callers share one attempt. The outcome, session or error,
// is kept for the life of the value: there is no refresh and no retry.
type OnceAuthenticator struct {
	inner Authenticator
	memo  *cache.Memo[*Session]
}

// Once wraps a. Wrapping an OnceAuthenticator returns it unchanged.
func Once(a Authenticator) *OnceAuthenticator {
	if o, ok := a.(*OnceAuthenticator); ok {
		return o
	}
	return &OnceAuthenticator{inner: a, memo: cache.NewMemo[*Session](nil)}
}

// Name returns the inner authenticator's name.
func (o *OnceAuthenticator) Name() string { return o.inner.Name() }

// Authenticate returns the memoized session, authenticating on first use.
// A caller whose ctx ends first gets ctx.Err(); the attempt continues for
// the others.
func (o *OnceAuthenticator) Authenticate(ctx context.Context) (*Session, error) {
	return o.memo.Do(ctx, "session", o.inner.Authenticate)
}

// Done reports whether an attempt has completed.
func (o *OnceAuthenticator) Done() bool {
	_, ok := o.memo.Peek("session")
	return ok
}

var _ Authenticator = (*OnceAuthenticator)(nil)
