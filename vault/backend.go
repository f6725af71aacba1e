package vault

import (
	"context"
	"strings"

	"github.com/jonwraymond/credentials/auth"
	"github.com/jonwraymond/credentials/cache"
	"github.com/jonwraymond/credentials/observe"
)

// Reader reads the data of the secret at path. *Client implements it.
type Reader interface {
	Read(ctx context.Context, token, path string) (map[string]any, error)
}

// Backend resolves path:key locators against Vault.
//
// Contract:
//   - Concurrency: safe for concurrent use.
//   - The session is established once, on first use, through auth.Once.
//   - Each path is read at most once; names that share a path see the same
//     read, which keeps the username and password of a dynamic secret paired.
//   - Read errors are memoized per path like values.
type Backend struct {
	reader  Reader
	auth    *auth.OnceAuthenticator
	secrets *cache.Memo[map[string]any]
	logger  observe.Logger
}

// BackendOption configures a Backend.
type BackendOption func(*Backend)

// WithLogger sets the logger for session and read events.
func WithLogger(l observe.Logger) BackendOption {
	return func(b *Backend) {
		if l != nil {
			b.logger = l
		}
	}
}

// NewBackend creates a Backend reading through reader with the session from a.
func NewBackend(reader Reader, a auth.Authenticator, opts ...BackendOption) *Backend {
	b := &Backend{
		reader:  reader,
		secrets: cache.NewMemo[map[string]any](nil),
		logger:  observe.NoopLogger(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.auth = auth.Once(auth.NewAuthenticatorFunc(a.Name(), func(ctx context.Context) (*auth.Session, error) {
		s, err := a.Authenticate(ctx)
		if err != nil {
			b.logger.Error(ctx, "vault authentication failed",
				observe.Field{Key: "method", Value: a.Name()},
				observe.Field{Key: "error", Value: err.Error()})
			return nil, err
		}
		fields := []observe.Field{{Key: "method", Value: string(s.Method)}}
		if s.Identity != nil {
			fields = append(fields, observe.Field{Key: "subject", Value: s.Identity.Subject})
		}
		b.logger.Info(ctx, "vault session established", fields...)
		return s, nil
	}))
	return b
}

// Authenticate establishes the session on first use and returns it.
// Later calls return the same outcome.
func (b *Backend) Authenticate(ctx context.Context) (*auth.Session, error) {
	return b.auth.Authenticate(ctx)
}

// Resolve returns the field key of the secret at path.
func (b *Backend) Resolve(ctx context.Context, path, key string) (string, error) {
	session, err := b.Authenticate(ctx)
	if err != nil {
		return "", err
	}

	path = strings.Trim(path, "/")
	data, err := b.secrets.Do(ctx, path, func(ctx context.Context) (map[string]any, error) {
		b.logger.Debug(ctx, "vault read", observe.Field{Key: "path", Value: path})
		return b.reader.Read(ctx, session.Token, path)
	})
	if err != nil {
		return "", err
	}
	return Field(data, path, key)
}
