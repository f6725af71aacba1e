package credentials

import (
	"context"
	"os"

	"github.com/jonwraymond/credentials/auth"
	"github.com/jonwraymond/credentials/health"
	"github.com/jonwraymond/credentials/observe"
	"github.com/jonwraymond/credentials/secret"
	"github.com/jonwraymond/credentials/secretfile"
	"github.com/jonwraymond/credentials/vault"
)

// Client resolves credentials.
//
// Contract:
//   - Concurrency: safe for concurrent use.
//   - Each name is fetched at most once. Values and errors are kept for the
//     life of the Client; there is no refresh.
//   - Nothing is read or dialed until the first Var or File call.
type Client struct {
	resolver *secret.Resolver
	opts     options
	logger   observe.Logger
}

// vaultStack is the Vault backend together with the client it reads through,
// kept for health checks.
type vaultStack struct {
	*vault.Backend
	client *vault.Client
}

// New creates a Client.
func New(opts ...Option) (*Client, error) {
	o := options{lookup: os.LookupEnv}
	for _, opt := range opts {
		opt(&o)
	}
	if o.lookup == nil {
		o.lookup = os.LookupEnv
	}

	c := &Client{opts: o, logger: observe.NoopLogger()}

	var mw *observe.Middleware
	if o.observer != nil {
		var err error
		if mw, err = observe.MiddlewareFromObserver(o.observer); err != nil {
			return nil, err
		}
		c.logger = o.observer.Logger()
	}

	c.resolver = secret.NewResolver(secret.Config{
		Secretfile:    c.loadSecretfile,
		Lookup:        o.lookup,
		AllowOverride: o.allowOverride,
		Vault:         c.newVault,
		Middleware:    mw,
	})
	return c, nil
}

// Var returns the value of the credential name.
func (c *Client) Var(ctx context.Context, name string) (string, error) {
	v, err := c.resolver.Resolve(ctx, name)
	if err != nil {
		return "", &Error{Op: "var", Name: name, Err: err}
	}
	return v, nil
}

// File resolves name and writes its value to path with mode 0666 before
// umask, replacing any existing content.
func (c *Client) File(ctx context.Context, name, path string) error {
	v, err := c.resolver.Resolve(ctx, name)
	if err != nil {
		return &Error{Op: "file", Name: name, Err: err}
	}
	if err := os.WriteFile(path, []byte(v), 0o666); err != nil {
		return &Error{Op: "file", Name: name, Err: err}
	}
	return nil
}

// Secretfile returns the Secretfile in use, loading it on first call.
func (c *Client) Secretfile() (*secretfile.Secretfile, error) {
	return c.resolver.Secretfile()
}

// Locate reports where name would be resolved from.
func (c *Client) Locate(name string) (secretfile.Locator, error) {
	return c.resolver.Locate(name)
}

// Checkers returns health checkers for the credential sources: the
// Secretfile always, and Vault when the Secretfile references it.
func (c *Client) Checkers() []health.Checker {
	checkers := []health.Checker{health.SecretfileChecker(c.resolver.Secretfile)}

	sf, err := c.resolver.Secretfile()
	if err != nil || len(sf.VaultPaths()) == 0 {
		return checkers
	}

	return append(checkers, health.NewCheckerFunc("vault", func(ctx context.Context) health.Result {
		backend, err := c.resolver.Vault()
		if err != nil {
			return health.Unhealthy("vault is not configured", err)
		}
		v := backend.(*vaultStack)
		return health.VaultChecker(health.VaultCheckerConfig{
			Server:  v.client,
			Session: v.Backend,
			Token:   v.client,
		}).Check(ctx)
	}))
}

func (c *Client) loadSecretfile() (*secretfile.Secretfile, error) {
	lookup := secretfile.LookupFunc(c.opts.lookup)
	switch {
	case c.opts.secretfile != nil:
		return c.opts.secretfile, nil
	case c.opts.secretfilePath != "":
		return secretfile.Load(c.opts.secretfilePath, lookup)
	default:
		return secretfile.Discover("", lookup)
	}
}

func (c *Client) newVault() (secret.VaultBackend, error) {
	var cfg vault.Config
	if c.opts.vaultConfig != nil {
		cfg = *c.opts.vaultConfig
	} else {
		var err error
		if cfg, err = vault.ConfigFromEnv(c.opts.lookup); err != nil {
			return nil, err
		}
	}

	client, err := vault.NewClient(cfg)
	if err != nil {
		return nil, err
	}

	a := c.opts.authenticator
	if a == nil {
		authCfg := auth.ConfigFromEnv(c.opts.lookup)
		authCfg.Logger = c.logger
		if a, err = auth.FromEnv(authCfg, client); err != nil {
			return nil, err
		}
	}

	c.logger.Debug(context.Background(), "vault backend ready",
		observe.Field{Key: "vault.addr", Value: client.Address()},
		observe.Field{Key: "auth.method", Value: a.Name()})

	return &vaultStack{
		Backend: vault.NewBackend(client, a, vault.WithLogger(c.logger)),
		client:  client,
	}, nil
}
