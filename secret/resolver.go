package secret

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/jonwraymond/credentials/cache"
	"github.com/jonwraymond/credentials/observe"
	"github.com/jonwraymond/credentials/secretfile"
)

// Config configures a Resolver.
type Config struct {
	// Secretfile loads the name mapping. It is called once, on first use.
	// Default: secretfile.Discover in the working directory.
	Secretfile func() (*secretfile.Secretfile, error)

	// Lookup reads environment variables, for the environment backend and
	// Secretfile interpolation. Default: os.LookupEnv
	Lookup LookupFunc

	// AllowOverride lets a set environment variable take precedence over the
	// name's Secretfile entry.
	AllowOverride bool

	// Vault builds the Vault backend. It is called once, the first time a
	// Vault locator is resolved. Nil makes Vault locators fail with
	// ErrVaultUnavailable.
	Vault func() (VaultBackend, error)

	// Middleware instruments each fetch. Default: none.
	Middleware *observe.Middleware
}

// Resolver maps names to values through the Secretfile, the environment and
// Vault.
//
// Contract:
//   - Concurrency: Resolve is safe for concurrent use.
//   - Each name is fetched at most once; the value or error is kept.
//   - The Secretfile is loaded once; a load error is returned to every caller.
//   - Context: a caller whose ctx ends gets ctx.Err() and the fetch continues
//     for the other callers.
type Resolver struct {
	env           *EnvProvider
	lookup        LookupFunc
	allowOverride bool

	secretfile func() (*secretfile.Secretfile, error)
	vault      func() (VaultBackend, error)

	values *cache.Memo[string]
	fetch  observe.ResolveFunc
}

// NewResolver creates a Resolver.
func NewResolver(cfg Config) *Resolver {
	lookup := cfg.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}

	load := cfg.Secretfile
	if load == nil {
		load = func() (*secretfile.Secretfile, error) {
			return secretfile.Discover("", secretfile.LookupFunc(lookup))
		}
	}

	newVault := cfg.Vault
	if newVault == nil {
		newVault = func() (VaultBackend, error) { return nil, ErrVaultUnavailable }
	}

	r := &Resolver{
		env:           NewEnvProvider(lookup),
		lookup:        lookup,
		allowOverride: cfg.AllowOverride,
		secretfile:    sync.OnceValues(load),
		vault:         sync.OnceValues(newVault),
		values:        cache.NewMemo[string](nil),
	}

	r.fetch = r.fetchOne
	if cfg.Middleware != nil {
		r.fetch = cfg.Middleware.Wrap(r.fetchOne)
	}
	return r
}

// Resolve returns the value of name.
func (r *Resolver) Resolve(ctx context.Context, name string) (string, error) {
	if err := cache.ValidateKey(name); err != nil {
		return "", fmt.Errorf("%w %q: %w", ErrInvalidName, name, err)
	}

	sf, err := r.secretfile()
	if err != nil {
		return "", err
	}

	return r.values.Do(ctx, name, func(ctx context.Context) (string, error) {
		loc := r.locate(sf, name)
		return r.fetch(ctx, observe.CredentialMeta{
			Name:    name,
			Backend: loc.Kind.String(),
			Path:    loc.Path,
			Key:     loc.Key,
		})
	})
}

// Locate reports where name would be resolved from.
func (r *Resolver) Locate(name string) (secretfile.Locator, error) {
	sf, err := r.secretfile()
	if err != nil {
		return secretfile.Locator{}, err
	}
	return r.locate(sf, name), nil
}

// Secretfile returns the loaded Secretfile, loading it on first use.
func (r *Resolver) Secretfile() (*secretfile.Secretfile, error) {
	return r.secretfile()
}

// Vault returns the Vault backend, building it on first use.
func (r *Resolver) Vault() (VaultBackend, error) {
	return r.vault()
}

func (r *Resolver) locate(sf *secretfile.Secretfile, name string) secretfile.Locator {
	loc, ok := sf.Lookup(name)
	if !ok {
		return secretfile.Locator{Kind: secretfile.KindEnvironment}
	}
	if r.allowOverride {
		if _, set := r.lookup(name); set {
			return secretfile.Locator{Kind: secretfile.KindEnvironment}
		}
	}
	return loc
}

func (r *Resolver) fetchOne(ctx context.Context, meta observe.CredentialMeta) (string, error) {
	if meta.Backend != secretfile.KindVault.String() {
		return r.env.Resolve(meta.Name)
	}
	backend, err := r.vault()
	if err != nil {
		return "", err
	}
	return backend.Resolve(ctx, meta.Path, meta.Key)
}
