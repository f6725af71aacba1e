package secret

import (
	"context"
	"os"
)

// LookupFunc returns the value of an environment variable and whether it is set.
type LookupFunc func(name string) (string, bool)

// EnvProvider reads secrets from environment variables of the same name.
// A variable that is set to the empty string resolves to "".
type EnvProvider struct {
	lookup LookupFunc
}

// NewEnvProvider creates an EnvProvider. A nil lookup uses os.LookupEnv.
func NewEnvProvider(lookup LookupFunc) *EnvProvider {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &EnvProvider{lookup: lookup}
}

// Resolve returns the value of the variable name.
func (p *EnvProvider) Resolve(name string) (string, error) {
	v, ok := p.lookup(name)
	if !ok {
		return "", &NotFoundError{Name: name}
	}
	return v, nil
}

// VaultBackend resolves Vault locators. *vault.Backend implements it.
//
// Implementations must be safe for concurrent use and must not log values.
type VaultBackend interface {
	Resolve(ctx context.Context, path, key string) (string, error)
}
