package credentials

import (
	"github.com/jonwraymond/credentials/auth"
	"github.com/jonwraymond/credentials/observe"
	"github.com/jonwraymond/credentials/secretfile"
	"github.com/jonwraymond/credentials/vault"
)

// Option configures a Client.
type Option func(*options)

type options struct {
	secretfile     *secretfile.Secretfile
	secretfilePath string
	lookup         func(string) (string, bool)
	allowOverride  bool
	observer       observe.Observer
	vaultConfig    *vault.Config
	authenticator  auth.Authenticator
}

// WithSecretfile uses sf instead of reading a Secretfile.
func WithSecretfile(sf *secretfile.Secretfile) Option {
	return func(o *options) { o.secretfile = sf }
}

// WithSecretfilePath reads the Secretfile at path. Unlike the default
// discovery, a missing file is an error.
func WithSecretfilePath(path string) Option {
	return func(o *options) { o.secretfilePath = path }
}

// WithLookupEnv replaces os.LookupEnv for every environment read: secret
// values, Secretfile interpolation and Vault settings.
func WithLookupEnv(lookup func(name string) (string, bool)) Option {
	return func(o *options) { o.lookup = lookup }
}

// WithAllowOverride lets a set environment variable take precedence over the
// name's Secretfile entry.
func WithAllowOverride(allow bool) Option {
	return func(o *options) { o.allowOverride = allow }
}

// WithObserver instruments resolutions with obs.
func WithObserver(obs observe.Observer) Option {
	return func(o *options) { o.observer = obs }
}

// WithVaultConfig uses cfg instead of reading VAULT_ADDR and related variables.
func WithVaultConfig(cfg vault.Config) Option {
	return func(o *options) { o.vaultConfig = &cfg }
}

// WithAuthenticator uses a instead of selecting a strategy from the environment.
func WithAuthenticator(a auth.Authenticator) Option {
	return func(o *options) { o.authenticator = a }
}
