package auth

import (
	"os"
	"strings"

	"github.com/jonwraymond/credentials/observe"
)

// Environment variables read by ConfigFromEnv and EnvTokenAuthenticator.
const (
	EnvToken               = "VAULT_TOKEN"
	EnvKubernetesRole      = "VAULT_KUBERNETES_ROLE"
	EnvKubernetesAuthPath  = "VAULT_KUBERNETES_AUTH_PATH"
	EnvKubernetesTokenPath = "VAULT_KUBERNETES_TOKEN_PATH"
)

// Config selects and configures the authentication strategy.
type Config struct {
	// KubernetesRole enables Kubernetes login when non-empty.
	KubernetesRole string

	// KubernetesMount is the auth mount. Default: DefaultKubernetesMount
	KubernetesMount string

	// KubernetesTokenPath is the service account JWT file.
	// Default: DefaultServiceAccountTokenPath
	KubernetesTokenPath string

	// TokenFile is the static token file. Default: DefaultTokenFile
	TokenFile string

	// Lookup reads VAULT_TOKEN. Default: os.LookupEnv
	Lookup LookupFunc

	// Logger is passed to the Kubernetes authenticator.
	Logger observe.Logger
}

// ConfigFromEnv reads the auth variables with lookup (os.LookupEnv if nil).
func ConfigFromEnv(lookup LookupFunc) Config {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	get := func(name string) string {
		v, _ := lookup(name)
		return strings.TrimSpace(v)
	}
	return Config{
		KubernetesRole:      get(EnvKubernetesRole),
		KubernetesMount:     get(EnvKubernetesAuthPath),
		KubernetesTokenPath: get(EnvKubernetesTokenPath),
		Lookup:              lookup,
	}
}

// UsesKubernetes reports whether cfg selects Kubernetes login.
func (c Config) UsesKubernetes() bool {
	return c.KubernetesRole != ""
}

// FromEnv builds the authenticator cfg selects, wrapped in Once.
//
// With a Kubernetes role, login is the only strategy and VAULT_TOKEN is
// ignored. Otherwise VAULT_TOKEN is tried, then the token file.
func FromEnv(cfg Config, login LoginClient) (*OnceAuthenticator, error) {
	if cfg.UsesKubernetes() {
		k8s, err := NewKubernetesAuthenticator(KubernetesConfig{
			Role:      cfg.KubernetesRole,
			MountPath: cfg.KubernetesMount,
			TokenPath: cfg.KubernetesTokenPath,
			Logger:    cfg.Logger,
		}, login)
		if err != nil {
			return nil, err
		}
		return Once(k8s), nil
	}

	return Once(Chain(
		NewEnvTokenAuthenticator(cfg.Lookup),
		NewFileTokenAuthenticator(cfg.TokenFile),
	)), nil
}
