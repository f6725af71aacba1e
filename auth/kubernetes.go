package auth

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jonwraymond/credentials/observe"
)

// DefaultServiceAccountTokenPath is where Kubernetes mounts the pod's
// service account token.
const DefaultServiceAccountTokenPath = "/var/run/secrets/kubernetes.io/serviceaccount/token"

// DefaultKubernetesMount is the default mount path of the Kubernetes auth method.
const DefaultKubernetesMount = "kubernetes"

// LoginClient performs a Vault login.
//
// Login POSTs payload to /v1/auth/{mount}/login and returns auth.client_token.
// A non-2xx response is a *LoginError; a response without a client token is
// ErrMalformedAuthResponse.
type LoginClient interface {
	Login(ctx context.Context, mount string, payload map[string]any) (string, error)
}

// KubernetesConfig configures the Kubernetes login.
type KubernetesConfig struct {
	// Role is the Vault role to log in as (required).
	Role string

	// MountPath is the auth method mount.
	// Default: DefaultKubernetesMount
	MountPath string

	// TokenPath is the service account JWT file.
	// Default: DefaultServiceAccountTokenPath
	TokenPath string

	// ReadFile reads TokenPath. Default: os.ReadFile
	ReadFile func(path string) ([]byte, error)

	// Logger receives one line per login. Default: no-op.
	Logger observe.Logger
}

// KubernetesAuthenticator exchanges the service account JWT for a client token.
type KubernetesAuthenticator struct {
	config KubernetesConfig
	login  LoginClient
}

// NewKubernetesAuthenticator creates a KubernetesAuthenticator.
func NewKubernetesAuthenticator(config KubernetesConfig, login LoginClient) (*KubernetesAuthenticator, error) {
	if strings.TrimSpace(config.Role) == "" {
		return nil, fmt.Errorf("%w: %s is empty", ErrMissingToken, EnvKubernetesRole)
	}
	if login == nil {
		return nil, ErrNilLoginClient
	}
	if config.MountPath == "" {
		config.MountPath = DefaultKubernetesMount
	}
	config.MountPath = strings.Trim(config.MountPath, "/")
	if config.TokenPath == "" {
		config.TokenPath = DefaultServiceAccountTokenPath
	}
	if config.ReadFile == nil {
		config.ReadFile = os.ReadFile
	}
	if config.Logger == nil {
		config.Logger = observe.NoopLogger()
	}
	return &KubernetesAuthenticator{config: config, login: login}, nil
}

// Name returns "kubernetes".
func (a *KubernetesAuthenticator) Name() string { return string(MethodKubernetes) }

// Authenticate reads the service account token and logs in.
//
// A token file that cannot be read is returned as the underlying error
// (usually *fs.PathError).
func (a *KubernetesAuthenticator) Authenticate(ctx context.Context) (*Session, error) {
	raw, err := a.config.ReadFile(a.config.TokenPath)
	if err != nil {
		return nil, err
	}
	jwt := strings.TrimSpace(string(raw))
	if jwt == "" {
		return nil, fmt.Errorf("%w: %s is empty", ErrMissingToken, a.config.TokenPath)
	}

	fields := []observe.Field{
		{Key: "auth.mount", Value: a.config.MountPath},
		{Key: "auth.role", Value: a.config.Role},
	}
	identity, err := IdentityFromJWT(jwt)
	if err != nil {
		// Vault is the authority on the token; an unreadable claim set is
		// only a logging gap.
		a.config.Logger.Warn(ctx, "service account token claims unreadable", observe.Field{Key: "error", Value: err.Error()})
	} else {
		fields = append(fields,
			observe.Field{Key: "auth.namespace", Value: identity.Namespace},
			observe.Field{Key: "auth.service_account", Value: identity.ServiceAccount},
		)
		if identity.IsExpired() {
			a.config.Logger.Warn(ctx, "service account token is expired", fields...)
		}
	}

	token, err := a.login.Login(ctx, a.config.MountPath, map[string]any{
		"role": a.config.Role,
		"jwt":  jwt,
	})
	if err != nil {
		a.config.Logger.Error(ctx, "vault kubernetes login failed", append(fields, observe.Field{Key: "error", Value: err.Error()})...)
		return nil, err
	}
	if token == "" {
		return nil, ErrMalformedAuthResponse
	}

	a.config.Logger.Info(ctx, "vault kubernetes login succeeded", fields...)
	return &Session{
		Token:      token,
		Method:     MethodKubernetes,
		ObtainedAt: time.Now(),
		Identity:   identity,
	}, nil
}

var _ Authenticator = (*KubernetesAuthenticator)(nil)
