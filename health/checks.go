package health

import (
	"context"

	"github.com/hashicorp/vault/api"

	"github.com/jonwraymond/credentials/auth"
	"github.com/jonwraymond/credentials/secretfile"
)

// SecretfileChecker reports whether load returns a Secretfile.
// load is usually a memoized loader, so a parse error found at startup keeps
// the check unhealthy for the life of the process.
func SecretfileChecker(load func() (*secretfile.Secretfile, error)) Checker {
	return NewCheckerFunc("secretfile", func(context.Context) Result {
		sf, err := load()
		if err != nil {
			return Unhealthy("secretfile cannot be loaded", err)
		}
		return Healthy("secretfile parsed").WithDetails(map[string]any{
			"entries":     sf.Len(),
			"vault_paths": len(sf.VaultPaths()),
		})
	})
}

// ServerProbe reports Vault's server state. *vault.Client implements it.
type ServerProbe interface {
	Health(ctx context.Context) (*api.HealthResponse, error)
}

// SessionProbe establishes the Vault session. *vault.Backend implements it.
type SessionProbe interface {
	Authenticate(ctx context.Context) (*auth.Session, error)
}

// TokenProbe checks that Vault accepts a token. *vault.Client implements it.
type TokenProbe interface {
	LookupSelf(ctx context.Context, token string) error
}

// VaultCheckerConfig configures VaultChecker.
type VaultCheckerConfig struct {
	// Server is required.
	Server ServerProbe

	// Session, when set, is asked for the session after the server check.
	Session SessionProbe

	// Token, when set with Session, verifies the session token. A static
	// token is otherwise never checked before the first read.
	Token TokenProbe
}

// VaultChecker reports whether Vault is reachable, initialized, unsealed and
// accepts the session. A standby node is reported as degraded.
func VaultChecker(cfg VaultCheckerConfig) Checker {
	return NewCheckerFunc("vault", func(ctx context.Context) Result {
		h, err := cfg.Server.Health(ctx)
		if err != nil {
			return Unhealthy("vault unreachable", err)
		}
		details := map[string]any{
			"version":      h.Version,
			"cluster_name": h.ClusterName,
			"standby":      h.Standby,
		}
		switch {
		case !h.Initialized:
			return Unhealthy("vault is not initialized", ErrVaultNotInitialized).WithDetails(details)
		case h.Sealed:
			return Unhealthy("vault is sealed", ErrVaultSealed).WithDetails(details)
		}

		if cfg.Session != nil {
			s, err := cfg.Session.Authenticate(ctx)
			if err != nil {
				return Unhealthy("vault authentication failed", err).WithDetails(details)
			}
			details["auth_method"] = string(s.Method)

			if cfg.Token != nil {
				if err := cfg.Token.LookupSelf(ctx, s.Token); err != nil {
					return Unhealthy("vault rejected the session token", err).WithDetails(details)
				}
			}
		}

		if h.Standby {
			return Degraded("vault node is in standby").WithDetails(details)
		}
		return Healthy("vault reachable").WithDetails(details)
	})
}
