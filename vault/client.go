package vault

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/hashicorp/vault/api"

	"github.com/jonwraymond/credentials/auth"
	"github.com/jonwraymond/credentials/resilience"
)

// Client performs the Vault HTTP calls.
//
// Contract:
//   - Concurrency: safe for concurrent use.
//   - Errors: non-2xx is *StatusError (login: *auth.LoginError); anything that
//     prevents a response is *TransportError. Nothing is retried.
//   - Tokens are passed per call; the client holds none.
type Client struct {
	api    *api.Client
	exec   *resilience.Executor
	config Config
}

// NewClient creates a Client for cfg.
//
// TLS settings come from the standard VAULT_CACERT, VAULT_CLIENT_CERT and
// related variables, as read by api.DefaultConfig.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.MaxConcurrent == 0 {
		cfg.MaxConcurrent = DefaultMaxConcurrent
	}

	apiCfg := api.DefaultConfig()
	if apiCfg.Error != nil {
		return nil, fmt.Errorf("vault: read environment: %w", apiCfg.Error)
	}
	apiCfg.Address = cfg.Address
	apiCfg.AgentAddress = ""
	apiCfg.MaxRetries = 0
	apiCfg.Timeout = cfg.Timeout

	c, err := api.NewClient(apiCfg)
	if err != nil {
		return nil, fmt.Errorf("vault: create client: %w", err)
	}
	// NewClient picks these up from the process environment; the session
	// token and namespace are ours to supply.
	c.ClearToken()
	if cfg.Namespace != "" {
		c.SetNamespace(cfg.Namespace)
	} else {
		c.ClearNamespace()
	}

	exec := resilience.NewExecutor(
		resilience.WithBulkhead(resilience.NewBulkhead(resilience.BulkheadConfig{
			MaxConcurrent: cfg.MaxConcurrent,
			MaxWait:       cfg.Timeout,
		})),
		resilience.WithTimeout(cfg.Timeout),
	)

	return &Client{api: c, exec: exec, config: cfg}, nil
}

// Address returns the server base URL.
func (c *Client) Address() string { return c.config.Address }

// Read issues GET /v1/{path} with token and returns the secret's data.
// A 2xx response without data yields an empty map.
func (c *Client) Read(ctx context.Context, token, path string) (map[string]any, error) {
	path = strings.Trim(path, "/")
	return guarded(ctx, c, http.MethodGet, path, func(ctx context.Context) (map[string]any, error) {
		r := c.api.NewRequest(http.MethodGet, "/v1/"+path)
		r.ClientToken = token

		resp, err := c.api.RawRequestWithContext(ctx, r) //nolint:staticcheck // raw status and body are needed
		if resp != nil {
			defer resp.Body.Close()
		}
		if err != nil {
			return nil, classify(http.MethodGet, path, err)
		}

		secret, err := api.ParseSecret(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: GET %s", ErrMalformedResponse, path)
		}
		if secret == nil || secret.Data == nil {
			return map[string]any{}, nil
		}
		return secret.Data, nil
	})
}

// Login POSTs payload to /v1/auth/{mount}/login and returns auth.client_token.
// It implements auth.LoginClient.
func (c *Client) Login(ctx context.Context, mount string, payload map[string]any) (string, error) {
	mount = strings.Trim(mount, "/")
	path := "auth/" + mount + "/login"
	return guarded(ctx, c, http.MethodPost, path, func(ctx context.Context) (string, error) {
		r := c.api.NewRequest(http.MethodPost, "/v1/"+path)
		r.ClientToken = ""
		if err := r.SetJSONBody(payload); err != nil {
			return "", fmt.Errorf("vault: encode login request: %w", err)
		}

		resp, err := c.api.RawRequestWithContext(ctx, r) //nolint:staticcheck // raw status and body are needed
		if resp != nil {
			defer resp.Body.Close()
		}
		if err != nil {
			var respErr *api.ResponseError
			if errors.As(err, &respErr) {
				return "", &auth.LoginError{
					Mount:  mount,
					Status: respErr.StatusCode,
					Body:   strings.Join(respErr.Errors, "; "),
				}
			}
			return "", &TransportError{Method: http.MethodPost, Path: path, Err: err}
		}

		secret, err := api.ParseSecret(resp.Body)
		if err != nil || secret == nil || secret.Auth == nil || secret.Auth.ClientToken == "" {
			return "", auth.ErrMalformedAuthResponse
		}
		return secret.Auth.ClientToken, nil
	})
}

// Health calls sys/health. Sealed or standby servers are reported in the
// response, not as errors.
func (c *Client) Health(ctx context.Context) (*api.HealthResponse, error) {
	return guarded(ctx, c, http.MethodGet, "sys/health", func(ctx context.Context) (*api.HealthResponse, error) {
		h, err := c.api.Sys().HealthWithContext(ctx)
		if err != nil {
			return nil, classify(http.MethodGet, "sys/health", err)
		}
		return h, nil
	})
}

// LookupSelf checks that token is accepted, via auth/token/lookup-self.
func (c *Client) LookupSelf(ctx context.Context, token string) error {
	_, err := c.Read(ctx, token, "auth/token/lookup-self")
	return err
}

// guarded runs op through the client's executor. A call the executor turns
// away before op starts never reached Vault and is a *TransportError.
func guarded[T any](ctx context.Context, c *Client, method, path string, op func(context.Context) (T, error)) (T, error) {
	started := false
	out, err := resilience.Do(ctx, c.exec, func(ctx context.Context) (T, error) {
		started = true
		return op(ctx)
	})
	if err != nil && !started {
		return out, &TransportError{Method: method, Path: path, Err: err}
	}
	return out, err
}

func classify(method, path string, err error) error {
	var respErr *api.ResponseError
	if errors.As(err, &respErr) {
		return &StatusError{Method: method, Path: path, Status: respErr.StatusCode}
	}
	return &TransportError{Method: method, Path: path, Err: err}
}

var _ auth.LoginClient = (*Client)(nil)
