package vault

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvAddr          = "VAULT_ADDR"
	EnvNamespace     = "VAULT_NAMESPACE"
	EnvClientTimeout = "VAULT_CLIENT_TIMEOUT"
	EnvMaxConcurrent = "VAULT_MAX_CONCURRENT_REQUESTS"
)

// Defaults.
const (
	DefaultTimeout       = 30 * time.Second
	DefaultMaxConcurrent = 16
)

// LookupFunc returns the value of an environment variable and whether it is set.
type LookupFunc func(name string) (string, bool)

// Config configures a Client.
type Config struct {
	// Address is the server base URL, e.g. https://vault.example.com:8200.
	Address string

	// Namespace is sent as X-Vault-Namespace when set.
	Namespace string

	// Timeout bounds each request, including time queued in the bulkhead.
	// Default: DefaultTimeout
	Timeout time.Duration

	// MaxConcurrent caps in-flight requests.
	// Default: DefaultMaxConcurrent
	MaxConcurrent int
}

// DefaultConfig returns a Config with defaults and no address.
func DefaultConfig() Config {
	return Config{
		Timeout:       DefaultTimeout,
		MaxConcurrent: DefaultMaxConcurrent,
	}
}

// ConfigFromEnv reads the Vault variables with lookup (os.LookupEnv if nil).
//
// A missing VAULT_ADDR is not an error here; Validate reports it, so that
// processes that never resolve a Vault secret do not need it.
// VAULT_CLIENT_TIMEOUT accepts a Go duration ("45s") or whole seconds ("45").
func ConfigFromEnv(lookup LookupFunc) (Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	get := func(name string) string {
		v, _ := lookup(name)
		return strings.TrimSpace(v)
	}

	cfg := DefaultConfig()
	cfg.Address = get(EnvAddr)
	cfg.Namespace = get(EnvNamespace)

	if v := get(EnvClientTimeout); v != "" {
		d, err := parseSeconds(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s %q: %w", ErrInvalidConfig, EnvClientTimeout, v, err)
		}
		cfg.Timeout = d
	}

	if v := get(EnvMaxConcurrent); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("%w: %s %q: must be a positive integer", ErrInvalidConfig, EnvMaxConcurrent, v)
		}
		cfg.MaxConcurrent = n
	}

	return cfg, nil
}

func parseSeconds(v string) (time.Duration, error) {
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	return time.ParseDuration(v)
}

// Validate reports a missing or malformed address and negative limits.
// Zero Timeout and MaxConcurrent select the defaults in NewClient.
func (c Config) Validate() error {
	if c.Address == "" {
		return ErrMissingAddr
	}
	u, err := url.Parse(c.Address)
	if err != nil {
		return fmt.Errorf("%w: address %q: %w", ErrInvalidConfig, c.Address, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("%w: address %q: want http(s)://host[:port]", ErrInvalidConfig, c.Address)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout must not be negative, got %s", ErrInvalidConfig, c.Timeout)
	}
	if c.MaxConcurrent < 0 {
		return fmt.Errorf("%w: max concurrent must not be negative, got %d", ErrInvalidConfig, c.MaxConcurrent)
	}
	return nil
}
