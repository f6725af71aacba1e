package vault

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) LookupFunc {
	return func(name string) (string, bool) {
		v, ok := env[name]
		return v, ok
	}
}

func TestConfigFromEnv(t *testing.T) {
	cfg, err := ConfigFromEnv(lookupFrom(map[string]string{
		EnvAddr:          "https://vault.example.com:8200",
		EnvNamespace:     "team-a",
		EnvClientTimeout: "45s",
		EnvMaxConcurrent: "4",
	}))
	require.NoError(t, err)
	assert.Equal(t, Config{
		Address:       "https://vault.example.com:8200",
		Namespace:     "team-a",
		Timeout:       45 * time.Second,
		MaxConcurrent: 4,
	}, cfg)
	require.NoError(t, cfg.Validate())
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	cfg, err := ConfigFromEnv(lookupFrom(nil))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.ErrorIs(t, cfg.Validate(), ErrMissingAddr)
}

func TestConfigFromEnv_TimeoutSeconds(t *testing.T) {
	cfg, err := ConfigFromEnv(lookupFrom(map[string]string{EnvClientTimeout: "10"}))
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
}

func TestConfigFromEnv_Invalid(t *testing.T) {
	for _, env := range []map[string]string{
		{EnvClientTimeout: "soon"},
		{EnvMaxConcurrent: "0"},
		{EnvMaxConcurrent: "many"},
	} {
		_, err := ConfigFromEnv(lookupFrom(env))
		assert.ErrorIs(t, err, ErrInvalidConfig, "env %v", env)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Address: "http://127.0.0.1:8200"}, false},
		{"no scheme", Config{Address: "vault:8200"}, true},
		{"bad scheme", Config{Address: "ftp://vault"}, true},
		{"no host", Config{Address: "https://"}, true},
		{"negative timeout", Config{Address: "https://v", Timeout: -time.Second}, true},
		{"negative concurrency", Config{Address: "https://v", MaxConcurrent: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
