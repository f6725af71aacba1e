package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, env map[string]string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cfg := &cliConfig{lookup: func(name string) (string, bool) {
		v, ok := env[name]
		return v, ok
	}}
	root := newRootCommand(cfg)

	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func writeSecretfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Secretfile")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func fakeVault(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/v1/sys/health" {
			_ = json.NewEncoder(w).Encode(map[string]any{"initialized": true, "sealed": false, "version": "1.15.0"})
			return
		}
		if r.Header.Get("X-Vault-Token") != "s.cli" {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"errors":["permission denied"]}`))
			return
		}
		switch r.URL.Path {
		case "/v1/secret/example":
			_, _ = w.Write([]byte(`{"data":{"username":"alice","port":5432}}`))
		case "/v1/auth/token/lookup-self":
			_, _ = w.Write([]byte(`{"data":{"id":"s.cli"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"errors":[]}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGetCommand(t *testing.T) {
	srv := fakeVault(t)
	sf := writeSecretfile(t, "DB_USER secret/example:username\nDB_PORT secret/example:port\n")
	env := map[string]string{"VAULT_ADDR": srv.URL, "VAULT_TOKEN": "s.cli", "LOG_LEVEL": "debug"}

	out, _, err := runCLI(t, env, "--secretfile", sf, "get", "DB_USER", "DB_PORT", "LOG_LEVEL")
	require.NoError(t, err)
	assert.Equal(t, "DB_USER=alice\nDB_PORT=5432\nLOG_LEVEL=debug\n", out)
}

func TestGetCommand_StopsAtFirstFailure(t *testing.T) {
	sf := writeSecretfile(t, "")
	env := map[string]string{"A": "a", "C": "c"}

	out, _, err := runCLI(t, env, "--secretfile", sf, "get", "A", "B", "C")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "B")
	assert.Equal(t, "A=a\n", out)
}

func TestGetCommand_RequiresName(t *testing.T) {
	_, _, err := runCLI(t, nil, "get")
	assert.Error(t, err)
}

func TestGetCommand_AllowOverride(t *testing.T) {
	sf := writeSecretfile(t, "DB_USER secret/example:username\n")
	env := map[string]string{"DB_USER": "local"}

	out, _, err := runCLI(t, env, "--secretfile", sf, "--allow-override", "get", "DB_USER")
	require.NoError(t, err)
	assert.Equal(t, "DB_USER=local\n", out)
}

func TestGetCommand_LogsToStderrWithoutValue(t *testing.T) {
	sf := writeSecretfile(t, "")
	env := map[string]string{"API_KEY": "s3cr3t"}

	out, logs, err := runCLI(t, env, "--secretfile", sf, "--log-level", "info", "get", "API_KEY")
	require.NoError(t, err)
	assert.Equal(t, "API_KEY=s3cr3t\n", out)
	assert.Contains(t, logs, "credential resolved")
	assert.NotContains(t, logs, "s3cr3t")
}

func TestGetCommand_InvalidLogLevel(t *testing.T) {
	_, _, err := runCLI(t, nil, "--log-level", "loud", "get", "A")
	assert.Error(t, err)
}

func TestFileCommand(t *testing.T) {
	sf := writeSecretfile(t, "")
	dest := filepath.Join(t.TempDir(), "token")

	_, _, err := runCLI(t, map[string]string{"TOKEN": "abc"}, "--secretfile", sf, "file", "TOKEN", dest)
	require.NoError(t, err)

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))

	_, _, err = runCLI(t, nil, "file", "ONLY_NAME")
	assert.Error(t, err)
}

func TestCheckCommand(t *testing.T) {
	srv := fakeVault(t)
	sf := writeSecretfile(t, "DB_USER secret/example:username\n")

	out, _, err := runCLI(t, map[string]string{"VAULT_ADDR": srv.URL, "VAULT_TOKEN": "s.cli"}, "--secretfile", sf, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "secretfile")
	assert.Contains(t, out, "vault")
	assert.Equal(t, 2, strings.Count(out, "healthy"))

	out, _, err = runCLI(t, map[string]string{"VAULT_ADDR": srv.URL, "VAULT_TOKEN": "s.wrong"}, "--secretfile", sf, "check", "--json")
	require.ErrorIs(t, err, errCheckFailed)

	var report struct {
		Status string `json:"status"`
		Checks []struct {
			Name   string `json:"name"`
			Status string `json:"status"`
		} `json:"checks"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "unhealthy", report.Status)
	require.Len(t, report.Checks, 2)
	assert.Equal(t, "vault", report.Checks[1].Name)
	assert.Equal(t, "unhealthy", report.Checks[1].Status)
}

func TestCheckCommand_ParseError(t *testing.T) {
	sf := writeSecretfile(t, "BROKEN no-colon\n")

	out, _, err := runCLI(t, nil, "--secretfile", sf, "check")
	require.ErrorIs(t, err, errCheckFailed)
	assert.Contains(t, out, "unhealthy")
}

func TestGetCommand_StdoutTelemetryGoesToStderr(t *testing.T) {
	sf := writeSecretfile(t, "")
	env := map[string]string{"API_KEY": "k"}

	out, telemetry, err := runCLI(t, env, "--secretfile", sf, "--traces", "stdout", "--metrics", "stdout", "get", "API_KEY")
	require.NoError(t, err)
	assert.Equal(t, "API_KEY=k\n", out)
	assert.Contains(t, telemetry, "credentials.resolve.env")
}
