package auth

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
)

// LookupFunc returns the value of an environment variable and whether it is set.
type LookupFunc func(name string) (string, bool)

// DefaultTokenFile is the token file written by `vault login`.
const DefaultTokenFile = "~/.vault-token"

// EnvTokenAuthenticator reads the token from VAULT_TOKEN.
type EnvTokenAuthenticator struct {
	lookup LookupFunc
}

// NewEnvTokenAuthenticator creates an EnvTokenAuthenticator.
// A nil lookup uses os.LookupEnv.
func NewEnvTokenAuthenticator(lookup LookupFunc) *EnvTokenAuthenticator {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &EnvTokenAuthenticator{lookup: lookup}
}

// Name returns "token".
func (a *EnvTokenAuthenticator) Name() string { return string(MethodToken) }

// Authenticate returns ErrMissingToken when VAULT_TOKEN is unset or empty.
func (a *EnvTokenAuthenticator) Authenticate(context.Context) (*Session, error) {
	token, _ := a.lookup(EnvToken)
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("%w: %s is not set", ErrMissingToken, EnvToken)
	}
	return &Session{Token: token, Method: MethodToken, ObtainedAt: time.Now()}, nil
}

// FileTokenAuthenticator reads the token from a file, ~/.vault-token by default.
type FileTokenAuthenticator struct {
	path string
}

// NewFileTokenAuthenticator creates a FileTokenAuthenticator. A leading "~"
// in path is expanded to the home directory; an empty path means
// DefaultTokenFile.
func NewFileTokenAuthenticator(path string) *FileTokenAuthenticator {
	if path == "" {
		path = DefaultTokenFile
	}
	return &FileTokenAuthenticator{path: path}
}

// Name returns "token_file".
func (a *FileTokenAuthenticator) Name() string { return string(MethodTokenFile) }

// Authenticate reads and trims the token file.
//
// A missing file (or an unresolvable home directory) is ErrMissingToken.
// Any other read failure is returned as the underlying *fs.PathError.
func (a *FileTokenAuthenticator) Authenticate(context.Context) (*Session, error) {
	path, err := homedir.Expand(a.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingToken, err)
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s does not exist", ErrMissingToken, path)
	}
	if err != nil {
		return nil, err
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return nil, fmt.Errorf("%w: %s is empty", ErrMissingToken, path)
	}
	return &Session{Token: token, Method: MethodTokenFile, ObtainedAt: time.Now()}, nil
}

var (
	_ Authenticator = (*EnvTokenAuthenticator)(nil)
	_ Authenticator = (*FileTokenAuthenticator)(nil)
)
