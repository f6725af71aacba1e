package credentials

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/jonwraymond/credentials/auth"
	"github.com/jonwraymond/credentials/secret"
	"github.com/jonwraymond/credentials/secretfile"
	"github.com/jonwraymond/credentials/vault"
)

// Error is returned by Var and File. It names the credential, never its value.
type Error struct {
	Op   string // "var" or "file"
	Name string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("credentials: %s %s: %v", e.Op, e.Name, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Kind classifies an error.
type Kind int

const (
	KindUnknown Kind = iota
	KindParse
	KindNotFound
	KindMissingToken
	KindAuthFailure
	KindMalformedAuthResponse
	KindKeyNotFound
	KindVault
	KindTransport
	KindIO
	KindInvalidName
	KindConfig
)

var kindNames = map[Kind]string{
	KindUnknown:               "unknown",
	KindParse:                 "parse",
	KindNotFound:              "not_found",
	KindMissingToken:          "missing_token",
	KindAuthFailure:           "auth_failure",
	KindMalformedAuthResponse: "malformed_auth_response",
	KindKeyNotFound:           "key_not_found",
	KindVault:                 "vault",
	KindTransport:             "transport",
	KindIO:                    "io",
	KindInvalidName:           "invalid_name",
	KindConfig:                "config",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// KindOf classifies err. It returns KindUnknown for nil and for errors from
// outside this module, such as context cancellation.
func KindOf(err error) Kind {
	var parseErr *secretfile.ParseError
	var pathErr *fs.PathError

	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, secret.ErrInvalidName):
		return KindInvalidName
	case errors.As(err, &parseErr),
		errors.Is(err, secretfile.ErrMalformedLocator),
		errors.Is(err, secretfile.ErrUndefinedVariable):
		return KindParse
	case errors.Is(err, secret.ErrNotFound):
		return KindNotFound
	case errors.Is(err, auth.ErrMissingToken):
		return KindMissingToken
	case errors.Is(err, auth.ErrAuthFailure):
		return KindAuthFailure
	case errors.Is(err, auth.ErrMalformedAuthResponse):
		return KindMalformedAuthResponse
	case errors.Is(err, vault.ErrKeyNotFound):
		return KindKeyNotFound
	case errors.Is(err, vault.ErrTransport):
		return KindTransport
	case errors.Is(err, vault.ErrVault):
		return KindVault
	case errors.Is(err, vault.ErrInvalidConfig), errors.Is(err, secret.ErrVaultUnavailable):
		return KindConfig
	case errors.As(err, &pathErr):
		return KindIO
	default:
		return KindUnknown
	}
}
