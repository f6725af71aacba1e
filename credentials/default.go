package credentials

import (
	"context"
	"sync"
)

var defaultClient = sync.OnceValues(func() (*Client, error) { return New() })

// Default returns the process-wide Client, creating it on first use with the
// Secretfile of the working directory and the process environment.
func Default() (*Client, error) {
	return defaultClient()
}

// Var resolves name with the Default client.
func Var(ctx context.Context, name string) (string, error) {
	c, err := Default()
	if err != nil {
		return "", &Error{Op: "var", Name: name, Err: err}
	}
	return c.Var(ctx, name)
}

// File resolves name with the Default client and writes it to path.
func File(ctx context.Context, name, path string) error {
	c, err := Default()
	if err != nil {
		return &Error{Op: "file", Name: name, Err: err}
	}
	return c.File(ctx, name, path)
}
