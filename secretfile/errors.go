package secretfile

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLocator is returned for a locator without a "path:key" shape.
	ErrMalformedLocator = errors.New("secretfile: malformed locator")

	// ErrUndefinedVariable matches UndefinedVariableError.
	ErrUndefinedVariable = errors.New("secretfile: undefined variable")
)

// ParseError reports the Secretfile line that failed to parse.
type ParseError struct {
	// File is the source name when known (empty for in-memory text).
	File string
	Line int
	Name string
	Err  error
}

func (e *ParseError) Error() string {
	where := fmt.Sprintf("line %d", e.Line)
	if e.File != "" {
		where = fmt.Sprintf("%s:%d", e.File, e.Line)
	}
	if e.Name != "" {
		return fmt.Sprintf("secretfile: %s: %s: %v", where, e.Name, e.Err)
	}
	return fmt.Sprintf("secretfile: %s: %v", where, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// UndefinedVariableError names an interpolation variable that is not set.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("undefined variable $%s", e.Name)
}

// Is reports whether target is ErrUndefinedVariable.
func (e *UndefinedVariableError) Is(target error) bool {
	return target == ErrUndefinedVariable
}
