package secretfile

import (
	"os"
	"regexp"
	"strings"
)

// LookupFunc returns the value of an environment variable and whether it is set.
type LookupFunc func(name string) (string, bool)

var varPattern = regexp.MustCompile(`\$(?:\{([A-Za-z_][A-Za-z0-9_]*)\}|([A-Za-z_][A-Za-z0-9_]*))`)

// Expand substitutes $VAR and ${VAR} references in s using lookup.
//
// Semantics:
//   - Every referenced variable must be set; the first unset one is reported
//     as an *UndefinedVariableError.
//   - A variable set to the empty string expands to the empty string.
//   - `$$` emits a literal `$`.
//
// A nil lookup uses os.LookupEnv.
func Expand(s string, lookup LookupFunc) (string, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if !strings.Contains(s, "$") {
		return s, nil
	}

	const dollarSentinel = "\x00SECRETFILE_DOLLAR\x00"
	s = strings.ReplaceAll(s, "$$", dollarSentinel)

	var missing error
	s = varPattern.ReplaceAllStringFunc(s, func(ref string) string {
		m := varPattern.FindStringSubmatch(ref)
		name := m[1]
		if name == "" {
			name = m[2]
		}
		v, ok := lookup(name)
		if !ok {
			if missing == nil {
				missing = &UndefinedVariableError{Name: name}
			}
			return ref
		}
		return v
	})
	if missing != nil {
		return "", missing
	}

	return strings.ReplaceAll(s, dollarSentinel, "$"), nil
}
