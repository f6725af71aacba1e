package secretfile

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Kind identifies the backend a Locator points at.
type Kind int

const (
	// KindEnvironment resolves a name from the environment variable of the same name.
	KindEnvironment Kind = iota
	// KindVault resolves a name from a field of a Vault secret.
	KindVault
)

func (k Kind) String() string {
	switch k {
	case KindEnvironment:
		return "env"
	case KindVault:
		return "vault"
	default:
		return "unknown"
	}
}

// Locator describes where a secret lives.
//
// Path and Key are set only for KindVault. Path never contains interpolation
// references once parsed.
type Locator struct {
	Kind Kind
	Path string
	Key  string
}

// String renders a Vault locator as "path:key" and an environment locator as "env".
func (l Locator) String() string {
	if l.Kind == KindVault {
		return l.Path + ":" + l.Key
	}
	return l.Kind.String()
}

// Entry is one NAME LOCATOR line.
type Entry struct {
	Name    string
	Locator Locator
}

// Secretfile is the parsed, read-only mapping from logical names to locators.
//
// Entries keep the position of the first occurrence of a name; a later line
// for the same name replaces its locator.
type Secretfile struct {
	entries []Entry
	index   map[string]int
}

// Empty returns a Secretfile with no entries; every name resolves from the
// environment.
func Empty() *Secretfile {
	return &Secretfile{index: map[string]int{}}
}

// Parse parses text, interpolating paths from the process environment.
func Parse(text string) (*Secretfile, error) {
	return ParseWith(text, os.LookupEnv)
}

// ParseWith parses text, interpolating paths with lookup.
func ParseWith(text string, lookup LookupFunc) (*Secretfile, error) {
	return Read(strings.NewReader(text), lookup)
}

// Read parses a Secretfile from r, interpolating paths with lookup.
// A nil lookup uses os.LookupEnv.
func Read(r io.Reader, lookup LookupFunc) (*Secretfile, error) {
	return read(r, "", lookup)
}

func read(r io.Reader, source string, lookup LookupFunc) (*Secretfile, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	sf := Empty()
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name, rest := line, ""
		if i := strings.IndexAny(line, " \t"); i >= 0 {
			name, rest = line[:i], line[i+1:]
		}

		loc, err := parseLocator(strings.TrimSpace(rest), lookup)
		if err != nil {
			return nil, &ParseError{File: source, Line: lineNo, Name: name, Err: err}
		}
		sf.put(Entry{Name: name, Locator: loc})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return sf, nil
}

// parseLocator splits raw on its final ':' and interpolates the path.
// The key is taken verbatim. A locator is a single field.
func parseLocator(raw string, lookup LookupFunc) (Locator, error) {
	i := strings.LastIndex(raw, ":")
	if i < 0 || strings.ContainsAny(raw, " \t") {
		return Locator{}, ErrMalformedLocator
	}
	path, key := strings.TrimSpace(raw[:i]), strings.TrimSpace(raw[i+1:])
	if path == "" || key == "" {
		return Locator{}, ErrMalformedLocator
	}

	expanded, err := Expand(path, lookup)
	if err != nil {
		return Locator{}, err
	}
	if expanded == "" {
		return Locator{}, ErrMalformedLocator
	}
	return Locator{Kind: KindVault, Path: expanded, Key: key}, nil
}

func (sf *Secretfile) put(e Entry) {
	if i, ok := sf.index[e.Name]; ok {
		sf.entries[i] = e
		return
	}
	sf.index[e.Name] = len(sf.entries)
	sf.entries = append(sf.entries, e)
}

// Lookup returns the locator for name. A name without an entry reports
// false; callers treat it as KindEnvironment.
func (sf *Secretfile) Lookup(name string) (Locator, bool) {
	if sf == nil {
		return Locator{}, false
	}
	i, ok := sf.index[name]
	if !ok {
		return Locator{}, false
	}
	return sf.entries[i].Locator, true
}

// Entries returns a copy of the entries in file order.
func (sf *Secretfile) Entries() []Entry {
	if sf == nil {
		return nil
	}
	out := make([]Entry, len(sf.entries))
	copy(out, sf.entries)
	return out
}

// Names returns the entry names in file order.
func (sf *Secretfile) Names() []string {
	if sf == nil {
		return nil
	}
	names := make([]string, len(sf.entries))
	for i, e := range sf.entries {
		names[i] = e.Name
	}
	return names
}

// Len returns the number of distinct names.
func (sf *Secretfile) Len() int {
	if sf == nil {
		return 0
	}
	return len(sf.entries)
}

// VaultPaths returns the distinct Vault paths referenced, in file order.
func (sf *Secretfile) VaultPaths() []string {
	if sf == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(sf.entries))
	var paths []string
	for _, e := range sf.entries {
		if e.Locator.Kind != KindVault {
			continue
		}
		if _, ok := seen[e.Locator.Path]; ok {
			continue
		}
		seen[e.Locator.Path] = struct{}{}
		paths = append(paths, e.Locator.Path)
	}
	return paths
}
