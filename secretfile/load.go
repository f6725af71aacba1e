package secretfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultFilename is the Secretfile name looked up by Discover.
const DefaultFilename = "Secretfile"

// Load reads and parses the Secretfile at path.
// A nil lookup uses os.LookupEnv.
func Load(path string, lookup LookupFunc) (*Secretfile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return read(f, path, lookup)
}

// Discover loads DefaultFilename from dir. An empty dir means the current
// working directory. A missing file yields an empty Secretfile.
func Discover(dir string, lookup LookupFunc) (*Secretfile, error) {
	if dir == "" {
		dir = "."
	}
	sf, err := Load(filepath.Join(dir, DefaultFilename), lookup)
	if errors.Is(err, fs.ErrNotExist) {
		return Empty(), nil
	}
	return sf, err
}
