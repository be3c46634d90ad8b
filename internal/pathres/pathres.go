// Package pathres resolves user-supplied document names against the
// configured base directory.
package pathres

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Resolver turns possibly-relative file names into absolute paths under a
// base directory. Absolute inputs pass through untouched; relative inputs
// must stay inside the base directory after cleaning.
type Resolver struct {
	base string
}

func New(base string) *Resolver {
	return &Resolver{base: filepath.Clean(base)}
}

// Base returns the configured base directory.
func (r *Resolver) Base() string { return r.base }

// Resolve maps name to an absolute path. A relative name that escapes the
// base directory (via ..) is rejected.
func (r *Resolver) Resolve(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("file name must not be empty")
	}
	if filepath.IsAbs(name) {
		return filepath.Clean(name), nil
	}
	joined := filepath.Clean(filepath.Join(r.base, name))
	rel, err := filepath.Rel(r.base, joined)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("file name %q escapes the base directory", name)
	}
	return joined, nil
}
