// Package resolver maps Python module specifiers to source files under a
// set of search roots. A specifier that matches no root is not an error:
// it marks the module as external or standard.
package resolver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Sumatoshi-tech/bundlefang/pkg/pysrc"
)

// Fatal resolution failures. Both abort the whole bundle operation.
var (
	ErrUnsupportedRelativeImport = errors.New("unsupported relative import")
	ErrUnsupportedPackageImport  = errors.New("unsupported package import")
)

// sourceExtension is the file extension probed for module sources.
const sourceExtension = ".py"

// Resolver probes an ordered list of search roots for module sources.
type Resolver struct {
	searchRoots []string
}

// New creates a Resolver over the given roots, resolved to absolute paths.
// Root order is priority order: the first match wins.
func New(searchRoots []string) (*Resolver, error) {
	roots := make([]string, 0, len(searchRoots))

	for _, root := range searchRoots {
		abs, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("resolve search root %s: %w", root, err)
		}

		roots = append(roots, abs)
	}

	return &Resolver{searchRoots: roots}, nil
}

// SearchRoots returns the configured roots in priority order.
func (r *Resolver) SearchRoots() []string {
	return r.searchRoots
}

// Resolve maps an import reference to the absolute path of a local source
// file, or to "" when the specifier is external/standard. Relative imports
// and directory-style package imports fail fatally.
func (r *Resolver) Resolve(ref pysrc.ImportReference) (string, error) {
	if ref.RelativeLevel > 0 {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedRelativeImport, strings.TrimSpace(ref.Text))
	}

	if ref.Module == "" {
		return "", nil
	}

	rel := filepath.Join(strings.Split(ref.Module, ".")...)

	for _, root := range r.searchRoots {
		candidate := filepath.Join(root, rel)

		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return "", fmt.Errorf("%w: %s", ErrUnsupportedPackageImport, ref.Module)
		}

		file := candidate + sourceExtension
		if info, err := os.Stat(file); err == nil && !info.IsDir() {
			return file, nil
		}
	}

	return "", nil
}
