package fs

import (
	"os"
	"path/filepath"

	"github.com/slategen/slate/internal/core/domain"
	"github.com/slategen/slate/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.UnitResolver = (*Resolver)(nil)

// Resolver implements the UnitResolver interface against the local file
// system. Every resolution, hit or miss, registers a watch handle so the
// caller learns when the path changes or comes into existence.
type Resolver struct {
	root     string
	registry *Registry
}

// NewResolver creates a resolver rooted at the given directory.
func NewResolver(root string, registry *Registry) *Resolver {
	return &Resolver{root: root, registry: registry}
}

// Resolve reads the unit at the given path. A missing file is a normal
// outcome, not an error.
func (r *Resolver) Resolve(path string, _ domain.ScopeID) (ports.Resolution, error) {
	full := path
	if !filepath.IsAbs(full) {
		full = filepath.Join(r.root, path)
	}

	content, err := os.ReadFile(full) // #nosec G304 -- paths come from unit discovery under root
	if err != nil {
		if os.IsNotExist(err) {
			return ports.Resolution{
				Exists: false,
				Handle: r.registry.Register(path),
			}, nil
		}
		return ports.Resolution{}, zerr.With(zerr.Wrap(err, domain.ErrResolveFailed.Error()), "path", path)
	}

	return ports.Resolution{
		Exists: true,
		Unit:   domain.Unit{Path: path, Bytes: content},
		Handle: r.registry.Register(path),
	}, nil
}
