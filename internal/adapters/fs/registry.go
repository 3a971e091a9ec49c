package fs

import (
	"sync"
	"unique"

	"github.com/slategen/slate/internal/core/domain"
)

// Registry tracks the live watch handle per unit path. The resolver
// registers a handle for every resolution; the watch layer invalidates the
// handle for a path when the path changes. Resolutions of the same path
// share one handle, so repeated rebuilds of an unchanged unit never grow
// the registry. Interned path handles keep the per-path keys cheap.
type Registry struct {
	mu      sync.Mutex
	handles map[unique.Handle[string]]*domain.WatchHandle
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		handles: make(map[unique.Handle[string]]*domain.WatchHandle),
	}
}

// Register returns the live handle for the path, creating one if the path
// has none. A handle stays registered until it fires; after that the next
// registration starts a fresh one.
func (r *Registry) Register(path string) *domain.WatchHandle {
	key := unique.Make(path)

	r.mu.Lock()
	defer r.mu.Unlock()

	if handle, ok := r.handles[key]; ok {
		return handle
	}

	handle := domain.NewWatchHandle(path)
	r.handles[key] = handle
	return handle
}

// Invalidate fires and drops the handle registered for the path. It returns
// 1 when a handle fired, zero when the path had none.
func (r *Registry) Invalidate(path string) int {
	key := unique.Make(path)

	r.mu.Lock()
	handle, ok := r.handles[key]
	delete(r.handles, key)
	r.mu.Unlock()

	if !ok {
		return 0
	}
	handle.Invalidate()
	return 1
}

// InvalidateAll fires and drops every tracked handle.
func (r *Registry) InvalidateAll() int {
	r.mu.Lock()
	all := r.handles
	r.handles = make(map[unique.Handle[string]]*domain.WatchHandle)
	r.mu.Unlock()

	for _, handle := range all {
		handle.Invalidate()
	}

	return len(all)
}

// Len returns the number of paths with a live handle.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.handles)
}
