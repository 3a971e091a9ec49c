// Package ports defines the core interfaces for the application.
package ports

import "github.com/slategen/slate/internal/core/domain"

// Resolution is the outcome of resolving a unit path.
type Resolution struct {
	// Exists reports whether the unit was present at resolution time.
	Exists bool
	// Unit holds the path and resolved bytes; Bytes is nil when Exists is
	// false.
	Unit domain.Unit
	// Handle notifies of future changes to the path. It is set for
	// non-existing paths too, so a caller can learn when the unit comes
	// into existence.
	Handle *domain.WatchHandle
}

// UnitResolver resolves a unit path to concrete content bytes and registers
// the path for change notification.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type UnitResolver interface {
	// Resolve reads the unit at the given path. A missing unit is a normal
	// outcome (Exists false), not an error; errors are reserved for
	// infrastructure faults.
	Resolve(path string, scope domain.ScopeID) (Resolution, error)
}
