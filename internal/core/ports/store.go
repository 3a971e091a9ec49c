package ports

import "github.com/slategen/slate/internal/core/domain"

// ArtifactStore persists emitted artifacts across runs, keyed by cache key.
// It is a second-level cache behind the in-memory compilation cache: a hit
// skips the external compile entirely.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ArtifactStore interface {
	// Get retrieves the stored artifact for a key.
	// Returns nil, nil if not found.
	Get(key domain.CacheKey) (*domain.StoredArtifact, error)

	// Put stores the artifact under the key.
	Put(key domain.CacheKey, artifact domain.StoredArtifact) error

	// Close releases store resources.
	Close() error
}
