// Package store implements artifact persistence using BoltDB.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/slategen/slate/internal/core/domain"
	"github.com/slategen/slate/internal/core/ports"
	"go.etcd.io/bbolt"
	"go.trai.ch/zerr"
)

// bucketName is the BoltDB bucket holding stored artifacts.
const bucketName = "artifacts"

var _ ports.ArtifactStore = (*Store)(nil)

// Store implements ports.ArtifactStore with a single BoltDB file. Keys are
// the string form of the cache key, so artifacts survive across runs and a
// content revert finds its old artifact again.
type Store struct {
	db *bbolt.DB
}

// Open creates the store directory if needed and opens the database. The
// open timeout guards against a concurrent slate process holding the file
// lock indefinitely.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "dir", dir)
	}

	dbPath := filepath.Join(dir, domain.ArtifactDBName)
	db, err := bbolt.Open(dbPath, domain.PrivateFilePerm, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "path", dbPath)
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, bucketErr := tx.CreateBucketIfNotExists([]byte(bucketName))
		return bucketErr
	}); err != nil {
		_ = db.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOpenFailed.Error()), "path", dbPath)
	}

	return &Store{db: db}, nil
}

// Get retrieves the stored artifact for a key. Returns nil, nil on a miss.
func (s *Store) Get(key domain.CacheKey) (*domain.StoredArtifact, error) {
	var data []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		if raw := tx.Bucket([]byte(bucketName)).Get([]byte(key.String())); raw != nil {
			data = make([]byte, len(raw))
			copy(data, raw)
		}
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "key", key.String())
	}

	if data == nil {
		return nil, nil
	}

	var artifact domain.StoredArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "key", key.String())
	}

	return &artifact, nil
}

// Put stores the artifact under the key.
func (s *Store) Put(key domain.CacheKey, artifact domain.StoredArtifact) error {
	data, err := json.Marshal(artifact)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error()), "key", key.String())
	}

	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(key.String()), data)
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "key", key.String())
	}

	return nil
}

// Len returns the number of stored artifacts.
func (s *Store) Len() (int, error) {
	var count int
	err := s.db.View(func(tx *bbolt.Tx) error {
		count = tx.Bucket([]byte(bucketName)).Stats().KeyN
		return nil
	})
	if err != nil {
		return 0, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}
	return count, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
