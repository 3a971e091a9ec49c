// Package fs provides file system adapters for unit resolution, discovery,
// and change-handle bookkeeping.
package fs

import (
	iofs "io/fs"
	"iter"
	"path/filepath"
	"slices"
	"strings"

	"github.com/slategen/slate/internal/core/domain"
)

// Walker discovers template units under a directory tree.
type Walker struct {
	extensions []string
}

// NewWalker creates a walker that yields files with the given extensions.
// With no extensions every file is a unit.
func NewWalker(extensions []string) *Walker {
	return &Walker{extensions: extensions}
}

// WalkUnits yields unit paths under root, relative to root and
// slash-normalized, skipping version control and metadata directories.
func (w *Walker) WalkUnits(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if w.shouldSkipDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}

			if !w.isUnit(d.Name()) {
				return nil
			}

			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				return relErr
			}

			if !yield(filepath.ToSlash(rel)) {
				return filepath.SkipAll
			}

			return nil
		})
	}
}

func (w *Walker) shouldSkipDir(name string) bool {
	return name == ".git" || name == ".jj" || name == domain.SlateDirName
}

func (w *Walker) isUnit(name string) bool {
	if len(w.extensions) == 0 {
		return true
	}
	return slices.Contains(w.extensions, strings.ToLower(filepath.Ext(name)))
}
