// Package config provides the configuration loader for slate.
package config

import (
	"path/filepath"
	"strings"

	"github.com/slategen/slate/internal/core/domain"
)

// Config is the fully resolved project configuration. All paths are
// absolute; defaults are applied at load time.
type Config struct {
	// Root is the project root, the directory holding slate.yaml.
	Root string
	// Templates describes where template units live.
	Templates Templates
	// Cache configures the compilation cache.
	Cache Cache
	// Build configures the build pipeline.
	Build Build
}

// Templates holds the template directory layout, relative to Root.
type Templates struct {
	// Layouts, Partials, and Pages are the unit directories. Units under
	// Pages compile in the pages scope; everything else compiles in the
	// global scope.
	Layouts  string
	Partials string
	Pages    string
	// Extensions lists the file extensions recognized as units.
	Extensions []string
}

// Cache configures the compilation cache and the on-disk artifact store.
type Cache struct {
	// Dir is the artifact store directory, relative to Root unless absolute.
	Dir string
	// MaxEntries bounds the in-memory cache; zero means unbounded.
	MaxEntries int
	// Disabled skips the on-disk artifact store entirely. The in-memory
	// cache is always active.
	Disabled bool
}

// Build configures the build pipeline.
type Build struct {
	// Parallelism caps concurrent unit compilations; zero means one per
	// available CPU.
	Parallelism int
}

// UnitDirs returns the absolute unit directories in a stable order,
// omitting unconfigured ones.
func (c *Config) UnitDirs() []string {
	var dirs []string
	for _, dir := range []string{c.Templates.Layouts, c.Templates.Partials, c.Templates.Pages} {
		if dir != "" {
			dirs = append(dirs, filepath.Join(c.Root, dir))
		}
	}
	return dirs
}

// ScopeFor maps a root-relative unit path to its compilation scope. Units
// under the pages directory are per-page; everything else is shared.
func (c *Config) ScopeFor(path string) domain.ScopeID {
	if c.Templates.Pages == "" {
		return domain.ScopeGlobal
	}

	prefix := filepath.ToSlash(c.Templates.Pages)
	normalized := filepath.ToSlash(path)
	if normalized == prefix || strings.HasPrefix(normalized, prefix+"/") {
		return domain.ScopePages
	}

	return domain.ScopeGlobal
}

// CacheDir returns the absolute artifact store directory.
func (c *Config) CacheDir() string {
	if filepath.IsAbs(c.Cache.Dir) {
		return c.Cache.Dir
	}
	return filepath.Join(c.Root, c.Cache.Dir)
}
