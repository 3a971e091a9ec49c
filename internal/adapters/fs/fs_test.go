package fs_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/slategen/slate/internal/adapters/fs"
	"github.com/slategen/slate/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o750))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
}

func TestResolver_Resolve(t *testing.T) {
	t.Run("Existing Unit", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "pages/index.html", "<h1>{{.Title}}</h1>")

		resolver := fs.NewResolver(root, fs.NewRegistry())
		res, err := resolver.Resolve("pages/index.html", domain.ScopePages)
		require.NoError(t, err)

		assert.True(t, res.Exists)
		assert.Equal(t, "pages/index.html", res.Unit.Path)
		assert.Equal(t, "<h1>{{.Title}}</h1>", string(res.Unit.Bytes))
		require.NotNil(t, res.Handle)
		assert.False(t, res.Handle.Invalidated())
	})

	t.Run("Missing Unit Is Not An Error", func(t *testing.T) {
		resolver := fs.NewResolver(t.TempDir(), fs.NewRegistry())
		res, err := resolver.Resolve("pages/gone.html", domain.ScopePages)
		require.NoError(t, err)

		assert.False(t, res.Exists)
		assert.Nil(t, res.Unit.Bytes)
		require.NotNil(t, res.Handle, "missing paths still get a handle so callers learn about creation")
	})

	t.Run("Handle Fires On Invalidation", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, "pages/index.html", "x")

		registry := fs.NewRegistry()
		resolver := fs.NewResolver(root, registry)

		res, err := resolver.Resolve("pages/index.html", domain.ScopePages)
		require.NoError(t, err)

		registry.Invalidate("pages/index.html")
		assert.True(t, res.Handle.Invalidated())
	})
}

func TestRegistry(t *testing.T) {
	t.Run("Register Reuses The Live Handle", func(t *testing.T) {
		registry := fs.NewRegistry()
		h1 := registry.Register("a.html")
		h2 := registry.Register("a.html")

		assert.Same(t, h1, h2, "resolutions of one path share one handle")
		assert.Equal(t, 1, registry.Len(), "re-registration must not grow the registry")
	})

	t.Run("Invalidate Fires The Handle", func(t *testing.T) {
		registry := fs.NewRegistry()
		h1 := registry.Register("a.html")
		h2 := registry.Register("a.html")
		other := registry.Register("b.html")

		fired := registry.Invalidate("a.html")
		assert.Equal(t, 1, fired)
		assert.True(t, h1.Invalidated())
		assert.True(t, h2.Invalidated())
		assert.False(t, other.Invalidated())
	})

	t.Run("Registration After Firing Starts Fresh", func(t *testing.T) {
		registry := fs.NewRegistry()
		old := registry.Register("a.html")
		registry.Invalidate("a.html")

		fresh := registry.Register("a.html")
		assert.NotSame(t, old, fresh)
		assert.False(t, fresh.Invalidated())
	})

	t.Run("Invalidate Unknown Path", func(t *testing.T) {
		registry := fs.NewRegistry()
		assert.Zero(t, registry.Invalidate("never-seen.html"))
	})

	t.Run("Invalidated Handles Are Dropped", func(t *testing.T) {
		registry := fs.NewRegistry()
		registry.Register("a.html")
		require.Equal(t, 1, registry.Len())

		registry.Invalidate("a.html")
		assert.Zero(t, registry.Len())
		assert.Zero(t, registry.Invalidate("a.html"), "second invalidation finds nothing")
	})

	t.Run("InvalidateAll", func(t *testing.T) {
		registry := fs.NewRegistry()
		h1 := registry.Register("a.html")
		h2 := registry.Register("b.html")

		assert.Equal(t, 2, registry.InvalidateAll())
		assert.True(t, h1.Invalidated())
		assert.True(t, h2.Invalidated())
		assert.Zero(t, registry.Len())
	})
}

func TestWalker_WalkUnits(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "pages/index.html", "x")
	writeFile(t, root, "pages/blog/post.tmpl", "x")
	writeFile(t, root, "pages/notes.txt", "x")
	writeFile(t, root, ".slate/cache/artifacts.db", "x")
	writeFile(t, root, ".git/config", "x")

	walker := fs.NewWalker([]string{".html", ".tmpl"})

	var units []string
	for unit := range walker.WalkUnits(root) {
		units = append(units, unit)
	}
	slices.Sort(units)

	assert.Equal(t, []string{"pages/blog/post.tmpl", "pages/index.html"}, units)
}

func TestWalker_NoExtensionsMeansEveryFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.anything", "x")

	walker := fs.NewWalker(nil)

	var units []string
	for unit := range walker.WalkUnits(root) {
		units = append(units, unit)
	}

	assert.Equal(t, []string{"a.anything"}, units)
}
