package domain_test

import (
	"errors"
	"testing"

	"github.com/slategen/slate/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeFingerprint(t *testing.T) {
	t.Run("Deterministic", func(t *testing.T) {
		content := []byte("<h1>{{.Title}}</h1>")
		assert.Equal(t, domain.ComputeFingerprint(content), domain.ComputeFingerprint(content))
	})

	t.Run("Content Sensitivity", func(t *testing.T) {
		a := domain.ComputeFingerprint([]byte("<h1>{{title}}</h1>"))
		b := domain.ComputeFingerprint([]byte("<h1>{{Title}}</h1>"))
		assert.NotEqual(t, a, b, "a single changed byte must change the fingerprint")
	})

	t.Run("Empty Input", func(t *testing.T) {
		assert.Equal(t, domain.ComputeFingerprint(nil), domain.ComputeFingerprint([]byte{}))
	})

	t.Run("String Width", func(t *testing.T) {
		assert.Len(t, domain.ComputeFingerprint([]byte("x")).String(), 16)
		assert.Len(t, domain.Fingerprint(0).String(), 16)
	})
}

func TestCacheKey(t *testing.T) {
	content := []byte("{{ define \"nav\" }}...{{ end }}")

	t.Run("Structural Equality", func(t *testing.T) {
		a := domain.NewCacheKey(domain.ScopeGlobal, content)
		b := domain.NewCacheKey(domain.ScopeGlobal, content)
		assert.Equal(t, a, b)
		assert.True(t, a == b, "keys must be comparable")
	})

	t.Run("Scope Isolation", func(t *testing.T) {
		a := domain.NewCacheKey(domain.ScopeGlobal, content)
		b := domain.NewCacheKey(domain.ScopePages, content)
		assert.NotEqual(t, a, b, "identical bytes under different scopes must not collide")
	})

	t.Run("String Form", func(t *testing.T) {
		k := domain.NewCacheKey(domain.ScopeGlobal, content)
		assert.Equal(t, "global|"+k.Fingerprint.String(), k.String())
	})
}

func TestDiagnostic(t *testing.T) {
	tests := []struct {
		name string
		diag domain.Diagnostic
		want string
	}{
		{
			name: "With Line And Column",
			diag: domain.Diagnostic{Severity: domain.SeverityError, Message: "unexpected EOF", Line: 3, Column: 7},
			want: "3:7: error: unexpected EOF",
		},
		{
			name: "With Line Only",
			diag: domain.Diagnostic{Severity: domain.SeverityWarning, Message: "empty body", Line: 1},
			want: "1: warning: empty body",
		},
		{
			name: "Without Location",
			diag: domain.Diagnostic{Severity: domain.SeverityInfo, Message: "external template reference"},
			want: "info: external template reference",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.diag.String())
		})
	}
}

func TestCompileError(t *testing.T) {
	err := &domain.CompileError{
		Unit: "layouts/base.html",
		Diagnostics: []domain.Diagnostic{
			{Severity: domain.SeverityWarning, Message: "empty body", Line: 1},
			{Severity: domain.SeverityError, Message: "unexpected {{end}}", Line: 4},
		},
	}

	t.Run("Matches Sentinel", func(t *testing.T) {
		require.ErrorIs(t, err, domain.ErrCompilationFailed)
	})

	t.Run("Carries Ordered Diagnostics", func(t *testing.T) {
		assert.Contains(t, err.Error(), "layouts/base.html")
		assert.Contains(t, err.Error(), "4: error: unexpected {{end}}")
	})

	t.Run("Error Diagnostics Filter", func(t *testing.T) {
		errs := err.ErrorDiagnostics()
		require.Len(t, errs, 1)
		assert.Equal(t, domain.SeverityError, errs[0].Severity)
	})

	t.Run("Wrapped Match", func(t *testing.T) {
		wrapped := errors.Join(errors.New("outer"), err)
		assert.ErrorIs(t, wrapped, domain.ErrCompilationFailed)
	})
}

func TestWatchHandle(t *testing.T) {
	t.Run("Fires At Most Once", func(t *testing.T) {
		h := domain.NewWatchHandle("pages/index.html")
		assert.False(t, h.Invalidated())

		h.Invalidate()
		h.Invalidate() // second call is a no-op

		assert.True(t, h.Invalidated())
		select {
		case <-h.Changed():
		default:
			t.Fatal("Changed channel should be closed after Invalidate")
		}
	})

	t.Run("Path Is Preserved", func(t *testing.T) {
		h := domain.NewWatchHandle("partials/nav.html")
		assert.Equal(t, "partials/nav.html", h.Path())
	})

	t.Run("Concurrent Invalidate", func(t *testing.T) {
		h := domain.NewWatchHandle("layouts/base.html")
		done := make(chan struct{})
		for range 8 {
			go func() {
				h.Invalidate()
				done <- struct{}{}
			}()
		}
		for range 8 {
			<-done
		}
		assert.True(t, h.Invalidated())
	})
}
