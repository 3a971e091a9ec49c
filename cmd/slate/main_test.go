package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/slategen/slate/internal/adapters/config"
	"github.com/slategen/slate/internal/adapters/fs"
	"github.com/slategen/slate/internal/adapters/gotpl"
	"github.com/slategen/slate/internal/adapters/logger"
	"github.com/slategen/slate/internal/app"
	"github.com/slategen/slate/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider() ComponentProvider {
	return func(_ context.Context) (*app.Components, error) {
		log := logger.New()
		loader := config.NewLoader(log)
		application := app.New(
			loader,
			gotpl.NewCompiler(),
			gotpl.NewEmitter(),
			gotpl.NewLoader(nil),
			fs.NewRegistry(),
			nil,
			log,
			nil,
		)
		return app.NewComponents(application, log), nil
	}
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	stderr := new(bytes.Buffer)

	exitCode := run(context.Background(), []string{"version"}, stderr, newTestProvider())
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, error) {
		return nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 when the command execution fails.
func TestRun_ExecutionError(t *testing.T) {
	// No slate.yaml here, so the build cannot load a configuration.
	t.Chdir(t.TempDir())

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"build"}, stderr, newTestProvider())

	assert.Equal(t, 1, exitCode)
}

// TestRun_BuildFailureExitCode verifies that compile failures exit non-zero
// without double-reporting the error.
func TestRun_BuildFailureExitCode(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ConfigFileName), []byte("{}\n"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "pages"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pages", "broken.html"), []byte("{{if .X}}unterminated"), 0o644))
	t.Chdir(dir)

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"build"}, stderr, newTestProvider())

	assert.Equal(t, 1, exitCode)
}
