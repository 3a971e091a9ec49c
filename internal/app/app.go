// Package app implements the application layer for slate.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"

	"github.com/slategen/slate/internal/adapters/config"
	"github.com/slategen/slate/internal/adapters/fs"
	"github.com/slategen/slate/internal/adapters/store"
	"github.com/slategen/slate/internal/adapters/telemetry"
	"github.com/slategen/slate/internal/adapters/watcher"
	"github.com/slategen/slate/internal/core/domain"
	"github.com/slategen/slate/internal/core/ports"
	"github.com/slategen/slate/internal/engine/cache"
	"github.com/slategen/slate/internal/engine/pipeline"
)

// App represents the main application logic.
type App struct {
	configLoader *config.Loader
	compiler     ports.SourceCompiler
	emitter      ports.Emitter
	loader       ports.ProgramLoader
	registry     *fs.Registry
	watcher      ports.Watcher
	logger       ports.Logger
	tracer       ports.Tracer
	traceSpans   bool
}

// New creates a new App instance.
func New(
	configLoader *config.Loader,
	compiler ports.SourceCompiler,
	emitter ports.Emitter,
	loader ports.ProgramLoader,
	registry *fs.Registry,
	fileWatcher ports.Watcher,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: configLoader,
		compiler:     compiler,
		emitter:      emitter,
		loader:       loader,
		registry:     registry,
		watcher:      fileWatcher,
		logger:       log,
		tracer:       tracer,
	}
}

// WithSpanLogging reports per-unit compilation spans through the logger.
func (a *App) WithSpanLogging() *App {
	a.traceSpans = true
	return a
}

// BuildOptions configuration for the Build method.
type BuildOptions struct {
	// NoCache skips the on-disk artifact store for this build. The
	// in-memory cache is still active within the run.
	NoCache bool
	// Parallelism caps concurrent unit compilations. Zero falls back to
	// the configured value, then to one per available CPU.
	Parallelism int
}

// session holds the configuration-dependent collaborators for one build or
// watch invocation. The compilation cache lives here so watch-mode rebuilds
// reuse it across iterations.
type session struct {
	cfg    *config.Config
	walker *fs.Walker
	pipe   *pipeline.Pipeline
	store  ports.ArtifactStore
}

func (s *session) close() {
	if s.store != nil {
		_ = s.store.Close()
	}
}

// Build compiles every discovered template unit once.
func (a *App) Build(ctx context.Context, opts BuildOptions) error {
	s, err := a.newSession(opts)
	if err != nil {
		return err
	}
	defer s.close()

	return a.runBuild(ctx, s, opts)
}

// newSession loads the configuration and constructs the collaborators that
// depend on it.
func (a *App) newSession(opts BuildOptions) (*session, error) {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	if a.traceSpans {
		setupOTel(telemetry.NewBridge(a.logger))
	}

	var artifactStore ports.ArtifactStore
	if !cfg.Cache.Disabled && !opts.NoCache {
		st, err := store.Open(cfg.CacheDir())
		if err != nil {
			// A broken store costs recompiles, not the build.
			a.logger.Warn(fmt.Sprintf("artifact store unavailable, compiling without it: %v", err))
		} else {
			artifactStore = st
		}
	}

	var cacheOpts []cache.Option
	if cfg.Cache.MaxEntries > 0 {
		cacheOpts = append(cacheOpts, cache.WithMaxEntries(cfg.Cache.MaxEntries))
	}

	resolver := fs.NewResolver(cfg.Root, a.registry)
	pipe := pipeline.New(resolver, a.compiler, a.emitter, a.loader, cache.New(cacheOpts...), a.logger, pipeline.Options{
		Store:  artifactStore,
		Tracer: a.tracer,
	})

	return &session{
		cfg:    cfg,
		walker: fs.NewWalker(cfg.Templates.Extensions),
		pipe:   pipe,
		store:  artifactStore,
	}, nil
}

// runBuild discovers units and compiles them in parallel. A unit that fails
// to compile does not stop the others; all failures are reported together.
func (a *App) runBuild(ctx context.Context, s *session, opts BuildOptions) error {
	units := discoverUnits(s.cfg, s.walker)
	if len(units) == 0 {
		return domain.ErrNoUnitsFound
	}

	parallelism := opts.Parallelism
	if parallelism <= 0 {
		parallelism = s.cfg.Build.Parallelism
	}
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}

	start := time.Now()

	var mu sync.Mutex
	var failures []error

	var g errgroup.Group
	g.SetLimit(parallelism)

	for _, unit := range units {
		g.Go(func() error {
			_, err := s.pipe.Compile(ctx, unit, s.cfg.ScopeFor(unit))
			if err != nil {
				a.logger.Error(err)
				mu.Lock()
				failures = append(failures, err)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	if len(failures) > 0 {
		return errors.Join(domain.ErrBuildFailed, errors.Join(failures...))
	}

	stats := s.pipe.Stats()
	a.logger.Info(fmt.Sprintf(
		"compiled %d units in %s (%d cache hits, %d misses)",
		len(units), time.Since(start).Round(time.Millisecond), stats.Hits, stats.Misses,
	))
	return nil
}

// Watch builds once, then rebuilds whenever a watched file changes.
// Compilation failures keep the watch alive; the next edit retries them.
func (a *App) Watch(ctx context.Context, opts BuildOptions) error {
	s, err := a.newSession(opts)
	if err != nil {
		return err
	}
	defer s.close()

	if err := a.runBuild(ctx, s, opts); err != nil && !errors.Is(err, domain.ErrBuildFailed) {
		return err
	}

	if err := a.watcher.Start(ctx, s.cfg.Root); err != nil {
		return zerr.Wrap(err, domain.ErrWatcherStartFailed.Error())
	}
	defer func() {
		_ = a.watcher.Stop()
	}()

	a.logger.Info("watching " + s.cfg.Root)

	rebuilds := make(chan []string, 1)
	debouncer := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func(paths []string) {
		select {
		case rebuilds <- paths:
		default:
		}
	})

	go func() {
		for event := range a.watcher.Events() {
			debouncer.Add(event.Path)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case paths := <-rebuilds:
			a.invalidate(s.cfg, paths)
			a.logger.Info(fmt.Sprintf("%d paths changed, rebuilding", len(paths)))
			if err := a.runBuild(ctx, s, opts); err != nil && !errors.Is(err, domain.ErrBuildFailed) {
				return err
			}
		}
	}
}

// invalidate closes the watch handles registered under the changed paths.
// The registry is keyed by root-relative slash paths, the same form the
// pipeline resolves units by.
func (a *App) invalidate(cfg *config.Config, paths []string) {
	for _, p := range paths {
		rel, err := filepath.Rel(cfg.Root, p)
		if err != nil {
			continue
		}
		a.registry.Invalidate(filepath.ToSlash(rel))
	}
}

// Clean removes the on-disk artifact store.
func (a *App) Clean(_ context.Context) error {
	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	dir := cfg.CacheDir()
	a.logger.Info("removing artifact store...")
	if err := os.RemoveAll(dir); err != nil {
		return zerr.Wrap(err, "failed to remove artifact store")
	}
	a.logger.Info("removed " + dir)
	return nil
}

// discoverUnits walks the configured template directories and returns the
// root-relative slash paths of every unit, in a stable order.
func discoverUnits(cfg *config.Config, walker *fs.Walker) []string {
	var units []string
	for _, dir := range []string{cfg.Templates.Layouts, cfg.Templates.Partials, cfg.Templates.Pages} {
		if dir == "" {
			continue
		}
		for rel := range walker.WalkUnits(filepath.Join(cfg.Root, dir)) {
			units = append(units, path.Join(filepath.ToSlash(dir), rel))
		}
	}
	return units
}

// setupOTel configures the OpenTelemetry SDK with the logger bridge so that
// completed compilation spans are reported to the user.
func setupOTel(bridge *telemetry.Bridge) {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(bridge),
	)
	otel.SetTracerProvider(tp)
}
