// Package pipeline orchestrates unit compilation: resolve, cache, compile,
// emit, load, persist. The pipeline is the only writer of the compilation
// cache; all template requests funnel through it.
package pipeline

import (
	"context"
	"fmt"

	"github.com/slategen/slate/internal/core/domain"
	"github.com/slategen/slate/internal/core/ports"
	"github.com/slategen/slate/internal/engine/cache"
)

// Pipeline compiles template units through the external compiler adapters,
// backed by the in-memory compilation cache and the cross-run artifact store.
type Pipeline struct {
	resolver ports.UnitResolver
	compiler ports.SourceCompiler
	emitter  ports.Emitter
	loader   ports.ProgramLoader
	cache    *cache.Cache
	store    ports.ArtifactStore
	logger   ports.Logger
	tracer   ports.Tracer
}

// Options carries the optional pipeline collaborators.
type Options struct {
	// Store is the cross-run artifact store; nil disables persistence.
	Store ports.ArtifactStore
	// Tracer traces per-unit compilations; nil disables tracing.
	Tracer ports.Tracer
}

// New creates a pipeline over the given collaborators.
func New(
	resolver ports.UnitResolver,
	compiler ports.SourceCompiler,
	emitter ports.Emitter,
	loader ports.ProgramLoader,
	compileCache *cache.Cache,
	logger ports.Logger,
	opts Options,
) *Pipeline {
	return &Pipeline{
		resolver: resolver,
		compiler: compiler,
		emitter:  emitter,
		loader:   loader,
		cache:    compileCache,
		store:    opts.Store,
		logger:   logger,
		tracer:   opts.Tracer,
	}
}

// Compile resolves the unit at path and returns its compiled view.
//
// A missing unit is a normal outcome: the view reports Exists false and
// carries a watch handle so the caller learns when the unit appears. Any
// returned error is either a *domain.CompileError for content problems or an
// infrastructure fault; once the unit resolved, the view carries its watch
// handle even alongside an error.
//
// Identical content under the same scope shares one artifact; the external
// compiler runs at most once per key no matter how many goroutines request
// it concurrently.
func (p *Pipeline) Compile(ctx context.Context, path string, scope domain.ScopeID) (domain.CompiledView, error) {
	if p.tracer != nil {
		var span ports.Span
		ctx, span = p.tracer.Start(ctx, "compile "+path)
		defer span.End()
		span.SetAttribute("scope", string(scope))
	}

	resolution, err := p.resolver.Resolve(path, scope)
	if err != nil {
		return domain.CompiledView{}, err
	}

	if !resolution.Exists {
		return domain.CompiledView{
			Exists: false,
			Handle: resolution.Handle,
		}, nil
	}

	key := domain.NewCacheKey(scope, resolution.Unit.Bytes)

	artifact, err := p.cache.GetOrCompile(key, func() (*domain.CompiledArtifact, error) {
		return p.compile(ctx, key, resolution.Unit, scope)
	})
	if err != nil {
		// The handle outlives the failure: a caller can await the edit
		// that fixes the unit.
		return domain.CompiledView{
			Exists: true,
			Handle: resolution.Handle,
		}, err
	}

	return domain.CompiledView{
		Exists:   true,
		Artifact: artifact,
		Handle:   resolution.Handle,
	}, nil
}

// compile runs one full compilation for a key: artifact-store fast path,
// then compile, emit, load, persist. Called at most once per key among
// concurrent requests.
func (p *Pipeline) compile(ctx context.Context, key domain.CacheKey, unit domain.Unit, scope domain.ScopeID) (*domain.CompiledArtifact, error) {
	if artifact := p.fromStore(key); artifact != nil {
		return artifact, nil
	}

	code, err := p.compiler.Compile(ctx, unit, scope)
	if err != nil {
		return nil, err
	}

	emitted, err := p.emitter.Emit(ctx, code)
	if err != nil {
		return nil, err
	}

	program, err := p.loader.Load(emitted.Name, emitted.Bytes, emitted.DebugBytes)
	if err != nil {
		return nil, err
	}

	p.logWarnings(unit.Path, emitted.Warnings)
	p.persist(key, emitted)

	return &domain.CompiledArtifact{
		Key:        key,
		Bytes:      emitted.Bytes,
		DebugBytes: emitted.DebugBytes,
		Program:    program,
		Warnings:   emitted.Warnings,
	}, nil
}

// fromStore attempts the cross-run fast path. Any store problem, including
// stored bytes the loader no longer accepts, degrades to a full compile.
func (p *Pipeline) fromStore(key domain.CacheKey) *domain.CompiledArtifact {
	if p.store == nil {
		return nil
	}

	stored, err := p.store.Get(key)
	if err != nil {
		p.logger.Warn(fmt.Sprintf("artifact store read failed, recompiling: %v", err))
		return nil
	}
	if stored == nil {
		return nil
	}

	program, err := p.loader.Load(stored.Name, stored.Bytes, stored.DebugBytes)
	if err != nil {
		p.logger.Warn(fmt.Sprintf("stored artifact for %s no longer loads, recompiling: %v", stored.Name, err))
		return nil
	}

	return &domain.CompiledArtifact{
		Key:        key,
		Bytes:      stored.Bytes,
		DebugBytes: stored.DebugBytes,
		Program:    program,
		Warnings:   stored.Warnings,
	}
}

// persist writes the emitted artifact to the cross-run store. Persistence is
// best effort: a write failure costs a recompile next run, not this build.
func (p *Pipeline) persist(key domain.CacheKey, emitted ports.EmittedProgram) {
	if p.store == nil {
		return
	}

	err := p.store.Put(key, domain.StoredArtifact{
		Name:       emitted.Name,
		Bytes:      emitted.Bytes,
		DebugBytes: emitted.DebugBytes,
		Warnings:   emitted.Warnings,
	})
	if err != nil {
		p.logger.Warn(fmt.Sprintf("failed to persist artifact for %s: %v", emitted.Name, err))
	}
}

func (p *Pipeline) logWarnings(path string, warnings []domain.Diagnostic) {
	for _, diagnostic := range warnings {
		p.logger.Warn(path + ": " + diagnostic.String())
	}
}

// Stats returns a snapshot of the compilation cache counters.
func (p *Pipeline) Stats() cache.Stats {
	return p.cache.Stats()
}
