package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/slategen/slate/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"github.com/slategen/slate/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"github.com/slategen/slate/internal/adapters/gotpl"     //nolint:depguard // Wired in app layer
	"github.com/slategen/slate/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/slategen/slate/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"github.com/slategen/slate/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"github.com/slategen/slate/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			gotpl.CompilerNodeID,
			gotpl.EmitterNodeID,
			gotpl.LoaderNodeID,
			fs.RegistryNodeID,
			watcher.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	configLoader, err := graft.Dep[*config.Loader](ctx)
	if err != nil {
		return nil, err
	}

	compiler, err := graft.Dep[ports.SourceCompiler](ctx)
	if err != nil {
		return nil, err
	}

	emitter, err := graft.Dep[ports.Emitter](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ProgramLoader](ctx)
	if err != nil {
		return nil, err
	}

	registry, err := graft.Dep[*fs.Registry](ctx)
	if err != nil {
		return nil, err
	}

	fileWatcher, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	return New(configLoader, compiler, emitter, loader, registry, fileWatcher, log, tracer), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log), nil
}
