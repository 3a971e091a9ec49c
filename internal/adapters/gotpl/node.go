package gotpl

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/slategen/slate/internal/core/ports"
)

const (
	// CompilerNodeID is the unique identifier for the front-end Graft node.
	CompilerNodeID graft.ID = "adapter.gotpl.compiler"
	// EmitterNodeID is the unique identifier for the emitter Graft node.
	EmitterNodeID graft.ID = "adapter.gotpl.emitter"
	// LoaderNodeID is the unique identifier for the loader Graft node.
	LoaderNodeID graft.ID = "adapter.gotpl.loader"
)

func init() {
	graft.Register(graft.Node[ports.SourceCompiler]{
		ID:        CompilerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SourceCompiler, error) {
			return NewCompiler(), nil
		},
	})

	graft.Register(graft.Node[ports.Emitter]{
		ID:        EmitterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Emitter, error) {
			return NewEmitter(), nil
		},
	})

	graft.Register(graft.Node[ports.ProgramLoader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ProgramLoader, error) {
			return NewLoader(nil), nil
		},
	})
}
