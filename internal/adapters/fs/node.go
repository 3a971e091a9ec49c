package fs

import (
	"context"

	"github.com/grindlemire/graft"
)

// RegistryNodeID is the unique identifier for the watch-handle registry
// Graft node. The resolver and walker are configuration-dependent and are
// constructed by the app after the project configuration is loaded.
const RegistryNodeID graft.ID = "adapter.fs.registry"

func init() {
	graft.Register(graft.Node[*Registry]{
		ID:        RegistryNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Registry, error) {
			return NewRegistry(), nil
		},
	})
}
