package resources

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ktxload/internal/core/ports"
)

// NodeID is the unique identifier for the resource source Graft node.
const NodeID graft.ID = "adapter.resources"

func init() {
	graft.Register(graft.Node[ports.ResourceSource]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ResourceSource, error) {
			return NewEmbeddedSource(), nil
		},
	})
}
