package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ktxload/internal/adapters/resources"
	"go.trai.ch/ktxload/internal/core/ports"
)

// NodeID is the unique identifier for the materializer Graft node.
const NodeID graft.ID = "adapter.cache"

func init() {
	graft.Register(graft.Node[ports.Materializer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{resources.NodeID},
		Run: func(ctx context.Context) (ports.Materializer, error) {
			source, err := graft.Dep[ports.ResourceSource](ctx)
			if err != nil {
				return nil, err
			}
			return NewMaterializer(source), nil
		},
	})
}
