package platform

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ktxload/internal/core/ports"
)

// NodeID is the unique identifier for the environment probe Graft node.
const NodeID graft.ID = "adapter.platform"

func init() {
	graft.Register(graft.Node[ports.EnvironmentProbe]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.EnvironmentProbe, error) {
			return NewProbe(), nil
		},
	})
}
