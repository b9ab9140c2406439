package manifest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ktxload/internal/core/ports"
)

// NodeID is the unique identifier for the extraction store Graft node.
const NodeID graft.ID = "adapter.manifest"

func init() {
	graft.Register(graft.Node[ports.ExtractionStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ExtractionStore, error) {
			return NewStore(), nil
		},
	})
}
