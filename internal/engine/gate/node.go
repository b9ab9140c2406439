package gate

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the process-wide load gate.
const NodeID graft.ID = "engine.gate"

func init() {
	graft.Register(graft.Node[*Gate]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Gate, error) {
			return New(), nil
		},
	})
}
