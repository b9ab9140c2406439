package bootstrap

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ktxload/internal/adapters/cache"
	"go.trai.ch/ktxload/internal/adapters/linker"
	"go.trai.ch/ktxload/internal/adapters/logger"
	"go.trai.ch/ktxload/internal/adapters/manifest"
	"go.trai.ch/ktxload/internal/adapters/platform"
	"go.trai.ch/ktxload/internal/adapters/telemetry"
	"go.trai.ch/ktxload/internal/core/ports"
	"go.trai.ch/ktxload/internal/engine/gate"
)

// NodeID is the unique identifier for the process-wide Bootstrapper.
const NodeID graft.ID = "engine.bootstrap"

func init() {
	graft.Register(graft.Node[*Bootstrapper]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			gate.NodeID,
			linker.NodeID,
			platform.NodeID,
			cache.NodeID,
			manifest.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Bootstrapper, error) {
			g, err := graft.Dep[*gate.Gate](ctx)
			if err != nil {
				return nil, err
			}
			lnk, err := graft.Dep[ports.Linker](ctx)
			if err != nil {
				return nil, err
			}
			probe, err := graft.Dep[ports.EnvironmentProbe](ctx)
			if err != nil {
				return nil, err
			}
			materializer, err := graft.Dep[ports.Materializer](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.ExtractionStore](ctx)
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

			return New(g, lnk, probe, log, tracer,
				NewSystemPathStrategy(lnk, probe),
				NewResourceStrategy(lnk, materializer, store, probe, log, ""),
			), nil
		},
	})
}
