package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ktxload/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/ktxload/internal/adapters/linker"   //nolint:depguard // Wired in app layer
	"go.trai.ch/ktxload/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/ktxload/internal/adapters/manifest" //nolint:depguard // Wired in app layer
	"go.trai.ch/ktxload/internal/adapters/platform" //nolint:depguard // Wired in app layer
	"go.trai.ch/ktxload/internal/core/ports"
	"go.trai.ch/ktxload/internal/engine/bootstrap"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			platform.NodeID,
			linker.NodeID,
			manifest.NodeID,
			bootstrap.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	probe, err := graft.Dep[ports.EnvironmentProbe](ctx)
	if err != nil {
		return nil, err
	}
	lnk, err := graft.Dep[ports.Linker](ctx)
	if err != nil {
		return nil, err
	}
	store, err := graft.Dep[ports.ExtractionStore](ctx)
	if err != nil {
		return nil, err
	}
	b, err := graft.Dep[*bootstrap.Bootstrapper](ctx)
	if err != nil {
		return nil, err
	}
	return New(loader, log, probe, lnk, store, b), nil
}
