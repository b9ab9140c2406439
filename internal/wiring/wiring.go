// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/ktxload/internal/adapters/cache"
	_ "go.trai.ch/ktxload/internal/adapters/config"
	_ "go.trai.ch/ktxload/internal/adapters/linker"
	_ "go.trai.ch/ktxload/internal/adapters/logger"
	_ "go.trai.ch/ktxload/internal/adapters/manifest"
	_ "go.trai.ch/ktxload/internal/adapters/platform"
	_ "go.trai.ch/ktxload/internal/adapters/resources"
	_ "go.trai.ch/ktxload/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/ktxload/internal/app"
	_ "go.trai.ch/ktxload/internal/engine/bootstrap"
	_ "go.trai.ch/ktxload/internal/engine/gate"
)
