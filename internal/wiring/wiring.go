// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/changed/internal/adapters/config"
	_ "go.trai.ch/changed/internal/adapters/fs"
	_ "go.trai.ch/changed/internal/adapters/git"
	_ "go.trai.ch/changed/internal/adapters/logger"
	_ "go.trai.ch/changed/internal/adapters/shell"
	_ "go.trai.ch/changed/internal/adapters/storage"
	_ "go.trai.ch/changed/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/changed/internal/app"
	_ "go.trai.ch/changed/internal/engine/changed"
	_ "go.trai.ch/changed/internal/engine/scheduler"
)
