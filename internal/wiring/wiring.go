// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/forge/internal/adapters/fs"
	_ "go.trai.ch/forge/internal/adapters/logger"
	_ "go.trai.ch/forge/internal/adapters/registry"
	_ "go.trai.ch/forge/internal/adapters/shell"
	_ "go.trai.ch/forge/internal/adapters/specfile"
	_ "go.trai.ch/forge/internal/adapters/telemetry"
	// Register app and recipe nodes.
	_ "go.trai.ch/forge/internal/app"
	_ "go.trai.ch/forge/internal/recipes"
)
