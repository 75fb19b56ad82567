// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/omegaup/internal/adapters/config"
	_ "go.trai.ch/omegaup/internal/adapters/fs"
	_ "go.trai.ch/omegaup/internal/adapters/logger"
	_ "go.trai.ch/omegaup/internal/adapters/receipt"
	_ "go.trai.ch/omegaup/internal/adapters/recipe"
	_ "go.trai.ch/omegaup/internal/adapters/shell"
	_ "go.trai.ch/omegaup/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/omegaup/internal/app"
	_ "go.trai.ch/omegaup/internal/engine/installer"
)
