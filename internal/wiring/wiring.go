// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/voltdev/internal/adapters/cmakecache"
	_ "go.trai.ch/voltdev/internal/adapters/config"
	_ "go.trai.ch/voltdev/internal/adapters/fs"
	_ "go.trai.ch/voltdev/internal/adapters/logger"
	_ "go.trai.ch/voltdev/internal/adapters/shell"
	_ "go.trai.ch/voltdev/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/voltdev/internal/app"
	_ "go.trai.ch/voltdev/internal/engine/formatter"
)
