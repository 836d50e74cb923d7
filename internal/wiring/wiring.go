// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/depcollect/internal/adapters/config"
	_ "go.trai.ch/depcollect/internal/adapters/fs"
	_ "go.trai.ch/depcollect/internal/adapters/ldd"
	_ "go.trai.ch/depcollect/internal/adapters/logger"
	_ "go.trai.ch/depcollect/internal/adapters/manifest"
	_ "go.trai.ch/depcollect/internal/adapters/shell"
	_ "go.trai.ch/depcollect/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.trai.ch/depcollect/internal/app"
)
