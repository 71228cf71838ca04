// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/lode/internal/adapters/config"
	_ "go.trai.ch/lode/internal/adapters/fs"
	_ "go.trai.ch/lode/internal/adapters/logger"
	_ "go.trai.ch/lode/internal/adapters/report"
	_ "go.trai.ch/lode/internal/adapters/script"
	_ "go.trai.ch/lode/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/lode/internal/app"
)
