// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/ecstagger/internal/adapters/config"
	_ "go.trai.ch/ecstagger/internal/adapters/ecs"
	_ "go.trai.ch/ecstagger/internal/adapters/eventbridge"
	_ "go.trai.ch/ecstagger/internal/adapters/logger"
	_ "go.trai.ch/ecstagger/internal/adapters/sink"
	_ "go.trai.ch/ecstagger/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/ecstagger/internal/app"
)
