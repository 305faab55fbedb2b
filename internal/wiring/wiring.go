// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/relay/internal/adapters/config"
	_ "go.trai.ch/relay/internal/adapters/fs"
	_ "go.trai.ch/relay/internal/adapters/logger"
	_ "go.trai.ch/relay/internal/adapters/redis"
	_ "go.trai.ch/relay/internal/adapters/swf"
	_ "go.trai.ch/relay/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/relay/internal/app"
)
