// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/slategen/slate/internal/adapters/config"
	_ "github.com/slategen/slate/internal/adapters/fs"
	_ "github.com/slategen/slate/internal/adapters/gotpl"
	_ "github.com/slategen/slate/internal/adapters/logger"
	_ "github.com/slategen/slate/internal/adapters/telemetry"
	_ "github.com/slategen/slate/internal/adapters/watcher"
	// Register app nodes.
	_ "github.com/slategen/slate/internal/app"
)
