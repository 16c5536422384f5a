// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/xcb/internal/adapters/config"
	_ "go.trai.ch/xcb/internal/adapters/logger"
	_ "go.trai.ch/xcb/internal/adapters/shell"
	_ "go.trai.ch/xcb/internal/adapters/xcodebuild"
	// Register app and engine nodes.
	_ "go.trai.ch/xcb/internal/app"
	_ "go.trai.ch/xcb/internal/engine/loader"
	_ "go.trai.ch/xcb/internal/engine/sdkresolve"
)
