// Package app implements the application layer for xcb.
package app

import (
	"context"

	"go.trai.ch/xcb/internal/core/domain"
	"go.trai.ch/xcb/internal/core/ports"
	"go.trai.ch/xcb/internal/engine/sdkresolve"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader ports.SettingsLoader
	chain  *sdkresolve.Chain
}

// New creates a new App instance.
func New(loader ports.SettingsLoader, chain *sdkresolve.Chain) *App {
	return &App{
		loader: loader,
		chain:  chain,
	}
}

// Settings loads the per-target build settings for the given arguments.
func (a *App) Settings(ctx context.Context, args domain.Arguments, action domain.Action) ([]domain.Record, error) {
	if args.ProjectPath == "" {
		return nil, zerr.New("no project specified")
	}
	records, err := a.loader.Load(ctx, args, action)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load build settings")
	}
	return records, nil
}

// SDKs resolves the set of SDKs the toolchain supports.
func (a *App) SDKs(ctx context.Context) domain.SDKSet {
	return a.chain.Resolve(ctx)
}

// Components bundles the resolved application parts handed to the CLI.
type Components struct {
	App    *App
	Logger ports.Logger
}
