package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xcb/internal/adapters/logger"
	"go.trai.ch/xcb/internal/core/ports"
	"go.trai.ch/xcb/internal/engine/loader"
	"go.trai.ch/xcb/internal/engine/sdkresolve"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			loader.NodeID,
			sdkresolve.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			settingsLoader, err := graft.Dep[ports.SettingsLoader](ctx)
			if err != nil {
				return nil, err
			}
			chain, err := graft.Dep[*sdkresolve.Chain](ctx)
			if err != nil {
				return nil, err
			}
			return New(settingsLoader, chain), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application, Logger: log}, nil
		},
	})
}
