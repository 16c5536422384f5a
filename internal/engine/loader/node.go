package loader

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xcb/internal/adapters/config"
	"go.trai.ch/xcb/internal/adapters/logger"
	"go.trai.ch/xcb/internal/adapters/shell"
	"go.trai.ch/xcb/internal/core/domain"
	"go.trai.ch/xcb/internal/core/ports"
)

// NodeID is the unique identifier for the settings loader Graft node.
const NodeID graft.ID = "engine.settings_loader"

func init() {
	graft.Register(graft.Node[ports.SettingsLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			logger.NodeID,
			config.OptionsNodeID,
		},
		Run: func(ctx context.Context) (ports.SettingsLoader, error) {
			invoker, err := graft.Dep[ports.Invoker](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			opts, err := graft.Dep[domain.Options](ctx)
			if err != nil {
				return nil, err
			}
			return New(invoker, log, opts), nil
		},
	})
}
