package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xcb/internal/core/domain"
	"go.trai.ch/xcb/internal/core/ports"
)

const (
	// NodeID identifies the config loader node.
	NodeID graft.ID = "adapter.config_loader"
	// OptionsNodeID identifies the resolved options node.
	OptionsNodeID graft.ID = "adapter.options"
)

// DefaultFilename is the configuration file looked up in the working directory.
const DefaultFilename = "xcb.yaml"

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ConfigLoader, error) {
			return &FileConfigLoader{Filename: DefaultFilename}, nil
		},
	})

	graft.Register(graft.Node[domain.Options]{
		ID:        OptionsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (domain.Options, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return domain.Options{}, err
			}
			return loader.Load(".")
		},
	})
}
