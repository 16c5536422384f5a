package sdkresolve

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xcb/internal/adapters/logger"
	"go.trai.ch/xcb/internal/adapters/xcodebuild"
	"go.trai.ch/xcb/internal/core/ports"
	"go.trai.ch/xcb/internal/engine/loader"
)

// NodeID is the unique identifier for the SDK resolution chain Graft node.
const NodeID graft.ID = "engine.sdk_chain"

func init() {
	graft.Register(graft.Node[*Chain]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			xcodebuild.EnumeratorNodeID,
			xcodebuild.LocatorNodeID,
			loader.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Chain, error) {
			enumerator, err := graft.Dep[ports.PlatformEnumerator](ctx)
			if err != nil {
				return nil, err
			}
			locator, err := graft.Dep[ports.ReferenceLocator](ctx)
			if err != nil {
				return nil, err
			}
			settingsLoader, err := graft.Dep[ports.SettingsLoader](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(enumerator, locator, settingsLoader, log), nil
		},
	})
}
