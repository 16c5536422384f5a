package xcodebuild

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/xcb/internal/adapters/config"
	"go.trai.ch/xcb/internal/adapters/shell"
	"go.trai.ch/xcb/internal/core/domain"
	"go.trai.ch/xcb/internal/core/ports"
)

const (
	// EnumeratorNodeID identifies the platform enumerator node.
	EnumeratorNodeID graft.ID = "adapter.platform_enumerator"
	// LocatorNodeID identifies the reference project locator node.
	LocatorNodeID graft.ID = "adapter.reference_locator"
)

func init() {
	graft.Register(graft.Node[ports.PlatformEnumerator]{
		ID:        EnumeratorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, config.OptionsNodeID},
		Run: func(ctx context.Context) (ports.PlatformEnumerator, error) {
			invoker, err := graft.Dep[ports.Invoker](ctx)
			if err != nil {
				return nil, err
			}
			opts, err := graft.Dep[domain.Options](ctx)
			if err != nil {
				return nil, err
			}
			return NewEnumerator(invoker, opts.Executable), nil
		},
	})

	graft.Register(graft.Node[ports.ReferenceLocator]{
		ID:        LocatorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, config.OptionsNodeID},
		Run: func(ctx context.Context) (ports.ReferenceLocator, error) {
			invoker, err := graft.Dep[ports.Invoker](ctx)
			if err != nil {
				return nil, err
			}
			opts, err := graft.Dep[domain.Options](ctx)
			if err != nil {
				return nil, err
			}
			return NewLocator(invoker, opts.DeveloperDir), nil
		},
	})
}
