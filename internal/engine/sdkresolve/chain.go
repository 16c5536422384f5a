// Package sdkresolve resolves the set of SDKs the toolchain supports through
// a priority-ordered chain of discovery sources.
package sdkresolve

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"go.trai.ch/xcb/internal/core/domain"
	"go.trai.ch/xcb/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Chain resolves the supported SDK set exactly once per process lifetime and
// serves the cached value to all subsequent callers.
//
// Three sources are consulted, first non-empty result wins, no merging:
//
//  1. direct platform enumeration against the toolchain,
//  2. reading AVAILABLE_PLATFORMS from a toolchain-bundled reference project,
//  3. a hardcoded last-known-good set.
//
// Sources 1 and 2 run concurrently, but selection is priority-first, never
// completion-order-first. The chain never fails: each source degrades to
// "no value" and source 3 always yields a non-empty set.
type Chain struct {
	enumerator ports.PlatformEnumerator
	locator    ports.ReferenceLocator
	loader     ports.SettingsLoader
	logger     ports.Logger
	fallback   domain.SDKSet

	mu       sync.Mutex
	resolved domain.SDKSet
}

// New creates a new Chain with the hardcoded known-SDK fallback.
func New(
	enumerator ports.PlatformEnumerator,
	locator ports.ReferenceLocator,
	loader ports.SettingsLoader,
	logger ports.Logger,
) *Chain {
	return &Chain{
		enumerator: enumerator,
		locator:    locator,
		loader:     loader,
		logger:     logger,
		fallback:   domain.KnownSDKs(),
	}
}

// Resolve returns the supported SDK set. The first call runs the sources;
// every later call returns the identical cached set without re-running them.
// Concurrent first callers serialize on the initial write and observe the
// same value.
func (c *Chain) Resolve(ctx context.Context) domain.SDKSet {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.resolved != nil {
		return c.resolved
	}
	c.resolved = c.resolve(ctx)
	return c.resolved
}

// Reset clears the cached set. Only tests use it; production callers resolve
// once per process.
func (c *Chain) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resolved = nil
}

func (c *Chain) resolve(ctx context.Context) domain.SDKSet {
	var enumerated, probed domain.SDKSet

	// Both sources are launched up front for latency. Their results are
	// buffered and the winner is picked strictly by priority after both
	// have definitively resolved.
	var g errgroup.Group
	g.Go(func() error {
		set, err := c.enumerator.SDKs(ctx)
		if err != nil {
			c.logger.Info(fmt.Sprintf("platform enumeration unavailable: %v", err))
			return nil
		}
		enumerated = set
		return nil
	})
	g.Go(func() error {
		probed = c.probeReferenceProject(ctx)
		return nil
	})
	_ = g.Wait()

	if len(enumerated) > 0 {
		c.logger.Info("resolved SDKs from toolchain enumeration: " + strings.Join(enumerated.Names(), " "))
		return enumerated
	}
	if len(probed) > 0 {
		c.logger.Info("resolved SDKs from reference project: " + strings.Join(probed.Names(), " "))
		return probed
	}
	c.logger.Info("falling back to known SDK set")
	return c.fallback
}

// probeReferenceProject reads AVAILABLE_PLATFORMS from the toolchain-bundled
// reference project. Any failure, including the project or the tool being
// absent entirely, degrades to "no value".
func (c *Chain) probeReferenceProject(ctx context.Context) domain.SDKSet {
	args, err := c.locator.Locate(ctx)
	if err != nil {
		c.logger.Info(fmt.Sprintf("reference project unavailable: %v", err))
		return nil
	}

	records, err := c.loader.Load(ctx, args, domain.ActionNone)
	if err != nil {
		c.logger.Info(fmt.Sprintf("reference project probe failed: %v", err))
		return nil
	}

	for _, record := range records {
		if value, getErr := record.Get("AVAILABLE_PLATFORMS"); getErr == nil {
			if set := domain.SDKSetFromNames(strings.Fields(value)); len(set) > 0 {
				return set
			}
		}
	}
	return nil
}
