// Package xcodebuild implements platform discovery against the Xcode
// toolchain.
package xcodebuild

import (
	"context"
	"encoding/json"

	"go.trai.ch/xcb/internal/core/domain"
	"go.trai.ch/xcb/internal/core/ports"
	"go.trai.ch/zerr"
)

// Enumerator implements ports.PlatformEnumerator by asking xcodebuild for its
// installed SDKs.
type Enumerator struct {
	invoker    ports.Invoker
	executable string
}

// NewEnumerator creates a new Enumerator invoking the given executable.
func NewEnumerator(invoker ports.Invoker, executable string) *Enumerator {
	if executable == "" {
		executable = domain.DefaultExecutable
	}
	return &Enumerator{invoker: invoker, executable: executable}
}

// SDKs runs `xcodebuild -showsdks -json` and decodes the reported SDK list.
func (e *Enumerator) SDKs(ctx context.Context) (domain.SDKSet, error) {
	output, err := e.invoker.Run(ctx, e.executable, []string{"-showsdks", "-json"}, nil)
	if err != nil {
		return nil, zerr.Wrap(err, "showsdks invocation failed")
	}

	var entries []struct {
		CanonicalName string `json:"canonicalName"`
		Platform      string `json:"platform"`
	}
	if err := json.Unmarshal(output, &entries); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse showsdks output"), "output", string(output))
	}

	set := domain.NewSDKSet()
	for _, entry := range entries {
		if entry.CanonicalName != "" {
			set.Add(domain.NewSDK(entry.CanonicalName))
		}
	}
	return set, nil
}

var _ ports.PlatformEnumerator = (*Enumerator)(nil)
