package domain

import (
	"slices"
	"strings"
)

// SDK describes one platform the toolchain can build against. Identity is the
// case-insensitive canonical name.
type SDK struct {
	// Name is the canonical SDK name as reported by the toolchain, for
	// example "iphonesimulator" or "macosx26.0".
	Name string
	// Platform is the heuristic device-platform name derived from Name:
	// lowercased, version suffix dropped, simulator qualifier folded onto
	// the matching device platform.
	Platform string
}

// NewSDK constructs an SDK descriptor and derives its platform heuristic.
func NewSDK(name string) SDK {
	return SDK{Name: name, Platform: platformHeuristic(name)}
}

// IsSimulator reports whether the SDK targets a simulator.
func (s SDK) IsSimulator() bool {
	return strings.HasSuffix(strings.ToLower(s.Name), "simulator")
}

func (s SDK) key() string {
	return strings.ToLower(s.Name)
}

func platformHeuristic(name string) string {
	lower := strings.ToLower(strings.TrimSpace(name))
	lower = strings.TrimRight(lower, "0123456789.")
	device, isSimulator := strings.CutSuffix(lower, "simulator")
	if !isSimulator {
		return lower
	}
	switch device {
	case "iphone":
		return "iphoneos"
	case "watch":
		return "watchos"
	default:
		// appletv -> appletvos, xr -> xros
		return device + "os"
	}
}

// SDKSet is a set of SDK descriptors keyed by case-insensitive name.
type SDKSet map[string]SDK

// NewSDKSet builds a set from the given descriptors.
func NewSDKSet(sdks ...SDK) SDKSet {
	set := make(SDKSet, len(sdks))
	for _, sdk := range sdks {
		set.Add(sdk)
	}
	return set
}

// SDKSetFromNames builds a set from raw SDK names, ignoring empty tokens.
func SDKSetFromNames(names []string) SDKSet {
	set := make(SDKSet, len(names))
	for _, name := range names {
		if name != "" {
			set.Add(NewSDK(name))
		}
	}
	return set
}

// Add inserts the descriptor, replacing any existing entry with the same name.
func (s SDKSet) Add(sdk SDK) {
	s[sdk.key()] = sdk
}

// Contains reports whether the set holds an SDK with the given name.
func (s SDKSet) Contains(name string) bool {
	_, ok := s[strings.ToLower(name)]
	return ok
}

// Names returns the canonical names in sorted order.
func (s SDKSet) Names() []string {
	names := make([]string, 0, len(s))
	for _, sdk := range s {
		names = append(names, sdk.Name)
	}
	slices.Sort(names)
	return names
}

// KnownSDKs returns the hardcoded last-known-good set of SDKs. It is the
// final fallback when the toolchain cannot report its platforms at all.
func KnownSDKs() SDKSet {
	return SDKSetFromNames([]string{
		"appletvos",
		"appletvsimulator",
		"iphoneos",
		"iphonesimulator",
		"macosx",
		"watchos",
		"watchsimulator",
		"xros",
		"xrsimulator",
	})
}
