// Package domain contains the core types for loading and querying xcodebuild
// build settings.
package domain

import (
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ProjectKind identifies how a project is handed to xcodebuild.
type ProjectKind string

const (
	// KindProject selects a .xcodeproj file via -project.
	KindProject ProjectKind = "project"
	// KindWorkspace selects a .xcworkspace file via -workspace.
	KindWorkspace ProjectKind = "workspace"
)

// Action is the logical build action a caller is interested in.
//
// The action is carried as metadata on records only; the loader always invokes
// xcodebuild with its own fixed action arguments (see the loader package).
type Action string

const (
	// ActionNone means no specific action was requested.
	ActionNone Action = ""
	// ActionBuild is the default build action.
	ActionBuild Action = "build"
	// ActionTest is the test action.
	ActionTest Action = "test"
	// ActionArchive is the archive action, whose on-disk product layout
	// differs from the default build-products layout.
	ActionArchive Action = "archive"
)

// Arguments identifies the project, scheme and configuration a settings load
// is issued for. It is owned by the caller and never mutated by the core.
type Arguments struct {
	// ProjectPath is the path to the .xcodeproj or .xcworkspace.
	ProjectPath string
	// Kind selects the xcodebuild flag used for ProjectPath.
	Kind ProjectKind
	// Scheme is the scheme to query. May be empty for schemeless projects.
	Scheme string
	// Configuration is the build configuration (e.g. "Release"). Optional.
	Configuration string
	// DerivedDataPath overrides xcodebuild's derived data location. Optional.
	DerivedDataPath string
	// SDK restricts the invocation to a single SDK. Optional.
	SDK string
	// Extra holds raw passthrough flags appended verbatim.
	Extra []string
	// Environment, when non-nil, entirely replaces the ambient environment
	// of the invoked process. Entries are in "KEY=VALUE" form.
	Environment []string
}

// List renders the ordered xcodebuild argument list for these arguments.
// The returned slice is freshly allocated on every call.
func (a Arguments) List() []string {
	args := make([]string, 0, 10+len(a.Extra))

	if a.ProjectPath != "" {
		switch a.Kind {
		case KindWorkspace:
			args = append(args, "-workspace", a.ProjectPath)
		default:
			args = append(args, "-project", a.ProjectPath)
		}
	}
	if a.Scheme != "" {
		args = append(args, "-scheme", a.Scheme)
	}
	if a.Configuration != "" {
		args = append(args, "-configuration", a.Configuration)
	}
	if a.DerivedDataPath != "" {
		args = append(args, "-derivedDataPath", a.DerivedDataPath)
	}
	if a.SDK != "" {
		args = append(args, "-sdk", a.SDK)
	}
	args = append(args, a.Extra...)
	return args
}

// ProjectName returns the project file name without its extension, used to
// identify the originating project in error metadata.
func (a Arguments) ProjectName() string {
	base := filepath.Base(a.ProjectPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Fingerprint computes a stable hash over the rendered argument list and the
// environment override. Two Arguments values with the same fingerprint produce
// the same xcodebuild invocation.
func (a Arguments) Fingerprint() uint64 {
	h := xxhash.New()
	for _, arg := range a.List() {
		_, _ = h.WriteString(arg)
		// Separator to avoid collisions between adjacent arguments.
		_, _ = h.Write([]byte{0})
	}
	_, _ = h.Write([]byte{1})
	for _, entry := range a.Environment {
		_, _ = h.WriteString(entry)
		_, _ = h.Write([]byte{0})
	}
	return h.Sum64()
}
