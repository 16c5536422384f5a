package xcodebuild

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/xcb/internal/core/domain"
	"go.trai.ch/xcb/internal/core/ports"
	"go.trai.ch/zerr"
)

// referenceProjects lists project bundles shipped inside the developer
// directory, relative to its root. Any of them is good enough to read
// AVAILABLE_PLATFORMS from.
var referenceProjects = []string{
	"Library/Xcode/Reference/EmptyProject/EmptyProject.xcodeproj",
	"Platforms/MacOSX.platform/Developer/Library/Xcode/Reference/EmptyProject/EmptyProject.xcodeproj",
}

// Locator implements ports.ReferenceLocator. It resolves the active developer
// directory and builds synthetic arguments against a toolchain-bundled
// reference project.
type Locator struct {
	invoker      ports.Invoker
	developerDir string
}

// NewLocator creates a new Locator. developerDir may be empty, in which case
// the DEVELOPER_DIR environment variable and `xcode-select -p` are consulted
// in that order.
func NewLocator(invoker ports.Invoker, developerDir string) *Locator {
	return &Locator{invoker: invoker, developerDir: developerDir}
}

// Locate finds the reference project and returns arguments for probing it
// under a deterministic environment.
func (l *Locator) Locate(ctx context.Context) (domain.Arguments, error) {
	dir, err := l.resolveDeveloperDir(ctx)
	if err != nil {
		return domain.Arguments{}, err
	}

	for _, relative := range referenceProjects {
		path := filepath.Join(dir, relative)
		if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
			return domain.Arguments{
				ProjectPath: path,
				Kind:        domain.KindProject,
				Environment: probeEnvironment(dir),
			}, nil
		}
	}
	return domain.Arguments{}, zerr.With(zerr.New("no reference project found"), "developer_dir", dir)
}

func (l *Locator) resolveDeveloperDir(ctx context.Context) (string, error) {
	if l.developerDir != "" {
		return l.developerDir, nil
	}
	if dir := os.Getenv("DEVELOPER_DIR"); dir != "" {
		return dir, nil
	}

	output, err := l.invoker.Run(ctx, "xcode-select", []string{"-p"}, nil)
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve developer directory")
	}
	dir := strings.TrimSpace(string(output))
	if dir == "" {
		return "", zerr.New("xcode-select reported an empty developer directory")
	}
	return dir, nil
}

// probeEnvironment builds the full environment replacement used when reading
// settings from the reference project: a deterministic locale, no ambient
// xcconfig injection, and only the variables xcodebuild needs to run.
func probeEnvironment(developerDir string) []string {
	env := []string{
		"LC_ALL=C",
		"LANG=C",
		"XCODE_XCCONFIG_FILE=" + os.DevNull,
		"DEVELOPER_DIR=" + developerDir,
	}
	for _, key := range []string{"PATH", "HOME", "TMPDIR"} {
		if value, ok := os.LookupEnv(key); ok {
			env = append(env, key+"="+value)
		}
	}
	return env
}

var _ ports.ReferenceLocator = (*Locator)(nil)
