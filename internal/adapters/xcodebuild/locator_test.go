package xcodebuild_test

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/xcb/internal/adapters/xcodebuild"
	"go.trai.ch/xcb/internal/core/domain"
	"go.trai.ch/xcb/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

// developerDirWithReference creates a fake developer directory containing a
// reference project bundle.
func developerDirWithReference(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	project := filepath.Join(dir, "Library", "Xcode", "Reference", "EmptyProject", "EmptyProject.xcodeproj")
	require.NoError(t, os.MkdirAll(project, 0o750))
	return dir
}

func TestLocator_FindsReferenceProject(t *testing.T) {
	ctrl := gomock.NewController(t)
	invoker := mocks.NewMockInvoker(ctrl)
	dir := developerDirWithReference(t)

	locator := xcodebuild.NewLocator(invoker, dir)
	args, err := locator.Locate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, domain.KindProject, args.Kind)
	assert.True(t, strings.HasSuffix(args.ProjectPath, "EmptyProject.xcodeproj"))
	assert.True(t, strings.HasPrefix(args.ProjectPath, dir))
}

func TestLocator_ProbeEnvironmentIsDeterministic(t *testing.T) {
	ctrl := gomock.NewController(t)
	invoker := mocks.NewMockInvoker(ctrl)
	dir := developerDirWithReference(t)

	locator := xcodebuild.NewLocator(invoker, dir)
	args, err := locator.Locate(context.Background())
	require.NoError(t, err)

	require.NotNil(t, args.Environment)
	assert.True(t, slices.Contains(args.Environment, "LC_ALL=C"))
	assert.True(t, slices.Contains(args.Environment, "XCODE_XCCONFIG_FILE="+os.DevNull))
	assert.True(t, slices.Contains(args.Environment, "DEVELOPER_DIR="+dir))
}

func TestLocator_UsesDeveloperDirEnv(t *testing.T) {
	ctrl := gomock.NewController(t)
	invoker := mocks.NewMockInvoker(ctrl)
	dir := developerDirWithReference(t)
	t.Setenv("DEVELOPER_DIR", dir)

	locator := xcodebuild.NewLocator(invoker, "")
	args, err := locator.Locate(context.Background())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(args.ProjectPath, dir))
}

func TestLocator_AsksXcodeSelect(t *testing.T) {
	ctrl := gomock.NewController(t)
	invoker := mocks.NewMockInvoker(ctrl)
	dir := developerDirWithReference(t)
	t.Setenv("DEVELOPER_DIR", "")

	invoker.EXPECT().
		Run(gomock.Any(), "xcode-select", []string{"-p"}, gomock.Nil()).
		Return([]byte(dir+"\n"), nil)

	locator := xcodebuild.NewLocator(invoker, "")
	args, err := locator.Locate(context.Background())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(args.ProjectPath, dir))
}

func TestLocator_SpawnFailureDegrades(t *testing.T) {
	ctrl := gomock.NewController(t)
	invoker := mocks.NewMockInvoker(ctrl)
	t.Setenv("DEVELOPER_DIR", "")

	invoker.EXPECT().
		Run(gomock.Any(), "xcode-select", gomock.Any(), gomock.Any()).
		Return(nil, zerr.With(zerr.Wrap(domain.ErrProcessSpawn, "spawn failed"), "executable", "xcode-select"))

	locator := xcodebuild.NewLocator(invoker, "")
	_, err := locator.Locate(context.Background())
	require.Error(t, err)
}

func TestLocator_NoReferenceProject(t *testing.T) {
	ctrl := gomock.NewController(t)
	invoker := mocks.NewMockInvoker(ctrl)

	locator := xcodebuild.NewLocator(invoker, t.TempDir())
	_, err := locator.Locate(context.Background())
	require.Error(t, err)
}
