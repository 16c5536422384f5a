package loader_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/xcb/internal/core/domain"
	"go.trai.ch/xcb/internal/core/ports/mocks"
	"go.trai.ch/xcb/internal/engine/loader"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const settingsText = "Build settings for action build and target App:\n" +
	"    PRODUCT_NAME = App\n"

func setupLoaderTest(t *testing.T, opts domain.Options) (*loader.Loader, *mocks.MockInvoker) {
	t.Helper()
	ctrl := gomock.NewController(t)
	invoker := mocks.NewMockInvoker(ctrl)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	return loader.New(invoker, log, opts), invoker
}

func TestLoader_Success(t *testing.T) {
	l, invoker := setupLoaderTest(t, domain.Options{Executable: "xcodebuild"})
	args := domain.Arguments{ProjectPath: "/tmp/App.xcodeproj", Scheme: "App"}

	invoker.EXPECT().
		Run(gomock.Any(), "xcodebuild", gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, _ string, invokeArgs, _ []string) ([]byte, error) {
			// The hang-avoidance workaround is always appended, regardless
			// of the logical action.
			assert.Equal(t, []string{
				"-project", "/tmp/App.xcodeproj",
				"-scheme", "App",
				"archive", "-showBuildSettings", "-skipUnavailableActions",
			}, invokeArgs)
			return []byte(settingsText), nil
		})

	records, err := l.Load(context.Background(), args, domain.ActionTest)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "App", records[0].Target)
	assert.Equal(t, domain.ActionTest, records[0].Action)
	assert.Equal(t, args.Scheme, records[0].Arguments.Scheme)
}

func TestLoader_TimeoutRetriesFiveTimes(t *testing.T) {
	l, invoker := setupLoaderTest(t, domain.Options{
		Timeout:  20 * time.Millisecond,
		Attempts: 5,
	})
	args := domain.Arguments{ProjectPath: "/tmp/Hang.xcodeproj"}

	terminated := 0
	invoker.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _, _ []string) ([]byte, error) {
			// Simulate a hung process: it only returns once the loader's
			// deadline cancels it.
			<-ctx.Done()
			terminated++
			return nil, zerr.With(zerr.Wrap(domain.ErrProcessExit, "command failed"), "exit_code", -1)
		}).
		Times(5)

	_, err := l.Load(context.Background(), args, domain.ActionBuild)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTimeout)
	assert.Equal(t, 5, terminated)
}

func TestLoader_SpawnFailureIsNotRetried(t *testing.T) {
	l, invoker := setupLoaderTest(t, domain.Options{Attempts: 5})
	args := domain.Arguments{ProjectPath: "/tmp/App.xcodeproj"}

	invoker.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, zerr.With(zerr.Wrap(domain.ErrProcessSpawn, "spawn failed"), "executable", "xcodebuild")).
		Times(1)

	_, err := l.Load(context.Background(), args, domain.ActionBuild)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProcessSpawn)
}

func TestLoader_DecodeFailureIsNotRetried(t *testing.T) {
	l, invoker := setupLoaderTest(t, domain.Options{Attempts: 5})
	args := domain.Arguments{ProjectPath: "/tmp/App.xcodeproj"}

	invoker.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]byte{0xff, 0xfe, 0xfd}, nil).
		Times(1)

	_, err := l.Load(context.Background(), args, domain.ActionBuild)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDecode)
}

func TestLoader_MemoizesPerArgumentsAndAction(t *testing.T) {
	l, invoker := setupLoaderTest(t, domain.Options{})
	args := domain.Arguments{ProjectPath: "/tmp/App.xcodeproj", Scheme: "App"}

	invoker.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]byte(settingsText), nil).
		Times(1)

	first, err := l.Load(context.Background(), args, domain.ActionBuild)
	require.NoError(t, err)
	second, err := l.Load(context.Background(), args, domain.ActionBuild)
	require.NoError(t, err)
	require.Len(t, second, len(first))
	for i := range first {
		assert.True(t, first[i].Equal(second[i]))
	}
}

func TestLoader_DistinctActionsAreLoadedSeparately(t *testing.T) {
	l, invoker := setupLoaderTest(t, domain.Options{})
	args := domain.Arguments{ProjectPath: "/tmp/App.xcodeproj", Scheme: "App"}

	invoker.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]byte(settingsText), nil).
		Times(2)

	buildRecords, err := l.Load(context.Background(), args, domain.ActionBuild)
	require.NoError(t, err)
	archiveRecords, err := l.Load(context.Background(), args, domain.ActionArchive)
	require.NoError(t, err)

	assert.Equal(t, domain.ActionBuild, buildRecords[0].Action)
	assert.Equal(t, domain.ActionArchive, archiveRecords[0].Action)
}

func TestLoader_CallerCancellationAbortsRetryLoop(t *testing.T) {
	l, invoker := setupLoaderTest(t, domain.Options{
		Timeout:  10 * time.Millisecond,
		Attempts: 5,
	})
	args := domain.Arguments{ProjectPath: "/tmp/Hang.xcodeproj"}

	ctx, cancel := context.WithCancel(context.Background())

	invoker.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(runCtx context.Context, _ string, _, _ []string) ([]byte, error) {
			// Cancel the caller while the first attempt is in flight; no
			// further attempts may start.
			cancel()
			<-runCtx.Done()
			return nil, zerr.With(zerr.Wrap(domain.ErrProcessExit, "command failed"), "exit_code", -1)
		}).
		Times(1)

	_, err := l.Load(ctx, args, domain.ActionBuild)
	require.Error(t, err)
}
