package sdkresolve_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/xcb/internal/core/domain"
	"go.trai.ch/xcb/internal/core/ports/mocks"
	"go.trai.ch/xcb/internal/engine/sdkresolve"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type chainTestMocks struct {
	enumerator *mocks.MockPlatformEnumerator
	locator    *mocks.MockReferenceLocator
	loader     *mocks.MockSettingsLoader
}

func setupChainTest(t *testing.T) (*sdkresolve.Chain, chainTestMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := chainTestMocks{
		enumerator: mocks.NewMockPlatformEnumerator(ctrl),
		locator:    mocks.NewMockReferenceLocator(ctrl),
		loader:     mocks.NewMockSettingsLoader(ctrl),
	}

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	chain := sdkresolve.New(m.enumerator, m.locator, m.loader, log)
	return chain, m
}

func referenceRecord(platforms string) domain.Record {
	return domain.NewRecord("Reference", map[string]string{
		"AVAILABLE_PLATFORMS": platforms,
	}, domain.Arguments{}, domain.ActionNone)
}

func TestChain_EnumerationWins(t *testing.T) {
	chain, m := setupChainTest(t)

	m.enumerator.EXPECT().SDKs(gomock.Any()).
		Return(domain.SDKSetFromNames([]string{"iphoneos", "macosx"}), nil)
	m.locator.EXPECT().Locate(gomock.Any()).
		Return(domain.Arguments{ProjectPath: "/dev/Reference.xcodeproj"}, nil).
		AnyTimes()
	m.loader.EXPECT().Load(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.Record{referenceRecord("watchos")}, nil).
		AnyTimes()

	set := chain.Resolve(context.Background())
	assert.Equal(t, []string{"iphoneos", "macosx"}, set.Names())
}

func TestChain_PriorityBeatsCompletionOrder(t *testing.T) {
	chain, m := setupChainTest(t)

	// The reference probe finishes first, but the slower enumeration result
	// must still win because it has higher priority.
	m.enumerator.EXPECT().SDKs(gomock.Any()).
		DoAndReturn(func(context.Context) (domain.SDKSet, error) {
			time.Sleep(50 * time.Millisecond)
			return domain.SDKSetFromNames([]string{"iphoneos"}), nil
		})
	m.locator.EXPECT().Locate(gomock.Any()).
		Return(domain.Arguments{ProjectPath: "/dev/Reference.xcodeproj"}, nil)
	m.loader.EXPECT().Load(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.Record{referenceRecord("watchos")}, nil)

	set := chain.Resolve(context.Background())
	assert.Equal(t, []string{"iphoneos"}, set.Names())
}

func TestChain_FallsBackToReferenceProject(t *testing.T) {
	chain, m := setupChainTest(t)

	m.enumerator.EXPECT().SDKs(gomock.Any()).
		Return(nil, zerr.New("xcodebuild not installed"))
	m.locator.EXPECT().Locate(gomock.Any()).
		Return(domain.Arguments{ProjectPath: "/dev/Reference.xcodeproj"}, nil)
	m.loader.EXPECT().Load(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]domain.Record{referenceRecord("iphoneos iphonesimulator macosx")}, nil)

	set := chain.Resolve(context.Background())
	assert.Equal(t, []string{"iphoneos", "iphonesimulator", "macosx"}, set.Names())
}

func TestChain_HardcodedFallbackAndCaching(t *testing.T) {
	chain, m := setupChainTest(t)

	// Both discovery sources yield nothing usable, exactly once each.
	m.enumerator.EXPECT().SDKs(gomock.Any()).
		Return(domain.NewSDKSet(), nil).
		Times(1)
	m.locator.EXPECT().Locate(gomock.Any()).
		Return(domain.Arguments{}, zerr.New("tool unavailable")).
		Times(1)

	first := chain.Resolve(context.Background())
	require.NotEmpty(t, first)
	assert.Equal(t, domain.KnownSDKs().Names(), first.Names())

	// The second call serves the cached set without re-invoking any source.
	second := chain.Resolve(context.Background())
	assert.Equal(t, first.Names(), second.Names())
}

func TestChain_ProbeFailureDegradesToFallback(t *testing.T) {
	chain, m := setupChainTest(t)

	m.enumerator.EXPECT().SDKs(gomock.Any()).
		Return(nil, zerr.New("enumeration failed"))
	m.locator.EXPECT().Locate(gomock.Any()).
		Return(domain.Arguments{ProjectPath: "/dev/Reference.xcodeproj"}, nil)
	m.loader.EXPECT().Load(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, zerr.With(zerr.Wrap(domain.ErrProcessSpawn, "spawn failed"), "executable", "xcodebuild"))

	set := chain.Resolve(context.Background())
	assert.Equal(t, domain.KnownSDKs().Names(), set.Names())
}

func TestChain_ResetAllowsReresolution(t *testing.T) {
	chain, m := setupChainTest(t)

	m.enumerator.EXPECT().SDKs(gomock.Any()).
		Return(domain.SDKSetFromNames([]string{"iphoneos"}), nil).
		Times(2)
	m.locator.EXPECT().Locate(gomock.Any()).
		Return(domain.Arguments{}, zerr.New("unavailable")).
		Times(2)

	_ = chain.Resolve(context.Background())
	chain.Reset()
	set := chain.Resolve(context.Background())
	assert.Equal(t, []string{"iphoneos"}, set.Names())
}
