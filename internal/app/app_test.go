package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/xcb/internal/app"
	"go.trai.ch/xcb/internal/core/domain"
	"go.trai.ch/xcb/internal/core/ports/mocks"
	"go.trai.ch/xcb/internal/engine/sdkresolve"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func setupAppTest(t *testing.T) (*app.App, *mocks.MockSettingsLoader) {
	t.Helper()
	ctrl := gomock.NewController(t)
	settingsLoader := mocks.NewMockSettingsLoader(ctrl)

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	enumerator := mocks.NewMockPlatformEnumerator(ctrl)
	enumerator.EXPECT().SDKs(gomock.Any()).
		Return(domain.SDKSetFromNames([]string{"iphoneos"}), nil).
		AnyTimes()
	locator := mocks.NewMockReferenceLocator(ctrl)
	locator.EXPECT().Locate(gomock.Any()).
		Return(domain.Arguments{}, zerr.New("unavailable")).
		AnyTimes()

	chain := sdkresolve.New(enumerator, locator, settingsLoader, log)
	return app.New(settingsLoader, chain), settingsLoader
}

func TestApp_Settings(t *testing.T) {
	application, settingsLoader := setupAppTest(t)
	args := domain.Arguments{ProjectPath: "/tmp/App.xcodeproj", Scheme: "App"}

	settingsLoader.EXPECT().
		Load(gomock.Any(), args, domain.ActionBuild).
		Return([]domain.Record{
			domain.NewRecord("App", map[string]string{"PRODUCT_NAME": "App"}, args, domain.ActionBuild),
		}, nil)

	records, err := application.Settings(context.Background(), args, domain.ActionBuild)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "App", records[0].Target)
}

func TestApp_Settings_RequiresProject(t *testing.T) {
	application, _ := setupAppTest(t)

	_, err := application.Settings(context.Background(), domain.Arguments{}, domain.ActionBuild)
	require.Error(t, err)
}

func TestApp_SDKs(t *testing.T) {
	application, _ := setupAppTest(t)

	set := application.SDKs(context.Background())
	assert.Equal(t, []string{"iphoneos"}, set.Names())
}
