package ports

import (
	"context"

	"go.trai.ch/xcb/internal/core/domain"
)

// SettingsLoader obtains build settings records for the given arguments.
//
// The action is attached to the resulting records as metadata only; it is not
// the literal action the toolchain is invoked with.
//
//go:generate go run go.uber.org/mock/mockgen -source=settings_loader.go -destination=mocks/mock_settings_loader.go -package=mocks
type SettingsLoader interface {
	Load(ctx context.Context, args domain.Arguments, action domain.Action) ([]domain.Record, error)
}
