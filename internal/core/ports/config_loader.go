package ports

import "go.trai.ch/xcb/internal/core/domain"

// ConfigLoader loads the tool options from the given working directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	Load(cwd string) (domain.Options, error)
}
