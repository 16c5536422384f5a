package ports

import (
	"context"

	"go.trai.ch/xcb/internal/core/domain"
)

// PlatformEnumerator queries the toolchain directly for the SDKs it supports.
// An empty set is a valid result; errors degrade to "no value" in the
// resolution chain.
//
//go:generate go run go.uber.org/mock/mockgen -source=platforms.go -destination=mocks/mock_platforms.go -package=mocks
type PlatformEnumerator interface {
	SDKs(ctx context.Context) (domain.SDKSet, error)
}

// ReferenceLocator finds the toolchain-bundled reference project and builds
// synthetic arguments against it, used as the second platform-discovery
// source.
type ReferenceLocator interface {
	Locate(ctx context.Context) (domain.Arguments, error)
}
