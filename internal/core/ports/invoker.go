// Package ports defines the core interfaces for the application.
package ports

import "context"

// Invoker launches an external command and captures its standard output.
//
// env follows full-replacement semantics: nil means the ambient environment is
// inherited, a non-nil slice entirely replaces it. Cancelling ctx terminates
// the in-flight process and releases its resources.
//
// Spawn failures and non-zero exits are reported as domain.ErrProcessSpawn and
// domain.ErrProcessExit respectively.
//
//go:generate go run go.uber.org/mock/mockgen -source=invoker.go -destination=mocks/mock_invoker.go -package=mocks
type Invoker interface {
	Run(ctx context.Context, executable string, args []string, env []string) ([]byte, error)
}
