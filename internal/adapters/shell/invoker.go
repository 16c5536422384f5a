// Package shell provides the process invoker adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"go.trai.ch/xcb/internal/core/domain"
	"go.trai.ch/xcb/internal/core/ports"
	"go.trai.ch/zerr"
)

// waitDelay bounds how long Wait blocks on pipe teardown after the context
// kills the process, so a cancelled invocation always releases its resources.
const waitDelay = 10 * time.Second

// Invoker implements ports.Invoker using os/exec.
type Invoker struct {
	logger ports.Logger
}

// NewInvoker creates a new Invoker.
func NewInvoker(logger ports.Logger) *Invoker {
	return &Invoker{logger: logger}
}

// Run launches the executable with the given arguments and captures its
// standard output. A non-nil env entirely replaces the ambient environment.
// Standard error is not part of the contract; it is forwarded to the logger.
func (i *Invoker) Run(ctx context.Context, executable string, args []string, env []string) ([]byte, error) {
	if executable == "" {
		return nil, zerr.Wrap(domain.ErrProcessSpawn, "empty executable path")
	}

	cmd := exec.CommandContext(ctx, executable, args...) //nolint:gosec // executable is provided by caller
	cmd.WaitDelay = waitDelay
	if env != nil {
		cmd.Env = env
	}

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &logWriter{logger: i.logger}

	if err := cmd.Start(); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrProcessSpawn, err.Error()), "executable", executable)
	}

	if err := cmd.Wait(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return nil, zerr.With(
			zerr.With(zerr.Wrap(domain.ErrProcessExit, "command failed"), "executable", executable),
			"exit_code", exitCode,
		)
	}

	return stdout.Bytes(), nil
}

// logWriter forwards the child process's standard error to the logger line
// by line. Partial writes are not buffered; xcodebuild writes whole lines.
type logWriter struct {
	logger ports.Logger
}

func (w *logWriter) Write(p []byte) (int, error) {
	for line := range strings.Lines(strings.TrimSuffix(string(p), "\n")) {
		w.logger.Warn(strings.TrimSuffix(line, "\n"))
	}
	return len(p), nil
}

// Ensure Invoker satisfies the interface.
var _ ports.Invoker = (*Invoker)(nil)
