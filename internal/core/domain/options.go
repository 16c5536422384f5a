package domain

import "time"

const (
	// DefaultTimeout bounds a single xcodebuild invocation. xcodebuild is
	// known to hang indefinitely for some action/project combinations, so
	// every invocation runs under this deadline.
	DefaultTimeout = 600 * time.Second

	// DefaultAttempts is the total number of invocation attempts before a
	// timeout is surfaced to the caller.
	DefaultAttempts = 5

	// DefaultExecutable is the xcodebuild executable resolved via PATH.
	DefaultExecutable = "xcodebuild"
)

// Options holds the tunable knobs for driving xcodebuild.
type Options struct {
	// Timeout is the per-attempt invocation deadline.
	Timeout time.Duration
	// Attempts is the total attempt bound for timeout-classified failures.
	Attempts int
	// Executable is the xcodebuild executable to invoke.
	Executable string
	// DeveloperDir overrides the active developer directory used when
	// probing the toolchain for its supported platforms.
	DeveloperDir string
}

// DefaultOptions returns the built-in defaults.
func DefaultOptions() Options {
	return Options{
		Timeout:    DefaultTimeout,
		Attempts:   DefaultAttempts,
		Executable: DefaultExecutable,
	}
}
