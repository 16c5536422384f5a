package domain

import "go.trai.ch/zerr"

var (
	// ErrProcessSpawn is returned when an external process cannot be started at all.
	ErrProcessSpawn = zerr.New("process could not be spawned")

	// ErrProcessExit is returned when an external process terminates with a non-zero status.
	ErrProcessExit = zerr.New("process exited with failure")

	// ErrTimeout is returned when an xcodebuild invocation exceeds the configured deadline.
	ErrTimeout = zerr.New("xcodebuild invocation timed out")

	// ErrDecode is returned when captured process output is not valid UTF-8 text.
	ErrDecode = zerr.New("process output is not valid text")

	// ErrMissingSetting is returned when a build setting key is absent from a record.
	ErrMissingSetting = zerr.New("build setting is missing")

	// ErrUnrecognizedSetting is returned when a build setting has a value outside the known enumeration.
	ErrUnrecognizedSetting = zerr.New("build setting has unrecognized value")
)
