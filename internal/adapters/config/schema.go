package config

// File represents the structure of the xcb.yaml configuration file.
// All fields are optional; absent fields keep their defaults.
type File struct {
	// Timeout is the per-invocation deadline as a Go duration string.
	Timeout string `yaml:"timeout"`
	// Attempts is the total attempt bound for timed-out invocations.
	Attempts int `yaml:"attempts"`
	// Xcodebuild overrides the xcodebuild executable path.
	Xcodebuild string `yaml:"xcodebuild"`
	// DeveloperDir overrides the active developer directory.
	DeveloperDir string `yaml:"developerDir"`
}
