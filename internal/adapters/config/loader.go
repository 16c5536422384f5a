// Package config provides the configuration loader for xcb.
package config

import (
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/xcb/internal/core/domain"
	"go.trai.ch/xcb/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
}

// Load reads the configuration from the given working directory. A missing
// file is not an error; the built-in defaults apply.
func (l *FileConfigLoader) Load(cwd string) (domain.Options, error) {
	return Load(filepath.Join(cwd, l.Filename))
}

// Load reads a configuration file from the given path and returns the
// resulting options.
func Load(path string) (domain.Options, error) {
	opts := domain.DefaultOptions()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return opts, zerr.Wrap(err, "failed to read config file")
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return opts, zerr.Wrap(err, "failed to parse config file")
	}

	if file.Timeout != "" {
		timeout, err := time.ParseDuration(file.Timeout)
		if err != nil {
			return opts, zerr.With(zerr.Wrap(err, "invalid timeout"), "timeout", file.Timeout)
		}
		if timeout <= 0 {
			return opts, zerr.With(zerr.New("timeout must be positive"), "timeout", file.Timeout)
		}
		opts.Timeout = timeout
	}
	if file.Attempts != 0 {
		if file.Attempts < 1 {
			return opts, zerr.With(zerr.New("attempts must be at least 1"), "attempts", file.Attempts)
		}
		opts.Attempts = file.Attempts
	}
	if file.Xcodebuild != "" {
		opts.Executable = file.Xcodebuild
	}
	if file.DeveloperDir != "" {
		opts.DeveloperDir = file.DeveloperDir
	}

	return opts, nil
}

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)
