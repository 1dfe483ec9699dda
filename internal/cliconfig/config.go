// Package cliconfig layers the stackrtc configuration for the CLI:
// defaults, then the TOML config file, then STACKRTC_* environment
// variables, with explicitly set flags winning over both.
package cliconfig

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/geosar-labs/stackrtc/internal/stack"
)

// Config is the stack run configuration consumed by the CLI.
type Config = stack.Config

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return stack.DefaultConfig()
}

// Logger returns the pipeline logger for CLI use.
func Logger() zerolog.Logger {
	return stack.Logger()
}

// DefaultConfigPath returns the default configuration file path,
// ~/.stackrtc/config.toml, or "" when the home directory is unknown.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".stackrtc", "config.toml")
	}
	return ""
}

// FileExists reports whether path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
