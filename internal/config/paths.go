// Package config loads pacyao settings from a TOML file.
package config

import (
	"os"
	"path/filepath"
)

const (
	appName    = "pacyao"
	configFile = "config.toml"
)

// ConfigDir returns the configuration directory for pacyao.
func ConfigDir() string {
	// Respect XDG_CONFIG_HOME if set
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, _ := os.UserHomeDir() //nolint:errcheck
	return filepath.Join(home, ".config", appName)
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), configFile)
}

// ResolvedPath returns the config file in use: PACYAO_CONFIG if set,
// ConfigPath otherwise.
func ResolvedPath() string {
	if path := os.Getenv(EnvConfig); path != "" {
		return path
	}
	return ConfigPath()
}
