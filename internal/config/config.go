package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Environment variables that override the config file.
const (
	EnvConfig  = "PACYAO_CONFIG"
	EnvDryRun  = "PACYAO_DRY_RUN"
	EnvVerbose = "PACYAO_VERBOSE"
	EnvNoColor = "NO_COLOR"
)

// Config represents the complete pacyao configuration.
type Config struct {
	General   GeneralConfig   `toml:"general"`
	Selection SelectionConfig `toml:"selection"`
	Output    OutputConfig    `toml:"output"`
}

// GeneralConfig contains settings for invoking the AUR helper.
type GeneralConfig struct {
	// Helper is the AUR helper binary that does the actual package work.
	Helper string `toml:"helper"`

	// Locale is exported as LC_ALL while searching so output is not localized.
	Locale string `toml:"locale"`

	// DryRun prints helper commands instead of running them.
	DryRun bool `toml:"dry_run"`

	// Operations lists the helper's top-level operation flags. Arguments
	// starting with one of these are passed through untouched.
	Operations []string `toml:"operations"`

	// RemoveFlags are passed to the helper when removing orphans.
	RemoveFlags []string `toml:"remove_flags"`
}

// SelectionConfig contains settings for the selection prompt.
type SelectionConfig struct {
	// RetryOnInvalid re-prompts after a malformed selection instead of aborting.
	RetryOnInvalid bool `toml:"retry_on_invalid"`
}

// OutputConfig contains output formatting settings.
type OutputConfig struct {
	// Color enables colored output (respects NO_COLOR env var).
	Color bool `toml:"color"`

	// Unicode enables unicode symbols in output.
	Unicode bool `toml:"unicode"`

	// Verbose echoes every helper command before running it.
	Verbose bool `toml:"verbose"`

	// Spinner shows a progress spinner while searching.
	Spinner bool `toml:"spinner"`
}

// DefaultOperations are pacman's operations plus pacaur's own.
var DefaultOperations = []string{
	"-D", "-F", "-Q", "-R", "-S", "-T", "-U", "-V",
	"-s", "-i", "-d", "-m", "-y", "-k", "-u", "-e",
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			Helper:      "pacaur",
			Locale:      "C",
			DryRun:      false,
			Operations:  append([]string(nil), DefaultOperations...),
			RemoveFlags: []string{"-Rns"},
		},
		Selection: SelectionConfig{
			RetryOnInvalid: false,
		},
		Output: OutputConfig{
			Color:   true,
			Unicode: true,
			Verbose: false,
			Spinner: true,
		},
	}
}

// Load loads the configuration from PACYAO_CONFIG or the default path and
// applies environment overrides.
// If the config file doesn't exist, it returns the default configuration.
func Load() (*Config, error) {
	cfg, err := LoadFrom(ResolvedPath())
	if err != nil {
		return nil, err
	}

	cfg.ApplyEnv()
	return cfg, nil
}

// LoadFrom loads the configuration from a specific path.
// If the config file doesn't exist, it returns the default configuration.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Check if file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	// Parse the config file
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}

	cfg.fillDefaults()
	return cfg, nil
}

// fillDefaults restores required values a config file may have blanked.
func (c *Config) fillDefaults() {
	def := Default()
	if c.General.Helper == "" {
		c.General.Helper = def.General.Helper
	}
	if len(c.General.Operations) == 0 {
		c.General.Operations = def.General.Operations
	}
	if len(c.General.RemoveFlags) == 0 {
		c.General.RemoveFlags = def.General.RemoveFlags
	}
}

// ApplyEnv applies environment variable overrides.
func (c *Config) ApplyEnv() {
	if v, ok := envBool(EnvDryRun); ok {
		c.General.DryRun = v
	}
	if v, ok := envBool(EnvVerbose); ok {
		c.Output.Verbose = v
	}
}

// envBool reads a boolean environment variable.
func envBool(key string) (bool, bool) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return false, false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false
	}
	return v, true
}

// SaveTo writes the configuration to a specific path, creating its
// directory if needed.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(c)
}

// ShouldUseColor returns true if colored output should be used.
// Respects the NO_COLOR environment variable.
func (c *Config) ShouldUseColor() bool {
	if os.Getenv(EnvNoColor) != "" {
		return false
	}
	return c.Output.Color
}
