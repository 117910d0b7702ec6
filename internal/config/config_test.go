package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}

	if cfg.General.Helper != "pacaur" {
		t.Errorf("expected helper 'pacaur', got '%s'", cfg.General.Helper)
	}
	if cfg.General.Locale != "C" {
		t.Errorf("expected locale 'C', got '%s'", cfg.General.Locale)
	}
	if len(cfg.General.Operations) != len(DefaultOperations) {
		t.Errorf("expected %d operations, got %d", len(DefaultOperations), len(cfg.General.Operations))
	}

	// Check default output settings
	if !cfg.Output.Color {
		t.Error("expected Color to be true by default")
	}
	if !cfg.Output.Unicode {
		t.Error("expected Unicode to be true by default")
	}
	if cfg.Output.Verbose {
		t.Error("expected Verbose to be false by default")
	}
	if !cfg.Output.Spinner {
		t.Error("expected Spinner to be true by default")
	}

	// Check general settings
	if cfg.General.DryRun {
		t.Error("expected DryRun to be false by default")
	}
	if cfg.Selection.RetryOnInvalid {
		t.Error("expected RetryOnInvalid to be false by default")
	}
}

func TestDefaultOperationsNotShared(t *testing.T) {
	cfg := Default()
	cfg.General.Operations[0] = "-X"

	if DefaultOperations[0] == "-X" {
		t.Error("Default() should copy DefaultOperations")
	}
}

func TestShouldUseColor(t *testing.T) {
	cfg := &Config{
		Output: OutputConfig{Color: true},
	}

	// Should return true when Color is true and NO_COLOR is not set
	os.Unsetenv(EnvNoColor)
	if !cfg.ShouldUseColor() {
		t.Error("expected ShouldUseColor() to return true")
	}

	// Should return false when NO_COLOR is set
	t.Setenv(EnvNoColor, "1")
	if cfg.ShouldUseColor() {
		t.Error("expected ShouldUseColor() to return false when NO_COLOR is set")
	}
	os.Unsetenv(EnvNoColor)

	// Should return false when Color is false
	cfg.Output.Color = false
	if cfg.ShouldUseColor() {
		t.Error("expected ShouldUseColor() to return false when Color is false")
	}
}

func TestLoadSaveConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	// Create and save config
	cfg := Default()
	cfg.General.Helper = "yay"
	cfg.Selection.RetryOnInvalid = true

	err := cfg.SaveTo(configPath)
	if err != nil {
		t.Fatalf("SaveTo() error: %v", err)
	}

	// Load config
	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}

	// Verify loaded config
	if loaded.General.Helper != "yay" {
		t.Errorf("expected helper 'yay', got '%s'", loaded.General.Helper)
	}
	if !loaded.Selection.RetryOnInvalid {
		t.Error("expected RetryOnInvalid to survive a round trip")
	}
}

func TestLoadPartialConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	data := `
[general]
helper = ""
locale = "en_US.UTF-8"

[output]
color = false
`
	if err := os.WriteFile(configPath, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}

	if cfg.General.Helper != "pacaur" {
		t.Errorf("blank helper should fall back to 'pacaur', got '%s'", cfg.General.Helper)
	}
	if cfg.General.Locale != "en_US.UTF-8" {
		t.Errorf("expected locale override, got '%s'", cfg.General.Locale)
	}
	if cfg.Output.Color {
		t.Error("expected Color to be false")
	}
	if !cfg.Output.Spinner {
		t.Error("unset keys should keep their defaults")
	}
}

func TestLoadInvalidConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configPath, []byte("[general\nhelper = "), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(configPath); err == nil {
		t.Error("LoadFrom() should fail on malformed TOML")
	}
}

func TestLoadNonExistentConfig(t *testing.T) {
	// Loading non-existent file should return default config
	cfg, err := LoadFrom("/non/existent/path/config.toml")
	if err != nil {
		t.Fatalf("LoadFrom() should not error for non-existent file: %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadFrom() should return default config for non-existent file")
	}

	// Should have default values
	if !cfg.Output.Color {
		t.Error("expected default Color to be true")
	}
}

func TestLoadFromEnvPath(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "custom.toml")
	if err := os.WriteFile(configPath, []byte("[general]\nhelper = \"paru\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvConfig, configPath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.General.Helper != "paru" {
		t.Errorf("expected helper 'paru', got '%s'", cfg.General.Helper)
	}
}

func TestApplyEnv(t *testing.T) {
	tests := []struct {
		name        string
		dryRun      string
		verbose     string
		wantDryRun  bool
		wantVerbose bool
	}{
		{"unset", "", "", false, false},
		{"true", "1", "true", true, true},
		{"invalid ignored", "maybe", "nope", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvDryRun, tt.dryRun)
			t.Setenv(EnvVerbose, tt.verbose)

			cfg := Default()
			cfg.ApplyEnv()

			if cfg.General.DryRun != tt.wantDryRun {
				t.Errorf("DryRun = %v, want %v", cfg.General.DryRun, tt.wantDryRun)
			}
			if cfg.Output.Verbose != tt.wantVerbose {
				t.Errorf("Verbose = %v, want %v", cfg.Output.Verbose, tt.wantVerbose)
			}
		})
	}
}

func TestSaveToCreatesParentDir(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nested", "dir", "pacyao.toml")
	t.Setenv(EnvConfig, configPath)

	if err := Default().SaveTo(ResolvedPath()); err != nil {
		t.Fatalf("SaveTo() error: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.General.Helper != "pacaur" {
		t.Errorf("expected helper 'pacaur', got '%s'", cfg.General.Helper)
	}
	if len(cfg.General.Operations) != len(DefaultOperations) {
		t.Errorf("expected %d operations, got %d", len(DefaultOperations), len(cfg.General.Operations))
	}
}
