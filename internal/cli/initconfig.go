package cli

import (
	"fmt"
	"os"

	"pacyao/internal/config"
)

// runInitConfig writes the default configuration to the config path in
// use. An existing file is left alone.
func (a *App) runInitConfig() error {
	path := config.ResolvedPath()

	if _, err := os.Stat(path); err == nil {
		a.out.InfoMsg("Config already exists at %s", path)
		return nil
	}

	if err := config.Default().SaveTo(path); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	a.out.SuccessMsg("Wrote default config to %s", path)
	return nil
}
