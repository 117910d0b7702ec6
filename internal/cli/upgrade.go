package cli

import (
	"context"
)

// runUpgrade synchronizes the databases and upgrades every package,
// AUR packages included.
func (a *App) runUpgrade(ctx context.Context) error {
	if err := a.requireHelper(); err != nil {
		return err
	}

	a.out.InfoMsg("Upgrading system using %s", a.client.Binary())
	return a.client.Upgrade(ctx)
}

// runPassthrough hands args to the helper unchanged.
func (a *App) runPassthrough(ctx context.Context, args []string) error {
	if err := a.requireHelper(); err != nil {
		return err
	}
	return a.client.Passthrough(ctx, args)
}
