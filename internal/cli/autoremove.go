package cli

import (
	"context"
)

// runAutoremove removes packages that were installed as dependencies
// but are no longer required by any installed package.
func (a *App) runAutoremove(ctx context.Context) error {
	if err := a.requireHelper(); err != nil {
		return err
	}

	a.out.InfoMsg("Removing orphaned packages using %s", a.client.Binary())

	removed, err := a.client.RemoveOrphans(ctx)
	if err != nil {
		return err
	}

	if len(removed) == 0 {
		a.out.MutedMsg("No orphaned packages found")
		return nil
	}

	a.out.SuccessMsg("Removed %d orphaned package(s)", len(removed))
	return nil
}
