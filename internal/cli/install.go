package cli

import (
	"context"
	"strings"

	"pacyao/pkg/search"
	"pacyao/pkg/selection"

	"github.com/samber/lo"
)

// installSelection installs the records addressed by indices.
// Packages picked twice are installed once, in first-picked order.
func (a *App) installSelection(ctx context.Context, records []search.Record, indices []int) error {
	if len(indices) == 0 {
		a.out.MutedMsg("Nothing selected")
		return ErrNothingSelected
	}

	picked, err := selection.Pick(records, indices)
	if err != nil {
		return err
	}

	packages := lo.Uniq(search.Names(picked))

	a.out.InfoMsg("Installing %d package(s) using %s", len(packages), a.client.Binary())
	a.out.MutedMsg("  %s", strings.Join(packages, " "))

	return a.client.Install(ctx, packages)
}
