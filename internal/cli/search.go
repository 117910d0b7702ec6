package cli

import (
	"context"
	"fmt"

	"pacyao/internal/ui"
	"pacyao/pkg/search"
	"pacyao/pkg/selection"
)

// runSearch searches for terms, lists the hits numbered and installs the
// ones the user selects.
func (a *App) runSearch(ctx context.Context, terms string) error {
	if err := a.requireHelper(); err != nil {
		return err
	}

	records, err := a.search(ctx, terms)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		a.out.InfoMsg("No packages found matching '%s'", terms)
		return nil
	}

	a.out.PrintRecords(records)

	indices, err := a.promptSelection(ctx)
	if err != nil {
		return err
	}

	return a.installSelection(ctx, records, indices)
}

// search runs the helper search behind a spinner.
func (a *App) search(ctx context.Context, terms string) ([]search.Record, error) {
	var records []search.Record

	message := fmt.Sprintf("Searching for '%s'...", terms)
	err := ui.WithSpinner(message, a.errOut.Writer(), a.errOut.Palette(), a.spinner, func() error {
		var err error
		records, err = a.client.Search(ctx, terms)
		return err
	})

	return records, err
}

// promptSelection asks which of the listed packages to install.
func (a *App) promptSelection(ctx context.Context) ([]int, error) {
	a.out.PrintSelectionHelp()

	return selection.Prompt(ctx, a.reader, selection.PromptOptions{
		Label: a.out.SelectionLabel(),
		Retry: a.cfg.Selection.RetryOnInvalid,
		OnInvalid: func(err error) {
			if invalid, ok := selection.IsInvalid(err); ok {
				a.warnInvalid(invalid)
			}
		},
	})
}
