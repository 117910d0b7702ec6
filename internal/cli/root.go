// Package cli implements the command-line interface for pacyao.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"pacyao/internal/config"
	"pacyao/internal/executor"
	"pacyao/internal/ui"
	"pacyao/pkg/pacaur"

	"github.com/spf13/cobra"
)

// Build metadata - set at build time via ldflags
var (
	Version   = "0.1.0-dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// newRootCmd creates the root command. Flag parsing is disabled so that
// helper operations such as "-Syu" reach the helper untouched; run
// receives every argument verbatim.
func newRootCmd(run func(ctx context.Context, args []string) error) *cobra.Command {
	return &cobra.Command{
		Use:   "pacyao [search terms | -a | -h | pacaur operation]",
		Short: "Numbered search and install front-end for pacaur",
		Long: `pacyao searches the repositories and the AUR through pacaur, lists the
results numbered, and installs the ones you pick by number or range.

Arguments starting with a pacaur operation (-S, -Q, -R, ...) are passed
straight to pacaur. Without arguments the whole system is upgraded.`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), args)
		},
	}
}

// Execute runs pacyao with the process arguments and returns the exit code.
func Execute(ctx context.Context) int {
	return ExecuteArgs(ctx, os.Args[1:])
}

// ExecuteArgs runs pacyao with args and returns the exit code.
func ExecuteArgs(ctx context.Context, args []string) int {
	app, err := initializeApp()
	if err != nil {
		errOut := ui.NewPrinter(os.Stderr, ui.NewPalette(ui.IsTerminal(os.Stderr), true))
		errOut.ErrorMsg("failed to load config: %v", err)
		return ExitError
	}

	if executor.IsRoot() {
		app.errOut.WarningMsg("%s should not be run as root", app.client.Binary())
	}

	return app.Run(ctx, args)
}

// Run dispatches args through the root command and returns the exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	if args == nil {
		// cobra falls back to os.Args for a nil slice
		args = []string{}
	}

	cmd := newRootCmd(a.dispatch)
	cmd.SetArgs(args)
	cmd.SetOut(a.out.Writer())
	cmd.SetErr(a.errOut.Writer())

	err := cmd.ExecuteContext(ctx)
	return a.exitCode(ctx, err)
}

// dispatch picks the operation from the first argument.
func (a *App) dispatch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.runUpgrade(ctx)
	}

	first := args[0]
	switch {
	case first == "-h" || first == "--help":
		printUsage(a.out.Writer(), a.out.Palette().Enabled(), a.cfg)
		return nil

	case first == "--version":
		a.printVersion()
		return nil

	case first == "-a" || first == "--autoremove":
		return a.runAutoremove(ctx)

	case first == "--init-config":
		return a.runInitConfig()

	case a.client.IsOperation(first):
		return a.runPassthrough(ctx, args)
	}

	return a.runSearch(ctx, strings.Join(args, " "))
}

// requireHelper fails early when the helper binary is missing.
func (a *App) requireHelper() error {
	if a.cfg.General.DryRun || a.client.IsAvailable() {
		return nil
	}
	return fmt.Errorf("%w: %s (set general.helper in %s)", pacaur.ErrHelperNotFound, a.client.Binary(), config.ResolvedPath())
}

// printVersion prints the build metadata.
func (a *App) printVersion() {
	a.out.Println("pacyao version %s", Version)
	if Commit != "unknown" {
		a.out.MutedMsg("  Commit: %s", Commit)
	}
	if BuildTime != "unknown" {
		a.out.MutedMsg("  Built:  %s", BuildTime)
	}
}
