package cli

import (
	"io"
	"os"

	"pacyao/internal/config"
	"pacyao/internal/executor"
	"pacyao/internal/ui"
	"pacyao/pkg/pacaur"
	"pacyao/pkg/selection"
)

// App holds the state shared by all operations.
type App struct {
	cfg    *config.Config
	client *pacaur.Client

	out    *ui.Printer // Listing and progress
	errOut *ui.Printer // Warnings and errors

	reader  selection.LineReader
	spinner bool
}

// Streams are the I/O endpoints and terminal capabilities of a run.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer

	Color       bool // Emit color codes
	Interactive bool // In is a terminal
	Spinner     bool // Err is a terminal
}

// NewApp wires an App from configuration, a command runner and streams.
func NewApp(cfg *config.Config, runner pacaur.Runner, s Streams) *App {
	palette := ui.NewPalette(s.Color, cfg.Output.Unicode)

	client := pacaur.New(pacaur.Options{
		Helper:      cfg.General.Helper,
		Locale:      cfg.General.Locale,
		Operations:  cfg.General.Operations,
		RemoveFlags: cfg.General.RemoveFlags,
	}, runner)

	return &App{
		cfg:     cfg,
		client:  client,
		out:     ui.NewPrinter(s.Out, palette),
		errOut:  ui.NewPrinter(s.Err, palette),
		reader:  ui.NewLineReader(s.In, s.Out, s.Interactive),
		spinner: s.Spinner && cfg.Output.Spinner,
	}
}

// initializeApp loads configuration and wires the App for the real terminal.
func initializeApp() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	exec := executor.New(cfg.General.DryRun, cfg.Output.Verbose)

	return NewApp(cfg, exec, Streams{
		In:          os.Stdin,
		Out:         os.Stdout,
		Err:         os.Stderr,
		Color:       cfg.ShouldUseColor() && ui.IsTerminal(os.Stdout),
		Interactive: ui.IsTerminal(os.Stdin),
		Spinner:     ui.IsTerminal(os.Stderr),
	}), nil
}
