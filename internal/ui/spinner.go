package ui

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// Spinner wraps the spinner library for consistent styling.
// A disabled Spinner does nothing.
type Spinner struct {
	s *spinner.Spinner
}

// NewSpinner creates a new spinner with the given message writing to w.
func NewSpinner(message string, w io.Writer, palette *Palette, enabled bool) *Spinner {
	if !enabled {
		return &Spinner{}
	}

	charSet := spinner.CharSets[14] // ⣾⣽⣻⢿⡿⣟⣯⣷
	if palette.Symbols != unicodeSymbols {
		charSet = spinner.CharSets[0] // |/-\
	}

	s := spinner.New(charSet, 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + message

	if palette.Enabled() {
		_ = s.Color("cyan") //nolint:errcheck
	}

	return &Spinner{s: s}
}

// Start starts the spinner.
func (sp *Spinner) Start() {
	if sp.s != nil {
		sp.s.Start()
	}
}

// Stop stops the spinner.
func (sp *Spinner) Stop() {
	if sp.s != nil {
		sp.s.Stop()
	}
}

// WithSpinner runs fn while a spinner is shown.
func WithSpinner(message string, w io.Writer, palette *Palette, enabled bool, fn func() error) error {
	sp := NewSpinner(message, w, palette, enabled)
	sp.Start()
	defer sp.Stop()

	return fn()
}
