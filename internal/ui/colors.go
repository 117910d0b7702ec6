// Package ui provides terminal UI helpers for pacyao.
package ui

import (
	"github.com/fatih/color"
)

// Symbols for status indicators.
type Symbols struct {
	Success string
	Error   string
	Warning string
	Info    string
	Arrow   string
	Number  string
}

var (
	unicodeSymbols = Symbols{
		Success: "✓",
		Error:   "✗",
		Warning: "!",
		Info:    "→",
		Arrow:   "==>",
		Number:  "n°",
	}

	asciiSymbols = Symbols{
		Success: "[OK]",
		Error:   "[ERROR]",
		Warning: "[WARN]",
		Info:    "->",
		Arrow:   "==>",
		Number:  "#",
	}
)

// Palette holds the colors and symbols used for output.
// Colors are enabled or disabled per palette, never globally.
type Palette struct {
	enabled bool
	Symbols Symbols

	// Colors for different message types
	Success *color.Color
	Error   *color.Color
	Warning *color.Color
	Info    *color.Color
	Header  *color.Color
	Muted   *color.Color

	// Colors for search result fields
	Number      *color.Color
	Name        *color.Color
	Version     *color.Color
	Group       *color.Color
	Votes       *color.Color
	Installed   *color.Color
	Description *color.Color

	repos       map[string]*color.Color
	defaultRepo *color.Color
}

// NewPalette creates a palette with colors turned on or off.
func NewPalette(useColors, useUnicode bool) *Palette {
	p := &Palette{enabled: useColors, Symbols: asciiSymbols}
	if useUnicode {
		p.Symbols = unicodeSymbols
	}

	p.Success = p.color(color.FgGreen, color.Bold)
	p.Error = p.color(color.FgRed, color.Bold)
	p.Warning = p.color(color.FgYellow, color.Bold)
	p.Info = p.color(color.FgCyan)
	p.Header = p.color(color.FgBlue, color.Bold)
	p.Muted = p.color(color.FgHiBlack)

	p.Number = p.color(color.FgWhite, color.Bold)
	p.Name = p.color(color.FgWhite, color.Bold)
	p.Version = p.color(color.FgGreen, color.Bold)
	p.Group = p.color(color.FgBlue, color.Bold)
	p.Votes = p.color(color.FgYellow)
	p.Installed = p.color(color.FgCyan, color.Bold, color.ReverseVideo)
	p.Description = p.color(color.Reset)

	p.repos = map[string]*color.Color{
		"core":      p.color(color.FgRed, color.Bold),
		"extra":     p.color(color.FgGreen, color.Bold),
		"community": p.color(color.FgMagenta, color.Bold),
		"multilib":  p.color(color.FgCyan, color.Bold),
		"testing":   p.color(color.FgYellow, color.Bold),
		"aur":       p.color(color.FgMagenta, color.Bold),
	}
	p.defaultRepo = p.color(color.FgBlue, color.Bold)

	return p
}

// color builds a color honoring the palette's enabled flag.
func (p *Palette) color(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if p.enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// Enabled returns true if the palette emits color codes.
func (p *Palette) Enabled() bool {
	return p.enabled
}

// Repo returns the color for a repository name.
func (p *Palette) Repo(name string) *color.Color {
	if c, ok := p.repos[name]; ok {
		return c
	}
	return p.defaultRepo
}

// Bold returns a bold string.
func (p *Palette) Bold(s string) string {
	return p.color(color.Bold).Sprint(s)
}
