package cli

import (
	"fmt"
	"io"
	"strings"

	"pacyao/internal/config"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type usageEntry struct {
	usage string
	desc  string
}

// printUsage writes the help screen to w.
func printUsage(w io.Writer, colored bool, cfg *config.Config) {
	fmt.Fprint(w, renderUsage(w, colored, cfg))
}

// renderUsage renders the help screen for the renderer bound to w.
func renderUsage(w io.Writer, colored bool, cfg *config.Config) string {
	r := lipgloss.NewRenderer(w)
	if !colored {
		r.SetColorProfile(termenv.Ascii)
	}

	title := r.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
	section := r.NewStyle().Bold(true).Foreground(lipgloss.Color("4"))
	left := r.NewStyle().Width(28).PaddingLeft(2).Foreground(lipgloss.Color("2"))
	muted := r.NewStyle().Foreground(lipgloss.Color("8"))

	helper := cfg.General.Helper

	commands := []usageEntry{
		{"pacyao", fmt.Sprintf("upgrade the system (%s -Syu)", helper)},
		{"pacyao <search terms>", "search, pick packages by number, install them"},
		{"pacyao -a, --autoremove", "remove orphaned dependencies"},
		{"pacyao -h, --help", "show this help"},
		{"pacyao --version", "print version information"},
		{"pacyao --init-config", "write the default config file"},
		{"pacyao <operation> ...", fmt.Sprintf("pass arguments to %s unchanged", helper)},
	}

	selections := []usageEntry{
		{"1 2 3", "install entries 1, 2 and 3"},
		{"1-3", "install entries 1 through 3"},
		{"1 4-6", "mix numbers and ranges"},
	}

	var b strings.Builder

	b.WriteString(title.Render("pacyao") + " - numbered search and install for " + helper + "\n\n")

	b.WriteString(section.Render("Usage:") + "\n")
	for _, e := range commands {
		b.WriteString(left.Render(e.usage) + e.desc + "\n")
	}
	b.WriteString("\n")

	b.WriteString(section.Render("Operations:") + "\n")
	b.WriteString("  " + strings.Join(cfg.General.Operations, " ") + "\n\n")

	b.WriteString(section.Render("Selection:") + "\n")
	for _, e := range selections {
		b.WriteString(left.Render(e.usage) + e.desc + "\n")
	}
	b.WriteString("\n")

	b.WriteString(section.Render("Configuration:") + "\n")
	b.WriteString("  " + config.ResolvedPath() + " " + muted.Render("(override with "+config.EnvConfig+")") + "\n")
	b.WriteString("  " + muted.Render("environment: "+config.EnvNoColor+", "+config.EnvDryRun+", "+config.EnvVerbose) + "\n")

	return b.String()
}
