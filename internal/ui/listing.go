package ui

import (
	"fmt"
	"strconv"
	"strings"

	"pacyao/pkg/search"
)

// FormatRecord renders a numbered search hit as two lines:
//
//	1 extra/gvfs-mtp 1.30.3-1 (gnome) [installed]
//	    Virtual filesystem implementation for GIO
//
// width pads the number so columns line up across a listing.
func FormatRecord(p *Palette, number, width int, r search.Record) string {
	var b strings.Builder

	b.WriteString(p.Number.Sprint(fmt.Sprintf("%*d", width, number)))
	b.WriteString(" ")
	b.WriteString(p.Repo(r.Repo).Sprint(r.Repo + "/"))
	b.WriteString(p.Name.Sprint(r.Name))
	b.WriteString(" ")
	b.WriteString(p.Version.Sprint(r.Version))

	if r.IsAUR() {
		if r.Votes != "" {
			b.WriteString(" ")
			b.WriteString(p.Votes.Sprint(r.Votes))
		}
	} else if r.Group != "" {
		b.WriteString(" ")
		b.WriteString(p.Group.Sprint(r.Group))
	}

	if r.IsInstalled() {
		b.WriteString(" ")
		b.WriteString(p.Installed.Sprint(r.Installed))
	}

	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", width+3))
	b.WriteString(p.Description.Sprint(r.Description))

	return b.String()
}

// PrintRecords prints search hits numbered from 1 in their original order.
func (pr *Printer) PrintRecords(records []search.Record) {
	width := len(strconv.Itoa(len(records)))
	for i, r := range records {
		fmt.Fprintln(pr.out, FormatRecord(pr.palette, i+1, width, r))
	}
}

// PrintSelectionHelp prints the instructions shown above the selection prompt.
func (pr *Printer) PrintSelectionHelp() {
	pr.HeaderMsg("%s", pr.palette.Bold("Enter "+pr.palette.Symbols.Number+" of packages to be installed (ex: 1 2 3 or 1-3)"))
	pr.HeaderMsg("%s", strings.Repeat("-", 60))
}

// SelectionLabel returns the label shown at the selection prompt.
func (pr *Printer) SelectionLabel() string {
	return pr.palette.Header.Sprint(pr.palette.Symbols.Arrow)
}
