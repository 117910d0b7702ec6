package search

import "strings"

// FormatHeader renders the header line of a record in the helper's layout.
func FormatHeader(r Record) string {
	var b strings.Builder

	b.WriteString(r.Repo)
	b.WriteString("/")
	b.WriteString(r.Name)
	b.WriteString(" ")
	b.WriteString(r.Version)

	paren := r.Group
	if r.IsAUR() {
		paren = r.Votes
	}
	if paren != "" {
		b.WriteString(" ")
		b.WriteString(paren)
	}

	if r.Installed != "" {
		b.WriteString(" ")
		b.WriteString(r.Installed)
	}

	return b.String()
}

// Format renders records as search output, one header and one
// indented description line per record.
func Format(records []Record) string {
	var b strings.Builder
	for _, r := range records {
		b.WriteString(FormatHeader(r))
		b.WriteString("\n    ")
		b.WriteString(r.Description)
		b.WriteString("\n")
	}
	return b.String()
}
