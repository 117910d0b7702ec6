// Package search parses the output of an AUR helper's search operation.
package search

// RepoAUR is the repository name the helper prints for AUR packages.
const RepoAUR = "aur"

// Record represents a single search hit.
//
// Optional fields keep their delimiters, e.g. "(gnome)" or "[installed]".
// An empty string means the field was not present on the header line.
type Record struct {
	Repo        string `json:"repo"`
	Name        string `json:"name"`
	Version     string `json:"version"`
	Group       string `json:"group,omitempty"` // Non-AUR repos only
	Votes       string `json:"votes,omitempty"` // AUR only: "(votes, popularity)"
	Installed   string `json:"installed,omitempty"`
	Description string `json:"description"`
}

// IsAUR returns true if the record comes from the AUR.
func (r Record) IsAUR() bool {
	return r.Repo == RepoAUR
}

// IsInstalled returns true if the helper marked the package as installed.
func (r Record) IsInstalled() bool {
	return r.Installed != ""
}

// Names returns the package names of the records, in order.
func Names(records []Record) []string {
	names := make([]string, len(records))
	for i, r := range records {
		names[i] = r.Name
	}
	return names
}
