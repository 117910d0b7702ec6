package search

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

var (
	// Matches: "extra/gvfs-mtp 1.30.3-1 (gnome) [installed]"
	// Matches: "aur/android-studio 2.2.3.0-1 [installed] (626, 22.50)"
	headerPattern = regexp.MustCompile(`^([^/\s]+)/(\S+) (\S+)((?: (?:\([^)]*\)|\[[^\]]*\]))*)\s*$`)

	// Matches one optional "(...)" or "[...]" part in the header tail.
	optionalPattern = regexp.MustCompile(`\([^)]*\)|\[[^\]]*\]`)

	// Matches CSI escape sequences, e.g. "\x1b[1;35m".
	ansiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]`)
)

const maxLineSize = 1024 * 1024

// Parse parses raw search output into records.
// Input that does not follow the header/description layout is skipped.
func Parse(raw string) []Record {
	records, _ := ParseReader(strings.NewReader(raw)) //nolint:errcheck // strings.Reader never fails
	return records
}

// ParseReader parses search output read from r.
// The only errors returned are read errors from r.
func ParseReader(r io.Reader) ([]Record, error) {
	records := []Record{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	// pending holds the header fields until the description line arrives.
	var pending *Record

	for scanner.Scan() {
		line := StripANSI(scanner.Text())
		if strings.TrimSpace(line) == "" {
			continue
		}

		if header, ok := parseHeader(line); ok {
			// A header directly after another header replaces it.
			pending = &header
			continue
		}

		if pending == nil {
			// Description without a header; nothing to attach it to.
			continue
		}

		pending.Description = strings.TrimSpace(line)
		records = append(records, *pending)
		pending = nil
	}

	if err := scanner.Err(); err != nil {
		return records, err
	}

	return records, nil
}

// parseHeader parses a header line into a record without description.
func parseHeader(line string) (Record, bool) {
	m := headerPattern.FindStringSubmatch(line)
	if m == nil || !strings.ContainsAny(m[3], "0123456789") {
		// Every pkgver-pkgrel has a digit; "I/O library" is a description.
		return Record{}, false
	}

	rec := Record{
		Repo:    m[1],
		Name:    m[2],
		Version: m[3],
	}

	var paren string
	for _, part := range optionalPattern.FindAllString(m[4], -1) {
		switch {
		case strings.HasPrefix(part, "["):
			if rec.Installed == "" && strings.HasPrefix(part, "[installed") {
				rec.Installed = part
			}
		case paren == "":
			paren = part
		}
	}

	// The same "(...)" shape means votes for AUR hits and a group otherwise.
	if rec.IsAUR() {
		rec.Votes = paren
	} else {
		rec.Group = paren
	}

	return rec, true
}

// StripANSI removes ANSI escape sequences from s.
func StripANSI(s string) string {
	if !strings.Contains(s, "\x1b") {
		return s
	}
	return ansiPattern.ReplaceAllString(s, "")
}
