// Package selection parses numbered selection expressions such as "1 2 6-8".
package selection

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSelection matches any *InvalidSelectionError via errors.Is.
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrCancelled is returned when the user interrupts the prompt or input ends.
	ErrCancelled = errors.New("selection cancelled")
)

// InvalidSelectionError describes a malformed or out-of-range selection token.
type InvalidSelectionError struct {
	Token  string // Offending token as typed
	Part   string // Offending half of a range, if any
	Reason string
}

// Error implements the error interface.
func (e *InvalidSelectionError) Error() string {
	if e.Part != "" && e.Part != e.Token {
		return fmt.Sprintf("invalid selection %q: %s %q", e.Token, e.Reason, e.Part)
	}
	return fmt.Sprintf("invalid selection %q: %s", e.Token, e.Reason)
}

// Is reports whether target is ErrInvalidSelection.
func (e *InvalidSelectionError) Is(target error) bool {
	return target == ErrInvalidSelection
}

// IsInvalid returns the *InvalidSelectionError in err's chain, if any.
func IsInvalid(err error) (*InvalidSelectionError, bool) {
	var selErr *InvalidSelectionError
	if errors.As(err, &selErr) {
		return selErr, true
	}
	return nil, false
}
