package selection

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

const (
	reasonNotNumber  = "not a positive number"
	reasonReversed   = "range start exceeds end"
	reasonTooLarge   = "range too large"
	reasonOutOfRange = "out of range"
)

// maxRange bounds the number of indices a single range may expand to.
const maxRange = 100000

// Parse converts a selection expression into zero-based indices.
//
// Tokens are whitespace separated and are either a 1-based number ("3")
// or an inclusive range ("6-8"). Order and duplicates are preserved.
// Empty input is an empty selection.
func Parse(input string) ([]int, error) {
	indices := []int{}

	for _, token := range strings.Fields(input) {
		start, end, isRange := strings.Cut(token, "-")
		if !isRange {
			n, ok := parsePositive(token)
			if !ok {
				return nil, &InvalidSelectionError{Token: token, Reason: reasonNotNumber}
			}
			indices = append(indices, n-1)
			continue
		}

		from, ok := parsePositive(start)
		if !ok {
			return nil, &InvalidSelectionError{Token: token, Part: start, Reason: reasonNotNumber}
		}
		to, ok := parsePositive(end)
		if !ok {
			return nil, &InvalidSelectionError{Token: token, Part: end, Reason: reasonNotNumber}
		}
		if from > to {
			return nil, &InvalidSelectionError{Token: token, Reason: reasonReversed}
		}
		if to-from >= maxRange {
			return nil, &InvalidSelectionError{Token: token, Reason: reasonTooLarge}
		}

		indices = append(indices, lo.RangeFrom(from-1, to-from+1)...)
	}

	return indices, nil
}

// parsePositive parses a decimal-digit-only string greater than zero.
func parsePositive(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// Resolve checks that every index addresses one of n items.
func Resolve(indices []int, n int) error {
	for _, i := range indices {
		if i < 0 || i >= n {
			token := strconv.Itoa(i + 1)
			return &InvalidSelectionError{Token: token, Reason: reasonOutOfRange}
		}
	}
	return nil
}

// Pick returns the items addressed by indices, in selection order.
func Pick[T any](items []T, indices []int) ([]T, error) {
	if err := Resolve(indices, len(items)); err != nil {
		return nil, err
	}
	return lo.Map(indices, func(i int, _ int) T {
		return items[i]
	}), nil
}
