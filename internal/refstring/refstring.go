// Package refstring turns user text into a page reference sequence and a
// frame capacity.
package refstring

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"page-replacement-simulator/internal/engine"
)

// ParseReferences parses integers separated by whitespace and/or commas.
// Empty input yields an empty sequence.
func ParseReferences(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	refs := make([]int, 0, len(fields))
	for i, f := range fields {
		page, err := strconv.Atoi(f)
		if err != nil {
			return nil, engine.NewError(
				engine.ErrCodeInvalidInput,
				"parse references",
				fmt.Sprintf("token %d (%q) is not an integer page number", i+1, f),
				err,
			)
		}
		refs = append(refs, page)
	}
	return refs, nil
}

// ParseCapacity parses a positive frame count.
func ParseCapacity(s string) (int, error) {
	const op = "parse capacity"

	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, engine.NewError(
			engine.ErrCodeInvalidConfiguration,
			op,
			fmt.Sprintf("%q is not an integer frame count", s),
			err,
		)
	}
	if n <= 0 {
		return 0, engine.ErrInvalidCapacity(op, n)
	}
	return n, nil
}

// Format renders refs the way ParseReferences reads them.
func Format(refs []int) string {
	parts := make([]string, len(refs))
	for i, r := range refs {
		parts[i] = strconv.Itoa(r)
	}
	return strings.Join(parts, " ")
}
