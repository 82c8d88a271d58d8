// Package identifier parses and formats catalog component identifiers.
//
// A conforming identifier is a 2-3 letter uppercase category code followed by
// a 3 digit number, e.g. PS001 or ENV042. Anything else is non-conforming and
// excluded from registry bookkeeping, though such entries may still be
// labelled under their literal id.
package identifier

import (
	"fmt"
	"regexp"
	"strconv"
)

var pattern = regexp.MustCompile(`^([A-Z]{2,3})([0-9]{3})$`)

// Identifier is a parsed catalog identifier.
type Identifier struct {
	Category string
	Number   int
}

// Parse decomposes raw into an Identifier. The second return value is false
// when raw does not match the exact <letters:2-3><digits:3> form; no partial
// or case-insensitive matches are accepted.
func Parse(raw string) (Identifier, bool) {
	m := pattern.FindStringSubmatch(raw)
	if m == nil {
		return Identifier{}, false
	}
	num, err := strconv.Atoi(m[2])
	if err != nil {
		return Identifier{}, false
	}
	return Identifier{Category: m[1], Number: num}, true
}

// String returns the canonical zero-padded form, e.g. PS001.
func (id Identifier) String() string {
	return id.Category + FormatNumber(id.Number)
}

// HundredsBlock returns the hundreds grouping of the number (150 -> 1).
func (id Identifier) HundredsBlock() int {
	return (id.Number / 100) % 10
}

// AnchorCandidate reports whether the number ends in 00. Such identifiers
// anchor a family when they live at a family-index location.
func (id Identifier) AnchorCandidate() bool {
	return id.Number%100 == 0
}

// FamilyKey returns the hundreds-block family key, e.g. PS1xx for PS150.
func (id Identifier) FamilyKey() string {
	return fmt.Sprintf("%s%dxx", id.Category, id.HundredsBlock())
}

// AnchorID returns the anchor slot identifier for this identifier's block,
// e.g. PS100 for PS150.
func (id Identifier) AnchorID() string {
	return fmt.Sprintf("%s%d00", id.Category, id.HundredsBlock())
}

// FormatNumber renders n as the zero-padded 3 digit suffix.
func FormatNumber(n int) string {
	return fmt.Sprintf("%03d", n)
}
