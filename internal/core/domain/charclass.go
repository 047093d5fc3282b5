package domain

import "strings"

// CharClass is a set of character categories a word may be built from.
// Lowercase ASCII letters are always part of a usable class.
type CharClass uint8

// Character categories.
const (
	// ClassLetter matches 'a' through 'z'.
	ClassLetter CharClass = 1 << iota

	// ClassHyphen matches '-'.
	ClassHyphen

	// ClassApostrophe matches '\''.
	ClassApostrophe
)

// NewCharClass combines the letter class with the optional categories.
func NewCharClass(hyphens, apostrophes bool) CharClass {
	c := ClassLetter
	if hyphens {
		c |= ClassHyphen
	}
	if apostrophes {
		c |= ClassApostrophe
	}
	return c
}

// Has returns true if every category in other is part of c.
func (c CharClass) Has(other CharClass) bool {
	return c&other == other
}

// Allows reports whether the byte b belongs to the class.
func (c CharClass) Allows(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z':
		return c.Has(ClassLetter)
	case b == '-':
		return c.Has(ClassHyphen)
	case b == '\'':
		return c.Has(ClassApostrophe)
	default:
		return false
	}
}

// Matches reports whether s is non-empty and made only of allowed bytes.
func (c CharClass) Matches(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !c.Allows(s[i]) {
			return false
		}
	}
	return true
}

// String returns the categories joined with '+', e.g. "letter+hyphen".
func (c CharClass) String() string {
	var parts []string
	if c.Has(ClassLetter) {
		parts = append(parts, "letter")
	}
	if c.Has(ClassHyphen) {
		parts = append(parts, "hyphen")
	}
	if c.Has(ClassApostrophe) {
		parts = append(parts, "apostrophe")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}
