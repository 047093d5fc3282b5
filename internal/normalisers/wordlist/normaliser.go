// Package wordlist implements the filter that turns raw source lines into
// the set of accepted game words.
package wordlist

import (
	"iter"
	"strings"

	"github.com/custodia-labs/wordlist/internal/core/domain"
	"github.com/custodia-labs/wordlist/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.WordNormaliser = (*Normaliser)(nil)

// Normaliser trims, lowercases and filters lines against FilterOptions.
type Normaliser struct{}

// New creates a new word list normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Normalise consumes lines and returns the accepted words with per-rule counts.
func (n *Normaliser) Normalise(lines iter.Seq[string], opts domain.FilterOptions) domain.NormaliseResult {
	class := opts.CharClass()
	result := domain.NormaliseResult{Words: domain.NewWordSet()}

	for line := range lines {
		word, decision := n.Accept(line, class, opts)
		duplicate := false
		if decision == domain.DecisionAccepted {
			duplicate = !result.Words.Add(word)
		}
		result.Stats.Record(decision, duplicate)
	}

	return result
}

// Accept runs the checks for a single raw line, cheapest first, and returns
// the candidate together with the decision. The candidate is only
// meaningful when the decision is DecisionAccepted.
func (n *Normaliser) Accept(raw string, class domain.CharClass, opts domain.FilterOptions) (string, domain.Decision) {
	if raw == "" {
		return "", domain.DecisionEmpty
	}

	candidate := lowerASCII(strings.TrimSpace(raw))
	if candidate == "" {
		return "", domain.DecisionBlank
	}

	if !class.Matches(candidate) {
		return candidate, domain.DecisionPattern
	}

	// Matches guarantees ASCII, so byte length is the character count.
	if len(candidate) < opts.MinLength {
		return candidate, domain.DecisionTooShort
	}
	if opts.HasMaxLength() && len(candidate) > opts.MaxLength {
		return candidate, domain.DecisionTooLong
	}

	return candidate, domain.DecisionAccepted
}

// lowerASCII maps 'A'-'Z' to 'a'-'z' and leaves every other byte alone.
func lowerASCII(s string) string {
	hasUpper := false
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= 'A' && c <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		b.WriteByte(c)
	}
	return b.String()
}
