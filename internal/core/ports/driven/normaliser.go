package driven

import (
	"iter"

	"github.com/custodia-labs/wordlist/internal/core/domain"
)

// WordNormaliser turns raw lines into the set of accepted words.
// Implementations must be pure: no I/O, no errors, same input same output.
type WordNormaliser interface {
	Normalise(lines iter.Seq[string], opts domain.FilterOptions) domain.NormaliseResult
}
