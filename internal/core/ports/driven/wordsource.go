package driven

import (
	"context"
	"iter"

	"github.com/custodia-labs/wordlist/internal/core/domain"
)

// WordSource retrieves the raw word list.
type WordSource interface {
	// Open performs the retrieval and returns its body as a line stream.
	// The caller must Close the stream.
	Open(ctx context.Context, src domain.Source) (LineStream, error)
}

// LineStream exposes a retrieved body as a lazy sequence of lines.
type LineStream interface {
	// Lines yields each line without its line terminator.
	// The sequence can only be consumed once.
	Lines() iter.Seq[string]

	// Err returns the first read error hit while iterating, if any.
	Err() error

	// Close releases the underlying body.
	Close() error
}
