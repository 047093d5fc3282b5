package driving

import (
	"context"

	"github.com/custodia-labs/wordlist/internal/core/domain"
)

// WordListBuilder runs the fetch, filter and write pipeline.
type WordListBuilder interface {
	// Build fetches the source, filters it and writes the output file.
	// Any failure aborts the whole run.
	Build(ctx context.Context, req domain.BuildRequest) (*domain.BuildSummary, error)
}
