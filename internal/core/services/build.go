package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/wordlist/internal/core/domain"
	"github.com/custodia-labs/wordlist/internal/core/ports/driven"
	"github.com/custodia-labs/wordlist/internal/core/ports/driving"
	"github.com/custodia-labs/wordlist/internal/logger"
)

// Ensure BuildService implements the interface.
var _ driving.WordListBuilder = (*BuildService)(nil)

// BuildService runs the fetch, filter and write pipeline once per call.
type BuildService struct {
	source     driven.WordSource
	normaliser driven.WordNormaliser
	writer     driven.WordListWriter
}

// NewBuildService creates a new build service.
func NewBuildService(
	source driven.WordSource,
	normaliser driven.WordNormaliser,
	writer driven.WordListWriter,
) *BuildService {
	return &BuildService{
		source:     source,
		normaliser: normaliser,
		writer:     writer,
	}
}

// Build fetches the source, filters every line and writes the sorted word
// list. Nothing is written unless the whole source was read successfully.
func (s *BuildService) Build(ctx context.Context, req domain.BuildRequest) (*domain.BuildSummary, error) {
	if err := req.Filter.Validate(); err != nil {
		return nil, err
	}
	if req.OutputPath == "" {
		return nil, fmt.Errorf("%w: output path is empty", domain.ErrInvalidInput)
	}

	start := time.Now()

	logger.Section("Fetch")
	stream, err := s.source.Open(ctx, req.Source)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", req.Source.URL, err)
	}
	defer func() {
		if cerr := stream.Close(); cerr != nil {
			logger.Warn("close source: %v", cerr)
		}
	}()

	logger.Section("Normalise")
	logger.Debug("filter: %s (characters: %s)", req.Filter, req.Filter.CharClass())
	result := s.normaliser.Normalise(stream.Lines(), req.Filter)
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}

	stats := result.Stats
	logger.Debug("lines=%d accepted=%d duplicates=%d", stats.Lines, stats.Accepted, stats.Duplicates)
	logger.Debug("rejected: empty=%d blank=%d pattern=%d too_short=%d too_long=%d",
		stats.Empty, stats.Blank, stats.Pattern, stats.TooShort, stats.TooLong)

	logger.Section("Write")
	if err := s.writer.Write(req.OutputPath, result.Words.Sorted()); err != nil {
		return nil, fmt.Errorf("write %s: %w", req.OutputPath, err)
	}

	return &domain.BuildSummary{
		Count:      result.Words.Len(),
		OutputPath: req.OutputPath,
		Filter:     req.Filter,
		Stats:      stats,
		Elapsed:    time.Since(start),
	}, nil
}
