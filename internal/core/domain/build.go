package domain

import (
	"path/filepath"
	"time"
)

// DefaultOutputPath is where the word list is written when no path is given.
var DefaultOutputPath = filepath.Join("data", "wordlists", "english_words.txt")

// BuildSettings holds the resolved defaults for a build.
type BuildSettings struct {
	Source     Source
	OutputPath string
	Filter     FilterOptions
}

// DefaultBuildSettings returns the built-in defaults.
func DefaultBuildSettings() BuildSettings {
	return BuildSettings{
		Source:     DefaultSource(),
		OutputPath: DefaultOutputPath,
		Filter:     DefaultFilterOptions(),
	}
}

// BuildRequest describes a single fetch, filter and write run.
type BuildRequest struct {
	Source     Source
	OutputPath string
	Filter     FilterOptions
}

// BuildSummary reports the outcome of a successful build.
type BuildSummary struct {
	Count      int
	OutputPath string
	Filter     FilterOptions
	Stats      NormaliseStats
	Elapsed    time.Duration
}
