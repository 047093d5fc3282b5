// Package domain defines the core types of the word list builder.
//
// This package is the innermost layer of the hexagonal architecture:
//
//   - CharClass: the set of characters an accepted word may contain
//   - FilterOptions: length bounds and optional character categories
//   - WordSet: the deduplicated collection of accepted words
//   - Source: where the raw list is fetched from
//   - BuildRequest / BuildSummary: input and outcome of one run
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
