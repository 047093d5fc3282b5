package domain

import "slices"

// WordSet is the deduplicated collection of accepted words for one run.
// Iteration order carries no meaning; use Sorted for output.
type WordSet map[string]struct{}

// NewWordSet creates an empty word set.
func NewWordSet() WordSet {
	return make(WordSet)
}

// Add inserts w and returns false if it was already present.
func (s WordSet) Add(w string) bool {
	if _, ok := s[w]; ok {
		return false
	}
	s[w] = struct{}{}
	return true
}

// Contains returns true if w is in the set.
func (s WordSet) Contains(w string) bool {
	_, ok := s[w]
	return ok
}

// Len returns the number of words.
func (s WordSet) Len() int {
	return len(s)
}

// Sorted returns the words in ascending lexicographic (byte) order.
func (s WordSet) Sorted() []string {
	words := make([]string, 0, len(s))
	for w := range s {
		words = append(words, w)
	}
	slices.Sort(words)
	return words
}
