package driven

// WordListWriter persists the final word list.
type WordListWriter interface {
	// Write replaces the file at path with words, one per line, in the
	// order given. Missing parent directories are created.
	Write(path string, words []string) error
}
