// Package textfile writes the word list as a plain UTF-8 text file.
package textfile

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/custodia-labs/wordlist/internal/core/domain"
	"github.com/custodia-labs/wordlist/internal/core/ports/driven"
	"github.com/custodia-labs/wordlist/internal/logger"
)

// Ensure Writer implements the interface.
var _ driven.WordListWriter = (*Writer)(nil)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Writer replaces the output file atomically: words go to a temporary
// sibling that is renamed over the destination once fully written.
type Writer struct{}

// NewWriter creates a new text file writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write stores words one per line, each terminated by "\n".
func (w *Writer) Write(path string, words []string) error {
	if path == "" {
		return fmt.Errorf("%w: output path is empty", domain.ErrInvalidInput)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("%w: create directory %s: %w", domain.ErrWriteFailed, dir, err)
	}

	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))
	if err := writeLines(tmpPath, words); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: %w", domain.ErrWriteFailed, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("%w: %w", domain.ErrWriteFailed, err)
	}

	logger.Debug("wrote %d lines to %s", len(words), path)
	return nil
}

// writeLines creates path and fills it with words.
func writeLines(path string, words []string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(f)
	for _, word := range words {
		if _, err := bw.WriteString(word); err != nil {
			_ = f.Close()
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			_ = f.Close()
			return err
		}
	}

	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
