// Package logger provides verbose logging for the wordlist CLI.
// When verbose mode is enabled via the --verbose flag, debug messages
// and download progress are printed to stderr. Without it the CLI only
// prints its one-line summary or the final error.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultProgressInterval is the minimum delay between two progress lines.
const DefaultProgressInterval = time.Second

var (
	mu          sync.RWMutex
	verbose     bool
	interactive bool
	output      io.Writer = os.Stderr

	progressOpen bool
	progress     = &rate.Sometimes{Interval: DefaultProgressInterval}
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetInteractive selects in-place progress rendering for terminals.
func SetInteractive(v bool) {
	mu.Lock()
	defer mu.Unlock()
	interactive = v
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// SetProgressInterval resets progress throttling to at most one line per d.
func SetProgressInterval(d time.Duration) {
	mu.Lock()
	defer mu.Unlock()
	progress = &rate.Sometimes{Interval: d}
	progressOpen = false
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	logf("[DEBUG] ", format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.Lock()
	defer mu.Unlock()
	if verbose {
		closeProgress()
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	logf("[INFO] ", format, args...)
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	logf("[WARN] ", format, args...)
}

// Progress prints a progress message if verbose mode is enabled, at most
// once per progress interval. On a terminal the line is redrawn in place.
func Progress(format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if !verbose {
		return
	}
	progress.Do(func() {
		msg := fmt.Sprintf(format, args...)
		if interactive {
			fmt.Fprintf(output, "\r[PROGRESS] %s", msg)
			progressOpen = true
			return
		}
		fmt.Fprintf(output, "[PROGRESS] %s\n", msg)
	})
}

// ProgressDone terminates an in-place progress line, if one is open.
func ProgressDone() {
	mu.Lock()
	defer mu.Unlock()
	closeProgress()
}

func logf(prefix, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if verbose {
		closeProgress()
		fmt.Fprintf(output, prefix+format+"\n", args...)
	}
}

// closeProgress ends an open progress line (caller must hold lock).
func closeProgress() {
	if progressOpen {
		fmt.Fprintln(output)
		progressOpen = false
	}
}
