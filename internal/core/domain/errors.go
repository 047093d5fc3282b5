package domain

import "errors"

// Domain errors. Callers wrap these with context; the CLI reports any of
// them as a single failure.
var (
	// ErrInvalidInput indicates malformed options or settings.
	ErrInvalidInput = errors.New("invalid input")

	// ErrFetchFailed indicates the source could not be retrieved
	// (network error or timeout).
	ErrFetchFailed = errors.New("fetch failed")

	// ErrUnexpectedStatus indicates the source answered with a non-success status.
	ErrUnexpectedStatus = errors.New("unexpected response status")

	// ErrWriteFailed indicates the output file could not be written.
	ErrWriteFailed = errors.New("write failed")
)

const unknownDescription = "unknown"
