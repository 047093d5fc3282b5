package domain

import (
	"fmt"
	"strconv"
)

// Default filter values.
const (
	// DefaultMinLength is the shortest word kept by default.
	DefaultMinLength = 2

	// NoMaxLength disables the upper length bound.
	NoMaxLength = 0
)

// FilterOptions controls which candidate words are accepted.
type FilterOptions struct {
	// MinLength is the minimum accepted word length.
	MinLength int

	// MaxLength is the maximum accepted word length. Zero means unbounded.
	MaxLength int

	// AllowHyphens adds '-' to the accepted characters.
	AllowHyphens bool

	// AllowApostrophes adds '\'' to the accepted characters.
	AllowApostrophes bool
}

// DefaultFilterOptions returns letters-only filtering with a minimum length of 2.
func DefaultFilterOptions() FilterOptions {
	return FilterOptions{
		MinLength: DefaultMinLength,
		MaxLength: NoMaxLength,
	}
}

// CharClass returns the acceptance class described by the options.
func (o FilterOptions) CharClass() CharClass {
	return NewCharClass(o.AllowHyphens, o.AllowApostrophes)
}

// HasMaxLength returns true if an upper length bound is set.
func (o FilterOptions) HasMaxLength() bool {
	return o.MaxLength > 0
}

// Validate checks that the length bounds are usable.
func (o FilterOptions) Validate() error {
	if o.MinLength < 0 {
		return fmt.Errorf("%w: min length must not be negative, got %d", ErrInvalidInput, o.MinLength)
	}
	if o.MaxLength < 0 {
		return fmt.Errorf("%w: max length must not be negative, got %d", ErrInvalidInput, o.MaxLength)
	}
	return nil
}

// String renders the options the way the build summary reports them.
func (o FilterOptions) String() string {
	maxLen := "none"
	if o.HasMaxLength() {
		maxLen = strconv.Itoa(o.MaxLength)
	}
	return fmt.Sprintf("min_len=%d, max_len=%s, hyphens=%t, apostrophes=%t",
		o.MinLength, maxLen, o.AllowHyphens, o.AllowApostrophes)
}
