// Package httpsource retrieves the raw word list over HTTP(S).
package httpsource

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"iter"
	"math"
	"net/http"
	"unicode/utf8"

	"golang.org/x/text/transform"

	"github.com/custodia-labs/wordlist/internal/core/domain"
	"github.com/custodia-labs/wordlist/internal/core/ports/driven"
	"github.com/custodia-labs/wordlist/internal/logger"
)

// Ensure Fetcher implements the interface.
var _ driven.WordSource = (*Fetcher)(nil)

// Fetcher performs a single GET per Open call.
type Fetcher struct {
	transport http.RoundTripper
}

// New creates a fetcher. A nil transport uses http.DefaultTransport.
func New(transport http.RoundTripper) *Fetcher {
	return &Fetcher{transport: transport}
}

// Open issues the request and returns the body as a line stream.
// The whole retrieval, including reading the body, is bounded by src.Timeout.
func (f *Fetcher) Open(ctx context.Context, src domain.Source) (driven.LineStream, error) {
	if src.URL == "" {
		return nil, fmt.Errorf("%w: source URL is empty", domain.ErrInvalidInput)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	if src.UserAgent != "" {
		req.Header.Set("User-Agent", src.UserAgent)
	}

	client := &http.Client{
		Transport: f.transport,
		Timeout:   src.Timeout,
	}

	logger.Debug("GET %s (timeout %s)", src.URL, src.Timeout)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("%w: %s", domain.ErrUnexpectedStatus, resp.Status)
	}

	logger.Debug("response %s, content length %d", resp.Status, resp.ContentLength)

	return newLineStream(resp.Body), nil
}

// dropIllFormed copies well-formed UTF-8 through unchanged and skips every
// byte that does not start a valid encoding. A correctly encoded U+FFFD is
// kept like any other rune.
type dropIllFormed struct{ transform.NopResetter }

func (dropIllFormed) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if c := src[nSrc]; c < utf8.RuneSelf {
			if nDst == len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
			nSrc++
			continue
		}
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		r, size := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && size == 1 {
			nSrc++
			continue
		}
		if nDst+size > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], src[nSrc:nSrc+size])
		nSrc += size
	}
	return nDst, nSrc, nil
}

// maxLineBytes lifts bufio.Scanner's token limit so line length is bounded
// only by memory.
const maxLineBytes = math.MaxInt

// lineStream reads lines lazily from a decoded body.
type lineStream struct {
	body    io.ReadCloser
	scanner *bufio.Scanner
	lines   int
	bytes   int
	err     error
}

func newLineStream(body io.ReadCloser) *lineStream {
	s := &lineStream{body: body}
	s.scanner = bufio.NewScanner(transform.NewReader(body, dropIllFormed{}))
	s.scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	s.scanner.Split(s.split)
	return s
}

// split wraps scanLines to track how many decoded bytes were consumed.
func (s *lineStream) split(data []byte, atEOF bool) (int, []byte, error) {
	advance, token, err := scanLines(data, atEOF)
	s.bytes += advance
	return advance, token, err
}

// scanLines splits on "\n", "\r\n" or a lone "\r", dropping the terminator.
// The final line does not need one.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		switch {
		case i+1 < len(data) && data[i+1] == '\n':
			return i + 2, data[:i], nil
		case i+1 < len(data) || atEOF:
			return i + 1, data[:i], nil
		}
		// "\r" ends the buffer; wait to see whether "\n" follows.
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// Lines yields each line with its "\n", "\r\n" or "\r" terminator removed.
func (s *lineStream) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for s.scanner.Scan() {
			s.lines++
			logger.Progress("read %d lines (%d bytes)", s.lines, s.bytes)
			if !yield(s.scanner.Text()) {
				return
			}
		}
		if err := s.scanner.Err(); err != nil {
			s.err = fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
		}
		logger.ProgressDone()
		logger.Debug("read %d lines (%d bytes)", s.lines, s.bytes)
	}
}

// Err returns the read error that stopped iteration, if any.
func (s *lineStream) Err() error {
	return s.err
}

// Close releases the response body.
func (s *lineStream) Close() error {
	return s.body.Close()
}
