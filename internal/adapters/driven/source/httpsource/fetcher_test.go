package httpsource

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/transform"

	"github.com/custodia-labs/wordlist/internal/core/domain"
)

func newServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func sourceFor(url string) domain.Source {
	return domain.Source{
		URL:       url,
		UserAgent: domain.DefaultUserAgent,
		Timeout:   5 * time.Second,
	}
}

func collect(t *testing.T, f *Fetcher, src domain.Source) []string {
	t.Helper()
	stream, err := f.Open(context.Background(), src)
	require.NoError(t, err)
	defer stream.Close()

	lines := slices.Collect(stream.Lines())
	require.NoError(t, stream.Err())
	return lines
}

func TestOpen_Success(t *testing.T) {
	server := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "apple\nbanana\ncherry\n")
	})

	lines := collect(t, New(nil), sourceFor(server.URL))

	assert.Equal(t, []string{"apple", "banana", "cherry"}, lines)
}

func TestOpen_SendsUserAgent(t *testing.T) {
	var gotUA string
	server := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.UserAgent()
		_, _ = io.WriteString(w, "word\n")
	})

	collect(t, New(nil), sourceFor(server.URL))

	assert.Equal(t, domain.DefaultUserAgent, gotUA)
}

func TestOpen_StripsLineEndings(t *testing.T) {
	server := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "one\r\ntwo\n\nthree\rapple\rbanana\n\rcherry\r")
	})

	lines := collect(t, New(nil), sourceFor(server.URL))

	assert.Equal(t, []string{"one", "two", "", "three", "apple", "banana", "", "cherry"}, lines)
}

func TestOpen_CRLFSplitAcrossWrites(t *testing.T) {
	server := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "apple\r")
		w.(http.Flusher).Flush()
		_, _ = io.WriteString(w, "\nbanana\r")
		w.(http.Flusher).Flush()
		_, _ = io.WriteString(w, "cherry\n")
	})

	lines := collect(t, New(nil), sourceFor(server.URL))

	assert.Equal(t, []string{"apple", "banana", "cherry"}, lines)
}

func TestScanLines(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		atEOF   bool
		advance int
		token   string
		more    bool
	}{
		{name: "newline", data: "ab\ncd", advance: 3, token: "ab"},
		{name: "crlf", data: "ab\r\ncd", advance: 4, token: "ab"},
		{name: "lone cr", data: "ab\rcd", advance: 3, token: "ab"},
		{name: "cr at buffer end", data: "ab\r", more: true},
		{name: "cr at eof", data: "ab\r", atEOF: true, advance: 3, token: "ab"},
		{name: "no terminator", data: "ab", more: true},
		{name: "final line", data: "ab", atEOF: true, advance: 2, token: "ab"},
		{name: "empty at eof", data: "", atEOF: true, more: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advance, token, err := scanLines([]byte(tt.data), tt.atEOF)

			require.NoError(t, err)
			if tt.more {
				assert.Zero(t, advance)
				assert.Nil(t, token)
				return
			}
			assert.Equal(t, tt.advance, advance)
			assert.Equal(t, tt.token, string(token))
		})
	}
}

func TestOpen_DropsMalformedUTF8(t *testing.T) {
	server := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ab\xffc\ncaf\xc3\xa9\n\xfe\xfe\n"))
	})

	lines := collect(t, New(nil), sourceFor(server.URL))

	assert.Equal(t, []string{"abc", "café", ""}, lines)
}

func TestOpen_KeepsEncodedReplacementChar(t *testing.T) {
	server := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ab\uFFFDc\nx\xefy\n")
	})

	lines := collect(t, New(nil), sourceFor(server.URL))

	assert.Equal(t, []string{"ab\uFFFDc", "xy"}, lines)
}

func TestDropIllFormed(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "ascii", in: "hello", want: "hello"},
		{name: "multibyte", in: "café naïve", want: "café naïve"},
		{name: "encoded replacement char", in: "a\uFFFDb", want: "a\uFFFDb"},
		{name: "stray continuation", in: "a\x80b", want: "ab"},
		{name: "truncated sequence", in: "a\xe2\x82b", want: "ab"},
		{name: "overlong", in: "a\xc0\xafb", want: "ab"},
		{name: "truncated at end", in: "ab\xe2\x82", want: "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := transform.String(dropIllFormed{}, tt.in)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOpen_LongLines(t *testing.T) {
	long := strings.Repeat("a", 200*1024)
	server := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, long+"\nshort\n")
	})

	lines := collect(t, New(nil), sourceFor(server.URL))

	require.Len(t, lines, 2)
	assert.Equal(t, long, lines[0])
	assert.Equal(t, "short", lines[1])
}

func TestOpen_NonSuccessStatus(t *testing.T) {
	server := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	})

	stream, err := New(nil).Open(context.Background(), sourceFor(server.URL))

	require.Error(t, err)
	assert.Nil(t, stream)
	assert.ErrorIs(t, err, domain.ErrUnexpectedStatus)
	assert.Contains(t, err.Error(), "404")
}

func TestOpen_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		<-release
	})
	defer close(release)

	src := sourceFor(server.URL)
	src.Timeout = 50 * time.Millisecond

	_, err := New(nil).Open(context.Background(), src)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}

func TestOpen_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := New(nil).Open(context.Background(), sourceFor(url))

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}

func TestOpen_CancelledContext(t *testing.T) {
	server := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "word\n")
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(nil).Open(ctx, sourceFor(server.URL))

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOpen_EmptyURL(t *testing.T) {
	_, err := New(nil).Open(context.Background(), domain.Source{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLines_StopsEarly(t *testing.T) {
	server := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "one\ntwo\nthree\n")
	})

	stream, err := New(nil).Open(context.Background(), sourceFor(server.URL))
	require.NoError(t, err)
	defer stream.Close()

	var first string
	for line := range stream.Lines() {
		first = line
		break
	}

	assert.Equal(t, "one", first)
	assert.NoError(t, stream.Err())
}
