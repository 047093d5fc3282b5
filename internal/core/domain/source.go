package domain

import "time"

// Word list source defaults.
const (
	// DefaultSourceURL is the dwyl/english-words alphabetic list.
	DefaultSourceURL = "https://raw.githubusercontent.com/dwyl/english-words/master/words_alpha.txt"

	// DefaultUserAgent identifies the fetcher to the source host.
	DefaultUserAgent = "wordlist-fetcher/1.0 (+https://github.com/dwyl/english-words)"

	// DefaultFetchTimeout bounds the whole retrieval.
	DefaultFetchTimeout = 60 * time.Second
)

// Source describes where the raw word list is retrieved from.
type Source struct {
	URL       string
	UserAgent string
	Timeout   time.Duration
}

// DefaultSource returns the fixed upstream word list.
func DefaultSource() Source {
	return Source{
		URL:       DefaultSourceURL,
		UserAgent: DefaultUserAgent,
		Timeout:   DefaultFetchTimeout,
	}
}
