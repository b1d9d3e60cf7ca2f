// Package cache memoizes fetched pages for the duration of a run.
// Opening an election and walking it fetch the summary page more than
// once; the cache serves the repeats.
package cache

import (
	"context"

	"github.com/alateas/vybory"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultMaxPages bounds the number of cached pages.
const DefaultMaxPages = 64

var _ vybory.Fetcher = (*Fetcher)(nil)

// Fetcher wraps a Fetcher and keeps the most recently used pages.
// Failed fetches are not cached.
type Fetcher struct {
	next     vybory.Fetcher
	maxPages int
	pages    *lru.Cache[string, string]
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithMaxPages sets the number of pages kept. Defaults to DefaultMaxPages.
func WithMaxPages(n int) Option {
	return func(f *Fetcher) {
		if n > 0 {
			f.maxPages = n
		}
	}
}

// NewFetcher creates a caching Fetcher in front of next.
func NewFetcher(next vybory.Fetcher, opts ...Option) *Fetcher {
	f := &Fetcher{
		next:     next,
		maxPages: DefaultMaxPages,
	}
	for _, opt := range opts {
		opt(f)
	}
	// lru.New only fails for a non-positive size, which WithMaxPages rejects.
	f.pages, _ = lru.New[string, string](f.maxPages)
	return f
}

// Fetch returns the cached page for url or fetches it from the wrapped
// fetcher.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if html, ok := f.pages.Get(url); ok {
		return html, nil
	}

	html, err := f.next.Fetch(ctx, url)
	if err != nil {
		return "", err
	}
	f.pages.Add(url, html)
	return html, nil
}

// Len returns the number of cached pages.
func (f *Fetcher) Len() int {
	return f.pages.Len()
}

// Close drops the cached pages and closes the wrapped fetcher.
func (f *Fetcher) Close() error {
	f.pages.Purge()
	return f.next.Close()
}
