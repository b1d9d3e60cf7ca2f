package vybory

import "context"

// Fetcher retrieves decoded HTML from URLs.
// Implementations are responsible for character decoding; archive pages
// are served in a legacy Cyrillic code page.
type Fetcher interface {
	// Fetch retrieves the page at url and returns it as UTF-8 HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// DomainLimiter provides per-domain rate limiting for polite crawling.
type DomainLimiter interface {
	// Wait blocks until a request to domain is allowed.
	// Returns an error if the context is canceled while waiting.
	Wait(ctx context.Context, domain string) error
}
