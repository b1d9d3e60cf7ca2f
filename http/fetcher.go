// Package http provides an HTTP-based implementation of vybory.Fetcher.
// Archive pages are served in windows-1251, often without a usable
// declaration; the fetcher decodes them to UTF-8 before returning.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/alateas/vybory"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/charmap"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultUserAgent is sent with every request unless overridden.
const DefaultUserAgent = "vybory/1.0"

// DefaultCharset is the encoding assumed for every response unless
// overridden with WithCharset or WithDetectCharset.
const DefaultCharset = "windows-1251"

// Ensure Fetcher implements vybory.Fetcher at compile time.
var _ vybory.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP requests.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
	charset   string
	detect    bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithCharset sets the response encoding by label, e.g. "koi8-r".
// Defaults to DefaultCharset.
func WithCharset(label string) Option {
	return func(f *Fetcher) {
		f.charset = label
		f.detect = false
	}
}

// WithDetectCharset detects the response encoding from the Content-Type
// header, a byte-order mark or a <meta> declaration in the first 1024
// bytes. Undeclared pages fall back to windows-1252.
func WithDetectCharset() Option {
	return func(f *Fetcher) {
		f.detect = true
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
		charset:   DefaultCharset,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the page at url and returns it decoded to UTF-8.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := f.decode(resp)
	if err != nil {
		return "", err
	}

	b, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

func (f *Fetcher) decode(resp *http.Response) (io.Reader, error) {
	if f.detect {
		r, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
		if err != nil {
			return nil, fmt.Errorf("detect charset for %s: %w", resp.Request.URL, err)
		}
		return r, nil
	}
	if f.charset == DefaultCharset {
		return charmap.Windows1251.NewDecoder().Reader(resp.Body), nil
	}
	r, err := charset.NewReaderLabel(f.charset, resp.Body)
	if err != nil {
		return nil, vybory.Errorf(vybory.EINVALID, "unsupported charset %q", f.charset)
	}
	return r, nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
