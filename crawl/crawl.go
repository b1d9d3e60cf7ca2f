// Package crawl walks the election archive's area hierarchy.
// A Walker opens an election and scans its field layout once; the
// resulting Election expands one level of the hierarchy per call and
// Tree drives the recursion from the country down to precincts.
package crawl

import (
	"context"
	"fmt"
	"net/url"

	"github.com/alateas/vybory"
)

// getPage fetches rawURL and parses it. The limiter, if any, is waited on
// for the URL's host before the fetch.
func getPage(ctx context.Context, fetcher vybory.Fetcher, parser vybory.PageParser, limiter vybory.DomainLimiter, rawURL string) (vybory.Page, error) {
	if limiter != nil {
		u, err := url.Parse(rawURL)
		if err != nil {
			return nil, vybory.Errorf(vybory.EINVALID, "invalid URL %q: %v", rawURL, err)
		}
		if err := limiter.Wait(ctx, u.Host); err != nil {
			return nil, err
		}
	}

	html, err := fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}

	page, err := parser.Parse(html, rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", rawURL, err)
	}
	return page, nil
}
