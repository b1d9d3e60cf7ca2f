package crawl

import (
	"context"

	"github.com/alateas/vybory"
)

// CandidateLister reads the candidate registry of an election.
type CandidateLister struct {
	Fetcher     vybory.Fetcher
	Parser      vybory.PageParser
	RateLimiter vybory.DomainLimiter
}

// ListCandidates returns the registered candidate names in registry order.
// The registry is reached from the election page at electionURL through the
// kind's candidates anchor; every page of the registry is read and the
// names are concatenated without deduplication.
//
// Returns ENOTIMPLEMENTED if the kind has no candidate registry and
// ENOTFOUND if the anchor or a registry table is missing.
func (l *CandidateLister) ListCandidates(ctx context.Context, kind vybory.ElectionKind, electionURL string) ([]string, error) {
	if kind.CandidatesAnchor == "" {
		return nil, vybory.Errorf(vybory.ENOTIMPLEMENTED, "%s elections have no candidate registry", kind.Name)
	}

	page, err := l.page(ctx, electionURL)
	if err != nil {
		return nil, err
	}
	firstURL, ok := page.AnchorHref(kind.CandidatesAnchor)
	if !ok {
		return nil, vybory.Errorf(vybory.ENOTFOUND, "no candidate registry link on %s", electionURL)
	}

	first, err := l.page(ctx, firstURL)
	if err != nil {
		return nil, err
	}

	names, err := candidateNames(first)
	if err != nil {
		return nil, err
	}
	for _, pageURL := range first.PaginationLinks() {
		p, err := l.page(ctx, pageURL)
		if err != nil {
			return nil, err
		}
		more, err := candidateNames(p)
		if err != nil {
			return nil, err
		}
		names = append(names, more...)
	}
	return names, nil
}

func (l *CandidateLister) page(ctx context.Context, rawURL string) (vybory.Page, error) {
	return getPage(ctx, l.Fetcher, l.Parser, l.RateLimiter, rawURL)
}

func candidateNames(page vybory.Page) ([]string, error) {
	names, ok := page.CandidateNames()
	if !ok {
		return nil, vybory.Errorf(vybory.ENOTFOUND, "no candidate table on %s", page.URL())
	}
	return names, nil
}
