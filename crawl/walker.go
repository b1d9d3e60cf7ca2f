package crawl

import (
	"context"
	"fmt"

	"github.com/alateas/vybory"
)

// Walker opens elections in the archive.
type Walker struct {
	Fetcher     vybory.Fetcher
	Parser      vybory.PageParser
	RateLimiter vybory.DomainLimiter
	Kind        vybory.ElectionKind

	// Captions overrides the caption table used to scan layouts.
	// Defaults to vybory.DefaultCaptions.
	Captions *vybory.CaptionTable

	// Required lists fields every opened election must report.
	Required []vybory.FieldID
}

func (w *Walker) page(ctx context.Context, rawURL string) (vybory.Page, error) {
	return getPage(ctx, w.Fetcher, w.Parser, w.RateLimiter, rawURL)
}

// SummaryURL returns the summary results page linked from the election's
// landing page. The kind's summary anchor labels are tried in order.
// Returns ENOTFOUND if none of them is present.
func (w *Walker) SummaryURL(ctx context.Context, electionURL string) (string, error) {
	page, err := w.page(ctx, electionURL)
	if err != nil {
		return "", err
	}
	for _, label := range w.Kind.SummaryAnchors {
		if href, ok := page.AnchorHref(label); ok {
			return href, nil
		}
	}
	return "", vybory.Errorf(vybory.ENOTFOUND, "no summary link on %s", electionURL)
}

// Open resolves the summary page of the election at electionURL and scans
// its field layout.
func (w *Walker) Open(ctx context.Context, electionURL string) (*Election, error) {
	summaryURL, err := w.SummaryURL(ctx, electionURL)
	if err != nil {
		return nil, err
	}
	return w.OpenSummary(ctx, summaryURL)
}

// OpenSummary scans the field layout of an already resolved summary page.
// Returns ENOTFOUND if the page has no results table or lacks a required
// field.
func (w *Walker) OpenSummary(ctx context.Context, summaryURL string) (*Election, error) {
	page, err := w.page(ctx, summaryURL)
	if err != nil {
		return nil, err
	}

	table, ok := page.ResultsTable()
	if !ok {
		return nil, vybory.Errorf(vybory.ENOTFOUND, "no results table on %s", summaryURL)
	}

	captions := w.Captions
	if captions == nil {
		captions = vybory.DefaultCaptions
	}
	layout := vybory.ScanLayoutWith(captions, table.Rows)
	if err := layout.Require(w.Required...); err != nil {
		return nil, err
	}

	return &Election{
		SummaryURL: summaryURL,
		Layout:     layout,
		walker:     w,
	}, nil
}

// Election is an opened election. Its layout is read-only, so one Election
// can serve any number of Expand calls.
type Election struct {
	SummaryURL string
	Layout     *vybory.FieldLayout

	walker *Walker
}

// Kind returns the kind of the election.
func (e *Election) Kind() vybory.ElectionKind {
	return e.walker.Kind
}

// Summary returns the country-level totals read from the summary page.
func (e *Election) Summary(ctx context.Context) (vybory.AreaResult, error) {
	page, err := e.walker.page(ctx, e.SummaryURL)
	if err != nil {
		return vybory.AreaResult{}, err
	}
	area, err := e.single(page)
	if err != nil {
		return vybory.AreaResult{}, err
	}
	area.Name = e.walker.Kind.Title
	area.ChildURL = e.SummaryURL
	return area, nil
}

// Regions returns the top-level areas of the election.
func (e *Election) Regions(ctx context.Context) ([]vybory.AreaResult, error) {
	return e.Expand(ctx, e.SummaryURL, false)
}

// TIKs returns the territorial commissions of the region at regionURL.
func (e *Election) TIKs(ctx context.Context, regionURL string) ([]vybory.AreaResult, error) {
	return e.Expand(ctx, regionURL, false)
}

// UIKs returns the precincts of the territorial commission at tikURL.
// Territorial links lead to a landing page that points at the real data.
func (e *Election) UIKs(ctx context.Context, tikURL string) ([]vybory.AreaResult, error) {
	return e.Expand(ctx, tikURL, true)
}

// ResolveIndirection follows the kind's indirection anchor on the landing
// page at pageURL. Returns ENOTFOUND if the anchor is missing.
func (e *Election) ResolveIndirection(ctx context.Context, pageURL string) (string, error) {
	page, err := e.walker.page(ctx, pageURL)
	if err != nil {
		return "", err
	}
	href, ok := page.AnchorHref(e.walker.Kind.IndirectionAnchor)
	if !ok {
		return "", vybory.Errorf(vybory.ENOTFOUND, "no indirection link on %s", pageURL)
	}
	return href, nil
}

// Expand descends one level below the area at pageURL and returns the
// child areas. A page without a breakdown is a leaf; it yields a single
// area whose ChildURL is pageURL itself.
func (e *Election) Expand(ctx context.Context, pageURL string, viaIndirection bool) ([]vybory.AreaResult, error) {
	target := pageURL
	if viaIndirection {
		resolved, err := e.ResolveIndirection(ctx, pageURL)
		if err != nil {
			return nil, err
		}
		target = resolved
	}

	page, err := e.walker.page(ctx, target)
	if err != nil {
		return nil, err
	}

	table, ok := page.BreakdownTable()
	if !ok || table.IsEmpty() || (!viaIndirection && hasUnlinkedArea(table)) {
		return e.leaf(page, pageURL)
	}

	areas, err := vybory.ExtractBreakdown(table, e.Layout)
	if err != nil {
		return nil, fmt.Errorf("expand %s: %w", target, err)
	}
	return areas, nil
}

func (e *Election) leaf(page vybory.Page, pageURL string) ([]vybory.AreaResult, error) {
	area, err := e.single(page)
	if err != nil {
		return nil, err
	}
	name, ok := page.AreaName()
	if !ok {
		return nil, vybory.Errorf(vybory.ENOTFOUND, "no area name on %s", page.URL())
	}
	area.Name = name
	area.ChildURL = pageURL
	return []vybory.AreaResult{area}, nil
}

func (e *Election) single(page vybory.Page) (vybory.AreaResult, error) {
	table, ok := page.ResultsTable()
	if !ok {
		return vybory.AreaResult{}, vybory.Errorf(vybory.ENOTFOUND, "no results table on %s", page.URL())
	}
	area, err := vybory.ExtractSingle(table, e.Layout)
	if err != nil {
		return vybory.AreaResult{}, fmt.Errorf("extract %s: %w", page.URL(), err)
	}
	return area, nil
}

// hasUnlinkedArea reports whether any area in the breakdown header lacks a
// link. Such a breakdown lists the page's own precinct columns rather than
// child areas.
func hasUnlinkedArea(t *vybory.Table) bool {
	if len(t.Rows) == 0 {
		return false
	}
	for _, cell := range t.Rows[0].Cells {
		if cell.Href == "" {
			return true
		}
	}
	return false
}
