package vybory

// Page is a parsed archive page. It exposes only the lookups the
// extraction core needs; DOM details stay with the implementation.
type Page interface {
	// URL returns the address the page was fetched from.
	URL() string

	// AnchorHref returns the resolved href of the first anchor whose text
	// equals text exactly.
	AnchorHref(text string) (href string, ok bool)

	// BreakdownTable returns the multi-area table whose columns are
	// sibling areas.
	BreakdownTable() (*Table, bool)

	// ResultsTable returns the left-hand single-area results table.
	ResultsTable() (*Table, bool)

	// AreaName returns the page's own area name from the highlighted row.
	AreaName() (string, bool)

	// PaginationLinks returns the resolved page links listed in the last
	// cell of the candidate registry's pagination table.
	PaginationLinks() []string

	// CandidateNames returns the anchor texts of the candidate registry
	// table body in document order.
	CandidateNames() ([]string, bool)
}

// PageParser parses fetched HTML into a Page.
type PageParser interface {
	// Parse parses html fetched from url. Relative links are resolved
	// against url.
	Parse(html string, url string) (Page, error)
}
