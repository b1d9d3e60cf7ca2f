package mock

import "github.com/alateas/vybory"

// Compile-time interface verification.
var (
	_ vybory.Page       = (*Page)(nil)
	_ vybory.PageParser = (*PageParser)(nil)
)

// Page is a mock implementation of vybory.Page.
type Page struct {
	URLFn             func() string
	AnchorHrefFn      func(text string) (string, bool)
	BreakdownTableFn  func() (*vybory.Table, bool)
	ResultsTableFn    func() (*vybory.Table, bool)
	AreaNameFn        func() (string, bool)
	PaginationLinksFn func() []string
	CandidateNamesFn  func() ([]string, bool)
}

func (p *Page) URL() string {
	return p.URLFn()
}

func (p *Page) AnchorHref(text string) (string, bool) {
	return p.AnchorHrefFn(text)
}

func (p *Page) BreakdownTable() (*vybory.Table, bool) {
	return p.BreakdownTableFn()
}

func (p *Page) ResultsTable() (*vybory.Table, bool) {
	return p.ResultsTableFn()
}

func (p *Page) AreaName() (string, bool) {
	return p.AreaNameFn()
}

func (p *Page) PaginationLinks() []string {
	return p.PaginationLinksFn()
}

func (p *Page) CandidateNames() ([]string, bool) {
	return p.CandidateNamesFn()
}

// PageParser is a mock implementation of vybory.PageParser.
type PageParser struct {
	ParseFn func(html string, url string) (vybory.Page, error)
}

func (p *PageParser) Parse(html string, url string) (vybory.Page, error) {
	return p.ParseFn(html, url)
}
