// Package goquery implements the archive's page structure on top of
// github.com/PuerkitoBio/goquery.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/alateas/vybory"
)

// Selectors for the structural parts of an archive page. The archive marks
// these with presentation attributes rather than ids or classes.
const (
	BreakdownTableSelector = `table[style="width:100%;overflow:scroll"]`
	ResultsCellSelector    = `td[align="left"][style="height:100%;"][valign="top"]`
	HighlightRowSelector   = `tr[bgcolor="eeeeee"]`
	CandidateTableSelector = "#table-1"
)

var (
	_ vybory.PageParser = (*Parser)(nil)
	_ vybory.Page       = (*Page)(nil)
)

// Parser parses archive HTML into pages.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses html fetched from pageURL.
func (p *Parser) Parse(html string, pageURL string) (vybory.Page, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, vybory.Errorf(vybory.EINVALID, "invalid page URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, vybory.Errorf(vybory.EINVALID, "failed to parse HTML: %v", err)
	}

	return &Page{doc: doc, base: base, url: pageURL}, nil
}

// Page is a parsed archive page.
type Page struct {
	doc  *goquery.Document
	base *url.URL
	url  string
}

// URL returns the address the page was fetched from.
func (p *Page) URL() string {
	return p.url
}

// AnchorHref returns the resolved href of the first anchor whose text
// equals text exactly.
func (p *Page) AnchorHref(text string) (string, bool) {
	var href string
	var found bool
	p.doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		if a.Text() != text {
			return true
		}
		h, _ := a.Attr("href")
		href, found = resolveURL(p.base, h), true
		return false
	})
	return href, found
}

// BreakdownTable returns the multi-area table.
func (p *Page) BreakdownTable() (*vybory.Table, bool) {
	sel := p.doc.Find(BreakdownTableSelector).First()
	if sel.Length() == 0 {
		return nil, false
	}
	return NewTable(sel, p.base), true
}

// ResultsTable returns the first table inside the left-hand results cell.
func (p *Page) ResultsTable() (*vybory.Table, bool) {
	sel := p.doc.Find(ResultsCellSelector).First().Find("table").First()
	if sel.Length() == 0 {
		return nil, false
	}
	return NewTable(sel, p.base), true
}

// AreaName returns the text of the second cell of the highlighted row.
func (p *Page) AreaName() (string, bool) {
	td := p.doc.Find(HighlightRowSelector).First().Find("td").Eq(1)
	if td.Length() == 0 {
		return "", false
	}
	return strings.TrimSpace(td.Text()), true
}

// PaginationLinks returns the links in the last cell of the page's second
// table. Pages without that table have no further pages.
func (p *Page) PaginationLinks() []string {
	tables := p.doc.Find("table")
	if tables.Length() < 2 {
		return nil
	}
	var links []string
	tables.Eq(1).Find("td").Last().Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		links = append(links, resolveURL(p.base, href))
	})
	return links
}

// CandidateNames returns the anchor texts in the candidate table body.
func (p *Page) CandidateNames() ([]string, bool) {
	table := p.doc.Find(CandidateTableSelector).First()
	if table.Length() == 0 {
		return nil, false
	}
	names := []string{}
	table.Find("tbody a").Each(func(_ int, a *goquery.Selection) {
		names = append(names, strings.TrimSpace(a.Text()))
	})
	return names, true
}
