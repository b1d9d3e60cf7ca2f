package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/alateas/vybory"
	"golang.org/x/net/html"
)

// NewTable converts a <table> selection into a vybory.Table.
// Rows and cells are collected from all descendant <tr> and <td> elements
// in document order. Anchor targets are resolved against base.
func NewTable(sel *goquery.Selection, base *url.URL) *vybory.Table {
	t := &vybory.Table{Text: sel.Text()}
	sel.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		row := vybory.Row{Text: tr.Text()}
		tr.Find("td").Each(func(_ int, td *goquery.Selection) {
			row.Cells = append(row.Cells, newCell(td, base))
		})
		t.Rows = append(t.Rows, row)
	})
	return t
}

func newCell(td *goquery.Selection, base *url.URL) vybory.Cell {
	cell := vybory.Cell{
		Text: td.Text(),
		Bold: td.Find("b").First().Text(),
	}
	if href, ok := td.Find("a[href]").First().Attr("href"); ok {
		cell.Href = resolveURL(base, href)
	}
	cell.AfterBreak = textAfterBreak(td)
	return cell
}

// textAfterBreak returns the text node directly following the first <br>
// inside sel, or the empty string if there is none.
func textAfterBreak(sel *goquery.Selection) string {
	br := sel.Find("br").First()
	if br.Length() == 0 {
		return ""
	}
	next := br.Nodes[0].NextSibling
	if next == nil || next.Type != html.TextNode {
		return ""
	}
	return next.Data
}

// resolveURL resolves a possibly relative href against base.
// Unparseable hrefs are returned unchanged.
func resolveURL(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	ref, err := url.Parse(href)
	if err != nil || base == nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
