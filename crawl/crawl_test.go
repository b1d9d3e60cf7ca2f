package crawl_test

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/alateas/vybory"
	"github.com/alateas/vybory/crawl"
	"github.com/alateas/vybory/goquery"
	"github.com/alateas/vybory/mock"
)

// tally is the content of one results column: listed voters, valid
// ballots and the votes of the two candidates.
type tally struct {
	listed, valid, ivanov, petrov string
}

func counts(listed, valid, ivanov, petrov int) tally {
	return tally{
		listed: fmt.Sprint(listed),
		valid:  fmt.Sprint(valid),
		ivanov: fmt.Sprint(ivanov),
		petrov: fmt.Sprint(petrov),
	}
}

// column is one child area in a breakdown table. An empty href renders
// the header cell without a link.
type column struct {
	name, href string
	tally      tally
}

func voteCell(votes string) string {
	return "<b>" + votes + "</b><br>50.00%"
}

// areaPage renders an archive page for the area name with its own totals
// in the left-hand table and one breakdown column per child area.
// Without columns the page has no breakdown table.
func areaPage(name string, own tally, columns ...column) string {
	var b strings.Builder
	b.WriteString(`<html><body><table><tr bgcolor="eeeeee"><td>&nbsp;</td><td>` + name + `</td></tr></table>`)
	b.WriteString(`<table width="100%"><tr><td align="left" style="height:100%;" valign="top"><table>`)
	fmt.Fprintf(&b, `<tr><td>1</td><td>Число избирателей, внесенных в список</td><td><b>%s</b></td></tr>`, own.listed)
	fmt.Fprintf(&b, `<tr><td>2</td><td>Число действительных бюллетеней</td><td><b>%s</b></td></tr>`, own.valid)
	b.WriteString(`<tr><td colspan="3"></td></tr>`)
	fmt.Fprintf(&b, `<tr><td>3</td><td>Иванов</td><td>%s</td></tr>`, voteCell(own.ivanov))
	fmt.Fprintf(&b, `<tr><td>4</td><td>Петров</td><td>%s</td></tr>`, voteCell(own.petrov))
	b.WriteString(`</table></td><td>`)
	if len(columns) > 0 {
		b.WriteString(`<table style="width:100%;overflow:scroll">`)
		b.WriteString("<tr>")
		for _, c := range columns {
			if c.href == "" {
				fmt.Fprintf(&b, "<td>%s</td>", c.name)
			} else {
				fmt.Fprintf(&b, `<td><nobr><a href="%s">%s</a></nobr></td>`, c.href, c.name)
			}
		}
		b.WriteString("</tr>")
		writeRow := func(cell func(c column) string) {
			b.WriteString("<tr>")
			for _, c := range columns {
				b.WriteString("<td>" + cell(c) + "</td>")
			}
			b.WriteString("</tr>")
		}
		writeRow(func(column) string { return "&nbsp;" })
		writeRow(func(c column) string { return c.tally.listed })
		writeRow(func(c column) string { return c.tally.valid })
		writeRow(func(column) string { return "" })
		writeRow(func(c column) string { return voteCell(c.tally.ivanov) })
		writeRow(func(c column) string { return voteCell(c.tally.petrov) })
		b.WriteString("</table>")
	}
	b.WriteString(`</td></tr></table></body></html>`)
	return b.String()
}

// linkPage renders a page holding a single anchor.
func linkPage(label, href string) string {
	return fmt.Sprintf(`<html><body><p><a href="%s">%s</a></p></body></html>`, href, label)
}

// registryPage renders one page of the candidate registry.
func registryPage(pages []string, names ...string) string {
	var b strings.Builder
	b.WriteString(`<html><body><table><tr><td>Сведения о кандидатах</td></tr></table>`)
	b.WriteString(`<table><tr><td>Страницы:</td><td>`)
	for i, href := range pages {
		fmt.Fprintf(&b, `<a href="%s">%d</a> `, href, i+2)
	}
	b.WriteString(`</td></tr></table><table id="table-1"><thead><tr><th>ФИО</th></tr></thead><tbody>`)
	for i, name := range names {
		fmt.Fprintf(&b, `<tr><td><a href="/c/%d">%s</a></td></tr>`, i, name)
	}
	b.WriteString(`</tbody></table></body></html>`)
	return b.String()
}

// site serves fixed pages by URL and records every fetch in order.
type site struct {
	mu      sync.Mutex
	pages   map[string]string
	fetched []string
}

func newSite(pages map[string]string) *site {
	return &site{pages: pages}
}

func (s *site) fetcher() *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.fetched = append(s.fetched, url)
			html, ok := s.pages[url]
			if !ok {
				return "", fmt.Errorf("HTTP 404 for %s", url)
			}
			return html, nil
		},
		CloseFn: func() error { return nil },
	}
}

func (s *site) fetches() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.fetched...)
}

func newWalker(s *site) *crawl.Walker {
	return &crawl.Walker{
		Fetcher: s.fetcher(),
		Parser:  goquery.NewParser(),
		Kind:    vybory.President,
	}
}

const (
	electionURL = "http://archive.test/election"
	summaryURL  = "http://archive.test/summary"
	northURL    = "http://archive.test/north"
	southURL    = "http://archive.test/south"
	tikURL      = "http://archive.test/north/tik1"
	realTIKURL  = "http://north.archive.test/tik1"
	uik1URL     = "http://north.archive.test/uik1"
	uik2URL     = "http://north.archive.test/uik2"
)

// archive is a complete election: two regions, one of them a leaf, one
// territorial commission behind a landing page, and two precincts.
func archive() map[string]string {
	return map[string]string{
		electionURL: linkPage("Сводная таблица результатов выборов", summaryURL),
		summaryURL: areaPage("Российская Федерация", counts(3000, 2700, 1500, 1200),
			column{"Север", northURL, counts(2000, 1800, 1000, 800)},
			column{"Юг", southURL, counts(1000, 900, 500, 400)},
		),
		northURL: areaPage("Север", counts(2000, 1800, 1000, 800),
			column{"ТИК №1", tikURL, counts(2000, 1800, 1000, 800)},
		),
		southURL: areaPage("Юг", counts(1000, 900, 500, 400)),
		tikURL:   linkPage(vybory.IndirectionAnchor, realTIKURL),
		realTIKURL: areaPage("ТИК №1", counts(2000, 1800, 1000, 800),
			column{"УИК №1", uik1URL, counts(1200, 1100, 600, 500)},
			column{"УИК №2", uik2URL, counts(800, 700, 400, 300)},
		),
		uik1URL: areaPage("УИК №1", counts(1200, 1100, 600, 500)),
		uik2URL: areaPage("УИК №2", counts(800, 700, 400, 300)),
	}
}
