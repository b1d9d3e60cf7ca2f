package vybory

import (
	"fmt"
	"maps"
	"slices"
)

// DefaultBaseURL is the root of the election-commission results archive.
const DefaultBaseURL = "http://www.vybory.izbirkom.ru"

// IndirectionAnchor is the label of the link a precinct-commission landing
// page uses to point at the page that actually holds its data.
const IndirectionAnchor = "сайт избирательной комиссии субъекта Российской Федерации"

// ElectionKind describes the page vocabulary of one type of election.
// Election types differ only in data, so they are values rather than types.
type ElectionKind struct {
	// Name is the short identifier used on the command line.
	Name string

	// Title names the country-level area of a summary page.
	Title string

	// SummaryAnchors lists the labels of the link to the summary results
	// page, in the order they are tried.
	SummaryAnchors []string

	// CandidatesAnchor is the label of the link to the candidate registry.
	// Empty if the registry is not supported for this kind.
	CandidatesAnchor string

	// IndirectionAnchor is the label followed on precinct landing pages.
	IndirectionAnchor string

	// VRN maps election year to the archive's election identifier.
	VRN map[int]int64
}

// President is the presidential election.
var President = ElectionKind{
	Name:  "president",
	Title: "Российская Федерация",
	SummaryAnchors: []string{
		"Сводная таблица результатов выборов",
		"Сводная таблица о результатах выборов",
	},
	CandidatesAnchor:  "Сведения о кандидатах на должность Президента Российской Федерации",
	IndirectionAnchor: IndirectionAnchor,
	VRN: map[int]int64{
		2004: 1001000882950,
		2008: 100100022176412,
		2012: 100100031793505,
		2018: 100100084849062,
	},
}

// Duma is the parliamentary (State Duma) election. The 2003 cycle uses a
// different page format and is not listed.
var Duma = ElectionKind{
	Name:  "duma",
	Title: "Российская Федерация",
	SummaryAnchors: []string{
		"Сводная таблица итогов голосования по федеральному округу",
		"Сводная таблица результатов выборов",
		"Сводная таблица результатов выборов по федеральному избирательному округу",
	},
	IndirectionAnchor: IndirectionAnchor,
	VRN: map[int]int64{
		2007: 100100021960181,
		2011: 100100028713299,
		2016: 100100067795849,
	},
}

// ElectionKinds lists the supported kinds by name.
var ElectionKinds = map[string]ElectionKind{
	President.Name: President,
	Duma.Name:      Duma,
}

// LookupElectionKind returns the kind with the given name.
// Returns ENOTFOUND if the name is unknown.
func LookupElectionKind(name string) (ElectionKind, error) {
	k, ok := ElectionKinds[name]
	if !ok {
		return ElectionKind{}, Errorf(ENOTFOUND, "unknown election kind %q", name)
	}
	return k, nil
}

// Years returns the supported election years in ascending order.
func (k ElectionKind) Years() []int {
	return slices.Sorted(maps.Keys(k.VRN))
}

// ElectionURL returns the archive's landing page for the election held in year.
// Returns ENOTFOUND if the year is not supported for this kind.
func (k ElectionKind) ElectionURL(baseURL string, year int) (string, error) {
	vrn, ok := k.VRN[year]
	if !ok {
		return "", Errorf(ENOTFOUND, "no %s election in %d (have %v)", k.Name, year, k.Years())
	}
	return fmt.Sprintf("%s/region/izbirkom?action=show&global=1&vrn=%d&region=0&prver=0&pronetvd=null", baseURL, vrn), nil
}
