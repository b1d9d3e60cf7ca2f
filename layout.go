package vybory

import "strings"

// CandidateSentinel is the caption of the header row that introduces the
// block of per-candidate vote rows.
const CandidateSentinel = "Число голосов избирателей, поданных за каждый список"

// Cell is one table cell as read from a results page.
type Cell struct {
	// Text is the rendered text of the cell.
	Text string

	// Href is the target of the first anchor inside the cell, if any.
	Href string

	// Bold is the text of the first <b> element, used for vote counts.
	Bold string

	// AfterBreak is the text node immediately following the first <br>,
	// used for percentages such as "56.78%".
	AfterBreak string
}

// Row is one table row.
type Row struct {
	// Text is the rendered text of the whole row.
	Text  string
	Cells []Cell
}

// Caption returns the trimmed text of the caption cell (index 1).
// The first cell holds a row number and is ignored.
func (r Row) Caption() (string, bool) {
	if len(r.Cells) < 2 {
		return "", false
	}
	return strings.TrimSpace(r.Cells[1].Text), true
}

// Table is a results table in document order.
type Table struct {
	// Text is the rendered text of the whole table.
	Text string
	Rows []Row
}

// IsEmpty reports whether the table renders no visible text.
func (t *Table) IsEmpty() bool {
	return t == nil || strings.TrimSpace(t.Text) == ""
}

// CandidateRow is a row holding per-candidate vote tallies.
type CandidateRow struct {
	Row   int    `json:"row"`
	Label string `json:"label"`
}

// FieldLayout maps canonical fields and candidate labels to row positions
// for one election. It is computed once from the summary page and is
// read-only afterwards, so it may be shared across concurrent extractions.
type FieldLayout struct {
	// Fields maps each matched field to its 0-based row index.
	// Fields absent from the table are absent from the map.
	Fields map[FieldID]int `json:"fields"`

	// Candidates lists candidate rows in document order. The label is the
	// literal caption from the summary page and is not a stable identity.
	Candidates []CandidateRow `json:"candidates"`

	// RowCount is the number of rows in the scanned table.
	RowCount int `json:"rowCount"`
}

// Require returns ENOTFOUND if any of the given fields is missing.
func (l *FieldLayout) Require(fields ...FieldID) error {
	for _, f := range fields {
		if _, ok := l.Fields[f]; !ok {
			return Errorf(ENOTFOUND, "field %s not present in layout", f)
		}
	}
	return nil
}

// layoutScan is the accumulator folded over the rows of a table.
type layoutScan struct {
	layout         FieldLayout
	candidateBlock bool
}

func (s layoutScan) step(captions *CaptionTable, index int, row Row) layoutScan {
	if caption, ok := row.Caption(); ok {
		if s.candidateBlock {
			s.layout.Candidates = append(s.layout.Candidates, CandidateRow{Row: index, Label: caption})
		}
		if field, ok := captions.Match(caption); ok {
			s.layout.Fields[field] = index
		}
	}

	// The sentinel row itself is not a candidate row; everything after it is.
	if text := strings.TrimSpace(row.Text); text == "" || text == CandidateSentinel {
		s.candidateBlock = true
	}

	s.layout.RowCount = index + 1
	return s
}

// ScanLayout discovers the FieldLayout of a single-area results table
// using DefaultCaptions.
func ScanLayout(rows []Row) *FieldLayout {
	return ScanLayoutWith(DefaultCaptions, rows)
}

// ScanLayoutWith discovers the FieldLayout of a single-area results table.
//
// Rows whose caption matches a known variant are recorded as scalar fields.
// The first row whose whole text is empty or equals CandidateSentinel opens
// the candidate block, and every later row with a caption cell is recorded
// as a candidate row. Trailing non-candidate rows are not expected in this
// document family.
func ScanLayoutWith(captions *CaptionTable, rows []Row) *FieldLayout {
	s := layoutScan{layout: FieldLayout{Fields: make(map[FieldID]int)}}
	for i, row := range rows {
		s = s.step(captions, i, row)
	}
	return &s.layout
}
