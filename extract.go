package vybory

import (
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
)

// singleValueColumn is the value column of a single-area table
// (number, caption, value).
const singleValueColumn = 2

// ExtractBreakdown reads one AreaResult per sibling area from a
// multi-area breakdown table.
//
// The first row holds one cell per area: its text is the area name and its
// anchor, if any, the child URL. Layout row indices are shifted by the
// difference between the table's row count and layout.RowCount, since
// breakdown tables carry header rows the scanned table does not.
//
// A cell that fails to parse marks only its own area through
// AreaResult.Err. Structural problems (no header cells, a layout row
// outside the table) fail the whole table.
func ExtractBreakdown(t *Table, layout *FieldLayout) ([]AreaResult, error) {
	if t == nil || len(t.Rows) == 0 {
		return nil, Errorf(ENOTFOUND, "breakdown table has no rows")
	}
	header := t.Rows[0].Cells
	if len(header) == 0 {
		return nil, Errorf(ENOTFOUND, "breakdown table has no area cells")
	}

	areas := make([]AreaResult, len(header))
	for i, cell := range header {
		areas[i] = newAreaResult(strings.TrimSpace(cell.Text), cell.Href)
	}

	correction := RowCorrection(t, layout)

	for _, field := range sortedFields(layout) {
		row, err := rowAt(t, layout.Fields[field]+correction)
		if err != nil {
			return nil, err
		}
		for i := range areas {
			if areas[i].Err != nil {
				continue
			}
			cell, err := cellAt(row, i)
			if err == nil {
				var v int
				if v, err = parseCount(cell.Text); err == nil {
					areas[i].Scalars[field] = v
					continue
				}
			}
			areas[i].Err = Errorf(EINVALID, "area %q: %s: %s", areas[i].Name, field, ErrorMessage(err))
		}
	}

	for _, cand := range layout.Candidates {
		row, err := rowAt(t, cand.Row+correction)
		if err != nil {
			return nil, err
		}
		for i := range areas {
			if areas[i].Err != nil {
				continue
			}
			cell, err := cellAt(row, i)
			if err == nil {
				var res CandidateResult
				if res, err = parseCandidate(cell); err == nil {
					areas[i].Candidates[cand.Label] = res
					continue
				}
			}
			areas[i].Err = Errorf(EINVALID, "area %q: candidate %q: %s", areas[i].Name, cand.Label, ErrorMessage(err))
		}
	}

	return areas, nil
}

// ExtractSingle reads a single-area table, whose rows are laid out exactly
// as the table the layout was scanned from. Values are read from column 2.
// The returned result has no name or child URL; callers set them.
func ExtractSingle(t *Table, layout *FieldLayout) (AreaResult, error) {
	area := newAreaResult("", "")
	if t == nil || len(t.Rows) == 0 {
		return area, Errorf(ENOTFOUND, "results table has no rows")
	}

	for _, field := range sortedFields(layout) {
		cell, err := singleValueCell(t, layout.Fields[field])
		if err != nil {
			return area, Errorf(EINVALID, "%s: %s", field, ErrorMessage(err))
		}
		v, err := parseCount(cell.Text)
		if err != nil {
			return area, Errorf(EINVALID, "%s: %s", field, ErrorMessage(err))
		}
		area.Scalars[field] = v
	}

	for _, cand := range layout.Candidates {
		cell, err := singleValueCell(t, cand.Row)
		if err != nil {
			return area, Errorf(EINVALID, "candidate %q: %s", cand.Label, ErrorMessage(err))
		}
		res, err := parseCandidate(cell)
		if err != nil {
			return area, Errorf(EINVALID, "candidate %q: %s", cand.Label, ErrorMessage(err))
		}
		area.Candidates[cand.Label] = res
	}

	return area, nil
}

// RowCorrection returns how many rows t has beyond the table the layout
// was scanned from. The observed value for breakdown tables is 2, but it
// is always derived from the tables themselves.
func RowCorrection(t *Table, layout *FieldLayout) int {
	return len(t.Rows) - layout.RowCount
}

// sortedFields returns the layout's fields in row order.
func sortedFields(layout *FieldLayout) []FieldID {
	return slices.SortedFunc(maps.Keys(layout.Fields), func(a, b FieldID) int {
		return layout.Fields[a] - layout.Fields[b]
	})
}

func rowAt(t *Table, index int) (Row, error) {
	if index < 0 || index >= len(t.Rows) {
		return Row{}, Errorf(EINVALID, "row %d out of range for %d-row table", index, len(t.Rows))
	}
	return t.Rows[index], nil
}

func cellAt(row Row, index int) (Cell, error) {
	if index >= len(row.Cells) {
		return Cell{}, Errorf(EINVALID, "row has %d cells, want column %d", len(row.Cells), index)
	}
	return row.Cells[index], nil
}

func singleValueCell(t *Table, index int) (Cell, error) {
	row, err := rowAt(t, index)
	if err != nil {
		return Cell{}, err
	}
	return cellAt(row, singleValueColumn)
}

func parseCount(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, Errorf(EINVALID, "%q is not a number", strings.TrimSpace(s))
	}
	return v, nil
}

// parseCandidate reads a candidate cell: a bold vote count followed by a
// line break and a percentage such as "56.78%".
func parseCandidate(cell Cell) (CandidateResult, error) {
	votes, err := parseCount(cell.Bold)
	if err != nil {
		return CandidateResult{}, Errorf(EINVALID, "votes: %s", ErrorMessage(err))
	}
	s := strings.Trim(strings.TrimSpace(cell.AfterBreak), "%")
	percent, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(percent) || math.IsInf(percent, 0) {
		return CandidateResult{}, Errorf(EINVALID, "percent: %q is not a percentage", cell.AfterBreak)
	}
	return CandidateResult{Votes: votes, Percent: percent}, nil
}
