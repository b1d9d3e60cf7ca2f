package vybory_test

import (
	"testing"

	"github.com/alateas/vybory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// row builds a single-area row: number, caption, value.
func row(number, caption, value string) vybory.Row {
	return vybory.Row{
		Text: number + caption + value,
		Cells: []vybory.Cell{
			{Text: number},
			{Text: caption},
			{Text: value},
		},
	}
}

func candidateRow(number, label, votes, percent string) vybory.Row {
	return vybory.Row{
		Text: number + label + votes + percent,
		Cells: []vybory.Cell{
			{Text: number},
			{Text: label},
			{Text: votes + percent, Bold: votes, AfterBreak: percent},
		},
	}
}

func emptyRow() vybory.Row {
	return vybory.Row{Text: " \n ", Cells: []vybory.Cell{{Text: " "}, {Text: ""}, {Text: ""}}}
}

func TestScanLayout(t *testing.T) {
	t.Parallel()

	t.Run("records matched scalar fields by row index", func(t *testing.T) {
		t.Parallel()

		layout := vybory.ScanLayout([]vybory.Row{
			row("1", "Число избирателей, внесенных в список", "1000"),
			row("2", "Какая-то другая строка", "5"),
			row("3", " Число действительных бюллетеней ", "900"),
		})

		assert.Equal(t, map[vybory.FieldID]int{
			vybory.FieldListedVoters: 0,
			vybory.FieldValidBallots: 2,
		}, layout.Fields)
		assert.Empty(t, layout.Candidates)
		assert.Equal(t, 3, layout.RowCount)
	})

	t.Run("records every row after an empty row as a candidate", func(t *testing.T) {
		t.Parallel()

		layout := vybory.ScanLayout([]vybory.Row{
			row("1", "Число действительных бюллетеней", "100"),
			emptyRow(),
			candidateRow("2", "Иванов", "60", "60%"),
			candidateRow("3", "Петров", "40", "40%"),
		})

		assert.Equal(t, []vybory.CandidateRow{
			{Row: 2, Label: "Иванов"},
			{Row: 3, Label: "Петров"},
		}, layout.Candidates)
		assert.Equal(t, 4, layout.RowCount)
	})

	t.Run("opens the candidate block at the sentinel caption row", func(t *testing.T) {
		t.Parallel()

		sentinel := vybory.Row{
			Text:  "\n" + vybory.CandidateSentinel + "\n",
			Cells: []vybory.Cell{{Text: vybory.CandidateSentinel}},
		}
		layout := vybory.ScanLayout([]vybory.Row{
			row("1", "Число недействительных бюллетеней", "3"),
			sentinel,
			candidateRow("10", "Единая партия", "70", "70.00%"),
		})

		assert.Equal(t, []vybory.CandidateRow{{Row: 2, Label: "Единая партия"}}, layout.Candidates)
		assert.Equal(t, 0, layout.Fields[vybory.FieldInvalidBallots])
	})

	t.Run("does not record the sentinel row itself", func(t *testing.T) {
		t.Parallel()

		layout := vybory.ScanLayout([]vybory.Row{
			emptyRow(),
		})

		assert.Empty(t, layout.Candidates)
		assert.Equal(t, 1, layout.RowCount)
	})

	t.Run("records candidate rows unconditionally once the block is open", func(t *testing.T) {
		t.Parallel()

		layout := vybory.ScanLayout([]vybory.Row{
			emptyRow(),
			candidateRow("1", "Число действительных бюллетеней", "1", "1%"),
		})

		require.Len(t, layout.Candidates, 1)
		assert.Equal(t, "Число действительных бюллетеней", layout.Candidates[0].Label)
	})

	t.Run("skips rows without a caption cell", func(t *testing.T) {
		t.Parallel()

		layout := vybory.ScanLayout([]vybory.Row{
			{Text: "", Cells: nil},
			{Text: "x", Cells: []vybory.Cell{{Text: "x"}}},
			candidateRow("1", "Иванов", "1", "1%"),
		})

		assert.Equal(t, []vybory.CandidateRow{{Row: 2, Label: "Иванов"}}, layout.Candidates)
		assert.Equal(t, 3, layout.RowCount)
	})

	t.Run("handles an empty table", func(t *testing.T) {
		t.Parallel()

		layout := vybory.ScanLayout(nil)

		assert.Empty(t, layout.Fields)
		assert.Empty(t, layout.Candidates)
		assert.Zero(t, layout.RowCount)
	})
}

func TestScanLayoutWith(t *testing.T) {
	t.Parallel()

	captions, err := vybory.NewCaptionTable(map[vybory.FieldID][]string{
		vybory.FieldValidBallots: {"Valid ballots"},
	})
	require.NoError(t, err)

	layout := vybory.ScanLayoutWith(captions, []vybory.Row{
		row("1", "Число действительных бюллетеней", "1"),
		row("2", "Valid ballots", "2"),
	})

	assert.Equal(t, map[vybory.FieldID]int{vybory.FieldValidBallots: 1}, layout.Fields)
}

func TestFieldLayout_Require(t *testing.T) {
	t.Parallel()

	layout := &vybory.FieldLayout{Fields: map[vybory.FieldID]int{vybory.FieldValidBallots: 3}}

	assert.NoError(t, layout.Require(vybory.FieldValidBallots))
	assert.NoError(t, layout.Require())

	err := layout.Require(vybory.FieldValidBallots, vybory.FieldListedVoters)
	require.Error(t, err)
	assert.Equal(t, vybory.ENOTFOUND, vybory.ErrorCode(err))
	assert.Contains(t, vybory.ErrorMessage(err), "listed_voters")
}
