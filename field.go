package vybory

import "strings"

// FieldID identifies a canonical scalar statistic of a results table.
type FieldID string

// FieldID constants for the statistics published on results pages.
const (
	FieldListedVoters             FieldID = "listed_voters"
	FieldBallotsReceived          FieldID = "got_ballots_by_uik"
	FieldBallotsIssuedEarly       FieldID = "issued_ballots_early_voters"
	FieldBallotsIssuedInside      FieldID = "issued_ballots_elections_day_inside"
	FieldBallotsIssuedOutside     FieldID = "issued_ballots_elections_day_outside"
	FieldBallotsCanceled          FieldID = "canceled_ballots"
	FieldBallotsInPortableBoxes   FieldID = "ballots_in_portable_boxes"
	FieldBallotsInStationaryBoxes FieldID = "ballots_in_stationary_boxes"
	FieldValidBallots             FieldID = "valid_ballots"
	FieldInvalidBallots           FieldID = "invalid_ballots"
)

// Fields lists every canonical field in the order they appear on results pages.
var Fields = []FieldID{
	FieldListedVoters,
	FieldBallotsReceived,
	FieldBallotsIssuedEarly,
	FieldBallotsIssuedInside,
	FieldBallotsIssuedOutside,
	FieldBallotsCanceled,
	FieldBallotsInPortableBoxes,
	FieldBallotsInStationaryBoxes,
	FieldValidBallots,
	FieldInvalidBallots,
}

// CaptionVariants maps each field to every caption wording observed across
// election cycles. New cycles add strings here, not in extraction code.
var CaptionVariants = map[FieldID][]string{
	FieldListedVoters: {
		"Число избирателей, включенных в список избирателей",
		"Число избирателей, включенных в списки избирателей",
		"Число избирателей, внесенных в список",
		"Число избирателей, внесенных в списки",
		"Число избирателей, внесенных в список избирателей на момент окончания голосования",
		"Число избирателей, внесенных в списки избирателей",
		"Число избирателей, внесенных в список избирателей",
	},
	FieldBallotsReceived: {
		"Число избирательных бюллетеней, полученных участковой избирательной комиссией",
		"Число избирательных бюллетеней, полученных участковыми избирательными комиссиями",
		"Число полученных избирательных бюллетеней",
		"Число бюллетеней, полученных участковыми комиссиями",
	},
	FieldBallotsIssuedEarly: {
		"Число избирательных бюллетеней, выданных избирателям, проголосовавшим досрочно",
		"Число избирательных бюллетеней, выданных досрочно",
		"Число избирательных бюллетеней, выданных  досрочно",
		"Число бюллетеней, выданных избирателям, проголосовавшим досрочно",
	},
	FieldBallotsIssuedInside: {
		"Число избирательных бюллетеней, выданных в помещении для голосования в день голосования",
		"Число избирательных бюллетеней, выданных в помещениях для голосования в день голосования",
		"Число избирательных бюллетеней, выданных в день голосования",
		"Число бюллетеней, выданных избирателям на избирательном участке",
		"Число избирательных бюллетеней, выданных избирателям в помещении для голосования",
		"Число избирательных бюллетеней, выданных избирателям в помещениях для голосования",
	},
	FieldBallotsIssuedOutside: {
		"Число избирательных бюллетеней, выданных вне помещения для голосования в день голосования",
		"Число избирательных бюллетеней, выданных вне помещений для голосования в день голосования",
		"Число избирательных бюллетеней, выданных вне помещения",
		"Число бюллетеней, выданных избирателям, проголосовавшим вне помещения для голосования",
		"Число избирательных бюллетеней, выданных избирателям вне помещения для голосования",
		"Число избирательных бюллетеней, выданных избирателям вне помещений для голосования",
	},
	FieldBallotsCanceled: {
		"Число погашенных избирательных бюллетеней",
		"Число погашенных бюллетеней",
	},
	FieldBallotsInPortableBoxes: {
		"Число избирательных бюллетеней в переносных ящиках для голосования",
		"Число избирательных бюллетеней в переносных ящиках",
		"Число бюллетеней в переносных ящиках для голосования",
		"Число избирательных бюллетеней, содержащихся в переносных ящиках для голосования",
	},
	FieldBallotsInStationaryBoxes: {
		"Число бюллетеней в стационарных ящиках для голосования",
		"Число избирательных бюллетеней, содержащихся в стационарных ящиках для голосования",
		"Число избирательных бюллетеней в стационарных ящиках для голосования",
	},
	FieldValidBallots: {
		"Число действительных избирательных бюллетеней",
		"Число действительных бюллетеней",
	},
	FieldInvalidBallots: {
		"Число недействительных избирательных бюллетеней",
		"Число недействительных бюллетеней",
	},
}

// CaptionTable resolves row captions to canonical fields by exact,
// case-sensitive lookup. It is read-only after construction and safe for
// concurrent use.
type CaptionTable struct {
	index map[string]FieldID
}

// NewCaptionTable builds a CaptionTable from a field-to-variants mapping.
// Returns EINVALID if the same caption is registered for two fields.
func NewCaptionTable(variants map[FieldID][]string) (*CaptionTable, error) {
	index := make(map[string]FieldID)
	for field, captions := range variants {
		for _, caption := range captions {
			caption = strings.TrimSpace(caption)
			if prev, ok := index[caption]; ok && prev != field {
				return nil, Errorf(EINVALID, "caption %q registered for both %s and %s", caption, prev, field)
			}
			index[caption] = field
		}
	}
	return &CaptionTable{index: index}, nil
}

// Match returns the field whose known wording equals caption after
// surrounding whitespace is stripped. Unmatched captions are expected for
// most rows and are reported with ok set to false.
func (t *CaptionTable) Match(caption string) (field FieldID, ok bool) {
	field, ok = t.index[strings.TrimSpace(caption)]
	return field, ok
}

// DefaultCaptions is the CaptionTable built from CaptionVariants.
var DefaultCaptions = mustCaptionTable(CaptionVariants)

func mustCaptionTable(variants map[FieldID][]string) *CaptionTable {
	t, err := NewCaptionTable(variants)
	if err != nil {
		panic(err)
	}
	return t
}

// MatchCaption matches caption against DefaultCaptions.
func MatchCaption(caption string) (FieldID, bool) {
	return DefaultCaptions.Match(caption)
}
