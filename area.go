package vybory

// CandidateResult is one candidate's tally within an area.
type CandidateResult struct {
	Votes   int     `json:"votes"`
	Percent float64 `json:"percent"`
}

// AreaResult is one administrative unit's tally as extracted from a page.
// Values are extracted as published; candidate votes are not reconciled
// against the valid-ballot count.
type AreaResult struct {
	Name string `json:"name"`

	// ChildURL is the page holding this area's breakdown. Empty for an area
	// without a link; equal to the page URL for a self-referential leaf.
	ChildURL string `json:"childUrl,omitempty"`

	Scalars    map[FieldID]int            `json:"scalars"`
	Candidates map[string]CandidateResult `json:"candidates"`

	// Err is set when one of this area's cells failed to parse. The values
	// extracted before the failure are kept; the record is incomplete.
	Err error `json:"-"`
}

// IsLeaf reports whether the area has no breakdown page of its own.
// pageURL is the URL of the page the area was extracted from.
func (a *AreaResult) IsLeaf(pageURL string) bool {
	return a.ChildURL == "" || a.ChildURL == pageURL
}

func newAreaResult(name, childURL string) AreaResult {
	return AreaResult{
		Name:       name,
		ChildURL:   childURL,
		Scalars:    make(map[FieldID]int),
		Candidates: make(map[string]CandidateResult),
	}
}
