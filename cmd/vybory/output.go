package main

import (
	"encoding/json"
	"io"

	"github.com/alateas/vybory"
)

// Record types written to stdout.
const (
	RecordSummary   = "summary"
	RecordArea      = "area"
	RecordCandidate = "candidate"
	RecordError     = "error"
)

// Record is one line of output.
type Record struct {
	Run       string             `json:"run"`
	Type      string             `json:"type"`
	Depth     *int               `json:"depth,omitempty"`
	Path      []string           `json:"path,omitempty"`
	URL       string             `json:"url,omitempty"`
	Area      *vybory.AreaResult `json:"area,omitempty"`
	Candidate string             `json:"candidate,omitempty"`
	Code      string             `json:"code,omitempty"`
	Error     string             `json:"error,omitempty"`
}

// RecordWriter writes records as JSON lines stamped with the run ID.
type RecordWriter struct {
	enc   *json.Encoder
	runID string
}

// NewRecordWriter creates a RecordWriter writing to w.
func NewRecordWriter(w io.Writer, runID string) *RecordWriter {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &RecordWriter{enc: enc, runID: runID}
}

func (w *RecordWriter) write(r Record) error {
	r.Run = w.runID
	return w.enc.Encode(r)
}

// Summary writes the country-level totals.
func (w *RecordWriter) Summary(area vybory.AreaResult) error {
	return w.write(Record{Type: RecordSummary, Area: &area})
}

// Area writes an area reached at depth along path.
func (w *RecordWriter) Area(depth int, path []string, area vybory.AreaResult) error {
	if area.Err != nil {
		return w.Error(depth, path, area.ChildURL, area.Err)
	}
	return w.write(Record{Type: RecordArea, Depth: &depth, Path: path, Area: &area})
}

// Candidate writes one registered candidate.
func (w *RecordWriter) Candidate(name string) error {
	return w.write(Record{Type: RecordCandidate, Candidate: name})
}

// Error writes a failure of the area at path or of the page at url.
func (w *RecordWriter) Error(depth int, path []string, url string, err error) error {
	return w.write(Record{
		Type:  RecordError,
		Depth: &depth,
		Path:  path,
		URL:   url,
		Code:  vybory.ErrorCode(err),
		Error: err.Error(),
	})
}
