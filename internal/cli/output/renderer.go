// Package output renders classification results for humans and machines.
//
// The machine formats (json, yaml) carry stable field names; evolution is
// append-only so downstream consumers never break on upgrades.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/cxxstd/pkg/classify"
)

// Mode selects the output format.
type Mode string

// Output modes.
const (
	ModeAuto Mode = "auto"
	ModeText Mode = "text"
	ModeJSON Mode = "json"
	ModeYAML Mode = "yaml"
)

// Renderer writes classification reports.
type Renderer struct {
	out  io.Writer
	errW io.Writer
	mode Mode
}

// NewRenderer creates a renderer. ModeAuto resolves to text on a terminal
// and json otherwise.
func NewRenderer(out, errW io.Writer, mode Mode) *Renderer {
	if mode == "" || mode == ModeAuto {
		mode = ModeJSON
		if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			mode = ModeText
		}
	}
	return &Renderer{out: out, errW: errW, mode: mode}
}

// Mode returns the resolved output mode.
func (r *Renderer) Mode() Mode {
	return r.mode
}

// Record is one machine-format finding.
type Record struct {
	File        string `json:"file" yaml:"file"`
	FeatureID   string `json:"featureId" yaml:"featureId"`
	MinStandard int    `json:"minStandard" yaml:"minStandard"`
	Line        int    `json:"line" yaml:"line"`
	Column      int    `json:"column" yaml:"column"`
	MatchedText string `json:"matchedText" yaml:"matchedText"`
}

// NoteRecord is one machine-format low-confidence note.
type NoteRecord struct {
	File      string `json:"file" yaml:"file"`
	FeatureID string `json:"featureId" yaml:"featureId"`
	Line      int    `json:"line" yaml:"line"`
	Column    int    `json:"column" yaml:"column"`
	Message   string `json:"message" yaml:"message"`
}

// FailureRecord is one unreadable input.
type FailureRecord struct {
	File  string `json:"file" yaml:"file"`
	Error string `json:"error" yaml:"error"`
}

// Summary carries the batch verdict.
type Summary struct {
	RequiredStandard int  `json:"requiredStandard" yaml:"requiredStandard"`
	Floor            int  `json:"floor" yaml:"floor"`
	Violation        bool `json:"violation" yaml:"violation"`
}

// Report is the machine-format document.
type Report struct {
	RunID    string          `json:"runId,omitempty" yaml:"runId,omitempty"`
	Records  []Record        `json:"records" yaml:"records"`
	Notes    []NoteRecord    `json:"notes,omitempty" yaml:"notes,omitempty"`
	Failures []FailureRecord `json:"failures,omitempty" yaml:"failures,omitempty"`
	Summary  Summary         `json:"summary" yaml:"summary"`
}

// buildReport flattens a batch into the machine document.
func buildReport(batch *classify.BatchResult, floor int) *Report {
	rep := &Report{
		RunID:   batch.RunID,
		Records: []Record{},
		Summary: Summary{
			RequiredStandard: batch.RequiredStandard,
			Floor:            floor,
			Violation:        batch.Violates(floor),
		},
	}
	for _, fr := range batch.Files {
		for _, m := range fr.Findings {
			rep.Records = append(rep.Records, Record{
				File:        fr.File,
				FeatureID:   m.FeatureID,
				MinStandard: m.MinStandard,
				Line:        m.Pos.Line,
				Column:      m.Pos.Column,
				MatchedText: m.Text,
			})
		}
		for _, n := range fr.Notes {
			rep.Notes = append(rep.Notes, NoteRecord{
				File:      fr.File,
				FeatureID: n.FeatureID,
				Line:      n.Pos.Line,
				Column:    n.Pos.Column,
				Message:   n.Message,
			})
		}
	}
	for _, f := range batch.Failures {
		rep.Failures = append(rep.Failures, FailureRecord{
			File:  f.File,
			Error: f.Err.Error(),
		})
	}
	return rep
}

// RenderBatch writes the batch result in the renderer's mode.
func (r *Renderer) RenderBatch(batch *classify.BatchResult, floor int) error {
	switch r.mode {
	case ModeJSON:
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return enc.Encode(buildReport(batch, floor))
	case ModeYAML:
		enc := yaml.NewEncoder(r.out)
		defer func() { _ = enc.Close() }()
		return enc.Encode(buildReport(batch, floor))
	default:
		return r.renderText(batch, floor)
	}
}

// RenderError writes a non-fatal error message to the error stream.
func (r *Renderer) RenderError(format string, args ...any) {
	fmt.Fprintf(r.errW, format+"\n", args...)
}
