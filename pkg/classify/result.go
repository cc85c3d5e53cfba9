package classify

import (
	"sort"

	"github.com/leapstack-labs/cxxstd/pkg/scanner"
)

// FileResult is the classification of a single input. It is immutable once
// returned by the classifier.
type FileResult struct {
	File             string
	RequiredStandard int
	Findings         []Match        // grouped by feature id, position-ascending within a group
	ByFeature        map[string]int // occurrences per feature id
	Notes            []Note         // ambiguous constructs, never dropped
	Issues           []scanner.Issue
}

// HasFindings reports whether any cataloged feature matched.
func (r *FileResult) HasFindings() bool {
	return len(r.Findings) > 0
}

// Violates reports whether the file needs a newer standard than floor.
func (r *FileResult) Violates(floor int) bool {
	return r.RequiredStandard > floor
}

// FileFailure records an input that could not be read. Failures are
// isolated: they never abort the rest of the batch.
type FileFailure struct {
	File string
	Err  error
}

// BatchResult aggregates a classification run over several inputs.
// Files appear in input order regardless of completion order.
type BatchResult struct {
	RunID            string
	RequiredStandard int // max over all successfully classified files
	Files            []*FileResult
	Failures         []FileFailure
}

// Violates reports whether any file needs a newer standard than floor.
func (b *BatchResult) Violates(floor int) bool {
	return b.RequiredStandard > floor
}

// sortFindings orders findings by feature id group, then by source
// location ascending, with the byte offset as the stable tie-break.
func sortFindings(findings []Match) {
	sort.SliceStable(findings, func(i, j int) bool {
		if findings[i].FeatureID != findings[j].FeatureID {
			return findings[i].FeatureID < findings[j].FeatureID
		}
		return findings[i].Pos.Offset < findings[j].Pos.Offset
	})
}

// sortNotes keeps notes in source order.
func sortNotes(notes []Note) {
	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].Pos.Offset < notes[j].Pos.Offset
	})
}
