// Package classify runs feature matchers over scanned fragments and reduces
// their matches to the minimum language standard an input requires.
//
// Matchers are data-driven definitions registered from init() in the
// matchers subpackages; the classifier itself never hardcodes a feature.
package classify

import (
	"github.com/leapstack-labs/cxxstd/pkg/scanner"
	"github.com/leapstack-labs/cxxstd/pkg/token"
)

// Match is one recognized occurrence of a cataloged feature.
type Match struct {
	FeatureID   string
	MinStandard int
	Pos         token.Position
	Text        string
}

// Note is a low-confidence observation: a construct that resembles a
// feature site but cannot be classified without semantic analysis.
// Notes are reported, never silently dropped.
type Note struct {
	FeatureID string
	Pos       token.Position
	Message   string
}

// OutcomeKind tags the result of matching one fragment.
type OutcomeKind int

// Outcome kinds.
const (
	// OutcomeNone means the fragment does not exercise the feature.
	OutcomeNone OutcomeKind = iota
	// OutcomeMatched means the fragment exercises the feature.
	OutcomeMatched
	// OutcomeAmbiguous means the surface grammar is genuinely ambiguous;
	// the matcher declines to classify rather than guess.
	OutcomeAmbiguous
)

// Outcome is the tagged result of matching one fragment.
type Outcome struct {
	Kind    OutcomeKind
	Matches []Match
	Note    string
}

// None reports that the fragment does not exercise the feature.
func None() Outcome {
	return Outcome{Kind: OutcomeNone}
}

// Matched reports one or more matches.
func Matched(matches ...Match) Outcome {
	return Outcome{Kind: OutcomeMatched, Matches: matches}
}

// Ambiguous declines to classify, with a human-readable reason.
func Ambiguous(note string) Outcome {
	return Outcome{Kind: OutcomeAmbiguous, Note: note}
}

// MatchFunc inspects a single fragment. It must be side-effect-free:
// fragments are shared between concurrently running matchers.
type MatchFunc func(frag *scanner.Fragment) Outcome

// MatcherDef is a data-driven matcher definition. Matchers are stateless;
// all context arrives through the fragment (including its file index).
type MatcherDef struct {
	FeatureID      string         // Catalog id this matcher recognizes
	Kinds          []scanner.Kind // Fragment kinds the matcher consumes
	Match          MatchFunc      // The recognizer
	Disambiguation string         // Documented rule for overlapping grammar forms
}

// consumes reports whether the matcher wants fragments of kind k.
func (d MatcherDef) consumes(k scanner.Kind) bool {
	for _, want := range d.Kinds {
		if want == k {
			return true
		}
	}
	return false
}
