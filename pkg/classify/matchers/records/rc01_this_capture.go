package records

import (
	"github.com/leapstack-labs/cxxstd/pkg/catalog"
	"github.com/leapstack-labs/cxxstd/pkg/classify"
	"github.com/leapstack-labs/cxxstd/pkg/scanner"
	"github.com/leapstack-labs/cxxstd/pkg/token"
)

func init() {
	classify.Register(ThisValueCapture)
}

// ThisValueCapture detects closures capturing the enclosing instance by
// value.
var ThisValueCapture = classify.MatcherDef{
	FeatureID:      catalog.ThisValueCapture,
	Kinds:          []scanner.Kind{scanner.KindCaptureList},
	Match:          checkThisValueCapture,
	Disambiguation: "Only the `*this` capture form copies the enclosing instance; a bare `this` capture (including `[=, this]`) is a pointer capture and never matches.",
}

func checkThisValueCapture(frag *scanner.Fragment) classify.Outcome {
	toks := frag.Tokens
	for i := 0; i+1 < len(toks); i++ {
		if toks[i].Type == token.STAR && toks[i+1].Type == token.KwThis {
			return classify.Matched(classify.Match{
				Pos:  toks[i].Pos,
				Text: frag.Text,
			})
		}
	}
	return classify.None()
}
