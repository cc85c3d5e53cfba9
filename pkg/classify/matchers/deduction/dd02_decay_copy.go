package deduction

import (
	"github.com/leapstack-labs/cxxstd/pkg/catalog"
	"github.com/leapstack-labs/cxxstd/pkg/classify"
	"github.com/leapstack-labs/cxxstd/pkg/scanner"
	"github.com/leapstack-labs/cxxstd/pkg/token"
)

func init() {
	classify.Register(DecayCopy)
}

// DecayCopy detects auto(expr) and auto{expr} in expression position.
var DecayCopy = classify.MatcherDef{
	FeatureID:      catalog.DecayCopy,
	Kinds:          []scanner.Kind{scanner.KindCallExpr},
	Match:          checkDecayCopy,
	Disambiguation: "Only `auto` applied like a function in expression position matches; `auto x = ...` declarations and `auto` parameter placeholders are other features. Statement-leading `auto (x)` could declare a variable and is never emitted as a call site.",
}

func checkDecayCopy(frag *scanner.Fragment) classify.Outcome {
	if len(frag.Tokens) == 0 || frag.Tokens[0].Type != token.KwAuto {
		return classify.None()
	}
	return classify.Matched(classify.Match{
		Pos:  frag.Pos(),
		Text: frag.Text,
	})
}
