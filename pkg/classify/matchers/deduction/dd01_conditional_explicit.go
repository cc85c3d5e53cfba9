package deduction

import (
	"github.com/leapstack-labs/cxxstd/pkg/catalog"
	"github.com/leapstack-labs/cxxstd/pkg/classify"
	"github.com/leapstack-labs/cxxstd/pkg/scanner"
	"github.com/leapstack-labs/cxxstd/pkg/token"
)

func init() {
	classify.Register(ConditionalExplicit)
}

// ConditionalExplicit detects the explicit(expr) specifier form.
var ConditionalExplicit = classify.MatcherDef{
	FeatureID:      catalog.ConditionalExplicit,
	Kinds:          []scanner.Kind{scanner.KindDeclaration},
	Match:          checkConditionalExplicit,
	Disambiguation: "After `explicit`, an opening parenthesis can only introduce the condition: a constructor name always follows directly. `explicit Wrapper(int)` is the plain pre-23 specifier and never matches.",
}

func checkConditionalExplicit(frag *scanner.Fragment) classify.Outcome {
	toks := frag.Tokens
	if len(toks) < 2 || toks[0].Type != token.KwExplicit {
		return classify.None()
	}
	if toks[1].Type != token.LPAREN {
		return classify.None()
	}
	return classify.Matched(classify.Match{
		Pos:  frag.Pos(),
		Text: frag.Text,
	})
}
