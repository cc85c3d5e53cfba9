package operators

import (
	"github.com/leapstack-labs/cxxstd/pkg/catalog"
	"github.com/leapstack-labs/cxxstd/pkg/classify"
	"github.com/leapstack-labs/cxxstd/pkg/scanner"
)

func init() {
	classify.Register(MultiSubscriptOperator)
}

// MultiSubscriptOperator detects operator[] declared with more than one
// parameter.
var MultiSubscriptOperator = classify.MatcherDef{
	FeatureID:      catalog.MultiSubscriptOperator,
	Kinds:          []scanner.Kind{scanner.KindOperatorDef},
	Match:          checkMultiSubscriptOperator,
	Disambiguation: "Arity counts only top-level commas in the parameter list; commas nested in parentheses, braces or template argument lists do not split parameters. Zero- and one-parameter subscripts are valid pre-23 and never match.",
}

func checkMultiSubscriptOperator(frag *scanner.Fragment) classify.Outcome {
	if frag.OpSymbol != "[]" || frag.ParamCount <= 1 {
		return classify.None()
	}
	return classify.Matched(classify.Match{
		Pos:  frag.Pos(),
		Text: frag.Text,
	})
}
