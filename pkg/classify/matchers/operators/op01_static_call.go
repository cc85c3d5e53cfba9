package operators

import (
	"github.com/leapstack-labs/cxxstd/pkg/catalog"
	"github.com/leapstack-labs/cxxstd/pkg/classify"
	"github.com/leapstack-labs/cxxstd/pkg/scanner"
)

func init() {
	classify.Register(StaticCallOperator)
}

// StaticCallOperator detects a call operator declared static.
var StaticCallOperator = classify.MatcherDef{
	FeatureID:      catalog.StaticCallOperator,
	Kinds:          []scanner.Kind{scanner.KindOperatorDef},
	Match:          checkStaticCallOperator,
	Disambiguation: "`static` must appear among the decl-specifiers of the operator()'s own declaration; a static data member elsewhere in the class does not qualify, and a non-member operator cannot be static.",
}

func checkStaticCallOperator(frag *scanner.Fragment) classify.Outcome {
	if frag.OpSymbol != "()" || !frag.HasStatic || !frag.InClass {
		return classify.None()
	}
	return classify.Matched(classify.Match{
		Pos:  frag.Pos(),
		Text: frag.Text,
	})
}
