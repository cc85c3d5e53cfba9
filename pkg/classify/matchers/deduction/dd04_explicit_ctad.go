package deduction

import (
	"github.com/leapstack-labs/cxxstd/pkg/catalog"
	"github.com/leapstack-labs/cxxstd/pkg/classify"
	"github.com/leapstack-labs/cxxstd/pkg/scanner"
	"github.com/leapstack-labs/cxxstd/pkg/token"
)

func init() {
	classify.Register(ExplicitCTAD)
}

// ExplicitCTAD detects copy-initialized declarations whose type is deduced
// through a class template constructor marked explicit.
var ExplicitCTAD = classify.MatcherDef{
	FeatureID:      catalog.ExplicitCTAD,
	Kinds:          []scanner.Kind{scanner.KindDeclaration},
	Match:          checkExplicitCTAD,
	Disambiguation: "Requires the exact copy-initialization shape `Tpl name = expr;` with no template argument list, where the file itself declares Tpl as a class template with an explicit constructor. Templates declared elsewhere cannot be judged and do not match.",
}

func checkExplicitCTAD(frag *scanner.Fragment) classify.Outcome {
	toks := frag.Tokens
	if len(toks) < 3 ||
		toks[0].Type != token.IDENT ||
		toks[1].Type != token.IDENT ||
		toks[2].Type != token.ASSIGN {
		return classify.None()
	}
	if !frag.Index.HasExplicitCtorTemplate(toks[0].Literal) {
		return classify.None()
	}
	return classify.Matched(classify.Match{
		Pos:  frag.Pos(),
		Text: frag.Text,
	})
}
