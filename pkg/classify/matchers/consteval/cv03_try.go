package consteval

import (
	"github.com/leapstack-labs/cxxstd/pkg/catalog"
	"github.com/leapstack-labs/cxxstd/pkg/classify"
	"github.com/leapstack-labs/cxxstd/pkg/scanner"
)

func init() {
	classify.Register(ConstevalTry)
}

// ConstevalTry detects try blocks inside constexpr/consteval functions.
var ConstevalTry = classify.MatcherDef{
	FeatureID:      catalog.ConstevalTry,
	Kinds:          []scanner.Kind{scanner.KindTryBlock},
	Match:          checkConstevalTry,
	Disambiguation: "A try block in an ordinary function is valid under every cataloged standard; only the constexpr/consteval enclosing context gates it.",
}

func checkConstevalTry(frag *scanner.Fragment) classify.Outcome {
	if !frag.ConstexprEnclosing {
		return classify.None()
	}
	return classify.Matched(classify.Match{
		Pos:  frag.Pos(),
		Text: frag.Text,
	})
}
