package consteval

import (
	"github.com/leapstack-labs/cxxstd/pkg/catalog"
	"github.com/leapstack-labs/cxxstd/pkg/classify"
	"github.com/leapstack-labs/cxxstd/pkg/scanner"
	"github.com/leapstack-labs/cxxstd/pkg/token"
)

func init() {
	classify.Register(BareStaticAssert)
}

// BareStaticAssert detects static_assert(false) without a message.
var BareStaticAssert = classify.MatcherDef{
	FeatureID:      catalog.BareStaticAssert,
	Kinds:          []scanner.Kind{scanner.KindStaticAssert},
	Match:          checkBareStaticAssert,
	Disambiguation: "Single-argument static_assert with any constant condition has been valid since C++17; only the literal `false` condition depends on the deferred-evaluation rule, so anything else never matches.",
}

func checkBareStaticAssert(frag *scanner.Fragment) classify.Outcome {
	if frag.ArgCount != 1 {
		return classify.None()
	}
	// Exact token shape: static_assert ( false )
	toks := frag.Tokens
	if len(toks) != 4 || toks[2].Type != token.KwFalse {
		return classify.None()
	}
	return classify.Matched(classify.Match{
		Pos:  frag.Pos(),
		Text: frag.Text,
	})
}
