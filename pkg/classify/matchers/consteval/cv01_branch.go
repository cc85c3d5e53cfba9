package consteval

import (
	"github.com/leapstack-labs/cxxstd/pkg/catalog"
	"github.com/leapstack-labs/cxxstd/pkg/classify"
	"github.com/leapstack-labs/cxxstd/pkg/scanner"
)

func init() {
	classify.Register(ConstevalBranch)
}

// ConstevalBranch detects `if consteval` and `if ! consteval`.
var ConstevalBranch = classify.MatcherDef{
	FeatureID:      catalog.ConstevalBranch,
	Kinds:          []scanner.Kind{scanner.KindBranchStmt},
	Match:          checkConstevalBranch,
	Disambiguation: "`if constexpr (...)` and `if (std::is_constant_evaluated())` are ordinary conditionals; only the bare consteval keyword after `if` marks the branch.",
}

func checkConstevalBranch(frag *scanner.Fragment) classify.Outcome {
	// The scanner only emits branch-stmt fragments for the consteval form,
	// so the fragment itself is the evidence.
	return classify.Matched(classify.Match{
		Pos:  frag.Pos(),
		Text: frag.Text,
	})
}
