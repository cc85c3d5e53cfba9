package records

import (
	"github.com/leapstack-labs/cxxstd/pkg/catalog"
	"github.com/leapstack-labs/cxxstd/pkg/classify"
	"github.com/leapstack-labs/cxxstd/pkg/scanner"
	"github.com/leapstack-labs/cxxstd/pkg/token"
)

func init() {
	classify.Register(UnionMemberDefaultInit)
}

// UnionMemberDefaultInit detects default member initializers on union
// members.
var UnionMemberDefaultInit = classify.MatcherDef{
	FeatureID:      catalog.UnionMemberDefaultInit,
	Kinds:          []scanner.Kind{scanner.KindUnionMember},
	Match:          checkUnionMemberDefaultInit,
	Disambiguation: "A member matches on a top-level '=' initializer or a brace initializer in a non-function member; static data members and member function declarations inside the union never match.",
}

func checkUnionMemberDefaultInit(frag *scanner.Fragment) classify.Outcome {
	// Static data members are not variant members; their initializers are
	// ordinary and predate unions with default member initializers.
	if frag.HasStatic {
		return classify.None()
	}
	toks := frag.Tokens

	parens, brackets, braces := 0, 0, 0
	sawParen := false
	for i, t := range toks {
		switch t.Type {
		case token.LPAREN:
			parens++
			sawParen = true
		case token.RPAREN:
			parens--
		case token.LBRACKET:
			brackets++
		case token.RBRACKET:
			brackets--
		case token.LBRACE:
			// Brace initializer: int a{42};
			if parens == 0 && brackets == 0 && braces == 0 && !sawParen && i > 0 {
				return matched(frag)
			}
			braces++
		case token.RBRACE:
			braces--
		case token.ASSIGN:
			if parens == 0 && brackets == 0 && braces == 0 {
				return matched(frag)
			}
		}
	}
	return classify.None()
}

func matched(frag *scanner.Fragment) classify.Outcome {
	return classify.Matched(classify.Match{
		Pos:  frag.Pos(),
		Text: frag.Text,
	})
}
