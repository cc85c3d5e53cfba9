package deduction

import (
	"github.com/leapstack-labs/cxxstd/pkg/catalog"
	"github.com/leapstack-labs/cxxstd/pkg/classify"
	"github.com/leapstack-labs/cxxstd/pkg/scanner"
	"github.com/leapstack-labs/cxxstd/pkg/token"
)

func init() {
	classify.Register(AutoParameter)
}

// AutoParameter detects a bare `auto` placeholder used as a function
// parameter type.
var AutoParameter = classify.MatcherDef{
	FeatureID:      catalog.AutoParameter,
	Kinds:          []scanner.Kind{scanner.KindDeclaration},
	Match:          checkAutoParameter,
	Disambiguation: "`auto` followed by '(' or '{' inside the list is a decay copy in a default argument, and `decltype(auto)` is a distinct placeholder; both are excluded. Lambda parameters never reach this matcher: the scanner does not emit lambda parameter lists as declarations.",
}

func checkAutoParameter(frag *scanner.Fragment) classify.Outcome {
	toks := frag.Tokens
	// Function declaration fragments have the shape IDENT ( ... ).
	if len(toks) < 3 || toks[0].Type != token.IDENT || toks[1].Type != token.LPAREN {
		return classify.None()
	}

	var matches []classify.Match
	depth := 0
	for i := 1; i < len(toks); i++ {
		switch toks[i].Type {
		case token.LPAREN:
			depth++
		case token.RPAREN:
			depth--
		case token.KwAuto:
			if depth != 1 {
				continue
			}
			// decltype(auto)
			if i >= 2 && toks[i-1].Type == token.LPAREN && toks[i-2].Type == token.KwDecltype {
				continue
			}
			// auto(expr) / auto{expr} is a decay copy, not a parameter type.
			if i+1 < len(toks) && (toks[i+1].Type == token.LPAREN || toks[i+1].Type == token.LBRACE) {
				continue
			}
			matches = append(matches, classify.Match{
				Pos:  toks[i].Pos,
				Text: frag.Text,
			})
		}
	}

	if len(matches) == 0 {
		return classify.None()
	}
	return classify.Matched(matches...)
}
