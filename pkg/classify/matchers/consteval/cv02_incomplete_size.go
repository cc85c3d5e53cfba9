package consteval

import (
	"github.com/leapstack-labs/cxxstd/pkg/catalog"
	"github.com/leapstack-labs/cxxstd/pkg/classify"
	"github.com/leapstack-labs/cxxstd/pkg/scanner"
	"github.com/leapstack-labs/cxxstd/pkg/token"
)

func init() {
	classify.Register(IncompleteSizeQuery)
}

// IncompleteSizeQuery detects sizeof/alignof applied to an incomplete type
// inside a static assertion, which is always a constant-evaluation context.
var IncompleteSizeQuery = classify.MatcherDef{
	FeatureID:      catalog.IncompleteSizeQuery,
	Kinds:          []scanner.Kind{scanner.KindStaticAssert},
	Match:          checkIncompleteSizeQuery,
	Disambiguation: "Only `sizeof(T)`/`alignof(T)` on a bare type name count; pointer operands like sizeof(T*) are complete, and so are fundamental types. A class type the file never declares cannot be judged and yields an ambiguity note instead of a match.",
}

// fundamental types are always complete; querying their size needs no
// declaration in the file.
var fundamental = map[string]bool{
	"void": true, "bool": true, "char": true, "wchar_t": true,
	"char8_t": true, "char16_t": true, "char32_t": true,
	"short": true, "int": true, "long": true, "float": true, "double": true,
	"signed": true, "unsigned": true, "size_t": true, "ptrdiff_t": true,
}

func checkIncompleteSizeQuery(frag *scanner.Fragment) classify.Outcome {
	var matches []classify.Match
	ambiguous := ""

	toks := frag.Tokens
	for i := 0; i+3 < len(toks); i++ {
		if toks[i].Type != token.KwSizeof && toks[i].Type != token.KwAlignof {
			continue
		}
		// Exact shape: sizeof ( Ident )
		if toks[i+1].Type != token.LPAREN ||
			toks[i+2].Type != token.IDENT ||
			toks[i+3].Type != token.RPAREN {
			continue
		}
		name := toks[i+2].Literal
		switch {
		case fundamental[name]:
		case frag.Index.Incomplete(name):
			matches = append(matches, classify.Match{
				Pos:  toks[i].Pos,
				Text: toks[i].Literal + "(" + name + ")",
			})
		case !frag.Index.Known(name):
			ambiguous = "cannot determine whether type '" + name + "' is complete in this file"
		}
	}

	if len(matches) > 0 {
		return classify.Matched(matches...)
	}
	if ambiguous != "" {
		return classify.Ambiguous(ambiguous)
	}
	return classify.None()
}
