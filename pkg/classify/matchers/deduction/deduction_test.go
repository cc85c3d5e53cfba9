package deduction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/cxxstd/pkg/classify"
	"github.com/leapstack-labs/cxxstd/pkg/scanner"
	"github.com/leapstack-labs/cxxstd/pkg/token"
)

func fragmentsOf(t *testing.T, src string, kind scanner.Kind) []*scanner.Fragment {
	t.Helper()
	res := scanner.Scan(src)
	var out []*scanner.Fragment
	for i := range res.Fragments {
		if res.Fragments[i].Kind == kind {
			out = append(out, &res.Fragments[i])
		}
	}
	return out
}

func explicitFragment(t *testing.T, src string) *scanner.Fragment {
	t.Helper()
	for _, frag := range fragmentsOf(t, src, scanner.KindDeclaration) {
		if frag.Tokens[0].Type == token.KwExplicit {
			return frag
		}
	}
	t.Fatal("no explicit declaration fragment")
	return nil
}

func TestConditionalExplicit(t *testing.T) {
	frag := explicitFragment(t, `struct W { explicit(true) W(int); };`)
	assert.Equal(t, classify.OutcomeMatched, ConditionalExplicit.Match(frag).Kind)

	frag = explicitFragment(t, `struct W { explicit(sizeof(int) > 2) W(int); };`)
	assert.Equal(t, classify.OutcomeMatched, ConditionalExplicit.Match(frag).Kind)

	frag = explicitFragment(t, `struct W { explicit W(int); };`)
	assert.Equal(t, classify.OutcomeNone, ConditionalExplicit.Match(frag).Kind)
}

func TestDecayCopy(t *testing.T) {
	frags := fragmentsOf(t, `void g() { int v = 0; int w = auto(v); }`, scanner.KindCallExpr)
	require.Len(t, frags, 1)
	out := DecayCopy.Match(frags[0])
	assert.Equal(t, classify.OutcomeMatched, out.Kind)
	require.Len(t, out.Matches, 1)
	assert.Equal(t, "auto(v)", out.Matches[0].Text)
}

func TestAutoParameter(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		matches int
	}{
		{"single auto param", `void log(auto value);`, 1},
		{"two auto params", `void pair(auto a, auto b);`, 2},
		{"no auto", `void plain(int a, long b);`, 0},
		{"decltype auto", `void probe(decltype(auto) v);`, 0},
		{"decay copy default argument", `void fn(int x = auto(y));`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frags := fragmentsOf(t, tt.src, scanner.KindDeclaration)
			require.NotEmpty(t, frags)
			out := AutoParameter.Match(frags[0])
			if tt.matches == 0 {
				assert.Equal(t, classify.OutcomeNone, out.Kind)
				return
			}
			assert.Equal(t, classify.OutcomeMatched, out.Kind)
			assert.Len(t, out.Matches, tt.matches)
		})
	}
}

func TestExplicitCTAD(t *testing.T) {
	copyInit := func(t *testing.T, src string) *scanner.Fragment {
		t.Helper()
		for _, frag := range fragmentsOf(t, src, scanner.KindDeclaration) {
			toks := frag.Tokens
			if len(toks) >= 3 && toks[0].Type == token.IDENT &&
				toks[1].Type == token.IDENT && toks[2].Type == token.ASSIGN {
				return frag
			}
		}
		t.Fatal("no copy-initialized declaration fragment")
		return nil
	}

	frag := copyInit(t, "template <typename T> struct Box { explicit Box(T); };\nBox b = 42;")
	assert.Equal(t, classify.OutcomeMatched, ExplicitCTAD.Match(frag).Kind)

	// Non-template class with an explicit constructor: no deduction happens.
	frag = copyInit(t, "struct Plain { explicit Plain(int); };\nPlain p = 42;")
	assert.Equal(t, classify.OutcomeNone, ExplicitCTAD.Match(frag).Kind)

	// Template without an explicit constructor.
	frag = copyInit(t, "template <typename T> struct Open { Open(T); };\nOpen o = 42;")
	assert.Equal(t, classify.OutcomeNone, ExplicitCTAD.Match(frag).Kind)

	// A type this file knows nothing about cannot be judged.
	frag = copyInit(t, `Elsewhere e = 42;`)
	assert.Equal(t, classify.OutcomeNone, ExplicitCTAD.Match(frag).Kind)
}
