package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/cxxstd/pkg/scanner"
)

// withEmptyRegistry runs fn against a cleared registry and restores the
// previously registered matchers afterwards, so tests in other files keep
// seeing the init-registered set.
func withEmptyRegistry(t *testing.T, fn func()) {
	t.Helper()
	saved := GetAll()
	Clear()
	t.Cleanup(func() {
		Clear()
		for _, def := range saved {
			Register(def)
		}
	})
	fn()
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	withEmptyRegistry(t, func() {
		assert.Equal(t, 0, Count())

		def := MatcherDef{
			FeatureID: "TT01",
			Kinds:     []scanner.Kind{scanner.KindDeclaration},
			Match:     func(*scanner.Fragment) Outcome { return None() },
		}
		Register(def)

		assert.Equal(t, 1, Count())
		got, ok := GetByID("TT01")
		require.True(t, ok)
		assert.Equal(t, "TT01", got.FeatureID)

		_, ok = GetByID("TT99")
		assert.False(t, ok)
	})
}

func TestRegistryGetAllSortedByID(t *testing.T) {
	withEmptyRegistry(t, func() {
		none := func(*scanner.Fragment) Outcome { return None() }
		Register(MatcherDef{FeatureID: "TT03", Match: none})
		Register(MatcherDef{FeatureID: "TT01", Match: none})
		Register(MatcherDef{FeatureID: "TT02", Match: none})

		defs := GetAll()
		require.Len(t, defs, 3)
		assert.Equal(t, "TT01", defs[0].FeatureID)
		assert.Equal(t, "TT02", defs[1].FeatureID)
		assert.Equal(t, "TT03", defs[2].FeatureID)
	})
}

func TestRegistryReRegisterReplaces(t *testing.T) {
	withEmptyRegistry(t, func() {
		Register(MatcherDef{FeatureID: "TT01", Disambiguation: "first"})
		Register(MatcherDef{FeatureID: "TT01", Disambiguation: "second"})

		assert.Equal(t, 1, Count())
		got, ok := GetByID("TT01")
		require.True(t, ok)
		assert.Equal(t, "second", got.Disambiguation)
	})
}

func TestOutcomeConstructors(t *testing.T) {
	assert.Equal(t, OutcomeNone, None().Kind)

	m := Match{Text: "x"}
	out := Matched(m)
	assert.Equal(t, OutcomeMatched, out.Kind)
	require.Len(t, out.Matches, 1)
	assert.Equal(t, "x", out.Matches[0].Text)

	amb := Ambiguous("cannot tell")
	assert.Equal(t, OutcomeAmbiguous, amb.Kind)
	assert.Equal(t, "cannot tell", amb.Note)
}

func TestConfigDisable(t *testing.T) {
	cfg := NewConfig()
	assert.False(t, cfg.IsDisabled("OP01"))

	cfg.Disable("OP01")
	cfg.Disable("RC02")
	assert.True(t, cfg.IsDisabled("OP01"))
	assert.True(t, cfg.IsDisabled("RC02"))
	assert.False(t, cfg.IsDisabled("CV01"))
	assert.ElementsMatch(t, []string{"OP01", "RC02"}, cfg.DisabledIDs())
}

func TestConfigZeroValueUsable(t *testing.T) {
	var cfg Config
	cfg.Disable("OP01")
	assert.True(t, cfg.IsDisabled("OP01"))
	assert.Equal(t, 0, cfg.Floor())
	assert.False(t, cfg.FailOnUnknown())
}

func TestMatcherDefConsumes(t *testing.T) {
	def := MatcherDef{
		Kinds: []scanner.Kind{scanner.KindOperatorDef, scanner.KindCaptureList},
	}
	assert.True(t, def.consumes(scanner.KindOperatorDef))
	assert.True(t, def.consumes(scanner.KindCaptureList))
	assert.False(t, def.consumes(scanner.KindUnionMember))
}
