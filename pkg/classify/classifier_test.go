package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/cxxstd/pkg/catalog"
	"github.com/leapstack-labs/cxxstd/pkg/classify"
	_ "github.com/leapstack-labs/cxxstd/pkg/classify/matchers"
)

func newClassifier(t *testing.T, cfg *classify.Config) *classify.Classifier {
	t.Helper()
	c, err := classify.NewClassifier(catalog.Default(), cfg)
	require.NoError(t, err)
	return c
}

func TestClassifyStaticCallOperator(t *testing.T) {
	c := newClassifier(t, nil)
	res := c.ClassifyText("a.cpp", `struct S { static void operator()() {} };`)

	require.Len(t, res.Findings, 1)
	assert.Equal(t, catalog.StaticCallOperator, res.Findings[0].FeatureID)
	assert.Equal(t, 23, res.Findings[0].MinStandard)
	assert.Equal(t, 23, res.RequiredStandard)
}

func TestClassifyMultiSubscriptOperator(t *testing.T) {
	c := newClassifier(t, nil)
	res := c.ClassifyText("b.cpp", `int operator[](int row, int col) const { return row*10+col; }`)

	require.Len(t, res.Findings, 1)
	assert.Equal(t, catalog.MultiSubscriptOperator, res.Findings[0].FeatureID)
	assert.Equal(t, 23, res.RequiredStandard)
}

func TestClassifyPlainExplicitDoesNotMatch(t *testing.T) {
	c := newClassifier(t, nil)
	res := c.ClassifyText("c.cpp", `struct Wrapper { explicit Wrapper(int){} };`)

	assert.Empty(t, res.Findings)
	assert.Equal(t, c.Floor(), res.RequiredStandard)
}

func TestClassifyUnionDefaultInit(t *testing.T) {
	c := newClassifier(t, nil)
	res := c.ClassifyText("d.cpp", `union U { int a = 42; float b; };`)

	require.Len(t, res.Findings, 1)
	assert.Equal(t, catalog.UnionMemberDefaultInit, res.Findings[0].FeatureID)
	assert.Equal(t, 23, res.RequiredStandard)
}

func TestClassifyEmptyInput(t *testing.T) {
	c := newClassifier(t, nil)
	res := c.ClassifyText("e.cpp", "")

	assert.Empty(t, res.Findings)
	assert.Empty(t, res.Notes)
	assert.Equal(t, c.Floor(), res.RequiredStandard)
	assert.False(t, res.Violates(c.Floor()))
}

// featureSources maps every cataloged feature to a minimal source that
// exercises exactly that feature.
var featureSources = map[string]string{
	catalog.ConstevalBranch:        `constexpr int f(int x) { if consteval { return 1; } return x; }`,
	catalog.IncompleteSizeQuery:    `struct Fwd; static_assert(sizeof(Fwd) >= 1);`,
	catalog.ConstevalTry:           `constexpr int f() { try { return 1; } catch (...) { return 0; } }`,
	catalog.BareStaticAssert:       `template <class T> void f() { static_assert(false); }`,
	catalog.ConditionalExplicit:    `struct W { explicit(true) W(int); };`,
	catalog.DecayCopy:              `void take(int); void g() { int v = 0; take(auto(v)); }`,
	catalog.AutoParameter:          `void log(auto value);`,
	catalog.ExplicitCTAD:           "template <typename T> struct Box { explicit Box(T); };\nBox b = 42;",
	catalog.StaticCallOperator:     `struct Less { static bool operator()(int a, int b) { return a < b; } };`,
	catalog.MultiSubscriptOperator: `int operator[](int row, int col) const;`,
	catalog.ThisValueCapture:       `struct W { int v; void s() { auto t = [*this]() { return 0; }; } };`,
	catalog.UnionMemberDefaultInit: `union U { int a = 42; float b; };`,
}

func TestClassifyEveryCatalogedFeature(t *testing.T) {
	c := newClassifier(t, nil)
	for id, src := range featureSources {
		t.Run(id, func(t *testing.T) {
			res := c.ClassifyText("t.cpp", src)
			require.NotEmpty(t, res.Findings, "source should match %s", id)
			assert.Equal(t, 1, res.ByFeature[id])
			for _, f := range res.Findings {
				assert.Equal(t, id, f.FeatureID)
			}
			assert.Equal(t, 23, res.RequiredStandard)
		})
	}
}

func TestClassifyCleanPre23SourceHasNoFindings(t *testing.T) {
	src := `struct Wrapper { explicit Wrapper(int); };
struct Less { bool operator()(int a, int b) const { return a < b; } };
struct Grid {
    int m;
    int operator[](int i) const { return i; }
    void go() { auto f = [this]() { return m; }; }
};
union Plain { int a; float b; };
int safe() { try { return 1; } catch (...) { return 0; } }
template <class T> int pick() { if constexpr (sizeof(T) > 4) { return 1; } return 0; }
static_assert(sizeof(int) >= 2, "width");`

	c := newClassifier(t, nil)
	res := c.ClassifyText("clean.cpp", src)

	assert.Empty(t, res.Findings)
	assert.Empty(t, res.Notes)
	assert.Equal(t, c.Floor(), res.RequiredStandard)
}

func TestClassifyFeatureInsideLambdaInitializer(t *testing.T) {
	c := newClassifier(t, nil)
	res := c.ClassifyText("l.cpp",
		`void h() { auto f = []() { if consteval { return 1; } return 0; }; }`)

	assert.Equal(t, 1, res.ByFeature[catalog.ConstevalBranch])
	assert.Equal(t, 23, res.RequiredStandard)
}

func TestClassifyUnionStaticMemberInitializer(t *testing.T) {
	c := newClassifier(t, nil)
	res := c.ClassifyText("u.cpp", `union U { static const int x = 5; int a; float b; };`)

	assert.Empty(t, res.Findings)
	assert.Equal(t, c.Floor(), res.RequiredStandard)
}

func TestClassifyAmbiguousSizeQuery(t *testing.T) {
	c := newClassifier(t, nil)
	res := c.ClassifyText("m.cpp", `static_assert(sizeof(Mystery) == 4, "m");`)

	assert.Empty(t, res.Findings)
	require.Len(t, res.Notes, 1)
	assert.Equal(t, catalog.IncompleteSizeQuery, res.Notes[0].FeatureID)
	assert.Contains(t, res.Notes[0].Message, "Mystery")
}

func TestClassifyDisabledMatcher(t *testing.T) {
	cfg := classify.NewConfig()
	cfg.Disable(catalog.StaticCallOperator)
	c := newClassifier(t, cfg)

	res := c.ClassifyText("a.cpp", `struct S { static void operator()() {} };`)
	assert.Empty(t, res.Findings)
	assert.Equal(t, c.Floor(), res.RequiredStandard)
}

func TestClassifyConfiguredFloor(t *testing.T) {
	cfg := classify.NewConfig()
	cfg.SetFloor(17)
	c := newClassifier(t, cfg)

	assert.Equal(t, 17, c.Floor())
	res := c.ClassifyText("e.cpp", "")
	assert.Equal(t, 17, res.RequiredStandard)
}

func TestClassifyDefaultFloorFromCatalog(t *testing.T) {
	c := newClassifier(t, nil)
	assert.Equal(t, 23, c.Floor())
}

func TestNewClassifierFailOnUnknownDisable(t *testing.T) {
	cfg := classify.NewConfig()
	cfg.Disable("ZZ99")
	cfg.SetFailOnUnknown(true)

	_, err := classify.NewClassifier(catalog.Default(), cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	// Without the strict policy the unknown id is ignored.
	cfg = classify.NewConfig()
	cfg.Disable("ZZ99")
	_, err = classify.NewClassifier(catalog.Default(), cfg)
	assert.NoError(t, err)
}

func TestClassifyIdempotent(t *testing.T) {
	src := `struct S { static void operator()() {} };
union U { int a = 42; float b; };`
	c := newClassifier(t, nil)

	first := c.ClassifyText("x.cpp", src)
	second := c.ClassifyText("x.cpp", src)
	assert.Equal(t, first.Findings, second.Findings)
	assert.Equal(t, first.Notes, second.Notes)
	assert.Equal(t, first.RequiredStandard, second.RequiredStandard)
}

func TestClassifyFindingsSorted(t *testing.T) {
	// Union (RC02) appears before the operator (OP01) in the source, but
	// findings group by feature id first.
	src := `union U { int a = 42; float b; };
struct S { static void operator()() {} };`

	c := newClassifier(t, nil)
	res := c.ClassifyText("s.cpp", src)

	require.Len(t, res.Findings, 2)
	assert.Equal(t, catalog.StaticCallOperator, res.Findings[0].FeatureID)
	assert.Equal(t, catalog.UnionMemberDefaultInit, res.Findings[1].FeatureID)
}

// TestClassifyMatcherIndependence verifies that running one matcher alone
// yields exactly the findings it contributes to a full run: matchers never
// depend on each other's output.
func TestClassifyMatcherIndependence(t *testing.T) {
	var combined string
	for _, src := range featureSources {
		combined += src + "\n"
	}

	full := newClassifier(t, nil).ClassifyText("all.cpp", combined)
	require.NotEmpty(t, full.Findings)

	cat := catalog.Default()
	for _, desc := range cat.All() {
		t.Run(desc.ID, func(t *testing.T) {
			cfg := classify.NewConfig()
			for _, other := range cat.All() {
				if other.ID != desc.ID {
					cfg.Disable(other.ID)
				}
			}
			solo := newClassifier(t, cfg).ClassifyText("all.cpp", combined)

			var expected []classify.Match
			for _, f := range full.Findings {
				if f.FeatureID == desc.ID {
					expected = append(expected, f)
				}
			}
			assert.Equal(t, expected, solo.Findings)
		})
	}
}

func TestFileResultViolates(t *testing.T) {
	res := &classify.FileResult{RequiredStandard: 23}
	assert.True(t, res.Violates(20))
	assert.False(t, res.Violates(23))
	assert.False(t, res.Violates(26))
}
