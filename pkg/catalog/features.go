package catalog

// Feature ids, grouped the way the matcher packages are laid out.
const (
	ConstevalBranch        = "CV01"
	IncompleteSizeQuery    = "CV02"
	ConstevalTry           = "CV03"
	BareStaticAssert       = "CV04"
	ConditionalExplicit    = "DD01"
	DecayCopy              = "DD02"
	AutoParameter          = "DD03"
	ExplicitCTAD           = "DD04"
	StaticCallOperator     = "OP01"
	MultiSubscriptOperator = "OP02"
	ThisValueCapture       = "RC01"
	UnionMemberDefaultInit = "RC02"
)

// Default returns the built-in catalog: the core-language constructs gated
// on C++23.
func Default() *Catalog {
	return New([]FeatureDescriptor{
		{
			ID:          ConstevalBranch,
			Name:        "consteval.branch",
			Group:       "consteval",
			MinStandard: 23,
			Description: "if consteval branches on whether evaluation happens at compile time.",
			BadExample:  "if consteval { return fast_path(); }",
			GoodExample: "if (std::is_constant_evaluated()) { return fast_path(); }",
		},
		{
			ID:          IncompleteSizeQuery,
			Name:        "consteval.incomplete-size",
			Group:       "consteval",
			MinStandard: 23,
			Description: "sizeof/alignof applied to a type that is incomplete at the point of a constant evaluation.",
			BadExample:  "struct Fwd; static_assert(sizeof(Fwd) >= 1);",
		},
		{
			ID:          ConstevalTry,
			Name:        "consteval.try",
			Group:       "consteval",
			MinStandard: 23,
			Description: "try/catch appearing inside a function usable in constant evaluation.",
			BadExample:  "constexpr int f() { try { return 1; } catch (...) { return 0; } }",
		},
		{
			ID:          BareStaticAssert,
			Name:        "consteval.bare-assert",
			Group:       "consteval",
			MinStandard: 23,
			Description: "static_assert(false) without a message, valid in uninstantiated context.",
			BadExample:  "template <class T> void f() { static_assert(false); }",
			GoodExample: "static_assert(cond, \"message\");",
		},
		{
			ID:          ConditionalExplicit,
			Name:        "explicit.conditional",
			Group:       "deduction",
			MinStandard: 23,
			Description: "explicit(expr) conditions the explicit specifier on a boolean expression.",
			BadExample:  "explicit(sizeof(T) > 8) Wrapper(T);",
			GoodExample: "explicit Wrapper(T);",
		},
		{
			ID:          DecayCopy,
			Name:        "deduction.decay-copy",
			Group:       "deduction",
			MinStandard: 23,
			Description: "auto(expr) / auto{expr} produces a decayed prvalue copy with a deduced type.",
			BadExample:  "take(auto(locked_value));",
			GoodExample: "take(std::decay_t<decltype(v)>(v));",
		},
		{
			ID:          AutoParameter,
			Name:        "deduction.auto-parameter",
			Group:       "deduction",
			MinStandard: 23,
			Description: "A deduced-type placeholder used as a function parameter type.",
			BadExample:  "void log(auto value);",
			GoodExample: "template <class T> void log(T value);",
		},
		{
			ID:          ExplicitCTAD,
			Name:        "deduction.explicit-ctad",
			Group:       "deduction",
			MinStandard: 23,
			Description: "Class template argument deduction through a constructor marked explicit, in copy-initialization.",
			BadExample:  "Wrapper w = 42; // Wrapper's constructor is explicit",
		},
		{
			ID:          StaticCallOperator,
			Name:        "operator.static-call",
			Group:       "operators",
			MinStandard: 23,
			Description: "A call operator declared static, without an implicit object parameter.",
			BadExample:  "struct Less { static bool operator()(int a, int b) { return a < b; } };",
			GoodExample: "struct Less { bool operator()(int a, int b) const { return a < b; } };",
		},
		{
			ID:          MultiSubscriptOperator,
			Name:        "operator.multi-subscript",
			Group:       "operators",
			MinStandard: 23,
			Description: "An element-access operator accepting more than one index argument.",
			BadExample:  "int operator[](int row, int col) const;",
			GoodExample: "int operator()(int row, int col) const;",
		},
		{
			ID:          ThisValueCapture,
			Name:        "record.this-value-capture",
			Group:       "records",
			MinStandard: 23,
			Description: "A closure capturing the enclosing instance by value.",
			BadExample:  "auto task = [*this] { return member; };",
			GoodExample: "auto copy = *this; auto task = [copy] { return copy.member; };",
		},
		{
			ID:          UnionMemberDefaultInit,
			Name:        "record.union-default-init",
			Group:       "records",
			MinStandard: 23,
			Description: "A default member initializer on a union member.",
			BadExample:  "union U { int a = 42; float b; };",
			GoodExample: "union U { int a; float b; }; // initialize at the use site",
		},
	})
}
