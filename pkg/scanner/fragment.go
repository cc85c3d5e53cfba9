package scanner

import (
	"github.com/leapstack-labs/cxxstd/pkg/token"
)

// Kind classifies a source fragment by the syntactic slot it occupies.
type Kind int

// Fragment kinds emitted by the scanner.
const (
	KindCallExpr Kind = iota
	KindDeclaration
	KindOperatorDef
	KindCaptureList
	KindUnionMember
	KindStaticAssert
	KindTryBlock
	KindBranchStmt
)

// String returns the string representation of the fragment kind.
func (k Kind) String() string {
	switch k {
	case KindCallExpr:
		return "call-expr"
	case KindDeclaration:
		return "declaration"
	case KindOperatorDef:
		return "operator-def"
	case KindCaptureList:
		return "capture-list"
	case KindUnionMember:
		return "union-member"
	case KindStaticAssert:
		return "static-assert"
	case KindTryBlock:
		return "try-block"
	case KindBranchStmt:
		return "branch-stmt"
	default:
		return "unknown"
	}
}

// Fragment is a bounded token span identified as a candidate site for a
// feature match. Fragments are immutable once emitted; matchers only read
// them.
type Fragment struct {
	Kind   Kind
	Span   token.Span
	Text   string
	Tokens []token.Token

	// Scanner-computed context. Only the fields relevant to the fragment's
	// kind are populated.
	OpSymbol           string // operator-def: "()", "[]", or the operator spelling
	ParamCount         int    // operator-def: top-level parameters in the parameter list
	HasStatic          bool   // operator-def, union-member: static appears among the decl-specifiers
	InClass            bool   // operator-def: defined inside a record body
	ArgCount           int    // static-assert: top-level argument count
	ConstexprEnclosing bool   // try-block, static-assert: inside a constexpr/consteval function

	// Index is the per-file declaration index, shared read-only by every
	// fragment of the same scan.
	Index *FileIndex
}

// Pos returns the fragment's start position.
func (f *Fragment) Pos() token.Position {
	return f.Span.Start
}
