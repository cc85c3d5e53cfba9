// Package token defines the lexical token types for C++ source scanning.
//
// The scanner does not aim for a complete C++ token set; it covers the
// punctuation, literals and keywords needed to delimit candidate fragments
// and to recognize cataloged feature sites.
package token

import "fmt"

// TokenType represents the type of a lexical token.
//
//nolint:revive // Accept stutter as token.TokenType is clear and widely used
type TokenType int32

const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL

	// Literals
	IDENT  // identifier
	NUMBER // 123, 45.67, 0x1p3
	STRING // "hello", R"(raw)"
	CHAR   // 'c'

	// Punctuation
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	LBRACKET  // [
	RBRACKET  // ]
	SEMICOLON // ;
	COMMA     // ,
	COLON     // :
	SCOPE     // ::
	ASSIGN    // =
	STAR      // *
	AMP       // &
	DAMP      // &&
	LT        // <
	GT        // >
	ARROW     // ->
	ELLIPSIS  // ...
	DOT       // .
	BANG      // !
	TILDE     // ~
	PLUS      // +
	MINUS     // -
	SLASH     // /
	PERCENT   // %
	QUESTION  // ?
	OTHER     // any punctuation without a dedicated kind

	// Keywords relevant to fragment extraction and feature sites
	KwAlignof
	KwAuto
	KwCatch
	KwClass
	KwConst
	KwConsteval
	KwConstexpr
	KwConstinit
	KwDecltype
	KwExplicit
	KwFalse
	KwIf
	KwNoexcept
	KwOperator
	KwSizeof
	KwStatic
	KwStaticAssert
	KwStruct
	KwTemplate
	KwThis
	KwTrue
	KwTry
	KwTypename
	KwUnion
	KwVirtual
)

// tokenNames maps token types to their string representations.
var tokenNames = map[TokenType]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",

	IDENT:  "IDENT",
	NUMBER: "NUMBER",
	STRING: "STRING",
	CHAR:   "CHAR",

	LPAREN:    "(",
	RPAREN:    ")",
	LBRACE:    "{",
	RBRACE:    "}",
	LBRACKET:  "[",
	RBRACKET:  "]",
	SEMICOLON: ";",
	COMMA:     ",",
	COLON:     ":",
	SCOPE:     "::",
	ASSIGN:    "=",
	STAR:      "*",
	AMP:       "&",
	DAMP:      "&&",
	LT:        "<",
	GT:        ">",
	ARROW:     "->",
	ELLIPSIS:  "...",
	DOT:       ".",
	BANG:      "!",
	TILDE:     "~",
	PLUS:      "+",
	MINUS:     "-",
	SLASH:     "/",
	PERCENT:   "%",
	QUESTION:  "?",
	OTHER:     "OTHER",

	KwAlignof:      "alignof",
	KwAuto:         "auto",
	KwCatch:        "catch",
	KwClass:        "class",
	KwConst:        "const",
	KwConsteval:    "consteval",
	KwConstexpr:    "constexpr",
	KwConstinit:    "constinit",
	KwDecltype:     "decltype",
	KwExplicit:     "explicit",
	KwFalse:        "false",
	KwIf:           "if",
	KwNoexcept:     "noexcept",
	KwOperator:     "operator",
	KwSizeof:       "sizeof",
	KwStatic:       "static",
	KwStaticAssert: "static_assert",
	KwStruct:       "struct",
	KwTemplate:     "template",
	KwThis:         "this",
	KwTrue:         "true",
	KwTry:          "try",
	KwTypename:     "typename",
	KwUnion:        "union",
	KwVirtual:      "virtual",
}

// keywords maps keyword spellings to their token types.
var keywords = map[string]TokenType{
	"alignof":       KwAlignof,
	"auto":          KwAuto,
	"catch":         KwCatch,
	"class":         KwClass,
	"const":         KwConst,
	"consteval":     KwConsteval,
	"constexpr":     KwConstexpr,
	"constinit":     KwConstinit,
	"decltype":      KwDecltype,
	"explicit":      KwExplicit,
	"false":         KwFalse,
	"if":            KwIf,
	"noexcept":      KwNoexcept,
	"operator":      KwOperator,
	"sizeof":        KwSizeof,
	"static":        KwStatic,
	"static_assert": KwStaticAssert,
	"struct":        KwStruct,
	"template":      KwTemplate,
	"this":          KwThis,
	"true":          KwTrue,
	"try":           KwTry,
	"typename":      KwTypename,
	"union":         KwUnion,
	"virtual":       KwVirtual,
}

// String returns a human-readable representation of the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

// LookupIdent returns the token type for the given identifier.
// If the identifier is a tracked keyword, the keyword token type is
// returned. Otherwise, IDENT is returned.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// IsKeyword returns true if the token type is a keyword.
func IsKeyword(t TokenType) bool {
	return t >= KwAlignof && t <= KwVirtual
}

// Token represents a lexical token with position information.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}
