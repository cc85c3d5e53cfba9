// Package scanner tokenizes C++ source text and extracts candidate
// syntactic fragments (operator definitions, capture lists, union members,
// static assertions, try blocks, declarations) without building a full
// parse tree.
//
// Extraction is a single linear pass over the token stream with explicit
// brace/paren depth tracking; there is no backtracking. Malformed regions
// are skipped and recorded as Issues, never fatal.
package scanner

import (
	"github.com/leapstack-labs/cxxstd/pkg/token"
)

// Result holds everything produced by a single scan of one input.
type Result struct {
	Fragments []Fragment
	Issues    []Issue
	Index     *FileIndex
}

// Scan tokenizes the input and extracts candidate fragments. It is a pure
// function of the input text: scanning the same text twice yields identical
// results.
func Scan(input string) *Result {
	lex := NewLexer(input)
	toks := lex.Tokenize()

	s := &scanPass{
		input: input,
		toks:  toks,
		index: newFileIndex(),
	}
	s.run()

	return &Result{
		Fragments: s.frags,
		Issues:    append(lex.Issues, s.issues...),
		Index:     s.index,
	}
}

// frame tracks one level of brace nesting.
type frame struct {
	isRecord    bool
	isUnion     bool
	recordName  string
	constexprFn bool // inside a constexpr/consteval function body
}

// scanPass is the single-use state of one extraction pass.
type scanPass struct {
	input  string
	toks   []token.Token
	index  *FileIndex
	frags  []Fragment
	issues []Issue

	stack     []frame
	declStart int // index of the first token of the current declaration
}

func (s *scanPass) run() {
	for i := 0; i < len(s.toks); i++ {
		tok := s.toks[i]

		switch tok.Type {
		case token.SEMICOLON:
			s.finishDeclaration(i)
			s.declStart = i + 1

		case token.LBRACE:
			if next, pushed := s.openBrace(i); !pushed {
				// Brace initializer: skip without entering a scope.
				i = next
			} else {
				s.declStart = i + 1
			}

		case token.RBRACE:
			if len(s.stack) > 0 {
				s.stack = s.stack[:len(s.stack)-1]
			}
			s.declStart = i + 1

		case token.KwIf:
			s.scanBranch(i)

		case token.KwTry:
			s.scanTry(i)

		case token.KwStaticAssert:
			s.scanStaticAssert(i)

		case token.KwOperator:
			s.scanOperator(i)

		case token.KwExplicit:
			s.scanExplicit(i)

		case token.KwAuto:
			s.scanAutoCall(i)

		case token.LBRACKET:
			i = s.scanBracket(i)

		case token.LPAREN:
			s.scanParamList(i)

		case token.ASSIGN:
			s.scanCopyInitDecl(i)
		}
	}
}

// current returns the innermost frame, or a zero frame at file scope.
func (s *scanPass) current() frame {
	if len(s.stack) == 0 {
		return frame{}
	}
	return s.stack[len(s.stack)-1]
}

// head returns the tokens from the start of the current declaration up to
// (but excluding) index i.
func (s *scanPass) head(i int) []token.Token {
	if s.declStart > i {
		return nil
	}
	return s.toks[s.declStart:i]
}

// openBrace decides what an opening brace introduces. It returns the index
// to resume at and whether a frame was pushed. Brace initializers (no
// parameter list and no record keyword in the declaration head) are skipped
// linearly without pushing a frame.
func (s *scanPass) openBrace(i int) (int, bool) {
	head := s.head(i)

	hasAssign := false
	hasParen := false
	recordKw := -1
	hasTemplate := false
	hasConstexpr := false
	for idx, t := range head {
		switch t.Type {
		case token.ASSIGN:
			hasAssign = true
		case token.RPAREN:
			hasParen = true
		case token.KwStruct, token.KwClass, token.KwUnion:
			recordKw = idx
		case token.KwTemplate:
			hasTemplate = true
		case token.KwConstexpr, token.KwConsteval:
			hasConstexpr = true
		}
	}

	switch {
	case hasAssign:
		// A lambda in initializer position (auto f = [] ... {) opens a body
		// that must be scanned like any other function body.
		if intro := lambdaHeadIntro(head); intro >= 0 {
			fr := frame{}
			for _, t := range head[intro:] {
				if t.Type == token.KwConstexpr || t.Type == token.KwConsteval {
					fr.constexprFn = true
				}
			}
			s.stack = append(s.stack, fr)
			return i, true
		}
		// int x = {1}; Wrapper w = {...};
		end := s.matchClose(i, token.LBRACE, token.RBRACE)
		if end < 0 {
			s.issues = append(s.issues, Issue{
				Pos:     s.toks[i].Pos,
				Message: "unbalanced brace initializer; rest of input skipped",
			})
			return len(s.toks), false
		}
		return end, false

	case recordKw >= 0:
		fr := frame{isRecord: true}
		if head[recordKw].Type == token.KwUnion {
			fr.isUnion = true
		}
		if recordKw+1 < len(head) && head[recordKw+1].Type == token.IDENT {
			fr.recordName = head[recordKw+1].Literal
			s.index.defined[fr.recordName] = true
			if hasTemplate {
				s.index.templateRecord[fr.recordName] = true
			}
		}
		s.stack = append(s.stack, fr)
		return i, true

	case hasParen:
		// Function body, lambda body or control-flow block.
		fr := frame{constexprFn: hasConstexpr || s.current().constexprFn}
		if s.current().isRecord && !hasConstexpr {
			// Member bodies of a record do not inherit from the scope the
			// record was declared in.
			fr.constexprFn = hasConstexpr
		}
		s.stack = append(s.stack, fr)
		return i, true

	case len(head) == 0:
		// Bare block: inherits constant-evaluation context.
		s.stack = append(s.stack, frame{constexprFn: s.current().constexprFn})
		return i, true

	default:
		// Namespace bodies, enum bodies, and brace initializers without
		// '=' (int a{42};). Inside a record with a declarator head this is
		// an initializer; elsewhere treat it as a plain scope.
		if s.current().isRecord && headLooksLikeDeclarator(head) {
			if end := s.matchClose(i, token.LBRACE, token.RBRACE); end >= 0 {
				return end, false
			}
		}
		s.stack = append(s.stack, frame{constexprFn: s.current().constexprFn})
		return i, true
	}
}

// lambdaHeadIntro returns the index of a lambda capture introducer appearing
// after the last '=' of the head, or -1. It separates `auto f = [] ... {`
// (a body to scan) from plain brace initializers like `int x = {1};`.
func lambdaHeadIntro(head []token.Token) int {
	// Capture defaults ([=], [&x = init]) put '=' inside the brackets, so
	// only depth-0 assigns delimit the initializer.
	lastAssign := -1
	depth := 0
	for idx, t := range head {
		switch t.Type {
		case token.LBRACKET:
			depth++
		case token.RBRACKET:
			depth--
		case token.ASSIGN:
			if depth == 0 {
				lastAssign = idx
			}
		}
	}
	for j := lastAssign + 1; j < len(head); j++ {
		if head[j].Type != token.LBRACKET {
			continue
		}
		if j > 0 {
			switch head[j-1].Type {
			case token.IDENT, token.RPAREN, token.RBRACKET, token.NUMBER,
				token.STRING, token.CHAR, token.KwThis, token.GT:
				continue // subscript, not a capture introducer
			}
		}
		end := -1
		depth := 0
		for k := j; k < len(head) && end < 0; k++ {
			switch head[k].Type {
			case token.LBRACKET:
				depth++
			case token.RBRACKET:
				depth--
				if depth == 0 {
					end = k
				}
			}
		}
		if end < 0 {
			return -1
		}
		if end == len(head)-1 {
			// The body brace follows the capture list directly.
			return j
		}
		switch head[end+1].Type {
		case token.LPAREN, token.KwConstexpr, token.KwConsteval,
			token.KwNoexcept, token.ARROW:
			return j
		}
	}
	return -1
}

// headLooksLikeDeclarator reports whether the head is a plain
// "type declarator" sequence (no scopes, no record keywords).
func headLooksLikeDeclarator(head []token.Token) bool {
	if len(head) == 0 {
		return false
	}
	for _, t := range head {
		switch t.Type {
		case token.KwStruct, token.KwClass, token.KwUnion, token.KwTemplate,
			token.COLON, token.SEMICOLON:
			return false
		}
	}
	return true
}

// finishDeclaration runs at every top-level semicolon: records forward
// declarations in the index and emits union-member fragments.
func (s *scanPass) finishDeclaration(i int) {
	head := s.head(i)
	if len(head) == 0 {
		return
	}

	// Forward declaration: struct X;
	if len(head) == 2 && head[1].Type == token.IDENT {
		switch head[0].Type {
		case token.KwStruct, token.KwClass, token.KwUnion:
			s.index.forwardDeclared[head[1].Literal] = true
			return
		}
	}

	// Union data members (declarations ending in ';' at the top level of a
	// union body). Member function bodies never reach here: their braces
	// reset declStart.
	if s.current().isUnion {
		hasStatic := false
		for _, t := range head {
			if t.Type == token.KwStatic {
				hasStatic = true
				break
			}
		}
		s.emit(Fragment{
			Kind:      KindUnionMember,
			Span:      s.span(s.declStart, i-1),
			Tokens:    s.slice(s.declStart, i-1),
			HasStatic: hasStatic,
		})
	}
}

// scanBranch emits a branch-stmt fragment for `if consteval` and
// `if ! consteval`.
func (s *scanPass) scanBranch(i int) {
	end := -1
	if s.at(i+1) == token.KwConsteval {
		end = i + 1
	} else if s.at(i+1) == token.BANG && s.at(i+2) == token.KwConsteval {
		end = i + 2
	}
	if end < 0 {
		return
	}
	s.emit(Fragment{
		Kind:   KindBranchStmt,
		Span:   s.span(i, end),
		Tokens: s.slice(i, end),
	})
}

// scanTry emits a try-block fragment carrying the constant-evaluation
// context of the enclosing function.
func (s *scanPass) scanTry(i int) {
	s.emit(Fragment{
		Kind:               KindTryBlock,
		Span:               s.span(i, i),
		Tokens:             s.slice(i, i),
		ConstexprEnclosing: s.current().constexprFn,
	})
}

// scanStaticAssert emits a static-assert fragment with its top-level
// argument count.
func (s *scanPass) scanStaticAssert(i int) {
	if s.at(i+1) != token.LPAREN {
		return
	}
	end := s.matchClose(i+1, token.LPAREN, token.RPAREN)
	if end < 0 {
		s.issues = append(s.issues, Issue{
			Pos:     s.toks[i].Pos,
			Message: "unbalanced static_assert argument list; region skipped",
		})
		return
	}
	s.emit(Fragment{
		Kind:     KindStaticAssert,
		Span:     s.span(i, end),
		Tokens:   s.slice(i, end),
		ArgCount: s.countTopLevel(i+1, end),
	})
}

// scanOperator emits an operator-def fragment with the operator spelling,
// parameter arity and decl-specifier context.
func (s *scanPass) scanOperator(i int) {
	symbol := ""
	paramOpen := -1

	switch {
	case s.at(i+1) == token.LPAREN && s.at(i+2) == token.RPAREN:
		symbol = "()"
		if s.at(i+3) == token.LPAREN {
			paramOpen = i + 3
		}
	case s.at(i+1) == token.LBRACKET && s.at(i+2) == token.RBRACKET:
		symbol = "[]"
		if s.at(i+3) == token.LPAREN {
			paramOpen = i + 3
		}
	default:
		// Named or symbolic operators (operator+, operator==, operator bool).
		j := i + 1
		for j < len(s.toks) && s.toks[j].Type != token.LPAREN && j-i < 6 {
			symbol += s.toks[j].Literal
			j++
		}
		if j < len(s.toks) && s.toks[j].Type == token.LPAREN {
			paramOpen = j
		}
	}

	if symbol == "" || paramOpen < 0 {
		return
	}
	paramClose := s.matchClose(paramOpen, token.LPAREN, token.RPAREN)
	if paramClose < 0 {
		s.issues = append(s.issues, Issue{
			Pos:     s.toks[i].Pos,
			Message: "unbalanced operator parameter list; region skipped",
		})
		return
	}

	hasStatic := false
	for _, t := range s.head(i) {
		if t.Type == token.KwStatic {
			hasStatic = true
			break
		}
	}

	start := s.declStart
	if start > i {
		start = i
	}
	s.emit(Fragment{
		Kind:       KindOperatorDef,
		Span:       s.span(start, paramClose),
		Tokens:     s.slice(start, paramClose),
		OpSymbol:   symbol,
		ParamCount: s.countTopLevel(paramOpen, paramClose),
		HasStatic:  hasStatic,
		InClass:    s.current().isRecord,
	})
}

// scanExplicit emits a declaration fragment anchored at `explicit` and
// records explicit constructors of class templates in the file index.
func (s *scanPass) scanExplicit(i int) {
	end := i
	for j := i + 1; j < len(s.toks) && j-i < 64; j++ {
		if s.toks[j].Type == token.SEMICOLON || s.toks[j].Type == token.LBRACE {
			break
		}
		end = j
	}
	s.emit(Fragment{
		Kind:   KindDeclaration,
		Span:   s.span(i, end),
		Tokens: s.slice(i, end),
	})

	// Index explicit constructors: explicit [("cond")] Name( where Name is
	// the enclosing record.
	cur := s.current()
	if !cur.isRecord || cur.recordName == "" {
		return
	}
	j := i + 1
	if s.at(j) == token.LPAREN {
		closeIdx := s.matchClose(j, token.LPAREN, token.RPAREN)
		if closeIdx < 0 {
			return
		}
		j = closeIdx + 1
	}
	if s.at(j) == token.IDENT && s.toks[j].Literal == cur.recordName {
		s.index.explicitCtor[cur.recordName] = true
	}
}

// scanAutoCall emits a call-expr fragment for `auto(expr)` / `auto{expr}`
// in expression position.
func (s *scanPass) scanAutoCall(i int) {
	next := s.at(i + 1)
	if next != token.LPAREN && next != token.LBRACE {
		return
	}
	// Expression position only: after '=', '(' or ','. A leading `auto (`
	// at statement level is a declaration, not a cast.
	if i == 0 {
		return
	}
	switch s.toks[i-1].Type {
	case token.ASSIGN, token.LPAREN, token.COMMA:
	default:
		return
	}

	open, close := token.LPAREN, token.RPAREN
	if next == token.LBRACE {
		open, close = token.LBRACE, token.RBRACE
	}
	end := s.matchClose(i+1, open, close)
	if end < 0 {
		return
	}
	s.emit(Fragment{
		Kind:   KindCallExpr,
		Span:   s.span(i, end),
		Tokens: s.slice(i, end),
	})
}

// scanBracket handles '[' tokens: attributes are skipped, lambda
// capture-intros become capture-list fragments, subscripts are ignored.
// Returns the index to resume at.
func (s *scanPass) scanBracket(i int) int {
	// The empty brackets of operator[] are not a lambda introducer.
	if i > 0 && s.toks[i-1].Type == token.KwOperator {
		return i
	}

	// Attribute specifier [[...]]: skip entirely.
	if s.at(i+1) == token.LBRACKET {
		if end := s.matchClose(i, token.LBRACKET, token.RBRACKET); end > 0 {
			return end
		}
		return i
	}

	// Subscript position: a '[' directly after a value expression.
	if i > 0 {
		switch s.toks[i-1].Type {
		case token.IDENT, token.RPAREN, token.RBRACKET, token.NUMBER,
			token.STRING, token.CHAR, token.KwThis, token.GT:
			return i
		}
	}

	end := s.matchClose(i, token.LBRACKET, token.RBRACKET)
	if end < 0 {
		return i
	}
	// A lambda introducer is followed by a parameter list, specifiers or the
	// body itself.
	switch s.at(end + 1) {
	case token.LPAREN, token.LBRACE, token.KwConstexpr, token.KwConsteval,
		token.KwNoexcept, token.ARROW:
	default:
		return i
	}

	s.emit(Fragment{
		Kind:   KindCaptureList,
		Span:   s.span(i, end),
		Tokens: s.slice(i, end),
	})
	return end
}

// scanParamList emits a declaration fragment for function parameter lists:
// IDENT ( ... ) followed by a body, ';' or trailing specifiers.
func (s *scanPass) scanParamList(i int) {
	if i == 0 || s.toks[i-1].Type != token.IDENT {
		return
	}
	end := s.matchClose(i, token.LPAREN, token.RPAREN)
	if end < 0 {
		return
	}
	switch s.at(end + 1) {
	case token.LBRACE, token.SEMICOLON, token.KwConst, token.ARROW, token.KwNoexcept:
	default:
		return
	}
	s.emit(Fragment{
		Kind:   KindDeclaration,
		Span:   s.span(i-1, end),
		Tokens: s.slice(i-1, end),
	})
}

// scanCopyInitDecl emits a declaration fragment for copy-initialized
// declarations of the exact shape `Type name = ...;`.
func (s *scanPass) scanCopyInitDecl(i int) {
	if i != s.declStart+2 {
		return
	}
	if s.toks[s.declStart].Type != token.IDENT || s.toks[s.declStart+1].Type != token.IDENT {
		return
	}
	end := i
	for j := i + 1; j < len(s.toks) && j-i < 64; j++ {
		if s.toks[j].Type == token.SEMICOLON {
			break
		}
		end = j
	}
	s.emit(Fragment{
		Kind:   KindDeclaration,
		Span:   s.span(s.declStart, end),
		Tokens: s.slice(s.declStart, end),
	})
}

// at returns the token type at index i, or EOF when out of range.
func (s *scanPass) at(i int) token.TokenType {
	if i < 0 || i >= len(s.toks) {
		return token.EOF
	}
	return s.toks[i].Type
}

// matchClose returns the index of the close token matching the open token
// at index i, or -1 when the input ends first. Linear scan, no backtracking.
func (s *scanPass) matchClose(i int, open, close token.TokenType) int {
	depth := 0
	for j := i; j < len(s.toks); j++ {
		switch s.toks[j].Type {
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	return -1
}

// countTopLevel counts comma-separated items between the delimiters at
// open and close (exclusive). Nested parens, brackets, braces and template
// argument lists do not contribute. An empty list counts as zero.
func (s *scanPass) countTopLevel(open, close int) int {
	if close <= open+1 {
		return 0
	}
	items := 1
	parens, brackets, braces, angles := 0, 0, 0, 0
	for j := open + 1; j < close; j++ {
		switch s.toks[j].Type {
		case token.LPAREN:
			parens++
		case token.RPAREN:
			parens--
		case token.LBRACKET:
			brackets++
		case token.RBRACKET:
			brackets--
		case token.LBRACE:
			braces++
		case token.RBRACE:
			braces--
		case token.LT:
			angles++
		case token.GT:
			if angles > 0 {
				angles--
			}
		case token.COMMA:
			if parens == 0 && brackets == 0 && braces == 0 && angles == 0 {
				items++
			}
		}
	}
	return items
}

// slice copies the token range [from, to] for a fragment.
func (s *scanPass) slice(from, to int) []token.Token {
	if from < 0 || to >= len(s.toks) || to < from {
		return nil
	}
	out := make([]token.Token, to-from+1)
	copy(out, s.toks[from:to+1])
	return out
}

// span computes the source span covering tokens [from, to].
func (s *scanPass) span(from, to int) token.Span {
	if from < 0 || to >= len(s.toks) || to < from {
		return token.Span{}
	}
	start := s.toks[from].Pos
	last := s.toks[to]
	return token.Span{
		Start: start,
		End: token.Position{
			Line:   last.Pos.Line,
			Column: last.Pos.Column + len(last.Literal),
			Offset: last.Pos.Offset + len(last.Literal),
		},
	}
}

// emit appends a fragment, filling in its raw text and the shared index.
func (s *scanPass) emit(f Fragment) {
	if f.Span.IsValid() {
		startOff := f.Span.Start.Offset
		endOff := f.Span.End.Offset
		if startOff >= 0 && endOff <= len(s.input) && startOff <= endOff {
			f.Text = s.input[startOff:endOff]
		}
	}
	f.Index = s.index
	s.frags = append(s.frags, f)
}
