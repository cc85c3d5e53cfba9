package scanner

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/cxxstd/pkg/token"
)

// Lexer tokenizes C++ input.
//
// It is a recovering lexer: malformed regions (unterminated strings,
// unterminated block comments) are recorded as Issues and skipped so the
// rest of the file can still be scanned.
type Lexer struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
	line    int  // current line number (1-based)
	col     int  // current column number (1-based)

	lastTokenLine int // line of the most recently produced token

	// Issues collected during lexing (non-fatal)
	Issues []Issue
}

// Issue records a non-fatal problem found while scanning.
type Issue struct {
	Pos     token.Position
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("%d:%d: %s", i.Pos.Line, i.Pos.Column, i.Message)
}

// NewLexer creates a new Lexer for the given input.
func NewLexer(input string) *Lexer {
	l := &Lexer{
		input: input,
		line:  1,
		col:   0,
	}
	l.readChar()
	return l
}

// readChar advances to the next character.
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // ASCII NUL = EOF
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++

	if l.ch == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
}

// peekChar returns the next character without advancing.
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// currentPos returns the current position.
func (l *Lexer) currentPos() token.Position {
	return token.Position{
		Line:   l.line,
		Column: l.col,
		Offset: l.pos,
	}
}

// Tokenize consumes the whole input and returns the token stream.
// The trailing EOF token is not included.
func (l *Lexer) Tokenize() []token.Token {
	var toks []token.Token
	for {
		tok := l.NextToken()
		if tok.Type == token.EOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

// NextToken returns the next token.
func (l *Lexer) NextToken() token.Token {
	l.skipTrivia()

	pos := l.currentPos()
	if l.ch != 0 {
		l.lastTokenLine = pos.Line
	}

	var tok token.Token
	tok.Pos = pos

	switch l.ch {
	case 0:
		tok.Type = token.EOF
		tok.Literal = ""
	case '(':
		tok = l.newToken(token.LPAREN, "(")
	case ')':
		tok = l.newToken(token.RPAREN, ")")
	case '{':
		tok = l.newToken(token.LBRACE, "{")
	case '}':
		tok = l.newToken(token.RBRACE, "}")
	case '[':
		tok = l.newToken(token.LBRACKET, "[")
	case ']':
		tok = l.newToken(token.RBRACKET, "]")
	case ';':
		tok = l.newToken(token.SEMICOLON, ";")
	case ',':
		tok = l.newToken(token.COMMA, ",")
	case '=':
		// == is an operator, not an initializer
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.OTHER, Literal: "==", Pos: pos}
		} else {
			tok = l.newToken(token.ASSIGN, "=")
		}
	case '*':
		tok = l.newToken(token.STAR, "*")
	case '&':
		if l.peekChar() == '&' {
			l.readChar()
			tok = token.Token{Type: token.DAMP, Literal: "&&", Pos: pos}
		} else {
			tok = l.newToken(token.AMP, "&")
		}
	case '<':
		tok = l.newToken(token.LT, "<")
	case '>':
		tok = l.newToken(token.GT, ">")
	case ':':
		if l.peekChar() == ':' {
			l.readChar()
			tok = token.Token{Type: token.SCOPE, Literal: "::", Pos: pos}
		} else {
			tok = l.newToken(token.COLON, ":")
		}
	case '-':
		if l.peekChar() == '>' {
			l.readChar()
			tok = token.Token{Type: token.ARROW, Literal: "->", Pos: pos}
		} else {
			tok = l.newToken(token.MINUS, "-")
		}
	case '.':
		if l.peekChar() == '.' && l.peekAt(2) == '.' {
			l.readChar()
			l.readChar()
			tok = token.Token{Type: token.ELLIPSIS, Literal: "...", Pos: pos}
		} else {
			tok = l.newToken(token.DOT, ".")
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.OTHER, Literal: "!=", Pos: pos}
		} else {
			tok = l.newToken(token.BANG, "!")
		}
	case '~':
		tok = l.newToken(token.TILDE, "~")
	case '+':
		tok = l.newToken(token.PLUS, "+")
	case '/':
		tok = l.newToken(token.SLASH, "/")
	case '%':
		tok = l.newToken(token.PERCENT, "%")
	case '?':
		tok = l.newToken(token.QUESTION, "?")
	case '\'':
		tok.Type = token.CHAR
		tok.Literal = l.readCharLiteral()
		tok.Pos = pos
		return tok
	case '"':
		tok.Type = token.STRING
		tok.Literal = l.readString()
		tok.Pos = pos
		return tok
	default:
		switch {
		case isLetter(l.ch) || l.ch == '_':
			// Raw string literal: R"delim( ... )delim"
			if l.ch == 'R' && l.peekChar() == '"' {
				tok.Type = token.STRING
				tok.Literal = l.readRawString()
				tok.Pos = pos
				return tok
			}
			tok.Literal = l.readIdentifier()
			tok.Type = token.LookupIdent(tok.Literal)
			tok.Pos = pos
			return tok
		case isDigit(l.ch):
			tok.Literal = l.readNumber()
			tok.Type = token.NUMBER
			tok.Pos = pos
			return tok
		default:
			tok = l.newToken(token.OTHER, string(l.ch))
		}
	}

	l.readChar()
	return tok
}

// newToken creates a single-char (or already-joined) token and leaves the
// lexer positioned on its last character.
func (l *Lexer) newToken(t token.TokenType, literal string) token.Token {
	return token.Token{Type: t, Literal: literal, Pos: l.currentPos()}
}

// peekAt returns the character n positions ahead of the current one.
func (l *Lexer) peekAt(n int) byte {
	idx := l.pos + n
	if idx >= len(l.input) {
		return 0
	}
	return l.input[idx]
}

// skipTrivia skips whitespace, comments and preprocessor lines.
// Preprocessor lines are trivia for classification purposes: the catalog
// covers core-language constructs, not macro definitions.
func (l *Lexer) skipTrivia() {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r':
			l.readChar()
		case l.ch == '/' && l.peekChar() == '/':
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		case l.ch == '/' && l.peekChar() == '*':
			start := l.currentPos()
			l.readChar()
			l.readChar()
			closed := false
			for l.ch != 0 {
				if l.ch == '*' && l.peekChar() == '/' {
					l.readChar()
					l.readChar()
					closed = true
					break
				}
				l.readChar()
			}
			if !closed {
				l.reportIssue(start, "unterminated block comment")
			}
		case l.ch == '#' && l.line != l.lastTokenLine:
			// Preprocessor directive ('#' is the first token on its line,
			// indentation allowed): skip to end of line, honoring backslash
			// continuations.
			for l.ch != 0 {
				if l.ch == '\\' && l.peekChar() == '\n' {
					l.readChar()
					l.readChar()
					continue
				}
				if l.ch == '\n' {
					break
				}
				l.readChar()
			}
		default:
			return
		}
	}
}

// readIdentifier reads an identifier or keyword.
func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// readNumber reads a numeric literal, loosely: digits plus the characters
// that can appear inside C++ numbers (hex, exponents, digit separators,
// suffixes). Precision is not needed; numbers never anchor a feature site.
func (l *Lexer) readNumber() string {
	start := l.pos
	for isDigit(l.ch) || isLetter(l.ch) || l.ch == '.' || l.ch == '\'' ||
		((l.ch == '+' || l.ch == '-') && (l.input[l.pos-1] == 'e' || l.input[l.pos-1] == 'E' ||
			l.input[l.pos-1] == 'p' || l.input[l.pos-1] == 'P')) {
		l.readChar()
	}
	return l.input[start:l.pos]
}

// readString reads a double-quoted string literal with escape handling.
func (l *Lexer) readString() string {
	start := l.pos
	startPos := l.currentPos()
	l.readChar() // consume opening quote
	for {
		switch l.ch {
		case '\\':
			l.readChar()
			l.readChar()
			continue
		case '"':
			l.readChar() // consume closing quote
			return l.input[start:l.pos]
		case '\n', 0:
			l.reportIssue(startPos, "unterminated string literal")
			return l.input[start:l.pos]
		default:
			l.readChar()
		}
	}
}

// readCharLiteral reads a single-quoted character literal.
func (l *Lexer) readCharLiteral() string {
	start := l.pos
	startPos := l.currentPos()
	l.readChar() // consume opening quote
	for {
		switch l.ch {
		case '\\':
			l.readChar()
			l.readChar()
			continue
		case '\'':
			l.readChar()
			return l.input[start:l.pos]
		case '\n', 0:
			l.reportIssue(startPos, "unterminated character literal")
			return l.input[start:l.pos]
		default:
			l.readChar()
		}
	}
}

// readRawString reads R"delim( ... )delim".
func (l *Lexer) readRawString() string {
	start := l.pos
	startPos := l.currentPos()
	l.readChar() // R
	l.readChar() // opening quote

	// Collect delimiter up to '('
	delimStart := l.pos
	for l.ch != '(' && l.ch != 0 && l.ch != '\n' {
		l.readChar()
	}
	if l.ch != '(' {
		l.reportIssue(startPos, "malformed raw string literal")
		return l.input[start:l.pos]
	}
	delim := l.input[delimStart:l.pos]
	closing := ")" + delim + `"`

	if idx := strings.Index(l.input[l.pos:], closing); idx >= 0 {
		end := l.pos + idx + len(closing)
		for l.pos < end {
			l.readChar()
		}
		return l.input[start:l.pos]
	}

	l.reportIssue(startPos, "unterminated raw string literal")
	for l.ch != 0 {
		l.readChar()
	}
	return l.input[start:l.pos]
}

func (l *Lexer) reportIssue(pos token.Position, msg string) {
	l.Issues = append(l.Issues, Issue{Pos: pos, Message: msg})
}

// isLetter returns true for ASCII letters.
func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

// isDigit returns true for ASCII digits.
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
