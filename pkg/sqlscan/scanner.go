// Package sqlscan lexes fenced SQL examples and reports lexical damage:
// unclosed string literals, unterminated block comments, and unbalanced
// brackets. It applies no grammar; a full SQL parse is out of scope for a
// documentation checker.
package sqlscan

import (
	"strings"

	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/token"
)

// Scanner tokenizes one SQL example.
type Scanner struct {
	input   string
	pos     int  // current position in input
	readPos int  // reading position (after current char)
	ch      byte // current char under examination
	line    int  // current line number (1-based)
	col     int  // current column number (1-based)

	faults []Fault
}

// New creates a Scanner for the given SQL text.
func New(input string) *Scanner {
	s := &Scanner{
		input: input,
		line:  1,
		col:   0,
	}
	s.readChar()
	return s
}

// Result holds everything a scan produced.
type Result struct {
	Tokens []token.Token
	Faults []Fault
}

// Scan consumes the whole input and returns all tokens plus every fault
// found. It never stops at the first problem.
func Scan(input string) Result {
	s := New(input)

	var tokens []token.Token
	var stack []token.Token
	for {
		tok := s.NextToken()
		if tok.Type == token.EOF {
			break
		}
		tokens = append(tokens, tok)

		switch {
		case token.IsOpener(tok.Type):
			stack = append(stack, tok)
		case token.IsCloser(tok.Type):
			if len(stack) == 0 {
				s.fault(UnexpectedCloser, tok.Pos, "unexpected '"+tok.Literal+"' with no matching opener")
				continue
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if token.Closer(open.Type) != tok.Type {
				s.fault(UnexpectedCloser, tok.Pos,
					"'"+tok.Literal+"' does not match opening '"+open.Literal+"' at "+open.Pos.String())
			}
		}
	}

	for i := len(stack) - 1; i >= 0; i-- {
		open := stack[i]
		s.fault(UnclosedBracket, open.Pos, "'"+open.Literal+"' is never closed")
	}

	return Result{Tokens: tokens, Faults: s.faults}
}

func (s *Scanner) fault(kind FaultKind, pos token.Position, msg string) {
	s.faults = append(s.faults, Fault{Kind: kind, Pos: pos, Message: msg})
}

// readChar advances to the next character.
func (s *Scanner) readChar() {
	if s.readPos >= len(s.input) {
		s.ch = 0 // ASCII NUL = EOF
	} else {
		s.ch = s.input[s.readPos]
	}
	s.pos = s.readPos
	s.readPos++

	if s.ch == '\n' {
		s.line++
		s.col = 0
	} else {
		s.col++
	}
}

// peekChar returns the next character without advancing.
func (s *Scanner) peekChar() byte {
	if s.readPos >= len(s.input) {
		return 0
	}
	return s.input[s.readPos]
}

func (s *Scanner) currentPos() token.Position {
	return token.Position{Line: s.line, Column: s.col, Offset: s.pos}
}

// NextToken returns the next token, recording faults for damaged literals
// and comments along the way.
func (s *Scanner) NextToken() token.Token {
	s.skipWhitespaceAndComments()

	pos := s.currentPos()

	var tok token.Token
	tok.Pos = pos

	switch s.ch {
	case 0:
		tok.Type = token.EOF
		tok.Literal = ""
		return tok
	case '+':
		tok = s.newToken(token.PLUS, "+")
	case '-':
		tok = s.newToken(token.MINUS, "-")
	case '*':
		tok = s.newToken(token.STAR, "*")
	case '/':
		tok = s.newToken(token.SLASH, "/")
	case '%':
		tok = s.newToken(token.PERCENT, "%")
	case '=':
		tok = s.newToken(token.EQ, "=")
	case '<':
		switch s.peekChar() {
		case '=':
			s.readChar()
			tok = token.Token{Type: token.LE, Literal: "<=", Pos: pos}
		case '>':
			s.readChar()
			tok = token.Token{Type: token.NE, Literal: "<>", Pos: pos}
		default:
			tok = s.newToken(token.LT, "<")
		}
	case '>':
		if s.peekChar() == '=' {
			s.readChar()
			tok = token.Token{Type: token.GE, Literal: ">=", Pos: pos}
		} else {
			tok = s.newToken(token.GT, ">")
		}
	case '!':
		if s.peekChar() == '=' {
			s.readChar()
			tok = token.Token{Type: token.NE, Literal: "!=", Pos: pos}
		} else {
			tok = s.newToken(token.ILLEGAL, string(s.ch))
		}
	case '|':
		if s.peekChar() == '|' {
			s.readChar()
			tok = token.Token{Type: token.DPIPE, Literal: "||", Pos: pos}
		} else {
			tok = s.newToken(token.ILLEGAL, string(s.ch))
		}
	case '.':
		tok = s.newToken(token.DOT, ".")
	case ',':
		tok = s.newToken(token.COMMA, ",")
	case ';':
		tok = s.newToken(token.SEMI, ";")
	case '(':
		tok = s.newToken(token.LPAREN, "(")
	case ')':
		tok = s.newToken(token.RPAREN, ")")
	case '[':
		tok = s.newToken(token.LBRACKET, "[")
	case ']':
		tok = s.newToken(token.RBRACKET, "]")
	case '\'':
		lit, closed := s.readString()
		if !closed {
			s.fault(UnclosedString, pos, "string literal is never closed")
		}
		return token.Token{Type: token.STRING, Literal: lit, Pos: pos}
	case '"':
		lit, closed := s.readQuotedIdentifier()
		if !closed {
			s.fault(UnclosedIdentifier, pos, "quoted identifier is never closed")
		}
		return token.Token{Type: token.IDENT, Literal: lit, Pos: pos}
	default:
		switch {
		case isLetter(s.ch) || s.ch == '_':
			tok.Literal = s.readIdentifier()
			tok.Type = token.IDENT
			tok.Pos = pos
			return tok
		case isDigit(s.ch):
			tok.Type = token.NUMBER
			tok.Literal = s.readNumber()
			tok.Pos = pos
			return tok
		default:
			tok = s.newToken(token.ILLEGAL, string(s.ch))
		}
	}

	s.readChar()
	return tok
}

func (s *Scanner) newToken(tokenType token.TokenType, literal string) token.Token {
	return token.Token{Type: tokenType, Literal: literal, Pos: s.currentPos()}
}

// skipWhitespaceAndComments skips whitespace, line comments, and block
// comments, recording a fault when a block comment never terminates.
func (s *Scanner) skipWhitespaceAndComments() {
	for {
		for s.ch == ' ' || s.ch == '\t' || s.ch == '\n' || s.ch == '\r' {
			s.readChar()
		}

		if s.ch == '-' && s.peekChar() == '-' {
			for s.ch != '\n' && s.ch != 0 {
				s.readChar()
			}
			continue
		}

		if s.ch == '/' && s.peekChar() == '*' {
			pos := s.currentPos()
			s.readChar() // skip '/'
			s.readChar() // skip '*'
			closed := false
			for s.ch != 0 {
				if s.ch == '*' && s.peekChar() == '/' {
					s.readChar() // skip '*'
					s.readChar() // skip '/'
					closed = true
					break
				}
				s.readChar()
			}
			if !closed {
				s.fault(UnterminatedComment, pos, "block comment is never terminated")
			}
			continue
		}

		break
	}
}

// readString reads a single-quoted string literal.
// Doubled single quotes escape: 'it''s' -> it's
func (s *Scanner) readString() (string, bool) {
	s.readChar() // skip opening quote

	var result strings.Builder
	for s.ch != 0 {
		if s.ch == '\'' {
			if s.peekChar() == '\'' {
				result.WriteByte('\'')
				s.readChar() // skip first quote
				s.readChar() // skip second quote
				continue
			}
			s.readChar() // skip closing quote
			return result.String(), true
		}
		result.WriteByte(s.ch)
		s.readChar()
	}
	return result.String(), false
}

// readQuotedIdentifier reads a double-quoted identifier.
// Doubled double quotes escape: "col""name" -> col"name
func (s *Scanner) readQuotedIdentifier() (string, bool) {
	s.readChar() // skip opening quote

	var result strings.Builder
	for s.ch != 0 {
		if s.ch == '"' {
			if s.peekChar() == '"' {
				result.WriteByte('"')
				s.readChar()
				s.readChar()
				continue
			}
			s.readChar()
			return result.String(), true
		}
		result.WriteByte(s.ch)
		s.readChar()
	}
	return result.String(), false
}

// readIdentifier reads an unquoted identifier.
func (s *Scanner) readIdentifier() string {
	start := s.pos
	for isLetter(s.ch) || isDigit(s.ch) || s.ch == '_' {
		s.readChar()
	}
	return s.input[start:s.pos]
}

// readNumber reads a numeric literal (integer, decimal, or scientific).
func (s *Scanner) readNumber() string {
	start := s.pos

	for isDigit(s.ch) {
		s.readChar()
	}

	if s.ch == '.' && isDigit(s.peekChar()) {
		s.readChar() // skip '.'
		for isDigit(s.ch) {
			s.readChar()
		}
	}

	if s.ch == 'e' || s.ch == 'E' {
		if isDigit(s.peekChar()) || ((s.peekChar() == '+' || s.peekChar() == '-') && s.readPos+1 < len(s.input) && isDigit(s.input[s.readPos+1])) {
			s.readChar() // skip 'e'
			if s.ch == '+' || s.ch == '-' {
				s.readChar()
			}
			for isDigit(s.ch) {
				s.readChar()
			}
		}
	}

	return s.input[start:s.pos]
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
