// Package token defines the lexical token types the SQL example scanner
// produces. The set is intentionally small: the scanner checks examples for
// lexical damage, it does not parse them.
package token

import "fmt"

// TokenType represents the type of a lexical token.
type TokenType int32

const (
	// Special tokens
	EOF TokenType = iota
	ILLEGAL

	// Literals
	IDENT  // identifier or keyword
	NUMBER // 123, 45.67, 1e10
	STRING // 'hello'

	// Operators
	PLUS     // +
	MINUS    // -
	STAR     // *
	SLASH    // /
	PERCENT  // %
	DPIPE    // ||
	EQ       // =
	NE       // != or <>
	LT       // <
	GT       // >
	LE       // <=
	GE       // >=
	DOT      // .
	COMMA    // ,
	SEMI     // ;
	LPAREN   // (
	RPAREN   // )
	LBRACKET // [
	RBRACKET // ]
)

// tokenNames maps token types to their string representations.
var tokenNames = map[TokenType]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",

	IDENT:  "IDENT",
	NUMBER: "NUMBER",
	STRING: "STRING",

	PLUS:     "+",
	MINUS:    "-",
	STAR:     "*",
	SLASH:    "/",
	PERCENT:  "%",
	DPIPE:    "||",
	EQ:       "=",
	NE:       "!=",
	LT:       "<",
	GT:       ">",
	LE:       "<=",
	GE:       ">=",
	DOT:      ".",
	COMMA:    ",",
	SEMI:     ";",
	LPAREN:   "(",
	RPAREN:   ")",
	LBRACKET: "[",
	RBRACKET: "]",
}

// String returns a human-readable representation of the token type.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN(%d)", t)
}

// IsOpener reports whether the token type opens a bracket pair.
func IsOpener(t TokenType) bool {
	return t == LPAREN || t == LBRACKET
}

// IsCloser reports whether the token type closes a bracket pair.
func IsCloser(t TokenType) bool {
	return t == RPAREN || t == RBRACKET
}

// Closer returns the closing counterpart of an opening bracket token.
func Closer(t TokenType) TokenType {
	switch t {
	case LPAREN:
		return RPAREN
	case LBRACKET:
		return RBRACKET
	default:
		return ILLEGAL
	}
}

// Token represents a lexical token with position information.
type Token struct {
	Type    TokenType
	Literal string
	Pos     Position
}
