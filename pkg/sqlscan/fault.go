package sqlscan

import "github.com/pawelkonior/SQL-tips-and-tricks/pkg/token"

// FaultKind classifies the lexical damage a scan found.
type FaultKind int

const (
	// UnclosedString marks a single-quoted string literal with no closing quote.
	UnclosedString FaultKind = iota
	// UnclosedIdentifier marks a double-quoted identifier with no closing quote.
	UnclosedIdentifier
	// UnterminatedComment marks a /* block comment that never sees */.
	UnterminatedComment
	// UnexpectedCloser marks a closing bracket with no matching opener.
	UnexpectedCloser
	// UnclosedBracket marks an opening bracket still open at end of input.
	UnclosedBracket
)

// String returns the fault kind's identifier.
func (k FaultKind) String() string {
	switch k {
	case UnclosedString:
		return "unclosed-string"
	case UnclosedIdentifier:
		return "unclosed-identifier"
	case UnterminatedComment:
		return "unterminated-comment"
	case UnexpectedCloser:
		return "unexpected-closer"
	case UnclosedBracket:
		return "unclosed-bracket"
	default:
		return "unknown"
	}
}

// Fault is one piece of lexical damage, positioned within the example.
type Fault struct {
	Kind    FaultKind
	Pos     token.Position
	Message string
}
