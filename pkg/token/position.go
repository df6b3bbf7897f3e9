package token

import "fmt"

// Position is a location within a scanned SQL example.
type Position struct {
	Line   int // 1-based line within the example
	Column int // 1-based column
	Offset int // byte offset from the start of the example
}

// String returns the position as "line:column".
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
