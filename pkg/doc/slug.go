package doc

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lowerCaser = cases.Lower(language.Und)

// Slugify converts a heading to its GitHub-style anchor slug: Unicode
// lowercase, whitespace runs collapsed to a single hyphen, and every rune
// that is not a letter, digit, hyphen or underscore stripped.
func Slugify(heading string) string {
	lowered := lowerCaser.String(strings.TrimSpace(heading))

	var b strings.Builder
	b.Grow(len(lowered))
	pendingHyphen := false
	for _, r := range lowered {
		switch {
		case unicode.IsSpace(r):
			pendingHyphen = true
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		default:
			// Punctuation vanishes without becoming a separator.
		}
	}
	return b.String()
}

// Slugger generates anchor slugs the way a markdown renderer does, suffixing
// repeated headings with -1, -2, and so on.
type Slugger struct {
	seen map[string]int
}

// NewSlugger returns a Slugger with no remembered headings.
func NewSlugger() *Slugger {
	return &Slugger{seen: make(map[string]int)}
}

// Slug returns the anchor for the heading, accounting for earlier duplicates.
func (s *Slugger) Slug(heading string) string {
	base := Slugify(heading)
	n := s.seen[base]
	s.seen[base] = n + 1
	if n == 0 {
		return base
	}
	return fmt.Sprintf("%s-%d", base, n)
}
