package doc

import (
	"fmt"
	"strings"
)

// GenerateTOC returns the canonical table-of-contents entries for the
// document, one markdown list item per tip section.
func (d *Document) GenerateTOC() []string {
	out := make([]string, 0, len(d.Sections))
	for _, s := range d.Sections {
		out = append(out, fmt.Sprintf("- [%s](#%s)", s.Heading, s.Slug))
	}
	return out
}

// TOCMatches reports whether the document's TOC block already equals the
// generated one, entry for entry.
func (d *Document) TOCMatches() bool {
	want := d.GenerateTOC()
	if len(want) != len(d.TOC) {
		return false
	}
	for i, e := range d.TOC {
		if fmt.Sprintf("- [%s](#%s)", e.Text, e.Anchor) != want[i] {
			return false
		}
	}
	return true
}

// RewriteTOC splices the generated TOC into the document text, replacing the
// existing TOC block and leaving everything else byte-identical. The second
// return value is false when the document has no TOC block to replace.
func RewriteTOC(content string) (string, bool, error) {
	d, err := Parse(content)
	if err != nil {
		return "", false, err
	}
	if d.TOCStart == 0 {
		return content, false, nil
	}

	lines := strings.Split(content, "\n")
	// TOCStart/TOCEnd are 1-based and count from the top of the source,
	// frontmatter included, so they index lines directly.
	var out []string
	out = append(out, lines[:d.TOCStart-1]...)
	out = append(out, d.GenerateTOC()...)
	out = append(out, lines[d.TOCEnd:]...)
	return strings.Join(out, "\n"), true, nil
}
