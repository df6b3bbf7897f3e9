package toc

import (
	"fmt"

	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/doc"
	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/lint"
	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/token"
)

func init() {
	lint.Register(MissingEntry)
}

// MissingEntry reports tip sections the TOC never links to.
var MissingEntry = lint.RuleDef{
	ID:          "TC02",
	Name:        "toc.missing_entry",
	Group:       "toc",
	Description: "Tip section is not listed in the table of contents.",
	Severity:    lint.SeverityWarning,
	Check:       checkMissingEntry,
	Rationale: "Readers navigate the document through the TOC; a tip that is " +
		"missing from it is effectively invisible.",
	Fix: "Run `sqltips toc --write` to regenerate the TOC from the headings.",
}

func checkMissingEntry(d *doc.Document, _ map[string]any) []lint.Diagnostic {
	linked := make(map[string]bool, len(d.TOC))
	for _, e := range d.TOC {
		linked[e.Anchor] = true
	}

	var diagnostics []lint.Diagnostic
	for _, s := range d.Sections {
		if !linked[s.Slug] {
			diagnostics = append(diagnostics, lint.Diagnostic{
				RuleID:   "TC02",
				Severity: lint.SeverityWarning,
				Message:  fmt.Sprintf("section %q is not listed in the table of contents", s.Heading),
				Pos:      token.Position{Line: s.Line, Column: 1},
			})
		}
	}
	return diagnostics
}
