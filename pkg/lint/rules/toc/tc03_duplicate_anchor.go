package toc

import (
	"fmt"

	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/doc"
	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/lint"
	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/token"
)

func init() {
	lint.Register(DuplicateAnchor)
}

// DuplicateAnchor reports anchors referenced by more than one TOC entry.
var DuplicateAnchor = lint.RuleDef{
	ID:          "TC03",
	Name:        "toc.duplicate_anchor",
	Group:       "toc",
	Description: "Two table of contents entries target the same anchor.",
	Severity:    lint.SeverityWarning,
	Check:       checkDuplicateAnchor,
	Rationale: "Each heading should be referenced at most once. Duplicate " +
		"targets usually mean a copy-pasted entry was never updated.",
}

func checkDuplicateAnchor(d *doc.Document, _ map[string]any) []lint.Diagnostic {
	first := make(map[string]int, len(d.TOC)) // anchor -> line of first use

	var diagnostics []lint.Diagnostic
	for _, e := range d.TOC {
		if prev, ok := first[e.Anchor]; ok {
			diagnostics = append(diagnostics, lint.Diagnostic{
				RuleID:   "TC03",
				Severity: lint.SeverityWarning,
				Message:  fmt.Sprintf("anchor %q already targeted by the entry on line %d", e.Anchor, prev),
				Pos:      token.Position{Line: e.Line, Column: 1},
			})
			continue
		}
		first[e.Anchor] = e.Line
	}
	return diagnostics
}
