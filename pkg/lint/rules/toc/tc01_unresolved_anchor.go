package toc

import (
	"fmt"

	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/doc"
	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/lint"
	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/token"
)

func init() {
	lint.Register(UnresolvedAnchor)
}

// UnresolvedAnchor reports TOC links whose anchor matches no section slug.
var UnresolvedAnchor = lint.RuleDef{
	ID:          "TC01",
	Name:        "toc.unresolved_anchor",
	Group:       "toc",
	Description: "Table of contents link points to a heading that does not exist.",
	Severity:    lint.SeverityError,
	Check:       checkUnresolvedAnchor,
	Rationale: "A dead anchor renders as a link that silently scrolls nowhere. " +
		"It usually means a heading was reworded without updating the TOC.",
	BadExample:  "- [Comment your code!](#coment-your-code)",
	GoodExample: "- [Comment your code!](#comment-your-code)",
	Fix:         "Run `sqltips toc --write` to regenerate the TOC from the headings.",
}

func checkUnresolvedAnchor(d *doc.Document, _ map[string]any) []lint.Diagnostic {
	slugs := make(map[string]bool, len(d.Sections))
	for _, s := range d.Sections {
		slugs[s.Slug] = true
	}

	var diagnostics []lint.Diagnostic
	for _, e := range d.TOC {
		if !slugs[e.Anchor] {
			diagnostics = append(diagnostics, lint.Diagnostic{
				RuleID:   "TC01",
				Severity: lint.SeverityError,
				Message:  fmt.Sprintf("unresolved anchor %q: no heading slugs to it", e.Anchor),
				Pos:      token.Position{Line: e.Line, Column: 1},
			})
		}
	}
	return diagnostics
}
