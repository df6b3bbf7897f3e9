package section

import (
	"fmt"

	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/doc"
	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/lint"
	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/token"
)

func init() {
	lint.Register(EmptyProse)
}

// EmptyProse reports tip sections with no explanatory prose at all.
var EmptyProse = lint.RuleDef{
	ID:          "SC01",
	Name:        "section.empty_prose",
	Group:       "section",
	Description: "Tip section has no non-empty prose paragraph.",
	Severity:    lint.SeverityWarning,
	Check:       checkEmptyProse,
	Rationale: "A bare code block teaches nothing. Every tip pairs its example " +
		"with at least one sentence explaining when and why it applies.",
}

func checkEmptyProse(d *doc.Document, _ map[string]any) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	for _, s := range d.Sections {
		if !s.HasProse() {
			diagnostics = append(diagnostics, lint.Diagnostic{
				RuleID:   "SC01",
				Severity: lint.SeverityWarning,
				Message:  fmt.Sprintf("section %q has no prose paragraph", s.Heading),
				Pos:      token.Position{Line: s.Line, Column: 1},
			})
		}
	}
	return diagnostics
}
