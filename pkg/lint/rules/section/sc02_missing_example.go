package section

import (
	"fmt"

	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/doc"
	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/lint"
	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/token"
)

func init() {
	lint.Register(MissingExample)
}

// MissingExample reports tip sections without a fenced SQL example.
var MissingExample = lint.RuleDef{
	ID:          "SC02",
	Name:        "section.missing_example",
	Group:       "section",
	Description: "Tip section has no fenced SQL example.",
	Severity:    lint.SeverityInfo,
	Check:       checkMissingExample,
	Rationale: "Tips are meant to be copy-paste runnable. A prose-only tip is " +
		"sometimes intentional, so this is informational.",
}

func checkMissingExample(d *doc.Document, _ map[string]any) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	for _, s := range d.Sections {
		if len(s.SQLExamples()) == 0 {
			diagnostics = append(diagnostics, lint.Diagnostic{
				RuleID:   "SC02",
				Severity: lint.SeverityInfo,
				Message:  fmt.Sprintf("section %q has no SQL example", s.Heading),
				Pos:      token.Position{Line: s.Line, Column: 1},
			})
		}
	}
	return diagnostics
}
