package sqlcheck

import (
	"fmt"
	"strings"

	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/doc"
	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/lint"
	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/token"
)

func init() {
	lint.Register(EmptyExample)
}

// EmptyExample reports sql-tagged fences with nothing in them.
var EmptyExample = lint.RuleDef{
	ID:          "SQ04",
	Name:        "sql.empty_example",
	Group:       "sql",
	Description: "SQL example block is empty.",
	Severity:    lint.SeverityWarning,
	Check:       checkEmptyExample,
}

func checkEmptyExample(d *doc.Document, _ map[string]any) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic
	for _, s := range d.Sections {
		for _, e := range s.SQLExamples() {
			if strings.TrimSpace(e.Content) == "" {
				diagnostics = append(diagnostics, lint.Diagnostic{
					RuleID:   "SQ04",
					Severity: lint.SeverityWarning,
					Message:  fmt.Sprintf("empty SQL example in %q", s.Heading),
					Pos:      token.Position{Line: e.Line, Column: 1},
				})
			}
		}
	}
	return diagnostics
}
