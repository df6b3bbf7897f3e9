package sqlcheck

import (
	"fmt"

	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/doc"
	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/lint"
	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/sqlscan"
	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/token"
)

func init() {
	lint.Register(UnbalancedBrackets)
}

// UnbalancedBrackets reports SQL examples with mismatched parentheses or
// square brackets.
var UnbalancedBrackets = lint.RuleDef{
	ID:          "SQ01",
	Name:        "sql.unbalanced_brackets",
	Group:       "sql",
	Description: "SQL example contains unbalanced parentheses or brackets.",
	Severity:    lint.SeverityError,
	Check:       checkUnbalancedBrackets,
	Rationale: "A lost parenthesis is the most common copy-paste casualty when " +
		"trimming a real query down to an example.",
	BadExample:  "SELECT * FROM orders WHERE id IN (1, 2, 3;",
	GoodExample: "SELECT * FROM orders WHERE id IN (1, 2, 3);",
}

func checkUnbalancedBrackets(d *doc.Document, _ map[string]any) []lint.Diagnostic {
	return faultDiagnostics(d, "SQ01", lint.SeverityError,
		sqlscan.UnexpectedCloser, sqlscan.UnclosedBracket)
}

// faultDiagnostics scans every SQL example in the document and converts the
// faults of the given kinds to diagnostics positioned in document lines.
func faultDiagnostics(d *doc.Document, ruleID string, sev lint.Severity, kinds ...sqlscan.FaultKind) []lint.Diagnostic {
	wanted := make(map[sqlscan.FaultKind]bool, len(kinds))
	for _, k := range kinds {
		wanted[k] = true
	}

	var diagnostics []lint.Diagnostic
	for _, s := range d.Sections {
		for _, e := range s.SQLExamples() {
			result := sqlscan.Scan(e.Content)
			for _, f := range result.Faults {
				if !wanted[f.Kind] {
					continue
				}
				diagnostics = append(diagnostics, lint.Diagnostic{
					RuleID:   ruleID,
					Severity: sev,
					Message:  fmt.Sprintf("%s (example in %q)", f.Message, s.Heading),
					Pos: token.Position{
						// Example content starts on the line after the fence.
						Line:   e.Line + f.Pos.Line,
						Column: f.Pos.Column,
					},
				})
			}
		}
	}
	return diagnostics
}
