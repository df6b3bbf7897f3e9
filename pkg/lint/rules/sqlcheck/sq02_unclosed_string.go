package sqlcheck

import (
	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/doc"
	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/lint"
	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/sqlscan"
)

func init() {
	lint.Register(UnclosedString)
}

// UnclosedString reports SQL examples with an unterminated string literal or
// quoted identifier.
var UnclosedString = lint.RuleDef{
	ID:          "SQ02",
	Name:        "sql.unclosed_string",
	Group:       "sql",
	Description: "SQL example contains an unclosed string literal or quoted identifier.",
	Severity:    lint.SeverityError,
	Check:       checkUnclosedString,
	Rationale: "An unclosed quote swallows the rest of the example, so " +
		"everything after it silently stops being SQL.",
	BadExample:  "SELECT * FROM orders WHERE status = 'shipped;",
	GoodExample: "SELECT * FROM orders WHERE status = 'shipped';",
}

func checkUnclosedString(d *doc.Document, _ map[string]any) []lint.Diagnostic {
	return faultDiagnostics(d, "SQ02", lint.SeverityError,
		sqlscan.UnclosedString, sqlscan.UnclosedIdentifier)
}
