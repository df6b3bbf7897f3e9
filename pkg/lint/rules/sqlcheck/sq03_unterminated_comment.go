package sqlcheck

import (
	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/doc"
	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/lint"
	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/sqlscan"
)

func init() {
	lint.Register(UnterminatedComment)
}

// UnterminatedComment reports SQL examples with a /* comment that never
// closes.
var UnterminatedComment = lint.RuleDef{
	ID:          "SQ03",
	Name:        "sql.unterminated_comment",
	Group:       "sql",
	Description: "SQL example contains an unterminated block comment.",
	Severity:    lint.SeverityError,
	Check:       checkUnterminatedComment,
	BadExample:  "SELECT 1 /* explain the constant;",
	GoodExample: "SELECT 1 /* explain the constant */;",
}

func checkUnterminatedComment(d *doc.Document, _ map[string]any) []lint.Diagnostic {
	return faultDiagnostics(d, "SQ03", lint.SeverityError, sqlscan.UnterminatedComment)
}
