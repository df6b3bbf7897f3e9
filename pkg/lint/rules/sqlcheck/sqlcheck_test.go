package sqlcheck_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/doc"
	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/lint"
	_ "github.com/pawelkonior/SQL-tips-and-tricks/pkg/lint/rules/sqlcheck" // register rules
)

// docWithSQL wraps a SQL snippet in a minimal one-tip document.
func docWithSQL(sql string) string {
	return "# Tips\n\n## Tip\n\nProse.\n\n```sql\n" + sql + "\n```\n"
}

func runRule(t *testing.T, content, ruleID string) []lint.Diagnostic {
	t.Helper()
	d, err := doc.Parse(content)
	require.NoError(t, err)

	diags := lint.NewAnalyzer(nil).Analyze(d)

	var filtered []lint.Diagnostic
	for _, diag := range diags {
		if diag.RuleID == ruleID {
			filtered = append(filtered, diag)
		}
	}
	return filtered
}

func TestSQ01_UnbalancedBrackets(t *testing.T) {
	tests := []struct {
		name     string
		sql      string
		wantDiag bool
	}{
		{"balanced", "SELECT count(*) FROM (SELECT 1) sub;", false},
		{"unclosed paren", "SELECT * FROM orders WHERE id IN (1, 2, 3;", true},
		{"stray closer", "SELECT 1);", true},
		{"mismatched pair", "SELECT (arr];", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, docWithSQL(tt.sql), "SQ01")
			if tt.wantDiag {
				assert.NotEmpty(t, diags, "expected SQ01 diagnostic")
			} else {
				assert.Empty(t, diags, "unexpected SQ01 diagnostic")
			}
		})
	}
}

func TestSQ02_UnclosedString(t *testing.T) {
	diags := runRule(t, docWithSQL("SELECT * FROM t WHERE status = 'shipped;"), "SQ02")
	require.Len(t, diags, 1)
	assert.Equal(t, lint.SeverityError, diags[0].Severity)
	assert.Contains(t, diags[0].Message, "Tip")

	assert.Empty(t, runRule(t, docWithSQL("SELECT 'it''s fine';"), "SQ02"))
}

func TestSQ02_UnclosedQuotedIdentifier(t *testing.T) {
	diags := runRule(t, docWithSQL(`SELECT "first name FROM t;`), "SQ02")
	assert.NotEmpty(t, diags)
}

func TestSQ03_UnterminatedComment(t *testing.T) {
	diags := runRule(t, docWithSQL("SELECT 1 /* never ends"), "SQ03")
	require.Len(t, diags, 1)

	assert.Empty(t, runRule(t, docWithSQL("SELECT 1 /* fine */;"), "SQ03"))
}

func TestSQ04_EmptyExample(t *testing.T) {
	content := "# Tips\n\n## Tip\n\nProse.\n\n```sql\n\n```\n"
	diags := runRule(t, content, "SQ04")
	require.Len(t, diags, 1)
	assert.Equal(t, lint.SeverityWarning, diags[0].Severity)

	assert.Empty(t, runRule(t, docWithSQL("SELECT 1;"), "SQ04"))
}

func TestFaultPositionMapsToDocumentLine(t *testing.T) {
	// Fence opens on line 7, content starts on line 8. The unclosed quote
	// sits on the second content line, so the diagnostic lands on line 9.
	content := "# Tips\n\n## Tip\n\nProse.\n\n```sql\nSELECT 1\nFROM 'oops;\n```\n"
	diags := runRule(t, content, "SQ02")
	require.Len(t, diags, 1)
	assert.Equal(t, 9, diags[0].Pos.Line)
}

func TestNonSQLFenceIsIgnored(t *testing.T) {
	content := "# Tips\n\n## Tip\n\nProse.\n\n```text\nSELECT 'unclosed;\n```\n"
	assert.Empty(t, runRule(t, content, "SQ02"))
}
