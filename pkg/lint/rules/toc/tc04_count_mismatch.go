package toc

import (
	"fmt"

	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/doc"
	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/lint"
	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/token"
)

func init() {
	lint.Register(CountMismatch)
}

// CountMismatch reports a TOC whose entry count differs from the number of
// tip sections. The `expected_sections` option pins both counts to a fixed
// number; 0 (the default) only compares them against each other.
var CountMismatch = lint.RuleDef{
	ID:          "TC04",
	Name:        "toc.count_mismatch",
	Group:       "toc",
	Description: "Table of contents entry count does not match the tip section count.",
	Severity:    lint.SeverityError,
	Check:       checkCountMismatch,
	ConfigKeys:  []string{"expected_sections"},
	Rationale: "When the counts drift apart a tip was added or removed on one " +
		"side only. TC01/TC02 point at the individual lines; this rule catches " +
		"the drift even when every remaining link still resolves.",
}

func checkCountMismatch(d *doc.Document, opts map[string]any) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic

	pos := token.Position{Line: d.TOCStart, Column: 1}
	if len(d.TOC) != len(d.Sections) {
		diagnostics = append(diagnostics, lint.Diagnostic{
			RuleID:   "TC04",
			Severity: lint.SeverityError,
			Message: fmt.Sprintf("table of contents has %d entries but the document has %d tip sections",
				len(d.TOC), len(d.Sections)),
			Pos: pos,
		})
	}

	if expected := intOption(opts, "expected_sections"); expected > 0 && len(d.Sections) != expected {
		diagnostics = append(diagnostics, lint.Diagnostic{
			RuleID:   "TC04",
			Severity: lint.SeverityError,
			Message:  fmt.Sprintf("document has %d tip sections, expected %d", len(d.Sections), expected),
			Pos:      pos,
		})
	}

	return diagnostics
}

// intOption reads an integer rule option, tolerating the numeric types YAML
// decoding produces.
func intOption(opts map[string]any, key string) int {
	if opts == nil {
		return 0
	}
	switch v := opts[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}
