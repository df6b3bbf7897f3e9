package section

import (
	"fmt"

	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/doc"
	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/lint"
	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/token"
)

func init() {
	lint.Register(BadLanguageTag)
}

// BadLanguageTag reports fenced blocks whose language tag is missing or not
// one of the allowed languages (default: sql only).
var BadLanguageTag = lint.RuleDef{
	ID:          "SC03",
	Name:        "section.bad_language_tag",
	Group:       "section",
	Description: "Fenced block is untagged or tagged with an unexpected language.",
	Severity:    lint.SeverityWarning,
	Check:       checkBadLanguageTag,
	ConfigKeys:  []string{"allowed_languages"},
	Rationale: "Untagged fences lose syntax highlighting on the rendered page, " +
		"and the SQL sanity checks only run on blocks tagged sql.",
	BadExample:  "```\nSELECT 1;\n```",
	GoodExample: "```sql\nSELECT 1;\n```",
}

func checkBadLanguageTag(d *doc.Document, opts map[string]any) []lint.Diagnostic {
	allowed := allowedLanguages(opts)

	var diagnostics []lint.Diagnostic
	for _, s := range d.Sections {
		for _, e := range s.Examples {
			if allowed[e.Language] {
				continue
			}
			msg := fmt.Sprintf("fenced block tagged %q, expected sql", e.Language)
			if e.Language == "" {
				msg = "fenced block has no language tag"
			}
			diagnostics = append(diagnostics, lint.Diagnostic{
				RuleID:   "SC03",
				Severity: lint.SeverityWarning,
				Message:  msg,
				Pos:      token.Position{Line: e.Line, Column: 1},
			})
		}
	}
	return diagnostics
}

func allowedLanguages(opts map[string]any) map[string]bool {
	allowed := map[string]bool{"sql": true}
	raw, ok := opts["allowed_languages"]
	if !ok {
		return allowed
	}

	allowed = make(map[string]bool)
	switch langs := raw.(type) {
	case []string:
		for _, l := range langs {
			allowed[l] = true
		}
	case []any:
		for _, l := range langs {
			if s, ok := l.(string); ok {
				allowed[s] = true
			}
		}
	}
	return allowed
}
