package lint

import (
	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/doc"
	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/token"
)

// RuleDef is a data-driven rule definition. Rules are stateless - all
// context comes via the Check function parameters.
type RuleDef struct {
	ID          string    // Unique identifier, e.g., "TC01"
	Name        string    // Human-readable name, e.g., "toc.unresolved_anchor"
	Group       string    // Category: "toc", "section", "sql"
	Description string    // Human-readable description
	Severity    Severity  // Default severity
	Check       CheckFunc // The check function
	ConfigKeys  []string  // Configuration keys this rule accepts

	// Documentation fields for richer rule documentation
	Rationale   string // Why this rule exists, what problems it prevents
	BadExample  string // Markdown/SQL showing the mistake
	GoodExample string // Markdown/SQL showing the correct form
	Fix         string // How to fix violations (when not obvious)
}

// CheckFunc analyzes a parsed document and returns diagnostics.
// The opts parameter contains rule-specific options from configuration.
type CheckFunc func(d *doc.Document, opts map[string]any) []Diagnostic

// Diagnostic represents a lint finding.
type Diagnostic struct {
	RuleID   string
	Severity Severity
	Message  string
	Pos      token.Position // Line/column within the document; zero when unknown
	EndPos   token.Position // Optional: end of the problematic range
}

// RuleInfo provides metadata about a rule for documentation/tooling.
type RuleInfo struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Group           string   `json:"group"`
	Description     string   `json:"description"`
	DefaultSeverity Severity `json:"default_severity"`
	ConfigKeys      []string `json:"config_keys,omitempty"`

	Rationale   string `json:"rationale,omitempty"`
	BadExample  string `json:"bad_example,omitempty"`
	GoodExample string `json:"good_example,omitempty"`
	Fix         string `json:"fix,omitempty"`
}

// Info extracts rule metadata for documentation/tooling.
func (r RuleDef) Info() RuleInfo {
	return RuleInfo{
		ID:              r.ID,
		Name:            r.Name,
		Group:           r.Group,
		Description:     r.Description,
		DefaultSeverity: r.Severity,
		ConfigKeys:      r.ConfigKeys,
		Rationale:       r.Rationale,
		BadExample:      r.BadExample,
		GoodExample:     r.GoodExample,
		Fix:             r.Fix,
	}
}
