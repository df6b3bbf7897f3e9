package lint

import (
	"sort"

	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/doc"
)

// Analyzer runs lint rules against a parsed document.
type Analyzer struct {
	config *Config
}

// NewAnalyzer creates a new analyzer with optional configuration.
func NewAnalyzer(config *Config) *Analyzer {
	if config == nil {
		config = NewConfig()
	}
	return &Analyzer{config: config}
}

// Analyze runs all enabled registered rules against the document and returns
// every diagnostic found, sorted by position. It never stops at the first
// problem; each rule contributes all of its findings.
func (a *Analyzer) Analyze(d *doc.Document) []Diagnostic {
	if d == nil {
		return nil
	}

	var diagnostics []Diagnostic
	for _, rule := range GetAll() {
		if a.config.IsDisabled(rule.ID) {
			continue
		}

		diags := rule.Check(d, a.config.GetRuleOptions(rule.ID))

		for i := range diags {
			diags[i].Severity = a.config.GetSeverity(rule.ID, diags[i].Severity)
		}
		diagnostics = append(diagnostics, diags...)
	}

	sort.SliceStable(diagnostics, func(i, j int) bool {
		if diagnostics[i].Pos.Line != diagnostics[j].Pos.Line {
			return diagnostics[i].Pos.Line < diagnostics[j].Pos.Line
		}
		return diagnostics[i].Pos.Column < diagnostics[j].Pos.Column
	})
	return diagnostics
}

// FilterBySeverity returns the diagnostics at or above the threshold
// (lower Severity values are more severe).
func FilterBySeverity(diags []Diagnostic, threshold Severity) []Diagnostic {
	var out []Diagnostic
	for _, d := range diags {
		if d.Severity <= threshold {
			out = append(out, d)
		}
	}
	return out
}
