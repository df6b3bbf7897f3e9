package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/doc"
	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/token"
)

func stubRule(id string, sev Severity, diags ...Diagnostic) RuleDef {
	return RuleDef{
		ID:       id,
		Name:     "test." + id,
		Group:    "test",
		Severity: sev,
		Check: func(_ *doc.Document, _ map[string]any) []Diagnostic {
			out := make([]Diagnostic, len(diags))
			copy(out, diags)
			for i := range out {
				out[i].RuleID = id
				if out[i].Severity == 0 {
					out[i].Severity = sev
				}
			}
			return out
		},
	}
}

func TestRegistry(t *testing.T) {
	Clear()
	t.Cleanup(Clear)

	Register(stubRule("ZZ02", SeverityWarning))
	Register(stubRule("ZZ01", SeverityError))

	assert.Equal(t, 2, Count())

	all := GetAll()
	require.Len(t, all, 2)
	assert.Equal(t, "ZZ01", all[0].ID, "rules should be sorted by ID")
	assert.Equal(t, "ZZ02", all[1].ID)

	rule, ok := GetByID("ZZ01")
	require.True(t, ok)
	assert.Equal(t, SeverityError, rule.Severity)

	_, ok = GetByID("nope")
	assert.False(t, ok)

	group := GetByGroup("test")
	assert.Len(t, group, 2)
	assert.Empty(t, GetByGroup("other"))
}

func TestAnalyzerRunsEnabledRules(t *testing.T) {
	Clear()
	t.Cleanup(Clear)

	Register(stubRule("ZZ01", SeverityError, Diagnostic{
		Message: "first",
		Pos:     token.Position{Line: 5, Column: 1},
	}))
	Register(stubRule("ZZ02", SeverityWarning, Diagnostic{
		Message: "second",
		Pos:     token.Position{Line: 2, Column: 1},
	}))

	a := NewAnalyzer(nil)
	diags := a.Analyze(&doc.Document{})
	require.Len(t, diags, 2)

	// Sorted by position, not registration order.
	assert.Equal(t, "ZZ02", diags[0].RuleID)
	assert.Equal(t, "ZZ01", diags[1].RuleID)
}

func TestAnalyzerDisabledRule(t *testing.T) {
	Clear()
	t.Cleanup(Clear)

	Register(stubRule("ZZ01", SeverityError, Diagnostic{Message: "x"}))
	Register(stubRule("ZZ02", SeverityWarning, Diagnostic{Message: "y"}))

	cfg := NewConfig().Disable("ZZ01")
	diags := NewAnalyzer(cfg).Analyze(&doc.Document{})
	require.Len(t, diags, 1)
	assert.Equal(t, "ZZ02", diags[0].RuleID)
}

func TestAnalyzerSeverityOverride(t *testing.T) {
	Clear()
	t.Cleanup(Clear)

	Register(stubRule("ZZ01", SeverityWarning, Diagnostic{Message: "x", Severity: SeverityWarning}))

	cfg := NewConfig().SetSeverity("ZZ01", SeverityError)
	diags := NewAnalyzer(cfg).Analyze(&doc.Document{})
	require.Len(t, diags, 1)
	assert.Equal(t, SeverityError, diags[0].Severity)
}

func TestAnalyzerNilDocument(t *testing.T) {
	assert.Nil(t, NewAnalyzer(nil).Analyze(nil))
}

func TestFilterBySeverity(t *testing.T) {
	diags := []Diagnostic{
		{RuleID: "A", Severity: SeverityError},
		{RuleID: "B", Severity: SeverityWarning},
		{RuleID: "C", Severity: SeverityInfo},
		{RuleID: "D", Severity: SeverityHint},
	}

	assert.Len(t, FilterBySeverity(diags, SeverityHint), 4)
	assert.Len(t, FilterBySeverity(diags, SeverityInfo), 3)
	assert.Len(t, FilterBySeverity(diags, SeverityWarning), 2)

	errsOnly := FilterBySeverity(diags, SeverityError)
	require.Len(t, errsOnly, 1)
	assert.Equal(t, "A", errsOnly[0].RuleID)
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in     string
		want   Severity
		wantOK bool
	}{
		{"error", SeverityError, true},
		{"WARNING", SeverityWarning, true},
		{"Info", SeverityInfo, true},
		{"hint", SeverityHint, true},
		{"bogus", SeverityWarning, false},
		{"", SeverityWarning, false},
	}

	for _, tt := range tests {
		got, ok := ParseSeverity(tt.in)
		assert.Equal(t, tt.want, got, "ParseSeverity(%q)", tt.in)
		assert.Equal(t, tt.wantOK, ok, "ParseSeverity(%q) ok", tt.in)
	}
}

func TestRuleInfo(t *testing.T) {
	def := RuleDef{
		ID:          "ZZ01",
		Name:        "test.example",
		Group:       "test",
		Description: "desc",
		Severity:    SeverityInfo,
		ConfigKeys:  []string{"limit"},
		Rationale:   "because",
	}

	info := def.Info()
	assert.Equal(t, "ZZ01", info.ID)
	assert.Equal(t, SeverityInfo, info.DefaultSeverity)
	assert.Equal(t, []string{"limit"}, info.ConfigKeys)
	assert.Equal(t, "because", info.Rationale)
}
