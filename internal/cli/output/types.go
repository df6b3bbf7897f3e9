package output

// LintSummary aggregates diagnostic counts for a check run.
type LintSummary struct {
	TotalIssues int `json:"total_issues"`
	Errors      int `json:"errors"`
	Warnings    int `json:"warnings"`
	Info        int `json:"info"`
	Hints       int `json:"hints"`
}

// LintDiagnostic is the JSON form of a single diagnostic.
type LintDiagnostic struct {
	RuleID   string `json:"rule_id"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
}

// CheckOutput is the JSON payload of the check command.
type CheckOutput struct {
	Document    string           `json:"document"`
	Summary     LintSummary      `json:"summary"`
	Diagnostics []LintDiagnostic `json:"diagnostics"`
}
