package commands

import (
	"fmt"
	"strings"

	"github.com/pawelkonior/SQL-tips-and-tricks/internal/cli/output"
	"github.com/pawelkonior/SQL-tips-and-tricks/internal/config"
	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/lint"
	_ "github.com/pawelkonior/SQL-tips-and-tricks/pkg/lint/rules/section"  // register section rules
	_ "github.com/pawelkonior/SQL-tips-and-tricks/pkg/lint/rules/sqlcheck" // register sqlcheck rules
	_ "github.com/pawelkonior/SQL-tips-and-tricks/pkg/lint/rules/toc"      // register TOC rules
	"github.com/spf13/cobra"
)

// CheckOptions holds options for the check command.
type CheckOptions struct {
	Path     string   // Document path
	Format   string   // Output format: text, json
	Disable  []string // Rule IDs to disable
	Severity string   // Minimum severity: error, warning, info, hint
	Rules    []string // Run only specific rules
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}
	cmd := &cobra.Command{
		Use:   "check [document]",
		Short: "Check the tips document for consistency issues",
		Long: `Analyze the tips document for consistency issues.

Verifies that every table of contents entry resolves to a section
heading, every section is listed in the table of contents, each tip
carries prose and a SQL example, and the SQL code blocks are lexically
sound. Rules can be configured in sqltips.yaml.`,
		Example: `  # Check the configured document
  sqltips check

  # Check a specific file
  sqltips check docs/tips.md

  # Output as JSON
  sqltips check --format json

  # Disable specific rules
  sqltips check --disable SC02,TC03

  # Only report errors (ignore warnings/hints)
  sqltips check --severity error`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Path = args[0]
			}
			return runCheck(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringVar(&opts.Severity, "severity", "hint", "Minimum severity: error, warning, info, hint")
	cmd.Flags().StringSliceVar(&opts.Rules, "rule", nil, "Run only specific rules")

	return cmd
}

func runCheck(cmd *cobra.Command, opts *CheckOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	// Override renderer if format flag is set
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	document, err := cmdCtx.LoadDocument(opts.Path)
	if err != nil {
		return err
	}

	lintCfg := buildLintConfig(cmdCtx.Cfg, opts)
	analyzer := lint.NewAnalyzer(lintCfg)

	diags := analyzer.Analyze(document)

	threshold, ok := lint.ParseSeverity(opts.Severity)
	if !ok {
		threshold = lint.SeverityHint
	}
	diags = lint.FilterBySeverity(diags, threshold)

	path := opts.Path
	if path == "" {
		path = cmdCtx.Cfg.Document
	}
	hasIssues := renderCheckResults(r, path, diags)

	if hasIssues {
		return fmt.Errorf("check found issues")
	}
	return nil
}

func buildLintConfig(cfg *config.Config, opts *CheckOptions) *lint.Config {
	lintCfg := lint.NewConfig()

	// Apply project config first (lower precedence)
	if cfg != nil && cfg.Lint != nil {
		for _, id := range cfg.Lint.Disabled {
			lintCfg.Disable(strings.TrimSpace(id))
		}
		for id, sev := range cfg.Lint.Severity {
			if s, ok := lint.ParseSeverity(sev); ok {
				lintCfg.SetSeverity(id, s)
			}
		}
		for id, ruleOpts := range cfg.Lint.Rules {
			lintCfg.SetRuleOptions(id, ruleOpts)
		}
	}

	// Apply CLI overrides (higher precedence)
	for _, id := range opts.Disable {
		lintCfg.Disable(strings.TrimSpace(id))
	}

	// If --rule specified, disable all others
	if len(opts.Rules) > 0 {
		enabledSet := make(map[string]bool)
		for _, id := range opts.Rules {
			enabledSet[strings.TrimSpace(id)] = true
		}
		for _, rule := range lint.GetAll() {
			if !enabledSet[rule.ID] {
				lintCfg.Disable(rule.ID)
			}
		}
	}

	return lintCfg
}

func renderCheckResults(r *output.Renderer, path string, diags []lint.Diagnostic) bool {
	summary := output.LintSummary{TotalIssues: len(diags)}
	for _, d := range diags {
		switch d.Severity {
		case lint.SeverityError:
			summary.Errors++
		case lint.SeverityWarning:
			summary.Warnings++
		case lint.SeverityInfo:
			summary.Info++
		case lint.SeverityHint:
			summary.Hints++
		}
	}

	if r.EffectiveMode() == output.ModeJSON {
		jsonOutput := output.CheckOutput{
			Document: path,
			Summary:  summary,
		}
		for _, d := range diags {
			jsonOutput.Diagnostics = append(jsonOutput.Diagnostics, output.LintDiagnostic{
				RuleID:   d.RuleID,
				Severity: d.Severity.String(),
				Message:  d.Message,
				Line:     d.Pos.Line,
				Column:   d.Pos.Column,
			})
		}
		_ = r.JSON(jsonOutput)
		return len(diags) > 0
	}

	if len(diags) == 0 {
		r.Success("No issues found in %s", path)
		return false
	}

	r.Println(r.Styles().Bold.Render(path))
	for _, d := range diags {
		loc := fmt.Sprintf("%d:%d", d.Pos.Line, d.Pos.Column)
		if d.Pos.Line == 0 {
			loc = "-"
		}
		r.Printf("  %s  %s  %s  %s\n",
			r.Styles().Muted.Render(fmt.Sprintf("%-7s", loc)),
			severityStyle(r, d.Severity),
			r.Styles().Bold.Render(d.RuleID),
			d.Message,
		)
	}
	r.Println("")

	summaryParts := []string{fmt.Sprintf("%d issues", summary.TotalIssues)}
	if summary.Errors > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d errors", summary.Errors))
	}
	if summary.Warnings > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d warnings", summary.Warnings))
	}
	if summary.Info > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d info", summary.Info))
	}
	if summary.Hints > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d hints", summary.Hints))
	}
	r.Printf("Summary: %s\n", strings.Join(summaryParts, ", "))

	return true
}

func severityStyle(r *output.Renderer, sev lint.Severity) string {
	switch sev {
	case lint.SeverityError:
		return r.Styles().Error.Render("error  ")
	case lint.SeverityWarning:
		return r.Styles().Warning.Render("warning")
	case lint.SeverityInfo:
		return r.Styles().Info.Render("info   ")
	case lint.SeverityHint:
		return r.Styles().Muted.Render("hint   ")
	default:
		return r.Styles().Muted.Render("unknown")
	}
}
