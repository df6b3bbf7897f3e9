package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pawelkonior/SQL-tips-and-tricks/internal/cli/output"
	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/doc"
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "list [document]",
		Short: "List the tips in the document",
		Long: `List every tip section with its anchor, paragraph count, and
SQL example count.

Output adapts to environment:
  - Terminal: Styled table output
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # List the tips
  sqltips list

  # List as JSON
  sqltips list --output json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return runList(cmd, path, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: text, markdown, json")

	return cmd
}

func runList(cmd *cobra.Command, path, format string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	if format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(format))
	}

	document, err := cmdCtx.LoadDocument(path)
	if err != nil {
		return err
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return listJSON(r, document)
	case output.ModeMarkdown:
		return listMarkdown(r, document)
	default:
		return listText(r, document)
	}
}

func listText(r *output.Renderer, document *doc.Document) error {
	r.Println(r.Styles().Header1.Render(fmt.Sprintf("Tips (%d total)", len(document.Sections))))

	t := table.NewWriter()
	t.SetOutputMirror(r.Writer())
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Tip", "Anchor", "Paragraphs", "SQL Examples"})

	for i, s := range document.Sections {
		t.AppendRow(table.Row{i + 1, s.Heading, s.Slug, len(s.Prose), len(s.SQLExamples())})
	}

	t.Render()
	return nil
}

func listMarkdown(r *output.Renderer, document *doc.Document) error {
	r.Printf("# Tips (%d total)\n\n", len(document.Sections))
	for i, s := range document.Sections {
		r.Printf("%d. **%s** (`#%s`)\n", i+1, s.Heading, s.Slug)
		r.Printf("   %d paragraphs, %d SQL examples\n", len(s.Prose), len(s.SQLExamples()))
	}
	r.Println("")
	return nil
}

// sectionInfo is the JSON form of a tip section.
type sectionInfo struct {
	Heading    string `json:"heading"`
	Anchor     string `json:"anchor"`
	Line       int    `json:"line"`
	Paragraphs int    `json:"paragraphs"`
	Examples   int    `json:"sql_examples"`
}

// listOutput is the JSON payload of the list command.
type listOutput struct {
	Title    string        `json:"title"`
	Total    int           `json:"total"`
	Sections []sectionInfo `json:"sections"`
}

func listJSON(r *output.Renderer, document *doc.Document) error {
	out := listOutput{
		Title:    document.Title,
		Total:    len(document.Sections),
		Sections: make([]sectionInfo, 0, len(document.Sections)),
	}
	for _, s := range document.Sections {
		out.Sections = append(out.Sections, sectionInfo{
			Heading:    s.Heading,
			Anchor:     s.Slug,
			Line:       s.Line,
			Paragraphs: len(s.Prose),
			Examples:   len(s.SQLExamples()),
		})
	}
	return r.JSON(out)
}
