package commands

import (
	"fmt"
	"os"

	"github.com/pawelkonior/SQL-tips-and-tricks/internal/cli/output"
	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/doc"
	"github.com/spf13/cobra"
)

// TocOptions holds options for the toc command.
type TocOptions struct {
	Path  string // Document path
	Check bool   // Verify instead of printing
	Write bool   // Rewrite the document in place
}

// NewTocCommand creates the toc command.
func NewTocCommand() *cobra.Command {
	opts := &TocOptions{}
	cmd := &cobra.Command{
		Use:   "toc [document]",
		Short: "Generate or verify the table of contents",
		Long: `Generate the table of contents from the section headings.

By default the generated entries are printed to stdout. With --check
the command verifies the existing table of contents instead and exits
non-zero when it is out of date. With --write the document is rewritten
in place.`,
		Example: `  # Print the generated table of contents
  sqltips toc

  # Verify the document's table of contents is current
  sqltips toc --check

  # Update the document in place
  sqltips toc --write`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.Path = args[0]
			}
			return runToc(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Check, "check", false, "Verify the table of contents instead of printing")
	cmd.Flags().BoolVar(&opts.Write, "write", false, "Rewrite the document with a regenerated table of contents")
	cmd.MarkFlagsMutuallyExclusive("check", "write")

	return cmd
}

func runToc(cmd *cobra.Command, opts *TocOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	path := opts.Path
	if path == "" {
		path = cmdCtx.Cfg.Document
	}

	document, err := cmdCtx.LoadDocument(path)
	if err != nil {
		return err
	}

	switch {
	case opts.Check:
		if document.TOCMatches() {
			r.Success("Table of contents is up to date")
			return nil
		}
		r.Errorf("Table of contents is out of date (run 'sqltips toc --write')")
		return fmt.Errorf("table of contents out of date")

	case opts.Write:
		if document.TOCMatches() {
			r.Success("Table of contents already up to date")
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		updated, found, err := doc.RewriteTOC(string(content))
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("no table of contents block found in %s", path)
		}
		if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		r.Success("Updated table of contents in %s", path)
		return nil

	default:
		if r.EffectiveMode() == output.ModeJSON {
			entries := make([]map[string]string, 0, len(document.Sections))
			for _, s := range document.Sections {
				entries = append(entries, map[string]string{
					"heading": s.Heading,
					"anchor":  s.Slug,
				})
			}
			return r.JSON(entries)
		}
		for _, line := range document.GenerateTOC() {
			r.Println(line)
		}
		return nil
	}
}
