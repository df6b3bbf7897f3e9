package commands

import (
	"github.com/pawelkonior/SQL-tips-and-tricks/internal/site"
	"github.com/spf13/cobra"
)

// SiteOptions holds options for the site command.
type SiteOptions struct {
	Out   string // Output directory
	Port  int    // Port for serve
	Title string // Site title override
	Watch bool   // Watch mode with live reload
}

// NewSiteCommand creates the site command with build and serve
// subcommands.
func NewSiteCommand() *cobra.Command {
	opts := &SiteOptions{}
	cmd := &cobra.Command{
		Use:   "site",
		Short: "Build or serve a browsable site from the document",
		Long: `Generate a static site from the tips document.

The site contains an index of all tips, one page per tip, and a JSON
catalog of the parsed document under data/catalog.json.`,
	}

	buildCmd := &cobra.Command{
		Use:   "build [document]",
		Short: "Generate the static site",
		Example: `  # Build the site into ./site
  sqltips site build

  # Build into a custom directory
  sqltips site build --out public`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return runSiteBuild(cmd, path, opts)
		},
	}
	buildCmd.Flags().StringVar(&opts.Out, "out", "", "Output directory (default: site.dir from config)")
	buildCmd.Flags().StringVar(&opts.Title, "title", "", "Site title (default: document title)")

	serveCmd := &cobra.Command{
		Use:   "serve [document]",
		Short: "Serve the site over HTTP",
		Example: `  # Build and serve on the configured port
  sqltips site serve

  # Serve with live reload on document changes
  sqltips site serve --watch

  # Serve on a custom port
  sqltips site serve --port 3000`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) > 0 {
				path = args[0]
			}
			return runSiteServe(cmd, path, opts)
		},
	}
	serveCmd.Flags().StringVar(&opts.Out, "out", "", "Output directory (default: site.dir from config)")
	serveCmd.Flags().IntVar(&opts.Port, "port", 0, "Port to serve on (default: site.port from config)")
	serveCmd.Flags().StringVar(&opts.Title, "title", "", "Site title (default: document title)")
	serveCmd.Flags().BoolVar(&opts.Watch, "watch", false, "Rebuild and reload on document changes")

	cmd.AddCommand(buildCmd)
	cmd.AddCommand(serveCmd)
	return cmd
}

func (o *SiteOptions) resolve(cmdCtx *CommandContext) (out string, port int, title string) {
	out = o.Out
	if out == "" {
		out = cmdCtx.Cfg.Site.Dir
	}
	port = o.Port
	if port == 0 {
		port = cmdCtx.Cfg.Site.Port
	}
	title = o.Title
	if title == "" {
		title = cmdCtx.Cfg.Site.Title
	}
	return out, port, title
}

func runSiteBuild(cmd *cobra.Command, path string, opts *SiteOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	document, err := cmdCtx.LoadDocument(path)
	if err != nil {
		return err
	}

	out, _, title := opts.resolve(cmdCtx)
	gen := site.NewGenerator(document, title)
	if err := gen.Build(out); err != nil {
		return err
	}

	r.Success("Built site with %d tips in %s", len(document.Sections), out)
	return nil
}

func runSiteServe(cmd *cobra.Command, path string, opts *SiteOptions) error {
	cmdCtx := NewCommandContext(cmd)

	if path == "" {
		path = cmdCtx.Cfg.Document
	}
	out, port, title := opts.resolve(cmdCtx)

	if opts.Watch {
		return site.ServeDev(path, title, port)
	}

	document, err := cmdCtx.LoadDocument(path)
	if err != nil {
		return err
	}
	gen := site.NewGenerator(document, title)
	return gen.Serve(out, port)
}
