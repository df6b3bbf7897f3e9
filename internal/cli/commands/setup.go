// Package commands implements the sqltips subcommands.
package commands

import (
	"log/slog"
	"os"

	"github.com/pawelkonior/SQL-tips-and-tricks/internal/cli/output"
	"github.com/pawelkonior/SQL-tips-and-tricks/internal/config"
	"github.com/pawelkonior/SQL-tips-and-tricks/pkg/doc"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the command's context.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.LoggerFrom(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// LoadDocument parses the tips document. An empty path falls back to
// the configured document.
func (cc *CommandContext) LoadDocument(path string) (*doc.Document, error) {
	if path == "" {
		path = cc.Cfg.Document
	}
	cc.Logger.Debug("parsing document", "path", path)
	return doc.ParseFile(path)
}

// getConfig returns the current configuration. It uses
// config.GetCurrentConfig() if available, otherwise falls back to
// environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	return &config.Config{
		Document:     getEnvOrDefault("SQLTIPS_DOCUMENT", config.DefaultDocument),
		OutputFormat: os.Getenv("SQLTIPS_OUTPUT"),
		Verbose:      os.Getenv("SQLTIPS_VERBOSE") == "true",
		Site: config.SiteConfig{
			Dir:   getEnvOrDefault("SQLTIPS_SITE_DIR", config.DefaultSiteDir),
			Port:  config.DefaultSitePort,
			Title: getEnvOrDefault("SQLTIPS_SITE_TITLE", config.DefaultSiteTitle),
		},
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
