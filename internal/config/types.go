package config

// Default values applied before any config file, env var, or flag.
const (
	DefaultDocument  = "README.md"
	DefaultOutput    = "auto"
	DefaultSiteDir   = "site"
	DefaultSitePort  = 8080
	DefaultSiteTitle = "SQL tips and tricks"
)

// Config holds the resolved sqltips configuration.
type Config struct {
	// Document is the path to the tips document.
	Document string `koanf:"document"`

	// OutputFormat selects the renderer mode: auto, text, markdown, json.
	OutputFormat string `koanf:"output"`

	// Verbose enables progress logging.
	Verbose bool `koanf:"verbose"`

	// ProjectRoot is the directory the config was resolved against.
	ProjectRoot string `koanf:"-"`

	Site SiteConfig  `koanf:"site"`
	Lint *LintConfig `koanf:"lint"`
}

// SiteConfig configures the static site generator.
type SiteConfig struct {
	Dir   string `koanf:"dir"`
	Port  int    `koanf:"port"`
	Title string `koanf:"title"`
}

// LintConfig holds lint settings from the config file.
type LintConfig struct {
	// Disabled lists rule IDs to skip.
	Disabled []string `koanf:"disabled"`

	// Severity overrides rule severities, e.g. SC02: error.
	Severity map[string]string `koanf:"severity"`

	// Rules holds rule-specific options keyed by rule ID.
	Rules map[string]map[string]any `koanf:"rules"`
}
