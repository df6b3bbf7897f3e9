package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadDefaults(t *testing.T) {
	Reset()
	chdir(t, t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultDocument, cfg.Document)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, DefaultSiteDir, cfg.Site.Dir)
	assert.Equal(t, DefaultSitePort, cfg.Site.Port)
	assert.Equal(t, DefaultSiteTitle, cfg.Site.Title)
	assert.Empty(t, GetConfigFileUsed())
}

func TestLoadConfigFile(t *testing.T) {
	Reset()
	dir := t.TempDir()
	content := `document: docs/tips.md
output: json
site:
  port: 9000
lint:
  disabled:
    - SC02
  severity:
    TC03: error
  rules:
    TC04:
      expected_sections: 11
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sqltips.yaml"), []byte(content), 0600))
	chdir(t, dir)

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "docs/tips.md", cfg.Document)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, 9000, cfg.Site.Port)
	assert.Equal(t, DefaultSiteDir, cfg.Site.Dir, "unset keys keep defaults")

	require.NotNil(t, cfg.Lint)
	assert.Equal(t, []string{"SC02"}, cfg.Lint.Disabled)
	assert.Equal(t, "error", cfg.Lint.Severity["TC03"])
	assert.Equal(t, 11, cfg.Lint.Rules["TC04"]["expected_sections"])

	assert.Equal(t, filepath.Join(dir, "sqltips.yaml"), GetConfigFileUsed())
}

func TestLoadUpwardSearch(t *testing.T) {
	Reset()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "sqltips.yml"), []byte("document: found.md\n"), 0600))

	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0750))
	chdir(t, nested)

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "found.md", cfg.Document)
	assert.Equal(t, root, cfg.ProjectRoot)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	Reset()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sqltips.yaml"), []byte("document: from-file.md\n"), 0600))
	chdir(t, dir)
	t.Setenv("SQLTIPS_DOCUMENT", "from-env.md")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "from-env.md", cfg.Document)
}

func TestLoadEnvNestedKey(t *testing.T) {
	Reset()
	chdir(t, t.TempDir())
	t.Setenv("SQLTIPS_SITE_PORT", "1234")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 1234, cfg.Site.Port)
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	Reset()
	chdir(t, t.TempDir())
	t.Setenv("SQLTIPS_DOCUMENT", "from-env.md")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("document", "", "")
	flags.String("output", "", "")
	flags.Bool("verbose", false, "")
	require.NoError(t, flags.Parse([]string{"--document", "from-flag.md"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "from-flag.md", cfg.Document)
}

func TestLoadExplicitConfigFileMissing(t *testing.T) {
	Reset()
	chdir(t, t.TempDir())

	_, err := Load("no-such-file.yaml", nil)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(_ *Config) {}, false},
		{"bad output", func(c *Config) { c.OutputFormat = "csv" }, true},
		{"bad port", func(c *Config) { c.Site.Port = 70000 }, true},
		{"empty document", func(c *Config) { c.Document = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Document:     DefaultDocument,
				OutputFormat: "auto",
				Site:         SiteConfig{Port: 8080},
			}
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
