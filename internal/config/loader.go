package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const (
	// EnvPrefix is the prefix for environment variable overrides,
	// e.g. SQLTIPS_DOCUMENT or SQLTIPS_SITE_PORT.
	EnvPrefix = "SQLTIPS_"

	configFileName = "sqltips"

	// maxSearchDepth bounds the upward directory walk when looking
	// for a config file.
	maxSearchDepth = 8
)

var configExtensions = []string{".yaml", ".yml"}

// Package-level state so commands can reach the loaded config without
// threading it through every call site.
var (
	currentConfig  *Config
	configFileUsed string
)

// GetCurrentConfig returns the most recently loaded config, or nil.
func GetCurrentConfig() *Config { return currentConfig }

// GetConfigFileUsed returns the path of the loaded config file, or "".
func GetConfigFileUsed() string { return configFileUsed }

// Reset clears the package-level config state. Intended for tests.
func Reset() {
	currentConfig = nil
	configFileUsed = ""
}

// Load resolves configuration with the precedence
// defaults < config file < environment < flags.
//
// cfgFile, when non-empty, names an explicit config file and disables
// the upward search. flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	path, err := resolveConfigFile(cfgFile)
	if err != nil {
		return nil, err
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return nil, fmt.Errorf("loading flags: %w", err)
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if path != "" {
		cfg.ProjectRoot = filepath.Dir(path)
	} else {
		cfg.ProjectRoot, _ = os.Getwd()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	currentConfig = cfg
	configFileUsed = path
	return cfg, nil
}

// resolveConfigFile returns the config file to load, or "" when none
// exists. An explicit path must exist; a searched path is optional.
func resolveConfigFile(cfgFile string) (string, error) {
	if cfgFile != "" {
		if _, err := os.Stat(cfgFile); err != nil {
			return "", fmt.Errorf("config file %s: %w", cfgFile, err)
		}
		return cfgFile, nil
	}

	dir, err := os.Getwd()
	if err != nil {
		return "", nil
	}
	for i := 0; i < maxSearchDepth; i++ {
		for _, ext := range configExtensions {
			candidate := filepath.Join(dir, configFileName+ext)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", nil
}

func defaults() map[string]any {
	return map[string]any{
		"document":   DefaultDocument,
		"output":     DefaultOutput,
		"verbose":    false,
		"site.dir":   DefaultSiteDir,
		"site.port":  DefaultSitePort,
		"site.title": DefaultSiteTitle,
	}
}

// Validate checks cross-field constraints after loading.
func (c *Config) Validate() error {
	switch c.OutputFormat {
	case "", "auto", "text", "markdown", "json":
	default:
		return fmt.Errorf("invalid output format %q (want auto, text, markdown or json)", c.OutputFormat)
	}
	if c.Site.Port < 0 || c.Site.Port > 65535 {
		return fmt.Errorf("invalid site port %d", c.Site.Port)
	}
	if c.Document == "" {
		return fmt.Errorf("document path must not be empty")
	}
	return nil
}
