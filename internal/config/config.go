// Package config holds the application configuration for docforge: where
// templates, manifests, and generated documentation live, where the master
// index is written, and how logging behaves.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	founderr "git.home.luguber.info/inful/docforge/internal/foundation/errors"
)

// Config represents the application configuration.
type Config struct {
	Templates TemplatesConfig `yaml:"templates"`
	Manifests ManifestsConfig `yaml:"manifests"`
	Output    OutputConfig    `yaml:"output"`
	Index     IndexConfig     `yaml:"index"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// TemplatesConfig locates the shared templates root. Template references in
// manifests that are neither absolute nor parent-relative resolve against it.
type TemplatesConfig struct {
	Directory string `yaml:"directory"`
}

// ManifestsConfig locates generation manifests. The installed directory wins
// over the development directory when it exists.
type ManifestsConfig struct {
	Installed   string `yaml:"installed"`
	Development string `yaml:"development"`
}

// OutputConfig locates the documentation output root. Output path patterns
// from manifests resolve against it.
type OutputConfig struct {
	Directory string `yaml:"directory"`
}

// IndexConfig locates the master index document and its template.
type IndexConfig struct {
	Path         string `yaml:"path"`
	TemplatePath string `yaml:"template_path"`
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load loads configuration from the specified file. A missing file yields
// the defaults so the CLI works in an unconfigured checkout; a present but
// unparsable file is an error.
func Load(configPath string) (*Config, error) {
	// Load .env if present so ${VAR} expansion below can see it.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Note: .env file couldn't be loaded: %v\n", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, founderr.WrapError(err, founderr.CategoryConfig, "read config file").
			WithContext("path", configPath).Build()
	}

	expanded := os.ExpandEnv(string(data))
	cfg := Default()
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, founderr.WrapError(err, founderr.CategoryConfig, "parse config file").
			WithContext("path", configPath).Build()
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Templates.Directory == "" {
		c.Templates.Directory = "templates"
	}
	if c.Manifests.Installed == "" {
		c.Manifests.Installed = ".docforge/manifests"
	}
	if c.Manifests.Development == "" {
		c.Manifests.Development = "manifests"
	}
	if c.Output.Directory == "" {
		c.Output.Directory = "docs"
	}
	if c.Index.Path == "" {
		c.Index.Path = "docs/MASTER_INDEX.md"
	}
	if c.Index.TemplatePath == "" {
		c.Index.TemplatePath = "templates/master-index.md"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}
