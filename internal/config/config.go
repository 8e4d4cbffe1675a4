package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the default configuration file name, looked up in the
// current working directory.
const ConfigFile = ".comlang.yaml"

// Config represents the scanner configuration
type Config struct {
	Version int          `yaml:"version"`
	Search  SearchConfig `yaml:"search"`
	Detect  DetectConfig `yaml:"detect"`
	Report  ReportConfig `yaml:"report"`
	Exclude []string     `yaml:"exclude,omitempty"`
}

// SearchConfig holds search tool configuration
type SearchConfig struct {
	Tool    string `yaml:"tool"`
	Pattern string `yaml:"pattern"`
	Timeout int    `yaml:"timeout,omitempty"`
}

// DetectConfig holds language detection options
type DetectConfig struct {
	// Languages is the candidate set for classification, as ISO 639-1 codes.
	// Detection picks the most likely candidate, so a larger set is slower
	// but less prone to false positives.
	Languages []string `yaml:"languages"`
	// MinLength is the minimum comment text length (in runes) worth
	// classifying. Shorter comments are skipped entirely.
	MinLength int `yaml:"min_length"`
}

// ReportConfig holds reporting options
type ReportConfig struct {
	// Language is the code whose comments are printed in full.
	Language string `yaml:"language"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: 1,
		Search: SearchConfig{
			Tool:    "rg",
			Pattern: "//",
		},
		Detect: DetectConfig{
			Languages: []string{"en", "es", "fr", "de", "it", "pt"},
			MinLength: 4,
		},
		Report: ReportConfig{
			Language: "es",
		},
		Exclude: []string{"vendor/**", "node_modules/**", ".git/**"},
	}
}

// Load loads the configuration from the given path. An empty path means
// ./.comlang.yaml; if that implicit file is missing the defaults are
// returned. An explicit path that is missing is an error.
func Load(path string) (*Config, error) {
	implicit := path == ""
	if implicit {
		path = ConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && implicit {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Apply defaults for missing values
	cfg.applyDefaults()

	return &cfg, nil
}

// applyDefaults fills in missing configuration with sensible defaults
func (c *Config) applyDefaults() {
	defaults := Default()

	if c.Search.Tool == "" {
		c.Search.Tool = defaults.Search.Tool
	}

	if c.Search.Pattern == "" {
		c.Search.Pattern = defaults.Search.Pattern
	}

	if len(c.Detect.Languages) == 0 {
		c.Detect.Languages = defaults.Detect.Languages
	}

	if c.Detect.MinLength == 0 {
		c.Detect.MinLength = defaults.Detect.MinLength
	}

	if c.Report.Language == "" {
		c.Report.Language = defaults.Report.Language
	}
}

// Save saves the configuration to the given path
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate checks the configuration for structural problems. Whether the
// language codes name detectable languages is decided when the detector
// is built, not here.
func (c *Config) Validate() error {
	if c.Search.Pattern == "" {
		return fmt.Errorf("search.pattern must not be empty")
	}
	if c.Search.Timeout < 0 {
		return fmt.Errorf("search.timeout must not be negative")
	}
	if len(c.Detect.Languages) < 2 {
		return fmt.Errorf("detect.languages needs at least 2 entries, got %d", len(c.Detect.Languages))
	}
	if c.Detect.MinLength < 1 {
		return fmt.Errorf("detect.min_length must be at least 1, got %d", c.Detect.MinLength)
	}
	if !c.HasLanguage(c.Report.Language) {
		return fmt.Errorf("report.language %q is not in detect.languages", c.Report.Language)
	}
	return nil
}

// HasLanguage checks if a code is in the configured candidate set
func (c *Config) HasLanguage(code string) bool {
	for _, l := range c.Detect.Languages {
		if strings.EqualFold(l, code) {
			return true
		}
	}
	return false
}
