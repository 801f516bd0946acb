// Package config loads the attrdoc configuration file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	// Catalogs lists glob patterns for additional catalog files.
	// The built-in bibliographic-fields catalog is always loaded first.
	Catalogs []string      `yaml:"catalogs,omitempty"`
	Title    string        `yaml:"title,omitempty"`
	Output   OutputConfig  `yaml:"output"`
	Preview  PreviewConfig `yaml:"preview,omitempty"`
	History  HistoryConfig `yaml:"history,omitempty"`
}

// OutputConfig controls where and how generated documentation is written.
type OutputConfig struct {
	Directory string `yaml:"directory"`
	Format    string `yaml:"format,omitempty"`   // "rst" (default) or "markdown"
	Filename  string `yaml:"filename,omitempty"` // basename without extension
}

// PreviewConfig controls the preview server.
type PreviewConfig struct {
	Listen          string `yaml:"listen,omitempty"`
	RefreshInterval string `yaml:"refresh_interval,omitempty"` // Go duration string, e.g. "5m"
	Metrics         bool   `yaml:"metrics,omitempty"`
}

// RefreshIntervalDuration parses the configured refresh interval.
func (p PreviewConfig) RefreshIntervalDuration() (time.Duration, error) {
	d, err := time.ParseDuration(p.RefreshInterval)
	if err != nil {
		return 0, fmt.Errorf("invalid preview refresh_interval %q: %w", p.RefreshInterval, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("preview refresh_interval must be positive, got %q", p.RefreshInterval)
	}
	return d, nil
}

// HistoryConfig controls the generation-history store.
type HistoryConfig struct {
	Path string `yaml:"path,omitempty"` // SQLite database path; empty disables history
}

// Load loads configuration from the specified file. Environment
// variables referenced in the YAML are expanded; a .env or .env.local
// file next to the working directory is loaded first so catalogs can
// be parameterized without exporting anything.
func Load(configPath string) (*Config, error) {
	loadEnvFiles()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}
	data, err := os.ReadFile(configPath) // #nosec G304 -- operator-supplied config path
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Title == "" {
		c.Title = "Bibliographic Fields Attribute Sets"
	}
	if c.Output.Directory == "" {
		c.Output.Directory = "./docs"
	}
	if c.Output.Format == "" {
		c.Output.Format = "rst"
	}
	if c.Output.Filename == "" {
		c.Output.Filename = "attribute-sets"
	}
	if c.Preview.Listen == "" {
		c.Preview.Listen = ":8080"
	}
	if c.Preview.RefreshInterval == "" {
		c.Preview.RefreshInterval = "5m"
	}
	if c.History.Path == "" {
		c.History.Path = "./attrdoc-history.db"
	}
}

// loadEnvFiles loads .env files if present. Missing files are fine.
func loadEnvFiles() {
	for _, envPath := range []string{".env", ".env.local"} {
		if _, err := os.Stat(envPath); err != nil {
			continue
		}
		if err := godotenv.Load(envPath); err != nil {
			fmt.Fprintf(os.Stderr, "Note: could not load %s: %v\n", envPath, err)
			continue
		}
		fmt.Fprintf(os.Stderr, "Loaded environment variables from %s\n", envPath)
	}
}

const exampleConfig = `# attrdoc configuration
#
# Additional catalog files to merge over the built-in
# bibliographic-fields catalog. Doublestar globs are supported.
catalogs:
  - catalogs/**/*.yaml

title: Bibliographic Fields Attribute Sets

output:
  directory: ./docs
  format: rst # or markdown
  filename: attribute-sets

preview:
  listen: :8080
  refresh_interval: 5m
  metrics: true

history:
  path: ./attrdoc-history.db
`

// Init creates a new configuration file with example content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}
	if err := os.WriteFile(configPath, []byte(exampleConfig), 0o600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
