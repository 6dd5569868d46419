// ABOUTME: Configuration loading and parsing for devsignals
// ABOUTME: Supports YAML files with environment variable expansion and provider validation

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Provider kinds
const (
	ProviderSQLite = "sqlite"
	ProviderFile   = "file"
	ProviderADB    = "adb"
)

// Config represents the complete devsignals configuration
type Config struct {
	Provider ProviderConfig `yaml:"provider"`
	Platform PlatformConfig `yaml:"platform"`
	Logging  LoggingConfig  `yaml:"logging"`
	Output   OutputConfig   `yaml:"output"`
}

// ProviderConfig selects and configures the settings provider
type ProviderConfig struct {
	Kind    string `yaml:"kind"`     // sqlite, file, adb
	Driver  string `yaml:"driver"`   // sqlite only: "sqlite" (pure Go) or "sqlite3" (cgo)
	Path    string `yaml:"path"`     // database or dump file
	ADBPath string `yaml:"adb_path"` // adb only
	Serial  string `yaml:"serial"`   // adb only
}

// PlatformConfig describes the host platform
type PlatformConfig struct {
	// APILevel overrides the platform version. Zero means ask the provider
	// (adb) or treat every signal as supported.
	APILevel int `yaml:"api_level"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// OutputConfig controls how snapshots are printed
type OutputConfig struct {
	Format string `yaml:"format"` // text, json, yaml
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Provider: ProviderConfig{
			Kind:   ProviderADB,
			Driver: "sqlite",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
		Output: OutputConfig{
			Format: "text",
		},
	}
}

// Load reads a configuration file from the given path and returns a parsed,
// validated Config. See Parse for the parsing rules.
func Load(path string) (*Config, error) {
	cfg, err := Parse(path)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Parse reads a configuration file without validating it, so callers can
// complete it (for example from command-line flags) before calling Validate.
// Environment variables in the format ${VAR_NAME} are expanded. Fields missing
// from the file keep the values from Default.
func Parse(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the raw YAML content
	expandedData := expandEnvVars(string(data))

	cfg := Default()
	if err := yaml.Unmarshal([]byte(expandedData), cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}

// Path returns the config file location.
// Priority: DEVSIGNALS_CONFIG env var > XDG_CONFIG_HOME/devsignals/config.yaml > ~/.config/devsignals/config.yaml
func Path() string {
	if envPath := os.Getenv("DEVSIGNALS_CONFIG"); envPath != "" {
		return envPath
	}

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.yaml"
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configDir, "devsignals", "config.yaml")
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars replaces ${VAR_NAME} patterns with the corresponding environment variable values.
// If the environment variable is not set, it is replaced with an empty string.
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}

// Validate checks that all required configuration fields are present and valid.
// Returns an error describing the first validation failure encountered.
func (c *Config) Validate() error {
	switch c.Provider.Kind {
	case ProviderSQLite:
		if c.Provider.Path == "" {
			return fmt.Errorf("provider.path is required for the sqlite provider")
		}
		if c.Provider.Driver != "sqlite" && c.Provider.Driver != "sqlite3" {
			return fmt.Errorf("provider.driver must be sqlite or sqlite3, got %q", c.Provider.Driver)
		}
	case ProviderFile:
		if c.Provider.Path == "" {
			return fmt.Errorf("provider.path is required for the file provider")
		}
		switch strings.ToLower(filepath.Ext(c.Provider.Path)) {
		case ".yaml", ".yml", ".toml":
		default:
			return fmt.Errorf("provider.path must be a .yaml, .yml or .toml file")
		}
	case ProviderADB:
	default:
		return fmt.Errorf("provider.kind must be sqlite, file or adb, got %q", c.Provider.Kind)
	}

	if c.Platform.APILevel < 0 {
		return fmt.Errorf("platform.api_level must not be negative")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}

	switch c.Output.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("output.format must be text, json or yaml, got %q", c.Output.Format)
	}

	return nil
}
