// Package config loads the taskcard YAML configuration
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names an explicit config file, overriding the XDG lookup
const EnvConfigPath = "TASKCARD_CONFIG"

// Config represents the application configuration
type Config struct {
	DatabasePath string `yaml:"database_path"`
	LogPath      string `yaml:"log_path"`
	LogLevel     string `yaml:"log_level"`
	// StringsFile is an optional YAML string table merged over the defaults
	StringsFile string `yaml:"strings_file"`

	Render      RenderConfig `yaml:"render"`
	Server      ServerConfig `yaml:"server"`
	KeyMappings KeyMappings  `yaml:"key_mappings"`
	ColorScheme ColorScheme  `yaml:"theme"`

	// path the config was loaded from, "" when defaults were used
	path string
}

// RenderConfig controls description rendering
type RenderConfig struct {
	Sanitize       bool   `yaml:"sanitize"`
	HighlightStyle string `yaml:"highlight_style"`
	UnsafeHTML     bool   `yaml:"unsafe_html"`
}

// ServerConfig controls the HTTP surface
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load loads config from TASKCARD_CONFIG or the user's config directory.
// Returns default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		// Return default config if we can't determine config path
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads config from path. A missing file yields the defaults.
func LoadFile(path string) (*Config, error) {
	// Check if config file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := Default()
		cfg.path = path
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	// Fill in any missing values with defaults
	config.applyDefaults()
	config.path = path

	return &config, nil
}

// Path returns the file the config belongs to
func (c *Config) Path() string {
	return c.path
}

// Save writes the config back to the file it was loaded from, or to the
// user's config directory
func (c *Config) Save() error {
	configPath := c.path
	if configPath == "" {
		p, err := getConfigPath()
		if err != nil {
			return err
		}
		configPath = p
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	if explicit := os.Getenv(EnvConfigPath); explicit != "" {
		return explicit, nil
	}

	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "taskcard", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "taskcard", "config.yaml"), nil
}

// dataDir is where the database and log live by default
func dataDir() string {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, "taskcard")
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".taskcard")
	}
	return ".taskcard"
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.DatabasePath == "" {
		c.DatabasePath = filepath.Join(dataDir(), "taskcard.db")
	}
	if c.LogPath == "" {
		c.LogPath = filepath.Join(dataDir(), "logs", "taskcard.log")
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Render.HighlightStyle == "" {
		c.Render.HighlightStyle = "github"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = "127.0.0.1:8080"
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
