// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"telecom-billing/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Input contains input configuration
	Input InputConfig `json:"input"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// InputConfig contains input-related settings
type InputConfig struct {
	// Path is the usage export read when --input is not given
	Path string `json:"path"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// Path is the summary file written when --output is not given
	Path string `json:"path"`

	// Format is the default output format (csv, json)
	Format string `json:"format"`
}

// Default returns a default configuration.
// The default file names match what the legacy biller hardcoded.
func Default() *Config {
	return &Config{
		Version: "1.0",
		Input: InputConfig{
			Path: "usage.csv",
		},
		Output: OutputConfig{
			Path:   "output.csv",
			Format: "csv",
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns the default config file location
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".telecom-billing.json")
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
