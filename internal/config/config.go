// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/workforce-directory/internal/types"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags.
type Config struct {
	// DatasetDir is the directory holding the exported collection files.
	DatasetDir string `json:"dataset_dir,omitempty"`
	// Region is the default region facet applied when no --region flag is given.
	Region string `json:"region,omitempty"`
	// Today overrides the reference date (YYYY-MM-DD) used for day-difference
	// labels, making output reproducible.
	Today string `json:"today,omitempty"`
	// Verbose prints detailed formatted output.
	Verbose bool `json:"verbose,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Today != "" {
		if _, err := types.ParseDate(c.Today); err != nil {
			return fmt.Errorf("config error: 'today' must be YYYY-MM-DD: %w", err)
		}
	}

	if c.DatasetDir != "" {
		info, err := os.Stat(c.DatasetDir)
		if os.IsNotExist(err) {
			return fmt.Errorf("config error: dataset directory not found: %s", c.DatasetDir)
		}
		if err == nil && !info.IsDir() {
			return fmt.Errorf("config error: dataset path is not a directory: %s", c.DatasetDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DatasetDir == "" {
		result.DatasetDir = defaults.DatasetDir
	}
	if result.Region == "" {
		result.Region = defaults.Region
	}
	if result.Today == "" {
		result.Today = defaults.Today
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
