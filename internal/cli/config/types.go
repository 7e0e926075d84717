// Package config loads cmdbmap configuration from file, environment, and
// flags. Precedence (highest first): flags > environment > config file >
// defaults.
package config

import (
	"fmt"

	"github.com/edgewise-labs/cmdbmap/internal/cli/output"
	"github.com/edgewise-labs/cmdbmap/internal/pathfind"
)

// Config holds all cmdbmap settings.
type Config struct {
	DataDir         string   `koanf:"data_dir"`
	TablesFile      string   `koanf:"tables_file"`
	RelTypesFile    string   `koanf:"rel_types_file"`
	PackagesFile    string   `koanf:"packages_file"`
	SuggestionFiles []string `koanf:"suggestion_files"`
	MaxPaths        int      `koanf:"max_paths"`
	MaxLen          int      `koanf:"max_len"`
	OutputFormat    string   `koanf:"output"`
	Verbose         bool     `koanf:"verbose"`
}

// Default configuration values.
const (
	DefaultDataDir = "."
	DefaultOutput  = string(output.ModeAuto)
)

// ApplyDefaults fills zero-valued fields. File name defaults live in the
// loader package; zero max bounds fall back to the pathfind defaults.
func (c *Config) ApplyDefaults() {
	if c.DataDir == "" {
		c.DataDir = DefaultDataDir
	}
	if c.MaxPaths == 0 {
		c.MaxPaths = pathfind.DefaultMaxPaths
	}
	if c.MaxLen == 0 {
		c.MaxLen = pathfind.DefaultMaxLen
	}
	if c.OutputFormat == "" {
		c.OutputFormat = DefaultOutput
	}
}

// Validate rejects settings the commands cannot work with.
func (c *Config) Validate() error {
	if c.MaxPaths < 0 {
		return fmt.Errorf("max_paths must not be negative, got %d", c.MaxPaths)
	}
	if c.MaxLen < 0 {
		return fmt.Errorf("max_len must not be negative, got %d", c.MaxLen)
	}
	switch output.Mode(c.OutputFormat) {
	case output.ModeAuto, output.ModeText, output.ModeMarkdown, output.ModeJSON:
	default:
		return fmt.Errorf("unknown output format %q (valid: auto, text, markdown, json)", c.OutputFormat)
	}
	return nil
}
