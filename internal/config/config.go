// =============================================================================
// Budget & Actual Validator - Configuration Module
// =============================================================================
//
// This module loads and validates the run configuration. A run configuration
// captures everything the original interactive controls exposed: numeric
// tolerance, fuzzy-match threshold, header policy, the column mapping for the
// left and right sides, and an optional row range.
//
// LOADING STRATEGY:
//   Defaults are applied first, then the YAML file (if any) is unmarshalled
//   over them. A value that is absent from the file keeps its default, while
//   an explicit zero in the file (for example tolerance: 0) is respected.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURES
// =============================================================================

// Config holds the full configuration for one validation run.
type Config struct {
	// Tolerance is the maximum absolute numeric difference for two values
	// to still count as agreeing. Must be >= 0.
	Tolerance float64 `yaml:"tolerance"`

	// FuzzyThreshold is the minimum similarity score for a fuzzy name match
	// to be accepted. Must be in [0, 1]. The boundary is inclusive: a
	// candidate scoring exactly at the threshold is accepted.
	FuzzyThreshold float64 `yaml:"fuzzy_threshold"`

	// AutoDetectHeader controls whether the header row heuristic runs at all.
	AutoDetectHeader bool `yaml:"auto_detect_header"`

	// Columns maps the six column roles onto 0-based grid column indices.
	Columns Columns `yaml:"columns"`

	// Rows restricts which left-side rows are checked. The right-side index
	// always covers the whole grid.
	Rows Rows `yaml:"rows"`

	// Sheet is the workbook sheet to read. Empty selects the first sheet.
	Sheet string `yaml:"sheet"`

	// OutputDir is where the mismatch CSV export is written.
	OutputDir string `yaml:"output_dir"`

	// ShowAll lists every result instead of only attention-needing ones.
	ShowAll bool `yaml:"show_all"`

	// LogLevel controls logging verbosity: "debug", "info", "warn", "error".
	LogLevel string `yaml:"log_level"`
}

// Columns assigns a 0-based grid column index to each of the six roles.
// Any layout is valid as long as every index exists in the grid; the indices
// are checked against the loaded grid before a run starts.
type Columns struct {
	LeftName    int `yaml:"left_name"`
	LeftBudget  int `yaml:"left_budget"`
	LeftActual  int `yaml:"left_actual"`
	RightName   int `yaml:"right_name"`
	RightBudget int `yaml:"right_budget"`
	RightActual int `yaml:"right_actual"`
}

// List returns the six column indices in a fixed order. Used for range
// validation and for the header detection heuristic.
func (c Columns) List() []int {
	return []int{
		c.LeftName, c.LeftBudget, c.LeftActual,
		c.RightName, c.RightBudget, c.RightActual,
	}
}

// Rows is an optional row-range restriction on the left side.
// End == -1 means "through the last row".
type Rows struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the configuration used when no file or flags override it.
// The column layout matches the common report shape: left block in columns
// A-C, a spacer, right block in columns E-G.
func Default() Config {
	return Config{
		Tolerance:        0.01,
		FuzzyThreshold:   0.60,
		AutoDetectHeader: true,
		Columns: Columns{
			LeftName:    0,
			LeftBudget:  1,
			LeftActual:  2,
			RightName:   4,
			RightBudget: 5,
			RightActual: 6,
		},
		Rows: Rows{
			Start: 0,
			End:   -1,
		},
		Sheet:     "",
		OutputDir: "./output",
		ShowAll:   false,
		LogLevel:  "info",
	}
}

// =============================================================================
// LOADING
// =============================================================================

// Load reads a run configuration from a YAML file. An empty path returns the
// defaults unchanged. The result is validated before it is returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks every configuration value that can be checked without the
// grid. Column indices are additionally range-checked against the loaded grid
// when a run starts.
func (c *Config) Validate() error {
	if c.Tolerance < 0 {
		return fmt.Errorf("tolerance must be >= 0, got %v", c.Tolerance)
	}

	if c.FuzzyThreshold < 0 || c.FuzzyThreshold > 1 {
		return fmt.Errorf("fuzzy_threshold must be in [0, 1], got %v", c.FuzzyThreshold)
	}

	for _, idx := range c.Columns.List() {
		if idx < 0 {
			return fmt.Errorf("column indices must be >= 0, got %d", idx)
		}
	}

	if c.Rows.Start < 0 {
		return fmt.Errorf("rows.start must be >= 0, got %d", c.Rows.Start)
	}
	if c.Rows.End < -1 {
		return fmt.Errorf("rows.end must be >= -1, got %d", c.Rows.End)
	}
	if c.Rows.End != -1 && c.Rows.Start > c.Rows.End {
		return fmt.Errorf("rows.start (%d) cannot be greater than rows.end (%d)", c.Rows.Start, c.Rows.End)
	}

	return nil
}
