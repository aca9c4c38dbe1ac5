package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/marcus/retro/internal/models"
)

const configFile = ".retro/config.json"

// Display defaults
const (
	DefaultDensity        = "compact"
	DefaultBreakpointCols = 100
)

// Config holds per-timeline settings stored alongside the database.
type Config struct {
	// Author is the display name attached to new comments.
	Author string `json:"author,omitempty"`

	// SpecialKeywords overrides the default milestone keyword list used
	// for special classification in story mode.
	SpecialKeywords []string `json:"special_keywords,omitempty"`

	// Density selects story card sizing: "compact" or "comfortable".
	Density string `json:"density,omitempty"`

	// BreakpointCols is the terminal width below which story mode renders
	// the vertical accordion instead of the horizontal track.
	BreakpointCols int `json:"breakpoint_cols,omitempty"`

	// DefaultSort is the feed's initial sort direction.
	DefaultSort models.Sort `json:"default_sort,omitempty"`
}

// Load reads the config from disk
func Load(baseDir string) (*Config, error) {
	configPath := filepath.Join(baseDir, configFile)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the config to disk using atomic write (temp file + rename)
func Save(baseDir string, cfg *Config) error {
	configPath := filepath.Join(baseDir, configFile)

	// Ensure directory exists
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}

	// Atomic write: temp file in same dir, then rename
	tmp, err := os.CreateTemp(dir, "config-*.json.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmpPath, configPath)
}

// Density returns the configured story density or the default.
func (c *Config) DensityOrDefault() string {
	if c.Density == "comfortable" {
		return "comfortable"
	}
	return DefaultDensity
}

// BreakpointOrDefault returns the configured breakpoint or the default.
func (c *Config) BreakpointOrDefault() int {
	if c.BreakpointCols > 0 {
		return c.BreakpointCols
	}
	return DefaultBreakpointCols
}

// SortOrDefault returns the configured default sort or ascending.
func (c *Config) SortOrDefault() models.Sort {
	if c.DefaultSort == models.SortDesc {
		return models.SortDesc
	}
	return models.SortAsc
}

// AuthorOrDefault returns the configured comment author or "Você".
func (c *Config) AuthorOrDefault() string {
	if c.Author != "" {
		return c.Author
	}
	return "Você"
}
