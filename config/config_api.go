package config

import (
	"fmt"
	"time"

	"jonnyzzz.com/nerdfonts/layout"
)

// Config is the fully resolved runtime configuration
type Config struct {
	// Prefix is the absolute prefix directory
	Prefix string
	// ConfigPath is the configuration file that was loaded, empty if none
	ConfigPath string

	BaseURL          string
	Format           layout.ArchiveFormat
	BufferSize       int
	Timeout          time.Duration
	UserAgent        string
	RefreshFontCache bool
}

// Layout returns the managed directory layout under Prefix
func (c *Config) Layout() layout.Layout {
	return layout.New(c.Prefix)
}

func (c *Config) String() string {
	return fmt.Sprintf("Prefix: %s, ConfigPath: %s, BaseURL: %s, Format: %s", c.Prefix, c.ConfigPath, c.BaseURL, c.Format)
}

// Section is the nerdfonts section of config.yaml
type Section struct {
	BaseURL          string `yaml:"base_url,omitempty"`
	Format           string `yaml:"format,omitempty"`
	BufferSize       int    `yaml:"buffer_size,omitempty"`
	Timeout          string `yaml:"timeout,omitempty"`
	UserAgent        string `yaml:"user_agent,omitempty"`
	RefreshFontCache bool   `yaml:"refresh_font_cache,omitempty"`
}
