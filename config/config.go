package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"jonnyzzz.com/nerdfonts/download"
	"jonnyzzz.com/nerdfonts/fonterror"
	"jonnyzzz.com/nerdfonts/layout"
	"jonnyzzz.com/nerdfonts/logging"
)

// Options carries the global command line flags
type Options struct {
	Prefix     string
	ConfigFile string
	Verbosity  int
	Version    string
}

// Resolve builds the Config: flags win over environment, environment wins
// over config.yaml, config.yaml wins over defaults
func (o *Options) Resolve() (*Config, error) {
	prefix, err := ResolvePrefix(o.Prefix)
	if err != nil {
		return nil, fonterror.Wrap(err, fonterror.LoadConfig, "failed to resolve prefix directory")
	}

	cfg := &Config{
		Prefix:     prefix,
		BaseURL:    download.DefaultBaseURL,
		Format:     layout.FormatZip,
		BufferSize: download.DefaultBufferSize,
		Timeout:    download.DefaultTimeout,
		UserAgent:  "nerdfonts/" + o.Version,
	}

	configPath, err := o.configPath(prefix)
	if err != nil {
		return nil, err
	}

	logger := logging.GetLogger("config")

	if configPath != "" {
		section, err := ReadSection(configPath)
		switch {
		case errors.Is(err, ErrSectionNotFound):
			logger.Debug().Str("path", configPath).Msg("No nerdfonts section, using defaults")
		case err != nil:
			return nil, fonterror.Wrap(err, fonterror.LoadConfig, "failed to load %s", configPath)
		default:
			if err := cfg.apply(section); err != nil {
				return nil, fonterror.Wrap(err, fonterror.LoadConfig, "invalid configuration in %s", configPath)
			}
			cfg.ConfigPath = configPath
		}
	}

	if baseURL := os.Getenv(EnvBaseURL); baseURL != "" {
		if err := validateBaseURL(baseURL); err != nil {
			return nil, fonterror.Wrap(err, fonterror.LoadConfig, "invalid %s", EnvBaseURL)
		}
		cfg.BaseURL = baseURL
	}

	logger.Debug().Str("config", cfg.String()).Msg("Configuration resolved")
	return cfg, nil
}

func (o *Options) configPath(prefix string) (string, error) {
	explicit := o.ConfigFile
	if explicit == "" {
		explicit = os.Getenv(EnvConfig)
	}
	if explicit == "" {
		return FindConfigFile(ConfigFileCandidates(prefix)), nil
	}

	if _, err := os.Stat(explicit); err != nil {
		return "", fonterror.Wrap(err, fonterror.LoadConfig, "configuration file %s is not accessible", explicit)
	}
	return explicit, nil
}

func (c *Config) apply(section *Section) error {
	if section.BaseURL != "" {
		if err := validateBaseURL(section.BaseURL); err != nil {
			return err
		}
		c.BaseURL = section.BaseURL
	}

	if section.Format != "" {
		format, err := layout.ParseArchiveFormat(section.Format)
		if err != nil {
			return err
		}
		c.Format = format
	}

	if section.BufferSize < 0 {
		return fmt.Errorf("buffer_size must not be negative, got %d", section.BufferSize)
	}
	if section.BufferSize > 0 {
		c.BufferSize = section.BufferSize
	}

	if section.Timeout != "" {
		timeout, err := time.ParseDuration(section.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", section.Timeout, err)
		}
		c.Timeout = timeout
	}

	if section.UserAgent != "" {
		c.UserAgent = section.UserAgent
	}
	c.RefreshFontCache = section.RefreshFontCache
	return nil
}

// Validate checks the section the same way Resolve does
func (s *Section) Validate() error {
	return (&Config{}).apply(s)
}

func validateBaseURL(value string) error {
	u, err := url.Parse(value)
	if err != nil {
		return fmt.Errorf("invalid base_url %q: %w", value, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base_url %q must be an http or https URL", value)
	}
	return nil
}
