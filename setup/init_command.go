// Package setup prepares a prefix directory for the other commands
package setup

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"jonnyzzz.com/nerdfonts/config"
	"jonnyzzz.com/nerdfonts/fonterror"
	"jonnyzzz.com/nerdfonts/logging"
)

type initCommandConfig struct {
	options          *config.Options
	baseURL          string
	format           string
	timeout          string
	refreshFontCache bool
}

// NewInitCommand creates the init command
func NewInitCommand(options *config.Options) *cobra.Command {
	c := &initCommandConfig{options: options}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the prefix directory and its config.yaml",
		Long: `Create the prefix directory and write the nerdfonts section of
<prefix>/config.yaml (or the file given with --config).

Only the flags given on the command line change an existing configuration.

Examples:
  nerdfonts init
  nerdfonts init --format tar.xz --refresh-font-cache
  nerdfonts --prefix /opt/fonts init --base-url https://mirror.example.com/nerd-fonts
`,
		Args: cobra.NoArgs,
		RunE: c.doTheCommand,
	}
	cmd.Flags().StringVar(&c.baseURL, "base-url", "", "Release download location")
	cmd.Flags().StringVar(&c.format, "format", "", "Archive format: zip or tar.xz")
	cmd.Flags().StringVar(&c.timeout, "timeout", "", "Download timeout, e.g. 5m")
	cmd.Flags().BoolVar(&c.refreshFontCache, "refresh-font-cache", false, "Run fc-cache after fonts change")

	return cmd
}

func (c *initCommandConfig) doTheCommand(cmd *cobra.Command, args []string) error {
	logger := logging.GetLogger("setup")

	prefix, err := config.ResolvePrefix(c.options.Prefix)
	if err != nil {
		return fonterror.Wrap(err, fonterror.LoadConfig, "failed to resolve prefix directory")
	}

	if err := os.MkdirAll(prefix, 0755); err != nil {
		return fonterror.Wrap(err, fonterror.OpenPrefixDirectory, "failed to create %s", prefix)
	}
	cmd.Printf("Initializing nerdfonts in: %s\n", prefix)

	configPath := c.options.ConfigFile
	if configPath == "" {
		configPath = filepath.Join(prefix, "config.yaml")
	}

	section, err := existingSection(configPath, logger)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("base-url") {
		section.BaseURL = c.baseURL
	}
	if flags.Changed("format") {
		section.Format = c.format
	}
	if flags.Changed("timeout") {
		section.Timeout = c.timeout
	}
	if flags.Changed("refresh-font-cache") {
		section.RefreshFontCache = c.refreshFontCache
	}

	if err := section.Validate(); err != nil {
		return fonterror.Wrap(err, fonterror.InvalidArguments, "invalid configuration")
	}

	if err := config.SaveSection(configPath, section); err != nil {
		return fonterror.Wrap(err, fonterror.LoadConfig, "failed to save %s", configPath)
	}
	logger.Info().Str("path", configPath).Msg("Configuration saved")
	cmd.Printf("Configuration written to: %s\n", configPath)

	cfg, err := c.options.Resolve()
	if err != nil {
		return err
	}
	cmd.Print(Describe(cfg))
	return nil
}

// existingSection returns the section already stored in configPath, or an
// empty one if the file or the section does not exist yet. A section that
// cannot be parsed is an error so init never drops the user's settings.
func existingSection(configPath string, logger zerolog.Logger) (*config.Section, error) {
	if _, err := os.Stat(configPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &config.Section{}, nil
		}
		return nil, fonterror.Wrap(err, fonterror.LoadConfig, "cannot access %s", configPath)
	}

	section, err := config.ReadSection(configPath)
	if errors.Is(err, config.ErrSectionNotFound) {
		logger.Debug().Str("path", configPath).Msg("Starting from an empty section")
		return &config.Section{}, nil
	}
	if err != nil {
		return nil, fonterror.Wrap(err, fonterror.LoadConfig, "failed to read %s", configPath)
	}
	return section, nil
}

// Describe renders the effective configuration for the user
func Describe(cfg *config.Config) string {
	source := cfg.ConfigPath
	if source == "" {
		source = "(defaults)"
	}
	return fmt.Sprintf("prefix: %s\nconfig: %s\nbase_url: %s\nformat: %s\nrefresh_font_cache: %t\n",
		cfg.Prefix, source, cfg.BaseURL, cfg.Format, cfg.RefreshFontCache)
}
