package install

import (
	"net/http"

	"github.com/spf13/cobra"

	"jonnyzzz.com/nerdfonts/config"
	"jonnyzzz.com/nerdfonts/download"
	"jonnyzzz.com/nerdfonts/layout"
	"jonnyzzz.com/nerdfonts/unpack"
)

type downloadCommandConfig struct {
	options *config.Options
	format  string
}

// NewDownloadCommand creates the download command
func NewDownloadCommand(options *config.Options) *cobra.Command {
	c := &downloadCommandConfig{options: options}

	cmd := &cobra.Command{
		Use:   "download <name>...",
		Short: "Download and install Nerd Fonts",
		Long: `Download the latest release archive of every named Nerd Font and install
its regular weight into <prefix>/fonts/<name>.ttf.

Fonts are installed one after another; the first failure stops the command.

Examples:
  nerdfonts download 0xProto
  nerdfonts download JetBrainsMono 3270 --format tar.xz
`,
		Args: cobra.MinimumNArgs(1),
		RunE: c.doTheCommand,
	}
	cmd.Flags().StringVar(&c.format, "format", "", "Archive format to download: zip or tar.xz (default from config, zip)")

	return cmd
}

func (c *downloadCommandConfig) doTheCommand(cmd *cobra.Command, args []string) error {
	cfg, err := c.options.Resolve()
	if err != nil {
		return err
	}

	if c.format != "" {
		format, err := layout.ParseArchiveFormat(c.format)
		if err != nil {
			return err
		}
		cfg.Format = format
	}

	service := NewServiceFromConfig(cfg)
	return service.Download(cmd.Context(), args)
}

// NewServiceFromConfig wires the HTTP fetcher and archive extractor for cfg
func NewServiceFromConfig(cfg *config.Config) *Service {
	fetcher := &download.Fetcher{
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
		BaseURL:    cfg.BaseURL,
		Format:     cfg.Format,
		UserAgent:  cfg.UserAgent,
		BufferSize: cfg.BufferSize,
	}

	return NewService(cfg.Layout(), fetcher, unpack.NewExtractor()).
		WithFontCacheRefresh(cfg.RefreshFontCache)
}
