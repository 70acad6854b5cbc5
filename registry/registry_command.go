package registry

import (
	"github.com/spf13/cobra"

	"jonnyzzz.com/nerdfonts/config"
	"jonnyzzz.com/nerdfonts/fonterror"
	"jonnyzzz.com/nerdfonts/install"
)

// NewListCommand creates the list command
func NewListCommand(options *config.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List installed fonts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := options.Resolve()
			if err != nil {
				return err
			}

			names, err := New(cfg.Layout()).List()
			if err != nil {
				return err
			}
			for _, name := range names {
				cmd.Println(name)
			}
			return nil
		},
	}
}

// NewSetCommand creates the set command
func NewSetCommand(options *config.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "set <name>",
		Short: "Make an installed font the current font",
		Long: `Copy <prefix>/fonts/<name>.ttf over <prefix>/font.ttf.

The current font is a copy, removing the installed font later keeps it intact.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := options.Resolve()
			if err != nil {
				return err
			}

			if err := New(cfg.Layout()).Set(args[0]); err != nil {
				return err
			}
			if cfg.RefreshFontCache {
				install.RefreshFontCache(cfg.Prefix)
			}
			return nil
		},
	}
}

// NewCurrentCommand creates the current command
func NewCurrentCommand(options *config.Options) *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show which installed font is the current font",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := options.Resolve()
			if err != nil {
				return err
			}

			name, err := New(cfg.Layout()).Current()
			if err != nil {
				return err
			}
			if name == "" {
				cmd.PrintErrln("No current font matches an installed font")
				return nil
			}
			cmd.Println(name)
			return nil
		},
	}
}

type removeCommandConfig struct {
	options       *config.Options
	all           bool
	exceptCurrent bool
}

// NewRemoveCommand creates the remove command
func NewRemoveCommand(options *config.Options) *cobra.Command {
	c := &removeCommandConfig{options: options}

	cmd := &cobra.Command{
		Use:   "remove [--all] [--except-current] [<name>...]",
		Short: "Remove installed fonts",
		Long: `Remove the named fonts, or every font with --all.

The current font file is removed too unless --except-current is given.

Examples:
  nerdfonts remove 0xProto 3270
  nerdfonts remove --all --except-current
`,
		RunE: c.doTheCommand,
	}
	cmd.Flags().BoolVar(&c.all, "all", false, "Remove the whole font directory")
	cmd.Flags().BoolVar(&c.exceptCurrent, "except-current", false, "Keep the current font file")

	return cmd
}

func (c *removeCommandConfig) doTheCommand(cmd *cobra.Command, args []string) error {
	if c.all && len(args) > 0 {
		return fonterror.New(fonterror.InvalidArguments, "font names cannot be combined with --all")
	}
	if !c.all && len(args) == 0 {
		return fonterror.New(fonterror.InvalidArguments, "no font names given, use --all to remove every font")
	}

	cfg, err := c.options.Resolve()
	if err != nil {
		return err
	}

	registry := New(cfg.Layout())
	if c.all {
		return registry.RemoveAll(c.exceptCurrent)
	}
	return registry.Remove(args, c.exceptCurrent)
}
