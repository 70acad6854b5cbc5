package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"jonnyzzz.com/nerdfonts/config"
	"jonnyzzz.com/nerdfonts/fonterror"
	"jonnyzzz.com/nerdfonts/install"
	"jonnyzzz.com/nerdfonts/logging"
	"jonnyzzz.com/nerdfonts/registry"
	"jonnyzzz.com/nerdfonts/setup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := NewRootCommand()
	rootCmd.SetOut(os.Stdout)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		printError(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// NewRootCommand assembles the nerdfonts command tree
func NewRootCommand() *cobra.Command {
	options := &config.Options{Version: VersionAndBuild()}

	rootCmd := &cobra.Command{
		Use:   "nerdfonts",
		Short: fmt.Sprintf("nerdfonts v%s installs and manages Nerd Fonts", VersionAndBuild()),
		Long: `nerdfonts downloads Nerd Fonts releases into a prefix directory and
manages the current font of your terminal.

The prefix is taken from --prefix, then $NERDFONTS_PREFIX, then
$HOME/.local/share/nerdfonts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(options.Verbosity)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&options.Prefix, "prefix", "", "Prefix directory (default $NERDFONTS_PREFIX or $HOME/.local/share/nerdfonts)")
	flags.StringVar(&options.ConfigFile, "config", "", "Configuration file (default <prefix>/config.yaml)")
	flags.CountVarP(&options.Verbosity, "verbose", "v", "Increase verbosity (-v info, -vv debug, -vvv trace)")

	rootCmd.AddCommand(install.NewDownloadCommand(options))
	rootCmd.AddCommand(registry.NewListCommand(options))
	rootCmd.AddCommand(registry.NewSetCommand(options))
	rootCmd.AddCommand(registry.NewCurrentCommand(options))
	rootCmd.AddCommand(registry.NewRemoveCommand(options))
	rootCmd.AddCommand(setup.NewInitCommand(options))
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}

// printError renders err with the remediation hint of its kind
func printError(w io.Writer, err error) {
	//goland:noinspection GoUnhandledErrorResult
	fmt.Fprintf(w, "Error: %v\n", err)
	if hint := fonterror.Hint(fonterror.KindOf(err)); hint != "" {
		//goland:noinspection GoUnhandledErrorResult
		fmt.Fprintf(w, "Hint: %s\n", hint)
	}
}
