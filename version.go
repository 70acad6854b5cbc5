package main

import (
	"github.com/spf13/cobra"
)

// version is replaced at release time with -ldflags "-X main.version=..."
var version = "1.0.0-SNAPSHOT"

func VersionAndBuild() string {
	return version
}

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version of the tool",
		Long:  `Show the version of the nerdfonts command-line tool.`,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println("Version:", version)
		},
	}
}
