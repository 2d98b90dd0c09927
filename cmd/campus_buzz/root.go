package main

import (
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

// newRootCommand builds a fresh command tree so tests never share flag state.
func newRootCommand() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:           "campus-buzz",
		Short:         "CAMPUS Buzz portal API with automatic news prioritization",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate("campus-buzz {{.Version}}\n")
	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./campus_buzz.yaml)")

	root.AddCommand(
		newServeCommand(&cfgFile),
		newAnalyzeCommand(),
		newVersionCommand(),
	)
	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("campus-buzz %s\n", Version)
		},
	}
}
