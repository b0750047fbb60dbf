package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose    bool
	configPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "stylekit",
		Short:         "stylekit resolves component styles for design languages and render backends",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a stylekit YAML configuration file")

	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newBackendsCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
