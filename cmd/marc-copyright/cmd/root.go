// Package cmd wires the internal packages into a cobra CLI. It holds
// no business logic of its own: every subcommand's RunE loads
// configuration, builds the relevant internal components, and calls
// into them. Persistent flags live on the root command; each
// subcommand gets its own file with its own local flags.
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "marc-copyright",
		Short:        "marc-copyright",
		Long:         "Determines US copyright status for MARC bibliographic records by matching them against registration and renewal reference corpora.",
		SilenceUsage: true,
	}

	configPath string
	cacheDir   string
)

// Execute runs the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML configuration file (defaults applied when unset)")
	rootCmd.PersistentFlags().StringVar(&cacheDir, "cache-dir", "", "persistent cache directory (defaults to the XDG cache home)")
	return rootCmd.Execute()
}
