package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or manage the persistent cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the entire persistent cache directory, forcing every entry to be rebuilt",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := resolveCacheDir()
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("cache clear: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "removed cache directory %s\n", dir)
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}
