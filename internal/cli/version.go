package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fernwhistle/propworld/internal/version"
)

// SourceURL is where the propworld source lives.
const SourceURL = "https://github.com/fernwhistle/propworld"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "propworld %s\n", version.Version)
		fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", version.Commit)
		fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", version.BuildDate)
		fmt.Fprintf(cmd.OutOrStdout(), "  source: %s\n", SourceURL)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
