package cli

import (
	"github.com/spf13/cobra"
)

var worldCmd = &cobra.Command{
	Use:   "world",
	Short: "Inspect and validate world files",
	Long: `Inspect and validate YAML world files.

A world file declares entities with optional names and classes, loosely
typed props, and named links to other entities by name.`,
}

func init() {
	worldCmd.GroupID = GroupWorld
	rootCmd.AddCommand(worldCmd)
}

// worldPathArg resolves the world file path from an optional positional
// argument, falling back to the configured default.
func worldPathArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.WorldPath
}
