package cli

import (
	"github.com/spf13/cobra"
)

var changelogCmd = &cobra.Command{
	Use:   "changelog",
	Short: "Manage the YAML-sourced changelog",
	Long: `Manage the project changelog.

The YAML source (changelog.yaml) is the single source of truth;
CHANGELOG.md is rendered from it in Keep a Changelog format with
versions in ascending order. The linter checks any Markdown changelog
against that structure.`,
}

func init() {
	changelogCmd.GroupID = GroupChangelog
	rootCmd.AddCommand(changelogCmd)
}
