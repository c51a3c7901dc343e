package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	pwerrors "github.com/fernwhistle/propworld/internal/errors"
	"github.com/fernwhistle/propworld/internal/output"
)

var changelogCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify CHANGELOG.md matches the YAML source",
	Long: `Verify that CHANGELOG.md is in sync with the YAML source.

Compares the current CHANGELOG.md with what 'changelog render' would
produce. Exits 0 when in sync, 1 when out of sync.

Example:
  propworld changelog check`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChangelogCheck(cmd)
	},
}

func init() {
	changelogCmd.AddCommand(changelogCheckCmd)
}

func runChangelogCheck(cmd *cobra.Command) error {
	expected, err := renderConfiguredChangelog(cmd)
	if err != nil {
		return err
	}

	actual, err := os.ReadFile(cfg.ChangelogPath)
	if err != nil {
		return pwerrors.ChangelogNotFound(cfg.ChangelogPath)
	}

	if !bytes.Equal([]byte(expected), actual) {
		output.PrintFailure(cmd.OutOrStdout(),
			fmt.Sprintf("%s is out of sync with %s", cfg.ChangelogPath, cfg.ChangelogSource))
		fmt.Fprintf(cmd.OutOrStdout(), "\nTo fix, run:\n  propworld changelog render --write\n")
		return NewExitError(ExitLintFindings)
	}

	output.PrintSuccess(cmd.OutOrStdout(),
		fmt.Sprintf("%s is in sync with %s", cfg.ChangelogPath, cfg.ChangelogSource))
	return nil
}
