package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	pwerrors "github.com/fernwhistle/propworld/internal/errors"
	"github.com/fernwhistle/propworld/internal/output"
	"github.com/fernwhistle/propworld/internal/worldfile"
)

var worldLintCmd = &cobra.Command{
	Use:   "lint [file]",
	Short: "Validate a world file",
	Long: `Validate a world file.

Checks YAML syntax, rejects unknown fields, and verifies that entity
names are unique, prop values are scalars, and link targets resolve to
declared entities.

Example:
  propworld world lint world.yml`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWorldLint(cmd, worldPathArg(args))
	},
}

func init() {
	worldCmd.AddCommand(worldLintCmd)
}

func runWorldLint(cmd *cobra.Command, path string) error {
	if _, err := os.Stat(path); err != nil {
		return pwerrors.WorldFileNotFound(path)
	}

	w, err := worldfile.Load(path)
	if err != nil {
		var ve *worldfile.ValidationError
		if errors.As(err, &ve) {
			output.PrintFailure(cmd.OutOrStdout(), path)
			fmt.Fprintf(cmd.OutOrStdout(), "  %s: %s\n", ve.Field, ve.Message)
			return NewExitError(ExitLintFindings)
		}
		output.PrintFailure(cmd.OutOrStdout(), path)
		fmt.Fprintf(cmd.OutOrStdout(), "  %v\n", err)
		return NewExitError(ExitLintFindings)
	}

	output.PrintSuccess(cmd.OutOrStdout(),
		fmt.Sprintf("%s: %d entities", path, w.Len()))
	return nil
}
