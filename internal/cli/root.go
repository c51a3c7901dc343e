// Package cli implements the propworld command line interface.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fernwhistle/propworld/internal/config"
	pwerrors "github.com/fernwhistle/propworld/internal/errors"
)

// Command group identifiers for the root help output.
const (
	GroupWorld     = "world"
	GroupChangelog = "changelog"
)

var (
	configFlag  string
	noColorFlag bool
	verboseFlag bool

	// cfg is the resolved configuration, populated before any RunE runs.
	cfg *config.Configuration
)

var rootCmd = &cobra.Command{
	Use:   "propworld",
	Short: "Inspect, query, and lint propworld entity worlds",
	Long: `propworld works with stringly-typed entity worlds: entities carrying
loosely typed props, unique names, classes, and named links, stored as
YAML world files.

It also manages the project changelog: a YAML source rendered to a Keep
a Changelog formatted CHANGELOG.md, with a structural linter for any
Markdown changelog.`,
	Example: `  propworld world lint world.yml
  propworld world query world.yml "gandalf->ally.age"
  propworld world watch world.yml
  propworld changelog lint CHANGELOG.md
  propworld changelog render --write`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configFlag != "" {
			if _, err := os.Stat(configFlag); err != nil {
				return pwerrors.ConfigFileNotFound(configFlag)
			}
		}
		loaded, err := config.Load(configFlag)
		if err != nil {
			path := configFlag
			if path == "" {
				path = config.ProjectConfigPath()
			}
			return pwerrors.ConfigParseError(path, err)
		}
		cfg = loaded

		if noColorFlag || cfg.NoColor {
			color.NoColor = true
		}
		if verboseFlag {
			cfg.Verbose = true
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "",
		"Path to config file (default: .propworld/config.yml)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false,
		"Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"Enable verbose output")

	rootCmd.AddGroup(
		&cobra.Group{ID: GroupWorld, Title: "World Commands:"},
		&cobra.Group{ID: GroupChangelog, Title: "Changelog Commands:"},
	)
}

// Execute runs the root command. Structured CLI errors are printed with
// their remediation steps; everything else gets a plain error line.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}

	if cliErr := pwerrors.AsCLIError(err); cliErr != nil {
		pwerrors.PrintError(cliErr)
		return NewExitError(exitCodeFor(cliErr))
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
	}
	return err
}

// exitCodeFor maps a structured error's category to a process exit code.
// Missing prerequisite files get their own code so scripts can tell a
// missing input apart from a bad invocation.
func exitCodeFor(err *pwerrors.CLIError) int {
	if err.Category == pwerrors.Prerequisite {
		return ExitMissingFile
	}
	return ExitInvalidArguments
}
