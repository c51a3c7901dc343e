package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fernwhistle/propworld/internal/changelog"
)

var changelogShowPlainFlag bool

var changelogShowCmd = &cobra.Command{
	Use:   "show [version]",
	Short: "Display changelog entries in the terminal",
	Long: `Display changelog entries with color-coded categories.

Reads the configured YAML source if it exists, falling back to the
changelog embedded at build time. With a version argument, shows only
that version.

Examples:
  propworld changelog show              # All versions, newest first
  propworld changelog show v2.0.0       # One version (v prefix optional)
  propworld changelog show unreleased   # Unreleased changes
  propworld changelog show --plain      # No colors or icons`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChangelogShow(cmd, args)
	},
}

func init() {
	changelogCmd.AddCommand(changelogShowCmd)

	changelogShowCmd.Flags().BoolVar(&changelogShowPlainFlag, "plain", false,
		"Plain text output (no colors/icons)")
}

func runChangelogShow(cmd *cobra.Command, args []string) error {
	log, err := loadChangelogSource()
	if err != nil {
		return err
	}

	opts := changelog.FormatOptions{Plain: changelogShowPlainFlag}

	if len(args) == 1 {
		return showVersion(log, args[0], cmd, opts)
	}
	return changelog.FormatChangelog(log, cmd.OutOrStdout(), opts)
}

// loadChangelogSource loads the configured YAML source, falling back to
// the embedded changelog when no source file is present.
func loadChangelogSource() (*changelog.Changelog, error) {
	if _, err := os.Stat(cfg.ChangelogSource); err == nil {
		log, err := changelog.Load(cfg.ChangelogSource)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", cfg.ChangelogSource, err)
		}
		return log, nil
	}
	return changelog.LoadEmbedded()
}

func showVersion(log *changelog.Changelog, version string, cmd *cobra.Command, opts changelog.FormatOptions) error {
	v, err := log.GetVersion(version)
	if err != nil {
		var notFound *changelog.VersionNotFoundError
		if errors.As(err, &notFound) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Version %q not found.\n\n", version)
			fmt.Fprintf(cmd.ErrOrStderr(), "Available versions:\n")
			for _, ver := range log.ListVersions() {
				fmt.Fprintf(cmd.ErrOrStderr(), "  %s\n", ver)
			}
			return NewExitError(ExitInvalidArguments)
		}
		return fmt.Errorf("getting version: %w", err)
	}

	return changelog.FormatVersion(v, cmd.OutOrStdout(), opts)
}
