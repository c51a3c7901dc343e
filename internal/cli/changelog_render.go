package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fernwhistle/propworld/internal/changelog"
	pwerrors "github.com/fernwhistle/propworld/internal/errors"
	"github.com/fernwhistle/propworld/internal/output"
)

var (
	renderWriteFlag   bool
	renderRepoURLFlag string
)

var changelogRenderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render CHANGELOG.md from the YAML source",
	Long: `Render the YAML changelog source to Keep a Changelog Markdown.

Versions are written oldest first so the output passes
'propworld changelog lint'. When the working directory is a git
repository with an origin remote, version comparison links are added;
--repo-url overrides detection.

By default the rendered document is printed to stdout; --write saves
it to the configured CHANGELOG.md path.

Examples:
  propworld changelog render
  propworld changelog render --write
  propworld changelog render --repo-url https://github.com/owner/repo`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChangelogRender(cmd)
	},
}

func init() {
	changelogCmd.AddCommand(changelogRenderCmd)

	changelogRenderCmd.Flags().BoolVar(&renderWriteFlag, "write", false,
		"Write the rendered changelog to the configured path")
	changelogRenderCmd.Flags().StringVar(&renderRepoURLFlag, "repo-url", "",
		"Repository URL for comparison links (default: detect from git)")
}

func runChangelogRender(cmd *cobra.Command) error {
	rendered, err := renderConfiguredChangelog(cmd)
	if err != nil {
		return err
	}

	if !renderWriteFlag {
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	}

	if err := os.WriteFile(cfg.ChangelogPath, []byte(rendered), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.ChangelogPath, err)
	}
	output.PrintSuccess(cmd.OutOrStdout(),
		fmt.Sprintf("wrote %s from %s", cfg.ChangelogPath, cfg.ChangelogSource))
	return nil
}

// renderConfiguredChangelog loads the YAML source and renders it with the
// resolved repository URL.
func renderConfiguredChangelog(cmd *cobra.Command) (string, error) {
	if _, err := os.Stat(cfg.ChangelogSource); err != nil {
		return "", pwerrors.ChangelogNotFound(cfg.ChangelogSource)
	}

	log, err := changelog.Load(cfg.ChangelogSource)
	if err != nil {
		return "", pwerrors.ChangelogParseError(cfg.ChangelogSource, err)
	}

	return changelog.RenderMarkdownString(log, changelog.RenderOptions{
		RepoURL: resolveRepoURL(cmd),
	})
}

// resolveRepoURL picks the repository URL for comparison links.
// Priority: --repo-url flag > config > git remote detection.
// Detection failure just disables links, with a warning in verbose mode.
func resolveRepoURL(cmd *cobra.Command) string {
	if renderRepoURLFlag != "" {
		return renderRepoURLFlag
	}
	if cfg.RepoURL != "" {
		return cfg.RepoURL
	}
	url, err := changelog.DetectRepoURL(".")
	if err != nil {
		if cfg.Verbose {
			output.PrintWarning(cmd.ErrOrStderr(),
				"no git origin remote found; comparison links disabled (use --repo-url)")
		}
		return ""
	}
	return url
}
