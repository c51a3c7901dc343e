package cli

import (
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/fernwhistle/propworld/internal/changelog"
	pwerrors "github.com/fernwhistle/propworld/internal/errors"
	"github.com/fernwhistle/propworld/internal/output"
)

var changelogLintCmd = &cobra.Command{
	Use:   "lint [files...]",
	Short: "Lint Markdown changelogs for structural problems",
	Long: `Lint one or more Markdown changelogs.

Checks that every version heading matches "## X.Y.Z - YYYY-MM-DD",
that versions appear in non-decreasing order from top to bottom (with
Unreleased only as the final section), and that every section has at
least one change bullet.

All findings are reported with file and line, and the exit code is
non-zero if any file has findings.

Examples:
  propworld changelog lint                    # Lint the configured CHANGELOG.md
  propworld changelog lint docs/*.md`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChangelogLint(cmd, args)
	},
}

func init() {
	changelogCmd.AddCommand(changelogLintCmd)
}

func runChangelogLint(cmd *cobra.Command, args []string) error {
	paths := args
	if len(paths) == 0 {
		paths = []string{cfg.ChangelogPath}
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			return pwerrors.ChangelogNotFound(path)
		}
	}

	results, err := lintFiles(paths)
	if err != nil {
		return err
	}

	total := 0
	for _, path := range paths {
		findings := results[path]
		total += len(findings)
		reportFindings(cmd, path, findings)
	}

	if total > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d finding(s) in %d file(s)\n", total, len(paths))
		return NewExitError(ExitLintFindings)
	}
	return nil
}

// lintFiles lints each file concurrently and collects findings per path.
func lintFiles(paths []string) (map[string][]changelog.Finding, error) {
	var (
		mu      sync.Mutex
		results = make(map[string][]changelog.Finding, len(paths))
	)

	var g errgroup.Group
	for _, path := range paths {
		g.Go(func() error {
			findings, err := changelog.LintFile(path)
			if err != nil {
				return err
			}
			sort.Slice(findings, func(i, j int) bool {
				return findings[i].Line < findings[j].Line
			})
			mu.Lock()
			results[path] = findings
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func reportFindings(cmd *cobra.Command, path string, findings []changelog.Finding) {
	if len(findings) == 0 {
		output.PrintSuccess(cmd.OutOrStdout(), path)
		return
	}

	output.PrintFailure(cmd.OutOrStdout(), path)
	for _, f := range findings {
		output.PrintFinding(cmd.OutOrStdout(), path, f.Line,
			fmt.Sprintf("[%s] %s", f.Rule, f.Message))
	}
}
