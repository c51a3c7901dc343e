//go:build e2e

package e2e

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fernwhistle/propworld/internal/testutil"
)

const e2eChangelogYAML = `project: propworld
versions:
  - version: "1.1.0"
    date: "2026-06-01"
    changes:
      fixed:
        - "A bug"
  - version: "1.0.0"
    date: "2026-05-02"
    changes:
      added:
        - "Initial release"
`

func TestE2E_ChangelogRoundTrip(t *testing.T) {
	env := testutil.NewE2EEnv(t)
	env.WriteFile("changelog.yaml", e2eChangelogYAML)
	env.WriteFile(".propworld/config.yml", "changelog_source: changelog.yaml\n")

	// check before render fails: no CHANGELOG.md yet.
	result := env.Run("changelog", "check")
	require.NotEqual(t, 0, result.ExitCode)

	// render --write produces the Markdown document.
	result = env.Run("changelog", "render", "--write")
	require.Equal(t, 0, result.ExitCode, "stderr: %s", result.Stderr)
	require.True(t, env.FileExists("CHANGELOG.md"))
	require.Contains(t, env.ReadFile("CHANGELOG.md"), "## [1.0.0] - 2026-05-02")

	// Now check passes, and the rendered document lints clean.
	result = env.Run("changelog", "check")
	require.Equal(t, 0, result.ExitCode, "stdout: %s\nstderr: %s", result.Stdout, result.Stderr)

	result = env.Run("changelog", "lint")
	require.Equal(t, 0, result.ExitCode, "stdout: %s\nstderr: %s", result.Stdout, result.Stderr)
}

func TestE2E_ChangelogLintFindings(t *testing.T) {
	env := testutil.NewE2EEnv(t)
	path := env.WriteFile("broken.md", `# Changelog

## 2.0.0 - 2026-06-01

- out of order

## 1.0.0 - 2026-05-02

- initial
`)

	result := env.Run("changelog", "lint", path)
	require.Equal(t, 1, result.ExitCode)
	require.Contains(t, result.Stdout, "[order]")
}
