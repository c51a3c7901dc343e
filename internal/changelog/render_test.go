package changelog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderMarkdown(t *testing.T) {
	t.Parallel()

	log, err := LoadFromReader(strings.NewReader(validYAML))
	require.NoError(t, err)

	out, err := RenderMarkdownString(log, RenderOptions{})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "# Changelog\n"))
	assert.Contains(t, out, "All notable changes to propworld")
	assert.Contains(t, out, "## [1.0.0] - 2026-05-02")
	assert.Contains(t, out, "## [2.0.0] - 2026-08-14")
	assert.Contains(t, out, "## [Unreleased]")
	assert.Contains(t, out, "### Changed\n- Names are interned\n")

	// Oldest first, Unreleased last.
	first := strings.Index(out, "## [1.0.0]")
	second := strings.Index(out, "## [2.0.0]")
	last := strings.Index(out, "## [Unreleased]")
	assert.Less(t, first, second)
	assert.Less(t, second, last)
}

func TestRenderMarkdownIdempotent(t *testing.T) {
	t.Parallel()

	log, err := LoadFromReader(strings.NewReader(validYAML))
	require.NoError(t, err)

	a, err := RenderMarkdownString(log, RenderOptions{})
	require.NoError(t, err)
	b, err := RenderMarkdownString(log, RenderOptions{})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestRenderMarkdownFooterLinks(t *testing.T) {
	t.Parallel()

	log, err := LoadFromReader(strings.NewReader(validYAML))
	require.NoError(t, err)

	out, err := RenderMarkdownString(log, RenderOptions{
		RepoURL: "https://github.com/fernwhistle/propworld",
	})
	require.NoError(t, err)

	assert.Contains(t, out,
		"[1.0.0]: https://github.com/fernwhistle/propworld/releases/tag/v1.0.0")
	assert.Contains(t, out,
		"[2.0.0]: https://github.com/fernwhistle/propworld/compare/v1.0.0...v2.0.0")
	assert.Contains(t, out,
		"[Unreleased]: https://github.com/fernwhistle/propworld/compare/v2.0.0...HEAD")
}

func TestRenderMarkdownNoRepoURL(t *testing.T) {
	t.Parallel()

	log, err := LoadFromReader(strings.NewReader(validYAML))
	require.NoError(t, err)

	out, err := RenderMarkdownString(log, RenderOptions{})
	require.NoError(t, err)
	assert.NotContains(t, out, "compare/")
	assert.NotContains(t, out, "releases/tag/")
}

func TestRenderMarkdownSkipsEmptyCategories(t *testing.T) {
	t.Parallel()

	log := &Changelog{
		Project: "propworld",
		Versions: []Version{
			{Version: "1.0.0", Date: "2026-01-01", Changes: Changes{Fixed: []string{"a bug"}}},
		},
	}

	out, err := RenderMarkdownString(log, RenderOptions{})
	require.NoError(t, err)
	assert.Contains(t, out, "### Fixed")
	assert.NotContains(t, out, "### Added")
}

func TestAscendingVersions(t *testing.T) {
	t.Parallel()

	log := &Changelog{
		Project: "propworld",
		Versions: []Version{
			{Version: "unreleased"},
			{Version: "2.0.0", Date: "2026-02-01"},
			{Version: "1.0.0", Date: "2026-01-01"},
		},
	}

	ordered := ascendingVersions(log)
	require.Len(t, ordered, 3)
	assert.Equal(t, "1.0.0", ordered[0].Version)
	assert.Equal(t, "2.0.0", ordered[1].Version)
	assert.True(t, ordered[2].IsUnreleased())
}
