package changelog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMarkdown = `# Changelog

All notable changes to propworld will be documented in this file.

## [1.0.0] - 2026-05-02

### Added
- Entity key-value props
- Named links

## 2.0.0 - 2026-08-14

### Changed
- Names are interned

## [Unreleased]

### Fixed
- Pending fix
`

func TestParseMarkdown(t *testing.T) {
	t.Parallel()

	doc, err := ParseMarkdown(strings.NewReader(sampleMarkdown))
	require.NoError(t, err)

	assert.Equal(t, "Changelog", doc.Title)
	require.Len(t, doc.Intro, 1)
	assert.Contains(t, doc.Intro[0], "notable changes")

	require.Len(t, doc.Sections, 3)

	first := doc.Sections[0]
	assert.Equal(t, "1.0.0", first.Version)
	assert.Equal(t, "2026-05-02", first.Date)
	assert.Equal(t, 5, first.Line)
	assert.Equal(t, []string{"Added"}, first.Categories)
	require.Len(t, first.Bullets, 2)
	assert.Equal(t, "Entity key-value props", first.Bullets[0].Text)
	assert.Equal(t, 8, first.Bullets[0].Line)

	second := doc.Sections[1]
	assert.Equal(t, "2.0.0", second.Version)
	assert.Equal(t, "2026-08-14", second.Date)

	last := doc.Sections[2]
	assert.True(t, last.IsUnreleased())
	assert.Empty(t, last.Date)
	require.Len(t, last.Bullets, 1)
}

func TestParseMarkdownTolerant(t *testing.T) {
	t.Parallel()

	// Malformed headings still produce sections so Lint can locate them.
	doc, err := ParseMarkdown(strings.NewReader(`# Changelog

## Version One

- something
`))
	require.NoError(t, err)
	require.Len(t, doc.Sections, 1)
	assert.Equal(t, "Version One", doc.Sections[0].Heading)
	assert.Empty(t, doc.Sections[0].Version)
	require.Len(t, doc.Sections[0].Bullets, 1)
}

func TestParseMarkdownEmpty(t *testing.T) {
	t.Parallel()

	doc, err := ParseMarkdown(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, doc.Title)
	assert.Empty(t, doc.Sections)
}

func TestHeadingPattern(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		heading     string
		wantVersion string
		wantDate    string
	}{
		"bare":          {heading: "## 1.0.0 - 2026-05-02", wantVersion: "1.0.0", wantDate: "2026-05-02"},
		"bracketed":     {heading: "## [1.0.0] - 2026-05-02", wantVersion: "1.0.0", wantDate: "2026-05-02"},
		"v prefix":      {heading: "## v1.2.3 - 2026-05-02", wantVersion: "1.2.3", wantDate: "2026-05-02"},
		"prerelease":    {heading: "## [2.0.0-rc.1] - 2026-07-01", wantVersion: "2.0.0-rc.1", wantDate: "2026-07-01"},
		"unreleased":    {heading: "## [Unreleased]", wantVersion: "Unreleased"},
		"no date":       {heading: "## [3.0.0]", wantVersion: "3.0.0"},
		"prose heading": {heading: "## Release notes"},
		"bad date":      {heading: "## 1.0.0 - May 2nd"},
		"two part":      {heading: "## 1.0 - 2026-05-02"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s := parseSectionHeading(tc.heading, 1)
			assert.Equal(t, tc.wantVersion, s.Version)
			assert.Equal(t, tc.wantDate, s.Date)
		})
	}
}

func TestIsBullet(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		line string
		want bool
	}{
		"dash":        {line: "- entry", want: true},
		"star":        {line: "* entry", want: true},
		"plus":        {line: "+ entry", want: true},
		"indented":    {line: "  - entry", want: true},
		"no space":    {line: "-entry", want: false},
		"prose":       {line: "just text", want: false},
		"empty":       {line: "", want: false},
		"lone dash":   {line: "-", want: false},
		"thematic hr": {line: "---", want: false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, isBullet(tc.line))
		})
	}
}

func TestParseMarkdownFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "CHANGELOG.md")
	require.NoError(t, os.WriteFile(path, []byte(sampleMarkdown), 0o644))

	doc, err := ParseMarkdownFile(path)
	require.NoError(t, err)
	assert.Len(t, doc.Sections, 3)

	_, err = ParseMarkdownFile(filepath.Join(t.TempDir(), "missing.md"))
	require.Error(t, err)
}
