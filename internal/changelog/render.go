package changelog

import (
	"fmt"
	"io"
	"strings"
)

// RenderOptions controls Markdown rendering.
type RenderOptions struct {
	// RepoURL is the repository base URL used for version comparison
	// links in the footer. Empty disables footer links. DetectRepoURL
	// can discover it from the working repository.
	RepoURL string
}

// RenderMarkdown generates a Keep a Changelog formatted Markdown document.
// Versions are written oldest first, so version numbers read in
// non-decreasing order from top to bottom, with Unreleased as the final
// section. The output is idempotent: the same input always produces
// identical output, and it passes Lint.
func RenderMarkdown(c *Changelog, w io.Writer, opts RenderOptions) error {
	if err := renderHeader(c, w); err != nil {
		return fmt.Errorf("rendering header: %w", err)
	}

	ordered := ascendingVersions(c)
	for i, v := range ordered {
		if err := renderVersion(&v, w, i == 0); err != nil {
			return fmt.Errorf("rendering version %s: %w", v.Version, err)
		}
	}

	if err := renderFooterLinks(ordered, w, opts); err != nil {
		return fmt.Errorf("rendering footer links: %w", err)
	}

	return nil
}

// RenderMarkdownString is a convenience wrapper that renders to a string.
func RenderMarkdownString(c *Changelog, opts RenderOptions) (string, error) {
	var b strings.Builder
	if err := RenderMarkdown(c, &b, opts); err != nil {
		return "", err
	}
	return b.String(), nil
}

// ascendingVersions returns the versions oldest first, Unreleased last.
// The source model lists versions newest first.
func ascendingVersions(c *Changelog) []Version {
	ordered := make([]Version, 0, len(c.Versions))
	var unreleased *Version
	for i := len(c.Versions) - 1; i >= 0; i-- {
		v := c.Versions[i]
		if v.IsUnreleased() {
			unreleased = &v
			continue
		}
		ordered = append(ordered, v)
	}
	if unreleased != nil {
		ordered = append(ordered, *unreleased)
	}
	return ordered
}

// renderHeader writes the standard Keep a Changelog header.
func renderHeader(c *Changelog, w io.Writer) error {
	header := `# Changelog

All notable changes to ` + c.Project + ` will be documented in this file.

The format is based on [Keep a Changelog](https://keepachangelog.com/en/1.1.0/),
and this project adheres to [Semantic Versioning](https://semver.org/spec/v2.0.0.html).

`
	_, err := w.Write([]byte(header))
	return err
}

// renderVersion writes a single version section with all its changes.
func renderVersion(v *Version, w io.Writer, isFirst bool) error {
	if !isFirst {
		if _, err := w.Write([]byte("\n")); err != nil {
			return err
		}
	}
	if _, err := w.Write([]byte(formatVersionHeader(v) + "\n")); err != nil {
		return err
	}
	return renderChanges(&v.Changes, w)
}

// formatVersionHeader formats the version heading line.
func formatVersionHeader(v *Version) string {
	if v.IsUnreleased() {
		return "## [Unreleased]"
	}
	return fmt.Sprintf("## [%s] - %s", v.Version, v.Date)
}

// renderChanges writes all non-empty change categories in standard order.
func renderChanges(c *Changes, w io.Writer) error {
	for _, cat := range c.byCategory() {
		if len(cat.Entries) == 0 {
			continue
		}
		if _, err := fmt.Fprintf(w, "\n### %s\n", capitalizeFirst(cat.Name)); err != nil {
			return err
		}
		for _, entry := range cat.Entries {
			if _, err := fmt.Fprintf(w, "- %s\n", entry); err != nil {
				return err
			}
		}
	}
	return nil
}

// renderFooterLinks writes version comparison links at the end of the
// document. Versions are in ascending order.
func renderFooterLinks(ordered []Version, w io.Writer, opts RenderOptions) error {
	if len(ordered) == 0 || opts.RepoURL == "" {
		return nil
	}

	if _, err := w.Write([]byte("\n")); err != nil {
		return err
	}

	for i, v := range ordered {
		link := formatVersionLink(v, ordered, i, opts.RepoURL)
		if link == "" {
			continue
		}
		if _, err := w.Write([]byte(link + "\n")); err != nil {
			return err
		}
	}
	return nil
}

// formatVersionLink creates one comparison link. The first release links
// to its tag, later releases compare against their predecessor, and
// Unreleased compares the latest release against HEAD.
func formatVersionLink(v Version, ordered []Version, index int, repoURL string) string {
	if v.IsUnreleased() {
		if index > 0 {
			prev := ordered[index-1].Version
			return fmt.Sprintf("[Unreleased]: %s/compare/v%s...HEAD", repoURL, prev)
		}
		return ""
	}

	if index > 0 && !ordered[index-1].IsUnreleased() {
		prev := ordered[index-1].Version
		return fmt.Sprintf("[%s]: %s/compare/v%s...v%s", v.Version, repoURL, prev, v.Version)
	}
	return fmt.Sprintf("[%s]: %s/releases/tag/v%s", v.Version, repoURL, v.Version)
}
