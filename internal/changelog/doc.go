// Package changelog provides YAML-first changelog management for propworld.
//
// This package implements:
//   - changelog.yaml parsing and validation
//   - Markdown generation following Keep a Changelog format
//   - Markdown changelog parsing and structural linting
//   - Version and entry querying for CLI display
//   - Embedded changelog support via go:embed
//
// The changelog.yaml file at internal/changelog/changelog.yaml is the single
// source of truth for this project's changelog; CHANGELOG.md is generated
// from it. Rendered documents list versions oldest first, so version numbers
// read in non-decreasing order from top to bottom, and the linter enforces
// exactly that shape on any Markdown changelog it is pointed at.
package changelog
