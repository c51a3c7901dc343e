package changelog

import "github.com/Masterminds/semver/v3"

// Changelog is the root of a changelog.yaml source file: the project
// identifier and an ordered list of versions, newest first.
type Changelog struct {
	Project  string    `yaml:"project"`
	Versions []Version `yaml:"versions"`
}

// Version is a single version entry. The Version field is a bare semantic
// version (e.g. "2.0.0") or the special identifier "unreleased"; "v"
// prefixes are normalized away on input. Date is YYYY-MM-DD and required
// for released versions.
type Version struct {
	Version string  `yaml:"version"`
	Date    string  `yaml:"date,omitempty"`
	Changes Changes `yaml:"changes"`
}

// Changes groups change entries by Keep a Changelog category
// (https://keepachangelog.com/en/1.1.0/). Empty categories are omitted
// when rendering.
type Changes struct {
	Added      []string `yaml:"added,omitempty"`
	Changed    []string `yaml:"changed,omitempty"`
	Deprecated []string `yaml:"deprecated,omitempty"`
	Removed    []string `yaml:"removed,omitempty"`
	Fixed      []string `yaml:"fixed,omitempty"`
	Security   []string `yaml:"security,omitempty"`
}

// Entry is a flattened view of one change with its version and category
// context, used for querying and display.
type Entry struct {
	Text     string `yaml:"text"`
	Category string `yaml:"category"`
	Version  string `yaml:"version"`
}

// categoryEntries pairs a category name with its entries.
type categoryEntries struct {
	Name    string
	Entries []string
}

// byCategory returns the categories in standard order with their entries.
func (c *Changes) byCategory() []categoryEntries {
	return []categoryEntries{
		{"added", c.Added},
		{"changed", c.Changed},
		{"deprecated", c.Deprecated},
		{"removed", c.Removed},
		{"fixed", c.Fixed},
		{"security", c.Security},
	}
}

// IsEmpty returns true if no category has any entries.
func (c Changes) IsEmpty() bool {
	return c.Count() == 0
}

// Count returns the total number of entries across all categories.
func (c Changes) Count() int {
	n := 0
	for _, cat := range c.byCategory() {
		n += len(cat.Entries)
	}
	return n
}

// IsUnreleased returns true if this version holds unreleased changes.
func (v Version) IsUnreleased() bool {
	return v.Version == "unreleased"
}

// Semver parses the version identifier. Returns nil for unreleased or
// malformed versions.
func (v Version) Semver() *semver.Version {
	if v.IsUnreleased() {
		return nil
	}
	parsed, err := semver.StrictNewVersion(NormalizeVersion(v.Version))
	if err != nil {
		return nil
	}
	return parsed
}

// Entries returns a flattened list of all entries in this version, in
// standard category order.
func (v Version) Entries() []Entry {
	entries := make([]Entry, 0, v.Changes.Count())
	for _, cat := range v.Changes.byCategory() {
		for _, text := range cat.Entries {
			entries = append(entries, Entry{Text: text, Category: cat.Name, Version: v.Version})
		}
	}
	return entries
}

// ValidCategories returns the Keep a Changelog categories in their
// standard rendering order.
func ValidCategories() []string {
	return []string{"added", "changed", "deprecated", "removed", "fixed", "security"}
}
