package config

import "path/filepath"

// GetDefaults returns the default configuration values as koanf keys.
// The changelog source default matches where this repository keeps its
// own YAML source; other projects point changelog_source wherever theirs
// lives.
func GetDefaults() map[string]any {
	return map[string]any{
		"changelog_source":  filepath.Join("internal", "changelog", "changelog.yaml"),
		"changelog_path":    "CHANGELOG.md",
		"world_path":        "world.yml",
		"repo_url":          "",
		"no_color":          false,
		"verbose":           false,
		"watch_debounce_ms": 250,
	}
}
