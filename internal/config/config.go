// Package config provides hierarchical configuration management for
// propworld using koanf. Configuration is loaded with priority: environment
// variables > project config (.propworld/config.yml) > user config
// (~/.config/propworld/config.yml) > defaults. Project config may also be
// written as JSON (.propworld/config.json).
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Configuration represents the propworld CLI tool configuration.
type Configuration struct {
	// ChangelogSource is the path to the YAML changelog source.
	// Can be set via PROPWORLD_CHANGELOG_SOURCE.
	ChangelogSource string `koanf:"changelog_source"`

	// ChangelogPath is the path of the rendered Markdown changelog.
	// Can be set via PROPWORLD_CHANGELOG_PATH.
	ChangelogPath string `koanf:"changelog_path"`

	// WorldPath is the default world file for world subcommands.
	// Can be set via PROPWORLD_WORLD_PATH.
	WorldPath string `koanf:"world_path"`

	// RepoURL overrides git remote detection for changelog comparison
	// links. Can be set via PROPWORLD_REPO_URL.
	RepoURL string `koanf:"repo_url"`

	// NoColor disables colored terminal output.
	// Can be set via PROPWORLD_NO_COLOR.
	NoColor bool `koanf:"no_color"`

	// Verbose enables additional diagnostic output.
	// Can be set via PROPWORLD_VERBOSE.
	Verbose bool `koanf:"verbose"`

	// WatchDebounceMS is the debounce window for world watch reloads, in
	// milliseconds. Editors often emit bursts of write events for one
	// save. Can be set via PROPWORLD_WATCH_DEBOUNCE_MS.
	WatchDebounceMS int `koanf:"watch_debounce_ms"`
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path
	// (default: .propworld/config.yml, falling back to .propworld/config.json).
	ProjectConfigPath string
}

// Load loads configuration from user, project, and environment sources.
// Priority: Environment variables > Project config > User config > Defaults.
func Load(projectConfigPath string) (*Configuration, error) {
	return LoadWithOptions(LoadOptions{ProjectConfigPath: projectConfigPath})
}

// LoadWithOptions loads configuration with custom options.
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		k.Set(key, value)
	}

	if err := loadUserConfig(k); err != nil {
		return nil, err
	}
	if err := loadProjectConfig(k, opts.ProjectConfigPath); err != nil {
		return nil, err
	}
	if err := k.Load(env.Provider("PROPWORLD_", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment config: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// loadUserConfig loads the user-level YAML config if it exists.
func loadUserConfig(k *koanf.Koanf) error {
	path, err := UserConfigPath()
	if err != nil || !fileExists(path) {
		return nil
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load user config %s: %w", path, err)
	}
	return nil
}

// loadProjectConfig loads the project-level config. YAML is preferred; a
// JSON file at the conventional path is accepted as well. An explicit
// custom path must exist and its parser is chosen by extension.
func loadProjectConfig(k *koanf.Koanf, customPath string) error {
	if customPath != "" {
		if !fileExists(customPath) {
			return fmt.Errorf("config file not found: %s", customPath)
		}
		return loadConfigFile(k, customPath)
	}

	yamlPath := ProjectConfigPath()
	jsonPath := ProjectConfigJSONPath()
	switch {
	case fileExists(yamlPath):
		return loadConfigFile(k, yamlPath)
	case fileExists(jsonPath):
		return loadConfigFile(k, jsonPath)
	}
	return nil
}

// loadConfigFile loads a config file with the parser matching its extension.
func loadConfigFile(k *koanf.Koanf, path string) error {
	var parser koanf.Parser = yaml.Parser()
	if strings.HasSuffix(path, ".json") {
		parser = json.Parser()
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return nil
}

// fileExists returns true if the file exists and is readable.
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// envTransform converts environment variable names to config keys.
// Example: PROPWORLD_WORLD_PATH -> world_path.
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, "PROPWORLD_"))
}
