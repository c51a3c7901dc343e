package config

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the path to the user-level config file.
// This follows the XDG Base Directory Specification:
// - Linux: ~/.config/propworld/config.yml
// - macOS: ~/Library/Application Support/propworld/config.yml
// - Windows: %APPDATA%\propworld\config.yml
//
// If XDG_CONFIG_HOME is set, it will be respected on Linux.
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "propworld", "config.yml"), nil
}

// ProjectConfigPath returns the path to the project-level config file.
// This is always .propworld/config.yml relative to the current directory.
func ProjectConfigPath() string {
	return filepath.Join(".propworld", "config.yml")
}

// ProjectConfigJSONPath returns the JSON variant of the project config path.
func ProjectConfigJSONPath() string {
	return filepath.Join(".propworld", "config.json")
}

// ProjectConfigDir returns the path to the project-level config directory.
func ProjectConfigDir() string {
	return ".propworld"
}
