package config

import "fmt"

// Validate checks configuration values for consistency.
func Validate(cfg *Configuration) error {
	if cfg.ChangelogSource == "" {
		return fmt.Errorf("changelog_source cannot be empty")
	}
	if cfg.ChangelogPath == "" {
		return fmt.Errorf("changelog_path cannot be empty")
	}
	if cfg.WorldPath == "" {
		return fmt.Errorf("world_path cannot be empty")
	}
	if cfg.WatchDebounceMS < 0 {
		return fmt.Errorf("watch_debounce_ms cannot be negative (got %d)", cfg.WatchDebounceMS)
	}
	return nil
}
