package changelog

import (
	"bytes"
	_ "embed"
	"fmt"
)

// changelogYAML is the canonical changelog source, embedded so commands
// like "propworld changelog show" work without a checkout.
//
//go:embed changelog.yaml
var changelogYAML []byte

// LoadEmbedded parses and validates the embedded changelog source.
func LoadEmbedded() (*Changelog, error) {
	log, err := LoadFromReader(bytes.NewReader(changelogYAML))
	if err != nil {
		return nil, fmt.Errorf("loading embedded changelog: %w", err)
	}
	return log, nil
}
