package changelog

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"
)

// ValidationError reports a changelog schema violation with field context.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Load reads and validates a changelog.yaml file from the given path.
func Load(path string) (*Changelog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening changelog file: %w", err)
	}
	defer f.Close()

	return LoadFromReader(f)
}

// LoadFromReader reads and validates a changelog.yaml from an io.Reader.
func LoadFromReader(r io.Reader) (*Changelog, error) {
	var changelog Changelog

	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&changelog); err != nil {
		return nil, fmt.Errorf("parsing changelog YAML: %w", err)
	}

	if err := Validate(&changelog); err != nil {
		return nil, err
	}

	return &changelog, nil
}

// Validate checks that a Changelog satisfies all schema constraints:
// a non-empty project, unique semver (or one "unreleased") versions,
// dated releases, and at least one non-blank entry per version.
func Validate(c *Changelog) error {
	if c.Project == "" {
		return &ValidationError{Field: "project", Message: "required field is empty"}
	}

	unreleasedCount := 0
	seen := make(map[string]bool)

	for i, v := range c.Versions {
		if err := validateVersion(&v, i); err != nil {
			return err
		}

		normalized := NormalizeVersion(v.Version)
		if seen[normalized] {
			return &ValidationError{
				Field:   fmt.Sprintf("versions[%d].version", i),
				Message: fmt.Sprintf("duplicate version %q", v.Version),
			}
		}
		seen[normalized] = true

		if v.IsUnreleased() {
			unreleasedCount++
		}
	}

	if unreleasedCount > 1 {
		return &ValidationError{
			Field:   "versions",
			Message: "only one 'unreleased' version is allowed",
		}
	}

	return nil
}

// validateVersion checks constraints for a single version entry.
func validateVersion(v *Version, index int) error {
	if v.Version == "" {
		return &ValidationError{
			Field:   fmt.Sprintf("versions[%d].version", index),
			Message: "required field is empty",
		}
	}

	if !v.IsUnreleased() {
		if _, err := semver.StrictNewVersion(NormalizeVersion(v.Version)); err != nil {
			return &ValidationError{
				Field:   fmt.Sprintf("versions[%d].version", index),
				Message: fmt.Sprintf("invalid semver %q (expected: X.Y.Z)", v.Version),
			}
		}
		if v.Date == "" {
			return &ValidationError{
				Field:   fmt.Sprintf("versions[%d].date", index),
				Message: "date is required for released versions",
			}
		}
	}

	if v.Date != "" && !datePattern.MatchString(v.Date) {
		return &ValidationError{
			Field:   fmt.Sprintf("versions[%d].date", index),
			Message: fmt.Sprintf("invalid date format %q (expected: YYYY-MM-DD)", v.Date),
		}
	}

	if v.Changes.IsEmpty() {
		return &ValidationError{
			Field:   fmt.Sprintf("versions[%d].changes", index),
			Message: "at least one change entry is required",
		}
	}

	return validateChangeEntries(&v.Changes, index)
}

// validateChangeEntries checks that all change entries are non-blank.
func validateChangeEntries(c *Changes, versionIndex int) error {
	for _, cat := range c.byCategory() {
		for i, entry := range cat.Entries {
			if strings.TrimSpace(entry) == "" {
				return &ValidationError{
					Field:   fmt.Sprintf("versions[%d].changes.%s[%d]", versionIndex, cat.Name, i),
					Message: "change entry cannot be empty",
				}
			}
		}
	}
	return nil
}

// NormalizeVersion strips a leading "v" so both "v2.0.0" and "2.0.0" are
// accepted.
func NormalizeVersion(version string) string {
	return strings.TrimPrefix(strings.ToLower(version), "v")
}

// IsValidationError returns true if the error is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
