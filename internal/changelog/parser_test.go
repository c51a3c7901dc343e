package changelog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `project: propworld
versions:
  - version: unreleased
    changes:
      added:
        - "Something in flight"
  - version: "2.0.0"
    date: "2026-08-14"
    changes:
      changed:
        - "Names are interned"
  - version: "1.0.0"
    date: "2026-05-02"
    changes:
      added:
        - "Initial release"
`

func TestLoadFromReader(t *testing.T) {
	t.Parallel()

	log, err := LoadFromReader(strings.NewReader(validYAML))
	require.NoError(t, err)

	assert.Equal(t, "propworld", log.Project)
	require.Len(t, log.Versions, 3)
	assert.True(t, log.Versions[0].IsUnreleased())
	assert.Equal(t, "2.0.0", log.Versions[1].Version)
	assert.Equal(t, "2026-08-14", log.Versions[1].Date)
	assert.Equal(t, []string{"Names are interned"}, log.Versions[1].Changes.Changed)
}

func TestLoadFromReaderInvalidYAML(t *testing.T) {
	t.Parallel()

	_, err := LoadFromReader(strings.NewReader("project: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing changelog YAML")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		yaml      string
		wantField string
	}{
		"missing project": {
			yaml: `versions:
  - version: "1.0.0"
    date: "2026-01-01"
    changes:
      added: ["x"]
`,
			wantField: "project",
		},
		"empty version": {
			yaml: `project: propworld
versions:
  - version: ""
    changes:
      added: ["x"]
`,
			wantField: "versions[0].version",
		},
		"invalid semver": {
			yaml: `project: propworld
versions:
  - version: "1.0"
    date: "2026-01-01"
    changes:
      added: ["x"]
`,
			wantField: "versions[0].version",
		},
		"missing date on release": {
			yaml: `project: propworld
versions:
  - version: "1.0.0"
    changes:
      added: ["x"]
`,
			wantField: "versions[0].date",
		},
		"bad date format": {
			yaml: `project: propworld
versions:
  - version: "1.0.0"
    date: "Jan 1, 2026"
    changes:
      added: ["x"]
`,
			wantField: "versions[0].date",
		},
		"no changes": {
			yaml: `project: propworld
versions:
  - version: "1.0.0"
    date: "2026-01-01"
    changes: {}
`,
			wantField: "versions[0].changes",
		},
		"blank entry": {
			yaml: `project: propworld
versions:
  - version: "1.0.0"
    date: "2026-01-01"
    changes:
      fixed: ["   "]
`,
			wantField: "versions[0].changes.fixed[0]",
		},
		"duplicate version": {
			yaml: `project: propworld
versions:
  - version: "1.0.0"
    date: "2026-01-02"
    changes:
      added: ["x"]
  - version: "v1.0.0"
    date: "2026-01-01"
    changes:
      added: ["y"]
`,
			wantField: "versions[1].version",
		},
		"two unreleased": {
			yaml: `project: propworld
versions:
  - version: unreleased
    changes:
      added: ["x"]
  - version: unreleased
    changes:
      added: ["y"]
`,
			wantField: "versions[1].version",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadFromReader(strings.NewReader(tc.yaml))
			require.Error(t, err)
			require.True(t, IsValidationError(err), "expected ValidationError, got %v", err)
			assert.Contains(t, err.Error(), tc.wantField)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "changelog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validYAML), 0o644))

	log, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "propworld", log.Project)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestNormalizeVersion(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		input string
		want  string
	}{
		"bare":      {input: "2.0.0", want: "2.0.0"},
		"v prefix":  {input: "v2.0.0", want: "2.0.0"},
		"uppercase": {input: "V2.0.0", want: "2.0.0"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, NormalizeVersion(tc.input))
		})
	}
}

func TestVersionSemver(t *testing.T) {
	t.Parallel()

	v := Version{Version: "2.1.3"}
	require.NotNil(t, v.Semver())
	assert.Equal(t, uint64(2), v.Semver().Major())

	assert.Nil(t, Version{Version: "unreleased"}.Semver())
	assert.Nil(t, Version{Version: "not-a-version"}.Semver())
}

func TestVersionEntries(t *testing.T) {
	t.Parallel()

	v := Version{
		Version: "1.0.0",
		Changes: Changes{
			Added: []string{"a", "b"},
			Fixed: []string{"c"},
		},
	}

	entries := v.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, Entry{Text: "a", Category: "added", Version: "1.0.0"}, entries[0])
	assert.Equal(t, Entry{Text: "c", Category: "fixed", Version: "1.0.0"}, entries[2])
}
