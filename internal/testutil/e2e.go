// Package testutil provides test utilities and helpers for propworld tests.
package testutil

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"
)

var (
	// binaryPath caches the built propworld binary path.
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// E2EEnv provides an isolated environment for E2E testing: a temp working
// directory, a sanitized environment, and a freshly built propworld binary.
type E2EEnv struct {
	t       *testing.T
	tempDir string
	binDir  string
}

// CommandResult captures the result of running a propworld command.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// NewE2EEnv creates a new E2E test environment.
func NewE2EEnv(t *testing.T) *E2EEnv {
	t.Helper()

	env := &E2EEnv{
		t:       t,
		tempDir: t.TempDir(),
	}
	env.binDir = filepath.Join(env.tempDir, "bin")
	if err := os.MkdirAll(env.binDir, 0o755); err != nil {
		t.Fatalf("creating bin directory: %v", err)
	}

	env.buildBinary()
	return env
}

// buildBinary builds the propworld binary once per test session and copies
// it into this environment's bin directory.
func (e *E2EEnv) buildBinary() {
	e.t.Helper()

	buildOnce.Do(func() {
		binaryPath, buildErr = doBuild()
	})
	if buildErr != nil {
		e.t.Fatalf("building propworld: %v", buildErr)
	}

	content, err := os.ReadFile(binaryPath)
	if err != nil {
		e.t.Fatalf("reading propworld binary: %v", err)
	}
	if err := os.WriteFile(filepath.Join(e.binDir, "propworld"), content, 0o755); err != nil {
		e.t.Fatalf("writing propworld binary: %v", err)
	}
}

func doBuild() (string, error) {
	_, currentFile, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("determining current file location")
	}
	repoRoot := filepath.Join(filepath.Dir(currentFile), "..", "..")

	tmpDir, err := os.MkdirTemp("", "propworld-build-*")
	if err != nil {
		return "", fmt.Errorf("creating temp dir for build: %w", err)
	}

	out := filepath.Join(tmpDir, "propworld")
	cmd := exec.Command("go", "build", "-o", out, "./cmd/propworld")
	cmd.Dir = repoRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("building propworld: %w\nOutput: %s", err, output)
	}
	return out, nil
}

// Run executes a propworld command in the isolated environment.
func (e *E2EEnv) Run(args ...string) CommandResult {
	e.t.Helper()

	start := time.Now()

	cmd := exec.Command(filepath.Join(e.binDir, "propworld"), args...)
	cmd.Dir = e.tempDir
	cmd.Env = e.isolatedEnv()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	result := CommandResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = 1
		}
	}
	return result
}

// isolatedEnv builds a minimal environment. HOME and XDG_CONFIG_HOME point
// into the temp directory so a developer's real config cannot leak in.
func (e *E2EEnv) isolatedEnv() []string {
	env := []string{
		"PATH=" + os.Getenv("PATH"),
		"HOME=" + e.tempDir,
		"XDG_CONFIG_HOME=" + filepath.Join(e.tempDir, ".config"),
		"NO_COLOR=1",
	}
	for _, key := range []string{"TERM", "LANG", "LC_ALL", "TMPDIR"} {
		if val, ok := os.LookupEnv(key); ok {
			env = append(env, key+"="+val)
		}
	}
	return env
}

// TempDir returns the working directory commands run in.
func (e *E2EEnv) TempDir() string {
	return e.tempDir
}

// WriteFile writes a file relative to the temp working directory and
// returns its absolute path.
func (e *E2EEnv) WriteFile(name, content string) string {
	e.t.Helper()

	path := filepath.Join(e.tempDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		e.t.Fatalf("creating directory for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		e.t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

// ReadFile reads a file relative to the temp working directory.
func (e *E2EEnv) ReadFile(name string) string {
	e.t.Helper()

	content, err := os.ReadFile(filepath.Join(e.tempDir, name))
	if err != nil {
		e.t.Fatalf("reading %s: %v", name, err)
	}
	return string(content)
}

// FileExists checks a path relative to the temp working directory.
func (e *E2EEnv) FileExists(name string) bool {
	_, err := os.Stat(filepath.Join(e.tempDir, name))
	return err == nil
}
