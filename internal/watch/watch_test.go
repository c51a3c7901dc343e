package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWatcherDetectsWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.yml")
	require.NoError(t, os.WriteFile(path, []byte("entities: []\n"), 0o644))

	w, err := New(path, 20*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := w.Watch(ctx)

	require.NoError(t, os.WriteFile(path, []byte("entities:\n  - name: a\n"), 0o644))

	select {
	case ev, ok := <-events:
		require.True(t, ok)
		assert.Equal(t, w.Path(), ev.Path)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}

func TestWatcherCoalescesBursts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.yml")
	require.NoError(t, os.WriteFile(path, []byte("a\n"), 0o644))

	w, err := New(path, 100*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := w.Watch(ctx)

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("burst\n"), 0o644))
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-events:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for coalesced event")
	}

	// The burst already ended; no second notification should follow.
	select {
	case _, ok := <-events:
		if ok {
			t.Fatal("expected a single coalesced event")
		}
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "world.yml")
	require.NoError(t, os.WriteFile(path, []byte("a\n"), 0o644))

	w, err := New(path, 10*time.Millisecond)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := w.Watch(ctx)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yml"), []byte("b\n"), 0o644))

	select {
	case ev := <-events:
		t.Fatalf("unexpected event for sibling file: %+v", ev)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcherCloseStopsLoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.yml")
	require.NoError(t, os.WriteFile(path, []byte("a\n"), 0o644))

	w, err := New(path, 10*time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := w.Watch(ctx)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close(), "double close must be safe")

	select {
	case _, ok := <-events:
		assert.False(t, ok, "channel should close when watcher closes")
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}

func TestNewMissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing", "world.yml"), 0)
	require.Error(t, err)
}
