package config

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsConfigWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	path := filepath.Join(dir, "tuning.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, path, name)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for a config write")
	}
}

func TestWatcherIgnoresNonConfigFiles(t *testing.T) {
	assert.True(t, isConfigFile("a/tuning.json"))
	assert.True(t, isConfigFile("stages/demo.YAML"))
	assert.True(t, isConfigFile("x.yml"))
	assert.False(t, isConfigFile("notes.txt"))
	assert.False(t, isConfigFile("replay_20260829_120000.json.bak"))
}

func TestWatcherCloseDuringEventBurst(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)

	// More distinct files than the Events buffer holds, so the run loop
	// ends up blocked on a send with events still pending.
	for i := 0; i < 40; i++ {
		path := filepath.Join(dir, fmt.Sprintf("t%02d.json", i))
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
	}
	time.Sleep(300 * time.Millisecond)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close(), "second close is a no-op")

	// The run loop owns the channels and closes them on exit; draining
	// must terminate instead of panicking.
	done := make(chan struct{})
	go func() {
		for range w.Events {
		}
		for range w.Errors {
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("channels were not closed after Close")
	}
}
