package tokens

import (
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnana997/lucidex/pkg/util"
)

func TestWatcher_ReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "colors.tokens.json")
	writeFile(t, path, `{"colors": {"a": {"name": "A", "value": "#000000", "variable": "--a"}}}`)

	sources, err := LoadSourcesFromDir(dir, util.Discard())
	require.NoError(t, err)
	store := NewStore(sources, util.Discard())
	require.Equal(t, 1, store.Index().Len())

	reloaded := make(chan int, 4)
	w, err := NewWatcher(dir, store, WatchOptions{
		DebounceMs: 20,
		OnReload:   func(n int) { reloaded <- n },
	}, util.Discard())
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	writeFile(t, path, `{"colors": {
		"a": {"name": "A", "value": "#000000", "variable": "--a"},
		"b": {"name": "B", "value": "#FFFFFF", "variable": "--b"}
	}}`)

	select {
	case n := <-reloaded:
		assert.Equal(t, 1, n)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not reload")
	}
	assert.Equal(t, 2, store.Index().Len())
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(nil, util.Discard())

	reloaded := make(chan int, 1)
	w, err := NewWatcher(dir, store, WatchOptions{
		DebounceMs: 20,
		OnReload:   func(n int) { reloaded <- n },
	}, util.Discard())
	require.NoError(t, err)
	require.NoError(t, w.Start())
	defer w.Stop()

	writeFile(t, filepath.Join(dir, "notes.txt"), "hello")

	select {
	case <-reloaded:
		t.Fatal("unexpected reload")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_StopIdempotent(t *testing.T) {
	w, err := NewWatcher(t.TempDir(), NewStore(nil, util.Discard()), WatchOptions{}, util.Discard())
	require.NoError(t, err)
	require.NoError(t, w.Start())
	assert.NoError(t, w.Stop())
	assert.NoError(t, w.Stop())
	assert.Error(t, w.Start())
}

func TestWatcher_StopWaitsForReload(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "colors.tokens.json"), `{"colors": {"a": {"name": "A", "value": "#000000", "variable": "--a"}}}`)

	var calls atomic.Int32
	entered := make(chan struct{})
	release := make(chan struct{})
	w, err := NewWatcher(dir, NewStore(nil, util.Discard()), WatchOptions{
		OnReload: func(int) {
			if calls.Add(1) == 1 {
				close(entered)
				<-release
			}
		},
	}, util.Discard())
	require.NoError(t, err)
	require.NoError(t, w.Start())

	go w.reload()
	<-entered

	stopped := make(chan struct{})
	go func() {
		_ = w.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
		t.Fatal("Stop returned while a reload was in progress")
	case <-time.After(100 * time.Millisecond):
	}

	close(release)
	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("Stop did not return after the reload finished")
	}

	w.reload()
	assert.Equal(t, int32(1), calls.Load(), "no reload runs after Stop")
}
