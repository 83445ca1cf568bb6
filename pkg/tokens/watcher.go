package tokens

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchOptions configures a Watcher.
type WatchOptions struct {
	// DebounceMs groups bursts of file events into one reload. Default 200.
	DebounceMs int

	// OnReload, if set, is called after each successful reload with the
	// number of sources loaded.
	OnReload func(sources int)
}

// Watcher reloads a Store whenever token documents under a directory change.
//
// Editors often emit several events per save (truncate, write, chmod), so
// events are debounced and a single reload reads the whole directory again.
// A reload that fails keeps the previous sources.
type Watcher struct {
	watcher *fsnotify.Watcher
	dir     string
	store   *Store
	logger  *slog.Logger
	options WatchOptions

	debounceMu sync.Mutex
	timer      *time.Timer

	mu       sync.Mutex
	started  bool
	stopped  bool
	stopChan chan struct{}

	// reloads counts reloads past the stopped check; Stop waits for them.
	reloads sync.WaitGroup
}

// NewWatcher creates a watcher for dir that reloads store.
func NewWatcher(dir string, store *Store, options WatchOptions, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if options.DebounceMs <= 0 {
		options.DebounceMs = 200
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	return &Watcher{
		watcher:  fw,
		dir:      dir,
		store:    store,
		logger:   logger,
		options:  options,
		stopChan: make(chan struct{}),
	}, nil
}

// Start begins watching. It may be called once.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return fmt.Errorf("watcher already stopped")
	}
	if w.started {
		return fmt.Errorf("watcher already started")
	}

	err := filepath.WalkDir(w.dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != w.dir && skipDirs[d.Name()] {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			w.logger.Warn("failed to watch directory", "path", path, "error", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to setup watches: %w", err)
	}

	w.started = true
	go w.eventLoop()
	w.logger.Info("token watcher started", "dir", w.dir)
	return nil
}

// Stop stops watching and waits for a reload already in progress, so the
// store is not touched after Stop returns. Safe to call more than once.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.stopped = true
	close(w.stopChan)
	w.mu.Unlock()

	w.debounceMu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.debounceMu.Unlock()

	err := w.watcher.Close()
	w.reloads.Wait()
	w.logger.Info("token watcher stopped")
	return err
}

func (w *Watcher) eventLoop() {
	for {
		select {
		case <-w.stopChan:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("token watcher error", "error", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&fsnotify.Create == fsnotify.Create {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.watcher.Add(event.Name); err != nil {
				w.logger.Warn("failed to watch directory", "path", event.Name, "error", err)
			}
			return
		}
	}
	if !IsSourceFile(event.Name) {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}

	w.logger.Debug("token file event", "op", event.Op.String(), "file", event.Name)
	w.scheduleReload()
}

func (w *Watcher) scheduleReload() {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(time.Duration(w.options.DebounceMs)*time.Millisecond, w.reload)
}

func (w *Watcher) reload() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.reloads.Add(1)
	w.mu.Unlock()
	defer w.reloads.Done()

	sources, err := LoadSourcesFromDir(w.dir, w.logger)
	if err != nil {
		w.logger.Error("token reload failed, keeping previous sources", "dir", w.dir, "error", err)
		return
	}
	w.store.Reload(sources)
	if w.options.OnReload != nil {
		w.options.OnReload(len(sources))
	}
}
