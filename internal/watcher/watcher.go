// Package watcher signals when the Tuple log file changes, so the panel can
// refresh between polls instead of waiting for the next tick.
package watcher

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors the Tuple log for changes using fsnotify with a
// stat-polling fallback. The log may not exist yet, so the parent directory
// is watched and events are filtered by name.
type Watcher struct {
	path string

	// events delivers a signal per change. Buffered to 1 so back-to-back
	// writes coalesce into a single refresh.
	events chan struct{}
	done   chan struct{}
	once   sync.Once

	fsw          *fsnotify.Watcher
	pollInterval time.Duration
	log          *slog.Logger
}

// New creates a watcher for the given log path. It never fails: if fsnotify
// is unavailable or the directory cannot be watched, it falls back to
// polling.
func New(logPath string, log *slog.Logger) *Watcher {
	w := &Watcher{
		path:         logPath,
		events:       make(chan struct{}, 1),
		done:         make(chan struct{}),
		pollInterval: 2 * time.Second,
		log:          log,
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		log.Info("fsnotify unavailable, polling instead", "error", err)
		go w.poll()
		return w
	}
	if err := fsw.Add(filepath.Dir(logPath)); err != nil {
		log.Info("cannot watch log directory, polling instead", "path", logPath, "error", err)
		_ = fsw.Close()
		go w.poll()
		return w
	}

	w.fsw = fsw
	go w.run()
	return w
}

// Events returns the channel that receives change signals.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Close stops the watcher. Safe to call more than once.
func (w *Watcher) Close() {
	w.once.Do(func() {
		close(w.done)
		if w.fsw != nil {
			_ = w.fsw.Close()
		}
	})
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Name != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				w.signal()
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", "error", err)
		}
	}
}

func (w *Watcher) poll() {
	var lastSize int64
	var lastMod time.Time

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.done:
			return
		case <-ticker.C:
			info, err := os.Stat(w.path)
			if err != nil {
				continue
			}
			if info.Size() != lastSize || !info.ModTime().Equal(lastMod) {
				lastSize = info.Size()
				lastMod = info.ModTime()
				w.signal()
			}
		}
	}
}

func (w *Watcher) signal() {
	select {
	case w.events <- struct{}{}:
	default:
	}
}
