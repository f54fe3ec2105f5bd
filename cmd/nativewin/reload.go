package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/1broseidon/nativewin/internal/config"
)

// titleWatcher reloads the config file whenever it changes and publishes
// the new title on Titles. Only the latest unread title is kept.
type titleWatcher struct {
	Titles chan string

	path    string
	last    string
	log     *slog.Logger
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// watchTitle starts watching path. The parent directory is watched rather
// than the file so that editors which replace the file on save keep
// triggering reloads.
func watchTitle(path, current string, log *slog.Logger) (*titleWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	w := &titleWatcher{
		Titles:  make(chan string, 1),
		path:    filepath.Clean(path),
		last:    current,
		log:     log,
		watcher: watcher,
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *titleWatcher) loop() {
	defer close(w.done)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("config watcher error", "error", err)
		}
	}
}

func (w *titleWatcher) reload() {
	// A zero-length file is a save in progress (truncate before write).
	if info, err := os.Stat(w.path); err != nil || info.Size() == 0 {
		return
	}
	res, err := config.LoadFromPath(w.path)
	if err != nil {
		// Editors may write in several steps; the final write reloads cleanly.
		w.log.Warn("config reload failed", "path", w.path, "error", err)
		return
	}
	title := res.Config.Title
	if title == w.last {
		return
	}
	w.last = title
	w.log.Info("config reloaded", "path", w.path, "title", title)

	select {
	case <-w.Titles:
	default:
	}
	w.Titles <- title
}

// Stop closes the watcher and waits for its goroutine to exit.
func (w *titleWatcher) Stop() {
	w.watcher.Close()
	<-w.done
}
