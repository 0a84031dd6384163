package server

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/colorvane/colorvane/internal/runlog"
)

// reloadDebounce coalesces the burst of events an atomic write produces.
const reloadDebounce = 500 * time.Millisecond

// watchCatalog reloads the catalog whenever its file changes. The parent
// directory is watched, not the file: the writer replaces the file by
// rename, which would silently detach a file-level watch.
func (s *Server) watchCatalog(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	dir := filepath.Dir(s.catalogPath)
	if err := w.Add(dir); err != nil {
		return err
	}
	runlog.Log.Info("Watching catalog", "path", s.catalogPath)

	target := filepath.Clean(s.catalogPath)
	var timer *time.Timer
	reload := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(reloadDebounce, func() {
				select {
				case reload <- struct{}{}:
				default:
				}
			})

		case <-reload:
			if err := s.Reload(); err != nil {
				runlog.Log.Warn("Catalog reload failed, keeping previous", "error", err)
				continue
			}
			catalogReloads.Inc()
			runlog.Log.Info("Catalog reloaded", "entries", len(s.Catalog()))

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			runlog.Log.Warn("Watcher error", "error", err)
		}
	}
}
