package main

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// bursts of writes within this delay cause one callback
const watchDelay = 200 * time.Millisecond

// WatchArchive calls onChange after the archive is written or re-created, until ctx ends.
// The parent directory is watched so replaced files are still seen.
func WatchArchive(ctx context.Context, archive string, onChange func() error) error {
	target, err := filepath.Abs(archive)
	if err != nil {
		return err
	}
	wt, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Error("watcher", "error", err)
		return err
	}
	defer wt.Close()
	if err = wt.Add(filepath.Dir(target)); err != nil {
		slog.Error("watcher add", "path", filepath.Dir(target), "error", err)
		return err
	}
	slog.Info("watching", "name", target)
	timer := time.NewTimer(watchDelay)
	timer.Stop()
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			slog.Info("stop watching", "name", target)
			return nil
		case event, ok := <-wt.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			slog.Debug("got watcher event", "event", event, "op", event.Op.String())
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				timer.Reset(watchDelay)
			}
		case err, ok := <-wt.Errors:
			if !ok {
				return nil
			}
			slog.Warn("got watcher error", "error", err)
		case <-timer.C:
			slog.Info("modified", "name", target)
			if err := onChange(); err != nil {
				return err
			}
		}
	}
}
