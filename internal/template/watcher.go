package template

import (
	"context"
	"log/slog"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDelay coalesces the burst of events an editor save produces.
const reloadDelay = 150 * time.Millisecond

// Watch reloads r whenever a template file in its directory is created,
// written, removed or renamed, until ctx is cancelled. onReload (if non-nil)
// runs after each successful reload. A registry without a directory
// returns immediately.
func Watch(ctx context.Context, r *Registry, logger *slog.Logger, onReload func()) error {
	if r.dir == "" {
		return nil
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(r.dir); err != nil {
		return err
	}
	logger.Info("template watcher: started", slog.String("dir", r.dir))

	var timer *time.Timer
	var timerCh <-chan time.Time
	schedule := func() {
		if timer == nil {
			timer = time.NewTimer(reloadDelay)
			timerCh = timer.C
			return
		}
		timer.Reset(reloadDelay)
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			logger.Info("template watcher: stopped")
			return nil

		case <-timerCh:
			if err := r.Reload(); err != nil {
				logger.Warn("template watcher: reload failed", slog.String("error", err.Error()))
				continue
			}
			for _, p := range r.Problems() {
				logger.Warn("template watcher: skipped template", slog.String("error", p.Error()))
			}
			logger.Debug("template watcher: reloaded", slog.Int("templates", len(r.List())))
			if onReload != nil {
				onReload()
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !IsTemplateFile(ev.Name) {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0 {
				schedule()
			}

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("template watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}
