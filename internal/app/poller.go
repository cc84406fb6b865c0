package app

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/five82/glide/internal/config"
	"github.com/five82/glide/internal/ui"
)

const (
	defaultPollInterval = 2 * time.Second
	maxBackoff          = 30 * time.Second

	// settleDelay batches the burst of events an editor save produces.
	settleDelay = 50 * time.Millisecond
)

// calculateBackoff doubles base for each consecutive failure, capped at
// maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	d := base
	for range max(failures, 0) {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return min(d, maxBackoff)
}

// watcher follows the config file and reloads it when its modification
// time or size changes. File events trigger a check early; the poll catches
// anything the events miss.
type watcher struct {
	path     string
	interval time.Duration
	logger   *log.Logger
	out      chan<- ui.ReloadMsg

	exists   bool
	modTime  time.Time
	size     int64
	failures int
}

func newWatcher(path string, interval time.Duration, logger *log.Logger, out chan<- ui.ReloadMsg) *watcher {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	return &watcher{path: path, interval: interval, logger: logger, out: out}
}

// prime records the current file state so the first check only reports
// later edits.
func (w *watcher) prime() {
	info, err := os.Stat(w.path)
	if err != nil {
		return
	}
	w.exists = true
	w.modTime = info.ModTime()
	w.size = info.Size()
}

// check stats the file and returns a reload when it changed. A removed file
// reloads the built-in deck.
func (w *watcher) check() (ui.ReloadMsg, bool) {
	info, err := os.Stat(w.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if !w.exists {
			return ui.ReloadMsg{}, false
		}
		w.exists = false
		w.logger.Info("config removed", "path", w.path)
	case err != nil:
		w.failures++
		w.logger.Warn("config stat failed", "path", w.path, "error", err, "failures", w.failures)
		return ui.ReloadMsg{Err: err}, true
	default:
		if w.exists && info.ModTime().Equal(w.modTime) && info.Size() == w.size {
			return ui.ReloadMsg{}, false
		}
		w.exists = true
		w.modTime = info.ModTime()
		w.size = info.Size()
	}

	cfg, err := config.Load(w.path)
	if err != nil {
		w.failures++
		w.logger.Warn("config reload failed", "path", w.path, "error", err, "failures", w.failures)
		return ui.ReloadMsg{Err: err}, true
	}
	w.failures = 0
	w.logger.Debug("config changed", "path", w.path, "slides", len(cfg.Slides))
	return ui.ReloadMsg{Config: cfg}, true
}

// notify watches the config directory so edits are seen before the next
// poll. Editors often replace the file by rename, so the directory is
// watched rather than the file. A nil channel means polling only.
func (w *watcher) notify() (<-chan fsnotify.Event, func()) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		w.logger.Debug("config notify unavailable", "error", err)
		return nil, func() {}
	}
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		_ = fw.Close()
		w.logger.Debug("config notify unavailable", "path", w.path, "error", err)
		return nil, func() {}
	}
	go func() {
		for err := range fw.Errors {
			w.logger.Debug("config notify error", "error", err)
		}
	}()
	return fw.Events, func() { _ = fw.Close() }
}

// relevant reports whether ev may have changed the config file.
func (w *watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
		return false
	}
	return ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0
}

// run checks the file on every poll tick and shortly after each file event,
// until ctx is cancelled. Failures back off the poll interval.
func (w *watcher) run(ctx context.Context) {
	events, stop := w.notify()
	defer stop()

	timer := time.NewTimer(w.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				events = nil
			} else if w.relevant(ev) {
				timer.Reset(settleDelay)
			}
			continue
		case <-timer.C:
		}
		if msg, ok := w.check(); ok {
			select {
			case w.out <- msg:
			case <-ctx.Done():
				return
			}
		}
		timer.Reset(calculateBackoff(w.failures, w.interval))
	}
}
