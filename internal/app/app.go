package app

import (
	"context"
	"fmt"
	"time"

	"github.com/five82/glide/internal/config"
	"github.com/five82/glide/internal/logging"
	"github.com/five82/glide/internal/prefs"
	"github.com/five82/glide/internal/ui"
)

// Options configure the glide application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses ~/.config/glide/prefs.toml
	LogPath    string // empty uses ~/.local/state/glide/glide.log
	LogLevel   string
	PollEvery  time.Duration // zero uses the default
}

// Run boots the glide TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	level, err := logging.ParseLevel(opts.LogLevel)
	if err != nil {
		return err
	}
	logger, logPath, closeLog, err := logging.Open(opts.LogPath, level)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		logger.Error("load config failed", "error", err)
		return fmt.Errorf("load config: %w", err)
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs, err := prefs.Load(prefsPath)
	if err != nil {
		logger.Warn("using default preferences", "error", err)
	}

	interval := defaultPollInterval
	if opts.PollEvery > 0 {
		interval = opts.PollEvery
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Watch the config file for edits
	reloads := make(chan ui.ReloadMsg)
	w := newWatcher(cfg.Path, interval, logger, reloads)
	w.prime()
	go w.run(ctx)

	logger.Info("starting", "config", cfg.Path, "slides", len(cfg.Slides), "theme", userPrefs.Theme)

	return ui.Run(ctx, ui.Options{
		Config:    cfg,
		Prefs:     userPrefs,
		PrefsPath: prefsPath,
		LogPath:   logPath,
		Logger:    logger,
		Reloads:   reloads,
	})
}
