// Package app provides the orchestration layer for the glide application.
//
// # Overview
//
// This package wires together logging, configuration, preferences, the config
// watcher and the UI. It is the composition root where dependencies are
// initialized and connected.
//
// # Startup
//
//  1. Parse the log level and open the log file (~/.local/state/glide/glide.log)
//  2. Load the deck from ~/.config/glide/carousel.toml, or the built-in deck
//  3. Load UI preferences from ~/.config/glide/prefs.toml
//  4. Start the watcher goroutine that reloads the deck on edits
//  5. Start the TUI and block until the user exits or the context cancels
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │ Initialize everything
//	└──────┬───────┘
//	       │
//	       ├─────> logging.Open()   Log file shared with the journal panel
//	       ├─────> config.Load()    Parse the deck
//	       ├─────> prefs.Load()     Theme, start slide, reduced motion
//	       ├─────> watcher.run()    Follow the config file
//	       └─────> ui.Run()         Start TUI (blocks)
//
//	Watcher loop:
//	┌─────────────────────────────────────────┐
//	│ watcher.run() goroutine                 │
//	│  ├─> fsnotify event or poll tick        │
//	│  ├─> os.Stat()  mtime and size          │
//	│  ├─> config.Load() on change            │
//	│  └─> ui.ReloadMsg on the reload channel │
//	└─────────────────────────────────────────┘
//
// # Reloads
//
// The watcher listens for fsnotify events on the config directory and checks
// the file 50ms after the last one. A poll every two seconds covers
// filesystems without notifications.
//
// # Error Handling
//
// Fatal errors (returned from Run):
//   - Invalid log level or unwritable log file
//   - Invalid configuration at startup
//
// Recoverable errors (logged, shown in the header, polling continues):
//   - A config edit that fails to parse. The current deck stays up and the
//     poll interval backs off up to 30 seconds.
//
// Preferences never fail startup; unreadable files fall back to defaults.
package app
