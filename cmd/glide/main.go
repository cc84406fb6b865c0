package main

import (
	"context"
	"os"
	"syscall"
	"time"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/five82/glide/internal/app"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"

	configPath string
	prefsPath  string
	logLevel   string
	logPath    string
	pollEvery  time.Duration
)

func main() {
	os.Exit(run())
}

func run() int {
	root := newRootCmd()
	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM),
	); err != nil {
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "glide",
		Short: "A carousel in your terminal",
		Long: `glide shows a deck of slides as a carousel: paged, looped or faded,
with a synced thumbnail strip, autoplay, mouse drag and responsive
breakpoints. The deck is read from ~/.config/glide/carousel.toml and
reloads when the file changes.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), app.Options{
				ConfigPath: configPath,
				PrefsPath:  prefsPath,
				LogPath:    logPath,
				LogLevel:   logLevel,
				PollEvery:  pollEvery,
			})
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "deck config file (default ~/.config/glide/carousel.toml)")
	root.Flags().StringVar(&prefsPath, "prefs", "", "preferences file (default ~/.config/glide/prefs.toml)")
	root.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	root.Flags().StringVar(&logPath, "log-file", "", "log file (default ~/.local/state/glide/glide.log)")
	root.Flags().DurationVar(&pollEvery, "poll", 0, "config reload poll interval (default 2s)")

	root.AddCommand(newResolveCmd())
	return root
}
