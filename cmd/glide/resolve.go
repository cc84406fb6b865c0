package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/five82/glide/internal/carousel"
	"github.com/five82/glide/internal/config"
)

var (
	keyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#bd93f9")).Width(14)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff79c6"))
)

func newResolveCmd() *cobra.Command {
	var (
		width   int
		height  int
		reduced bool
	)
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the options the deck resolves to at a viewport size",
		Long: `resolve mounts the configured main slider headless in a viewport of the
given size and prints the effective options: the base options merged with
the matching breakpoint and, with --reduced-motion, the reduced-motion
override.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			vp := carousel.Viewport{Width: float64(width), Height: float64(height), ReducedMotion: reduced}
			return printResolved(cmd.OutOrStdout(), cfg, vp)
		},
	}
	cmd.Flags().IntVar(&width, "width", 80, "viewport width in cells")
	cmd.Flags().IntVar(&height, "height", 12, "viewport height in cells")
	cmd.Flags().BoolVar(&reduced, "reduced-motion", false, "resolve as if reduced motion is preferred")
	return cmd
}

func printResolved(w io.Writer, cfg config.Config, vp carousel.Viewport) error {
	s := carousel.New(carousel.Config{ID: "main", Options: cfg.Options, Slides: cfg.Sizes()})
	s.Mount(vp)
	defer s.Destroy(true)

	o := s.Options()
	bp := "none"
	if key, ok := s.Breakpoints.Matched(); ok {
		bp = fmt.Sprint(key)
	}

	rows := []struct {
		key   string
		value any
	}{
		{"config", cfg.Path},
		{"breakpoint", bp},
		{"reduced", s.Breakpoints.IsReduced()},
		{"type", o.Type},
		{"per_page", o.PerPage},
		{"per_move", o.PerMove},
		{"gap", o.Gap},
		{"focus", o.Focus},
		{"speed", o.Speed},
		{"autoplay", o.Autoplay},
		{"interval", o.Interval},
		{"drag", o.Drag},
		{"direction", o.Direction},
		{"slides", s.Len()},
		{"pages", s.Controller.PageCount()},
	}

	if _, err := fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("glide at %vx%v", vp.Width, vp.Height))); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%s %v\n", keyStyle.Render(r.key), r.value); err != nil {
			return err
		}
	}
	return nil
}
