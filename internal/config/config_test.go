package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/glide/internal/carousel"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "carousel.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigUsesBuiltInDeck(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if want := filepath.Join(home, ".config", "glide", "carousel.toml"); cfg.Path != want {
		t.Fatalf("Path = %q, want %q", cfg.Path, want)
	}
	if len(cfg.Slides) != 8 {
		t.Fatalf("len(Slides) = %d, want 8", len(cfg.Slides))
	}
	if cfg.Options.PerPage != 3 || cfg.Options.Breakpoints[80].PerPage == nil {
		t.Fatalf("Options = perPage %d, breakpoints %v", cfg.Options.PerPage, cfg.Options.Breakpoints)
	}
	if !cfg.Thumbnails.Enabled || !cfg.Thumbnails.Options.IsNavigation {
		t.Fatalf("Thumbnails = %+v, want an enabled navigation strip", cfg.Thumbnails)
	}
}

func TestLoad_ParsesOptions(t *testing.T) {
	path := writeConfig(t, `
[options]
type = "loop"
per_page = 2
per_move = 1
gap = "10%"
focus = "center"
drag = "free"
autoplay = "pause"
trim_space = "move"
speed = 250
interval = "1.5s"
padding = { left = 2, right = "1em" }
drag_min_threshold = { touch = 4 }
flick_power = 300
media_query = "min"
easing = "ease-in-out"
scroll_easing = "linear"
direction = "rtl"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	o := cfg.Options
	checks := []struct {
		name string
		ok   bool
	}{
		{"type", o.Type == carousel.TypeLoop},
		{"per_page", o.PerPage == 2},
		{"per_move", o.PerMove == 1},
		{"gap", o.Gap == carousel.Percent(10)},
		{"focus", o.Focus == carousel.FocusCenter()},
		{"drag", o.Drag == carousel.DragFree},
		{"autoplay", o.Autoplay == carousel.AutoplayPaused},
		{"trim_space", o.TrimSpace == carousel.TrimMove},
		{"speed", o.Speed == 250*time.Millisecond},
		{"interval", o.Interval == 1500*time.Millisecond},
		{"padding", o.Padding == carousel.Padding{Start: carousel.Px(2), End: carousel.Length{Value: 1, Unit: carousel.UnitEm}}},
		{"drag_min_threshold", o.DragMinThreshold == carousel.Threshold{Mouse: 0, Touch: 4}},
		{"flick_power", o.FlickPower == 300},
		{"media_query", o.MediaQuery == carousel.MediaMin},
		{"easing", o.Easing == "ease-in-out"},
		{"scroll_easing", o.EasingFunc != nil && o.EasingFunc(0.25) == 0.25},
		{"direction", o.Direction == carousel.RTL},
		{"untouched rewind", !o.Rewind},
	}
	for _, c := range checks {
		if !c.ok {
			t.Fatalf("option %s not decoded: %+v", c.name, o)
		}
	}
}

func TestLoad_BreakpointsAndReducedMotion(t *testing.T) {
	path := writeConfig(t, `
[breakpoints.60]
per_page = 1
destroy = true

[breakpoints.120]
per_page = 2
gap = 1

[reduced_motion]
speed = 0
autoplay = false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	bp := cfg.Options.Breakpoints
	if len(bp) != 2 || *bp[60].PerPage != 1 || !*bp[60].Destroy || *bp[120].Gap != carousel.Px(1) {
		t.Fatalf("Breakpoints = %+v", bp)
	}
	rm := cfg.Options.ReducedMotion
	if rm == nil || *rm.Speed != 0 || *rm.Autoplay != carousel.AutoplayOff || rm.RewindSpeed != nil {
		t.Fatalf("ReducedMotion = %+v", rm)
	}
}

func TestLoad_Thumbnails(t *testing.T) {
	path := writeConfig(t, `
[thumbnails]
enabled = false
fixed_width = 8
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Thumbnails.Enabled {
		t.Fatal("Thumbnails.Enabled = true, want false")
	}
	if cfg.Thumbnails.Options.FixedWidth != carousel.Px(8) || !cfg.Thumbnails.Options.IsNavigation {
		t.Fatalf("Thumbnails.Options = %+v", cfg.Thumbnails.Options)
	}
}

func TestLoad_SlidesAreNormalized(t *testing.T) {
	path := writeConfig(t, `
[[slides]]
title = "  Intro  "
body = "hello"
width = 20

[[slides]]
color = "#000000"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(cfg.Slides) != 2 {
		t.Fatalf("len(Slides) = %d, want 2", len(cfg.Slides))
	}
	first, second := cfg.Slides[0], cfg.Slides[1]
	if first.Title != "Intro" || first.Width != 20 || first.Height != defaultSlideHeight || first.Color == "" {
		t.Fatalf("Slides[0] = %+v", first)
	}
	if second.Title != "Slide 2" || second.Color != "#000000" || second.Width != defaultSlideWidth {
		t.Fatalf("Slides[1] = %+v", second)
	}
	sizes := cfg.Sizes()
	if sizes[0] != (carousel.Size{Width: 20, Height: defaultSlideHeight}) {
		t.Fatalf("Sizes()[0] = %+v", sizes[0])
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
		wantMsg string
	}{
		{"syntax", `[options`, nil, "parse config"},
		{"unknown key", "[options]\nper_pages = 2\n", ErrUnknownOption, "per_pages"},
		{"wrong type", "[options]\nper_page = \"two\"\n", ErrInvalidValue, "per_page"},
		{"negative", "[options]\nspeed = -1\n", ErrInvalidValue, "speed"},
		{"fraction", "[options]\nper_page = 1.5\n", ErrInvalidValue, "per_page"},
		{"bad enum", "[options]\ndrag = \"sometimes\"\n", ErrInvalidValue, "drag"},
		{"bad length", "[options]\ngap = \"2pt\"\n", carousel.ErrInvalidLength, "gap"},
		{"bad easing", "[options]\neasing = \"bounce\"\n", nil, "easing"},
		{"bad breakpoint key", "[breakpoints.wide]\nper_page = 1\n", ErrInvalidValue, "breakpoints"},
		{"bad breakpoint value", "[breakpoints.80]\nfocus = \"left\"\n", ErrInvalidValue, "breakpoints.80: focus"},
		{"media query in breakpoint", "[breakpoints.80]\nmedia_query = \"min\"\n", ErrUnknownOption, "media_query"},
		{"bad padding side", "[options]\npadding = { middle = 1 }\n", ErrUnknownOption, "middle"},
		{"bad thumbnails flag", "[thumbnails]\nenabled = 1\n", ErrInvalidValue, "thumbnails.enabled"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatalf("Load returned nil error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("Load error = %v, want %v", err, tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Fatalf("Load error = %q, want it to mention %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestResolvePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name string
		path string
		want string
	}{
		{"default", "", filepath.Join(home, ".config", "glide", "carousel.toml")},
		{"tilde", "~/decks/demo.toml", filepath.Join(home, "decks", "demo.toml")},
		{"absolute", "/etc/glide.toml", "/etc/glide.toml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolvePath(tt.path)
			if err != nil {
				t.Fatalf("ResolvePath returned error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("ResolvePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
