package config

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/glide/internal/carousel"
	"github.com/five82/glide/internal/paths"
)

// Config is a loaded carousel deck: the main slider options, the optional
// thumbnail strip and the slides to show.
type Config struct {
	// Path is the resolved file the config was read from.
	Path       string
	Options    carousel.Options
	Thumbnails Thumbnails
	Slides     []Slide
}

// Slide is one card of the deck. Width and height are its natural size in
// terminal cells; zero uses the defaults.
type Slide struct {
	Title  string `toml:"title"`
	Body   string `toml:"body"`
	Color  string `toml:"color"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// Thumbnails configures the navigation strip synced with the main slider.
type Thumbnails struct {
	Enabled bool
	Options carousel.Options
}

const (
	defaultConfigPath  = "~/.config/glide/carousel.toml"
	defaultSlideWidth  = 36
	defaultSlideHeight = 9
)

var defaultColors = []string{"#bd93f9", "#ff79c6", "#8be9fd", "#50fa7b", "#ffb86c", "#f1fa8c"}

// DefaultPath returns the default config file path, unexpanded.
func DefaultPath() string {
	return defaultConfigPath
}

// Default returns the built-in deck used when no config file exists.
func Default() Config {
	cfg := Config{
		Options:    defaultOptions(),
		Thumbnails: Thumbnails{Enabled: true, Options: defaultThumbnailOptions()},
	}
	for i := range 8 {
		cfg.Slides = append(cfg.Slides, Slide{
			Title: fmt.Sprintf("Slide %d", i+1),
			Body:  "Use ←/→ to move, drag with the mouse, or press a to toggle autoplay.",
			Color: defaultColors[i%len(defaultColors)],
		})
	}
	cfg.normalizeSlides()
	return cfg
}

func defaultOptions() carousel.Options {
	o := carousel.DefaultOptions()
	o.PerPage = 3
	o.Gap = carousel.Px(2)
	o.Padding = carousel.EvenPadding(carousel.Px(2))
	o.Breakpoints = map[int]carousel.Override{
		80:  {PerPage: ptr(1)},
		140: {PerPage: ptr(2)},
	}
	return o
}

func defaultThumbnailOptions() carousel.Options {
	o := carousel.DefaultOptions()
	o.FixedWidth = carousel.Px(12)
	o.Gap = carousel.Px(1)
	o.Focus = carousel.FocusCenter()
	o.IsNavigation = true
	o.Speed = 300 * time.Millisecond
	return o
}

// Load locates and parses the carousel config, falling back to the built-in
// deck when the file is missing.
func Load(path string) (Config, error) {
	resolved, err := ResolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	cfg.Path = resolved

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := cfg.decode(bytes); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	var raw struct {
		Options       map[string]any            `toml:"options"`
		Breakpoints   map[string]map[string]any `toml:"breakpoints"`
		ReducedMotion map[string]any            `toml:"reduced_motion"`
		Thumbnails    map[string]any            `toml:"thumbnails"`
		Slides        []Slide                   `toml:"slides"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	opts, err := decodeOptions(c.Options, raw.Options)
	if err != nil {
		return fmt.Errorf("options: %w", err)
	}
	if raw.Breakpoints != nil {
		opts.Breakpoints = make(map[int]carousel.Override, len(raw.Breakpoints))
		for _, key := range slices.Sorted(maps.Keys(raw.Breakpoints)) {
			width, err := strconv.Atoi(strings.TrimSpace(key))
			if err != nil || width <= 0 {
				return fmt.Errorf("breakpoints: %w: width %q", ErrInvalidValue, key)
			}
			ov, err := decodeOverride(raw.Breakpoints[key])
			if err != nil {
				return fmt.Errorf("breakpoints.%s: %w", key, err)
			}
			opts.Breakpoints[width] = ov
		}
	}
	if raw.ReducedMotion != nil {
		ov, err := decodeOverride(raw.ReducedMotion)
		if err != nil {
			return fmt.Errorf("reduced_motion: %w", err)
		}
		opts.ReducedMotion = &ov
	}
	c.Options = opts

	if raw.Thumbnails != nil {
		thumbs := raw.Thumbnails
		if v, ok := thumbs["enabled"]; ok {
			enabled, ok := v.(bool)
			if !ok {
				return fmt.Errorf("thumbnails.enabled: %w: %v", ErrInvalidValue, v)
			}
			c.Thumbnails.Enabled = enabled
			delete(thumbs, "enabled")
		}
		topts, err := decodeOptions(c.Thumbnails.Options, thumbs)
		if err != nil {
			return fmt.Errorf("thumbnails: %w", err)
		}
		c.Thumbnails.Options = topts
	}

	if len(raw.Slides) > 0 {
		c.Slides = raw.Slides
	}
	c.normalizeSlides()
	return nil
}

func (c *Config) normalizeSlides() {
	for i := range c.Slides {
		s := &c.Slides[i]
		s.Title = strings.TrimSpace(s.Title)
		s.Body = strings.TrimSpace(s.Body)
		s.Color = strings.TrimSpace(s.Color)
		if s.Title == "" {
			s.Title = fmt.Sprintf("Slide %d", i+1)
		}
		if s.Color == "" {
			s.Color = defaultColors[i%len(defaultColors)]
		}
		if s.Width <= 0 {
			s.Width = defaultSlideWidth
		}
		if s.Height <= 0 {
			s.Height = defaultSlideHeight
		}
	}
}

// Sizes returns the natural slide sizes for carousel.Config.
func (c Config) Sizes() []carousel.Size {
	sizes := make([]carousel.Size, len(c.Slides))
	for i, s := range c.Slides {
		sizes[i] = carousel.Size{Width: float64(s.Width), Height: float64(s.Height)}
	}
	return sizes
}

// ResolvePath expands path, or the default path when empty, to an absolute
// path.
func ResolvePath(path string) (string, error) {
	return paths.Resolve(path, defaultConfigPath)
}

func ptr[T any](v T) *T {
	return &v
}
