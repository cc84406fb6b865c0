// Package prefs handles glide user preferences persistence.
// Preferences are stored in ~/.config/glide/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"os"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/glide/internal/paths"
)

// Prefs holds user preferences that survive between sessions.
type Prefs struct {
	Theme         string `toml:"theme"`
	StartIndex    int    `toml:"start_index"`
	ReducedMotion bool   `toml:"reduced_motion"`
}

const (
	defaultPrefsPath = "~/.config/glide/prefs.toml"
	defaultTheme     = "Dracula"
)

// DefaultPath returns the default preferences file path, unexpanded.
func DefaultPath() string {
	return defaultPrefsPath
}

// Default returns the preferences used when nothing was saved.
func Default() Prefs {
	return Prefs{Theme: defaultTheme}
}

// Load reads preferences from path. A missing file yields the defaults and
// no error. An unreadable or malformed file also yields the defaults, along
// with an error the caller may log; preferences never block startup.
func Load(path string) (Prefs, error) {
	resolved, err := paths.Resolve(path, defaultPrefsPath)
	if err != nil {
		return Default(), fmt.Errorf("resolve prefs path: %w", err)
	}

	data, err := os.ReadFile(resolved)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("read prefs: %w", err)
	}

	p := Default()
	if err := toml.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("parse prefs %s: %w", resolved, err)
	}
	return p.normalized(), nil
}

func (p Prefs) normalized() Prefs {
	p.Theme = strings.TrimSpace(p.Theme)
	if p.Theme == "" {
		p.Theme = defaultTheme
	}
	p.StartIndex = max(p.StartIndex, 0)
	return p
}

// Save writes preferences to path, creating directories as needed. The file
// is replaced in one step.
func Save(path string, p Prefs) error {
	resolved, err := paths.Resolve(path, defaultPrefsPath)
	if err != nil {
		return fmt.Errorf("resolve prefs path: %w", err)
	}
	data, err := toml.Marshal(p.normalized())
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := paths.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("save prefs: %w", err)
	}
	return nil
}
