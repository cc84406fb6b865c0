package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/glide/internal/config"
	"github.com/five82/glide/internal/prefs"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newTestModel(t *testing.T, edit func(*config.Config)) (Model, *fakeClock) {
	t.Helper()
	cfg := config.Default()
	if edit != nil {
		edit(&cfg)
	}
	clk := &fakeClock{t: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
	m := New(Options{Config: cfg, Prefs: prefs.Default(), Clock: clk.now})
	return m, clk
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model
}

// sized mounts m in a 100x40 terminal.
func sized(t *testing.T, m Model) Model {
	t.Helper()
	return send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
}

// settle feeds frames until no slider has pending work.
func settle(t *testing.T, m Model, clk *fakeClock) Model {
	t.Helper()
	for i := 0; i < 1000 && m.animating(); i++ {
		clk.t = clk.t.Add(16 * time.Millisecond)
		m = send(t, m, frameMsg(clk.t))
	}
	if m.animating() {
		t.Fatal("sliders still animating after 1000 frames")
	}
	return m
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
