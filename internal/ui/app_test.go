package ui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/glide/internal/carousel"
	"github.com/five82/glide/internal/config"
	"github.com/five82/glide/internal/logtail"
	"github.com/five82/glide/internal/prefs"
	"github.com/five82/glide/internal/state"
)

func TestView_LoadingBeforeSize(t *testing.T) {
	m, _ := newTestModel(t, nil)
	if got := m.View(); got != "Loading..." {
		t.Fatalf("View() = %q, want %q", got, "Loading...")
	}
	if m.main.State() != state.Created {
		t.Fatalf("main state = %v, want %v", m.main.State(), state.Created)
	}
}

func TestWindowSize_MountsSliders(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = sized(t, m)

	if !m.ready {
		t.Fatal("model not ready after WindowSizeMsg")
	}
	if m.main.State() != state.Idle {
		t.Fatalf("main state = %v, want %v", m.main.State(), state.Idle)
	}
	if m.thumbs == nil || m.thumbs.State() != state.Idle {
		t.Fatal("thumbnail strip not mounted")
	}
	if got := m.main.Options().PerPage; got != 2 {
		t.Fatalf("PerPage = %d, want 2 (140 breakpoint)", got)
	}

	view := m.View()
	for _, want := range []string{"glide", "Slide 1", "slide 1/8"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View() missing %q", want)
		}
	}
	if lines := strings.Count(view, "\n") + 1; lines != 40 {
		t.Fatalf("View() has %d lines, want 40", lines)
	}
}

func TestFooter_FitsOneLine(t *testing.T) {
	for _, width := range []int{100, 60, 40} {
		m, _ := newTestModel(t, nil)
		m = send(t, m, tea.WindowSizeMsg{Width: width, Height: 40})
		footer := m.renderFooter()
		if strings.Contains(footer, "\n") {
			t.Fatalf("width %d: footer wraps: %q", width, footer)
		}
		if got := ansi.StringWidth(footer); got != width {
			t.Fatalf("width %d: footer width = %d, want %d", width, got, width)
		}
	}
}

func TestWindowSize_ResizeSwitchesBreakpoint(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = sized(t, m)
	m = send(t, m, tea.WindowSizeMsg{Width: 60, Height: 30})

	if got := m.main.Options().PerPage; got != 1 {
		t.Fatalf("PerPage = %d, want 1 (80 breakpoint)", got)
	}
	if got := m.main.Viewport().Width; got != 58 {
		t.Fatalf("viewport width = %v, want 58", got)
	}
}

func TestKeys_NextPagesBothSliders(t *testing.T) {
	m, clk := newTestModel(t, nil)
	m = sized(t, m)

	m = send(t, m, keyPress("right"))
	if got := m.main.Index(); got != 2 {
		t.Fatalf("main index = %d, want 2", got)
	}
	if m.main.State() != state.Moving {
		t.Fatalf("main state = %v, want %v", m.main.State(), state.Moving)
	}

	m = settle(t, m, clk)
	if m.main.State() != state.Idle {
		t.Fatalf("main state = %v, want %v", m.main.State(), state.Idle)
	}
	if got := m.thumbs.Index(); got != 2 {
		t.Fatalf("thumbs index = %d, want 2", got)
	}

	m = send(t, m, keyPress("left"))
	m = settle(t, m, clk)
	if got := m.main.Index(); got != 0 {
		t.Fatalf("main index after prev = %d, want 0", got)
	}
}

func TestKeys_DigitAndLast(t *testing.T) {
	m, clk := newTestModel(t, nil)
	m = sized(t, m)

	m = settle(t, send(t, m, keyPress("5")), clk)
	if got := m.main.Index(); got != 4 {
		t.Fatalf("index after 5 = %d, want 4", got)
	}

	m = settle(t, send(t, m, keyPress("G")), clk)
	if got, want := m.main.Index(), m.main.Controller.End(); got != want {
		t.Fatalf("index after G = %d, want %d", got, want)
	}

	m = settle(t, send(t, m, keyPress("g")), clk)
	if got := m.main.Index(); got != 0 {
		t.Fatalf("index after g = %d, want 0", got)
	}
}

func TestKeys_JumpSettlesWithoutTween(t *testing.T) {
	m, clk := newTestModel(t, nil)
	m = sized(t, m)

	m = send(t, m, keyPress("L"))
	if got := m.main.Index(); got != 2 {
		t.Fatalf("index after jump = %d, want 2", got)
	}
	m = settle(t, m, clk)
	want := m.main.Move.ToPosition(2, true)
	if got := m.main.Move.Position(); got != want {
		t.Fatalf("position = %v, want %v", got, want)
	}
}

func TestKeys_ThemeCycleSavesPrefs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	clk := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	m := New(Options{Config: config.Default(), Prefs: prefs.Default(), PrefsPath: path, Clock: clk.now})
	m = sized(t, m)

	m = send(t, m, keyPress("T"))
	if m.theme.Name != "Nightfox" {
		t.Fatalf("theme = %q, want Nightfox", m.theme.Name)
	}
	saved, err := prefs.Load(path)
	if err != nil {
		t.Fatalf("prefs.Load: %v", err)
	}
	if saved.Theme != "Nightfox" {
		t.Fatalf("saved theme = %q, want Nightfox", saved.Theme)
	}
}

func TestKeys_ReducedMotionToggle(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = sized(t, m)

	m = send(t, m, keyPress("m"))
	if !m.reduced {
		t.Fatal("reduced motion not enabled")
	}
	if !m.main.Breakpoints.IsReduced() {
		t.Fatal("main slider did not apply the reduced-motion override")
	}
	if got := m.main.Options().Speed; got != 0 {
		t.Fatalf("Speed = %v, want 0", got)
	}

	m = send(t, m, keyPress("m"))
	if m.main.Breakpoints.IsReduced() {
		t.Fatal("reduced-motion override still applied")
	}
}

func TestKeys_QuitAndHelp(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = sized(t, m)

	m = send(t, m, keyPress("?"))
	if !m.showHelp {
		t.Fatal("help not shown")
	}
	if !strings.Contains(m.View(), "glide keys") {
		t.Fatal("help view missing title")
	}
	m = send(t, m, keyPress("x"))
	if m.showHelp {
		t.Fatal("help still shown after a key")
	}

	_, cmd := m.Update(keyPress("q"))
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("quit command did not produce QuitMsg")
	}
}

func autoplayConfig(c *config.Config) {
	c.Options.Autoplay = carousel.AutoplayOn
	c.Options.Interval = time.Second
	c.Thumbnails.Enabled = false
}

func TestFocus_HoldsAutoplay(t *testing.T) {
	m, _ := newTestModel(t, autoplayConfig)
	m = sized(t, m)

	if m.main.Autoplay.IsPaused() {
		t.Fatal("autoplay paused after mount")
	}
	m = send(t, m, keyPress("tab"))
	if m.focus != focusTrack {
		t.Fatalf("focus = %v, want track", m.focus)
	}
	if !m.main.Autoplay.IsPaused() {
		t.Fatal("autoplay still playing with focus on the track")
	}
	m = send(t, m, keyPress("esc"))
	if m.main.Autoplay.IsPaused() {
		t.Fatal("autoplay paused after focus left")
	}
}

func TestKeys_ToggleAutoplay(t *testing.T) {
	m, _ := newTestModel(t, autoplayConfig)
	m = sized(t, m)

	m = send(t, m, keyPress("a"))
	if !m.main.Autoplay.IsPaused() {
		t.Fatal("autoplay playing after toggle")
	}
	m = send(t, m, keyPress("a"))
	if m.main.Autoplay.IsPaused() {
		t.Fatal("autoplay paused after second toggle")
	}
}

func TestAutoplay_AdvancesOnFrames(t *testing.T) {
	m, clk := newTestModel(t, autoplayConfig)
	m = sized(t, m)

	for range 80 {
		clk.t = clk.t.Add(16 * time.Millisecond)
		m = send(t, m, frameMsg(clk.t))
	}
	if got := m.main.Index(); got != 2 {
		t.Fatalf("index after 1.28s = %d, want 2", got)
	}
}

func TestMouse_ClickThumbNavigates(t *testing.T) {
	m, clk := newTestModel(t, nil)
	m = sized(t, m)

	thumbs := m.layout.thumbs
	x, y := thumbs.x+44, thumbs.y+1
	m = send(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = send(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m = settle(t, m, clk)

	if got := m.main.Index(); got != 3 {
		t.Fatalf("main index = %d, want 3", got)
	}
	if got := m.thumbs.Index(); got != 3 {
		t.Fatalf("thumbs index = %d, want 3", got)
	}
}

func TestMouse_DragFlicksForward(t *testing.T) {
	m, clk := newTestModel(t, nil)
	m = sized(t, m)

	track := m.layout.track
	y := track.y + 2
	m = send(t, m, tea.MouseMsg{X: track.x + 60, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	clk.t = clk.t.Add(50 * time.Millisecond)
	m = send(t, m, tea.MouseMsg{X: track.x + 30, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})

	if m.main.State() != state.Dragging {
		t.Fatalf("state = %v, want %v", m.main.State(), state.Dragging)
	}

	clk.t = clk.t.Add(50 * time.Millisecond)
	m = send(t, m, tea.MouseMsg{X: track.x + 30, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m = settle(t, m, clk)
	if m.main.Index() == 0 {
		t.Fatal("flick left did not advance the slider")
	}
	if m.main.State() != state.Idle {
		t.Fatalf("state = %v, want %v", m.main.State(), state.Idle)
	}
}

func TestMouse_WheelPages(t *testing.T) {
	m, clk := newTestModel(t, nil)
	m = sized(t, m)

	track := m.layout.track
	m = send(t, m, tea.MouseMsg{X: track.x + 5, Y: track.y + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	m = settle(t, m, clk)
	if got := m.main.Index(); got != 2 {
		t.Fatalf("index after wheel = %d, want 2", got)
	}

	m = send(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if m.animating() {
		t.Fatal("wheel outside the sliders started a move")
	}
}

func TestReload_RebuildsAtIndex(t *testing.T) {
	m, clk := newTestModel(t, nil)
	m = sized(t, m)
	m = settle(t, send(t, m, keyPress("right")), clk)

	cfg := config.Default()
	cfg.Slides = append(cfg.Slides, config.Slide{Title: "Encore", Width: 30, Height: 9}, config.Slide{Title: "Finale", Width: 30, Height: 9})
	old := m.main
	m = send(t, m, ReloadMsg{Config: cfg})

	if m.main == old {
		t.Fatal("main slider not rebuilt")
	}
	if old.State() != state.Destroyed {
		t.Fatalf("old slider state = %v, want %v", old.State(), state.Destroyed)
	}
	if got := m.main.Len(); got != 10 {
		t.Fatalf("Len = %d, want 10", got)
	}
	if got := m.main.Index(); got != 2 {
		t.Fatalf("index after reload = %d, want 2", got)
	}
	if m.notice != "config reloaded" {
		t.Fatalf("notice = %q, want %q", m.notice, "config reloaded")
	}
}

func TestReload_ErrorKeepsDeck(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = sized(t, m)

	old := m.main
	m = send(t, m, ReloadMsg{Err: errors.New("parse config: boom")})
	if m.main != old {
		t.Fatal("slider replaced on a failed reload")
	}
	if !strings.Contains(m.notice, "boom") {
		t.Fatalf("notice = %q, want the error", m.notice)
	}
}

func TestReload_WaitsOnChannel(t *testing.T) {
	ch := make(chan ReloadMsg, 1)
	m := New(Options{Config: config.Default(), Reloads: ch})

	ch <- ReloadMsg{Err: errors.New("x")}
	msg := waitForReload(m.reloads)()
	if got, ok := msg.(ReloadMsg); !ok || got.Err == nil {
		t.Fatalf("waitForReload returned %#v, want the queued ReloadMsg", msg)
	}

	close(ch)
	if msg := waitForReload(m.reloads)(); msg != nil {
		t.Fatalf("waitForReload on a closed channel = %#v, want nil", msg)
	}
}

func TestJournal_ToggleAndContent(t *testing.T) {
	m, _ := newTestModel(t, nil)
	m = sized(t, m)

	m = send(t, m, keyPress("e"))
	if !m.journal.visible {
		t.Fatal("journal not visible after e")
	}
	if m.layout.journal.h == 0 {
		t.Fatal("layout has no journal region")
	}

	entries := logtail.ParseLines([]string{
		"12:00:00.000 INFO glide: moved slider=main index=2 prev=0",
	})
	m = send(t, m, journalMsg{entries: entries})
	if view := m.View(); !strings.Contains(view, "moved") || !strings.Contains(view, "events") {
		t.Fatal("journal panel missing the record")
	}

	m = send(t, m, keyPress("e"))
	if m.journal.visible {
		t.Fatal("journal still visible after second e")
	}
}
