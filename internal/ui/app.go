package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/five82/glide/internal/carousel"
	"github.com/five82/glide/internal/config"
	"github.com/five82/glide/internal/prefs"
)

// focusArea is the panel that has keyboard focus.
type focusArea int

const (
	focusNone focusArea = iota
	focusTrack
	focusThumbs
	focusJournal
)

// ReloadMsg carries a re-read config, or the error that stopped the read.
type ReloadMsg struct {
	Config config.Config
	Err    error
}

// Options configures the UI.
type Options struct {
	Config    config.Config
	Prefs     prefs.Prefs
	PrefsPath string // empty disables saving
	LogPath   string // empty hides the journal contents
	Logger    *log.Logger
	// Reloads delivers config changes found by the poller.
	Reloads <-chan ReloadMsg
	// Clock drives slider tweens. Nil uses time.Now.
	Clock func() time.Time
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	cfg       config.Config
	prefsPath string
	logPath   string
	logger    *log.Logger
	reloads   <-chan ReloadMsg
	clock     func() time.Time

	// Sliders
	main   *carousel.Slider
	thumbs *carousel.Slider

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	bar      progress.Model
	width    int
	height   int
	ready    bool
	layout   screenLayout
	showHelp bool
	focus    focusArea
	reduced  bool
	notice   string

	// Motion and pointer state
	ticking  bool
	hovering bool
	pointer  *carousel.Slider

	journal journalState
}

type frameMsg time.Time

// New creates a new Bubble Tea model. Sliders are mounted on the first
// window size message.
func New(opts Options) Model {
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	theme := GetTheme(opts.Prefs.Theme)
	m := Model{
		prefsPath: opts.PrefsPath,
		logPath:   opts.LogPath,
		logger:    logger,
		reloads:   opts.Reloads,
		clock:     clock,
		theme:     theme,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		bar:       newBar(theme),
		reduced:   opts.Prefs.ReducedMotion,
	}
	m.build(opts.Config, opts.Prefs.StartIndex)
	return m
}

func newBar(t Theme) progress.Model {
	bar := progress.New(progress.WithSolidFill(t.Styles().Progress()), progress.WithoutPercentage())
	bar.EmptyColor = t.Border
	return bar
}

// build creates the sliders for cfg. A positive start overrides the
// configured start index.
func (m *Model) build(cfg config.Config, start int) {
	m.cfg = cfg
	opts := cfg.Options
	if n := len(cfg.Slides); start > 0 && n > 0 {
		opts.Start = min(start, n-1)
	}
	m.main = carousel.New(carousel.Config{
		ID:      "main",
		Options: opts,
		Slides:  cfg.Sizes(),
		Logger:  m.logger,
		Clock:   m.clock,
	})

	m.thumbs = nil
	if cfg.Thumbnails.Enabled && len(cfg.Slides) > 0 {
		topts := cfg.Thumbnails.Options
		topts.Start = opts.Start
		sizes := make([]carousel.Size, len(cfg.Slides))
		for i, s := range cfg.Slides {
			sizes[i] = carousel.Size{Width: float64(min(len(s.Title)+6, 24)), Height: ThumbHeight}
		}
		m.thumbs = carousel.New(carousel.Config{
			ID:      "thumbs",
			Options: topts,
			Slides:  sizes,
			Logger:  m.logger,
			Clock:   m.clock,
		})
		m.main.SyncWith(m.thumbs)
	}
}

// mount lays out the screen and mounts the sliders into it.
func (m *Model) mount() {
	m.relayout()
	m.main.Mount(m.viewport(m.layout.track), journalExtension(m.logger))
	if m.thumbs != nil {
		m.thumbs.Mount(m.viewport(m.layout.thumbs))
	}
	m.applyFocus()
}

func (m *Model) relayout() {
	tallest := 0
	for _, s := range m.cfg.Slides {
		tallest = max(tallest, s.Height)
	}
	if m.cfg.Options.Direction == carousel.TTB {
		tallest = m.height
	}
	m.layout = computeLayout(m.width, m.height, tallest, m.thumbs != nil, m.journal.visible)
	m.bar.Width = m.layout.progress.w
	m.help.Width = max(m.width-2, 0)
}

func (m *Model) viewport(r rect) carousel.Viewport {
	return carousel.Viewport{Width: float64(r.w), Height: float64(r.h), ReducedMotion: m.reduced}
}

// resize re-lays out the screen and hands the new viewports to the sliders.
func (m *Model) resize() {
	m.relayout()
	m.main.Resize(m.viewport(m.layout.track))
	if m.thumbs != nil {
		m.thumbs.Resize(m.viewport(m.layout.thumbs))
	}
	m.resizeJournal()
}

// rebuild swaps in a reloaded config, keeping the active slide.
func (m *Model) rebuild(cfg config.Config) {
	index := m.main.Index()
	m.destroy()
	m.pointer = nil
	m.hovering = false
	m.build(cfg, index)
	if m.ready {
		m.mount()
	}
}

func (m *Model) destroy() {
	m.main.Destroy(true)
	if m.thumbs != nil {
		m.thumbs.Destroy(true)
	}
}

func (m Model) animating() bool {
	return m.main.Animating() || (m.thumbs != nil && m.thumbs.Animating())
}

// animate schedules the next frame while any slider has pending work.
func (m *Model) animate() tea.Cmd {
	if m.ticking || !m.animating() {
		return nil
	}
	m.ticking = true
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func waitForReload(ch <-chan ReloadMsg) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("glide"),
		waitForReload(m.reloads),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.initJournal()
			m.mount()
			m.ready = true
			return m, m.animate()
		}
		m.resize()
		return m, m.animate()

	case tea.BlurMsg:
		m.setHover(false)
		return m, m.animate()

	case frameMsg:
		m.ticking = false
		now := time.Time(msg)
		m.main.Frame(now)
		if m.thumbs != nil {
			m.thumbs.Frame(now)
		}
		return m, m.animate()

	case ReloadMsg:
		next := waitForReload(m.reloads)
		if msg.Err != nil {
			m.notice = "config: " + msg.Err.Error()
			m.logger.Warn("config reload failed", "error", msg.Err)
			return m, next
		}
		m.rebuild(msg.Config)
		m.notice = "config reloaded"
		m.logger.Info("config reloaded", "path", msg.Config.Path, "slides", len(msg.Config.Slides))
		return m, tea.Batch(next, m.animate())

	case journalTickMsg:
		if !m.journal.visible {
			return m, nil
		}
		return m, tea.Batch(readJournalCmd(m.logPath), journalTickCmd())

	case journalMsg:
		m.handleJournal(msg)
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.bar = newBar(m.theme)
		m.bar.Width = m.layout.progress.w
		m.updateJournalContent()
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		m.cycleFocus()
		return m, m.animate()

	case key.Matches(msg, m.keys.Escape):
		m.setFocus(focusNone)
		return m, m.animate()

	case key.Matches(msg, m.keys.ToggleJournal):
		m.journal.visible = !m.journal.visible
		if !m.journal.visible && m.focus == focusJournal {
			m.setFocus(focusNone)
		}
		if m.ready {
			m.resize()
		}
		if m.journal.visible {
			return m, tea.Batch(readJournalCmd(m.logPath), journalTickCmd(), m.animate())
		}
		return m, m.animate()
	}

	if m.focus == focusJournal {
		switch {
		case key.Matches(msg, m.keys.ScrollUp):
			m.scrollJournal(-1)
			return m, nil
		case key.Matches(msg, m.keys.ScrollDown):
			m.scrollJournal(1)
			return m, nil
		case key.Matches(msg, m.keys.PageUp):
			m.scrollJournal(-m.journal.view.Height)
			return m, nil
		case key.Matches(msg, m.keys.PageDown):
			m.scrollJournal(m.journal.view.Height)
			return m, nil
		}
	}

	target := m.main
	if m.focus == focusThumbs && m.thumbs != nil {
		target = m.thumbs
	}

	switch {
	case key.Matches(msg, m.keys.Prev):
		m.navigate(target, "<")
	case key.Matches(msg, m.keys.Next):
		m.navigate(target, ">")
	case key.Matches(msg, m.keys.First):
		m.navigate(target, ">>")
	case key.Matches(msg, m.keys.Last):
		m.navigate(target, "<<")
	case key.Matches(msg, m.keys.StepBack):
		m.navigate(target, "-1")
	case key.Matches(msg, m.keys.Step):
		m.navigate(target, "+1")
	case key.Matches(msg, m.keys.Slide):
		m.navigate(m.main, fmt.Sprintf("%d", int(msg.Runes[0]-'1')))
	case key.Matches(msg, m.keys.JumpPrev):
		m.jump("<")
	case key.Matches(msg, m.keys.JumpNext):
		m.jump(">")
	case key.Matches(msg, m.keys.ToggleAutoplay):
		m.toggleAutoplay()
	case key.Matches(msg, m.keys.ToggleReduced):
		m.reduced = !m.reduced
		if m.ready {
			m.resize()
		}
		m.savePrefs()
	case key.Matches(msg, m.keys.Refresh):
		m.main.Refresh()
		if m.thumbs != nil {
			m.thumbs.Refresh()
		}
	}
	return m, m.animate()
}

func (m *Model) navigate(s *carousel.Slider, token string) {
	if err := s.Go(token); err != nil {
		m.notice = err.Error()
		return
	}
	m.notice = ""
}

func (m *Model) jump(token string) {
	if err := m.main.Jump(token); err != nil {
		m.notice = err.Error()
	}
}

func (m *Model) toggleAutoplay() {
	a := m.main.Autoplay
	if !a.IsPaused() {
		a.Pause()
		m.notice = "autoplay paused"
		return
	}
	a.Play()
	switch {
	case !a.IsPaused():
		m.notice = "autoplay playing"
	case m.focus == focusTrack || m.focus == focusThumbs:
		m.notice = "autoplay waits for focus to leave the slider"
	default:
		m.notice = "autoplay cannot start"
	}
}

func (m *Model) cycleFocus() {
	next := m.focus
	for range 4 {
		next = (next + 1) % 4
		if next == focusThumbs && m.thumbs == nil {
			continue
		}
		if next == focusJournal && !m.journal.visible {
			continue
		}
		break
	}
	m.setFocus(next)
}

func (m *Model) setFocus(f focusArea) {
	m.focus = f
	m.applyFocus()
}

// applyFocus holds autoplay while the keyboard focus is on a slider.
func (m *Model) applyFocus() {
	inside := m.focus == focusTrack || m.focus == focusThumbs
	for _, s := range m.sliders() {
		if inside {
			s.Autoplay.Hold(carousel.ReasonFocus)
		} else {
			s.Autoplay.Release(carousel.ReasonFocus)
		}
	}
}

// setHover holds autoplay while the pointer rests on the track.
func (m *Model) setHover(over bool) {
	if over == m.hovering {
		return
	}
	m.hovering = over
	for _, s := range m.sliders() {
		if over {
			s.Autoplay.Hold(carousel.ReasonHover)
		} else {
			s.Autoplay.Release(carousel.ReasonHover)
		}
	}
}

func (m Model) sliders() []*carousel.Slider {
	if m.thumbs == nil {
		return []*carousel.Slider{m.main}
	}
	return []*carousel.Slider{m.main, m.thumbs}
}

// savePrefs persists theme, position and motion preference.
func (m Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, StartIndex: m.main.Index(), ReducedMotion: m.reduced}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save prefs failed", "error", err)
	}
}

// shutdown saves preferences and destroys the sliders.
func (m Model) shutdown() {
	m.savePrefs()
	m.destroy()
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	model := New(opts)
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)
	final, err := program.Run()
	if m, ok := final.(Model); ok {
		m.shutdown()
	} else {
		model.shutdown()
	}
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
