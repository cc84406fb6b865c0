package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Tab        key.Binding
	Escape     key.Binding

	// Navigation
	Prev     key.Binding
	Next     key.Binding
	First    key.Binding
	Last     key.Binding
	StepBack key.Binding
	Step     key.Binding
	JumpPrev key.Binding
	JumpNext key.Binding
	Slide    key.Binding

	// Motion
	ToggleAutoplay key.Binding
	ToggleReduced  key.Binding
	Refresh        key.Binding

	// Journal
	ToggleJournal key.Binding
	ScrollUp      key.Binding
	ScrollDown    key.Binding
	PageUp        key.Binding
	PageDown      key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Cycle focus"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Clear focus"),
		),

		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "Previous page"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "Next page"),
		),
		First: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "First page"),
		),
		Last: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "Last page"),
		),
		StepBack: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "Back one slide"),
		),
		Step: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "Forward one slide"),
		),
		JumpPrev: key.NewBinding(
			key.WithKeys("shift+left", "H"),
			key.WithHelp("H", "Jump back"),
		),
		JumpNext: key.NewBinding(
			key.WithKeys("shift+right", "L"),
			key.WithHelp("L", "Jump forward"),
		),
		Slide: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "Go to slide"),
		),

		ToggleAutoplay: key.NewBinding(
			key.WithKeys("a", " "),
			key.WithHelp("a", "Play/pause autoplay"),
		),
		ToggleReduced: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "Toggle reduced motion"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Refresh layout"),
		),

		ToggleJournal: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "Toggle event journal"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Scroll journal up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Scroll journal down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "Journal page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdown", "Journal page down"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.ToggleAutoplay, k.ToggleJournal, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.First, k.Last, k.Slide},
		{k.StepBack, k.Step, k.JumpPrev, k.JumpNext},
		{k.ToggleAutoplay, k.ToggleReduced, k.Refresh},
		{k.ToggleJournal, k.ScrollUp, k.ScrollDown, k.PageUp, k.PageDown},
		{k.Tab, k.Escape, k.CycleTheme, k.Help, k.Quit},
	}
}
