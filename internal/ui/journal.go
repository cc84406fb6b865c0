package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/glide/internal/logtail"
)

// journalState holds the event panel: the tail of the log file in a
// scrollable viewport.
type journalState struct {
	visible bool
	follow  bool
	entries []logtail.Entry
	err     error
	view    viewport.Model
}

type journalTickMsg time.Time

type journalMsg struct {
	entries []logtail.Entry
	err     error
}

func journalTickCmd() tea.Cmd {
	return tea.Tick(JournalRefresh, func(t time.Time) tea.Msg {
		return journalTickMsg(t)
	})
}

// readJournalCmd reads the log tail off the update loop.
func readJournalCmd(path string) tea.Cmd {
	if path == "" {
		return nil
	}
	return func() tea.Msg {
		lines, err := logtail.Read(path, JournalLines)
		return journalMsg{entries: logtail.ParseLines(lines), err: err}
	}
}

func (m *Model) initJournal() {
	m.journal.view = viewport.New(max(m.width-2, 1), JournalHeight-1)
	m.journal.follow = true
}

func (m *Model) resizeJournal() {
	m.journal.view.Width = max(m.width-2, 1)
	m.journal.view.Height = JournalHeight - 1
	m.updateJournalContent()
}

func (m *Model) handleJournal(msg journalMsg) {
	m.journal.err = msg.err
	if msg.err == nil {
		m.journal.entries = msg.entries
	}
	m.updateJournalContent()
}

func (m *Model) updateJournalContent() {
	styles := m.theme.Styles()
	var b strings.Builder
	if m.journal.err != nil {
		b.WriteString(styles.DangerText.Render("journal: " + m.journal.err.Error()))
		b.WriteByte('\n')
	}
	if len(m.journal.entries) == 0 && m.journal.err == nil {
		b.WriteString(styles.FaintText.Render("no events yet"))
	}
	for i, e := range m.journal.entries {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(formatEntry(e, styles))
	}
	m.journal.view.SetContent(b.String())
	if m.journal.follow {
		m.journal.view.GotoBottom()
	}
}

// formatEntry colors one record: level badge, message, then the fields.
func formatEntry(e logtail.Entry, styles Styles) string {
	if e.Level == "" && e.Time == "" {
		return styles.Text.Render(e.Raw)
	}
	parts := make([]string, 0, 3+len(e.Fields))
	if e.Time != "" {
		parts = append(parts, styles.FaintText.Render(e.Time))
	}
	if e.Level != "" {
		parts = append(parts, levelStyle(e.Level, styles).Render(e.Level))
	}
	parts = append(parts, styles.Text.Render(e.Message))
	for _, f := range e.Fields {
		parts = append(parts, styles.MutedText.Render(f.Key+"=")+styles.InfoText.Render(f.Value))
	}
	return strings.Join(parts, " ")
}

func levelStyle(level string, styles Styles) lipgloss.Style {
	switch level {
	case "ERRO", "FATA":
		return styles.DangerText
	case "WARN":
		return styles.WarningText
	case "DEBU":
		return styles.FaintText
	default:
		return styles.AccentText
	}
}

func (m *Model) scrollJournal(lines int) {
	if lines < 0 {
		m.journal.view.ScrollUp(-lines)
	} else {
		m.journal.view.ScrollDown(lines)
	}
	m.journal.follow = m.journal.view.AtBottom()
}

func (m Model) renderJournal() string {
	styles := m.theme.Styles()
	panel := styles.Panel
	if m.focus == focusJournal {
		panel = styles.FocusPanel
	}
	title := styles.AccentText.Render("events")
	if !m.journal.follow {
		title += styles.FaintText.Render(" (paused)")
	}
	body := m.journal.view.View()
	return panel.Width(max(m.width-2, 1)).Render(title + "\n" + body)
}
