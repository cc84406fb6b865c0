package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/glide/internal/carousel"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	l := m.layout
	lines := []string{m.renderHeader(), ""}
	lines = append(lines, indent(m.renderMain(), l.track.x)...)
	lines = append(lines, strings.Repeat(" ", l.progress.x)+m.renderProgress())
	if m.thumbs != nil {
		lines = append(lines, "")
		lines = append(lines, indent(m.renderThumbs(), l.thumbs.x)...)
	}
	if m.journal.visible {
		lines = append(lines, strings.Split(m.renderJournal(), "\n")...)
	}
	for len(lines) < l.footer.y {
		lines = append(lines, "")
	}
	lines = append(lines, m.renderFooter())
	return strings.Join(lines, "\n")
}

func indent(block string, n int) []string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = pad + line
	}
	return lines
}

func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	s := m.main
	c := s.Controller
	compact := m.width < CompactWidth

	parts := []string{
		styles.Logo.Render("glide"),
		fmt.Sprintf("slide %d/%d", s.Index()+1, s.Len()),
	}
	if !compact {
		parts = append(parts, fmt.Sprintf("page %d/%d", c.ToPage(s.Index())+1, c.PageCount()))
		if bp, ok := s.Breakpoints.Matched(); ok {
			parts = append(parts, styles.MutedText.Render(fmt.Sprintf("bp %d", bp)))
		}
	}
	st := s.State().String()
	parts = append(parts, styles.StateStyle(st).Render(st))
	parts = append(parts, m.autoplayLabel(styles))
	if m.reduced {
		parts = append(parts, styles.InfoText.Render("reduced motion"))
	}
	if m.notice != "" && !compact {
		parts = append(parts, styles.WarningText.Render(m.notice))
	}
	line := ansi.Truncate(strings.Join(parts, "  "), max(m.width-2, 0), "…")
	return styles.Header.Width(m.width).Render(line)
}

func (m Model) autoplayLabel(styles Styles) string {
	a := m.main.Autoplay
	switch {
	case m.main.Options().Autoplay == carousel.AutoplayOff && a.IsPaused():
		return styles.FaintText.Render("autoplay off")
	case a.IsPaused():
		return styles.MutedText.Render("⏸ paused")
	default:
		return styles.AccentText.Render("▶ playing")
	}
}

// renderMain draws the main track with full cards.
func (m Model) renderMain() string {
	styles := m.theme.Styles()
	s := m.main
	faded := s.FadeRate() < 1
	card := func(rec carousel.SlideRecord, w, h int) []string {
		slide := m.cfg.Slides[rec.Real()]
		return slideCard(slide, rec, s.Len(), s.Slides.IsActive(rec), faded, styles, w, h)
	}
	return renderTrack(s, m.layout.track.w, m.layout.track.h, card)
}

// renderThumbs draws the navigation strip.
func (m Model) renderThumbs() string {
	styles := m.theme.Styles()
	s := m.thumbs
	card := func(rec carousel.SlideRecord, w, h int) []string {
		slide := m.cfg.Slides[rec.Real()]
		return thumbCard(slide, rec, s.Slides.IsActive(rec), styles, w, h)
	}
	return renderTrack(s, m.layout.thumbs.w, m.layout.thumbs.h, card)
}

// renderProgress draws the autoplay bar: the rate towards the next tick.
func (m Model) renderProgress() string {
	return m.bar.ViewAs(m.main.Autoplay.Rate())
}

func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	// ShortHelpView can overrun help.Width by one item.
	line := ansi.Truncate(m.help.ShortHelpView(m.keys.ShortHelp()), max(m.width-2, 0), "…")
	return styles.Footer.Width(m.width).Render(line)
}

func (m Model) renderHelp() string {
	styles := m.theme.Styles()
	h := m.help
	h.ShowAll = true
	title := styles.AccentText.Render("glide keys")
	body := lipgloss.JoinVertical(lipgloss.Left, title, "", h.View(m.keys), "", styles.FaintText.Render("any key closes"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, styles.FocusPanel.Padding(1, 2).Render(body))
}
