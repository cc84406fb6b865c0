package ui

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/glide/internal/carousel"
	"github.com/five82/glide/internal/config"
)

// placed is a rendered card at its offset along the track axis.
type placed struct {
	index int // slide record index, clones included
	at    int
	size  int
	lines []string
}

// cardFunc renders the card of a slide record at the given size.
type cardFunc func(rec carousel.SlideRecord, w, h int) []string

// placeCards lays out every record of s that intersects the track. Fade
// sliders show only the active slide.
func placeCards(s *carousel.Slider, render cardFunc) []placed {
	l := s.Layout
	vertical := s.Direction.Vertical()
	track := int(math.Round(l.TrackSize()))
	rtl := s.Options().Direction == carousel.RTL

	var out []placed
	for _, rec := range s.Slides.Get(false) {
		if s.Is(carousel.TypeFade) && !s.Slides.IsActive(rec) {
			continue
		}
		start := l.SlideOffset(rec.Index)
		if s.Is(carousel.TypeFade) {
			start = l.Padding(false)
		}
		size := int(math.Round(l.SlideSize(rec.Index, true)))
		at := int(math.Round(start))
		if rtl {
			at = track - at - size
		}
		if size <= 0 || at >= track || at+size <= 0 {
			continue
		}
		cross := int(math.Round(l.SlideCrossSize(rec.Index)))
		w, h := size, cross
		if vertical {
			w, h = cross, size
		}
		if w <= 0 || h <= 0 {
			continue
		}
		out = append(out, placed{index: rec.Index, at: at, size: size, lines: render(rec, w, h)})
	}
	slices.SortFunc(out, func(a, b placed) int { return a.at - b.at })
	return out
}

// composeRows paints horizontally placed cards into height rows of width
// cells. Cards are cut with ANSI-aware slicing where they cross the track
// edges or overlap an earlier card.
func composeRows(cards []placed, width, height int) []string {
	rows := make([]string, height)
	for r := range rows {
		var b strings.Builder
		cursor := 0
		for _, c := range cards {
			if r >= len(c.lines) {
				continue
			}
			end := min(c.at+c.size, width)
			start := max(c.at, cursor)
			if start >= end {
				continue
			}
			b.WriteString(strings.Repeat(" ", start-cursor))
			b.WriteString(ansi.Cut(c.lines[r], start-c.at, end-c.at))
			cursor = end
		}
		b.WriteString(strings.Repeat(" ", max(width-cursor, 0)))
		rows[r] = b.String()
	}
	return rows
}

// composeColumns paints vertically placed cards into height rows.
func composeColumns(cards []placed, width, height int) []string {
	rows := make([]string, height)
	blank := strings.Repeat(" ", width)
	for r := range rows {
		rows[r] = blank
		for _, c := range cards {
			if r >= c.at && r < c.at+c.size && r-c.at < len(c.lines) {
				rows[r] = fitWidth(c.lines[r-c.at], width)
				break
			}
		}
	}
	return rows
}

// renderTrack draws slider s into a w by h block.
func renderTrack(s *carousel.Slider, w, h int, render cardFunc) string {
	cards := placeCards(s, render)
	var rows []string
	if s.Direction.Vertical() {
		rows = composeColumns(cards, w, h)
	} else {
		rows = composeRows(cards, w, h)
	}
	return strings.Join(rows, "\n")
}

// fitWidth truncates or pads an ANSI string to exactly w cells.
func fitWidth(line string, w int) string {
	width := ansi.StringWidth(line)
	if width > w {
		return ansi.Truncate(line, w, "")
	}
	return line + strings.Repeat(" ", w-width)
}

// fitBlock forces a rendered block to w by h cells.
func fitBlock(block string, w, h int) []string {
	lines := strings.Split(block, "\n")
	out := make([]string, h)
	for i := range out {
		line := ""
		if i < len(lines) {
			line = lines[i]
		}
		out[i] = fitWidth(line, w)
	}
	return out
}

// slideCard renders a full card: border in the slide color when active,
// title, wrapped body and a position footer.
func slideCard(slide config.Slide, rec carousel.SlideRecord, total int, active, faded bool, styles Styles, w, h int) []string {
	if w < 4 || h < 3 {
		fill := lipgloss.NewStyle().Background(lipgloss.Color(slide.Color)).Render(strings.Repeat(" ", max(w, 0)))
		out := make([]string, max(h, 0))
		for i := range out {
			out[i] = fill
		}
		return out
	}
	innerW, innerH := w-2, h-2

	title := ansi.Truncate(slide.Title, innerW, "…")
	lines := []string{styles.CardTitle(slide.Color).Render(title)}
	if innerH > 2 && slide.Body != "" {
		body := lipgloss.NewStyle().Width(innerW).Render(slide.Body)
		for _, line := range strings.Split(body, "\n") {
			if len(lines) >= innerH-1 {
				break
			}
			lines = append(lines, line)
		}
	}
	for len(lines) < innerH-1 {
		lines = append(lines, "")
	}
	footer := fmt.Sprintf("%d/%d", rec.Real()+1, total)
	if rec.IsClone {
		footer += " ↺"
	}
	if innerH > 1 {
		lines = append(lines, styles.MutedText.Render(footer))
	}

	content := strings.Join(fitBlock(strings.Join(lines, "\n"), innerW, innerH), "\n")
	style := styles.Card(slide.Color, active)
	if faded {
		style = style.Faint(true)
	}
	return fitBlock(style.Render(content), w, h)
}

// thumbCard renders a compact card holding the slide number and title.
func thumbCard(slide config.Slide, rec carousel.SlideRecord, active bool, styles Styles, w, h int) []string {
	label := fmt.Sprintf("%d %s", rec.Real()+1, slide.Title)
	if w < 4 || h < 3 {
		return fitBlock(ansi.Truncate(label, max(w, 0), ""), w, h)
	}
	content := ansi.Truncate(label, w-2, "…")
	if active {
		content = styles.CardTitle(slide.Color).Render(content)
	} else {
		content = styles.MutedText.Render(content)
	}
	return fitBlock(styles.Card(slide.Color, active).Render(fitWidth(content, w-2)), w, h)
}

// hitTest returns the real slide index under track coordinate x (or y for
// vertical sliders).
func hitTest(s *carousel.Slider, coord int) (int, bool) {
	cards := placeCards(s, func(carousel.SlideRecord, int, int) []string { return nil })
	for _, c := range cards {
		if coord >= c.at && coord < c.at+c.size {
			rec, ok := s.Slides.At(c.index)
			if !ok {
				return 0, false
			}
			return rec.Real(), true
		}
	}
	return 0, false
}
