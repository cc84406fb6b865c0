package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/glide/internal/carousel"
)

// sliderAt returns the slider drawn at screen cell (x, y) and its region.
func (m Model) sliderAt(x, y int) (*carousel.Slider, rect, bool) {
	if m.layout.track.contains(x, y) {
		return m.main, m.layout.track, true
	}
	if m.thumbs != nil && m.layout.thumbs.contains(x, y) {
		return m.thumbs, m.layout.thumbs, true
	}
	return nil, rect{}, false
}

func (m Model) pointerEvent(msg tea.MouseMsg, region rect) carousel.PointerEvent {
	return carousel.PointerEvent{
		X:    float64(msg.X - region.x),
		Y:    float64(msg.Y - region.y),
		Time: m.clock(),
	}
}

// handleMouse turns terminal mouse reports into pointer gestures: a left
// press starts a drag, motion moves it, release ends it. A release that
// never became a drag on the thumbnail strip is a click that navigates the
// main slider. The wheel pages.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.ready {
		return m, nil
	}
	target, region, inside := m.sliderAt(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
			if inside {
				m.navigate(target, "<")
			}
		case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
			if inside {
				m.navigate(target, ">")
			}
		case tea.MouseButtonLeft:
			if inside {
				m.pointer = target
				target.Drag.PointerDown(m.pointerEvent(msg, region))
			}
		}

	case tea.MouseActionMotion:
		m.setHover(target == m.main && inside)
		if m.pointer != nil {
			m.pointer.Drag.PointerMove(m.pointerEvent(msg, m.regionOf(m.pointer)))
		}

	case tea.MouseActionRelease:
		if m.pointer == nil {
			break
		}
		s := m.pointer
		m.pointer = nil
		region := m.regionOf(s)
		dragged := s.Drag.IsDragging()
		s.Drag.PointerUp(m.pointerEvent(msg, region))
		if !dragged && s == m.thumbs && inside && target == s {
			m.clickThumb(msg.X-region.x, msg.Y-region.y)
		}
	}
	return m, m.animate()
}

func (m Model) regionOf(s *carousel.Slider) rect {
	if s == m.thumbs {
		return m.layout.thumbs
	}
	return m.layout.track
}

// clickThumb sends the main slider to the thumbnail under (x, y).
func (m *Model) clickThumb(x, y int) {
	coord := x
	if m.thumbs.Direction.Vertical() {
		coord = y
	}
	if index, ok := hitTest(m.thumbs, coord); ok {
		m.main.GoTo(carousel.To(index))
	}
}
