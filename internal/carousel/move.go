package carousel

import (
	"math"

	"github.com/five82/glide/internal/event"
	"github.com/five82/glide/internal/state"
)

// Move owns the track offset. Positions are translate values along the
// axis: left-to-right and vertical tracks go negative as they advance.
type Move struct {
	s        *Slider
	position float64
}

func (m *Move) mount() {
	scope := m.s.scope("move")
	listen(scope, EventResized, func(Viewport) { m.Reposition() })
	listen(scope, EventRefresh, func(event.None) { m.Reposition() })
}

// Position returns the current offset.
func (m *Move) Position() float64 {
	return m.position
}

// Translate sets the offset without bounds checking. Loop sliders fold an
// offset that passes the clones back by one slider period.
func (m *Move) Translate(position float64) {
	m.translate(position, false)
}

func (m *Move) translate(position float64, preventLoop bool) {
	if m.s.Is(TypeFade) {
		return
	}
	if !preventLoop {
		position = m.loop(position)
	}
	m.position = position
}

// loop folds a position whose nearest slide lies past the end index, or
// before the first slide, back by one slider period.
func (m *Move) loop(position float64) float64 {
	if !m.s.Is(TypeLoop) {
		return position
	}
	index := m.nearest(position)
	exceededMax := index > m.s.Controller.End()
	exceededMin := index < 0
	if !exceededMin && !exceededMax {
		return position
	}
	shifted := m.Shift(position, exceededMax)
	if shifted != position {
		emit(m.s, EventShifted, event.None{})
	}
	return shifted
}

// Shift moves position by whole slider periods towards the start, or towards
// the end with backwards unset, so it passes the limit it exceeded.
func (m *Move) Shift(position float64, backwards bool) float64 {
	size := m.s.Layout.SliderSize(false)
	if size <= 0 {
		return position
	}
	excess := position - m.Limit(backwards)
	k := math.Ceil(math.Abs(excess) / size)
	if k == 0 {
		k = 1
	}
	delta := m.s.Direction.Orient(size * k)
	if backwards {
		return position - delta
	}
	return position + delta
}

// Jump puts the track at index without animating.
func (m *Move) Jump(index int) {
	m.Translate(m.ToPosition(index, true))
}

// Move animates to the slide with index. dest may be a clone index of a loop
// slider, in which case the track runs over the clones and lands on the
// matching real slide. done runs after the moved event's bookkeeping.
func (m *Move) Move(dest, index, prev int, forward bool, done func()) {
	s := m.s
	if !s.alive() {
		return
	}
	target := m.destination(dest, index, forward)

	if s.state.Is(state.Moving) {
		m.Cancel()
	}
	if s.state.Is(state.Scrolling) {
		s.Scroll.Cancel()
	}
	s.state.Set(state.Moving)
	e := MoveEvent{Index: index, Prev: prev, Dest: dest}
	emit(s, EventMove, e)

	s.transition.start(target, index, func() {
		if target != index && s.Is(TypeLoop) {
			before := m.position
			m.Jump(index)
			if m.position != before {
				emit(s, EventShifted, event.None{})
			}
		}
		s.state.Set(state.Idle)
		emit(s, EventMoved, e)
		if done != nil {
			done()
		}
	})
}

// destination chooses the index whose coordinate the transition runs to.
// Loop sliders pick the copy of index nearest to the track, keeping the
// direction of relative steps that wrapped.
func (m *Move) destination(dest, index int, forward bool) int {
	s := m.s
	n := s.Slides.Len(true)
	if !s.Is(TypeLoop) || n == 0 {
		return index
	}
	lo, hi := m.renderedRange()
	d := s.Direction
	best, bestDist := index, math.Inf(1)
	nearest, nearestDist := index, math.Inf(1)
	for c := index - 2*n; c <= index+2*n; c += n {
		if !between(c, lo, hi, false) {
			continue
		}
		p := m.ToPosition(c, false)
		dist := math.Abs(p - m.position)
		if dist < nearestDist {
			nearest, nearestDist = c, dist
		}
		if dest != index {
			moving := d.Orient(p - m.position)
			if (forward && moving < -epsilon) || (!forward && moving > epsilon) {
				continue
			}
		}
		if dist < bestDist {
			best, bestDist = c, dist
		}
	}
	if math.IsInf(bestDist, 1) {
		return nearest
	}
	return best
}

// renderedRange returns the indices a transition may target without
// running past the last clone.
func (m *Move) renderedRange() (int, int) {
	c := m.s.Clones.Count()
	n := m.s.Slides.Len(true)
	span := max(m.s.opts.PerPage, 1) - 1
	if m.s.Controller.HasFocus() {
		span = 0
	}
	return -c, max(n+c-1-span, n-1)
}

// Cancel stops a running transition, leaving the track where it is.
func (m *Move) Cancel() {
	m.s.transition.cancel()
	if m.s.state.Is(state.Moving) {
		m.s.state.Set(state.Idle)
	}
}

// Reposition puts the track back on the active index after a geometry
// change. It does nothing while the track is in motion.
func (m *Move) Reposition() {
	s := m.s
	if !s.alive() || s.state.Is(state.Moving, state.Scrolling, state.Dragging) {
		return
	}
	s.Scroll.Cancel()
	m.Jump(s.Controller.Index())
	s.Slides.update()
}

// ToPosition returns the offset that shows the slide with index at the
// focus point. With trimming, slide sliders never show space past their
// ends.
func (m *Move) ToPosition(index int, trimming bool) float64 {
	l := m.s.Layout
	position := m.s.Direction.Orient(l.TotalSize(index-1, false) - m.offset(index))
	if trimming {
		return m.trim(position)
	}
	return position
}

// offset is the distance between the list start and the focus point for
// the slide with index.
func (m *Move) offset(index int) float64 {
	f := m.s.opts.Focus
	l := m.s.Layout
	if !f.Set {
		return 0
	}
	if f.Center {
		return (l.ListSize(false) - l.SlideSize(index, true)) / 2
	}
	return f.Slot * l.SlideSize(index, false)
}

func (m *Move) trim(position float64) float64 {
	o := m.s.opts
	if o.TrimSpace == TrimOff || !m.s.Is(TypeSlide) {
		return position
	}
	l := m.s.Layout
	d := m.s.Direction
	return clamp(position, 0, d.Orient(l.SliderSize(true)-l.ListSize(false)))
}

// ToIndex returns the index of the real slide closest to position. On loop
// sliders every position maps into [0, N).
func (m *Move) ToIndex(position float64) int {
	index := m.toIndex(position)
	if n := m.s.Slides.Len(true); m.s.Is(TypeLoop) && n > 0 {
		return mod(index, n)
	}
	return index
}

// toIndex is ToIndex without the loop reduction: it may return a clone
// index, which keeps the direction of a drag hand-off.
func (m *Move) toIndex(position float64) int {
	recs := m.s.Slides.records
	if len(recs) == 0 {
		return 0
	}
	if m.s.Is(TypeLoop) {
		position = m.fold(position, recs[0].Index, recs[len(recs)-1].Index)
	}
	return m.nearest(position)
}

// nearest scans the rendered slides for the one closest to position.
func (m *Move) nearest(position float64) int {
	recs := m.s.Slides.records
	if len(recs) == 0 {
		return 0
	}
	index := recs[0].Index
	minDistance := math.Inf(1)
	for _, r := range recs {
		distance := math.Abs(m.ToPosition(r.Index, true) - position)
		if distance <= minDistance {
			minDistance = distance
			index = r.Index
		} else {
			break
		}
	}
	return index
}

// fold brings position inside the coordinates of the indices lo..hi by
// whole slider periods.
func (m *Move) fold(position float64, lo, hi int) float64 {
	size := m.s.Layout.SliderSize(false)
	if size <= 0 {
		return position
	}
	d := m.s.Direction
	distance := d.Orient(position)
	first := d.Orient(m.ToPosition(lo, false))
	last := d.Orient(m.ToPosition(hi, false))
	if distance < first {
		distance += math.Ceil((first-distance)/size) * size
	}
	if distance > last {
		distance -= math.Ceil((distance-last)/size) * size
	}
	return d.Orient(distance)
}

// Limit returns the offset of the first slide, or of the end index with max.
func (m *Move) Limit(max bool) float64 {
	index := 0
	if max {
		index = m.s.Controller.End()
	}
	return m.ToPosition(index, m.s.opts.TrimSpace != TrimOff)
}

// ExceededLimit reports whether the current offset lies past a limit.
func (m *Move) ExceededLimit(bound Bound) bool {
	return m.ExceededLimitAt(bound, m.position)
}

// ExceededLimitAt reports whether position lies past the selected limit.
func (m *Move) ExceededLimitAt(bound Bound, position float64) bool {
	d := m.s.Direction
	exceededMin := bound != BoundMax && d.Orient(position) < d.Orient(m.Limit(false))-epsilon
	exceededMax := bound != BoundMin && d.Orient(position) > d.Orient(m.Limit(true))+epsilon
	return exceededMin || exceededMax
}

// CanShift reports whether the track is far enough past a limit to be
// folded by one period.
func (m *Move) CanShift(backwards bool) bool {
	d := m.s.Direction
	shifted := d.Orient(m.Shift(m.position, backwards))
	if backwards {
		return shifted >= 0
	}
	l := m.s.Layout
	return shifted <= l.ListSize(true)-l.SlideSize(0, false)
}

// Progress returns where the track sits between its limits, in [0, 1].
func (m *Move) Progress() float64 {
	d := m.s.Direction
	lo := d.Orient(m.Limit(false))
	hi := d.Orient(m.Limit(true))
	if hi-lo <= epsilon {
		return 0
	}
	return clamp((d.Orient(m.position)-lo)/(hi-lo), 0, 1)
}
