package carousel

import (
	"math"
	"time"

	"github.com/five82/glide/internal/event"
	"github.com/five82/glide/internal/state"
)

const (
	// logInterval is the window velocity samples are taken over.
	logInterval = 200 * time.Millisecond
	// dragFriction divides drag distance past the ends of a slide slider.
	dragFriction = 5
)

// PointerEvent is a pointer sample from the host.
type PointerEvent struct {
	X, Y  float64
	Time  time.Time
	Touch bool
	// Button is the mouse button; 0 is primary. Ignored for touch.
	Button int
}

// Drag turns pointer gestures into track translation and, on release, into
// a move or a free scroll.
type Drag struct {
	s *Slider

	disabled bool
	tracking bool
	engaged  bool
	exceeded bool
	touch    bool

	base         PointerEvent
	prevBase     PointerEvent
	hasPrevBase  bool
	basePosition float64
}

// Disable turns dragging off regardless of the drag option.
func (d *Drag) Disable(disabled bool) {
	d.disabled = disabled
}

// IsDragging reports whether a gesture has passed its threshold.
func (d *Drag) IsDragging() bool {
	return d.engaged
}

// PointerDown starts tracking a gesture. It reports whether the event was
// consumed; unconsumed events keep their native meaning (clicks, taps).
func (d *Drag) PointerDown(e PointerEvent) bool {
	s := d.s
	if !s.alive() || d.disabled || s.opts.Drag == DragDisabled {
		return false
	}
	if !e.Touch && e.Button != 0 {
		return false
	}
	if s.Controller.IsBusy() {
		return true
	}

	grabbed := s.state.Is(state.Moving, state.Scrolling)
	s.Move.Cancel()
	s.Scroll.Cancel()

	d.tracking = true
	d.touch = e.Touch
	d.exceeded = false
	d.base = e
	d.hasPrevBase = false
	d.basePosition = s.Move.Position()

	if grabbed {
		d.engage()
	}
	return grabbed
}

// PointerMove translates the track while a gesture runs.
func (d *Drag) PointerMove(e PointerEvent) bool {
	s := d.s
	if !d.tracking || !s.alive() {
		return false
	}
	if !d.engaged {
		if !d.isSliderDirection(e) {
			return false
		}
		if d.shouldRelease(e) {
			d.tracking = false
			return false
		}
		if !d.shouldStart(e) {
			return true
		}
		d.engage()
	}

	m := s.Move
	m.Translate(d.basePosition + d.constrain(d.diffCoord(e, d.base, false)))

	expired := e.Time.Sub(d.base.Time) > logInterval
	was := d.exceeded
	d.exceeded = m.ExceededLimit(BoundEither)
	if expired || was != d.exceeded {
		d.save(e)
	}
	emit(s, EventDragging, event.None{})
	return true
}

// PointerUp finishes a gesture: a flick hands off to Controller, a free
// drag scrolls with momentum.
func (d *Drag) PointerUp(e PointerEvent) bool {
	s := d.s
	if !d.tracking {
		return false
	}
	d.tracking = false
	if !d.engaged {
		return false
	}
	d.engaged = false
	if !s.alive() {
		return true
	}

	velocity := d.computeVelocity(e)
	destination := d.computeDestination(velocity)
	s.Breakpoints.Reduce(false)
	d.release(velocity, destination)
	s.Breakpoints.Reduce(true)

	if s.state.Is(state.Dragging) {
		s.state.Set(state.Idle)
	}
	s.flushResize()
	return true
}

func (d *Drag) engage() {
	s := d.s
	d.engaged = true
	d.basePosition = s.Move.Position()
	s.state.Set(state.Dragging)
	emit(s, EventDrag, event.None{})
}

func (d *Drag) release(velocity, destination float64) {
	s := d.s
	o := s.opts
	c := s.Controller

	switch {
	case o.Drag == DragFree:
		s.state.Set(state.Idle)
		emit(s, EventDragged, event.None{})
		c.scroll(destination, AutoDuration, o.Snap, o.UpdateOnDragged, nil)
	case s.Is(TypeFade):
		emit(s, EventDragged, event.None{})
		backwards := s.Direction.Orient(sign(velocity)) < 0
		control := By(1)
		switch {
		case backwards && o.Rewind:
			control = Prev
		case backwards:
			control = By(-1)
		case o.Rewind:
			control = Next
		}
		c.goTo(control, false, true, nil)
	case s.Is(TypeSlide) && d.exceeded && o.Rewind && o.RewindByDrag:
		emit(s, EventDragged, event.None{})
		control := Prev
		if s.Move.ExceededLimit(BoundMax) {
			control = Next
		}
		c.goTo(control, false, true, nil)
	default:
		emit(s, EventDragged, event.None{})
		c.goTo(To(c.ToDest(destination)), true, true, nil)
	}
}

func (d *Drag) save(e PointerEvent) {
	d.prevBase, d.hasPrevBase = d.base, true
	d.base = e
	d.basePosition = d.s.Move.Position()
}

func (d *Drag) shouldStart(e PointerEvent) bool {
	t := d.s.opts.DragMinThreshold
	threshold := t.Mouse
	if d.touch {
		threshold = t.Touch
	}
	return math.Abs(d.diffCoord(e, d.base, false)) > threshold
}

// shouldRelease lets a touch gesture go back to the host when it pushes a
// slide slider past the end it rests on.
func (d *Drag) shouldRelease(e PointerEvent) bool {
	s := d.s
	o := s.opts
	if !d.touch || !o.ReleaseTouch || !s.Is(TypeSlide) || (o.Rewind && o.RewindByDrag) {
		return false
	}
	m := s.Move
	candidate := m.Position() + d.diffCoord(e, d.base, false)
	atMin := approxEqual(m.Position(), m.Limit(false), 1)
	atMax := approxEqual(m.Position(), m.Limit(true), 1)
	return (atMin && m.ExceededLimitAt(BoundMin, candidate)) ||
		(atMax && m.ExceededLimitAt(BoundMax, candidate))
}

func (d *Drag) isSliderDirection(e PointerEvent) bool {
	return math.Abs(d.diffCoord(e, d.base, false)) > math.Abs(d.diffCoord(e, d.base, true))
}

func (d *Drag) constrain(diff float64) float64 {
	if d.exceeded && d.s.Is(TypeSlide) {
		return diff / dragFriction
	}
	return diff
}

func (d *Drag) computeVelocity(e PointerEvent) float64 {
	if d.s.Is(TypeLoop) || !d.exceeded {
		base := d.base
		if base == e && d.hasPrevBase {
			base = d.prevBase
		}
		dt := e.Time.Sub(base.Time)
		if dt > 0 && dt < logInterval {
			return d.diffCoord(e, base, false) / (float64(dt) / float64(time.Millisecond))
		}
	}
	return 0
}

func (d *Drag) computeDestination(velocity float64) float64 {
	o := d.s.opts
	limit := d.s.Layout.ListSize(false) * o.FlickMaxPages
	if o.Drag == DragFree {
		limit = math.Inf(1)
	}
	return d.s.Move.Position() + sign(velocity)*min(math.Abs(velocity)*o.FlickPower, limit)
}

// diffCoord is the distance between two samples along the slider axis, or
// across it with orthogonal.
func (d *Drag) diffCoord(e, base PointerEvent, orthogonal bool) float64 {
	vertical := d.s.Direction.Vertical() != orthogonal
	if vertical {
		return e.Y - base.Y
	}
	return e.X - base.X
}
