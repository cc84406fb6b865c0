package carousel

import (
	"math"
	"time"

	"github.com/five82/glide/internal/easing"
	"github.com/five82/glide/internal/event"
	"github.com/five82/glide/internal/state"
	"github.com/five82/glide/internal/ticker"
)

// AutoDuration makes Scroll derive the duration from the distance.
const AutoDuration time.Duration = -1

const (
	// baseVelocity is the auto-duration speed in pixels per millisecond.
	baseVelocity        = 1.5
	minDuration         = 800 * time.Millisecond
	frictionFactor      = 0.6
	bounceDiffThreshold = 10
	bounceDuration      = 600 * time.Millisecond
)

// Scroll tweens the track to an arbitrary offset, bouncing back from the
// ends of a slide slider.
type Scroll struct {
	s        *Slider
	interval *ticker.Interval
	callback func()
	friction float64
}

func (sc *Scroll) mount() {
	scope := sc.s.scope("scroll")
	listen(scope, EventMove, func(MoveEvent) { sc.clear() })
	listen(scope, EventUpdated, func(Options) { sc.Cancel() })
	listen(scope, EventRefresh, func(event.None) { sc.Cancel() })
}

// Scroll moves the track to destination over duration. With snap the
// destination is moved onto the nearest slide. done runs before the
// scrolled event. A zero duration jumps.
func (sc *Scroll) Scroll(destination float64, duration time.Duration, snap bool, done func()) {
	sc.scroll(destination, duration, snap, done, false)
}

func (sc *Scroll) scroll(destination float64, duration time.Duration, snap bool, done func(), noConstrain bool) {
	s := sc.s
	if !s.alive() {
		return
	}
	m := s.Move
	from := m.Position()
	sc.clear()

	if snap && (!s.Is(TypeSlide) || !m.ExceededLimit(BoundEither)) {
		size := s.Layout.SliderSize(false)
		offset := 0.0
		if size > 0 {
			offset = sign(destination) * size * math.Floor(math.Abs(destination)/size)
			destination = m.ToPosition(s.Controller.ToDest(math.Mod(destination, size)), false) + offset
		}
	}

	if s.state.Is(state.Moving) {
		m.Cancel()
	}
	if s.state.Is(state.Dragging) {
		s.state.Set(state.Idle)
	}

	sc.friction = 1
	sc.callback = done
	if approxEqual(from, destination, 1) {
		duration = 0
	} else if duration == AutoDuration {
		ms := math.Abs(destination-from) / baseVelocity
		duration = max(time.Duration(ms*float64(time.Millisecond)), minDuration)
	}

	s.state.Set(state.Scrolling)
	emit(s, EventScroll, event.None{})
	if duration <= 0 {
		m.Translate(destination)
		if s.Is(TypeSlide) && !noConstrain && m.ExceededLimit(BoundEither) {
			sc.scroll(m.Limit(m.ExceededLimit(BoundMax)), bounceDuration, false, sc.callback, true)
			return
		}
		sc.onEnd()
		return
	}
	ease := s.opts.EasingFunc
	if ease == nil {
		ease = easing.OutQuart
	}
	sc.interval = ticker.NewInterval(s.sched, duration, sc.onEnd, func(rate float64) {
		sc.update(from, destination, noConstrain, ease(rate))
	}, 1)
	sc.interval.Start(false)
}

func (sc *Scroll) update(from, to float64, noConstrain bool, progress float64) {
	s := sc.s
	m := s.Move
	position := m.Position()
	target := from + (to-from)*progress
	diff := (target - position) * sc.friction
	m.Translate(position + diff)
	emit(s, EventScrolling, event.None{})

	if s.Is(TypeSlide) && !noConstrain && m.ExceededLimit(BoundEither) {
		sc.friction *= frictionFactor
		if math.Abs(diff) < bounceDiffThreshold {
			sc.scroll(m.Limit(m.ExceededLimit(BoundMax)), bounceDuration, false, sc.callback, true)
		}
	}
}

func (sc *Scroll) onEnd() {
	s := sc.s
	s.state.Set(state.Idle)
	cb := sc.callback
	sc.callback = nil
	if cb != nil {
		cb()
	}
	emit(s, EventScrolled, event.None{})
}

// Cancel stops a running scroll where it is. The callback is dropped and no
// scrolled event fires.
func (sc *Scroll) Cancel() {
	if sc.interval == nil || sc.interval.IsPaused() {
		return
	}
	sc.clear()
	sc.callback = nil
	if sc.s.state.Is(state.Scrolling) {
		sc.s.state.Set(state.Idle)
	}
}

// IsScrolling reports whether a scroll tween is running.
func (sc *Scroll) IsScrolling() bool {
	return sc.interval != nil && !sc.interval.IsPaused()
}

func (sc *Scroll) clear() {
	if sc.interval != nil {
		sc.interval.Cancel()
	}
}

// tween runs a one-shot animation of the offset for a transition. The
// destination is re-read each frame so a resize mid-flight lands on the
// current geometry.
func (sc *Scroll) tween(from float64, to func() float64, d time.Duration, ease easing.Func, done func()) *ticker.Interval {
	m := sc.s.Move
	iv := ticker.NewInterval(sc.s.sched, d, done, func(rate float64) {
		m.translate(from+(to()-from)*ease(rate), true)
	}, 1)
	iv.Start(false)
	return iv
}
