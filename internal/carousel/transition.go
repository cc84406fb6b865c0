package carousel

import (
	"time"

	"github.com/five82/glide/internal/easing"
	"github.com/five82/glide/internal/ticker"
)

// transition animates Move from the current offset to a target index.
type transition interface {
	start(target, index int, done func())
	cancel()
}

// slideTransition tweens the offset with the CSS easing option.
type slideTransition struct {
	s      *Slider
	tween  *ticker.Interval
	parsed string
	ease   easing.Func
}

func (t *slideTransition) start(target, index int, done func()) {
	s := t.s
	m := s.Move
	from := m.Position()
	to := func() float64 { return m.ToPosition(target, true) }
	speed := t.speed(index)

	if speed <= 0 || approxEqual(from, to(), 1) {
		m.translate(to(), true)
		done()
		return
	}
	t.tween = s.Scroll.tween(from, to, speed, t.easing(), done)
}

func (t *slideTransition) cancel() {
	if t.tween != nil {
		t.tween.Cancel()
		t.tween = nil
	}
}

// speed returns rewindSpeed when a slide slider wraps between its ends.
func (t *slideTransition) speed(index int) time.Duration {
	s := t.s
	o := s.opts
	if s.instant {
		return 0
	}
	if s.Is(TypeSlide) && o.RewindSpeed > 0 {
		prev := s.Controller.PrevIndex()
		end := s.Controller.End()
		if (prev == 0 && index >= end) || (prev >= end && index == 0) {
			return o.RewindSpeed
		}
	}
	return o.Speed
}

func (t *slideTransition) easing() easing.Func {
	css := t.s.opts.Easing
	if t.ease != nil && css == t.parsed {
		return t.ease
	}
	fn, err := easing.Parse(css)
	if err != nil {
		t.s.logger.Warn("invalid easing, using default", "easing", css, "error", err)
		fn, _ = easing.Parse(DefaultEasing)
	}
	t.parsed, t.ease = css, fn
	return fn
}

// fadeTransition swaps slides in place and waits out the speed.
type fadeTransition struct {
	s    *Slider
	hold *ticker.Interval
}

func (t *fadeTransition) start(_, index int, done func()) {
	s := t.s
	s.Move.Jump(index)
	speed := s.opts.Speed
	if s.instant || speed <= 0 {
		done()
		return
	}
	t.hold = ticker.NewInterval(s.sched, speed, done, nil, 1)
	t.hold.Start(false)
}

func (t *fadeTransition) cancel() {
	if t.hold != nil {
		t.hold.Cancel()
		t.hold = nil
	}
}

// Rate returns the progress of the running fade in [0, 1].
func (t *fadeTransition) rate() float64 {
	if t.hold == nil || t.hold.IsPaused() {
		return 1
	}
	return t.hold.Rate()
}
