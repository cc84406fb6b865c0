package carousel

import (
	"github.com/five82/glide/internal/event"
	"github.com/five82/glide/internal/ticker"
)

// PauseReason records why autoplay is held.
type PauseReason string

const (
	ReasonHover  PauseReason = "hover"
	ReasonFocus  PauseReason = "focus"
	ReasonManual PauseReason = "manual"
)

// Autoplay advances the slider by one page every interval while nothing
// holds it.
type Autoplay struct {
	s        *Slider
	interval *ticker.Interval
	holds    map[PauseReason]bool
}

func (a *Autoplay) setup() {
	a.holds = make(map[PauseReason]bool)
	a.interval = ticker.NewInterval(a.s.sched, a.s.opts.Interval, a.tick, func(rate float64) {
		emit(a.s, EventAutoplayPlaying, rate)
	}, 0)
}

func (a *Autoplay) mount() {
	s := a.s
	scope := s.scope("autoplay")
	rewind := func() { a.interval.Rewind() }
	listen(scope, EventMove, func(MoveEvent) { rewind() })
	listen(scope, EventScroll, func(event.None) { rewind() })
	listen(scope, EventRefresh, func(event.None) { rewind() })
	listen(scope, EventUpdated, func(o Options) { a.apply(o) })

	if s.opts.Autoplay == AutoplayOn {
		a.resume()
	} else {
		a.holds[ReasonManual] = true
	}
}

func (a *Autoplay) apply(o Options) {
	a.interval.Set(o.Interval)
	if o.Autoplay != AutoplayOn {
		a.Hold(ReasonManual)
	}
}

func (a *Autoplay) tick() {
	c := a.s.Controller
	if c.Next(false) == -1 {
		a.Hold(ReasonManual)
		return
	}
	c.Go(Next, nil)
}

// Play clears a manual pause and starts the interval when nothing else
// holds it.
func (a *Autoplay) Play() {
	delete(a.holds, ReasonManual)
	a.resume()
}

// Pause stops autoplay until Play.
func (a *Autoplay) Pause() {
	a.Hold(ReasonManual)
}

// Hold pauses autoplay for reason. Hover and focus holds are ignored when
// their pause options are off.
func (a *Autoplay) Hold(reason PauseReason) {
	o := a.s.opts
	if (reason == ReasonHover && !o.PauseOnHover) || (reason == ReasonFocus && !o.PauseOnFocus) {
		return
	}
	a.holds[reason] = true
	if !a.interval.IsPaused() {
		a.interval.Pause()
		emit(a.s, EventAutoplayPause, event.None{})
	}
}

// Release drops the hold for reason and resumes when no hold remains.
func (a *Autoplay) Release(reason PauseReason) {
	if reason == ReasonManual {
		return
	}
	delete(a.holds, reason)
	a.resume()
}

func (a *Autoplay) resume() {
	s := a.s
	if len(a.holds) > 0 || !a.interval.IsPaused() || !s.alive() || !s.Slides.IsEnough() {
		return
	}
	a.interval.Start(!s.opts.ResetProgress)
	emit(s, EventAutoplayPlay, event.None{})
}

// IsPaused reports whether the interval is stopped.
func (a *Autoplay) IsPaused() bool {
	return a.interval == nil || a.interval.IsPaused()
}

// Rate returns the progress towards the next tick.
func (a *Autoplay) Rate() float64 {
	if a.interval == nil {
		return 0
	}
	return a.interval.Rate()
}

func (a *Autoplay) destroy(bool) {
	if a.interval != nil {
		a.interval.Cancel()
	}
}
