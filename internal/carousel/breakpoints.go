package carousel

import (
	"slices"

	"github.com/five82/glide/internal/state"
)

// Breakpoints resolves the effective options from the base options, the
// breakpoint table and the reduced-motion override.
type Breakpoints struct {
	s *Slider

	keys    []int
	reduce  bool
	runtime Override

	matched int
	reduced bool
}

const noMatch = -1

func (b *Breakpoints) setup() {
	b.reduce = true
	b.sortKeys()
	b.matched, b.reduced = b.match(b.s.vp)
	b.s.opts = b.resolve()
}

func (b *Breakpoints) sortKeys() {
	b.keys = b.keys[:0]
	for k := range b.s.base.Breakpoints {
		b.keys = append(b.keys, k)
	}
	slices.Sort(b.keys)
	if b.s.base.MediaQuery != MediaMin {
		slices.Reverse(b.keys)
	}
}

// Match returns the breakpoint key that applies to width, or false when no
// key matches. For max queries the smallest key not below width wins; for
// min queries the largest key not above it.
func (b *Breakpoints) Match(width float64) (int, bool) {
	found := noMatch
	minQuery := b.s.base.MediaQuery == MediaMin
	for _, k := range b.keys {
		if minQuery && float64(k) <= width {
			found = k
		}
		if !minQuery && float64(k) >= width {
			found = k
		}
	}
	return found, found != noMatch
}

func (b *Breakpoints) match(vp Viewport) (int, bool) {
	key, ok := b.Match(vp.Width)
	if !ok {
		key = noMatch
	}
	return key, vp.ReducedMotion
}

// resolve merges the layers in order: base, matched breakpoint, runtime
// overrides, reduced motion.
func (b *Breakpoints) resolve() Options {
	base := b.s.base
	o := base
	if b.matched != noMatch {
		o = o.Apply(base.Breakpoints[b.matched])
	}
	o = o.Apply(b.runtime)
	if b.reduced && b.reduce {
		reduced := DefaultReducedMotion()
		if base.ReducedMotion != nil {
			reduced = *base.ReducedMotion
		}
		o = o.Apply(reduced)
	}
	return o
}

// Effective returns the options that would apply to vp without changing
// the slider.
func (b *Breakpoints) Effective(vp Viewport) Options {
	saved, savedReduced := b.matched, b.reduced
	b.matched, b.reduced = b.match(vp)
	o := b.resolve()
	b.matched, b.reduced = saved, savedReduced
	return o
}

// Update re-evaluates the media state for the slider viewport and applies
// the result when it changed. It reports whether options were applied.
func (b *Breakpoints) Update() bool {
	matched, reduced := b.match(b.s.vp)
	if matched == b.matched && reduced == b.reduced {
		return false
	}
	b.s.logger.Debug("breakpoint", "key", matched, "reduced_motion", reduced)
	b.matched, b.reduced = matched, reduced
	b.runtime = Override{}
	return b.apply(false)
}

// Set merges ov into the options. With base the change survives breakpoint
// switches; otherwise it lasts until the matched breakpoint changes. With
// notify an updated event fires even when nothing changed.
func (b *Breakpoints) Set(ov Override, base, notify bool) {
	if base {
		b.s.base = b.s.base.Apply(ov)
	} else {
		b.runtime = b.runtime.Merge(ov)
	}
	b.apply(notify)
}

// Reduce enables or disables the reduced-motion override without notifying
// listeners. Drag disables it while handing a flick to the controller.
func (b *Breakpoints) Reduce(enable bool) {
	if b.reduce == enable {
		return
	}
	b.reduce = enable
	b.s.opts = b.resolve()
}

// IsReduced reports whether the reduced-motion override is in effect.
func (b *Breakpoints) IsReduced() bool {
	return b.reduced && b.reduce
}

// Matched returns the active breakpoint key.
func (b *Breakpoints) Matched() (int, bool) {
	return b.matched, b.matched != noMatch
}

func (b *Breakpoints) apply(notify bool) bool {
	s := b.s
	prev := s.opts
	next := b.resolve()
	changed := !sameOptions(prev, next)
	s.opts = next
	if !s.alive() || (!changed && !notify) {
		return changed
	}
	if next.Destroy {
		s.Destroy(true)
		return true
	}
	if s.state.Is(state.Dragging) {
		s.pending = true
		return changed
	}
	if prev.Type != next.Type || prev.Direction != next.Direction {
		s.rebuild()
	} else {
		s.Layout.Resize(true)
		s.Controller.init()
		s.Move.Reposition()
	}
	emit(s, EventUpdated, s.opts)
	return true
}
