package carousel

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/five82/glide/internal/event"
)

const frame = 16 * time.Millisecond

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

// harness is a mounted slider with a hand-driven clock and an event log.
type harness struct {
	*Slider
	clock  *fakeClock
	events []string
}

func uniform(n int) []Size {
	sizes := make([]Size, n)
	for i := range sizes {
		sizes[i] = Size{Width: 100, Height: 50}
	}
	return sizes
}

func mount(t *testing.T, opts Options, n int, vp Viewport) *harness {
	t.Helper()
	return mountSizes(t, opts, uniform(n), vp)
}

func mountSizes(t *testing.T, opts Options, sizes []Size, vp Viewport) *harness {
	t.Helper()
	clock := &fakeClock{t: time.Unix(1_700_000_000, 0)}
	s := New(Config{ID: t.Name(), Options: opts, Slides: sizes, Clock: clock.now})
	h := &harness{Slider: s, clock: clock}
	s.Mount(vp)
	// A slider destroyed by its options during Mount has a closed bus.
	if err := event.OnAny(s.Scope("test"), func(name string, _ any) {
		h.events = append(h.events, name)
	}); err != nil && !errors.Is(err, event.ErrBusClosed) {
		t.Fatalf("OnAny() error = %v", err)
	}
	return h
}

func width(w float64) Viewport {
	return Viewport{Width: w, Height: 100}
}

// advance runs frames for d of fake time.
func (h *harness) advance(d time.Duration) {
	end := h.clock.t.Add(d)
	for h.clock.t.Before(end) {
		h.clock.t = h.clock.t.Add(frame)
		h.Frame(h.clock.t)
	}
}

// settle runs frames until nothing is animating, up to ten seconds.
func (h *harness) settle() {
	for i := 0; h.Animating() && i < 625; i++ {
		h.clock.t = h.clock.t.Add(frame)
		h.Frame(h.clock.t)
	}
}

func (h *harness) count(name string) int {
	n := 0
	for _, e := range h.events {
		if e == name {
			n++
		}
	}
	return n
}

func (h *harness) reset() {
	h.events = nil
}

func (h *harness) pointer(x, y float64, after time.Duration, touch bool) PointerEvent {
	return PointerEvent{X: x, Y: y, Time: h.clock.t.Add(after), Touch: touch}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func opts(edit func(o *Options)) Options {
	o := DefaultOptions()
	if edit != nil {
		edit(&o)
	}
	return o
}
