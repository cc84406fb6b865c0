package carousel

import (
	"testing"
	"time"

	"github.com/five82/glide/internal/state"
)

func at(t0 time.Time, ms int, x, y float64, touch bool) PointerEvent {
	return PointerEvent{X: x, Y: y, Time: t0.Add(time.Duration(ms) * time.Millisecond), Touch: touch}
}

func TestDrag_BelowThresholdChangesNothing(t *testing.T) {
	h := mount(t, DefaultOptions(), 5, width(100))
	t0 := h.clock.t

	h.Drag.PointerDown(at(t0, 0, 50, 0, true))
	if !h.Drag.PointerMove(at(t0, 20, 45, 0, true)) {
		t.Fatal("PointerMove() along the axis was not consumed")
	}
	if h.Drag.PointerUp(at(t0, 40, 45, 0, true)) {
		t.Fatal("PointerUp() consumed a tap")
	}
	if h.Move.Position() != 0 || h.Index() != 0 {
		t.Fatalf("Position() = %v, Index() = %d, want 0 and 0", h.Move.Position(), h.Index())
	}
	if h.State() != state.Idle {
		t.Fatalf("State() = %v, want idle", h.State())
	}
	if len(h.events) != 0 {
		t.Fatalf("events = %v, want none", h.events)
	}
}

func TestDrag_CrossAxisGestureIsNotCaptured(t *testing.T) {
	h := mount(t, DefaultOptions(), 5, width(100))
	t0 := h.clock.t
	h.Drag.PointerDown(at(t0, 0, 50, 50, false))
	if h.Drag.PointerMove(at(t0, 20, 52, 80, false)) {
		t.Fatal("PointerMove() across the axis was consumed")
	}
	if h.Drag.IsDragging() {
		t.Fatal("IsDragging() = true")
	}
}

func TestDrag_FlickMovesToNextSlide(t *testing.T) {
	h := mount(t, DefaultOptions(), 5, width(100))
	t0 := h.clock.t

	h.Drag.PointerDown(at(t0, 0, 50, 0, false))
	h.Drag.PointerMove(at(t0, 50, 30, 0, false))
	if h.State() != state.Dragging {
		t.Fatalf("State() = %v, want dragging", h.State())
	}
	if !near(h.Move.Position(), -20) {
		t.Fatalf("Position() while dragging = %v, want -20", h.Move.Position())
	}
	if h.Index() != 0 {
		t.Fatalf("Index() while dragging = %d, want 0", h.Index())
	}
	if !h.Drag.PointerUp(at(t0, 60, 30, 0, false)) {
		t.Fatal("PointerUp() not consumed after a drag")
	}
	if h.State() != state.Moving {
		t.Fatalf("State() after release = %v, want moving", h.State())
	}
	h.settle()
	if h.Index() != 1 || !near(h.Move.Position(), -100) {
		t.Fatalf("Index() = %d, Position() = %v, want 1 and -100", h.Index(), h.Move.Position())
	}
	for _, name := range []string{"drag", "dragging", "dragged", "move", "moved"} {
		if h.count(name) == 0 {
			t.Fatalf("events = %v, missing %s", h.events, name)
		}
	}
}

func TestDrag_PastStartSnapsBackWithFriction(t *testing.T) {
	h := mount(t, DefaultOptions(), 5, width(100))
	t0 := h.clock.t

	h.Drag.PointerDown(at(t0, 0, 0, 0, false))
	h.Drag.PointerMove(at(t0, 10, 50, 0, false))
	if !near(h.Move.Position(), 50) {
		t.Fatalf("Position() = %v, want 50", h.Move.Position())
	}
	h.Drag.PointerMove(at(t0, 20, 60, 0, false))
	if !near(h.Move.Position(), 52) {
		t.Fatalf("Position() past the limit = %v, want 52", h.Move.Position())
	}
	h.Drag.PointerUp(at(t0, 30, 60, 0, false))
	h.settle()
	if h.Index() != 0 || !near(h.Move.Position(), 0) {
		t.Fatalf("Index() = %d, Position() = %v, want 0 and 0", h.Index(), h.Move.Position())
	}
}

func TestDrag_RewindByDragWraps(t *testing.T) {
	h := mount(t, opts(func(o *Options) {
		o.Rewind = true
		o.RewindByDrag = true
	}), 5, width(100))
	t0 := h.clock.t

	h.Drag.PointerDown(at(t0, 0, 0, 0, false))
	h.Drag.PointerMove(at(t0, 10, 50, 0, false))
	h.Drag.PointerUp(at(t0, 20, 50, 0, false))
	h.settle()
	if h.Index() != 4 {
		t.Fatalf("Index() = %d, want 4", h.Index())
	}
}

func TestDrag_FreeZeroVelocityKeepsOffset(t *testing.T) {
	h := mount(t, opts(func(o *Options) { o.Drag = DragFree }), 5, width(100))
	t0 := h.clock.t

	h.Drag.PointerDown(at(t0, 0, 100, 0, false))
	h.Drag.PointerMove(at(t0, 10, 60, 0, false))
	h.Drag.PointerMove(at(t0, 300, 60, 0, false))
	h.Drag.PointerUp(at(t0, 310, 60, 0, false))

	if !near(h.Move.Position(), -40) {
		t.Fatalf("Position() = %v, want -40", h.Move.Position())
	}
	if h.Animating() {
		t.Fatal("Animating() = true after a still release")
	}
	if h.State() != state.Idle {
		t.Fatalf("State() = %v, want idle", h.State())
	}
	if h.count("scrolled") != 1 {
		t.Fatalf("scrolled events = %d, want 1", h.count("scrolled"))
	}
}

func TestDrag_FreeStillReleasePastStartBouncesBack(t *testing.T) {
	h := mount(t, opts(func(o *Options) { o.Drag = DragFree }), 5, width(100))
	t0 := h.clock.t

	h.Drag.PointerDown(at(t0, 0, 0, 0, false))
	h.Drag.PointerMove(at(t0, 10, 60, 0, false))
	h.Drag.PointerMove(at(t0, 300, 60, 0, false))
	if h.Move.Position() <= 0 {
		t.Fatalf("Position() while dragging = %v, want past the start", h.Move.Position())
	}
	h.Drag.PointerUp(at(t0, 310, 60, 0, false))

	if h.State() != state.Scrolling || !h.Animating() {
		t.Fatalf("State() = %v, Animating() = %v, want scrolling back", h.State(), h.Animating())
	}
	h.settle()
	if !near(h.Move.Position(), 0) {
		t.Fatalf("Position() = %v, want 0", h.Move.Position())
	}
	if h.State() != state.Idle {
		t.Fatalf("State() = %v, want idle", h.State())
	}
	if h.Index() != 0 {
		t.Fatalf("Index() = %d, want 0", h.Index())
	}
	if h.count("scrolled") != 1 {
		t.Fatalf("scrolled events = %d, want 1", h.count("scrolled"))
	}
}

func TestDrag_FreeSnapSettlesOnSlide(t *testing.T) {
	h := mount(t, opts(func(o *Options) {
		o.Drag = DragFree
		o.Snap = true
	}), 5, width(100))
	t0 := h.clock.t

	h.Drag.PointerDown(at(t0, 0, 100, 0, false))
	h.Drag.PointerMove(at(t0, 50, 70, 0, false))
	h.Drag.PointerUp(at(t0, 60, 70, 0, false))
	if h.State() != state.Scrolling {
		t.Fatalf("State() = %v, want scrolling", h.State())
	}
	h.settle()
	if !near(h.Move.Position(), -300) {
		t.Fatalf("Position() = %v, want -300", h.Move.Position())
	}
	if h.Index() != 3 {
		t.Fatalf("Index() = %d, want 3", h.Index())
	}
}

func TestDrag_FreeWithoutUpdateKeepsIndex(t *testing.T) {
	h := mount(t, opts(func(o *Options) {
		o.Drag = DragFree
		o.UpdateOnDragged = false
	}), 5, width(100))
	t0 := h.clock.t

	h.Drag.PointerDown(at(t0, 0, 100, 0, false))
	h.Drag.PointerMove(at(t0, 50, 70, 0, false))
	h.Drag.PointerUp(at(t0, 60, 70, 0, false))
	h.settle()
	if h.Index() != 0 {
		t.Fatalf("Index() = %d, want 0", h.Index())
	}
}

func TestDrag_DisabledIgnoresPointer(t *testing.T) {
	h := mount(t, opts(func(o *Options) { o.Drag = DragDisabled }), 5, width(100))
	t0 := h.clock.t
	if h.Drag.PointerDown(at(t0, 0, 50, 0, false)) {
		t.Fatal("PointerDown() consumed with drag disabled")
	}
	if h.Drag.PointerMove(at(t0, 10, 0, 0, false)) {
		t.Fatal("PointerMove() consumed with drag disabled")
	}

	h = mount(t, DefaultOptions(), 5, width(100))
	h.Drag.Disable(true)
	h.Drag.PointerDown(at(t0, 0, 50, 0, false))
	h.Drag.PointerMove(at(t0, 10, 0, 0, false))
	if h.Move.Position() != 0 {
		t.Fatalf("Position() = %v, want 0", h.Move.Position())
	}
}

func TestDrag_GrabDuringTransitionCancelsIt(t *testing.T) {
	h := mount(t, opts(func(o *Options) { o.WaitForTransition = false }), 5, width(100))
	_ = h.Go(">")
	h.advance(50 * time.Millisecond)
	t0 := h.clock.t

	if !h.Drag.PointerDown(at(t0, 0, 50, 0, false)) {
		t.Fatal("PointerDown() during a transition was not consumed")
	}
	if h.State() != state.Dragging {
		t.Fatalf("State() = %v, want dragging", h.State())
	}
	h.settle()
	if h.count("moved") != 0 {
		t.Fatalf("moved events = %d, want 0", h.count("moved"))
	}
}

func TestDrag_BusySliderRejectsGesture(t *testing.T) {
	h := mount(t, DefaultOptions(), 5, width(100))
	_ = h.Go(">")
	t0 := h.clock.t
	if !h.Drag.PointerDown(at(t0, 0, 50, 0, false)) {
		t.Fatal("PointerDown() while busy was not consumed")
	}
	if h.Drag.PointerMove(at(t0, 10, 0, 0, false)) {
		t.Fatal("PointerMove() tracked a rejected gesture")
	}
}

func TestDrag_ReleaseTouchAtEdgeHandsBack(t *testing.T) {
	h := mount(t, opts(func(o *Options) { o.ReleaseTouch = true }), 5, width(100))
	t0 := h.clock.t
	h.Drag.PointerDown(at(t0, 0, 10, 0, true))
	if h.Drag.PointerMove(at(t0, 10, 60, 0, true)) {
		t.Fatal("PointerMove() past the start was consumed")
	}
	if h.Drag.IsDragging() || h.Move.Position() != 0 {
		t.Fatalf("IsDragging() = %v, Position() = %v, want false and 0", h.Drag.IsDragging(), h.Move.Position())
	}
}

func TestDrag_ResizeWaitsForRelease(t *testing.T) {
	h := mount(t, opts(func(o *Options) {
		o.Breakpoints = map[int]Override{600: {PerPage: ptr(1)}, 1000: {PerPage: ptr(3)}}
	}), 9, width(500))
	t0 := h.clock.t

	h.Drag.PointerDown(at(t0, 0, 100, 0, false))
	h.Drag.PointerMove(at(t0, 10, 80, 0, false))
	h.Resize(width(800))
	if h.Options().PerPage != 1 {
		t.Fatalf("PerPage during drag = %d, want 1", h.Options().PerPage)
	}
	h.Drag.PointerUp(at(t0, 300, 80, 0, false))
	if h.Options().PerPage != 3 {
		t.Fatalf("PerPage after release = %d, want 3", h.Options().PerPage)
	}
	h.settle()
	if h.Viewport().Width != 800 {
		t.Fatalf("Viewport().Width = %v, want 800", h.Viewport().Width)
	}
}

func ptr[T any](v T) *T {
	return &v
}
