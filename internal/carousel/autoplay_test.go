package carousel

import (
	"testing"
	"time"
)

func autoplayOptions(edit func(o *Options)) Options {
	return opts(func(o *Options) {
		o.Autoplay = AutoplayOn
		o.Interval = time.Second
		if edit != nil {
			edit(o)
		}
	})
}

func TestAutoplay_AdvancesEveryInterval(t *testing.T) {
	h := mount(t, autoplayOptions(nil), 5, width(100))
	if h.Autoplay.IsPaused() {
		t.Fatal("IsPaused() = true after mount, want false")
	}

	h.advance(900 * time.Millisecond)
	if h.count("move") != 0 {
		t.Fatalf("move events before the interval = %d, want 0", h.count("move"))
	}
	h.advance(200 * time.Millisecond)
	if h.count("move") != 1 || h.Index() != 1 {
		t.Fatalf("after 1.1s: move events = %d, Index() = %d, want 1 and 1", h.count("move"), h.Index())
	}
	h.advance(time.Second)
	if h.count("move") != 2 || h.Index() != 2 {
		t.Fatalf("after 2.1s: move events = %d, Index() = %d, want 2 and 2", h.count("move"), h.Index())
	}
}

func TestAutoplay_RateTracksProgress(t *testing.T) {
	h := mount(t, autoplayOptions(nil), 5, width(100))
	h.advance(500 * time.Millisecond)
	if r := h.Autoplay.Rate(); r < 0.45 || r > 0.55 {
		t.Fatalf("Rate() = %v, want about 0.5", r)
	}
	if h.count("autoplay:playing") == 0 {
		t.Fatal("no autoplay:playing events")
	}
}

func TestAutoplay_ManualMoveRewinds(t *testing.T) {
	h := mount(t, autoplayOptions(nil), 5, width(100))
	h.advance(800 * time.Millisecond)
	_ = h.Go("3")
	if r := h.Autoplay.Rate(); r != 0 {
		t.Fatalf("Rate() after a manual move = %v, want 0", r)
	}
	h.advance(600 * time.Millisecond)
	if h.count("move") != 1 {
		t.Fatalf("move events = %d, want 1", h.count("move"))
	}
}

func TestAutoplay_HoldAndRelease(t *testing.T) {
	h := mount(t, autoplayOptions(nil), 5, width(100))

	h.Autoplay.Hold(ReasonHover)
	if !h.Autoplay.IsPaused() || h.count("autoplay:pause") != 1 {
		t.Fatalf("IsPaused() = %v, pause events = %d, want true and 1", h.Autoplay.IsPaused(), h.count("autoplay:pause"))
	}
	h.advance(2 * time.Second)
	if h.count("move") != 0 {
		t.Fatalf("move events while held = %d, want 0", h.count("move"))
	}

	h.Autoplay.Hold(ReasonFocus)
	h.Autoplay.Release(ReasonHover)
	if !h.Autoplay.IsPaused() {
		t.Fatal("IsPaused() = false with a focus hold left")
	}
	h.Autoplay.Release(ReasonFocus)
	if h.Autoplay.IsPaused() || h.count("autoplay:play") != 1 {
		t.Fatalf("IsPaused() = %v, play events = %d, want false and 1", h.Autoplay.IsPaused(), h.count("autoplay:play"))
	}
}

func TestAutoplay_ManualPauseNeedsPlay(t *testing.T) {
	h := mount(t, autoplayOptions(nil), 5, width(100))
	h.Autoplay.Pause()
	h.Autoplay.Hold(ReasonHover)
	h.Autoplay.Release(ReasonHover)
	h.Autoplay.Release(ReasonManual)
	if !h.Autoplay.IsPaused() {
		t.Fatal("IsPaused() = false, want true until Play")
	}
	h.Autoplay.Play()
	if h.Autoplay.IsPaused() {
		t.Fatal("IsPaused() = true after Play")
	}
}

func TestAutoplay_HoverIgnoredWhenDisabled(t *testing.T) {
	h := mount(t, autoplayOptions(func(o *Options) { o.PauseOnHover = false }), 5, width(100))
	h.Autoplay.Hold(ReasonHover)
	if h.Autoplay.IsPaused() {
		t.Fatal("IsPaused() = true, want hover hold ignored")
	}
}

func TestAutoplay_StopsAtUnreachableEnd(t *testing.T) {
	h := mount(t, autoplayOptions(nil), 3, width(100))
	h.advance(3200 * time.Millisecond)
	if h.Index() != 2 {
		t.Fatalf("Index() = %d, want 2", h.Index())
	}
	if !h.Autoplay.IsPaused() || h.count("autoplay:pause") != 1 {
		t.Fatalf("IsPaused() = %v, pause events = %d, want true and 1", h.Autoplay.IsPaused(), h.count("autoplay:pause"))
	}
	h.advance(2 * time.Second)
	if h.count("move") != 2 {
		t.Fatalf("move events = %d, want 2", h.count("move"))
	}
}

func TestAutoplay_RewindKeepsPlaying(t *testing.T) {
	h := mount(t, autoplayOptions(func(o *Options) { o.Rewind = true }), 2, width(100))
	h.advance(2100 * time.Millisecond)
	if h.Index() != 0 || h.count("move") != 2 {
		t.Fatalf("Index() = %d, move events = %d, want 0 and 2", h.Index(), h.count("move"))
	}
	if h.Autoplay.IsPaused() {
		t.Fatal("IsPaused() = true, want rewinding autoplay to keep playing")
	}
}

func TestAutoplay_StartStates(t *testing.T) {
	tests := []struct {
		name   string
		opts   Options
		n      int
		vp     Viewport
		paused bool
	}{
		{"on", autoplayOptions(nil), 5, width(100), false},
		{"off", DefaultOptions(), 5, width(100), true},
		{"pause", autoplayOptions(func(o *Options) { o.Autoplay = AutoplayPaused }), 5, width(100), true},
		{"reduced motion", autoplayOptions(nil), 5, Viewport{Width: 100, Height: 100, ReducedMotion: true}, true},
		{"too few slides", autoplayOptions(nil), 1, width(100), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := mount(t, tt.opts, tt.n, tt.vp)
			if got := h.Autoplay.IsPaused(); got != tt.paused {
				t.Fatalf("IsPaused() = %v, want %v", got, tt.paused)
			}
		})
	}
}

func TestAutoplay_PausedModeStartsOnPlay(t *testing.T) {
	h := mount(t, autoplayOptions(func(o *Options) { o.Autoplay = AutoplayPaused }), 5, width(100))
	h.Autoplay.Play()
	h.advance(1100 * time.Millisecond)
	if h.Index() != 1 {
		t.Fatalf("Index() = %d, want 1", h.Index())
	}
}

func TestAutoplay_UpdatedOptions(t *testing.T) {
	h := mount(t, autoplayOptions(nil), 5, width(100))
	h.SetOptions(Override{Interval: ptr(2 * time.Second)})
	h.advance(1500 * time.Millisecond)
	if h.count("move") != 0 {
		t.Fatalf("move events before the new interval = %d, want 0", h.count("move"))
	}

	off := AutoplayOff
	h.SetOptions(Override{Autoplay: &off})
	if !h.Autoplay.IsPaused() {
		t.Fatal("IsPaused() = false after turning autoplay off")
	}
}

func TestAutoplay_DestroyStops(t *testing.T) {
	h := mount(t, autoplayOptions(nil), 5, width(100))
	h.Destroy(true)
	if h.Animating() {
		t.Fatal("Animating() = true after Destroy")
	}
	h.advance(2 * time.Second)
	if h.Index() != 0 {
		t.Fatalf("Index() = %d, want 0", h.Index())
	}
}
