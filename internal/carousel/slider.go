package carousel

import (
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/five82/glide/internal/event"
	"github.com/five82/glide/internal/state"
	"github.com/five82/glide/internal/ticker"
)

// Config describes a slider to create.
type Config struct {
	// ID names the slider in logs.
	ID string
	// Options are the base options. An empty Type uses DefaultOptions.
	Options Options
	// Slides are the natural content sizes, one per slide.
	Slides []Size
	Logger *log.Logger
	// Clock is read when tweens and autoplay start. Nil uses time.Now.
	Clock func() time.Time
}

// Slider is one carousel instance. It is not safe for concurrent use: the
// host calls every method from its event loop.
type Slider struct {
	id     string
	base   Options
	opts   Options
	sizes  []Size
	vp     Viewport
	bus    *event.Bus
	scopes []*event.Scope
	state  *state.Machine
	sched  *ticker.Scheduler
	logger *log.Logger

	Breakpoints *Breakpoints
	Direction   *DirectionResolver
	Slides      *Slides
	Clones      *Clones
	Layout      *Layout
	Move        *Move
	Controller  *Controller
	Scroll      *Scroll
	Drag        *Drag
	Autoplay    *Autoplay
	Sync        *Sync

	transition transition
	components []component

	// instant zeroes transition speed for Jump.
	instant bool
	// pending and pendingVP hold option and viewport changes that arrived
	// during a drag.
	pending   bool
	pendingVP *Viewport
}

// New creates an unmounted slider.
func New(cfg Config) *Slider {
	opts := cfg.Options
	if opts.Type == "" {
		opts = DefaultOptions()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.ID != "" {
		logger = logger.With("slider", cfg.ID)
	}

	s := &Slider{
		id:     cfg.ID,
		base:   opts,
		opts:   opts,
		sizes:  slices.Clone(cfg.Slides),
		bus:    event.New(),
		state:  state.New(),
		sched:  ticker.NewScheduler(cfg.Clock),
		logger: logger,
	}
	s.Breakpoints = &Breakpoints{s: s}
	s.Direction = &DirectionResolver{s: s}
	s.Slides = &Slides{s: s, active: -1}
	s.Clones = &Clones{s: s}
	s.Layout = &Layout{s: s}
	s.Move = &Move{s: s}
	s.Controller = &Controller{s: s}
	s.Scroll = &Scroll{s: s}
	s.Drag = &Drag{s: s}
	s.Autoplay = &Autoplay{s: s}
	s.Sync = &Sync{s: s}

	s.state.OnChange(func(from, to state.State) {
		logger.Debug("state", "from", from, "to", to)
	})
	s.state.OnReject(func(from, to state.State) {
		logger.Warn("rejected state change", "from", from, "to", to)
	})
	return s
}

// Mount lays the slider out in vp and starts its components. Extensions are
// set up after the core components, in order. Mounting twice does nothing.
func (s *Slider) Mount(vp Viewport, extensions ...Extension) {
	if !s.state.Is(state.Created) {
		return
	}
	s.vp = vp
	s.components = nil
	s.register("breakpoints", s.Breakpoints, builtin{setup: s.Breakpoints.setup})
	s.register("direction", s.Direction, builtin{})
	s.register("slides", s.Slides, builtin{setup: s.Slides.setup, mount: s.Slides.mount})
	s.register("layout", s.Layout, builtin{setup: s.Layout.setup})
	s.register("clones", s.Clones, builtin{
		setup: func() {
			s.Clones.setup()
			s.Layout.setup()
		},
		mount: s.Clones.mount,
	})
	s.register("move", s.Move, builtin{mount: s.Move.mount})
	s.register("controller", s.Controller, builtin{setup: s.Controller.setup, mount: s.Controller.mount})
	s.register("scroll", s.Scroll, builtin{mount: s.Scroll.mount, destroy: func(bool) { s.Scroll.clear() }})
	s.register("drag", s.Drag, builtin{})
	s.register("autoplay", s.Autoplay, builtin{setup: s.Autoplay.setup, mount: s.Autoplay.mount, destroy: s.Autoplay.destroy})
	s.register("sync", s.Sync, builtin{mount: s.Sync.mount})
	for _, ext := range extensions {
		if ext.New == nil {
			continue
		}
		v := ext.New(s)
		s.register(ext.Name, v, v)
	}

	for _, c := range s.components {
		if h, ok := c.hooks.(Setupper); ok {
			h.Setup()
		}
	}
	s.pickTransition()
	if s.opts.Destroy {
		s.Destroy(true)
		return
	}

	s.state.Set(state.Mounted)
	logScope := s.scope("log")
	_ = event.OnAny(logScope, func(name string, payload any) {
		if frequent[name] {
			return
		}
		if _, isOptions := payload.(Options); isOptions {
			s.logger.Debug("event", "name", name)
			return
		}
		s.logger.Debug("event", "name", name, "payload", payload)
	})
	for _, c := range s.components {
		if h, ok := c.hooks.(Mounter); ok {
			h.Mount()
		}
	}
	s.Move.Reposition()
	emit(s, EventMounted, event.None{})
	s.state.Set(state.Idle)
	emit(s, EventReady, event.None{})
	s.logger.Info("mounted", "slides", len(s.sizes), "type", s.opts.Type, "per_page", s.opts.PerPage)
}

func (s *Slider) pickTransition() {
	if s.transition != nil {
		s.transition.cancel()
	}
	if s.Is(TypeFade) {
		s.transition = &fadeTransition{s: s}
		return
	}
	s.transition = &slideTransition{s: s}
}

// Destroy stops every component and releases listeners and scheduled
// frames. A destroyed slider ignores all calls.
func (s *Slider) Destroy(completely bool) {
	if s.state.Is(state.Destroyed) {
		return
	}
	if !s.state.Is(state.Created) {
		emit(s, EventDestroy, event.None{})
		if s.transition != nil {
			s.transition.cancel()
		}
		for _, c := range slices.Backward(s.components) {
			if h, ok := c.hooks.(Destroyer); ok {
				h.Destroy(completely)
			}
		}
	}
	for _, t := range s.Sync.targets {
		t.Sync.unlink(s)
	}
	s.Sync.targets = nil
	s.sched.Close()
	for _, sc := range s.scopes {
		sc.Close()
	}
	s.state.Set(state.Destroyed)
	s.bus.Close()
	s.logger.Info("destroyed")
}

// Go navigates with a control token (see ParseControl). Malformed tokens
// return ErrMalformedControl and change nothing; busy or unreachable
// requests are dropped silently.
func (s *Slider) Go(token string) error {
	c, err := ParseControl(token)
	if err != nil {
		return err
	}
	s.Controller.Go(c, nil)
	return nil
}

// GoTo navigates with a parsed control.
func (s *Slider) GoTo(c Control) {
	s.Controller.Go(c, nil)
}

// Jump navigates without animation.
func (s *Slider) Jump(token string) error {
	c, err := ParseControl(token)
	if err != nil {
		return err
	}
	s.Controller.Jump(c)
	return nil
}

// Resize hands the slider a new viewport. During a drag the change waits
// for the release.
func (s *Slider) Resize(vp Viewport) {
	if !s.alive() {
		return
	}
	if s.state.Is(state.Dragging) {
		s.pendingVP = &vp
		return
	}
	s.vp = vp
	emit(s, EventResize, vp)
	if s.Breakpoints.Update() {
		return
	}
	s.Layout.Resize(false)
}

func (s *Slider) flushResize() {
	if s.pendingVP != nil {
		vp := *s.pendingVP
		s.pendingVP = nil
		s.Resize(vp)
	}
	if s.pending {
		s.pending = false
		s.Breakpoints.apply(true)
	}
}

// Refresh rebuilds slides, clones and geometry.
func (s *Slider) Refresh() {
	if !s.alive() {
		return
	}
	s.rebuild()
}

func (s *Slider) rebuild() {
	s.Scroll.Cancel()
	s.Move.Cancel()
	s.pickTransition()
	s.Clones.regenerate()
	s.Layout.measure()
	s.Controller.init()
	s.Layout.Resize(true)
	s.Move.Reposition()
	s.Slides.update()
	emit(s, EventRefresh, event.None{})
}

// SetOptions merges ov into the base options and re-lays the slider out.
func (s *Slider) SetOptions(ov Override) {
	s.Breakpoints.Set(ov, true, true)
}

// Add inserts slides before index at.
func (s *Slider) Add(at int, sizes ...Size) {
	s.Slides.Add(at, sizes...)
}

// Remove deletes the slides at the given indices.
func (s *Slider) Remove(indices ...int) {
	s.Slides.Remove(indices...)
}

// SyncWith links s and other so moves on either are mirrored on the other.
func (s *Slider) SyncWith(other *Slider) {
	if other == nil || other == s {
		return
	}
	s.Sync.link(other)
	other.Sync.link(s)
}

// Frame advances tweens and autoplay to now. Hosts call it once per
// rendered frame while Animating reports true.
func (s *Slider) Frame(now time.Time) {
	s.sched.Frame(now)
}

// Animating reports whether a frame callback is pending.
func (s *Slider) Animating() bool {
	return s.sched.Pending()
}

// FadeRate returns the progress of a running fade, 1 when none runs.
func (s *Slider) FadeRate() float64 {
	if f, ok := s.transition.(*fadeTransition); ok {
		return f.rate()
	}
	return 1
}

// Scope returns a listener group on the slider's bus. Scopes are closed
// when the slider is destroyed.
func (s *Slider) Scope(name string) *event.Scope {
	return s.scope(name)
}

// ID returns the slider's name.
func (s *Slider) ID() string {
	return s.id
}

// Index returns the active slide index.
func (s *Slider) Index() int {
	return s.Controller.Index()
}

// Len returns the number of real slides.
func (s *Slider) Len() int {
	return len(s.sizes)
}

// Is reports whether the slider has type t.
func (s *Slider) Is(t Type) bool {
	return s.opts.Type == t
}

// Options returns the effective options.
func (s *Slider) Options() Options {
	return s.opts
}

// State returns the current lifecycle or motion state.
func (s *Slider) State() state.State {
	return s.state.Current()
}

// Viewport returns the viewport the slider is laid out in.
func (s *Slider) Viewport() Viewport {
	return s.vp
}

// SlideSize returns the natural size of real slide i.
func (s *Slider) SlideSize(i int) Size {
	if i < 0 || i >= len(s.sizes) {
		return Size{}
	}
	return s.sizes[i]
}

func (s *Slider) alive() bool {
	return !s.state.Is(state.Created, state.Destroyed)
}

func (s *Slider) scope(name string) *event.Scope {
	sc := s.bus.Scope(name)
	s.scopes = append(s.scopes, sc)
	return sc
}

func listen[P any](scope *event.Scope, t event.Topic[P], fn func(P)) {
	_ = event.On(scope, t, fn)
}

func emit[P any](s *Slider, t event.Topic[P], payload P) {
	event.Emit(s.bus, t, payload)
}
