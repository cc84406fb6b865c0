package carousel

import (
	"math"
	"time"

	"github.com/five82/glide/internal/event"
	"github.com/five82/glide/internal/state"
)

// Controller turns navigation requests into validated indices and owns the
// active index.
type Controller struct {
	s *Slider

	curr int
	prev int
	end  int

	slideCount int
	perMove    int
	perPage    int
}

func (c *Controller) setup() {
	c.curr = c.s.opts.Start
	c.prev = c.curr
	c.init()
}

func (c *Controller) mount() {
	scope := c.s.scope("controller")
	listen(scope, EventUpdated, func(Options) { c.init() })
	listen(scope, EventRefresh, func(event.None) { c.init() })
	listen(scope, EventEndIndexChanged, func(event.None) { c.init() })
	listen(scope, EventResized, func(Viewport) { c.onResized() })
}

// init re-reads the options and clamps the active index into range.
func (c *Controller) init() {
	o := c.s.opts
	c.slideCount = c.s.Slides.Len(true)
	c.perMove = o.PerMove
	c.perPage = max(o.PerPage, 1)
	c.end = c.computeEnd()

	limit := c.slideCount - 1
	if o.OmitEnd {
		limit = c.end
	}
	index := clamp(c.curr, 0, max(limit, 0))
	if index != c.curr {
		c.curr = index
		c.s.Move.Reposition()
	}
}

func (c *Controller) onResized() {
	if c.end != c.computeEnd() {
		emit(c.s, EventEndIndexChanged, event.None{})
	}
}

// Go moves to the slide named by control. Requests made while the slider is
// busy, or that resolve to the active slide, are dropped. done runs after
// the moved event's bookkeeping.
func (c *Controller) Go(control Control, done func()) {
	c.goTo(control, false, false, done)
}

// Jump is Go without animation.
func (c *Controller) Jump(control Control) {
	c.s.instant = true
	defer func() { c.s.instant = false }()
	c.goTo(control, false, false, nil)
}

// goTo resolves control and starts the move. allowSame re-runs a move to
// the active slide; handoff lets a drag release start a move while the
// slider is still dragging.
func (c *Controller) goTo(control Control, allowSame, handoff bool, done func()) {
	s := c.s
	if !s.alive() {
		return
	}
	if c.IsBusy() && !(handoff && s.state.Is(state.Dragging)) {
		return
	}
	dest, ok := c.parse(control)
	if !ok {
		return
	}
	index := c.loop(dest)
	if index < 0 || (!allowSame && index == c.curr) {
		return
	}
	forward := dest > c.curr
	c.SetIndex(index)
	s.logger.Debug("go", "control", control.String(), "index", index, "dest", dest)
	s.Move.Move(dest, index, c.prev, forward, done)
}

// Scroll tweens the track to destination and activates the closest slide
// when it settles.
func (c *Controller) Scroll(destination float64, duration time.Duration, snap bool, done func()) {
	c.scroll(destination, duration, snap, true, done)
}

func (c *Controller) scroll(destination float64, duration time.Duration, snap, updateIndex bool, done func()) {
	s := c.s
	if !s.alive() {
		return
	}
	s.Scroll.Scroll(destination, duration, snap, func() {
		if updateIndex {
			index := s.Move.ToIndex(s.Move.Position())
			if s.opts.OmitEnd {
				index = min(index, c.end)
			}
			c.SetIndex(index)
		}
		if done != nil {
			done()
		}
	})
}

func (c *Controller) parse(control Control) (int, bool) {
	switch control.kind {
	case controlIndex:
		if c.s.Is(TypeLoop) {
			return control.n, true
		}
		return clamp(control.n, 0, c.end), true
	case controlRelative:
		return c.computeDestIndex(c.curr+control.n, c.curr, false), true
	case controlNext:
		return c.adjacent(false, true), true
	case controlPrev:
		return c.adjacent(true, true), true
	case controlPage:
		return c.ToIndex(control.n), true
	case controlPageFromEnd:
		return c.ToIndex(c.PageCount() - 1 - control.n), true
	case controlFirst:
		return c.ToIndex(0), true
	case controlLast:
		return c.ToIndex(c.PageCount() - 1), true
	default:
		return 0, false
	}
}

// Next returns the index the next page control would go to, or -1 when it
// is unreachable. With destination the unlooped index is returned.
func (c *Controller) Next(destination bool) int {
	return c.adjacent(false, destination)
}

// Prev is Next towards the start.
func (c *Controller) Prev(destination bool) int {
	return c.adjacent(true, destination)
}

func (c *Controller) adjacent(prev, destination bool) int {
	number := c.perMove
	if number == 0 {
		number = c.perPage
		if c.HasFocus() {
			number = 1
		}
	}
	step := number
	if prev {
		step = -number
	}
	dest := c.computeDestIndex(c.curr+step, c.curr, !(c.perMove > 0 || c.HasFocus()))

	if dest == -1 && c.s.Is(TypeSlide) {
		m := c.s.Move
		if !approxEqual(m.Position(), m.Limit(!prev), 1) {
			if prev {
				return 0
			}
			return c.end
		}
	}
	if destination {
		return dest
	}
	return c.loop(dest)
}

func (c *Controller) computeDestIndex(dest, from int, snapPage bool) int {
	if !c.s.Slides.IsEnough() && !c.HasFocus() {
		return -1
	}
	if index := c.computeMovableDestIndex(dest); index != dest {
		from, dest, snapPage = dest, index, false
	}

	if dest >= 0 && dest <= c.end {
		if snapPage && dest != from {
			step := 1
			if dest < from {
				step = -1
			}
			return c.ToIndex(c.ToPage(from) + step)
		}
		return dest
	}

	switch {
	case c.perMove == 0 && (between(0, dest, from, true) || between(c.end, from, dest, true)):
		return c.ToIndex(c.ToPage(dest))
	case c.s.Is(TypeLoop):
		if !snapPage {
			return dest
		}
		if dest < 0 {
			if r := c.slideCount % c.perPage; r != 0 {
				return -r
			}
			return -c.perPage
		}
		return c.slideCount
	case c.s.opts.Rewind:
		if dest < 0 {
			return c.end
		}
		return 0
	default:
		return -1
	}
}

// computeMovableDestIndex skips stops that would not move a trimmed track.
func (c *Controller) computeMovableDestIndex(dest int) int {
	s := c.s
	if !s.Is(TypeSlide) || s.opts.TrimSpace != TrimMove || dest == c.curr {
		return dest
	}
	m := s.Move
	position := m.Position()
	for approxEqual(position, m.ToPosition(dest, true), epsilon) &&
		between(dest, 0, c.slideCount-1, !s.opts.Rewind) {
		if dest < c.curr {
			dest--
		} else {
			dest++
		}
	}
	return dest
}

func (c *Controller) loop(index int) int {
	if c.s.Is(TypeLoop) {
		return mod(index, c.slideCount)
	}
	return index
}

func (c *Controller) computeEnd() int {
	n := c.slideCount
	if n == 0 {
		return 0
	}
	span := c.perPage
	if c.HasFocus() || (c.s.Is(TypeLoop) && c.perMove > 0) {
		span = 1
	}
	end := n - span
	if c.s.opts.OmitEnd {
		last := c.s.Move.ToPosition(n-1, true)
		for end > 0 {
			end--
			if !approxEqual(last, c.s.Move.ToPosition(end, true), epsilon) {
				end++
				break
			}
		}
	}
	return clamp(end, 0, n-1)
}

// End returns the last index a move may target.
func (c *Controller) End() int {
	return c.end
}

// SetIndex makes index active without moving the track.
func (c *Controller) SetIndex(index int) {
	if index != c.curr {
		c.prev = c.curr
		c.curr = index
	}
}

// Index returns the active index.
func (c *Controller) Index() int {
	return c.curr
}

// PrevIndex returns the index that was active before the last change.
func (c *Controller) PrevIndex() int {
	return c.prev
}

// PageCount returns the number of pages.
func (c *Controller) PageCount() int {
	if c.slideCount == 0 {
		return 0
	}
	if c.HasFocus() {
		if c.s.Is(TypeLoop) {
			return c.slideCount
		}
		return c.end + 1
	}
	return int(math.Ceil(float64(c.slideCount) / float64(c.perPage)))
}

// ToIndex converts a page to the index of its first slide.
func (c *Controller) ToIndex(page int) int {
	if c.HasFocus() {
		return clamp(page, 0, c.end)
	}
	return clamp(c.perPage*page, 0, c.end)
}

// ToPage converts an index to the page showing it.
func (c *Controller) ToPage(index int) int {
	if c.HasFocus() {
		return min(index, c.end)
	}
	if index >= c.end {
		index = c.slideCount - 1
	}
	return max(index, 0) / c.perPage
}

// ToDest returns the index closest to position, clamped for slide sliders.
// Loop sliders may get a clone index.
func (c *Controller) ToDest(position float64) int {
	closest := c.s.Move.toIndex(position)
	if c.s.Is(TypeSlide) {
		return clamp(closest, 0, c.end)
	}
	return closest
}

// HasFocus reports whether slides are positioned by focus rather than by
// page.
func (c *Controller) HasFocus() bool {
	return c.s.opts.Focus.Set || c.s.opts.IsNavigation
}

// IsBusy reports whether new requests must wait for the running motion.
func (c *Controller) IsBusy() bool {
	return c.s.opts.WaitForTransition && c.s.state.Is(state.Moving, state.Scrolling, state.Dragging)
}
