package carousel

import "math"

// Clones copies slides onto both ends of a loop slider so the track never
// shows an empty edge while wrapping.
type Clones struct {
	s     *Slider
	count int
}

func (c *Clones) setup() {
	c.generate(c.compute())
}

func (c *Clones) mount() {
	scope := c.s.scope("clones")
	listen(scope, EventResized, func(Viewport) { c.observe() })
	listen(scope, EventUpdated, func(Options) { c.observe() })
}

// Count returns the number of clones on each end.
func (c *Clones) Count() int {
	return c.count
}

// regenerate drops every clone and builds a fresh set.
func (c *Clones) regenerate() {
	c.s.Slides.build()
	c.generate(c.compute())
}

func (c *Clones) generate(count int) {
	c.count = 0
	n := len(c.s.sizes)
	if count <= 0 || n == 0 {
		return
	}
	recs := make([]SlideRecord, 0, count*2)
	for i := range count {
		recs = append(recs,
			SlideRecord{Index: i - count, IsClone: true, CloneOf: mod(i-count, n)},
			SlideRecord{Index: n + i, IsClone: true, CloneOf: mod(i, n)},
		)
	}
	c.s.Slides.register(recs...)
	c.count = count
}

// compute returns the clone count the current options need.
func (c *Clones) compute() int {
	o := c.s.opts
	if o.Type != TypeLoop {
		return 0
	}
	if o.Clones >= 0 {
		return o.Clones
	}
	l := c.s.Layout
	vertical := c.s.Direction.Vertical()
	fixed := o.FixedWidth
	auto := o.AutoWidth
	if vertical {
		fixed, auto = o.FixedHeight, o.AutoHeight
	}
	switch {
	case !fixed.IsZero():
		size := fixed.Resolve(l.ListSize(false), c.s.vp) + l.Gap()
		if size <= 0 {
			return o.PerPage * 2
		}
		return int(math.Ceil(l.TrackSize() / size))
	case auto:
		return len(c.s.sizes)
	default:
		return max(o.PerPage, 1) * 2
	}
}

// observe refreshes the slider when the geometry needs more clones than
// were generated, or none at all.
func (c *Clones) observe() {
	want := c.compute()
	if want == c.count {
		return
	}
	if c.count < want || want == 0 {
		c.s.Refresh()
	}
}
