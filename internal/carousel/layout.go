package carousel

// Layout derives track and slide geometry from the effective options and the
// host viewport. Sizes are measured along the slider axis and cached until
// the next resize.
type Layout struct {
	s *Slider

	vp       Viewport
	measured bool
	overflow bool

	track    float64
	cross    float64
	list     float64
	padStart float64
	padEnd   float64
	gap      float64
	// sizes and prefix are indexed by DOM position; prefix[k] is the length
	// of the first k slides including their gaps.
	sizes  []float64
	prefix []float64
}

func (l *Layout) setup() {
	l.measure()
	l.overflow = l.IsOverflow()
}

// Resize recomputes geometry when the viewport changed, or always with
// force. It reports whether geometry was recomputed.
func (l *Layout) Resize(force bool) bool {
	if !force && l.measured && l.vp == l.s.vp {
		return false
	}
	l.measure()
	emit(l.s, EventResized, l.vp)
	if over := l.IsOverflow(); over != l.overflow {
		l.overflow = over
		emit(l.s, EventOverflow, over)
	}
	return true
}

func (l *Layout) measure() {
	s := l.s
	o := s.opts
	vp := s.vp
	l.vp = vp
	l.measured = true

	width := vp.Width
	if !o.Width.IsZero() {
		width = min(width, o.Width.Resolve(vp.Width, vp))
	}
	height := vp.Height
	if !o.Height.IsZero() {
		height = o.Height.Resolve(vp.Height, vp)
	} else if o.HeightRatio > 0 {
		height = width * o.HeightRatio
	}

	if s.Direction.Vertical() {
		l.track, l.cross = height, width
	} else {
		l.track, l.cross = width, height
	}
	l.padStart = o.Padding.Start.Resolve(l.track, vp)
	l.padEnd = o.Padding.End.Resolve(l.track, vp)
	l.list = max(l.track-l.padStart-l.padEnd, 0)
	l.gap = o.Gap.Resolve(l.list, vp)

	recs := s.Slides.records
	l.sizes = make([]float64, len(recs))
	l.prefix = make([]float64, len(recs)+1)
	for pos, r := range recs {
		l.sizes[pos] = l.axisSize(s.sizes[r.Real()])
		l.prefix[pos+1] = l.prefix[pos] + l.sizes[pos] + l.gap
	}
}

func (l *Layout) axisSize(natural Size) float64 {
	o := l.s.opts
	fixed, auto, size := o.FixedWidth, o.AutoWidth, natural.Width
	if l.s.Direction.Vertical() {
		fixed, auto, size = o.FixedHeight, o.AutoHeight, natural.Height
	}
	switch {
	case !fixed.IsZero():
		size = fixed.Resolve(l.list, l.vp)
	case auto:
	default:
		perPage := float64(max(o.PerPage, 1))
		size = (l.list+l.gap)/perPage - l.gap
	}
	return max(size, 0)
}

// TrackSize returns the axis size of the track, paddings included.
func (l *Layout) TrackSize() float64 {
	return l.track
}

// ListSize returns the visible list size (track minus paddings). With full
// it returns the length of every rendered slide laid end to end.
func (l *Layout) ListSize(full bool) float64 {
	if full {
		if n := len(l.prefix); n > 1 {
			return l.prefix[n-1] - l.gap
		}
		return 0
	}
	return l.list
}

// Gap returns the resolved gap between slides.
func (l *Layout) Gap() float64 {
	return l.gap
}

// Padding returns the start padding, or the end padding with end.
func (l *Layout) Padding(end bool) float64 {
	if end {
		return l.padEnd
	}
	return l.padStart
}

// SlideSize returns the axis size of the slide with index, plus the gap
// after it unless withoutGap. Unknown indices of a loop slider resolve to
// the matching real slide; otherwise they measure 0.
func (l *Layout) SlideSize(index int, withoutGap bool) float64 {
	pos, ok := l.s.Slides.position(index)
	if !ok && l.s.Is(TypeLoop) {
		pos, ok = l.s.Slides.position(mod(index, len(l.s.sizes)))
	}
	if !ok {
		return 0
	}
	if withoutGap {
		return l.sizes[pos]
	}
	return l.sizes[pos] + l.gap
}

// SlideCrossSize returns the size of a slide across the axis.
func (l *Layout) SlideCrossSize(index int) float64 {
	o := l.s.opts
	rec, ok := l.s.Slides.At(index)
	if !ok {
		return 0
	}
	natural := l.s.sizes[rec.Real()]
	if l.s.Direction.Vertical() {
		switch {
		case !o.FixedWidth.IsZero():
			return o.FixedWidth.Resolve(l.cross, l.vp)
		case o.AutoWidth && natural.Width > 0:
			return natural.Width
		default:
			return l.cross
		}
	}
	switch {
	case !o.FixedHeight.IsZero():
		return o.FixedHeight.Resolve(l.cross, l.vp)
	case !o.Height.IsZero() || o.HeightRatio > 0:
		return l.cross
	case natural.Height > 0:
		return min(natural.Height, l.cross)
	default:
		return l.cross
	}
}

// TotalSize returns the distance from the list start to the end of the
// slide with index, plus its trailing gap unless withoutGap. Loop sliders
// extrapolate indices past the clones by whole slider periods; other
// sliders return 0 for unknown indices.
func (l *Layout) TotalSize(index int, withoutGap bool) float64 {
	total, ok := l.totalAt(index)
	if !ok {
		return 0
	}
	if withoutGap {
		total -= l.gap
	}
	return total
}

func (l *Layout) totalAt(index int) (float64, bool) {
	slides := l.s.Slides
	if pos, ok := slides.position(index); ok {
		return l.prefix[pos+1], true
	}
	n := len(l.s.sizes)
	recs := slides.records
	if !l.s.Is(TypeLoop) || n == 0 || len(recs) == 0 {
		return 0, false
	}
	first, last := recs[0].Index, recs[len(recs)-1].Index
	k := 0
	switch {
	case index > last:
		k = (index - last + n - 1) / n
	case index < first:
		k = -((first - index + n - 1) / n)
	}
	pos, ok := slides.position(index - k*n)
	if !ok {
		return 0, false
	}
	return l.prefix[pos+1] + float64(k)*l.period(), true
}

// period is the length of the real slides with their gaps.
func (l *Layout) period() float64 {
	first, ok := l.s.Slides.position(0)
	if !ok {
		return 0
	}
	n := len(l.s.sizes)
	return l.prefix[first+n] - l.prefix[first]
}

// SliderSize returns the length of the real slides, with the trailing gap
// unless withoutGap.
func (l *Layout) SliderSize(withoutGap bool) float64 {
	n := len(l.s.sizes)
	if n == 0 {
		return 0
	}
	return l.TotalSize(n-1, false) - l.TotalSize(0, false) + l.SlideSize(0, withoutGap)
}

// SlideOffset returns where the slide with index starts, measured from the
// track start along the reading direction at the current position.
func (l *Layout) SlideOffset(index int) float64 {
	start := l.TotalSize(index, false) - l.SlideSize(index, false)
	return l.padStart + start - l.s.Direction.Orient(l.s.Move.Position())
}

// IsOverflow reports whether the slides are longer than the list. Fade
// sliders always overflow.
func (l *Layout) IsOverflow() bool {
	return l.s.Is(TypeFade) || l.SliderSize(true) > l.list+epsilon
}
