package carousel

// orientation maps a horizontal property to its [ttb, rtl] counterparts.
var orientation = map[string][2]string{
	"width":      {"height", ""},
	"left":       {"top", "right"},
	"right":      {"bottom", "left"},
	"x":          {"y", ""},
	"X":          {"Y", ""},
	"Y":          {"X", ""},
	"ArrowLeft":  {"ArrowUp", "ArrowRight"},
	"ArrowRight": {"ArrowDown", "ArrowLeft"},
}

// DirectionResolver maps horizontal names onto the slider's reading
// direction and orients coordinates.
type DirectionResolver struct {
	s *Slider
}

func (d *DirectionResolver) dir() Direction {
	return d.s.opts.Direction
}

// Resolve returns the name of prop for the current direction. With axisOnly
// the rtl mirror is ignored, so only ttb changes the result.
func (d *DirectionResolver) Resolve(prop string, axisOnly bool) string {
	m, ok := orientation[prop]
	if !ok {
		return prop
	}
	switch {
	case d.dir() == TTB && m[0] != "":
		return m[0]
	case d.dir() == RTL && !axisOnly && m[1] != "":
		return m[1]
	default:
		return prop
	}
}

// Orient converts a translate value to a scroll distance and back.
// Left-to-right and top-to-bottom tracks move in the negative direction.
func (d *DirectionResolver) Orient(v float64) float64 {
	if d.dir() == RTL {
		return v
	}
	return -v
}

// Vertical reports whether the slider axis is vertical.
func (d *DirectionResolver) Vertical() bool {
	return d.dir() == TTB
}
