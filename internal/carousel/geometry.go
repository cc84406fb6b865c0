package carousel

import (
	"math"
	"strconv"
)

// Viewport is the box the host gives the slider track, in pixels (or
// terminal cells), plus the user's motion preference.
type Viewport struct {
	Width         float64
	Height        float64
	ReducedMotion bool
}

// Size is the natural size of a slide's content.
type Size struct {
	Width  float64
	Height float64
}

// Bound selects which end of the track ExceededLimit checks.
type Bound int

const (
	BoundEither Bound = iota
	BoundMin
	BoundMax
)

const epsilon = 1e-6

func approxEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) < tolerance
}

func clamp[T int | float64](v, lo, hi T) T {
	if hi < lo {
		lo, hi = hi, lo
	}
	return min(max(v, lo), hi)
}

// between reports whether n lies between x and y in either order.
func between(n, x, y int, exclusive bool) bool {
	lo, hi := min(x, y), max(x, y)
	if exclusive {
		return lo < n && n < hi
	}
	return lo <= n && n <= hi
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// mod is the non-negative remainder of a modulo n.
func mod(a, n int) int {
	if n <= 0 {
		return 0
	}
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
