package easing

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/harmonica"
)

// ErrInvalidEasing is returned by Parse for unsupported timing functions.
var ErrInvalidEasing = errors.New("invalid easing")

// Func maps animation progress t in [0, 1] to eased progress. Eased values may
// overshoot [0, 1] for springs and bezier curves with out-of-range handles.
type Func func(t float64) float64

// Linear is the identity curve.
func Linear(t float64) float64 { return t }

// OutQuart decelerates to the destination; used for free scrolling.
func OutQuart(t float64) float64 { return 1 - math.Pow(1-t, 4) }

var named = map[string][4]float64{
	"ease":        {0.25, 0.1, 0.25, 1},
	"ease-in":     {0.42, 0, 1, 1},
	"ease-out":    {0, 0, 0.58, 1},
	"ease-in-out": {0.42, 0, 0.58, 1},
}

// Parse converts a CSS timing function into a Func. Supported forms are
// linear, the named ease keywords, cubic-bezier(x1, y1, x2, y2),
// steps(n[, start|end|jump-start|jump-end]) and spring[(frequency, damping)].
// An empty string yields the default carousel curve.
func Parse(css string) (Func, error) {
	s := strings.ToLower(strings.TrimSpace(css))
	if s == "" {
		return CubicBezier(0.25, 1, 0.5, 1), nil
	}
	if s == "linear" {
		return Linear, nil
	}
	if p, ok := named[s]; ok {
		return CubicBezier(p[0], p[1], p[2], p[3]), nil
	}
	if s == "spring" {
		return Spring(6, 0.5), nil
	}

	name, args, ok := splitCall(s)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEasing, css)
	}
	switch name {
	case "cubic-bezier":
		v, err := parseFloats(args, 4)
		if err != nil || v[0] < 0 || v[0] > 1 || v[2] < 0 || v[2] > 1 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidEasing, css)
		}
		return CubicBezier(v[0], v[1], v[2], v[3]), nil
	case "steps":
		if len(args) < 1 || len(args) > 2 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidEasing, css)
		}
		n, err := strconv.Atoi(strings.TrimSpace(args[0]))
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidEasing, css)
		}
		start := false
		if len(args) == 2 {
			switch strings.TrimSpace(args[1]) {
			case "start", "jump-start":
				start = true
			case "end", "jump-end":
			default:
				return nil, fmt.Errorf("%w: %q", ErrInvalidEasing, css)
			}
		}
		return Steps(n, start), nil
	case "spring":
		v, err := parseFloats(args, 2)
		if err != nil || v[0] <= 0 || v[1] < 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidEasing, css)
		}
		return Spring(v[0], v[1]), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidEasing, css)
}

// CubicBezier returns the CSS cubic-bezier curve through (0,0), (x1,y1),
// (x2,y2), (1,1).
func CubicBezier(x1, y1, x2, y2 float64) Func {
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	ax := 1 - cx - bx
	cy := 3 * y1
	by := 3*(y2-y1) - cy
	ay := 1 - cy - by

	sampleX := func(t float64) float64 { return ((ax*t+bx)*t + cx) * t }
	sampleY := func(t float64) float64 { return ((ay*t+by)*t + cy) * t }
	slopeX := func(t float64) float64 { return (3*ax*t+2*bx)*t + cx }

	solveX := func(x float64) float64 {
		const epsilon = 1e-7
		t := x
		for i := 0; i < 8; i++ {
			dx := sampleX(t) - x
			if math.Abs(dx) < epsilon {
				return t
			}
			d := slopeX(t)
			if math.Abs(d) < 1e-6 {
				break
			}
			t -= dx / d
		}
		lo, hi := 0.0, 1.0
		t = x
		for lo < hi {
			v := sampleX(t)
			if math.Abs(v-x) < epsilon {
				return t
			}
			if x > v {
				lo = t
			} else {
				hi = t
			}
			next := (lo + hi) / 2
			if next == t {
				break
			}
			t = next
		}
		return t
	}

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return sampleY(solveX(t))
	}
}

// Steps returns a staircase curve with n equal steps. With start the first
// step happens at t = 0.
func Steps(n int, start bool) Func {
	return func(t float64) float64 {
		if t >= 1 {
			return 1
		}
		if t <= 0 {
			if start {
				return 1 / float64(n)
			}
			return 0
		}
		step := math.Floor(t * float64(n))
		if start {
			step++
		}
		return math.Min(step/float64(n), 1)
	}
}

// Spring returns a damped spring curve sampled at 60 frames per second. The
// animation duration is stretched over the time the spring needs to settle,
// so a caller's duration keeps its meaning; the last sample is pinned to 1.
func Spring(frequency, damping float64) Func {
	const maxFrames = 600
	spring := harmonica.NewSpring(harmonica.FPS(60), frequency, damping)

	samples := []float64{0}
	pos, vel := 0.0, 0.0
	for i := 0; i < maxFrames; i++ {
		pos, vel = spring.Update(pos, vel, 1)
		samples = append(samples, pos)
		if math.Abs(pos-1) < 1e-3 && math.Abs(vel) < 1e-3 {
			break
		}
	}
	samples[len(samples)-1] = 1

	last := float64(len(samples) - 1)
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		x := t * last
		i := int(x)
		frac := x - float64(i)
		return samples[i] + (samples[i+1]-samples[i])*frac
	}
}

func splitCall(s string) (string, []string, bool) {
	open := strings.IndexByte(s, '(')
	if open <= 0 || !strings.HasSuffix(s, ")") {
		return "", nil, false
	}
	name := strings.TrimSpace(s[:open])
	inner := s[open+1 : len(s)-1]
	if strings.TrimSpace(inner) == "" {
		return name, nil, true
	}
	return name, strings.Split(inner, ","), true
}

func parseFloats(args []string, n int) ([]float64, error) {
	if len(args) != n {
		return nil, ErrInvalidEasing
	}
	out := make([]float64, n)
	for i, a := range args {
		v, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
