package carousel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidLength is returned by ParseLength for malformed CSS lengths.
var ErrInvalidLength = errors.New("invalid length")

// Unit is the unit of a Length.
type Unit string

const (
	UnitPx      Unit = "px"
	UnitPercent Unit = "%"
	UnitEm      Unit = "em"
	UnitRem     Unit = "rem"
	UnitVW      Unit = "vw"
	UnitVH      Unit = "vh"
)

// fontSize is the pixel size em and rem lengths resolve against.
const fontSize = 16

// Length is a CSS-like length. The zero value means "unset".
type Length struct {
	Value float64
	Unit  Unit
}

// Px returns a pixel length.
func Px(v float64) Length {
	return Length{Value: v, Unit: UnitPx}
}

// Percent returns a length relative to its containing size.
func Percent(v float64) Length {
	return Length{Value: v, Unit: UnitPercent}
}

// ParseLength parses "12", "12px", "50%", "2em", "1.5rem", "10vw" or "10vh".
func ParseLength(s string) (Length, error) {
	trimmed := strings.TrimSpace(strings.ToLower(s))
	if trimmed == "" {
		return Length{}, nil
	}
	units := []Unit{UnitRem, UnitPx, UnitPercent, UnitEm, UnitVW, UnitVH}
	unit := UnitPx
	number := trimmed
	for _, u := range units {
		if strings.HasSuffix(trimmed, string(u)) {
			unit = u
			number = strings.TrimSpace(strings.TrimSuffix(trimmed, string(u)))
			break
		}
	}
	v, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return Length{}, fmt.Errorf("%w: %q", ErrInvalidLength, s)
	}
	return Length{Value: v, Unit: unit}, nil
}

// IsZero reports whether the length is unset or zero.
func (l Length) IsZero() bool {
	return l.Value == 0
}

// Resolve converts the length to pixels. Percentages resolve against
// relative; viewport units against vp.
func (l Length) Resolve(relative float64, vp Viewport) float64 {
	switch l.Unit {
	case UnitPercent:
		return relative * l.Value / 100
	case UnitEm, UnitRem:
		return l.Value * fontSize
	case UnitVW:
		return vp.Width * l.Value / 100
	case UnitVH:
		return vp.Height * l.Value / 100
	default:
		return l.Value
	}
}

func (l Length) String() string {
	if l.Unit == "" {
		return strconv.FormatFloat(l.Value, 'f', -1, 64) + "px"
	}
	return strconv.FormatFloat(l.Value, 'f', -1, 64) + string(l.Unit)
}

// Padding holds the space before the first and after the last slide along
// the slider axis (left/right, or top/bottom for vertical sliders).
type Padding struct {
	Start Length
	End   Length
}

// EvenPadding applies the same length on both sides.
func EvenPadding(l Length) Padding {
	return Padding{Start: l, End: l}
}
