package config

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/five82/glide/internal/carousel"
	"github.com/five82/glide/internal/easing"
)

var (
	// ErrUnknownOption is returned for option keys the carousel does not know.
	ErrUnknownOption = errors.New("unknown option")
	// ErrInvalidValue is returned when an option value has the wrong type or
	// is out of range.
	ErrInvalidValue = errors.New("invalid option value")
)

type decoder func(ov *carousel.Override, v any) error

// fields maps TOML option keys to their decoders. Keys follow the carousel
// option names in snake_case.
var fields = map[string]decoder{
	"type": func(ov *carousel.Override, v any) error {
		s, err := enum(v, "slide", "loop", "fade")
		if err != nil {
			return err
		}
		ov.Type = ptr(carousel.Type(s))
		return nil
	},
	"per_page":  intField(func(ov *carousel.Override, n int) { ov.PerPage = &n }, 1),
	"per_move":  intField(func(ov *carousel.Override, n int) { ov.PerMove = &n }, 0),
	"start":     intField(func(ov *carousel.Override, n int) { ov.Start = &n }, 0),
	"clones":    intField(func(ov *carousel.Override, n int) { ov.Clones = &n }, 0),
	"focus":     decodeFocus,
	"rewind":    boolField(func(ov *carousel.Override, b bool) { ov.Rewind = &b }),
	"speed":     durationField(func(ov *carousel.Override, d time.Duration) { ov.Speed = &d }),
	"interval":  durationField(func(ov *carousel.Override, d time.Duration) { ov.Interval = &d }),
	"direction": decodeDirection,
	"easing": func(ov *carousel.Override, v any) error {
		s, ok := v.(string)
		if !ok {
			return invalid(v)
		}
		if _, err := easing.Parse(s); err != nil {
			return err
		}
		ov.Easing = &s
		return nil
	},
	"scroll_easing": func(ov *carousel.Override, v any) error {
		s, ok := v.(string)
		if !ok {
			return invalid(v)
		}
		fn, err := easing.Parse(s)
		if err != nil {
			return err
		}
		ov.EasingFunc = fn
		return nil
	},
	"rewind_speed": durationField(func(ov *carousel.Override, d time.Duration) { ov.RewindSpeed = &d }),

	"drag":               decodeDrag,
	"snap":               boolField(func(ov *carousel.Override, b bool) { ov.Snap = &b }),
	"rewind_by_drag":     boolField(func(ov *carousel.Override, b bool) { ov.RewindByDrag = &b }),
	"drag_min_threshold": decodeThreshold,
	"flick_power":        floatField(func(ov *carousel.Override, f float64) { ov.FlickPower = &f }),
	"flick_max_pages":    floatField(func(ov *carousel.Override, f float64) { ov.FlickMaxPages = &f }),
	"release_touch":      boolField(func(ov *carousel.Override, b bool) { ov.ReleaseTouch = &b }),
	"update_on_dragged":  boolField(func(ov *carousel.Override, b bool) { ov.UpdateOnDragged = &b }),

	"width":        lengthField(func(ov *carousel.Override, l carousel.Length) { ov.Width = &l }),
	"height":       lengthField(func(ov *carousel.Override, l carousel.Length) { ov.Height = &l }),
	"fixed_width":  lengthField(func(ov *carousel.Override, l carousel.Length) { ov.FixedWidth = &l }),
	"fixed_height": lengthField(func(ov *carousel.Override, l carousel.Length) { ov.FixedHeight = &l }),
	"gap":          lengthField(func(ov *carousel.Override, l carousel.Length) { ov.Gap = &l }),
	"height_ratio": floatField(func(ov *carousel.Override, f float64) { ov.HeightRatio = &f }),
	"auto_width":   boolField(func(ov *carousel.Override, b bool) { ov.AutoWidth = &b }),
	"auto_height":  boolField(func(ov *carousel.Override, b bool) { ov.AutoHeight = &b }),
	"padding":      decodePadding,

	"autoplay":       decodeAutoplay,
	"pause_on_hover": boolField(func(ov *carousel.Override, b bool) { ov.PauseOnHover = &b }),
	"pause_on_focus": boolField(func(ov *carousel.Override, b bool) { ov.PauseOnFocus = &b }),
	"reset_progress": boolField(func(ov *carousel.Override, b bool) { ov.ResetProgress = &b }),

	"wait_for_transition": boolField(func(ov *carousel.Override, b bool) { ov.WaitForTransition = &b }),
	"update_on_move":      boolField(func(ov *carousel.Override, b bool) { ov.UpdateOnMove = &b }),
	"trim_space":          decodeTrimSpace,
	"omit_end":            boolField(func(ov *carousel.Override, b bool) { ov.OmitEnd = &b }),
	"is_navigation":       boolField(func(ov *carousel.Override, b bool) { ov.IsNavigation = &b }),
	"destroy":             boolField(func(ov *carousel.Override, b bool) { ov.Destroy = &b }),
}

// decodeOptions applies a TOML options table to base. media_query is only
// valid here since breakpoints cannot change how they are matched.
func decodeOptions(base carousel.Options, table map[string]any) (carousel.Options, error) {
	if v, ok := table["media_query"]; ok {
		s, err := enum(v, "max", "min")
		if err != nil {
			return base, fmt.Errorf("media_query: %w", err)
		}
		base.MediaQuery = carousel.MediaQuery(s)
		table = maps.Clone(table)
		delete(table, "media_query")
	}
	ov, err := decodeOverride(table)
	if err != nil {
		return base, err
	}
	return base.Apply(ov), nil
}

func decodeOverride(table map[string]any) (carousel.Override, error) {
	var ov carousel.Override
	for _, key := range slices.Sorted(maps.Keys(table)) {
		decode, ok := fields[key]
		if !ok {
			return ov, fmt.Errorf("%w: %q", ErrUnknownOption, key)
		}
		if err := decode(&ov, table[key]); err != nil {
			return ov, fmt.Errorf("%s: %w", key, err)
		}
	}
	return ov, nil
}

func invalid(v any) error {
	return fmt.Errorf("%w: %v", ErrInvalidValue, v)
}

func enum(v any, allowed ...string) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", invalid(v)
	}
	s = strings.ToLower(strings.TrimSpace(s))
	if !slices.Contains(allowed, s) {
		return "", fmt.Errorf("%w: %q (want one of %s)", ErrInvalidValue, s, strings.Join(allowed, ", "))
	}
	return s, nil
}

// number accepts TOML integers and floats.
func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case int:
		return float64(n), true
	default:
		return 0, false
	}
}

func intField(set func(*carousel.Override, int), minimum int) decoder {
	return func(ov *carousel.Override, v any) error {
		f, ok := number(v)
		if !ok || f != math.Trunc(f) || int(f) < minimum {
			return invalid(v)
		}
		set(ov, int(f))
		return nil
	}
}

func floatField(set func(*carousel.Override, float64)) decoder {
	return func(ov *carousel.Override, v any) error {
		f, ok := number(v)
		if !ok || f < 0 {
			return invalid(v)
		}
		set(ov, f)
		return nil
	}
}

func boolField(set func(*carousel.Override, bool)) decoder {
	return func(ov *carousel.Override, v any) error {
		b, ok := v.(bool)
		if !ok {
			return invalid(v)
		}
		set(ov, b)
		return nil
	}
}

// durationField reads milliseconds, or a Go duration string such as "1.5s".
func durationField(set func(*carousel.Override, time.Duration)) decoder {
	return func(ov *carousel.Override, v any) error {
		if s, ok := v.(string); ok {
			d, err := time.ParseDuration(strings.TrimSpace(s))
			if err != nil || d < 0 {
				return invalid(v)
			}
			set(ov, d)
			return nil
		}
		ms, ok := number(v)
		if !ok || ms < 0 {
			return invalid(v)
		}
		set(ov, time.Duration(ms*float64(time.Millisecond)))
		return nil
	}
}

func lengthField(set func(*carousel.Override, carousel.Length)) decoder {
	return func(ov *carousel.Override, v any) error {
		l, err := length(v)
		if err != nil {
			return err
		}
		set(ov, l)
		return nil
	}
}

func length(v any) (carousel.Length, error) {
	if f, ok := number(v); ok {
		return carousel.Px(f), nil
	}
	s, ok := v.(string)
	if !ok {
		return carousel.Length{}, invalid(v)
	}
	return carousel.ParseLength(s)
}

func decodeFocus(ov *carousel.Override, v any) error {
	if f, ok := number(v); ok {
		ov.Focus = ptr(carousel.FocusAt(f))
		return nil
	}
	if _, err := enum(v, "center"); err != nil {
		return err
	}
	ov.Focus = ptr(carousel.FocusCenter())
	return nil
}

func decodeDirection(ov *carousel.Override, v any) error {
	s, err := enum(v, "ltr", "rtl", "ttb")
	if err != nil {
		return err
	}
	ov.Direction = ptr(carousel.Direction(s))
	return nil
}

func decodeDrag(ov *carousel.Override, v any) error {
	mode := carousel.DragDisabled
	switch t := v.(type) {
	case bool:
		if t {
			mode = carousel.DragEnabled
		}
	default:
		if _, err := enum(v, "free"); err != nil {
			return err
		}
		mode = carousel.DragFree
	}
	ov.Drag = &mode
	return nil
}

func decodeAutoplay(ov *carousel.Override, v any) error {
	mode := carousel.AutoplayOff
	switch t := v.(type) {
	case bool:
		if t {
			mode = carousel.AutoplayOn
		}
	default:
		if _, err := enum(v, "pause"); err != nil {
			return err
		}
		mode = carousel.AutoplayPaused
	}
	ov.Autoplay = &mode
	return nil
}

func decodeTrimSpace(ov *carousel.Override, v any) error {
	mode := carousel.TrimOff
	switch t := v.(type) {
	case bool:
		if t {
			mode = carousel.TrimOn
		}
	default:
		if _, err := enum(v, "move"); err != nil {
			return err
		}
		mode = carousel.TrimMove
	}
	ov.TrimSpace = &mode
	return nil
}

// decodeThreshold reads a single distance for both pointer kinds, or a
// {mouse, touch} table.
func decodeThreshold(ov *carousel.Override, v any) error {
	if f, ok := number(v); ok {
		ov.DragMinThreshold = &carousel.Threshold{Mouse: f, Touch: f}
		return nil
	}
	table, ok := v.(map[string]any)
	if !ok {
		return invalid(v)
	}
	th := carousel.DefaultOptions().DragMinThreshold
	for key, raw := range table {
		f, ok := number(raw)
		if !ok {
			return invalid(raw)
		}
		switch key {
		case "mouse":
			th.Mouse = f
		case "touch":
			th.Touch = f
		default:
			return fmt.Errorf("%w: %q", ErrUnknownOption, key)
		}
	}
	ov.DragMinThreshold = &th
	return nil
}

// decodePadding reads one length for both ends, or a {left, right} or
// {top, bottom} table.
func decodePadding(ov *carousel.Override, v any) error {
	table, ok := v.(map[string]any)
	if !ok {
		l, err := length(v)
		if err != nil {
			return err
		}
		ov.Padding = ptr(carousel.EvenPadding(l))
		return nil
	}
	var p carousel.Padding
	for key, raw := range table {
		l, err := length(raw)
		if err != nil {
			return err
		}
		switch key {
		case "left", "top":
			p.Start = l
		case "right", "bottom":
			p.End = l
		default:
			return fmt.Errorf("%w: %q", ErrUnknownOption, key)
		}
	}
	ov.Padding = &p
	return nil
}
