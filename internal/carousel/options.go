package carousel

import (
	"reflect"
	"time"

	"github.com/five82/glide/internal/easing"
)

// Type selects the slider behavior.
type Type string

const (
	TypeSlide Type = "slide"
	TypeLoop  Type = "loop"
	TypeFade  Type = "fade"
)

// Direction is the reading direction of the slider axis.
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
	TTB Direction = "ttb"
)

// DragMode controls pointer dragging.
type DragMode int

const (
	DragEnabled DragMode = iota
	DragDisabled
	DragFree
)

func (m DragMode) String() string {
	switch m {
	case DragDisabled:
		return "false"
	case DragFree:
		return "free"
	default:
		return "true"
	}
}

// TrimSpace controls how empty space at the ends of a slide-type carousel is
// handled.
type TrimSpace int

const (
	TrimOn TrimSpace = iota
	TrimOff
	// TrimMove also skips navigation stops that would not move the track.
	TrimMove
)

func (t TrimSpace) String() string {
	switch t {
	case TrimOff:
		return "false"
	case TrimMove:
		return "move"
	default:
		return "true"
	}
}

// AutoplayMode controls automatic advancing.
type AutoplayMode int

const (
	AutoplayOff AutoplayMode = iota
	AutoplayOn
	// AutoplayPaused prepares autoplay but waits for Play.
	AutoplayPaused
)

func (m AutoplayMode) String() string {
	switch m {
	case AutoplayOn:
		return "true"
	case AutoplayPaused:
		return "pause"
	default:
		return "false"
	}
}

// MediaQuery selects how breakpoint keys are matched against the viewport
// width.
type MediaQuery string

const (
	MediaMax MediaQuery = "max"
	MediaMin MediaQuery = "min"
)

// Focus places the active slide inside the list. The zero value disables
// focus.
type Focus struct {
	Set    bool
	Center bool
	// Slot is the number of slide widths between the list start and the
	// active slide when Center is false.
	Slot float64
}

// FocusCenter centers the active slide.
func FocusCenter() Focus {
	return Focus{Set: true, Center: true}
}

// FocusAt puts the active slide slot slides from the list start.
func FocusAt(slot float64) Focus {
	return Focus{Set: true, Slot: slot}
}

func (f Focus) String() string {
	switch {
	case !f.Set:
		return "none"
	case f.Center:
		return "center"
	default:
		return formatFloat(f.Slot)
	}
}

// Threshold is the distance a pointer must travel before a drag starts.
type Threshold struct {
	Mouse float64
	Touch float64
}

// CloneAuto lets the slider compute the clone count.
const CloneAuto = -1

// Options is a fully resolved option set.
type Options struct {
	Type        Type
	PerPage     int
	PerMove     int
	Focus       Focus
	Start       int
	Clones      int
	Rewind      bool
	Speed       time.Duration
	RewindSpeed time.Duration
	// Easing is a CSS timing function used by the slide transition.
	Easing string
	// EasingFunc drives Scroll tweens. Nil means ease-out quart.
	EasingFunc easing.Func

	Drag             DragMode
	Snap             bool
	RewindByDrag     bool
	DragMinThreshold Threshold
	FlickPower       float64
	FlickMaxPages    float64
	ReleaseTouch     bool
	UpdateOnDragged  bool

	Width       Length
	Height      Length
	FixedWidth  Length
	FixedHeight Length
	HeightRatio float64
	AutoWidth   bool
	AutoHeight  bool
	Gap         Length
	Padding     Padding
	Direction   Direction

	Autoplay      AutoplayMode
	Interval      time.Duration
	PauseOnHover  bool
	PauseOnFocus  bool
	ResetProgress bool

	Breakpoints   map[int]Override
	MediaQuery    MediaQuery
	ReducedMotion *Override

	WaitForTransition bool
	UpdateOnMove      bool
	TrimSpace         TrimSpace
	OmitEnd           bool
	IsNavigation      bool
	Destroy           bool
}

// DefaultEasing is the CSS timing function of the slide transition.
const DefaultEasing = "cubic-bezier(0.25, 1, 0.5, 1)"

// DefaultOptions returns the stock option set.
func DefaultOptions() Options {
	return Options{
		Type:              TypeSlide,
		PerPage:           1,
		Clones:            CloneAuto,
		Speed:             400 * time.Millisecond,
		Easing:            DefaultEasing,
		Drag:              DragEnabled,
		DragMinThreshold:  Threshold{Mouse: 0, Touch: 10},
		FlickPower:        600,
		FlickMaxPages:     1,
		UpdateOnDragged:   true,
		Direction:         LTR,
		Interval:          5 * time.Second,
		PauseOnHover:      true,
		PauseOnFocus:      true,
		ResetProgress:     true,
		MediaQuery:        MediaMax,
		WaitForTransition: true,
		TrimSpace:         TrimOn,
	}
}

// DefaultReducedMotion is applied when the viewport prefers reduced motion
// and no custom override is configured.
func DefaultReducedMotion() Override {
	zero := time.Duration(0)
	pause := AutoplayPaused
	return Override{Speed: &zero, RewindSpeed: &zero, Autoplay: &pause}
}

// Override holds optional option values. Nil fields keep the value they are
// merged onto.
type Override struct {
	Type        *Type
	PerPage     *int
	PerMove     *int
	Focus       *Focus
	Start       *int
	Clones      *int
	Rewind      *bool
	Speed       *time.Duration
	RewindSpeed *time.Duration
	Easing      *string
	EasingFunc  easing.Func

	Drag             *DragMode
	Snap             *bool
	RewindByDrag     *bool
	DragMinThreshold *Threshold
	FlickPower       *float64
	FlickMaxPages    *float64
	ReleaseTouch     *bool
	UpdateOnDragged  *bool

	Width       *Length
	Height      *Length
	FixedWidth  *Length
	FixedHeight *Length
	HeightRatio *float64
	AutoWidth   *bool
	AutoHeight  *bool
	Gap         *Length
	Padding     *Padding
	Direction   *Direction

	Autoplay      *AutoplayMode
	Interval      *time.Duration
	PauseOnHover  *bool
	PauseOnFocus  *bool
	ResetProgress *bool

	WaitForTransition *bool
	UpdateOnMove      *bool
	TrimSpace         *TrimSpace
	OmitEnd           *bool
	IsNavigation      *bool
	Destroy           *bool
}

// Apply returns a copy of o with every set field of ov written over it.
func (o Options) Apply(ov Override) Options {
	set(&o.Type, ov.Type)
	set(&o.PerPage, ov.PerPage)
	set(&o.PerMove, ov.PerMove)
	set(&o.Focus, ov.Focus)
	set(&o.Start, ov.Start)
	set(&o.Clones, ov.Clones)
	set(&o.Rewind, ov.Rewind)
	set(&o.Speed, ov.Speed)
	set(&o.RewindSpeed, ov.RewindSpeed)
	set(&o.Easing, ov.Easing)
	if ov.EasingFunc != nil {
		o.EasingFunc = ov.EasingFunc
	}
	set(&o.Drag, ov.Drag)
	set(&o.Snap, ov.Snap)
	set(&o.RewindByDrag, ov.RewindByDrag)
	set(&o.DragMinThreshold, ov.DragMinThreshold)
	set(&o.FlickPower, ov.FlickPower)
	set(&o.FlickMaxPages, ov.FlickMaxPages)
	set(&o.ReleaseTouch, ov.ReleaseTouch)
	set(&o.UpdateOnDragged, ov.UpdateOnDragged)
	set(&o.Width, ov.Width)
	set(&o.Height, ov.Height)
	set(&o.FixedWidth, ov.FixedWidth)
	set(&o.FixedHeight, ov.FixedHeight)
	set(&o.HeightRatio, ov.HeightRatio)
	set(&o.AutoWidth, ov.AutoWidth)
	set(&o.AutoHeight, ov.AutoHeight)
	set(&o.Gap, ov.Gap)
	set(&o.Padding, ov.Padding)
	set(&o.Direction, ov.Direction)
	set(&o.Autoplay, ov.Autoplay)
	set(&o.Interval, ov.Interval)
	set(&o.PauseOnHover, ov.PauseOnHover)
	set(&o.PauseOnFocus, ov.PauseOnFocus)
	set(&o.ResetProgress, ov.ResetProgress)
	set(&o.WaitForTransition, ov.WaitForTransition)
	set(&o.UpdateOnMove, ov.UpdateOnMove)
	set(&o.TrimSpace, ov.TrimSpace)
	set(&o.OmitEnd, ov.OmitEnd)
	set(&o.IsNavigation, ov.IsNavigation)
	set(&o.Destroy, ov.Destroy)
	return o
}

// Merge returns ov with the set fields of next written over it.
func (ov Override) Merge(next Override) Override {
	dst := reflect.ValueOf(&ov).Elem()
	src := reflect.ValueOf(next)
	for i := range src.NumField() {
		if f := src.Field(i); !f.IsNil() {
			dst.Field(i).Set(f)
		}
	}
	return ov
}

// IsEmpty reports whether no field is set.
func (ov Override) IsEmpty() bool {
	v := reflect.ValueOf(ov)
	for i := range v.NumField() {
		if !v.Field(i).IsNil() {
			return false
		}
	}
	return true
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// sameOptions compares option sets, treating easing functions by identity.
func sameOptions(a, b Options) bool {
	if funcPointer(a.EasingFunc) != funcPointer(b.EasingFunc) {
		return false
	}
	a.EasingFunc, b.EasingFunc = nil, nil
	return reflect.DeepEqual(a, b)
}

func funcPointer(fn easing.Func) uintptr {
	if fn == nil {
		return 0
	}
	return reflect.ValueOf(fn).Pointer()
}
