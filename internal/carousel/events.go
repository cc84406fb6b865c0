package carousel

import "github.com/five82/glide/internal/event"

// MoveEvent describes a slide transition. Dest may lie in the clone index
// space of a loop slider; Index is always a real slide index.
type MoveEvent struct {
	Index int
	Prev  int
	Dest  int
}

// Lifecycle and motion topics emitted on the slider's bus.
var (
	EventMounted   = event.NewTopic[event.None]("mounted")
	EventReady     = event.NewTopic[event.None]("ready")
	EventMove      = event.NewTopic[MoveEvent]("move")
	EventMoved     = event.NewTopic[MoveEvent]("moved")
	EventActive    = event.NewTopic[SlideRecord]("active")
	EventInactive  = event.NewTopic[SlideRecord]("inactive")
	EventDrag      = event.NewTopic[event.None]("drag")
	EventDragging  = event.NewTopic[event.None]("dragging")
	EventDragged   = event.NewTopic[event.None]("dragged")
	EventScroll    = event.NewTopic[event.None]("scroll")
	EventScrolling = event.NewTopic[event.None]("scrolling")
	EventScrolled  = event.NewTopic[event.None]("scrolled")
	EventResize    = event.NewTopic[Viewport]("resize")
	EventResized   = event.NewTopic[Viewport]("resized")
	EventRefresh   = event.NewTopic[event.None]("refresh")
	EventUpdated   = event.NewTopic[Options]("updated")
	EventOverflow  = event.NewTopic[bool]("overflow")
	EventDestroy   = event.NewTopic[event.None]("destroy")

	EventAutoplayPlay    = event.NewTopic[event.None]("autoplay:play")
	EventAutoplayPlaying = event.NewTopic[float64]("autoplay:playing")
	EventAutoplayPause   = event.NewTopic[event.None]("autoplay:pause")

	// EventShifted fires when a loop slider jumps from a clone coordinate to
	// the matching real one.
	EventShifted = event.NewTopic[event.None]("_shifted")
	// EventEndIndexChanged fires when a resize changes Controller.End.
	EventEndIndexChanged = event.NewTopic[event.None]("_end-index-changed")
)

// frequent lists topics emitted once per frame; they are not logged.
var frequent = map[string]bool{
	EventDragging.Name():        true,
	EventScrolling.Name():       true,
	EventAutoplayPlaying.Name(): true,
}
