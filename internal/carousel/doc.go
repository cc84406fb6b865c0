// Package carousel is a headless carousel engine: it turns navigation
// requests and pointer gestures into track offsets and keeps the active
// index, loop wraparound and responsive geometry consistent.
//
// The host supplies a Viewport and the natural size of each slide, drives
// time by calling Slider.Frame, and paints the result by reading
// Move.Position and Layout.SlideOffset.
//
// # Components
//
// A Slider composes named components, set up and mounted in order:
//
//   - Breakpoints resolves the effective Options for the viewport.
//   - Slides and Clones keep the rendered slide records.
//   - Layout measures track and slide sizes.
//   - Move owns the offset and maps between indices and positions.
//   - Controller parses Controls and owns the active index.
//   - Scroll, Drag and Autoplay produce motion.
//   - Sync mirrors moves onto linked sliders.
//
// Components talk through the slider's event bus (see the Event topics).
// Every mutation happens on the caller's goroutine; completion callbacks
// run only after the moved or scrolled bookkeeping is final.
//
// # States
//
// A slider moves through state.Created, Mounted and then Idle, Moving,
// Scrolling or Dragging until Destroy. Requests that arrive while the
// slider is busy, or after it is destroyed, are dropped.
package carousel
