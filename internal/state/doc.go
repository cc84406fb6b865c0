// Package state provides the finite-state tracker that gates motion in a
// carousel instance.
//
// # Overview
//
// Every slider owns one [Machine]. Components read it to decide whether an
// action may start (a navigation request while Moving is rejected when the
// slider waits for transitions, a drag cannot start while Scrolling, and so
// on). Only the slider's own components write it, and they do so through
// [Machine.Set], which validates each change against a fixed table.
//
// # States
//
//	Created ──mount──> Mounted ──layout──> Idle
//	                                        │
//	           ┌────────────────────────────┼──────────────────┐
//	           ↓                            ↓                  ↓
//	        Moving <──flick hand-off── Dragging            Scrolling
//	           │                            │                  │
//	           └──────────> Idle <──────────┴──────────────────┘
//
//	any ──destroy──> Destroyed (terminal)
//
// Exactly one of Idle, Moving, Scrolling or Dragging holds between mount and
// destroy. Self transitions are accepted as no-ops except on Destroyed, which
// accepts nothing.
//
// # Rejections
//
// An illegal transition leaves the state untouched, increments
// [Snapshot.Rejected] and runs the OnReject hook. The slider uses the hook to
// log the offending transition at debug level; callers never see an error,
// because late callbacks racing a teardown are expected and harmless.
//
// # Concurrency
//
// A Machine is owned by a single event loop and is not safe for concurrent
// use. The terminal front end only touches it from Bubble Tea's Update.
package state
