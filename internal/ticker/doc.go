// Package ticker emulates a browser's animation-frame loop for headless
// animation: a [Scheduler] queues per-frame callbacks that the host flushes
// with Frame, and an [Interval] builds timed, pausable periods on top of it.
//
// Nothing in this package starts goroutines or timers. Time only advances
// when the host calls Frame, which keeps animations deterministic under test.
package ticker
