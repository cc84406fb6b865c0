package ticker

import "time"

// Scheduler queues callbacks for the next animation frame. The host drives it
// by calling Frame once per rendered frame; nothing runs in the background.
type Scheduler struct {
	now     func() time.Time
	queue   []request
	next    uint64
	closed  bool
	frames  uint64
	lastRun time.Time
}

type request struct {
	id uint64
	fn func(time.Time)
}

// NewScheduler creates a scheduler reading time from now. A nil now uses
// time.Now.
func NewScheduler(now func() time.Time) *Scheduler {
	if now == nil {
		now = time.Now
	}
	return &Scheduler{now: now}
}

// Now returns the scheduler's clock reading.
func (s *Scheduler) Now() time.Time {
	return s.now()
}

// Request schedules fn for the next frame and returns an id for Cancel.
// Requests made while a frame runs are deferred to the following frame.
func (s *Scheduler) Request(fn func(now time.Time)) uint64 {
	if s.closed {
		return 0
	}
	s.next++
	s.queue = append(s.queue, request{id: s.next, fn: fn})
	return s.next
}

// Cancel drops a pending request. Unknown ids are ignored.
func (s *Scheduler) Cancel(id uint64) {
	if id == 0 {
		return
	}
	for i, r := range s.queue {
		if r.id == id {
			s.queue = append(s.queue[:i:i], s.queue[i+1:]...)
			return
		}
	}
}

// Frame runs every callback requested before the call. It returns the number
// of callbacks run.
func (s *Scheduler) Frame(now time.Time) int {
	if s.closed || len(s.queue) == 0 {
		return 0
	}
	batch := s.queue
	s.queue = nil
	s.frames++
	s.lastRun = now

	ran := 0
	for _, r := range batch {
		if s.closed {
			break
		}
		r.fn(now)
		ran++
	}
	return ran
}

// Pending reports whether any callback waits for a frame.
func (s *Scheduler) Pending() bool {
	return !s.closed && len(s.queue) > 0
}

// Frames returns how many non-empty frames have run.
func (s *Scheduler) Frames() uint64 {
	return s.frames
}

// Close cancels every pending callback. Later requests are ignored.
func (s *Scheduler) Close() {
	s.closed = true
	s.queue = nil
}
