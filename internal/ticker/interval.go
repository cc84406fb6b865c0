package ticker

import "time"

// Interval calls onInterval every period, sampling progress once per frame.
// It is the frame-driven counterpart of a repeating timer: onUpdate receives
// the progress rate in [0, 1] on each frame and the period restarts after
// onInterval runs. A positive limit stops the interval after that many
// periods.
type Interval struct {
	sched      *Scheduler
	period     time.Duration
	onInterval func()
	onUpdate   func(rate float64)
	limit      int

	startAt time.Time
	rate    float64
	id      uint64
	gen     uint64
	paused  bool
	count   int
}

// NewInterval creates a paused interval.
func NewInterval(s *Scheduler, period time.Duration, onInterval func(), onUpdate func(rate float64), limit int) *Interval {
	return &Interval{
		sched:      s,
		period:     period,
		onInterval: onInterval,
		onUpdate:   onUpdate,
		limit:      limit,
		paused:     true,
	}
}

// Start runs the interval. With resume the elapsed progress of a paused run is
// kept; otherwise the period starts from zero.
func (i *Interval) Start(resume bool) {
	if !resume {
		i.Cancel()
	} else {
		i.sched.Cancel(i.id)
	}
	elapsed := time.Duration(0)
	if resume {
		elapsed = time.Duration(i.rate * float64(i.period))
	}
	i.startAt = i.sched.Now().Add(-elapsed)
	i.paused = false
	i.gen++
	i.schedule()
}

// Pause stops sampling and keeps the current rate for a later resume.
func (i *Interval) Pause() {
	i.paused = true
	i.sched.Cancel(i.id)
	i.id = 0
	i.gen++
}

// Rewind restarts the current period without changing the paused state.
func (i *Interval) Rewind() {
	i.startAt = i.sched.Now()
	i.rate = 0
	if i.onUpdate != nil {
		i.onUpdate(0)
	}
}

// Cancel stops the interval and clears its progress and period count.
func (i *Interval) Cancel() {
	i.sched.Cancel(i.id)
	i.id = 0
	i.rate = 0
	i.count = 0
	i.paused = true
	i.gen++
}

// Set changes the period. A running period keeps its start time.
func (i *Interval) Set(period time.Duration) {
	i.period = period
}

// Period returns the configured period.
func (i *Interval) Period() time.Duration {
	return i.period
}

// IsPaused reports whether the interval is stopped.
func (i *Interval) IsPaused() bool {
	return i.paused
}

// Rate returns the progress of the current period.
func (i *Interval) Rate() float64 {
	return i.rate
}

func (i *Interval) schedule() {
	gen := i.gen
	i.id = i.sched.Request(func(now time.Time) { i.update(gen, now) })
}

func (i *Interval) update(gen uint64, now time.Time) {
	if i.paused || gen != i.gen {
		return
	}
	i.id = 0

	i.rate = 1
	if i.period > 0 {
		i.rate = min(float64(now.Sub(i.startAt))/float64(i.period), 1)
		i.rate = max(i.rate, 0)
	}
	if i.onUpdate != nil {
		i.onUpdate(i.rate)
	}
	if i.paused || gen != i.gen {
		return
	}

	if i.rate >= 1 {
		i.startAt = now
		i.count++
		if i.limit > 0 && i.count >= i.limit {
			i.paused = true
			i.gen++
			if i.onInterval != nil {
				i.onInterval()
			}
			return
		}
		if i.onInterval != nil {
			i.onInterval()
		}
		if i.paused || gen != i.gen {
			return
		}
	}
	i.schedule()
}
