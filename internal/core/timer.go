package core

import "time"

// FixedStep paces sim steps at a steady ticks-per-second rate against a
// clock supplied by the caller.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	paused      bool
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
// The first call to Due reports one step so a fresh sim advances immediately.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. Non-positive values fall back to 60.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Interval returns the duration of one step.
func (f *FixedStep) Interval() time.Duration { return f.step }

// SetPaused stops or resumes accumulation. Time spent paused is discarded.
func (f *FixedStep) SetPaused(paused bool) {
	f.paused = paused
	f.last = time.Time{}
}

// Paused reports whether the timer is paused.
func (f *FixedStep) Paused() bool { return f.paused }

// Due returns how many steps have elapsed by now, capped at limit so a
// stalled loop does not spiral. Excess time beyond the cap is dropped.
func (f *FixedStep) Due(now time.Time, limit int) int {
	if f.paused {
		return 0
	}
	if limit < 1 {
		limit = 1
	}
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	if delta > 0 {
		f.accumulator += delta
	}
	f.last = now

	n := 0
	for f.accumulator >= f.step && n < limit {
		f.accumulator -= f.step
		n++
	}
	if f.accumulator >= f.step {
		f.accumulator = 0
	}
	return n
}
