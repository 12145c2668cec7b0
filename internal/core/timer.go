package core

import "time"

// FixedStep paces frame updates at a steady ticks-per-second rate regardless
// of how often the host loop polls it.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS. The
// first poll always steps.
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

// Step returns the duration of one tick.
func (f *FixedStep) Step() time.Duration { return f.step }

// ShouldStep reports whether a tick is due since the previous poll.
func (f *FixedStep) ShouldStep() bool {
	now := time.Now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	return f.Observe(delta)
}

// Observe accumulates delta and reports whether a tick is due. At most one
// tick is consumed per call; leftover time carries over but never exceeds
// one step, so a stalled host does not cause a burst of catch-up ticks.
func (f *FixedStep) Observe(delta time.Duration) bool {
	f.accumulator += delta
	if f.accumulator < f.step {
		return false
	}
	f.accumulator -= f.step
	if f.accumulator > f.step {
		f.accumulator = f.step
	}
	return true
}

// Restart drops accumulated time so the next poll measures from now.
func (f *FixedStep) Restart() {
	f.last = time.Time{}
	f.accumulator = 0
}
