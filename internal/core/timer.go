package core

import "time"

// DefaultStep is the cadence used when a non-positive step is requested.
const DefaultStep = 200 * time.Millisecond

// FixedStep gates simulation ticks to a wall-clock interval, independent of
// how often the host loop polls it. Once a tick fires the accumulator starts
// over, so a stalled frame never produces a burst of catch-up ticks.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep that fires once per step.
func NewFixedStep(step time.Duration) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetStep(step)
	return fs
}

// SetStep changes the tick interval. It is safe to call from the main loop.
func (f *FixedStep) SetStep(step time.Duration) {
	if step <= 0 {
		step = DefaultStep
	}
	f.step = step
}

// Step returns the configured interval.
func (f *FixedStep) Step() time.Duration { return f.step }

// Reset discards accumulated time and restarts wall-clock measurement.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}

// ShouldStep reports whether the simulation should advance by one tick,
// measuring elapsed wall-clock time since the previous call.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	return f.Advance(delta)
}

// Advance adds delta to the accumulator and reports whether a tick is due.
func (f *FixedStep) Advance(delta time.Duration) bool {
	if delta > 0 {
		f.accumulator += delta
	}
	if f.accumulator > f.step {
		f.accumulator = 0
		return true
	}
	return false
}
