package core

import "time"

// FixedStep lets a frame-driven loop advance the simulation at a steady
// interval regardless of its own frame rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep that fires once per interval. The first
// call to ShouldStep always fires, and a non-positive interval fires on every
// call.
func NewFixedStep(interval time.Duration) *FixedStep {
	if interval < 0 {
		interval = 0
	}
	return &FixedStep{step: interval, accumulator: interval, now: time.Now}
}

// ShouldStep reports whether the simulation should advance by one tick. At
// most one tick is released per call so slow frames never coalesce ticks.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
