package core

import "time"

// DefaultPeriod is the advance cadence used when none is configured.
const DefaultPeriod = 100 * time.Millisecond

// FixedStep reports when a fixed period of wall time has elapsed. At most one
// step is reported per call, so a stalled frame never triggers a burst.
type FixedStep struct {
	period      time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep that fires once per period.
func NewFixedStep(period time.Duration) *FixedStep {
	return NewFixedStepWithClock(period, time.Now)
}

// NewFixedStepWithClock is NewFixedStep with an explicit time source.
func NewFixedStepWithClock(period time.Duration, now func() time.Time) *FixedStep {
	fs := &FixedStep{now: now}
	fs.SetPeriod(period)
	return fs
}

// SetPeriod changes the step period. It is safe to call from the main loop.
func (f *FixedStep) SetPeriod(period time.Duration) {
	if period <= 0 {
		period = DefaultPeriod
	}
	f.period = period
}

// Period returns the configured step period.
func (f *FixedStep) Period() time.Duration { return f.period }

// Reset discards accumulated time so the next step is a full period away.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}

// ShouldStep reports whether a step is due.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator >= f.period {
		f.accumulator -= f.period
		if f.accumulator > f.period {
			f.accumulator = f.period
		}
		return true
	}
	return false
}
