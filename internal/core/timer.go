package core

import "time"

// maxCatchUp bounds how many ticks a single frame may owe after a stall.
const maxCatchUp = 4

// FixedStep helps run simulation updates at a steady ticks-per-second rate
// independent of how often the host draws.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.step = time.Second / time.Duration(tps)
}

// Interval returns the duration of one tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// Advance accounts for wall-clock time up to now and returns how many ticks
// are due. The result never exceeds maxCatchUp; leftover debt is dropped.
func (f *FixedStep) Advance(now time.Time) int {
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	if delta < 0 {
		delta = 0
	}
	f.last = now
	f.accumulator += delta

	steps := 0
	for f.accumulator >= f.step && steps < maxCatchUp {
		f.accumulator -= f.step
		steps++
	}
	if steps == maxCatchUp && f.accumulator >= f.step {
		f.accumulator = 0
	}
	return steps
}
