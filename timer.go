package timeit

import (
	"sync"
	"time"
)

// Clock is a monotonic time source. Now returns the time elapsed since an
// arbitrary fixed epoch; only differences between readings are meaningful.
type Clock interface {
	Now() time.Duration
}

// monotonicEpoch is the reference point for monotonic clock readings.
var monotonicEpoch = time.Now()

type monotonicClock struct{}

// Now returns the monotonic time since the package epoch.
// time.Since uses the monotonic reading carried by monotonicEpoch, so wall
// clock adjustments do not affect it.
func (monotonicClock) Now() time.Duration {
	return time.Since(monotonicEpoch)
}

// MonotonicClock returns the default clock, backed by Go's monotonic clock.
func MonotonicClock() Clock {
	return monotonicClock{}
}

// TimerName returns the name of the timer being used.
func TimerName() string {
	return "time.Now"
}

var (
	resolutionOnce sync.Once
	resolution     time.Duration
)

// TimerResolution returns the estimated granularity of the default clock.
// The estimate is computed on first use and cached.
func TimerResolution() time.Duration {
	resolutionOnce.Do(func() {
		resolution = estimateResolution(MonotonicClock())
	})
	return resolution
}

// estimateResolution takes the smallest non-zero step observed between
// consecutive clock readings over a few samples.
func estimateResolution(clk Clock) time.Duration {
	const samples = 5
	const maxSpins = 1_000_000

	best := time.Duration(0)
	for i := 0; i < samples; i++ {
		start := clk.Now()
		next := start
		for spin := 0; next == start && spin < maxSpins; spin++ {
			next = clk.Now()
		}
		step := next - start
		if step <= 0 {
			continue
		}
		if best == 0 || step < best {
			best = step
		}
	}
	if best == 0 {
		return time.Nanosecond // Fallback
	}
	return best
}
