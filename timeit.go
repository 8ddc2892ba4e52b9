// Package timeit provides a small micro-benchmarking timer, named after
// Python's timeit.
//
// It runs a block of code repeatedly, measures the elapsed time with Go's
// monotonic clock, and reports the average time per loop.
//
// # Usage
//
// Timeit picks the number of loops automatically and prints the result:
//
//	timeit.Timeit(func() {
//	    x := make([]uint64, 0)
//	    for i := uint64(0); i < 1000; i++ {
//	        x = append(x, i)
//	    }
//	})
//
// This prints something like:
//
//	10000 loops: 2.4843 µs
//
// To run a fixed number of loops and keep the per-loop time in seconds, use
// TimeitLoops:
//
//	sec, err := timeit.TimeitLoops(100, func() {
//	    ...
//	})
//
// # Calibration
//
// Timeit starts with one loop and multiplies the count by ten until a run
// takes at least 10ms. The first run that reaches the threshold is the
// measurement; it is not repeated. Both constants can be changed with
// WithThreshold and WithGrowthFactor. A block that costs effectively nothing
// keeps the count growing; WithMaxLoops puts a ceiling on it.
//
// The block is called through a closure, so very fast blocks carry a small
// constant call overhead in every loop.
package timeit

import (
	"fmt"
	"log/slog"
)

// Timeit runs fn with an automatically calibrated loop count and writes the
// per-loop time to the configured output (os.Stdout by default) as a single
// line, e.g. "10000 loops: 2.4843 µs".
//
// Timeit panics with an error wrapping ErrInvalidConfig if an option value
// is out of range.
func Timeit(fn func(), opts ...Option) {
	cfg, err := newConfig(opts)
	if err != nil {
		panic(err)
	}

	m := calibrate(cfg, fn)
	if _, err := fmt.Fprintln(cfg.output, m); err != nil {
		cfg.logger.Warn("failed to write timing report", slog.Any("error", err))
	}
}

// Measure runs the same calibration as Timeit and returns the measurement
// instead of printing it.
//
// Measure panics with an error wrapping ErrInvalidConfig if an option value
// is out of range.
func Measure(fn func(), opts ...Option) Measurement {
	cfg, err := newConfig(opts)
	if err != nil {
		panic(err)
	}
	return calibrate(cfg, fn)
}

// TimeitLoops runs fn exactly n times and returns the average time per loop
// in seconds.
//
// A non-positive n returns an error wrapping ErrInvalidLoops and fn is not
// called.
func TimeitLoops(n int, fn func()) (float64, error) {
	m, err := MeasureLoops(n, fn)
	if err != nil {
		return 0, err
	}
	return m.PerLoop(), nil
}

// MeasureLoops runs fn exactly n times and returns the measurement. The
// clock and logger options apply; calibration options are only validated.
//
// A non-positive n returns an error wrapping ErrInvalidLoops, and an out of
// range option an error wrapping ErrInvalidConfig.
func MeasureLoops(n int, fn func(), opts ...Option) (Measurement, error) {
	if n <= 0 {
		return Measurement{}, fmt.Errorf("%w: got %d", ErrInvalidLoops, n)
	}
	cfg, err := newConfig(opts)
	if err != nil {
		return Measurement{}, err
	}

	trial := runLoops(cfg.clock, n, fn)
	cfg.logger.Debug("timed loops",
		slog.Int("loops", trial.Loops),
		slog.Duration("elapsed", trial.Elapsed))
	return Measurement{Loops: trial.Loops, Elapsed: trial.Elapsed, Trials: []Trial{trial}}, nil
}
