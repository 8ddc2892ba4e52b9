package timeit

import (
	"log/slog"
	"math"
)

// runLoops runs fn n times between two clock reads and returns the trial.
// The loop body is nothing but the call so the bracketed region carries only
// loop and closure call overhead.
func runLoops(clk Clock, n int, fn func()) Trial {
	start := clk.Now()
	for i := 0; i < n; i++ {
		fn()
	}
	end := clk.Now()
	return Trial{Loops: n, Elapsed: end - start}
}

// calibrate grows the loop count by the configured factor until a trial
// takes at least the threshold, and returns the measurement of that trial.
//
// Without a loop ceiling this does not terminate for a block whose cost is
// indistinguishable from zero.
func calibrate(cfg *Config, fn func()) Measurement {
	log := cfg.logger
	log.Debug("calibration start",
		slog.String("timer", TimerName()),
		slog.Duration("resolution", TimerResolution()),
		slog.Duration("threshold", cfg.threshold),
		slog.Int("growth_factor", cfg.growthFactor))

	var trials []Trial
	n := cfg.initialLoops
	for {
		trial := runLoops(cfg.clock, n, fn)
		trials = append(trials, trial)
		log.Debug("calibration trial",
			slog.Int("loops", trial.Loops),
			slog.Duration("elapsed", trial.Elapsed))

		if trial.Elapsed >= cfg.threshold {
			break
		}
		if cfg.maxLoops > 0 && n >= cfg.maxLoops {
			log.Info("calibration stopped at loop ceiling",
				slog.Int("max_loops", cfg.maxLoops),
				slog.Duration("elapsed", trial.Elapsed),
				slog.Duration("threshold", cfg.threshold))
			break
		}
		n = nextLoops(n, cfg.growthFactor, cfg.maxLoops)
	}

	final := trials[len(trials)-1]
	m := Measurement{Loops: final.Loops, Elapsed: final.Elapsed, Trials: trials}
	log.Debug("calibration done",
		slog.Int("loops", m.Loops),
		slog.Int("trials", len(trials)),
		slog.Duration("per_loop", m.PerLoopDuration()))
	return m
}

// nextLoops returns n*factor, saturating at math.MaxInt and clamped to
// maxLoops when a ceiling is set.
func nextLoops(n, factor, maxLoops int) int {
	next := math.MaxInt
	if n <= math.MaxInt/factor {
		next = n * factor
	}
	if maxLoops > 0 && next > maxLoops {
		next = maxLoops
	}
	return next
}
