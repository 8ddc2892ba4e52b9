package timeit

import (
	"fmt"
	"time"
)

// Trial is one bracketed run of the block during calibration.
type Trial struct {
	// Loops is the number of times the block ran.
	Loops int
	// Elapsed is the time between the clock reads around the whole run.
	Elapsed time.Duration
}

// PerLoop returns the per-iteration estimate in seconds.
func (t Trial) PerLoop() float64 {
	if t.Loops <= 0 {
		return 0
	}
	return t.Elapsed.Seconds() / float64(t.Loops)
}

// Measurement holds the result of a timing run.
type Measurement struct {
	// Loops is the loop count of the final trial.
	Loops int

	// Elapsed is the total elapsed time of the final trial.
	Elapsed time.Duration

	// Trials lists every calibration trial in the order it ran. The last
	// entry is the final trial. An explicit-count run has exactly one.
	Trials []Trial
}

// PerLoop returns the per-iteration estimate in seconds.
func (m Measurement) PerLoop() float64 {
	return Trial{Loops: m.Loops, Elapsed: m.Elapsed}.PerLoop()
}

// PerLoopDuration returns the per-iteration estimate as a time.Duration,
// truncated to whole nanoseconds.
func (m Measurement) PerLoopDuration() time.Duration {
	if m.Loops <= 0 {
		return 0
	}
	return m.Elapsed / time.Duration(m.Loops)
}

// Unit returns the display unit of the per-iteration estimate.
func (m Measurement) Unit() Unit {
	return UnitFor(m.PerLoop())
}

// String returns the one-line report, e.g. "10000 loops: 2.4843 µs".
func (m Measurement) String() string {
	return fmt.Sprintf("%d loops: %s", m.Loops, FormatSeconds(m.PerLoop()))
}
