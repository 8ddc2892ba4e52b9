package timeit

import "fmt"

// Unit is the display unit of a per-loop estimate.
type Unit int

const (
	// Nanosecond: estimates below 1µs.
	Nanosecond Unit = iota
	// Microsecond: 1µs up to 1ms.
	Microsecond
	// Millisecond: 1ms up to 1s.
	Millisecond
	// Second: 1s and above.
	Second
)

// String returns the unit suffix used in reports.
func (u Unit) String() string {
	switch u {
	case Nanosecond:
		return "ns"
	case Microsecond:
		return "µs"
	case Millisecond:
		return "ms"
	case Second:
		return "s"
	default:
		return "?"
	}
}

// Scale returns the length of the unit in seconds.
func (u Unit) Scale() float64 {
	switch u {
	case Microsecond:
		return 0.000_001
	case Millisecond:
		return 0.001
	case Second:
		return 1.0
	default:
		return 0.000_000_001
	}
}

// UnitFor returns the largest unit in which sec scales to a value >= 1.
// Values below one nanosecond, zero included, use Nanosecond.
func UnitFor(sec float64) Unit {
	switch {
	case sec >= Second.Scale():
		return Second
	case sec >= Millisecond.Scale():
		return Millisecond
	case sec >= Microsecond.Scale():
		return Microsecond
	default:
		return Nanosecond
	}
}

// FormatSeconds renders sec with four decimals in the unit picked by UnitFor,
// e.g. "2.4843 µs".
func FormatSeconds(sec float64) string {
	u := UnitFor(sec)
	return fmt.Sprintf("%.4f %s", sec/u.Scale(), u)
}
