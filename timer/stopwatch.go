// Package timer provides the per-phase stopwatch used by the benchmark
// driver. No numerical component depends on it; the driving loop brackets
// each phase and adds the measured duration to the matching accumulator.
package timer

import "time"

// Stopwatch accumulates wall time per benchmark phase against a monotonic
// start reference. Accumulators only grow; they are never reset mid-run.
type Stopwatch struct {
	start time.Time

	// Conv is time spent applying the convolution mask.
	Conv time.Duration
	// Step is time spent in the explicit update.
	Step time.Duration
	// File is time spent writing snapshots and logs.
	File time.Duration
	// Soln is time spent evaluating the analytical solution.
	Soln time.Duration
}

// New starts a stopwatch. The Go runtime backs time.Since with the monotonic
// clock, so wall-clock adjustments do not disturb the readings.
func New() *Stopwatch {
	return &Stopwatch{start: time.Now()}
}

// Total reports wall time since the stopwatch was created.
func (s *Stopwatch) Total() time.Duration {
	return time.Since(s.start)
}
