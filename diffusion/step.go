package diffusion

import (
	"math"

	"github.com/exascience/pargo/parallel"
)

// Clock accumulates simulated time. It belongs to the driving loop and is
// advanced by dt on every integration step.
type Clock struct {
	Elapsed float64
}

// Timestep derives the explicit timestep from the cell spacing, diffusivity,
// and the linear stability factor: dt = linStab·h²/(4D) with h = min(dx, dy).
// linStab must stay below 1; a larger timestep diverges unconditionally. The
// integrator itself performs no stability check.
func Timestep(dx, dy, d, linStab float64) float64 {
	h := math.Min(dx, dy)
	return linStab * h * h / (4.0 * d)
}

// Step advances the interior one forward-Euler step,
// next = old + dt·D·lap, and adds dt to the simulation clock. The tiles
// parameter and the independence property match Convolve: old and lap are
// read, next is written.
func Step(old, lap, next *Grid, d, dt float64, tiles int, clk *Clock) {
	nx, ny := old.Interior()
	nm := old.Halo()
	parallel.Range(nm, nm+ny, tiles, func(low, high int) {
		for j := low; j < high; j++ {
			a := old.Row(j)
			c := lap.Row(j)
			b := next.Row(j)
			for i := nm; i < nm+nx; i++ {
				b[i] = a[i] + dt*d*c[i]
			}
		}
	})
	clk.Elapsed += dt
}
