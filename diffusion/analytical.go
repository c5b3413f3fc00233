package diffusion

import (
	"math"

	"github.com/exascience/pargo/parallel"
)

// AnalyticalValue evaluates the 1-D similarity solution for a fixed step
// source of concentration c diffusing into a semi-infinite domain:
// c·(1 − erf(x/√(4Dt))). t must be positive; the driving loop schedules the
// first evaluation after at least one step.
func AnalyticalValue(x, t, d, c float64) float64 {
	return c * (1.0 - math.Erf(x/math.Sqrt(4.0*d*t)))
}

// Residual compares the numerical field against the superposed analytical
// solutions of the two wall sources and returns the mean squared residual
// over the interior.
//
// The distance to each source is a deliberate approximation kept from the
// reference benchmark: straight-line distance to the wall while the cell is
// in that source's half of the domain, Euclidean distance to the wall
// endpoint at the midline otherwise. The rows are divided into tiles work
// items whose partial sums are merged with an associative join, so the
// result does not depend on the partition beyond floating-point rounding.
func Residual(g *Grid, bc BoundaryTable, elapsed, d float64, tiles int) float64 {
	nx, ny := g.Interior()
	nm := g.Halo()
	dx, dy := g.Spacing()
	norm := float64(nx * ny)
	half := ny / 2
	return parallel.RangeReduceFloat64(nm, nm+ny, tiles,
		func(low, high int) (sum float64) {
			for j := low; j < high; j++ {
				row := g.Row(j)
				py := j - nm
				for i := nm; i < nm+nx; i++ {
					px := i - nm
					cn := row[i]

					// shortest distance to the left-wall source
					x := dx * float64(px)
					if py >= half {
						x = math.Sqrt(dx*dx*float64(px*px) + dy*dy*float64((py-half)*(py-half)))
					}
					cal := AnalyticalValue(x, elapsed, d, bc.Left.High)

					// shortest distance to the right-wall source
					rx := nx - 1 - px
					x = dx * float64(rx)
					if py < half {
						x = math.Sqrt(dx*dx*float64(rx*rx) + dy*dy*float64((half-py)*(half-py)))
					}
					car := AnalyticalValue(x, elapsed, d, bc.Right.High)

					// superposition of the two sources
					ca := cal + car
					sum += (ca - cn) * (ca - cn) / norm
				}
			}
			return sum
		},
		func(a, b float64) float64 { return a + b },
	)
}
