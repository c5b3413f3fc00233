package diffusion

import "gonum.org/v1/gonum/mat"

// Grid stores a scalar concentration field on a regular mesh padded with a
// halo of ghost cells. The halo is never advanced by the integrator; boundary
// logic fills it before each convolution pass reads it.
//
// Storage is row-major with rows along y and columns along x, so row j is the
// contiguous slice of all x values at height j. Cell (i, j) addresses column i
// and row j in padded coordinates; the interior occupies
// [nm, nm+nx) × [nm, nm+ny).
type Grid struct {
	nx, ny int // interior cells along x and y
	nm     int // halo width, equal to the stencil radius
	dx, dy float64
	field  *mat.Dense
}

// NewGrid allocates a zeroed grid with nx×ny interior cells, an nm-wide halo,
// and the given cell spacing.
func NewGrid(nx, ny, nm int, dx, dy float64) *Grid {
	return &Grid{
		nx: nx, ny: ny, nm: nm,
		dx: dx, dy: dy,
		field: mat.NewDense(ny+2*nm, nx+2*nm, nil),
	}
}

// Interior reports the interior cell counts along x and y.
func (g *Grid) Interior() (nx, ny int) { return g.nx, g.ny }

// Halo reports the ghost-cell border width.
func (g *Grid) Halo() int { return g.nm }

// Spacing reports the cell spacing along x and y.
func (g *Grid) Spacing() (dx, dy float64) { return g.dx, g.dy }

// Padded reports the full allocated dimensions including the halo.
func (g *Grid) Padded() (w, h int) { return g.nx + 2*g.nm, g.ny + 2*g.nm }

// Row returns the backing slice for padded row j. Writing through it mutates
// the grid; the hot loops depend on this aliasing.
func (g *Grid) Row(j int) []float64 { return g.field.RawRowView(j) }

// At reads the cell at padded column i, row j.
func (g *Grid) At(i, j int) float64 { return g.field.At(j, i) }

// Set writes the cell at padded column i, row j.
func (g *Grid) Set(i, j int, v float64) { g.field.Set(j, i, v) }

// Fill sets every cell, halo included, to v.
func (g *Grid) Fill(v float64) {
	raw := g.field.RawMatrix().Data
	for i := range raw {
		raw[i] = v
	}
}

// Swap exchanges the backing storage of two grids of identical shape. The
// driving loop rotates the old and new buffers this way each step instead of
// copying cell data.
func (g *Grid) Swap(o *Grid) {
	g.field, o.field = o.field, g.field
}

// Clone returns an independent copy of the grid and its contents.
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.nx, g.ny, g.nm, g.dx, g.dy)
	c.field.Copy(g.field)
	return c
}
