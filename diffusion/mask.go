package diffusion

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// StencilCode selects one of the supported discrete Laplacian stencils. The
// numeric values follow the benchmark convention: the first digit counts the
// stencil points, the second the mask edge length.
type StencilCode int

const (
	// FivePoint is the second-order five-point Laplacian on a 3×3 mask.
	FivePoint StencilCode = 53
	// NinePoint is the nine-point Laplacian on a 3×3 mask.
	NinePoint StencilCode = 93
	// NinePointWide is the fourth-order nine-point cross on a 5×5 mask.
	NinePointWide StencilCode = 95
)

// ParseStencilCode validates a numeric stencil selection.
func ParseStencilCode(code int) (StencilCode, error) {
	switch c := StencilCode(code); c {
	case FivePoint, NinePoint, NinePointWide:
		return c, nil
	default:
		return 0, fmt.Errorf("unknown stencil code %d", code)
	}
}

func (c StencilCode) String() string {
	switch c {
	case FivePoint:
		return "five-point"
	case NinePoint:
		return "nine-point"
	case NinePointWide:
		return "nine-point wide"
	default:
		return fmt.Sprintf("StencilCode(%d)", int(c))
	}
}

// Mask holds the (2nm+1)×(2nm+1) finite-difference coefficients applied at
// every interior cell. Coefficients sum to zero: the discrete Laplacian of a
// constant field vanishes.
type Mask struct {
	nm int
	w  *mat.Dense
}

// NewMask builds the Laplacian mask for the given cell spacing and stencil
// selection. An unrecognized code is a setup error; callers treat it as fatal.
func NewMask(dx, dy float64, code StencilCode) (*Mask, error) {
	switch code {
	case FivePoint:
		m := &Mask{nm: 1, w: mat.NewDense(3, 3, nil)}
		m.w.Set(0, 1, 1.0/(dy*dy))
		m.w.Set(1, 0, 1.0/(dx*dx))
		m.w.Set(1, 1, -2.0*(dx*dx+dy*dy)/(dx*dx*dy*dy))
		m.w.Set(1, 2, 1.0/(dx*dx))
		m.w.Set(2, 1, 1.0/(dy*dy))
		return m, nil
	case NinePoint:
		m := &Mask{nm: 1, w: mat.NewDense(3, 3, nil)}
		m.w.Set(0, 0, 1.0/(6.0*dx*dy))
		m.w.Set(0, 1, 4.0/(6.0*dy*dy))
		m.w.Set(0, 2, 1.0/(6.0*dx*dy))
		m.w.Set(1, 0, 4.0/(6.0*dx*dx))
		m.w.Set(1, 1, -10.0*(dx*dx+dy*dy)/(6.0*dx*dx*dy*dy))
		m.w.Set(1, 2, 4.0/(6.0*dx*dx))
		m.w.Set(2, 0, 1.0/(6.0*dx*dy))
		m.w.Set(2, 1, 4.0/(6.0*dy*dy))
		m.w.Set(2, 2, 1.0/(6.0*dx*dy))
		return m, nil
	case NinePointWide:
		m := &Mask{nm: 2, w: mat.NewDense(5, 5, nil)}
		m.w.Set(0, 2, -1.0/(12.0*dy*dy))
		m.w.Set(1, 2, 4.0/(3.0*dy*dy))
		m.w.Set(2, 0, -1.0/(12.0*dx*dx))
		m.w.Set(2, 1, 4.0/(3.0*dx*dx))
		m.w.Set(2, 2, -5.0*(dx*dx+dy*dy)/(2.0*dx*dx*dy*dy))
		m.w.Set(2, 3, 4.0/(3.0*dx*dx))
		m.w.Set(2, 4, -1.0/(12.0*dx*dx))
		m.w.Set(3, 2, 4.0/(3.0*dy*dy))
		m.w.Set(4, 2, -1.0/(12.0*dy*dy))
		return m, nil
	default:
		return nil, fmt.Errorf("unknown stencil code %d", int(code))
	}
}

// Radius reports the mask radius nm; the grid halo must be at least this wide.
func (m *Mask) Radius() int { return m.nm }

// Row returns the coefficients for mask row mj, mj in [0, 2nm].
func (m *Mask) Row(mj int) []float64 { return m.w.RawRowView(mj) }

// Sum adds up every coefficient. For a valid Laplacian mask the result is
// zero to rounding.
func (m *Mask) Sum() float64 { return mat.Sum(m.w) }
