package diffusion

// Pair is a (low, high) concentration pair for one diffusion source: high is
// the source concentration held at the wall, low the ambient bulk value.
type Pair struct {
	Low, High float64
}

// BoundaryTable fixes the two wall sources. The left wall feeds the lower
// half of the domain, the right wall the upper half. The table is immutable
// once built; both the boundary writer and the analytical comparison read it.
type BoundaryTable struct {
	Left, Right Pair
}

// NewBoundaryTable returns the standard benchmark sources: ambient 0, source
// concentration 1 on both walls.
func NewBoundaryTable() BoundaryTable {
	return BoundaryTable{
		Left:  Pair{Low: 0.0, High: 1.0},
		Right: Pair{Low: 0.0, High: 1.0},
	}
}

// ApplyInitial writes the initial condition: bulk concentration everywhere,
// then the wall sources. Called once before timestepping.
func ApplyInitial(g *Grid, bc BoundaryTable) {
	g.Fill(bc.Left.Low)
	ApplyBoundary(g, bc)
}

// ApplyBoundary refreshes the halo so that it is consistent with the boundary
// table before a convolution pass reads it. Non-source halo cells mirror the
// nearest interior value (no flux); the source segments are then overwritten
// with their fixed Dirichlet concentrations.
func ApplyBoundary(g *Grid, bc BoundaryTable) {
	w, h := g.Padded()
	nm := g.Halo()

	// No-flux mirror, inside out. The sequence matters: each layer copies
	// the one just inside it.
	for off := 0; off < nm; off++ {
		ilo := nm - off
		ihi := w - 1 - nm + off
		for j := 0; j < h; j++ {
			row := g.Row(j)
			row[ilo-1] = row[ilo]
			row[ihi+1] = row[ihi]
		}
	}
	for off := 0; off < nm; off++ {
		jlo := nm - off
		jhi := h - 1 - nm + off
		inLo := g.Row(jlo)
		outLo := g.Row(jlo - 1)
		inHi := g.Row(jhi)
		outHi := g.Row(jhi + 1)
		copy(outLo, inLo)
		copy(outHi, inHi)
	}

	// Dirichlet sources: left wall feeds rows below the midline, right wall
	// the rows above it.
	for j := 0; j < h/2; j++ {
		row := g.Row(j)
		for i := 0; i < nm; i++ {
			row[i] = bc.Left.High
		}
	}
	for j := h / 2; j < h; j++ {
		row := g.Row(j)
		for i := w - nm; i < w; i++ {
			row[i] = bc.Right.High
		}
	}
}
