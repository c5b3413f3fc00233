package diffusion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimestepDerivation(t *testing.T) {
	// linStab·h²/(4D) with h = min(dx, dy)
	assert.InDelta(t, 0.25, Timestep(1.0, 1.0, 0.1, 0.1), 1e-15)
	assert.InDelta(t, 1.0, Timestep(0.5, 2.0, 0.00625, 0.1), 1e-15)
	// the smaller spacing governs
	assert.Equal(t, Timestep(0.5, 9.0, 0.1, 0.1), Timestep(0.5, 0.5, 0.1, 0.1))
}

func TestStepLinearInLaplacian(t *testing.T) {
	const k = 3.5
	const d, dt = 0.25, 0.125

	a := NewGrid(12, 12, 1, 1, 1)
	c := NewGrid(12, 12, 1, 1, 1)
	fillRandom(a, 3)
	fillRandom(c, 4)

	kc := NewGrid(12, 12, 1, 1, 1)
	w, h := c.Padded()
	for j := 0; j < h; j++ {
		src, dst := c.Row(j), kc.Row(j)
		for i := 0; i < w; i++ {
			dst[i] = k * src[i]
		}
	}

	var clk Clock
	b1 := NewGrid(12, 12, 1, 1, 1)
	b2 := NewGrid(12, 12, 1, 1, 1)
	Step(a, c, b1, d, dt, 4, &clk)
	Step(a, kc, b2, d, dt, 4, &clk)

	nm := a.Halo()
	nx, ny := a.Interior()
	for j := nm; j < nm+ny; j++ {
		for i := nm; i < nm+nx; i++ {
			want := a.At(i, j) + k*dt*d*c.At(i, j)
			assert.InDelta(t, want, b2.At(i, j), 1e-12)
			assert.InDelta(t, b2.At(i, j)-a.At(i, j), k*(b1.At(i, j)-a.At(i, j)), 1e-12)
		}
	}
}

func TestStepAdvancesClock(t *testing.T) {
	a := NewGrid(4, 4, 1, 1, 1)
	c := NewGrid(4, 4, 1, 1, 1)
	b := NewGrid(4, 4, 1, 1, 1)

	var clk Clock
	Step(a, c, b, 0.1, 0.25, 0, &clk)
	Step(b, c, a, 0.1, 0.25, 0, &clk)
	assert.InDelta(t, 0.5, clk.Elapsed, 1e-15)
}

func TestStepLeavesHaloAlone(t *testing.T) {
	a := NewGrid(6, 6, 1, 1, 1)
	c := NewGrid(6, 6, 1, 1, 1)
	b := NewGrid(6, 6, 1, 1, 1)
	a.Fill(1)
	c.Fill(1)
	b.Fill(-5)

	var clk Clock
	Step(a, c, b, 0.5, 0.5, 0, &clk)

	w, h := b.Padded()
	assert.Equal(t, -5.0, b.At(0, 0))
	assert.Equal(t, -5.0, b.At(w-1, h-1))
	assert.InDelta(t, 1.25, b.At(3, 3), 1e-15)
}
