// Package viewer provides an optional live window onto the running
// simulation. It drives the same advance function the headless loop uses, so
// watching a run does not change its numerics, only its pacing.
package viewer

import (
	"fmt"
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Config couples the simulation loop to the display.
type Config struct {
	// Width and Height are the padded field dimensions in cells; the window
	// shows one pixel per cell, scaled.
	Width, Height int
	// Scale enlarges the window; small grids are hard to see at 1:1.
	Scale int
	// StepsPerFrame is how many timesteps to advance per display tick.
	StepsPerFrame int
	// Advance runs one timestep and reports false once the run is complete.
	Advance func() (bool, error)
	// Render rasterizes the current field.
	Render func() *image.RGBA
	// Status returns the overlay line, typically step and residual counters.
	Status func() string
}

type game struct {
	cfg          Config
	done         bool
	lastStepTime time.Duration
}

// Update advances the simulation; the solver does the real work, the viewer
// only paces it.
func (g *game) Update() error {
	if g.done {
		return ebiten.Termination
	}
	start := time.Now()
	for k := 0; k < g.cfg.StepsPerFrame; k++ {
		more, err := g.cfg.Advance()
		if err != nil {
			return err
		}
		if !more {
			g.done = true
			break
		}
	}
	g.lastStepTime = time.Since(start)
	return nil
}

// Draw blits the rasterized field and the status overlay.
func (g *game) Draw(screen *ebiten.Image) {
	img := g.cfg.Render()
	screen.WritePixels(img.Pix)
	msg := fmt.Sprintf("%s\nFPS: %.1f\nSim: %.2f ms", g.cfg.Status(), ebiten.ActualFPS(), g.lastStepTime.Seconds()*1000)
	ebitenutil.DebugPrint(screen, msg)
}

// Layout reports the logical screen size used by Ebiten.
func (g *game) Layout(_, _ int) (int, int) { return g.cfg.Width, g.cfg.Height }

// Run opens the window and blocks until the run finishes or the window
// closes. It must be called from the main goroutine.
func Run(cfg Config) error {
	if cfg.Scale < 1 {
		cfg.Scale = 1
	}
	if cfg.StepsPerFrame < 1 {
		cfg.StepsPerFrame = 1
	}
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	ebiten.SetWindowTitle("diffusion2d")
	return ebiten.RunGame(&game{cfg: cfg})
}
