// Package output owns the benchmark's serialization collaborators: PNG and
// CSV snapshots of the concentration field, the runtime log, the progress
// bar, and the optional convergence chart and animation. The numerical core
// never imports it.
package output

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/crazy3lf/colorconv"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/usnistgov/phasefield-accelerator-benchmarks/diffusion"
)

// paletteSize trades palette memory for color resolution; HSV conversion is
// slow enough to precompute.
const paletteSize = 1024

var palette [paletteSize]color.RGBA

func init() {
	for i := range palette {
		c := float64(i) / float64(paletteSize-1)
		// cold-to-hot ramp: ambient maps to blue, source concentration to red
		hue := 240.0 * (1.0 - c)
		r, g, b, _ := colorconv.HSVToRGB(hue, 1, 1)
		palette[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
}

// shade maps a concentration in [0, max] onto the palette, clamping values
// that overshoot through source superposition.
func shade(v, max float64) color.RGBA {
	c := v / max
	if c < 0 {
		c = 0
	}
	if c > 1 {
		c = 1
	}
	return palette[int(c*float64(paletteSize-1))]
}

// RenderField rasterizes the whole padded field, halo included, with a step
// label in the corner. The returned image is reused for PNG snapshots, the
// animation frames, and the live viewer.
func RenderField(g *diffusion.Grid, step int) *image.RGBA {
	w, h := g.Padded()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for j := 0; j < h; j++ {
		row := g.Row(j)
		for i := 0; i < w; i++ {
			img.SetRGBA(i, j, shade(row[i], 1.0))
		}
	}
	drawLabel(img, fmt.Sprintf("step %d", step))
	return img
}

// drawLabel prints text in the top-left corner using the built-in bitmap font.
func drawLabel(img *image.RGBA, label string) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(4, 14),
	}
	d.DrawString(label)
}

// WritePNG encodes a rendered field to dir/diffusion.NNNNNNN.png.
func WritePNG(img image.Image, dir string, step int) error {
	path := filepath.Join(dir, fmt.Sprintf("diffusion.%07d.png", step))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
