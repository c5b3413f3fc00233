package output

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usnistgov/phasefield-accelerator-benchmarks/diffusion"
)

func TestWriteChartRendersPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "residual.png")
	simTimes := []float64{2500, 5000, 7500, 10000}
	residuals := []float64{0.008, 0.005, 0.004, 0.0033}

	require.NoError(t, WriteChart(path, simTimes, residuals))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriteChartSkipsDegenerateInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "residual.png")

	assert.NoError(t, WriteChart(path, []float64{1}, []float64{0.5}))
	assert.NoError(t, WriteChart(path, []float64{1, 2}, []float64{0.5}))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestWriteMovieAssemblesFrames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diffusion.avi")
	g := diffusion.NewGrid(16, 16, 1, 1, 1)
	frames := []*image.RGBA{
		RenderField(g, 0),
		RenderField(g, 100),
		RenderField(g, 200),
	}

	require.NoError(t, WriteMovie(path, frames, 8))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestWriteMovieNoFrames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diffusion.avi")
	require.NoError(t, WriteMovie(path, nil, 8))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}
