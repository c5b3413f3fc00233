package output

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usnistgov/phasefield-accelerator-benchmarks/diffusion"
	"github.com/usnistgov/phasefield-accelerator-benchmarks/timer"
)

func readAll(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	recs, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return recs
}

func TestWriteCSVLayout(t *testing.T) {
	dir := t.TempDir()
	g := diffusion.NewGrid(4, 3, 1, 0.5, 0.5)
	g.Set(1, 1, 0.75) // interior origin cell

	require.NoError(t, WriteCSV(g, dir, 1234))
	recs := readAll(t, filepath.Join(dir, "diffusion.0001234.csv"))

	require.Len(t, recs, 1+4*3)
	assert.Equal(t, []string{"x", "y", "c"}, recs[0])
	assert.Equal(t, []string{"0", "0", "0.75"}, recs[1])
	// last interior cell sits at ((nx-1)·dx, (ny-1)·dy)
	assert.Equal(t, []string{"1.5", "1", "0"}, recs[len(recs)-1])
}

func TestWriteCSVBadDirectory(t *testing.T) {
	g := diffusion.NewGrid(2, 2, 1, 1, 1)
	err := WriteCSV(g, filepath.Join(t.TempDir(), "missing"), 0)
	assert.Error(t, err)
}

func TestRunlogRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runlog.csv")
	rl, err := NewRunlog(path)
	require.NoError(t, err)

	sw := timer.New()
	sw.Conv = 2 * time.Second
	require.NoError(t, rl.Write(0, 0, 0, sw))
	require.NoError(t, rl.Write(10000, 2500.0, 0.0033, sw))
	require.NoError(t, rl.Close())

	recs := readAll(t, path)
	require.Len(t, recs, 3)
	assert.Equal(t,
		[]string{"iter", "sim_time", "wrss", "conv_time", "step_time", "IO_time", "soln_time", "run_time"},
		recs[0])
	assert.Equal(t, "0", recs[1][0])
	assert.Equal(t, "10000", recs[2][0])
	assert.Equal(t, "2500.000000", recs[2][1])
	assert.Equal(t, "2.000000", recs[2][3])
}

func TestNewRunlogBadPath(t *testing.T) {
	_, err := NewRunlog(filepath.Join(t.TempDir(), "missing", "runlog.csv"))
	assert.Error(t, err)
}
