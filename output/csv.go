package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/usnistgov/phasefield-accelerator-benchmarks/diffusion"
	"github.com/usnistgov/phasefield-accelerator-benchmarks/timer"
)

// WriteCSV dumps the interior of the field as x,y,c rows with physical
// coordinates, to dir/diffusion.NNNNNNN.csv.
func WriteCSV(g *diffusion.Grid, dir string, step int) error {
	path := filepath.Join(dir, fmt.Sprintf("diffusion.%07d.csv", step))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"x", "y", "c"}); err != nil {
		return err
	}
	nx, ny := g.Interior()
	nm := g.Halo()
	dx, dy := g.Spacing()
	for j := 0; j < ny; j++ {
		row := g.Row(j + nm)
		y := strconv.FormatFloat(dy*float64(j), 'f', -1, 64)
		for i := 0; i < nx; i++ {
			rec := []string{
				strconv.FormatFloat(dx*float64(i), 'f', -1, 64),
				y,
				strconv.FormatFloat(row[i+nm], 'g', -1, 64),
			}
			if err := w.Write(rec); err != nil {
				return err
			}
		}
	}
	w.Flush()
	return w.Error()
}

// Runlog appends one row per check interval: iteration counter, simulated
// time, residual, the four phase accumulators, and total wall time, all in
// seconds.
type Runlog struct {
	f *os.File
	w *csv.Writer
}

// NewRunlog creates the log file and writes its header. An unwritable
// destination is a fatal setup condition for the caller.
func NewRunlog(path string) (*Runlog, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	r := &Runlog{f: f, w: csv.NewWriter(f)}
	header := []string{"iter", "sim_time", "wrss", "conv_time", "step_time", "IO_time", "soln_time", "run_time"}
	if err := r.w.Write(header); err != nil {
		f.Close()
		return nil, err
	}
	r.w.Flush()
	return r, r.w.Error()
}

// Write appends one checkpoint row and flushes it so a crashed run still
// leaves a usable log.
func (r *Runlog) Write(step int, simTime, rss float64, sw *timer.Stopwatch) error {
	rec := []string{
		strconv.Itoa(step),
		strconv.FormatFloat(simTime, 'f', 6, 64),
		strconv.FormatFloat(rss, 'g', 8, 64),
		strconv.FormatFloat(sw.Conv.Seconds(), 'f', 6, 64),
		strconv.FormatFloat(sw.Step.Seconds(), 'f', 6, 64),
		strconv.FormatFloat(sw.File.Seconds(), 'f', 6, 64),
		strconv.FormatFloat(sw.Soln.Seconds(), 'f', 6, 64),
		strconv.FormatFloat(sw.Total().Seconds(), 'f', 6, 64),
	}
	if err := r.w.Write(rec); err != nil {
		return err
	}
	r.w.Flush()
	return r.w.Error()
}

// Close flushes and closes the log file.
func (r *Runlog) Close() error {
	r.w.Flush()
	if err := r.w.Error(); err != nil {
		r.f.Close()
		return err
	}
	return r.f.Close()
}
