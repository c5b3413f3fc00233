// Command diffusion2d benchmarks an explicit finite-difference solver for
// the 2-D semi-infinite diffusion equation. It writes a series of PNG
// snapshots of the concentration field, a final CSV dump, and runlog.csv
// tabulating the iteration counter, simulated time, residual against the
// analytical solution, and wall time spent per phase (convolution, explicit
// update, I/O, solution check).
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"path/filepath"
	"time"

	"github.com/usnistgov/phasefield-accelerator-benchmarks/diffusion"
	"github.com/usnistgov/phasefield-accelerator-benchmarks/output"
	"github.com/usnistgov/phasefield-accelerator-benchmarks/timer"
	"github.com/usnistgov/phasefield-accelerator-benchmarks/viewer"
)

// runner holds the full benchmark state and advances it one timestep at a
// time, so the headless loop and the live viewer share one code path.
type runner struct {
	old, next, lap *diffusion.Grid
	mask           *diffusion.Mask
	bc             diffusion.BoundaryTable
	clk            diffusion.Clock
	sw             *timer.Stopwatch
	runlog         *output.Runlog
	progress       *output.Progress

	steps, checks int
	tiles         int
	d, dt         float64
	outdir        string
	keepFrames    bool

	step      int
	rss       float64
	frames    []*image.RGBA
	simTimes  []float64
	residuals []float64
}

// advance runs one timestep: refresh the halo, convolve, integrate, then on
// check intervals snapshot the field, compare against the analytical
// solution, and log. Reports false once all steps are done.
func (r *runner) advance() (bool, error) {
	if r.step >= r.steps {
		return false, nil
	}
	r.progress.Update(r.step)
	r.step++

	t := time.Now()
	diffusion.ApplyBoundary(r.old, r.bc)
	diffusion.Convolve(r.old, r.lap, r.mask, r.tiles)
	r.sw.Conv += time.Since(t)

	t = time.Now()
	diffusion.Step(r.old, r.lap, r.next, r.d, r.dt, r.tiles, &r.clk)
	r.sw.Step += time.Since(t)

	if r.step%r.checks == 0 {
		t = time.Now()
		img := output.RenderField(r.next, r.step)
		if err := output.WritePNG(img, r.outdir, r.step); err != nil {
			return false, err
		}
		if r.keepFrames {
			r.frames = append(r.frames, img)
		}
		r.sw.File += time.Since(t)

		t = time.Now()
		r.rss = diffusion.Residual(r.next, r.bc, r.clk.Elapsed, r.d, r.tiles)
		r.sw.Soln += time.Since(t)
		r.simTimes = append(r.simTimes, r.clk.Elapsed)
		r.residuals = append(r.residuals, r.rss)

		if err := r.runlog.Write(r.step, r.clk.Elapsed, r.rss, r.sw); err != nil {
			return false, err
		}
	}

	r.old.Swap(r.next)
	return r.step < r.steps, nil
}

func main() {
	flag.Parse()

	nx, ny := *nxFlag, *nyFlag
	dx, dy := *dxFlag, *dyFlag
	d, linStab := *diffusivityFlag, *linStabFlag
	steps, checks := *stepsFlag, *checksFlag

	if nx <= 0 || ny <= 0 {
		log.Fatalf("grid dimensions must be positive, got %dx%d", nx, ny)
	}
	if dx <= 0 || dy <= 0 {
		log.Fatalf("cell spacing must be positive, got dx=%g dy=%g", dx, dy)
	}
	if d <= 0 {
		log.Fatalf("diffusivity must be positive, got %g", d)
	}
	if linStab <= 0 || linStab >= 1 {
		log.Fatalf("stability factor must lie in (0, 1), got %g", linStab)
	}
	if steps <= 0 || checks <= 0 || checks > steps {
		log.Fatalf("need 0 < checks <= steps, got steps=%d checks=%d", steps, checks)
	}

	code, err := diffusion.ParseStencilCode(*stencilFlag)
	if err != nil {
		log.Fatalf("stencil selection: %v", err)
	}
	mask, err := diffusion.NewMask(dx, dy, code)
	if err != nil {
		log.Fatalf("stencil selection: %v", err)
	}

	if *cpuProfileFlag != "" {
		stop, err := startCPUProfile(*cpuProfileFlag)
		if err != nil {
			log.Fatalf("CPU profile: %v", err)
		}
		defer stop()
	}

	sw := timer.New()
	dt := diffusion.Timestep(dx, dy, d, linStab)
	nm := mask.Radius()

	r := &runner{
		old:        diffusion.NewGrid(nx, ny, nm, dx, dy),
		next:       diffusion.NewGrid(nx, ny, nm, dx, dy),
		lap:        diffusion.NewGrid(nx, ny, nm, dx, dy),
		mask:       mask,
		bc:         diffusion.NewBoundaryTable(),
		sw:         sw,
		steps:      steps,
		checks:     checks,
		tiles:      *tilesFlag,
		d:          d,
		dt:         dt,
		outdir:     *outdirFlag,
		keepFrames: *movieFlag,
		progress:   output.NewProgress(steps),
	}

	t := time.Now()
	diffusion.ApplyInitial(r.old, r.bc)
	sw.Step += time.Since(t)

	t = time.Now()
	if err := output.WritePNG(output.RenderField(r.old, 0), r.outdir, 0); err != nil {
		log.Fatalf("initial snapshot: %v", err)
	}
	r.runlog, err = output.NewRunlog(filepath.Join(r.outdir, "runlog.csv"))
	if err != nil {
		log.Fatalf("runlog: %v", err)
	}
	sw.File += time.Since(t)
	defer r.runlog.Close()

	if err := r.runlog.Write(0, 0, 0, sw); err != nil {
		log.Fatalf("runlog: %v", err)
	}

	log.Printf("%s stencil on %dx%d grid, D=%g, dt=%g, %d steps", code, nx, ny, d, dt, steps)

	if *viewFlag {
		err = viewer.Run(viewer.Config{
			Width:         nx + 2*nm,
			Height:        ny + 2*nm,
			Scale:         *viewScaleFlag,
			StepsPerFrame: 32,
			Advance:       r.advance,
			Render:        func() *image.RGBA { return output.RenderField(r.old, r.step) },
			Status: func() string {
				return fmt.Sprintf("step %d/%d  t=%.2f  wrss=%.3g", r.step, r.steps, r.clk.Elapsed, r.rss)
			},
		})
	} else {
		for {
			more, aerr := r.advance()
			if aerr != nil {
				err = aerr
				break
			}
			if !more {
				break
			}
		}
	}
	if err != nil {
		log.Fatalf("run aborted at step %d: %v", r.step, err)
	}

	t = time.Now()
	if err := output.WriteCSV(r.old, r.outdir, r.step); err != nil {
		log.Fatalf("final CSV: %v", err)
	}
	if *chartFlag {
		if err := output.WriteChart(filepath.Join(r.outdir, "residual.png"), r.simTimes, r.residuals); err != nil {
			log.Fatalf("chart: %v", err)
		}
	}
	if *movieFlag {
		if err := output.WriteMovie(filepath.Join(r.outdir, "diffusion.avi"), r.frames, 8); err != nil {
			log.Fatalf("movie: %v", err)
		}
	}
	sw.File += time.Since(t)

	log.Printf("completed %d steps, final wrss=%.6g", r.step, r.rss)
	log.Printf("timings: conv=%s step=%s IO=%s soln=%s total=%s",
		sw.Conv, sw.Step, sw.File, sw.Soln, sw.Total())
}
