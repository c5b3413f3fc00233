package main

import "flag"

// Command-line flags controlling grid geometry, material parameters, runtime
// behavior, and output. Defaults reproduce the reference benchmark
// configuration.
var (
	// nxFlag and nyFlag size the interior of the simulation grid.
	nxFlag = flag.Int("nx", 512, "interior grid cells along x")
	nyFlag = flag.Int("ny", 512, "interior grid cells along y")

	// stencilFlag selects the Laplacian discretization.
	stencilFlag = flag.Int("stencil", 53, "stencil code: 53 five-point, 93 nine-point, 95 nine-point wide")

	// dxFlag and dyFlag set the physical cell spacing.
	dxFlag = flag.Float64("dx", 0.5, "cell spacing along x")
	dyFlag = flag.Float64("dy", 0.5, "cell spacing along y")

	// diffusivityFlag is the material diffusion coefficient D.
	diffusivityFlag = flag.Float64("diffusivity", 0.00625, "diffusion coefficient")

	// linStabFlag scales the timestep below the von Neumann stability bound.
	linStabFlag = flag.Float64("linstab", 0.1, "linear stability factor (0-1)")

	// stepsFlag and checksFlag control run length and checkpoint cadence.
	stepsFlag  = flag.Int("steps", 100000, "total timesteps")
	checksFlag = flag.Int("checks", 10000, "steps between residual checks and snapshots")

	// tilesFlag tunes parallel scheduling granularity, not results.
	tilesFlag = flag.Int("tiles", 16, "parallel work items per phase (0 for a GOMAXPROCS-based default)")

	// outdirFlag is where snapshots, logs, the chart, and the movie land.
	outdirFlag = flag.String("outdir", ".", "output directory")

	// chartFlag renders residual.png from the runlog checkpoints.
	chartFlag = flag.Bool("chart", true, "render a residual-vs-time chart after the run")

	// movieFlag assembles snapshot frames into diffusion.avi.
	movieFlag = flag.Bool("movie", false, "assemble snapshots into an AVI animation after the run")

	// viewFlag opens a live window instead of running headless.
	viewFlag = flag.Bool("view", false, "display the field in a window while running")

	// viewScaleFlag enlarges the live window.
	viewScaleFlag = flag.Int("view-scale", 1, "window scale factor for -view")

	// cpuProfileFlag captures a pprof CPU profile of the run.
	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile to this file")
)
