package output

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Progress renders a 20-point bar across a fixed number of steps, with a
// timestamp on each end. Call Update near the top of the timestepping loop
// with the zero-based step index.
type Progress struct {
	steps int
	start time.Time
	out   io.Writer
}

// NewProgress returns a bar writing to stdout.
func NewProgress(steps int) *Progress {
	return &Progress{steps: steps, start: time.Now(), out: os.Stdout}
}

// NewProgressWriter returns a bar writing to w; tests use this.
func NewProgressWriter(steps int, w io.Writer) *Progress {
	return &Progress{steps: steps, start: time.Now(), out: w}
}

// Update emits the opening timestamp on the first step, a dot every 5% of
// the run, and the closing timestamp plus elapsed seconds on the last step.
// A single-step run emits both markers from the one call.
func (p *Progress) Update(step int) {
	if step == 0 {
		fmt.Fprintf(p.out, "%s [", p.start.Format(time.Stamp))
	}
	if step == p.steps-1 {
		now := time.Now()
		fmt.Fprintf(p.out, "•] %s\n%d seconds elapsed\n", now.Format(time.Stamp), int(now.Sub(p.start).Seconds()))
	} else if step > 0 && p.steps >= 20 && (20*step)%p.steps == 0 {
		fmt.Fprint(p.out, "• ")
	}
}
