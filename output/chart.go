package output

import (
	"fmt"
	"os"

	"github.com/wcharczuk/go-chart/v2"
)

// WriteChart plots the residual against simulated time and renders the
// result to a PNG file. With fewer than two checkpoints there is nothing to
// plot and the call is a no-op.
func WriteChart(path string, simTimes, residuals []float64) error {
	if len(simTimes) < 2 || len(simTimes) != len(residuals) {
		return nil
	}
	graph := chart.Chart{
		Width:  800,
		Height: 400,
		XAxis:  chart.XAxis{Name: "simulated time"},
		YAxis:  chart.YAxis{Name: "mean squared residual"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "wrss",
				XValues: simTimes,
				YValues: residuals,
				Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 2.0},
			},
		},
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := graph.Render(chart.PNG, f); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
