package trackers

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	ts "github.com/robonotes/gonotes/timestep"
)

// ReturnPlot tracks the episodic return in an experiment and saves it
// as a line plot rather than raw data. It accumulates returns exactly
// like the Return Tracker; Save draws return against episode number
// and writes the plot as a PNG.
type ReturnPlot struct {
	returns  *Return
	filename string
}

// NewReturnPlot creates and returns a new *ReturnPlot Tracker which
// will save its plot at the specified location filename
func NewReturnPlot(filename string) *ReturnPlot {
	return &ReturnPlot{
		returns:  NewReturn(""),
		filename: filename,
	}
}

// Track tracks the rewards seen on a timestep, accumulating the
// episodic return of each finished episode
func (r *ReturnPlot) Track(step ts.TimeStep) {
	r.returns.Track(step)
}

// Save draws the episodic returns tracked so far and saves the plot
// to disk
func (r *ReturnPlot) Save() error {
	returns := r.returns.Returns()

	p := plot.New()
	p.Title.Text = "Episodic return"
	p.X.Label.Text = "Episode"
	p.Y.Label.Text = "Return"

	points := make(plotter.XYs, len(returns))
	for i, value := range returns {
		points[i] = plotter.XY{
			X: float64(i),
			Y: value,
		}
	}

	line, err := plotter.NewLine(points)
	if err != nil {
		return fmt.Errorf("save: could not plot returns: %w", err)
	}
	line.Color = plotutil.Color(0)
	p.Add(line)

	if err := p.Save(8*vg.Inch, 8*vg.Inch, r.filename); err != nil {
		return fmt.Errorf("save: could not save plot: %w", err)
	}
	return nil
}
