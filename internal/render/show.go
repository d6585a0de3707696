package render

import (
	"fmt"

	"github.com/Arafatk/glot"
)

// gnuplot is the part of *glot.Plot that Show drives.
type gnuplot interface {
	SetTitle(title string) error
	SetXLabel(label string) error
	SetYLabel(label string) error
	AddPointGroup(name string, style string, data interface{}) error
	Close() error
}

var newGnuplot = func() (gnuplot, error) {
	dimensions := 2
	persist := true
	debug := false
	plot, err := glot.NewPlot(dimensions, persist, debug)
	if err != nil {
		return nil, err
	}
	return plot, nil
}

// Show draws the series in a persistent gnuplot window. gnuplot has to be on
// PATH. Closing the plot waits for gnuplot to finish with the data and then
// removes glot's temporary data files; with an interactive terminal that
// means Show returns once the window is closed.
func Show(style Style, series ...Series) (err error) {
	plot, err := newGnuplot()
	if err != nil {
		return fmt.Errorf("render: gnuplot: %w", err)
	}
	defer func() {
		if cerr := plot.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("render: gnuplot: %w", cerr)
		}
	}()

	if err := plot.SetTitle(style.Title); err != nil {
		return fmt.Errorf("render: gnuplot: %w", err)
	}
	if err := plot.SetXLabel(style.XLabel); err != nil {
		return fmt.Errorf("render: gnuplot: %w", err)
	}
	if err := plot.SetYLabel(style.YLabel); err != nil {
		return fmt.Errorf("render: gnuplot: %w", err)
	}

	for i, s := range series {
		if len(s.XYs) == 0 {
			continue
		}
		name := s.Name
		if name == "" {
			name = fmt.Sprintf("series %d", i+1)
		}
		if err := plot.AddPointGroup(name, glotStyle(s.Mode), Columns(s)); err != nil {
			return fmt.Errorf("render: gnuplot %q: %w", name, err)
		}
	}

	return nil
}

// Columns returns the series as the {xs, ys} pair glot expects.
func Columns(s Series) [][]float64 {
	xs := make([]float64, len(s.XYs))
	ys := make([]float64, len(s.XYs))
	for i, pt := range s.XYs {
		xs[i], ys[i] = pt.X, pt.Y
	}
	return [][]float64{xs, ys}
}

func glotStyle(mode Mode) string {
	switch mode {
	case Points:
		return "points"
	case LinesPoints:
		return "linepoints"
	default:
		return "lines"
	}
}
