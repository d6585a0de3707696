package pieceswap

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot/plotter"
)

var ErrDivideByZero = errors.New("pieceswap: division by zero")

// DefaultSamples is the number of points Sample takes when plotting.
const DefaultSamples = 1000

// Curve is the piecewise function
//
//	k2/x - n       x < xa
//	K/(x+m) - m    xa <= x < xb
//	k2/(x+n)       x >= xb
type Curve struct {
	p Params
}

func (c Curve) At(x float64) (float64, error) {
	p := c.p

	switch {
	case x < p.Xa:
		if x == 0 {
			return 0, fmt.Errorf("%w at x=%v", ErrDivideByZero, x)
		}
		return p.K2/x - p.N, nil
	case x < p.Xb:
		if x+p.M == 0 {
			return 0, fmt.Errorf("%w at x=%v", ErrDivideByZero, x)
		}
		return p.K/(x+p.M) - p.M, nil
	default:
		if x+p.N == 0 {
			return 0, fmt.Errorf("%w at x=%v", ErrDivideByZero, x)
		}
		return p.K2 / (x + p.N), nil
	}
}

// Domain returns the plotting range: from f(2*xb) up to 2*xb.
func (c Curve) Domain() (float64, float64, error) {
	end := 2 * c.p.Xb
	start, err := c.At(end)
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// Sample evaluates the curve at n evenly spaced points over Domain, start
// included and end excluded.
func (c Curve) Sample(n int) (plotter.XYs, error) {
	if n < 1 {
		return nil, fmt.Errorf("pieceswap: sample count must be positive, got %d", n)
	}

	start, end, err := c.Domain()
	if err != nil {
		return nil, err
	}

	xs := make([]float64, n+1)
	floats.Span(xs, start, end)

	pts := make(plotter.XYs, n)
	for i := range pts {
		y, err := c.At(xs[i])
		if err != nil {
			return nil, err
		}
		pts[i].X = xs[i]
		pts[i].Y = y
	}

	return pts, nil
}
