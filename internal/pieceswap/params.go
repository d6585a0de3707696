// Package pieceswap computes the parameters of the piece-swap curve: a
// hyperbola (x+m)(y+m) = K whose ends are replaced by k2/x pieces once the
// slope reaches w_switch.
package pieceswap

import (
	"errors"
	"fmt"
	"math"
	"math/big"
)

var (
	ErrInvalidInput = errors.New("pieceswap: inputs must be positive and finite")
	ErrDegenerate   = errors.New("pieceswap: degenerate parameters")
)

// Inputs are the three command line values K, w_end and w_switch.
type Inputs struct {
	K       float64
	WEnd    float64
	WSwitch float64
}

// Supported reports whether xa comes out positive. The formulas are still
// evaluated for w_switch >= w_end, but the curve is not the intended shape.
func (in Inputs) Supported() bool {
	return in.WSwitch < in.WEnd
}

// Params are the derived curve parameters. K is carried along so a Curve can
// be built from Params alone.
type Params struct {
	K  float64
	M  float64
	N  float64
	Xa float64
	Xb float64
	K2 float64
}

func Compute(
	in Inputs,
) (
	Params, error,
) {

	for _, v := range []struct {
		name  string
		value float64
	}{
		{"K", in.K},
		{"w_end", in.WEnd},
		{"w_switch", in.WSwitch},
	} {
		if !(v.value > 0) || math.IsInf(v.value, 0) {
			return Params{}, fmt.Errorf("%w: %s=%v", ErrInvalidInput, v.name, v.value)
		}
	}

	// (x+m)(y+m) = K, y' = -K/(x+m)^2
	m := math.Sqrt(in.K / in.WEnd)
	xa := math.Sqrt(in.K/in.WSwitch) - m
	if xa+m == 0 {
		return Params{}, fmt.Errorf("%w: xa+m is zero", ErrDegenerate)
	}
	xb := in.K/(xa+m) - m
	k2 := in.WSwitch * xa * xa
	if xa == 0 {
		return Params{}, fmt.Errorf("%w: xa is zero (w_switch == w_end)", ErrDegenerate)
	}
	n := k2/xa - xb

	p := Params{K: in.K, M: m, N: n, Xa: xa, Xb: xb, K2: k2}
	for _, v := range []float64{m, n, xa, xb, k2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Params{}, fmt.Errorf("%w: %+v", ErrDegenerate, p)
		}
	}

	return p, nil
}

// Lines formats the parameters the way the solver prints them, each value
// truncated toward zero to an exact integer of any size.
func (p Params) Lines() []string {
	return []string{
		"xa=" + truncate(p.Xa),
		"xb=" + truncate(p.Xb),
		"m =" + truncate(p.M),
		"n =" + truncate(p.N),
		"k2=" + truncate(p.K2),
	}
}

func truncate(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprint(v)
	}
	i, _ := new(big.Float).SetFloat64(v).Int(nil)
	return i.String()
}

func (p Params) Curve() Curve {
	return Curve{p: p}
}
