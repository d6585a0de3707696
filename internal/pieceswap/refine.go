package pieceswap

import (
	"errors"
	"fmt"
	"math"

	"github.com/maorshutman/lm"
	"gonum.org/v1/gonum/floats"
)

var ErrNoConvergence = errors.New("pieceswap: fit did not converge")

// RefineTol is the residual norm Refine accepts as a solution.
const RefineTol = 1e-6

// Residuals evaluates the matching conditions of the curve for p:
//
//	slope of the hyperbola at x=0 is -w_end
//	slope of the hyperbola at xa is -w_switch
//	slope of k2/x at xa is -w_switch
//	k2/x - n meets the hyperbola at xa
//	k2/(x+n) meets the hyperbola at xb
//
// All five are zero for the closed form.
func Residuals(in Inputs, p Params) []float64 {
	dst := make([]float64, 5)
	residuals(in, dst, []float64{p.M, p.Xa, p.Xb, p.K2, p.N})
	return dst
}

func residuals(in Inputs, dst, x []float64) {
	m, xa, xb, k2, n := x[0], x[1], x[2], x[3], x[4]

	dst[0] = in.K/(m*m) - in.WEnd
	dst[1] = in.K/math.Pow(xa+m, 2) - in.WSwitch
	dst[2] = k2/(xa*xa) - in.WSwitch
	dst[3] = (k2/xa - n) - (in.K/(xa+m) - m)
	dst[4] = (in.K/(xb+m) - m) - k2/(xb+n)
}

// Refine solves the matching conditions numerically starting from guess.
// It is a cross-check on Compute, not a replacement for it.
func Refine(
	in Inputs,
	guess Params,
) (
	Params, error,
) {

	f := func(dst, x []float64) {
		residuals(in, dst, x)
	}

	jacobian := lm.NumJac{Func: f}

	// Solve for fit
	toBeSolved := lm.LMProblem{
		Dim:        5,
		Size:       5,
		Func:       f,
		Jac:        jacobian.Jac,
		InitParams: []float64{guess.M, guess.Xa, guess.Xb, guess.K2, guess.N},
		Tau:        1e-6,
		Eps1:       1e-12,
		Eps2:       1e-12,
	}

	results, err := lm.LM(toBeSolved, &lm.Settings{Iterations: 200, ObjectiveTol: 1e-20})
	if err != nil {
		return Params{}, fmt.Errorf("%w: %v", ErrNoConvergence, err)
	}

	x := results.X
	p := Params{K: in.K, M: x[0], Xa: x[1], Xb: x[2], K2: x[3], N: x[4]}

	if norm := floats.Norm(Residuals(in, p), 2); !(norm < RefineTol) {
		return p, fmt.Errorf("%w: residual norm %g", ErrNoConvergence, norm)
	}

	return p, nil
}
