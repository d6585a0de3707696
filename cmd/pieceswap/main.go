// Command pieceswap prints the piece-swap curve parameters for K, w_end and
// w_switch and plots the curve.
package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/HamletTheHamster/piece-swap-plotting/internal/cli"
	"github.com/HamletTheHamster/piece-swap-plotting/internal/pieceswap"
	"github.com/HamletTheHamster/piece-swap-plotting/internal/render"
	"github.com/HamletTheHamster/piece-swap-plotting/internal/runlog"
)

const usage = "Usage: pieceswap K w_end w_switch"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts cli.Options
	var samples int
	var check bool

	cmd := &cobra.Command{
		Use:          "pieceswap K w_end w_switch",
		Short:        "Compute and plot the piece-swap curve parameters",
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 3 {
				fmt.Fprintln(cmd.OutOrStdout(), usage)
				return nil
			}

			cfg, logger, err := opts.Setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			if cmd.Flags().Changed("samples") {
				cfg.Samples = samples
			}
			if err := cfg.CheckSamples(); err != nil {
				return err
			}

			in, err := parseInputs(args)
			if err != nil {
				return err
			}

			var log runlog.Log
			p, err := solve(cmd.OutOrStdout(), logger, in, &log)
			if err != nil {
				return err
			}

			if check {
				if err := crossCheck(cmd.OutOrStdout(), in, p, &log); err != nil {
					return err
				}
			}

			pts, err := p.Curve().Sample(cfg.Samples)
			if err != nil {
				return fmt.Errorf("sample curve: %w", err)
			}
			logger.Debug("sampled curve",
				zap.Int("points", len(pts)),
				zap.Float64("from", pts[0].X),
				zap.Float64("to", pts[len(pts)-1].X),
			)

			title := fmt.Sprintf("K=%g, w_end=%g, w_switch=%g", in.K, in.WEnd, in.WSwitch)
			_, err = opts.Render(cfg, logger, cli.Run{
				Name:   "pieceswap",
				Style:  cfg.Style(title, "x", "y"),
				Series: []render.Series{{Name: "f(x)", XYs: pts, Mode: render.Lines}},
				Log:    &log,
			})
			return err
		},
	}

	opts.AddFlags(cmd)
	// Flags go before K w_end w_switch so a negative value parses as a number.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().IntVar(&samples, "samples", pieceswap.DefaultSamples, "number of points sampled along the curve")
	cmd.Flags().BoolVar(&check, "check", false, "cross-check the closed form with a numeric fit")

	return cmd
}

func parseInputs(args []string) (pieceswap.Inputs, error) {
	var v [3]float64
	for i, arg := range args {
		f, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return pieceswap.Inputs{}, fmt.Errorf("argument %d: %w", i+1, err)
		}
		v[i] = f
	}
	return pieceswap.Inputs{K: v[0], WEnd: v[1], WSwitch: v[2]}, nil
}

func solve(
	w io.Writer,
	logger *zap.Logger,
	in pieceswap.Inputs,
	log *runlog.Log,
) (
	pieceswap.Params, error,
) {

	log.Add("Inputs: K=%v w_end=%v w_switch=%v", in.K, in.WEnd, in.WSwitch)

	p, err := pieceswap.Compute(in)
	if err != nil {
		return p, err
	}

	if !in.Supported() {
		logger.Warn("w_switch >= w_end is unsupported, xa is negative",
			zap.Float64("w_end", in.WEnd),
			zap.Float64("w_switch", in.WSwitch),
			zap.Float64("xa", p.Xa),
		)
		log.Add("Warning: w_switch >= w_end, xa is negative")
	}

	for _, line := range p.Lines() {
		fmt.Fprintln(w, line)
		log.Add("%s", line)
	}
	log.Add("Exact: m=%v n=%v xa=%v xb=%v k2=%v", p.M, p.N, p.Xa, p.Xb, p.K2)

	return p, nil
}

// crossCheck refines a perturbed copy of p numerically and reports how far
// the fit lands from the closed form.
func crossCheck(
	w io.Writer,
	in pieceswap.Inputs,
	p pieceswap.Params,
	log *runlog.Log,
) error {

	guess := p
	guess.M *= 1.05
	guess.Xa *= 0.95
	guess.Xb *= 1.05
	guess.K2 *= 0.95
	guess.N *= 1.05

	fit, err := pieceswap.Refine(in, guess)
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}

	deviation := 0.
	for _, d := range [][2]float64{
		{p.M, fit.M}, {p.N, fit.N}, {p.Xa, fit.Xa}, {p.Xb, fit.Xb}, {p.K2, fit.K2},
	} {
		deviation = math.Max(deviation, math.Abs(d[0]-d[1]))
	}

	line := fmt.Sprintf("check: numeric fit within %.3g of closed form", deviation)
	fmt.Fprintln(w, line)
	log.Add("%s", line)

	return nil
}
