// Command debugplot plots a debug printout: a file of integers, one per line,
// read as alternating x and y values.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/HamletTheHamster/piece-swap-plotting/internal/cli"
	"github.com/HamletTheHamster/piece-swap-plotting/internal/debugprint"
	"github.com/HamletTheHamster/piece-swap-plotting/internal/render"
	"github.com/HamletTheHamster/piece-swap-plotting/internal/runlog"
)

const usage = "Usage: debugplot PATH"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts cli.Options
	var points bool

	cmd := &cobra.Command{
		Use:          "debugplot PATH",
		Short:        "Plot alternating x/y integers from a debug printout",
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				fmt.Fprintln(cmd.OutOrStdout(), usage)
				return nil
			}
			path := args[0]

			cfg, logger, err := opts.Setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			values, err := debugprint.Read(path)
			if err != nil {
				return err
			}

			xs, ys := debugprint.Split(values)
			pts := debugprint.Pairs(xs, ys)
			if len(values)%2 != 0 {
				logger.Debug("dropped unpaired trailing value",
					zap.String("file", path),
					zap.Int("value", values[len(values)-1]),
				)
			}
			logger.Debug("read debug printout", zap.String("file", path), zap.Int("points", len(pts)))

			var log runlog.Log
			log.Add("Debug printout: %s", path)
			log.Add("Values: %d", len(values))
			log.Add("Points: %d", len(pts))

			mode := render.Lines
			if points {
				mode = render.LinesPoints
			}

			name := filepath.Base(path)
			_, err = opts.Render(cfg, logger, cli.Run{
				Name:   "debugplot",
				Style:  cfg.Style(name, "x", "y"),
				Series: []render.Series{{Name: name, XYs: pts, Mode: mode}},
				Log:    &log,
			})
			return err
		},
	}

	opts.AddFlags(cmd)
	cmd.Flags().BoolVar(&points, "points", false, "mark each sample as well as joining them")

	return cmd
}
