// Package cli holds the flags and the render step shared by pieceswap and
// debugplot.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/HamletTheHamster/piece-swap-plotting/internal/config"
	"github.com/HamletTheHamster/piece-swap-plotting/internal/logging"
	"github.com/HamletTheHamster/piece-swap-plotting/internal/render"
	"github.com/HamletTheHamster/piece-swap-plotting/internal/runlog"
)

// Options are the flags both tools accept.
type Options struct {
	ConfigPath string
	Out        string
	Note       string
	Show       bool
	NoSave     bool
	Slide      bool
	Verbose    bool
}

func (o *Options) AddFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.ConfigPath, "config", "", "YAML file with figure and output settings")
	f.StringVar(&o.Out, "out", "plots", "root directory for figures and run logs")
	f.StringVar(&o.Note, "note", "", "note to append to the run folder name")
	f.BoolVar(&o.Show, "show", false, "open the chart in a gnuplot window")
	f.BoolVar(&o.NoSave, "no-save", false, "don't write figures or the run log")
	f.BoolVar(&o.Slide, "slide", false, "format figures for slide presentation")
	f.BoolVarP(&o.Verbose, "verbose", "v", false, "debug logging")
}

// Setup loads the config, applies any flags that were set on the command
// line over it and builds the logger.
func (o *Options) Setup(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return nil, nil, err
	}

	f := cmd.Flags()
	if f.Changed("out") {
		cfg.Output.Root = o.Out
	}
	if f.Changed("slide") {
		cfg.Figure.Slide = o.Slide
	}

	logger, err := logging.New(o.Verbose)
	if err != nil {
		return nil, nil, err
	}

	return cfg, logger, nil
}

// Run describes one figure to produce.
type Run struct {
	Name   string
	Style  render.Style
	Series []render.Series
	Log    *runlog.Log
	Now    time.Time
}

// Render saves the figure and the run log under the output root unless
// NoSave is set, then shows it if asked. It returns the run directory, empty
// when nothing was saved.
func (o *Options) Render(
	cfg *config.Config,
	logger *zap.Logger,
	r Run,
) (
	string, error,
) {

	var dir string

	if !o.NoSave {
		p, err := render.New(r.Style, r.Series...)
		if err != nil {
			return "", err
		}

		now := r.Now
		if now.IsZero() {
			now = time.Now()
		}
		dir = runlog.Dir(cfg.Output.Root, o.Note, now)

		paths, err := render.Save(p, r.Style, dir, r.Name)
		if err != nil {
			return dir, err
		}
		logger.Info("saved figure", zap.String("dir", dir), zap.Strings("files", paths))

		if r.Log != nil {
			for _, path := range paths {
				r.Log.Add("Figure: %s", path)
			}
			if err := r.Log.Write(dir); err != nil {
				return dir, err
			}
		}
	}

	if o.Show {
		if err := render.Show(r.Style, r.Series...); err != nil {
			return dir, fmt.Errorf("show: %w", err)
		}
		logger.Debug("opened gnuplot window")
	}

	return dir, nil
}
