package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gonum.org/v1/plot/plotter"

	"github.com/HamletTheHamster/piece-swap-plotting/internal/config"
	"github.com/HamletTheHamster/piece-swap-plotting/internal/render"
	"github.com/HamletTheHamster/piece-swap-plotting/internal/runlog"
)

func parse(t *testing.T, args ...string) (*Options, *cobra.Command) {
	t.Helper()
	var opts Options
	cmd := &cobra.Command{Use: "test"}
	opts.AddFlags(cmd)
	require.NoError(t, cmd.Flags().Parse(args))
	return &opts, cmd
}

func TestSetup_FlagsOverrideConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  root: from-file\nfigure:\n  slide: true\n"), 0o644))

	opts, cmd := parse(t, "--config", path)
	cfg, logger, err := opts.Setup(cmd)
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.Equal(t, "from-file", cfg.Output.Root)
	assert.True(t, cfg.Figure.Slide)

	opts, cmd = parse(t, "--config", path, "--out", "flag-root", "--slide=false")
	cfg, _, err = opts.Setup(cmd)
	require.NoError(t, err)
	assert.Equal(t, "flag-root", cfg.Output.Root)
	assert.False(t, cfg.Figure.Slide)
}

func TestRender_SavesIntoRunDir(t *testing.T) {
	opts, _ := parse(t, "--note", "unit")
	cfg := config.DefaultConfig()
	cfg.Output.Root = t.TempDir()

	now := time.Date(2025, time.January, 2, 3, 4, 5, 0, time.UTC)
	var log runlog.Log
	log.Add("hello")

	dir, err := opts.Render(cfg, zap.NewNop(), Run{
		Name:   "fig",
		Style:  cfg.Style("t", "x", "y"),
		Series: []render.Series{{XYs: plotter.XYs{{X: 1, Y: 1}, {X: 2, Y: 4}}}},
		Log:    &log,
		Now:    now,
	})
	require.NoError(t, err)
	assert.Equal(t, runlog.Dir(cfg.Output.Root, "unit", now), dir)
	assert.FileExists(t, filepath.Join(dir, "fig.png"))

	data, err := os.ReadFile(filepath.Join(dir, runlog.FileName))
	require.NoError(t, err)
	assert.Equal(t, "hello\nFigure: "+filepath.Join(dir, "fig.png")+"\n", string(data))
}

func TestRender_NoSave(t *testing.T) {
	opts, _ := parse(t, "--no-save")
	cfg := config.DefaultConfig()
	cfg.Output.Root = t.TempDir()

	dir, err := opts.Render(cfg, zap.NewNop(), Run{Name: "fig", Style: cfg.Style("", "", "")})
	require.NoError(t, err)
	assert.Empty(t, dir)

	entries, err := os.ReadDir(cfg.Output.Root)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
