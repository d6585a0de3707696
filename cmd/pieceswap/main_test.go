package main

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HamletTheHamster/piece-swap-plotting/internal/pieceswap"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func files(t *testing.T, root string) []string {
	t.Helper()
	var found []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			found = append(found, filepath.Base(path))
		}
		return nil
	})
	require.NoError(t, err)
	return found
}

func TestWrongArgCountPrintsUsage(t *testing.T) {
	for _, args := range [][]string{{}, {"100", "1"}, {"1", "2", "3", "4"}} {
		out := t.TempDir()
		stdout, err := execute(t, append([]string{"--out", out}, args...)...)
		require.NoError(t, err)
		assert.Equal(t, usage+"\n", stdout)
		assert.Empty(t, files(t, out))
	}
}

func TestPrintsParametersAndSavesFigure(t *testing.T) {
	out := t.TempDir()
	stdout, err := execute(t, "--out", out, "--note", "test", "--samples", "50", "100", "1", "4")
	require.NoError(t, err)

	assert.Equal(t, "xa=-5\nxb=10\nm =10\nn =-30\nk2=100\n", stdout)
	assert.ElementsMatch(t, []string{"pieceswap.png", "log.txt"}, files(t, out))
}

func TestRunLogRecordsParameters(t *testing.T) {
	out := t.TempDir()
	_, err := execute(t, "--out", out, "--samples", "20", "100", "25", "4")
	require.NoError(t, err)

	var logPath string
	_ = filepath.WalkDir(out, func(path string, d fs.DirEntry, err error) error {
		if err == nil && d.Name() == "log.txt" {
			logPath = path
		}
		return nil
	})
	require.NotEmpty(t, logPath)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	log := string(data)
	assert.Contains(t, log, "Inputs: K=100 w_end=25 w_switch=4\n")
	assert.Contains(t, log, "xa=3\nxb=18\nm =2\nn =-6\nk2=36\n")
	assert.Contains(t, log, "pieceswap.png")
	assert.NotContains(t, log, "Warning")
}

func TestNoSaveWritesNothing(t *testing.T) {
	out := t.TempDir()
	stdout, err := execute(t, "--out", out, "--no-save", "100", "25", "4")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "xa=3\n"))
	assert.Empty(t, files(t, out))
}

func TestCheck(t *testing.T) {
	stdout, err := execute(t, "--no-save", "--check", "100", "25", "4")
	require.NoError(t, err)
	assert.Contains(t, stdout, "check: numeric fit within")
}

func TestInvalidArguments(t *testing.T) {
	_, err := execute(t, "--no-save", "abc", "1", "4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "argument 1")

	_, err = execute(t, "--no-save", "100", "0", "4")
	require.ErrorIs(t, err, pieceswap.ErrInvalidInput)

	_, err = execute(t, "--no-save", "100", "4", "4")
	require.ErrorIs(t, err, pieceswap.ErrDegenerate)
}

func TestNegativeArgumentIsInvalidInput(t *testing.T) {
	stdout, err := execute(t, "--no-save", "100", "1", "-4")
	require.ErrorIs(t, err, pieceswap.ErrInvalidInput)
	assert.NotContains(t, stdout, "unknown shorthand flag")

	_, err = execute(t, "--no-save", "100", "-1", "4")
	require.ErrorIs(t, err, pieceswap.ErrInvalidInput)
}

func TestZeroSamplesRejected(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "plot.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("samples: 0\n"), 0o644))

	_, err := execute(t, "--no-save", "--config", cfgPath, "100", "25", "4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "samples must be positive")

	_, err = execute(t, "--no-save", "--samples", "0", "100", "25", "4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "samples must be positive")
}

func TestParseInputs(t *testing.T) {
	in, err := parseInputs([]string{"100", "2.5", "1e-1"})
	require.NoError(t, err)
	assert.Equal(t, pieceswap.Inputs{K: 100, WEnd: 2.5, WSwitch: 0.1}, in)
}
