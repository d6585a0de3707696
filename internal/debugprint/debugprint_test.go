package debugprint

import (
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/plotter"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "debug.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRead_OddCountDropsTrailing(t *testing.T) {
	values, err := Read(writeFile(t, "1\n2\n3\n4\n5\n"))
	require.NoError(t, err)

	xs, ys := Split(values)
	assert.Equal(t, []int{1, 3, 5}, xs)
	assert.Equal(t, []int{2, 4}, ys)

	want := plotter.XYs{{X: 1, Y: 2}, {X: 3, Y: 4}}
	if diff := cmp.Diff(want, Pairs(xs, ys)); diff != "" {
		t.Errorf("Pairs mismatch (-want +got):\n%s", diff)
	}
}

func TestRead_Empty(t *testing.T) {
	values, err := Read(writeFile(t, ""))
	require.NoError(t, err)
	assert.Empty(t, values)

	xs, ys := Split(values)
	assert.Empty(t, xs)
	assert.Empty(t, ys)
	assert.Empty(t, Pairs(xs, ys))
}

func TestRead_NotFound(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestParse_Whitespace(t *testing.T) {
	values, err := Parse(strings.NewReader(" -7\r\n+8\n\t9  \n10"))
	require.NoError(t, err)
	assert.Equal(t, []int{-7, 8, 9, 10}, values)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]struct {
		content string
		line    string
	}{
		"float":       {"1\n2.5\n", "line 2"},
		"word":        {"x\n", "line 1"},
		"blank":       {"1\n2\n\n", "line 3"},
		"blank first": {"\n1\n", "line 1"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, strconv.ErrSyntax)
			assert.Contains(t, err.Error(), tc.line)
		})
	}
}

func TestSplit_PreservesOrder(t *testing.T) {
	xs, ys := Split([]int{9, 8, 7, 6, 5, 4})
	assert.Equal(t, []int{9, 7, 5}, xs)
	assert.Equal(t, []int{8, 6, 4}, ys)

	xs, ys = Split([]int{42})
	assert.Equal(t, []int{42}, xs)
	assert.Empty(t, ys)
}

func TestPairs_ShorterWins(t *testing.T) {
	got := Pairs([]int{1, 2}, []int{10, 20, 30})
	assert.Equal(t, plotter.XYs{{X: 1, Y: 10}, {X: 2, Y: 20}}, got)
}
