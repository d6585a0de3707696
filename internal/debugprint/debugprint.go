// Package debugprint reads debug printouts: files of integers, one per line,
// alternating x and y.
package debugprint

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/plot/plotter"
)

func Read(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("debugprint: %w", err)
	}
	defer f.Close()

	values, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("debugprint: %s: %w", path, err)
	}
	return values, nil
}

// Parse reads one base-10 integer per line. Surrounding whitespace is
// ignored but blank lines are an error.
func Parse(r io.Reader) ([]int, error) {
	var values []int

	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		v, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		values = append(values, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return values, nil
}

// Split partitions values by index parity: even indices are x, odd are y.
func Split(
	values []int,
) (
	[]int, []int,
) {

	xs := make([]int, 0, (len(values)+1)/2)
	ys := make([]int, 0, len(values)/2)

	for i, v := range values {
		if i%2 == 0 {
			xs = append(xs, v)
		} else {
			ys = append(ys, v)
		}
	}

	return xs, ys
}

// Pairs zips xs and ys into plot points. Anything past the shorter slice
// has no partner and is dropped.
func Pairs(
	xs, ys []int,
) (
	plotter.XYs,
) {

	n := min(len(xs), len(ys))
	xy := make(plotter.XYs, n)

	for i := range xy {
		xy[i].X = float64(xs[i])
		xy[i].Y = float64(ys[i])
	}

	return xy
}
