package fileio

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/AmosHolland/hpc-submission/lbm"
)

// Default output file names, matching the reference data layout.
const (
	FinalStateFile = "final_state.dat"
	AvVelsFile     = "av_vels.dat"
)

// WriteFinalState emits one record per cell of the final grid:
// x, y, u_x, u_y, |u|, pressure and the obstacle flag. Obstructed cells get
// zero velocity and the free-stream pressure density*csq; open cells get the
// macroscopic state recomputed from their distribution.
func WriteFinalState(p lbm.Params, g *lbm.Grid, mask *lbm.Mask, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create final state file: %w", err)
	}

	w := bufio.NewWriter(f)
	for y := 0; y < p.NY; y++ {
		for x := 0; x < p.NX; x++ {
			i := g.Index(x, y)

			var uX, uY, u, pressure float64
			blocked := 0
			if mask.BlockedAt(i) {
				blocked = 1
				pressure = p.Density * lbm.Csq
			} else {
				var density float64
				density, uX, uY = g.CellState(i)
				u = math.Sqrt(uX*uX + uY*uY)
				pressure = density * lbm.Csq
			}

			_, err := fmt.Fprintf(w, "%d %d %.12E %.12E %.12E %.12E %d\n",
				x, y, uX, uY, u, pressure, blocked)
			if err != nil {
				f.Close()
				return fmt.Errorf("writing final state file %s: %w", path, err)
			}
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("flushing final state file %s: %w", path, err)
	}
	return f.Close()
}

// WriteAvVels records the per-iteration average velocity series, one
// "index:\tvalue" line per iteration.
func WriteAvVels(avVels []float64, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create av_vels file: %w", err)
	}

	w := bufio.NewWriter(f)
	for i, v := range avVels {
		if _, err := fmt.Fprintf(w, "%d:\t%.12E\n", i, v); err != nil {
			f.Close()
			return fmt.Errorf("writing av_vels file %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("flushing av_vels file %s: %w", path, err)
	}
	return f.Close()
}

// ReadAvVels parses an av_vels file back into the velocity series, checking
// that iteration indices are dense and in order.
func ReadAvVels(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open av_vels file: %w", err)
	}
	defer f.Close()

	var avVels []float64
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		idxStr, valStr, found := strings.Cut(text, ":")
		if !found {
			return nil, fmt.Errorf("%s:%d: expected \"index:\\tvalue\"", path, line)
		}
		idx, err := strconv.Atoi(strings.TrimSpace(idxStr))
		if err != nil {
			return nil, fmt.Errorf("%s:%d: bad iteration index: %w", path, line, err)
		}
		if idx != len(avVels) {
			return nil, fmt.Errorf("%s:%d: iteration index %d out of order, expected %d",
				path, line, idx, len(avVels))
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(valStr), 64)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: bad velocity value: %w", path, line, err)
		}
		avVels = append(avVels, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading av_vels file %s: %w", path, err)
	}
	return avVels, nil
}
