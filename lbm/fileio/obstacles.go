package fileio

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/AmosHolland/hpc-submission/lbm"
)

// LoadObstacles reads an obstacle file of (x, y, blocked) triples into a
// Mask sized from the params. Blank lines are ignored; anything else that is
// not three integers with blocked == 1 and in-range coordinates is an error.
func LoadObstacles(p lbm.Params, path string) (*lbm.Mask, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open input obstacles file: %w", err)
	}
	defer f.Close()

	mask := lbm.NewMask(p.NX, p.NY)

	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		var x, y, blocked int
		if n, err := fmt.Sscanf(text, "%d %d %d", &x, &y, &blocked); err != nil || n != 3 {
			return nil, fmt.Errorf("%s:%d: expected 3 values per line in obstacle file", path, line)
		}
		if x < 0 || x >= p.NX {
			return nil, fmt.Errorf("%s:%d: obstacle x-coord %d out of range [0, %d)", path, line, x, p.NX)
		}
		if y < 0 || y >= p.NY {
			return nil, fmt.Errorf("%s:%d: obstacle y-coord %d out of range [0, %d)", path, line, y, p.NY)
		}
		if blocked != 1 {
			return nil, fmt.Errorf("%s:%d: obstacle blocked value should be 1, got %d", path, line, blocked)
		}

		mask.Block(x, y)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading obstacles file %s: %w", path, err)
	}

	return mask, nil
}

// WriteObstacles writes the blocked cells of a mask in the loader's triple
// format, row by row.
func WriteObstacles(mask *lbm.Mask, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create obstacles file: %w", err)
	}

	w := bufio.NewWriter(f)
	for y := 0; y < mask.NY; y++ {
		for x := 0; x < mask.NX; x++ {
			if !mask.Blocked(x, y) {
				continue
			}
			if _, err := fmt.Fprintf(w, "%d %d 1\n", x, y); err != nil {
				f.Close()
				return fmt.Errorf("writing obstacles file %s: %w", path, err)
			}
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("flushing obstacles file %s: %w", path, err)
	}
	return f.Close()
}
