package fileio

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmosHolland/hpc-submission/lbm"
)

func TestWriteAvVels_ReadAvVels_RoundTrip(t *testing.T) {
	series := []float64{1.234e-3, 5.6789e-3, 0, 9.9e-2}
	path := filepath.Join(t.TempDir(), "av_vels.dat")

	require.NoError(t, WriteAvVels(series, path))
	got, err := ReadAvVels(path)
	require.NoError(t, err)

	require.Len(t, got, len(series))
	for i := range series {
		assert.InDelta(t, series[i], got[i], 1e-14, "iteration %d", i)
	}
}

func TestReadAvVels_RejectsOutOfOrderIndex(t *testing.T) {
	path := writeFile(t, "av_vels.dat", "0:\t1.0E-03\n2:\t2.0E-03\n")

	_, err := ReadAvVels(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of order")
}

func TestReadAvVels_RejectsMalformedLine(t *testing.T) {
	path := writeFile(t, "av_vels.dat", "not a record\n")

	_, err := ReadAvVels(path)
	require.Error(t, err)
}

func TestWriteFinalState_OneRecordPerCell(t *testing.T) {
	// GIVEN a small equilibrium grid with one obstacle
	p := lbm.Params{NX: 3, NY: 2, MaxIters: 0, ReynoldsDim: 3,
		Density: 0.1, Accel: 0, Omega: 1.0}
	g := lbm.NewGrid(p.NX, p.NY)
	g.InitEquilibrium(p.Density)
	mask := lbm.NewMask(p.NX, p.NY)
	mask.Block(1, 0)

	// WHEN the final state is written
	path := filepath.Join(t.TempDir(), "final_state.dat")
	require.NoError(t, WriteFinalState(p, g, mask, path))

	// THEN there is one well-formed record per cell
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	require.NoError(t, scanner.Err())
	require.Len(t, lines, p.NX*p.NY)

	for _, line := range lines {
		var x, y, blocked int
		var uX, uY, u, pressure float64
		n, err := fmt.Sscanf(line, "%d %d %E %E %E %E %d", &x, &y, &uX, &uY, &u, &pressure, &blocked)
		require.NoError(t, err, "line %q", line)
		require.Equal(t, 7, n)

		if blocked == 1 {
			assert.Equal(t, 1, x)
			assert.Equal(t, 0, y)
			assert.Zero(t, uX)
			assert.Zero(t, uY)
			assert.Zero(t, u)
		}
		// every cell of an equilibrium grid sits at the free-stream pressure
		assert.InDelta(t, p.Density*lbm.Csq, pressure, 1e-12, "line %q", line)
	}

	// AND records are ordered row-major from the origin
	assert.True(t, strings.HasPrefix(lines[0], "0 0 "))
	assert.True(t, strings.HasPrefix(lines[p.NX], "0 1 "))
}
