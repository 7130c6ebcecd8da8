package fileio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmosHolland/hpc-submission/lbm"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadParams_PlainFormat(t *testing.T) {
	path := writeFile(t, "input.params", "128\n128\n1000\n100\n0.1\n0.005\n1.7\n")

	p, err := LoadParams(path)
	require.NoError(t, err)

	want := lbm.Params{NX: 128, NY: 128, MaxIters: 1000, ReynoldsDim: 100,
		Density: 0.1, Accel: 0.005, Omega: 1.7}
	assert.Equal(t, want, p)
}

func TestLoadParams_YAMLFormat(t *testing.T) {
	path := writeFile(t, "input.yaml", `
nx: 64
ny: 32
maxIters: 500
reynolds_dim: 64
density: 0.2
accel: 0.001
omega: 1.2
`)

	p, err := LoadParams(path)
	require.NoError(t, err)

	want := lbm.Params{NX: 64, NY: 32, MaxIters: 500, ReynoldsDim: 64,
		Density: 0.2, Accel: 0.001, Omega: 1.2}
	assert.Equal(t, want, p)
}

func TestLoadParams_MissingValue(t *testing.T) {
	path := writeFile(t, "input.params", "128\n128\n1000\n")

	_, err := LoadParams(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 7 values")
}

func TestLoadParams_MalformedValue(t *testing.T) {
	path := writeFile(t, "input.params", "128\nforty\n1000\n100\n0.1\n0.005\n1.7\n")

	_, err := LoadParams(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ny")
}

func TestLoadParams_RejectsUnstableOmega(t *testing.T) {
	path := writeFile(t, "input.params", "128\n128\n1000\n100\n0.1\n0.005\n2.5\n")

	_, err := LoadParams(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "omega")
}

func TestLoadParams_MissingFile(t *testing.T) {
	_, err := LoadParams(filepath.Join(t.TempDir(), "nope.params"))
	require.Error(t, err)
}
