// Package testutil provides shared float comparison helpers for the lbm
// test packages.
package testutil

import (
	"math"
	"testing"
)

// AssertFloat64Equal compares two float64 values with relative tolerance.
// Summation order inside the kernel's parallel reduction is not fixed, so
// most numeric assertions go through here instead of comparing bits.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == got {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}

// AssertGridsEqual compares two equally-sized value buffers with relative
// tolerance, reporting the first few mismatches.
func AssertGridsEqual(t *testing.T, name string, want, got []float64, relTol float64) {
	t.Helper()
	if len(want) != len(got) {
		t.Fatalf("%s: length mismatch: got %d, want %d", name, len(got), len(want))
	}
	reported := 0
	for i := range want {
		if want[i] == got[i] {
			continue
		}
		diff := math.Abs(want[i] - got[i])
		maxVal := math.Max(math.Abs(want[i]), math.Abs(got[i]))
		if diff/maxVal > relTol {
			t.Errorf("%s[%d]: got %v, want %v", name, i, got[i], want[i])
			reported++
			if reported >= 5 {
				t.Fatalf("%s: too many mismatches", name)
			}
		}
	}
}
