package lbm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmosHolland/hpc-submission/lbm/internal/testutil"
)

func TestAvgVelocity_UniformEquilibriumIsZero(t *testing.T) {
	g := NewGrid(6, 6)
	g.InitEquilibrium(0.1)

	assert.InDelta(t, 0.0, AvgVelocity(g, NewMask(6, 6)), 1e-15)
}

func TestAvgVelocity_MatchesKernelReduction_OmegaOne(t *testing.T) {
	// With omega = 1 the collision lands exactly on the equilibrium, which
	// preserves density and momentum, so the post-collision snapshot must
	// report the same average velocity the kernel reduced during the step.
	p := Params{NX: 8, NY: 8, ReynoldsDim: 8, Density: 0.1, Accel: 0.002, Omega: 1.0}
	mask := NewMask(p.NX, p.NY)
	mask.Block(4, 4)

	cur := NewGrid(p.NX, p.NY)
	next := NewGrid(p.NX, p.NY)
	cur.InitEquilibrium(p.Density)

	AccelerateFlow(p, cur, mask)
	av, err := Step(p, cur, next, mask, 1)
	require.NoError(t, err)

	testutil.AssertFloat64Equal(t, "average velocity", av, AvgVelocity(next, mask), 1e-9)
}

func TestViscosity_KnownValues(t *testing.T) {
	assert.InDelta(t, 1.0/6.0, Viscosity(1.0), 1e-15)
	// omega = 2 is the inviscid limit
	assert.InDelta(t, 0.0, Viscosity(2.0), 1e-15)
}

func TestReynolds_ScalesWithDimensionAndViscosity(t *testing.T) {
	p := Params{NX: 4, NY: 4, ReynoldsDim: 100, Density: 0.1, Accel: 0.001, Omega: 1.0}
	mask := NewMask(p.NX, p.NY)

	cur := NewGrid(p.NX, p.NY)
	next := NewGrid(p.NX, p.NY)
	cur.InitEquilibrium(p.Density)
	AccelerateFlow(p, cur, mask)
	_, err := Step(p, cur, next, mask, 1)
	require.NoError(t, err)

	want := AvgVelocity(next, mask) * float64(p.ReynoldsDim) / Viscosity(p.Omega)
	testutil.AssertFloat64Equal(t, "reynolds", want, Reynolds(p, next, mask), 1e-13)
}

func TestCellState_RecoverableVelocity(t *testing.T) {
	// GIVEN a single cell with a known east-west imbalance
	g := NewGrid(1, 1)
	for d := 0; d < NSpeeds; d++ {
		g.S[d][0] = 0.1
	}
	g.S[DirE][0] = 0.2 // extra 0.1 of east-moving mass

	// WHEN its macroscopic state is computed
	density, uX, uY := g.CellState(0)

	// THEN density sums all nine values and velocity reflects the imbalance
	assert.InDelta(t, 1.0, density, 1e-15)
	assert.InDelta(t, 0.1, uX, 1e-15)
	assert.InDelta(t, 0.0, uY, 1e-15)
}
