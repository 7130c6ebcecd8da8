package lbm

import "math"

// CellState returns the macroscopic state of the cell at linear index i:
// local density and the x and y velocity components. Callers must not pass
// an obstructed cell, whose distribution has no physical velocity.
func (g *Grid) CellState(i int) (density, uX, uY float64) {
	for d := 0; d < NSpeeds; d++ {
		density += g.S[d][i]
	}
	uX = (g.S[DirE][i] + g.S[DirNE][i] + g.S[DirSE][i] -
		(g.S[DirW][i] + g.S[DirNW][i] + g.S[DirSW][i])) / density
	uY = (g.S[DirN][i] + g.S[DirNE][i] + g.S[DirNW][i] -
		(g.S[DirS][i] + g.S[DirSE][i] + g.S[DirSW][i])) / density
	return density, uX, uY
}

// AvgVelocity computes the mean velocity magnitude over all open cells of a
// grid snapshot. It recomputes the same density/velocity formula as the
// kernel but as an independent read-only pass, so it can be applied to any
// state without touching the ping-pong buffers. Used for the end-of-run
// Reynolds diagnostic, not on the per-iteration hot path.
func AvgVelocity(g *Grid, mask *Mask) float64 {
	totU := 0.0
	openCells := 0
	for i := 0; i < g.NX*g.NY; i++ {
		if mask.BlockedAt(i) {
			continue
		}
		_, uX, uY := g.CellState(i)
		totU += math.Sqrt(uX*uX + uY*uY)
		openCells++
	}
	return totU / float64(openCells)
}

// Viscosity returns the kinematic viscosity implied by the relaxation
// parameter: (1/6) * (2/omega - 1).
func Viscosity(omega float64) float64 {
	return 1.0 / 6.0 * (2.0/omega - 1.0)
}

// Reynolds derives the Reynolds number for a grid snapshot from its average
// velocity, the characteristic dimension and the viscosity.
func Reynolds(p Params, g *Grid, mask *Mask) float64 {
	return AvgVelocity(g, mask) * float64(p.ReynoldsDim) / Viscosity(p.Omega)
}
