package lbm

// AccelerateFlow injects forcing on row NY-2 of the grid, modelling a driven
// inflow one row in from the boundary. For each unobstructed cell in that row
// it shifts mass from the three west-leaning directions to the three
// east-leaning ones. A cell is skipped entirely if the shift would drive any
// west-leaning value non-positive; the guard skips rather than clamps,
// matching the source model for near-empty cells.
//
// This is the only source of exogenous momentum in a run.
func AccelerateFlow(p Params, g *Grid, mask *Mask) {
	if p.NY < 2 {
		return
	}

	w1 := p.Density * p.Accel / 9.0
	w2 := p.Density * p.Accel / 36.0

	y := p.NY - 2
	base := y * p.NX

	for x := 0; x < p.NX; x++ {
		i := base + x
		if mask.BlockedAt(i) ||
			g.S[DirW][i]-w1 <= 0 ||
			g.S[DirNW][i]-w2 <= 0 ||
			g.S[DirSW][i]-w2 <= 0 {
			continue
		}
		g.S[DirE][i] += w1
		g.S[DirNE][i] += w2
		g.S[DirSE][i] += w2
		g.S[DirW][i] -= w1
		g.S[DirNW][i] -= w2
		g.S[DirSW][i] -= w2
	}
}
