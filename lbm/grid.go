package lbm

// Grid is the structure-of-arrays lattice state: one dense buffer per
// discrete velocity, each of length NX*NY in row-major (x + y*NX) order.
// The domain is logically toroidal on both axes; wrapping happens in the
// kernel's index arithmetic, not here.
//
// Two Grids exist per run, "current" and "next", with fully disjoint
// storage. The kernel reads one and writes the other; the caller swaps the
// roles after every iteration.
type Grid struct {
	NX, NY int
	S      [NSpeeds][]float64
}

// NewGrid allocates a zeroed grid for an nx by ny domain.
func NewGrid(nx, ny int) *Grid {
	g := &Grid{NX: nx, NY: ny}
	for d := range g.S {
		g.S[d] = make([]float64, nx*ny)
	}
	return g
}

// Index returns the linear buffer index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return x + y*g.NX }

// InitEquilibrium fills every cell with the zero-velocity equilibrium
// distribution for the given density: W0*density at rest, W1*density on the
// axes, W2*density on the diagonals.
func (g *Grid) InitEquilibrium(density float64) {
	for d := 0; d < NSpeeds; d++ {
		w := Directions[d].Weight * density
		buf := g.S[d]
		for i := range buf {
			buf[i] = w
		}
	}
}

// TotalMass sums every value in every buffer. Stream, rebound and collide
// all conserve it exactly (up to rounding), so it is a useful diagnostic.
// Never called on the hot path.
func (g *Grid) TotalMass() float64 {
	total := 0.0
	for d := 0; d < NSpeeds; d++ {
		for _, v := range g.S[d] {
			total += v
		}
	}
	return total
}
