package lbm

// NSpeeds is the number of discrete velocities per cell in the D2Q9 scheme.
const NSpeeds = 9

// Direction indices. The speeds in each cell are numbered:
//
//	6 2 5
//	 \|/
//	3-0-1
//	 /|\
//	7 4 8
const (
	DirRest = iota
	DirE
	DirN
	DirW
	DirS
	DirNE
	DirNW
	DirSW
	DirSE
)

// Lattice constants.
const (
	// Csq is the square of the lattice speed of sound.
	Csq = 1.0 / 3.0
	// EqScale is the scale factor c in the equilibrium expansion.
	EqScale = 3.0

	// Equilibrium weights by direction class: rest, axis, diagonal.
	W0 = 4.0 / 9.0
	W1 = 1.0 / 9.0
	W2 = 1.0 / 36.0
)

// Direction describes one discrete velocity of the lattice.
type Direction struct {
	DX, DY   int     // unit offset on the (toroidal) grid
	Opposite int     // index of the reversed direction
	Weight   float64 // equilibrium weight (W0, W1 or W2)
}

// Directions is the shared, read-only D2Q9 geometry descriptor. The kernel
// hardcodes its index arithmetic for speed; everything else (bounce-back
// maps, reference implementations, tests) goes through this table.
var Directions = [NSpeeds]Direction{
	DirRest: {DX: 0, DY: 0, Opposite: DirRest, Weight: W0},
	DirE:    {DX: 1, DY: 0, Opposite: DirW, Weight: W1},
	DirN:    {DX: 0, DY: 1, Opposite: DirS, Weight: W1},
	DirW:    {DX: -1, DY: 0, Opposite: DirE, Weight: W1},
	DirS:    {DX: 0, DY: -1, Opposite: DirN, Weight: W1},
	DirNE:   {DX: 1, DY: 1, Opposite: DirSW, Weight: W2},
	DirNW:   {DX: -1, DY: 1, Opposite: DirSE, Weight: W2},
	DirSW:   {DX: -1, DY: -1, Opposite: DirNE, Weight: W2},
	DirSE:   {DX: 1, DY: -1, Opposite: DirNW, Weight: W2},
}
