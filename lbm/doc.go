// Package lbm implements a D2Q9-BGK lattice-Boltzmann scheme for 2-D fluid
// flow through an obstacle field.
//
// # Reading Guide
//
// Start with these three files to understand the scheme:
//   - lattice.go: the nine discrete velocities, their weights and the
//     lattice constants
//   - kernel.go: the fused stream/rebound/collide pass that advances the
//     lattice one iteration and feeds the velocity reduction
//   - simulator.go: the iteration loop and the ping-pong grid ownership
//
// # Architecture
//
// State lives in two structure-of-arrays Grids (grid.go) whose "current"
// and "next" roles swap every iteration, plus an immutable obstacle Mask
// (mask.go). AccelerateFlow (accelerate.go) injects forcing on one row of
// the current grid before each kernel pass. velocity.go holds the
// independent average-velocity pass and the Reynolds-number diagnostic;
// summary.go condenses the recorded series for reporting.
//
// File parsing and output writing live in the lbm/fileio sub-package; the
// core performs no file or console IO.
package lbm
