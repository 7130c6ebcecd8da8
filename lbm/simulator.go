package lbm

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Simulator owns the two ping-ponged grids, the obstacle mask and the
// per-iteration average velocity series for one run.
type Simulator struct {
	Params Params

	cur     *Grid
	next    *Grid
	mask    *Mask
	avVels  []float64
	workers int
}

// NewSimulator allocates both grids, initialises the current one to the
// uniform zero-velocity equilibrium and validates the preconditions the
// kernel itself assumes: parameter sanity, grid/mask dimension agreement
// and at least one open cell for the reduction.
func NewSimulator(p Params, mask *Mask, workers int) (*Simulator, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if mask.NX != p.NX || mask.NY != p.NY {
		return nil, fmt.Errorf("obstacle mask is %dx%d but params declare %dx%d",
			mask.NX, mask.NY, p.NX, p.NY)
	}
	if mask.OpenCells() == 0 {
		return nil, fmt.Errorf("obstacle mask blocks every cell")
	}

	s := &Simulator{
		Params:  p,
		cur:     NewGrid(p.NX, p.NY),
		next:    NewGrid(p.NX, p.NY),
		mask:    mask,
		avVels:  make([]float64, 0, p.MaxIters),
		workers: workers,
	}
	s.cur.InitEquilibrium(p.Density)
	return s, nil
}

// Run executes exactly MaxIters iterations: accelerate the current grid,
// stream/rebound/collide into the next grid, record the iteration's average
// velocity, then swap the grid roles. The swap is an O(1) reference
// exchange; iterations are strictly sequential because each stream depends
// on the previous iteration's complete output.
func (s *Simulator) Run() error {
	logrus.Debugf("running %d iterations on %dx%d grid (%d open cells)",
		s.Params.MaxIters, s.Params.NX, s.Params.NY, s.mask.OpenCells())

	for tt := 0; tt < s.Params.MaxIters; tt++ {
		AccelerateFlow(s.Params, s.cur, s.mask)
		av, err := Step(s.Params, s.cur, s.next, s.mask, s.workers)
		if err != nil {
			return fmt.Errorf("iteration %d: %w", tt, err)
		}
		s.avVels = append(s.avVels, av)
		s.cur, s.next = s.next, s.cur

		logrus.Tracef("iteration %d: av velocity %.12E", tt, av)
	}
	return nil
}

// Grid returns the grid currently holding the simulation state.
func (s *Simulator) Grid() *Grid { return s.cur }

// Mask returns the shared obstacle mask.
func (s *Simulator) Mask() *Mask { return s.mask }

// AvVels returns the recorded average velocity series, one entry per
// completed iteration.
func (s *Simulator) AvVels() []float64 { return s.avVels }

// Reynolds computes the Reynolds number diagnostic for the current state.
func (s *Simulator) Reynolds() float64 {
	return Reynolds(s.Params, s.cur, s.mask)
}
