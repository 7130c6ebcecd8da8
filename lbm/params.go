package lbm

import "fmt"

// Params holds the run constants. Immutable once a simulation starts.
type Params struct {
	NX          int     `yaml:"nx"`           // no. of cells in x-direction
	NY          int     `yaml:"ny"`           // no. of cells in y-direction
	MaxIters    int     `yaml:"maxIters"`     // no. of iterations
	ReynoldsDim int     `yaml:"reynolds_dim"` // dimension for Reynolds number
	Density     float64 `yaml:"density"`      // density per link
	Accel       float64 `yaml:"accel"`        // density redistribution
	Omega       float64 `yaml:"omega"`        // relaxation parameter
}

// Validate checks the constraints the loaders must enforce before a run.
// Omega outside (0, 2) is numerically unstable, so it is rejected here even
// though the kernel itself does not re-check it.
func (p Params) Validate() error {
	if p.NX <= 0 || p.NY <= 0 {
		return fmt.Errorf("grid dimensions must be positive, got %dx%d", p.NX, p.NY)
	}
	if p.MaxIters < 0 {
		return fmt.Errorf("maxIters must be non-negative, got %d", p.MaxIters)
	}
	if p.ReynoldsDim <= 0 {
		return fmt.Errorf("reynolds_dim must be positive, got %d", p.ReynoldsDim)
	}
	if p.Density <= 0 {
		return fmt.Errorf("density must be positive, got %g", p.Density)
	}
	if p.Omega <= 0 || p.Omega >= 2 {
		return fmt.Errorf("omega must lie in (0, 2), got %g", p.Omega)
	}
	return nil
}
