package lbm

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary condenses an average-velocity series for end-of-run reporting.
type Summary struct {
	Iterations int
	Mean       float64
	StdDev     float64
	Min        float64
	Max        float64
	Final      float64
}

// Summarize computes summary statistics over the recorded series. Returns a
// zero Summary for an empty series (a zero-iteration run).
func Summarize(avVels []float64) Summary {
	if len(avVels) == 0 {
		return Summary{}
	}
	return Summary{
		Iterations: len(avVels),
		Mean:       stat.Mean(avVels, nil),
		StdDev:     stat.StdDev(avVels, nil),
		Min:        floats.Min(avVels),
		Max:        floats.Max(avVels),
		Final:      avVels[len(avVels)-1],
	}
}

// Print writes the summary to stdout.
func (s Summary) Print() {
	fmt.Println("=== Average Velocity Series ===")
	fmt.Printf("Iterations           : %d\n", s.Iterations)
	if s.Iterations == 0 {
		return
	}
	fmt.Printf("Mean                 : %.12E\n", s.Mean)
	fmt.Printf("Std deviation        : %.12E\n", s.StdDev)
	fmt.Printf("Min                  : %.12E\n", s.Min)
	fmt.Printf("Max                  : %.12E\n", s.Max)
	fmt.Printf("Final iteration      : %.12E\n", s.Final)
}
