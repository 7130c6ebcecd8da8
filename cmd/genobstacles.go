package cmd

import (
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/AmosHolland/hpc-submission/lbm"
	"github.com/AmosHolland/hpc-submission/lbm/fileio"
)

var (
	genNX   int     // Domain width
	genNY   int     // Domain height
	genFill float64 // Fraction of cells to block
	genSeed int64   // Seed for reproducible fields
	genOut  string  // Output obstacle file path
)

// genObstaclesCmd writes a reproducible random obstacle file for a domain.
// The driven inflow row (ny-2) is always left open so the forcing stage has
// somewhere to act.
var genObstaclesCmd = &cobra.Command{
	Use:   "gen-obstacles",
	Short: "Generate a random obstacle file",
	Run: func(cmd *cobra.Command, args []string) {
		if genNX <= 0 || genNY <= 0 {
			logrus.Fatalf("domain dimensions must be positive, got %dx%d", genNX, genNY)
		}
		if genFill < 0 || genFill >= 1 {
			logrus.Fatalf("fill fraction must lie in [0, 1), got %g", genFill)
		}

		rng := rand.New(rand.NewSource(genSeed))
		mask := lbm.NewMask(genNX, genNY)
		for y := 0; y < genNY; y++ {
			if y == genNY-2 {
				continue
			}
			for x := 0; x < genNX; x++ {
				if rng.Float64() < genFill {
					mask.Block(x, y)
				}
			}
		}

		if err := fileio.WriteObstacles(mask, genOut); err != nil {
			logrus.Fatalf("%v", err)
		}
		logrus.Infof("Wrote %d blocked cells to %s", genNX*genNY-mask.OpenCells(), genOut)
	},
}

func init() {
	genObstaclesCmd.Flags().IntVar(&genNX, "nx", 128, "Domain width in cells")
	genObstaclesCmd.Flags().IntVar(&genNY, "ny", 128, "Domain height in cells")
	genObstaclesCmd.Flags().Float64Var(&genFill, "fill", 0.05, "Fraction of cells to block")
	genObstaclesCmd.Flags().Int64Var(&genSeed, "seed", 42, "Seed for random obstacle placement")
	genObstaclesCmd.Flags().StringVar(&genOut, "out", "obstacles.dat", "Output obstacle file")

	rootCmd.AddCommand(genObstaclesCmd)
}
