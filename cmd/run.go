package cmd

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/AmosHolland/hpc-submission/lbm"
	"github.com/AmosHolland/hpc-submission/lbm/fileio"
)

var (
	workers        int    // Parallel row workers for the step kernel
	finalStatePath string // Output path for the per-cell final state
	avVelsPath     string // Output path for the per-iteration velocity series
)

// runCmd executes a simulation from a parameter file and an obstacle file.
var runCmd = &cobra.Command{
	Use:   "run <paramfile> <obstaclefile>",
	Short: "Run the lattice-Boltzmann simulation",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		totTic := time.Now()

		params, err := fileio.LoadParams(args[0])
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		mask, err := fileio.LoadObstacles(params, args[1])
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		sim, err := lbm.NewSimulator(params, mask, workers)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		initElapsed := time.Since(totTic)

		logrus.Infof("Starting simulation: %dx%d grid, %d iterations, omega=%g",
			params.NX, params.NY, params.MaxIters, params.Omega)

		compTic := time.Now()
		if err := sim.Run(); err != nil {
			logrus.Fatalf("simulation failed: %v", err)
		}
		compElapsed := time.Since(compTic)

		fmt.Println("==done==")
		fmt.Printf("Reynolds number:\t\t%.12E\n", sim.Reynolds())
		fmt.Printf("Elapsed Init time:\t\t%.6f (s)\n", initElapsed.Seconds())
		fmt.Printf("Elapsed Compute time:\t\t%.6f (s)\n", compElapsed.Seconds())
		fmt.Printf("Elapsed Total time:\t\t%.6f (s)\n", time.Since(totTic).Seconds())
		lbm.Summarize(sim.AvVels()).Print()

		if err := fileio.WriteFinalState(params, sim.Grid(), sim.Mask(), finalStatePath); err != nil {
			logrus.Fatalf("%v", err)
		}
		if err := fileio.WriteAvVels(sim.AvVels(), avVelsPath); err != nil {
			logrus.Fatalf("%v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

func init() {
	runCmd.Flags().IntVar(&workers, "workers", 0, "Parallel row workers for the step kernel (0 = all CPUs)")
	runCmd.Flags().StringVar(&finalStatePath, "final-state", fileio.FinalStateFile, "Path for the final state output")
	runCmd.Flags().StringVar(&avVelsPath, "av-vels", fileio.AvVelsFile, "Path for the average velocity output")

	rootCmd.AddCommand(runCmd)
}
