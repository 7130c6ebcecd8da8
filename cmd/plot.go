package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/AmosHolland/hpc-submission/lbm/fileio"
)

var plotOut string // Output image path

// plotCmd renders an av_vels output file as a line chart, for a quick look
// at whether the flow has settled.
var plotCmd = &cobra.Command{
	Use:   "plot <avvelsfile>",
	Short: "Plot an average velocity series as a PNG",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		avVels, err := fileio.ReadAvVels(args[0])
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		if len(avVels) == 0 {
			logrus.Fatalf("no iterations recorded in %s", args[0])
		}

		pts := make(plotter.XYs, len(avVels))
		for i, v := range avVels {
			pts[i] = plotter.XY{X: float64(i), Y: v}
		}

		pl := plot.New()
		pl.Title.Text = "Average velocity per iteration"
		pl.X.Label.Text = "Iteration"
		pl.Y.Label.Text = "Average velocity"

		line, err := plotter.NewLine(pts)
		if err != nil {
			logrus.Fatalf("building velocity line: %v", err)
		}
		line.Width = vg.Points(1)
		pl.Add(line)

		if err := pl.Save(8*vg.Inch, 4*vg.Inch, plotOut); err != nil {
			logrus.Fatalf("saving plot %s: %v", plotOut, err)
		}
		logrus.Infof("Wrote %s", plotOut)
	},
}

func init() {
	plotCmd.Flags().StringVar(&plotOut, "out", "av_vels.png", "Output image path")

	rootCmd.AddCommand(plotCmd)
}
