// Command tiquad estimates a free-energy difference from thermodynamic
// integration data: it fits a Lagrange interpolating polynomial through
// the sampled (λ, dG/dλ) rows of an input file, prints the fitted
// coefficients and both integral estimates, and optionally writes the
// evaluated curve as CSV plot rows or an HTML chart.
//
// Usage:
//
//	tiquad input_file [plot_file [data_points]]
//	tiquad --manifest runs.yaml
//
// data_points defaults to sample_count − 1 when a plot file is given
// without it. A plot or chart write failure is reported but does not
// discard the already-printed report.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		manifestPath string
		chartPath    string
	)

	cmd := &cobra.Command{
		Use:   "tiquad input_file [plot_file [data_points]]",
		Short: "Free-energy estimation by Lagrange interpolation of dG/dλ samples",
		Long: `tiquad fits the unique interpolating polynomial through the (λ, dG/dλ)
rows of input_file, then reports two free-energy estimates: the exact
integral of the fitted polynomial and an independent trapezoidal
quadrature over the raw samples.

Input rows hold two numbers (λ, then dG/dλ) separated by whitespace,
commas or semicolons; lines starting with '#' are comments.`,
		Args:          cobra.MaximumNArgs(3),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			if manifestPath != "" {
				return runManifest(cmd, manifestPath)
			}
			if len(args) < 1 {
				// No input file is not an error, just a usage request.
				return cmd.Usage()
			}

			points := 0
			if v := argAt(args, 2); v != "" {
				n, err := strconv.Atoi(v)
				if err != nil {
					return fmt.Errorf("data_points %q: %w", v, err)
				}
				points = n
			}

			return runOne(cmd, runSpec{
				Input:  args[0],
				Plot:   argAt(args, 1),
				Points: points,
				Chart:  chartPath,
			})
		},
	}

	cmd.Flags().StringVar(&manifestPath, "manifest", "", "YAML manifest describing multiple runs")
	cmd.Flags().StringVar(&chartPath, "chart", "", "write an HTML chart of samples vs fitted curve")

	return cmd
}

// argAt returns args[i] or "" when i is out of range.
func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}

	return ""
}
