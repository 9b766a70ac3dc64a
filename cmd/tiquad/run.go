package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tiquad/lagrange"
	"github.com/katalvlaran/tiquad/quad"
	"github.com/katalvlaran/tiquad/report"
	"github.com/katalvlaran/tiquad/sample"
)

// runSpec describes one estimation run: required input data, optional
// plot/chart outputs. Doubles as the YAML manifest entry.
type runSpec struct {
	Input  string `yaml:"input"`
	Plot   string `yaml:"plot,omitempty"`
	Points int    `yaml:"points,omitempty"`
	Chart  string `yaml:"chart,omitempty"`
	Title  string `yaml:"title,omitempty"`
}

// manifest is the root of a --manifest YAML file.
type manifest struct {
	Runs []runSpec `yaml:"runs"`
}

// runOne executes a single estimation: parse, fit, report, and then
// the optional plot/chart side outputs. Fit or input errors abort the
// run; output-file errors are reported on stderr without aborting, so
// a failed plot never discards the already-printed report.
func runOne(cmd *cobra.Command, spec runSpec) error {
	set, err := sample.ParseFile(spec.Input)
	if err != nil {
		return err
	}

	p, err := lagrange.Fit(set)
	if err != nil {
		return fmt.Errorf("%s: %w", spec.Input, err)
	}

	out := cmd.OutOrStdout()
	if err = report.Polynomial(out, p); err != nil {
		return err
	}

	area, err := quad.Analytic(p, set)
	if err != nil {
		return err
	}
	trap, err := quad.Trapezoid(set)
	if err != nil {
		return err
	}
	if err = report.Estimates(out, area, trap); err != nil {
		return err
	}

	// data_points defaults to sample_count − 1.
	points := spec.Points
	if points < 1 {
		points = len(set) - 1
	}

	if spec.Plot != "" {
		if err = writePlot(spec.Plot, p, points); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
		}
	}
	if spec.Chart != "" {
		title := spec.Title
		if title == "" {
			title = spec.Input
		}
		if err = report.Chart(spec.Chart, title, set, p, points); err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
		}
	}

	return nil
}

// writePlot truncates path and streams the evaluated grid into it as
// CSV rows.
func writePlot(path string, p lagrange.Polynomial, points int) error {
	grid, err := p.Grid(points)
	if err != nil {
		return fmt.Errorf("plot %s: %w", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("plot %s: %w", path, err)
	}
	defer f.Close()

	return report.PlotCSV(f, grid)
}

// runManifest loads a YAML manifest and executes its runs in order.
// A failing run stops the batch; partial side outputs of earlier runs
// are kept.
func runManifest(cmd *cobra.Command, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("manifest %s: %w", path, err)
	}

	var m manifest
	if err = yaml.Unmarshal(raw, &m); err != nil {
		return fmt.Errorf("manifest %s: %w", path, err)
	}
	if len(m.Runs) == 0 {
		return fmt.Errorf("manifest %s: no runs declared", path)
	}

	for i, spec := range m.Runs {
		if spec.Input == "" {
			return fmt.Errorf("manifest %s: run %d has no input", path, i+1)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "# run %d: %s\n", i+1, spec.Input)
		if err = runOne(cmd, spec); err != nil {
			return err
		}
	}

	return nil
}
