package report

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/tiquad/lagrange"
	"github.com/katalvlaran/tiquad/sample"
)

// Chart renders a self-contained HTML page at path overlaying the raw
// samples (scatter) on the fitted polynomial evaluated at steps+1 grid
// points over [0, 1] (line). title becomes the chart heading.
//
// Errors: lagrange.ErrBadSteps for steps < 1, or the underlying
// file/render error. The caller's numeric results are unaffected by a
// failed render.
func Chart(path, title string, set sample.Set, p lagrange.Polynomial, steps int) error {
	grid, err := p.Grid(steps)
	if err != nil {
		return fmt.Errorf("report: chart: %w", err)
	}

	curve := make([]opts.LineData, 0, steps+1)
	for x, y := range grid {
		curve = append(curve, opts.LineData{Value: []interface{}{x, y}})
	}

	points := make([]opts.ScatterData, 0, len(set))
	for _, s := range set {
		points = append(points, opts.ScatterData{Value: []interface{}{s.X, s.Y}})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: "Lagrange interpolation of dG/dλ samples",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "λ", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "dG/dλ", Type: "value"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	line.AddSeries("fitted polynomial", curve,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true), ShowSymbol: opts.Bool(false)}),
	)

	scatter := charts.NewScatter()
	scatter.AddSeries("samples", points,
		charts.WithScatterChartOpts(opts.ScatterChart{Symbol: "circle", SymbolSize: 8}),
	)
	line.Overlap(scatter)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: chart: %w", err)
	}
	defer f.Close()

	if err := line.Render(f); err != nil {
		return fmt.Errorf("report: chart: %w", err)
	}

	return nil
}
