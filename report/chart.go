// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/linsolve/matrix"
)

// Chart geometry.
const (
	chartWidth  = 4 * vg.Inch
	chartHeight = 3 * vg.Inch
	barWidth    = vg.Length(20)
)

// flatten reads m row-major into a slice.
func flatten(m matrix.Matrix) []float64 {
	rows, cols := m.Rows(), m.Cols()
	out := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, _ := m.At(i, j)
			out = append(out, v)
		}
	}

	return out
}

// newChart builds a bar chart with one bar per unknown, labelled x1..xn.
func newChart(x matrix.Matrix) (*plot.Plot, error) {
	if err := matrix.ValidateNotNil(x); err != nil {
		return nil, fmt.Errorf("report: chart: %w", err)
	}
	values := plotter.Values(flatten(x))

	p := plot.New()
	p.Title.Text = "Solution"
	p.Y.Label.Text = "value"

	bars, err := plotter.NewBarChart(values, barWidth)
	if err != nil {
		return nil, fmt.Errorf("report: chart: %w", err)
	}
	p.Add(bars, plotter.NewGrid())

	names := make([]string, len(values))
	for k := range names {
		names[k] = fmt.Sprintf("x%d", k+1)
	}
	p.NominalX(names...)

	return p, nil
}

// SaveChart writes a bar chart of x to path; the format follows the file
// extension (.png, .svg, .pdf, ...).
func SaveChart(x matrix.Matrix, path string) error {
	p, err := newChart(x)
	if err != nil {
		return err
	}
	if err = p.Save(chartWidth, chartHeight, path); err != nil {
		return fmt.Errorf("report: save chart: %w", err)
	}

	return nil
}

// WriteChart streams a bar chart of x to w in the given format ("png", "svg", ...).
func WriteChart(w io.Writer, x matrix.Matrix, format string) error {
	p, err := newChart(x)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(chartWidth, chartHeight, format)
	if err != nil {
		return fmt.Errorf("report: chart format %q: %w", format, err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("report: write chart: %w", err)
	}

	return nil
}
