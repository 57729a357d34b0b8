// Package charts renders the report figures with gonum/plot. Every
// renderer builds its own plot values and writes a PNG under the
// caller-chosen path; nothing is shared between figures.
package charts

import (
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot/vg"
)

// Fixed artifact filenames inside the output directory.
const (
	FileDistribution = "distribution_performance.png"
	FileByDepartment = "performance_by_department.png"
	FileBySex        = "performance_by_sex.png"
	FileHeatmap      = "correlation_heatmap.png"
	FileScatter      = "scatterplot_engagement_performance.png"
)

// Default figure size for the single-panel charts.
const (
	figWidth  = 8 * vg.Inch
	figHeight = 6 * vg.Inch
)

// categoryColors cycles across grouped glyphs and bars.
var categoryColors = []color.RGBA{
	{R: 31, G: 119, B: 180, A: 255},
	{R: 255, G: 127, B: 14, A: 255},
	{R: 44, G: 160, B: 44, A: 255},
	{R: 214, G: 39, B: 40, A: 255},
	{R: 148, G: 103, B: 189, A: 255},
	{R: 140, G: 86, B: 75, A: 255},
}

// EnsureOutputDir creates the chart output directory if absent.
func EnsureOutputDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return nil
}
