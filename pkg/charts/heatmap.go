package charts

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// corrGrid adapts a square correlation matrix to plotter.GridXYZ.
// Row 0 is drawn at the bottom of the figure.
type corrGrid struct {
	m [][]float64
}

func (g corrGrid) Dims() (int, int)   { return len(g.m), len(g.m) }
func (g corrGrid) Z(c, r int) float64 { return g.m[r][c] }
func (g corrGrid) X(c int) float64    { return float64(c) }
func (g corrGrid) Y(r int) float64    { return float64(r) }

// CorrelationHeatmap renders the pairwise correlation matrix with a
// diverging palette fixed to [-1, 1] and a two-decimal annotation in
// every cell.
func CorrelationHeatmap(labels []string, m [][]float64, path string) error {
	if len(labels) != len(m) {
		return fmt.Errorf("heatmap: %d labels for %d matrix rows", len(labels), len(m))
	}

	cm := moreland.SmoothBlueRed()
	cm.SetMin(-1)
	cm.SetMax(1)
	h := plotter.NewHeatMap(corrGrid{m: m}, cm.Palette(255))
	h.Min, h.Max = -1, 1

	p := plot.New()
	p.Title.Text = "Correlation Heatmap"
	p.Add(h)
	p.NominalX(labels...)
	p.NominalY(labels...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	xys := make(plotter.XYs, 0, len(m)*len(m))
	texts := make([]string, 0, len(m)*len(m))
	for r := range m {
		for c := range m[r] {
			xys = append(xys, plotter.XY{X: float64(c), Y: float64(r)})
			texts = append(texts, fmt.Sprintf("%.2f", m[r][c]))
		}
	}
	cellLabels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return fmt.Errorf("heatmap annotations: %w", err)
	}
	for i := range cellLabels.TextStyle {
		cellLabels.TextStyle[i].XAlign = draw.XCenter
		cellLabels.TextStyle[i].YAlign = draw.YCenter
		cellLabels.TextStyle[i].Color = color.Black
	}
	p.Add(cellLabels)

	if err := p.Save(9*vg.Inch, 8*vg.Inch, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
