package charts

import (
	"fmt"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var glyphShapes = []draw.GlyphDrawer{
	draw.CircleGlyph{},
	draw.SquareGlyph{},
	draw.TriangleGlyph{},
	draw.PyramidGlyph{},
	draw.CrossGlyph{},
	draw.PlusGlyph{},
}

// CategoryScatter plots y against x with one glyph style per category,
// categories sorted by name for a stable legend. Rows where either
// coordinate is absent are skipped.
func CategoryScatter(title, xLabel, yLabel string, x, y []float64, categories []string, present []bool, path string) error {
	byCat := map[string]plotter.XYs{}
	for i := range categories {
		if !present[i] {
			continue
		}
		byCat[categories[i]] = append(byCat[categories[i]], plotter.XY{X: x[i], Y: y[i]})
	}
	names := make([]string, 0, len(byCat))
	for name := range byCat {
		names = append(names, name)
	}
	sort.Strings(names)

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Legend.Top = true
	p.Legend.Left = true

	for i, name := range names {
		s, err := plotter.NewScatter(byCat[name])
		if err != nil {
			return fmt.Errorf("scatter %q: %w", name, err)
		}
		s.GlyphStyle.Color = categoryColors[i%len(categoryColors)]
		s.GlyphStyle.Shape = glyphShapes[i%len(glyphShapes)]
		s.GlyphStyle.Radius = vg.Points(3.5)
		p.Add(s)
		p.Legend.Add(name, s)
	}

	if err := p.Save(figWidth, figHeight, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
