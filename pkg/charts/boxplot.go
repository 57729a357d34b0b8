package charts

import (
	"fmt"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// GroupedBox renders one box per distinct group label, groups sorted
// by name. Rows whose value or group is absent are skipped; a group
// with a single row still gets a (degenerate) box.
func GroupedBox(title, groupLabel string, values []float64, groups []string, present []bool, path string) error {
	byGroup := map[string][]float64{}
	for i, g := range groups {
		if !present[i] {
			continue
		}
		byGroup[g] = append(byGroup[g], values[i])
	}
	names := make([]string, 0, len(byGroup))
	for name := range byGroup {
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) == 0 {
		return fmt.Errorf("box plot %q: no rows with both value and group", title)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = groupLabel
	p.Y.Label.Text = "PerfScoreID"

	for i, name := range names {
		box, err := plotter.NewBoxPlot(vg.Points(40), float64(i), plotter.Values(byGroup[name]))
		if err != nil {
			return fmt.Errorf("box plot %q group %q: %w", title, name, err)
		}
		box.FillColor = categoryColors[i%len(categoryColors)]
		p.Add(box)
	}
	p.NominalX(names...)

	if err := p.Save(figWidth, figHeight, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
