package charts

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"sort"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// histBins is the fixed bin count of the score histogram.
const histBins = 6

// Distribution renders the two-panel composite: a smoothed histogram
// of the performance score IDs on the left and the performance
// category counts, most frequent first, on the right.
func Distribution(scores []float64, categories []string, path string) error {
	left, err := scoreHistogram(scores)
	if err != nil {
		return err
	}
	right, err := categoryCounts(categories)
	if err != nil {
		return err
	}

	img := vgimg.New(12*vg.Inch, 5*vg.Inch)
	dc := draw.New(img)
	tiles := draw.Tiles{
		Rows: 1, Cols: 2,
		PadX: vg.Millimeter * 4, PadY: vg.Millimeter * 4,
		PadTop: vg.Millimeter * 2, PadBottom: vg.Millimeter * 2,
		PadLeft: vg.Millimeter * 2, PadRight: vg.Millimeter * 2,
	}
	plots := [][]*plot.Plot{{left, right}}
	canvases := plot.Align(plots, tiles, dc)
	left.Draw(canvases[0][0])
	right.Draw(canvases[0][1])

	w, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer w.Close()
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(w); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func scoreHistogram(scores []float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Distribution of Performance Scores"
	p.X.Label.Text = "PerfScoreID"
	p.Y.Label.Text = "Count"

	h, err := plotter.NewHist(plotter.Values(scores), histBins)
	if err != nil {
		return nil, fmt.Errorf("histogram: %w", err)
	}
	h.FillColor = color.RGBA{R: 31, G: 119, B: 180, A: 200}
	p.Add(h)

	if line := kdeLine(scores); line != nil {
		p.Add(line)
	}
	return p, nil
}

// kdeLine returns a Gaussian kernel-density curve scaled to the
// histogram's count axis, or nil when the data has no spread.
func kdeLine(x []float64) *plotter.Line {
	n := len(x)
	if n < 2 {
		return nil
	}
	mean := 0.0
	for _, v := range x {
		mean += v
	}
	mean /= float64(n)
	variance := 0.0
	for _, v := range x {
		d := v - mean
		variance += d * d
	}
	variance /= float64(n - 1)
	std := math.Sqrt(variance)
	if std == 0 {
		return nil
	}
	// Silverman's rule of thumb.
	bw := 1.06 * std * math.Pow(float64(n), -0.2)

	min, max := x[0], x[0]
	for _, v := range x {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	binWidth := (max - min) / histBins

	const samples = 200
	lo, hi := min-3*bw, max+3*bw
	pts := make(plotter.XYs, samples)
	for i := 0; i < samples; i++ {
		t := lo + (hi-lo)*float64(i)/float64(samples-1)
		density := 0.0
		for _, v := range x {
			u := (t - v) / bw
			density += math.Exp(-0.5 * u * u)
		}
		density /= float64(n) * bw * math.Sqrt(2*math.Pi)
		pts[i] = plotter.XY{X: t, Y: density * float64(n) * binWidth}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil
	}
	line.Color = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	line.Width = vg.Points(2)
	return line
}

func categoryCounts(categories []string) (*plot.Plot, error) {
	counts := map[string]int{}
	for _, c := range categories {
		counts[c]++
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	// Descending frequency, name order breaking ties for stability.
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})

	p := plot.New()
	p.Title.Text = "Performance Score Counts"
	p.Y.Label.Text = "Count"

	vals := make(plotter.Values, len(names))
	for i, name := range names {
		vals[i] = float64(counts[name])
	}
	bars, err := plotter.NewBarChart(vals, vg.Points(30))
	if err != nil {
		return nil, fmt.Errorf("bar chart: %w", err)
	}
	bars.Color = color.RGBA{R: 255, G: 127, B: 14, A: 255}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(names...)
	return p, nil
}
