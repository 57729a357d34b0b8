package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Esmo777/Performance-analysis/pkg/frame"
	"github.com/Esmo777/Performance-analysis/pkg/stats"
)

// IQRMultiplier is the fence multiplier of the outlier rule.
const IQRMultiplier = 1.5

// WriteMissing prints the per-column missing-value counts in column
// order.
func WriteMissing(w io.Writer, f *frame.Frame) error {
	fmt.Fprintln(w, "Missing values per column:")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, name := range f.Columns() {
		n, err := f.MissingCount(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "  %s\t%d\n", name, n)
	}
	return tw.Flush()
}

// WriteDescribe prints count, mean, std, min, quartiles, and max for
// the fixed numeric columns.
func WriteDescribe(w io.Writer, f *frame.Frame) error {
	fmt.Fprintln(w, "Descriptive statistics:")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "  \tcount\tmean\tstd\tmin\t25%\t50%\t75%\tmax\t")
	for _, name := range NumericColumns {
		vals, present, err := f.Floats(name)
		if err != nil {
			return err
		}
		s := stats.Describe(stats.Drop(vals, present))
		fmt.Fprintf(tw, "  %s\t%d\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t\n",
			name, s.Count, s.Mean, s.Std, s.Min, s.Q1, s.Median, s.Q3, s.Max)
	}
	return tw.Flush()
}

// WriteOutliers prints the IQR fences and the count of rows outside
// them for the Salary and Absences columns.
func WriteOutliers(w io.Writer, f *frame.Frame) error {
	fmt.Fprintln(w, "Outlier detection (IQR rule):")
	for _, name := range OutlierColumns {
		vals, present, err := f.Floats(name)
		if err != nil {
			return err
		}
		col := stats.Drop(vals, present)
		lower, upper := stats.IQRBounds(col, IQRMultiplier)
		n := stats.CountOutliers(col, IQRMultiplier)
		fmt.Fprintf(w, "  %s: %d outliers outside [%.2f, %.2f]\n", name, n, lower, upper)
	}
	return nil
}
