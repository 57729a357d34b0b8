// Command hreda generates the HR performance EDA report: descriptive
// statistics and outlier counts on stdout and five chart PNGs in the
// output directory.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Esmo777/Performance-analysis/pkg/charts"
	"github.com/Esmo777/Performance-analysis/pkg/frame"
	"github.com/Esmo777/Performance-analysis/pkg/report"
	"github.com/Esmo777/Performance-analysis/pkg/stats"
)

func main() {
	var (
		input  string
		outDir string
	)
	root := &cobra.Command{
		Use:           "hreda",
		Short:         "One-shot exploratory analysis report over the HR dataset",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
			return run(input, outDir, os.Stdout, logger)
		},
	}
	root.Flags().StringVar(&input, "input", "HRDataset_v14.csv", "path to the HR dataset (csv or xlsx)")
	root.Flags().StringVar(&outDir, "out", "charts", "directory for the chart images")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(input, outDir string, w io.Writer, logger *slog.Logger) error {
	logger.Info("loading dataset", "path", input)
	raw, err := frame.Read(input)
	if err != nil {
		return err
	}
	if err := raw.Require(report.RequiredColumns...); err != nil {
		return err
	}
	if err := raw.CoerceDates(report.DateColumns...); err != nil {
		return err
	}
	logger.Info("dataset loaded", "rows", raw.Len(), "columns", len(raw.Columns()))

	f, err := raw.FillMissing(report.ColPerformanceScore, report.NotClassified)
	if err != nil {
		return err
	}

	if err := report.WriteMissing(w, f); err != nil {
		return err
	}
	fmt.Fprintln(w)
	if err := report.WriteDescribe(w, f); err != nil {
		return err
	}
	fmt.Fprintln(w)
	if err := report.WriteOutliers(w, f); err != nil {
		return err
	}
	fmt.Fprintln(w)

	if err := renderCharts(f, outDir, logger); err != nil {
		return err
	}

	report.WriteInsights(w)
	return nil
}

func renderCharts(f *frame.Frame, outDir string, logger *slog.Logger) error {
	if err := charts.EnsureOutputDir(outDir); err != nil {
		return err
	}

	scores, scoresOK, err := f.Floats(report.ColPerfScoreID)
	if err != nil {
		return err
	}
	perfCats, _, err := f.Strings(report.ColPerformanceScore)
	if err != nil {
		return err
	}
	departments, _, err := f.Strings(report.ColDepartment)
	if err != nil {
		return err
	}
	sexes, _, err := f.Strings(report.ColSex)
	if err != nil {
		return err
	}
	engagement, engagementOK, err := f.Floats(report.ColEngagement)
	if err != nil {
		return err
	}

	save := func(name string, render func(path string) error) error {
		path := filepath.Join(outDir, name)
		if err := render(path); err != nil {
			return err
		}
		logger.Info("chart written", "path", path)
		return nil
	}

	if err := save(charts.FileDistribution, func(path string) error {
		return charts.Distribution(stats.Drop(scores, scoresOK), perfCats, path)
	}); err != nil {
		return err
	}
	if err := save(charts.FileByDepartment, func(path string) error {
		return charts.GroupedBox("Performance by Department", "Department", scores, departments, scoresOK, path)
	}); err != nil {
		return err
	}
	if err := save(charts.FileBySex, func(path string) error {
		return charts.GroupedBox("Performance by Sex", "Sex", scores, sexes, scoresOK, path)
	}); err != nil {
		return err
	}
	if err := save(charts.FileHeatmap, func(path string) error {
		cols := make([][]float64, len(report.NumericColumns))
		present := make([][]bool, len(report.NumericColumns))
		for i, name := range report.NumericColumns {
			vals, ok, ferr := f.Floats(name)
			if ferr != nil {
				return ferr
			}
			cols[i], present[i] = vals, ok
		}
		return charts.CorrelationHeatmap(report.NumericColumns, stats.PairwiseCorrelation(cols, present), path)
	}); err != nil {
		return err
	}
	if err := save(charts.FileScatter, func(path string) error {
		present := make([]bool, len(scores))
		for i := range present {
			present[i] = scoresOK[i] && engagementOK[i]
		}
		return charts.CategoryScatter("Engagement vs Performance", "EngagementSurvey", "PerfScoreID",
			engagement, scores, perfCats, present, path)
	}); err != nil {
		return err
	}
	return nil
}
