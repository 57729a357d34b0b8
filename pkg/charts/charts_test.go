package charts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requirePNG(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(data), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data[:4])
}

func TestEnsureOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")
	require.NoError(t, EnsureOutputDir(dir))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Idempotent when the directory already exists.
	assert.NoError(t, EnsureOutputDir(dir))
}

func TestDistribution(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileDistribution)
	scores := []float64{1, 2, 3, 3, 3, 3, 4, 4, 5, 3, 3, 2}
	cats := []string{
		"Fully Meets", "Fully Meets", "Fully Meets", "Exceeds",
		"Needs Improvement", "PIP", "Fully Meets", "Exceeds",
		"Fully Meets", "Not Classified", "Fully Meets", "Fully Meets",
	}
	require.NoError(t, Distribution(scores, cats, path))
	requirePNG(t, path)
}

func TestGroupedBox(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileByDepartment)
	values := []float64{3, 4, 2, 3, 5, 3}
	groups := []string{"Production", "Sales", "Production", "IT/IS", "Sales", "Production"}
	present := []bool{true, true, true, true, true, true}
	require.NoError(t, GroupedBox("Performance by Department", "Department", values, groups, present, path))
	requirePNG(t, path)
}

func TestGroupedBoxSingleRecordGroup(t *testing.T) {
	// A department with one row still gets a box.
	path := filepath.Join(t.TempDir(), "single.png")
	values := []float64{3, 3, 4}
	groups := []string{"Production", "Production", "Executive Office"}
	present := []bool{true, true, true}
	require.NoError(t, GroupedBox("Performance by Department", "Department", values, groups, present, path))
	requirePNG(t, path)
}

func TestGroupedBoxSkipsAbsentRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skip.png")
	values := []float64{3, 0, 4}
	groups := []string{"A", "B", "A"}
	present := []bool{true, false, true}
	require.NoError(t, GroupedBox("t", "g", values, groups, present, path))
	requirePNG(t, path)
}

func TestGroupedBoxNoData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.png")
	err := GroupedBox("t", "g", nil, nil, nil, path)
	assert.Error(t, err)
}

func TestCorrelationHeatmap(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileHeatmap)
	labels := []string{"Salary", "Absences", "EngagementSurvey"}
	m := [][]float64{
		{1, -0.2, 0.6},
		{-0.2, 1, -0.1},
		{0.6, -0.1, 1},
	}
	require.NoError(t, CorrelationHeatmap(labels, m, path))
	requirePNG(t, path)
}

func TestCorrelationHeatmapLabelMismatch(t *testing.T) {
	err := CorrelationHeatmap([]string{"a"}, [][]float64{{1, 0}, {0, 1}}, filepath.Join(t.TempDir(), "x.png"))
	assert.Error(t, err)
}

func TestCategoryScatter(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileScatter)
	x := []float64{4.2, 3.1, 4.8, 2.0, 3.9}
	y := []float64{3, 4, 4, 1, 3}
	cats := []string{"Fully Meets", "Exceeds", "Exceeds", "PIP", "Fully Meets"}
	present := []bool{true, true, true, true, false}
	require.NoError(t, CategoryScatter("Engagement vs Performance", "EngagementSurvey", "PerfScoreID", x, y, cats, present, path))
	requirePNG(t, path)
}
