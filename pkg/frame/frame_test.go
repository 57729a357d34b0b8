package frame

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const sampleCSV = `Department,PerformanceScore,Salary,DateofHire
Production,Exceeds,62000,7/5/2011
Sales,,48000,1/15/2015
IT/IS,Fully Meets,not-a-number,bad-date
Production,PIP,55000,
`

func writeSampleCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hr.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))
	return path
}

func TestReadCSV(t *testing.T) {
	f, err := ReadCSV(writeSampleCSV(t))
	require.NoError(t, err)
	assert.Equal(t, 4, f.Len())
	assert.Equal(t, []string{"Department", "PerformanceScore", "Salary", "DateofHire"}, f.Columns())
}

func TestReadCSVMissingFile(t *testing.T) {
	_, err := ReadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}

func TestRequire(t *testing.T) {
	f, err := ReadCSV(writeSampleCSV(t))
	require.NoError(t, err)
	assert.NoError(t, f.Require("Department", "Salary"))
	err = f.Require("Department", "EngagementSurvey")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EngagementSurvey")
}

func TestCoerceDates(t *testing.T) {
	f, err := ReadCSV(writeSampleCSV(t))
	require.NoError(t, err)
	require.NoError(t, f.CoerceDates("DateofHire"))

	times, present, err := f.Times("DateofHire")
	require.NoError(t, err)
	assert.True(t, present[0])
	assert.Equal(t, time.Date(2011, 7, 5, 0, 0, 0, 0, time.UTC), times[0])
	assert.True(t, present[1])
	assert.False(t, present[2], "unparseable date becomes missing")
	assert.False(t, present[3], "empty date stays missing")

	n, err := f.MissingCount("DateofHire")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestCoerceDatesMissingColumn(t *testing.T) {
	f, err := ReadCSV(writeSampleCSV(t))
	require.NoError(t, err)
	assert.Error(t, f.CoerceDates("DOB"))
}

func TestFillMissing(t *testing.T) {
	f, err := ReadCSV(writeSampleCSV(t))
	require.NoError(t, err)

	before, err := f.MissingCount("PerformanceScore")
	require.NoError(t, err)
	require.Equal(t, 1, before)

	filled, err := f.FillMissing("PerformanceScore", "Not Classified")
	require.NoError(t, err)

	after, err := filled.MissingCount("PerformanceScore")
	require.NoError(t, err)
	assert.Equal(t, 0, after)

	vals, _, err := filled.Strings("PerformanceScore")
	require.NoError(t, err)
	assert.Equal(t, "Not Classified", vals[1])

	// The source frame is untouched and other columns are unaffected.
	orig, err := f.MissingCount("PerformanceScore")
	require.NoError(t, err)
	assert.Equal(t, 1, orig)
	for _, col := range []string{"Department", "Salary", "DateofHire"} {
		a, err := f.MissingCount(col)
		require.NoError(t, err)
		b, err := filled.MissingCount(col)
		require.NoError(t, err)
		assert.Equal(t, a, b, col)
	}
}

func TestFloats(t *testing.T) {
	f, err := ReadCSV(writeSampleCSV(t))
	require.NoError(t, err)
	vals, present, err := f.Floats("Salary")
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, false, true}, present)
	assert.Equal(t, 62000.0, vals[0])
	assert.Equal(t, 55000.0, vals[3])
}

func TestNewRejectsRaggedRows(t *testing.T) {
	_, err := New([]string{"a", "b"}, [][]string{{"1"}})
	assert.Error(t, err)
}

func TestNewRejectsDuplicateColumns(t *testing.T) {
	_, err := New([]string{"a", "a"}, nil)
	assert.Error(t, err)
}

func TestReadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hr.xlsx")
	wb := excelize.NewFile()
	rows := [][]interface{}{
		{"Department", "Salary"},
		{"Production", 62000},
		{"Sales", ""},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, wb.SetSheetRow("Sheet1", cell, &row))
	}
	require.NoError(t, wb.SaveAs(path))

	f, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, 2, f.Len())
	assert.Equal(t, []string{"Department", "Salary"}, f.Columns())

	n, err := f.MissingCount("Salary")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
