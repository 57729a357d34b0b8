package frame

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date layouts tried in order when coercing a column to calendar dates.
var dateLayouts = []string{
	"1/2/2006",
	"1/2/06",
	"2006-01-02",
}

// Frame is a column-major table of string cells with a per-cell missing
// mask. Columns coerced with CoerceDates additionally carry parsed
// time values. A Frame is treated as read-only once loading and the
// single FillMissing pass are done; mutating methods return new frames.
type Frame struct {
	names   []string
	index   map[string]int
	cells   [][]string
	missing [][]bool
	dates   map[int][]time.Time
	rows    int
}

// New builds a Frame from a header and row-major records. Every record
// must have exactly one cell per header column.
func New(names []string, records [][]string) (*Frame, error) {
	index := make(map[string]int, len(names))
	for j, name := range names {
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		index[name] = j
	}
	f := &Frame{
		names:   append([]string(nil), names...),
		index:   index,
		cells:   make([][]string, len(names)),
		missing: make([][]bool, len(names)),
		dates:   make(map[int][]time.Time),
		rows:    len(records),
	}
	for j := range names {
		f.cells[j] = make([]string, len(records))
		f.missing[j] = make([]bool, len(records))
	}
	for i, rec := range records {
		if len(rec) != len(names) {
			return nil, fmt.Errorf("row %d has %d cells, want %d", i, len(rec), len(names))
		}
		for j, v := range rec {
			f.cells[j][i] = v
			f.missing[j][i] = isMissingRaw(v)
		}
	}
	return f, nil
}

func isMissingRaw(s string) bool {
	switch strings.TrimSpace(s) {
	case "", "NA", "N/A", "NaN":
		return true
	}
	return false
}

// Len returns the number of rows.
func (f *Frame) Len() int { return f.rows }

// Columns returns the column names in declaration order.
func (f *Frame) Columns() []string { return append([]string(nil), f.names...) }

// Has reports whether the named column exists.
func (f *Frame) Has(name string) bool {
	_, ok := f.index[name]
	return ok
}

// Require fails if any of the named columns is absent. The pipeline
// cannot proceed without its declared columns, so callers treat this
// error as fatal.
func (f *Frame) Require(names ...string) error {
	for _, name := range names {
		if !f.Has(name) {
			return fmt.Errorf("required column %q not present in input", name)
		}
	}
	return nil
}

func (f *Frame) col(name string) (int, error) {
	j, ok := f.index[name]
	if !ok {
		return 0, fmt.Errorf("no column %q", name)
	}
	return j, nil
}

// CoerceDates parses every cell of the named columns as a calendar
// date. Cells that fail to parse become missing; a bad date never
// aborts the load. Only a missing column is an error.
func (f *Frame) CoerceDates(names ...string) error {
	for _, name := range names {
		j, err := f.col(name)
		if err != nil {
			return err
		}
		parsed := make([]time.Time, f.rows)
		for i := 0; i < f.rows; i++ {
			if f.missing[j][i] {
				continue
			}
			t, ok := parseDate(f.cells[j][i])
			if !ok {
				f.missing[j][i] = true
				continue
			}
			parsed[i] = t
		}
		f.dates[j] = parsed
	}
	return nil
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FillMissing returns a new Frame in which every missing cell of the
// named column holds sentinel. All other columns share backing storage
// with the receiver, which is safe because frames are read-only after
// this normalization pass.
func (f *Frame) FillMissing(name, sentinel string) (*Frame, error) {
	j, err := f.col(name)
	if err != nil {
		return nil, err
	}
	out := &Frame{
		names:   f.names,
		index:   f.index,
		cells:   append([][]string(nil), f.cells...),
		missing: append([][]bool(nil), f.missing...),
		dates:   f.dates,
		rows:    f.rows,
	}
	cells := append([]string(nil), f.cells[j]...)
	miss := make([]bool, f.rows)
	for i := range cells {
		if f.missing[j][i] {
			cells[i] = sentinel
		}
	}
	out.cells[j] = cells
	out.missing[j] = miss
	return out, nil
}

// Strings returns the raw cells of a column with a present mask
// (true = value present). Both slices are row-aligned copies.
func (f *Frame) Strings(name string) ([]string, []bool, error) {
	j, err := f.col(name)
	if err != nil {
		return nil, nil, err
	}
	vals := append([]string(nil), f.cells[j]...)
	present := make([]bool, f.rows)
	for i := range present {
		present[i] = !f.missing[j][i]
	}
	return vals, present, nil
}

// Floats interprets a column as real numbers. Missing or unparseable
// cells get a false mask entry; the aligned value slot is unspecified.
func (f *Frame) Floats(name string) ([]float64, []bool, error) {
	j, err := f.col(name)
	if err != nil {
		return nil, nil, err
	}
	vals := make([]float64, f.rows)
	present := make([]bool, f.rows)
	for i := 0; i < f.rows; i++ {
		if f.missing[j][i] {
			continue
		}
		v, perr := strconv.ParseFloat(strings.TrimSpace(f.cells[j][i]), 64)
		if perr != nil {
			continue
		}
		vals[i] = v
		present[i] = true
	}
	return vals, present, nil
}

// Times returns the parsed dates of a column previously passed to
// CoerceDates.
func (f *Frame) Times(name string) ([]time.Time, []bool, error) {
	j, err := f.col(name)
	if err != nil {
		return nil, nil, err
	}
	parsed, ok := f.dates[j]
	if !ok {
		return nil, nil, fmt.Errorf("column %q was not coerced to dates", name)
	}
	vals := append([]time.Time(nil), parsed...)
	present := make([]bool, f.rows)
	for i := range present {
		present[i] = !f.missing[j][i]
	}
	return vals, present, nil
}

// MissingCount returns how many cells of the column are missing.
func (f *Frame) MissingCount(name string) (int, error) {
	j, err := f.col(name)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, m := range f.missing[j] {
		if m {
			n++
		}
	}
	return n, nil
}
