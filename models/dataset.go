package models

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Dataset is one loaded table: a header plus data rows. Every value is
// carried as a string so that columns this tool does not understand pass
// through a load/save round trip untouched.
type Dataset struct {
	Columns []string
	Rows    [][]string
}

// NewDataset builds a Dataset, padding or truncating every row to the
// header width. Spreadsheet readers trim trailing empty cells, so ragged
// input rows are normal.
func NewDataset(columns []string, rows [][]string) *Dataset {
	ds := &Dataset{Columns: columns, Rows: make([][]string, 0, len(rows))}
	for _, row := range rows {
		ds.Rows = append(ds.Rows, padRow(row, len(columns)))
	}
	return ds
}

func padRow(row []string, width int) []string {
	if len(row) == width {
		return row
	}
	out := make([]string, width)
	copy(out, row)
	return out
}

// Len returns the number of data rows.
func (d *Dataset) Len() int { return len(d.Rows) }

// ColumnIndex returns the position of a column, or -1 when absent.
func (d *Dataset) ColumnIndex(name string) int {
	for i, c := range d.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the named column exists.
func (d *Dataset) HasColumn(name string) bool { return d.ColumnIndex(name) >= 0 }

// ResolveColumn returns the first alias that names an existing column.
func (d *Dataset) ResolveColumn(aliases []string) (string, bool) {
	for _, a := range aliases {
		if d.HasColumn(a) {
			return a, true
		}
	}
	return "", false
}

// Column returns a copy of the named column's values, one per row.
func (d *Dataset) Column(name string) ([]string, error) {
	idx := d.ColumnIndex(name)
	if idx < 0 {
		return nil, fmt.Errorf("column %s not found", name)
	}
	out := make([]string, len(d.Rows))
	for i, row := range d.Rows {
		out[i] = row[idx]
	}
	return out, nil
}

// SetColumn replaces the named column, or appends it on the right when it
// does not exist yet. values must line up with the rows.
func (d *Dataset) SetColumn(name string, values []string) error {
	if len(values) != len(d.Rows) {
		return fmt.Errorf("column %s: %d values for %d rows", name, len(values), len(d.Rows))
	}
	idx := d.ColumnIndex(name)
	if idx < 0 {
		d.Columns = append(d.Columns, name)
		for i := range d.Rows {
			d.Rows[i] = append(d.Rows[i], values[i])
		}
		return nil
	}
	for i := range d.Rows {
		d.Rows[i][idx] = values[i]
	}
	return nil
}

// FilterEqual keeps only the rows whose named column equals value.
// Applying the same filter twice is a no-op the second time.
func (d *Dataset) FilterEqual(name, value string) error {
	idx := d.ColumnIndex(name)
	if idx < 0 {
		return fmt.Errorf("column %s not found", name)
	}
	kept := d.Rows[:0]
	for _, row := range d.Rows {
		if row[idx] == value {
			kept = append(kept, row)
		}
	}
	d.Rows = kept
	return nil
}

// SortBy orders rows ascending by the named column, comparing cells as
// strings. The sort is stable: equal keys keep their input order.
func (d *Dataset) SortBy(name string) error {
	idx := d.ColumnIndex(name)
	if idx < 0 {
		return fmt.Errorf("column %s not found", name)
	}
	sort.SliceStable(d.Rows, func(i, j int) bool {
		return d.Rows[i][idx] < d.Rows[j][idx]
	})
	return nil
}

// ColumnMean parses the named column as float64 and returns its arithmetic
// mean. Any non-numeric cell is an error.
func (d *Dataset) ColumnMean(name string) (float64, error) {
	idx := d.ColumnIndex(name)
	if idx < 0 {
		return 0, fmt.Errorf("column %s not found", name)
	}
	if len(d.Rows) == 0 {
		return 0, fmt.Errorf("column %s: no rows to average", name)
	}
	var sum float64
	for i, row := range d.Rows {
		v, err := strconv.ParseFloat(strings.TrimSpace(row[idx]), 64)
		if err != nil {
			return 0, fmt.Errorf("column %s row %d: %q is not numeric", name, i+1, row[idx])
		}
		sum += v
	}
	return sum / float64(len(d.Rows)), nil
}
