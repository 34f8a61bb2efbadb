// Package table implements the in-memory tabular data model used across
// training, sampling and evaluation: ordered named columns that are either
// natively string-kinded or numeric-kinded, with per-cell missingness.
package table

import (
	"strconv"

	"github.com/srikesh3005/SynthoML/pkg/errs"
)

// Kind describes the native type of a column.
type Kind int

const (
	// KindString marks a column whose values are arbitrary strings.
	KindString Kind = iota
	// KindNumeric marks a column whose values are float64.
	KindNumeric
)

// Column is a single named column. Exactly one of Strings/Floats is
// populated, matching Kind; Missing marks cells excluded from statistics.
// All three slices, when non-nil, have the same length.
type Column struct {
	Name    string
	Kind    Kind
	Strings []string
	Floats  []float64
	Missing []bool
}

// Table is an ordered sequence of equally long columns. Column order is
// significant for output presentation only.
type Table struct {
	columns []Column
	rows    int
}

// New builds a Table from ordered columns, validating that all columns have
// the same length, carry values matching their kind and have unique names.
func New(columns []Column) (*Table, error) {
	if len(columns) == 0 {
		return nil, errs.NewData("table must have at least one column")
	}

	rows := -1
	seen := map[string]struct{}{}
	for _, col := range columns {
		if col.Name == "" {
			return nil, errs.NewData("table column must have a name")
		}
		if _, ok := seen[col.Name]; ok {
			return nil, errs.NewData("duplicate column name %q", col.Name)
		}
		seen[col.Name] = struct{}{}

		length := len(col.Strings)
		if col.Kind == KindNumeric {
			length = len(col.Floats)
		}
		if rows == -1 {
			rows = length
		}
		if length != rows {
			return nil, errs.NewData("column %q has %d rows, want %d", col.Name, length, rows)
		}
		if col.Missing != nil && len(col.Missing) != rows {
			return nil, errs.NewData("column %q has %d missing markers, want %d", col.Name, len(col.Missing), rows)
		}
	}

	return &Table{columns: columns, rows: rows}, nil
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	return t.rows
}

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int {
	return len(t.columns)
}

// ColumnNames returns the column names in declaration order.
func (t *Table) ColumnNames() []string {
	names := make([]string, 0, len(t.columns))
	for _, col := range t.columns {
		names = append(names, col.Name)
	}
	return names
}

// Columns returns the ordered columns. The returned slice shares backing
// arrays with the table; callers must treat it as read-only.
func (t *Table) Columns() []Column {
	return t.columns
}

// Column returns the column with the given name.
func (t *Table) Column(name string) (Column, bool) {
	for _, col := range t.columns {
		if col.Name == name {
			return col, true
		}
	}
	return Column{}, false
}

// IsMissing reports whether the cell at the given row is missing.
func (c Column) IsMissing(row int) bool {
	return c.Missing != nil && c.Missing[row]
}

// Cell renders the cell at the given row as a string; missing cells render
// as the empty string. Floats use the shortest exact representation so that
// round-tripping through CSV preserves values.
func (c Column) Cell(row int) string {
	if c.IsMissing(row) {
		return ""
	}
	if c.Kind == KindNumeric {
		return FormatFloat(c.Floats[row])
	}
	return c.Strings[row]
}

// NonMissingFloats returns the observed values of a numeric column.
func (c Column) NonMissingFloats() []float64 {
	values := make([]float64, 0, len(c.Floats))
	for i, v := range c.Floats {
		if c.IsMissing(i) {
			continue
		}
		values = append(values, v)
	}
	return values
}

// NonMissingStrings returns the observed values of a column rendered as
// strings, regardless of its native kind.
func (c Column) NonMissingStrings() []string {
	length := len(c.Strings)
	if c.Kind == KindNumeric {
		length = len(c.Floats)
	}
	values := make([]string, 0, length)
	for i := 0; i < length; i++ {
		if c.IsMissing(i) {
			continue
		}
		values = append(values, c.Cell(i))
	}
	return values
}

// DistinctCount returns the number of distinct non-missing values.
func (c Column) DistinctCount() int {
	distinct := map[string]struct{}{}
	for _, v := range c.NonMissingStrings() {
		distinct[v] = struct{}{}
	}
	return len(distinct)
}

// FormatFloat renders a float64 with the shortest representation that parses
// back to the same value.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
