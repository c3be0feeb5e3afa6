package table

import (
	"fmt"
	"slices"

	"github.com/arloliu/fitfn/errs"
)

// Table is an in-memory columnar data table: named float64 columns of
// equal length. Column order is the order of insertion, so iteration is
// deterministic.
//
// Table is not safe for concurrent mutation, but a table that is no
// longer being modified may be read from any number of goroutines.
type Table struct {
	names []string
	cols  map[string][]float64
	rows  int
}

// New creates an empty table.
func New() *Table {
	return &Table{cols: make(map[string][]float64)}
}

// FromColumns creates a table from name/column pairs. Pairs are added
// in the given order, so the resulting column order is deterministic.
//
// Example:
//
//	data, err := table.FromColumns(
//	    table.Column{Name: "x", Values: []float64{1, 2, 3}},
//	    table.Column{Name: "y", Values: []float64{2, 4, 6}},
//	)
func FromColumns(cols ...Column) (*Table, error) {
	t := New()
	for _, c := range cols {
		if err := t.AddColumn(c.Name, c.Values); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Column is a named column used with FromColumns.
type Column struct {
	Name   string
	Values []float64
}

// AddColumn appends a column to the table. The first column fixes the
// row count; later columns must match it. The values are copied, so
// callers may reuse their slice.
//
// Returns an error if the name is empty or duplicated, or the length
// differs from existing columns.
func (t *Table) AddColumn(name string, values []float64) error {
	if name == "" {
		return fmt.Errorf("column name must not be empty")
	}

	if _, exists := t.cols[name]; exists {
		return fmt.Errorf("column %q already exists", name)
	}

	if len(t.names) > 0 && len(values) != t.rows {
		return fmt.Errorf("column %q has %d rows, table has %d", name, len(values), t.rows)
	}

	t.names = append(t.names, name)
	t.cols[name] = slices.Clone(values)
	t.rows = len(values)

	return nil
}

// Column returns the named column. The returned slice is the table's
// own storage and must not be modified.
//
// Returns an error wrapping errs.ErrUnknownColumn if the column does
// not exist.
func (t *Table) Column(name string) ([]float64, error) {
	col, ok := t.cols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownColumn, name)
	}

	return col, nil
}

// Names returns the column names in insertion order.
func (t *Table) Names() []string {
	return slices.Clone(t.names)
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	return t.rows
}

// NumCols returns the number of columns.
func (t *Table) NumCols() int {
	return len(t.names)
}
