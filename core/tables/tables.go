/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package tables implements Table, an ordered collection of equal-length,
// uniquely named columns, and the row-level transforms built on it.
package tables

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/google/colframe/core/columns"
	"github.com/google/colframe/core/errs"
	"github.com/google/colframe/core/selection"
)

// Table holds columns in insertion order. Every column has RowCount cells.
// A Table is not safe for concurrent mutation.
type Table struct {
	name    string
	columns []columns.Column
	byName  map[string]int
}

// NewTable creates a table holding cols. It fails under the same rules as
// AddColumns.
func NewTable(name string, cols ...columns.Column) (*Table, error) {
	t := &Table{name: name, byName: make(map[string]int)}
	if err := t.AddColumns(cols...); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Table) Name() string {
	return t.name
}

func (t *Table) SetName(name string) {
	t.name = name
}

// RowCount returns the length shared by every column, 0 for a table
// without columns.
func (t *Table) RowCount() int {
	if len(t.columns) == 0 {
		return 0
	}
	return t.columns[0].Size()
}

func (t *Table) ColumnCount() int {
	return len(t.columns)
}

// ColumnNames returns the column names in order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name()
	}
	return names
}

// Columns returns the columns in order. The slice is a copy; the columns
// are shared with the table.
func (t *Table) Columns() []columns.Column {
	out := make([]columns.Column, len(t.columns))
	copy(out, t.columns)
	return out
}

// AddColumns appends cols to the table. A column whose size differs from
// RowCount fails with errs.ErrLengthMismatch, unless the table has no
// columns yet, in which case the first new column sets the row count.
// Names must be unique. Every violation is reported and nothing is added
// when any is found.
func (t *Table) AddColumns(cols ...columns.Column) error {
	var result *multierror.Error

	rows := t.RowCount()
	adopt := len(t.columns) == 0
	seen := make(map[string]bool, len(cols))
	for _, c := range cols {
		if c == nil {
			result = multierror.Append(result, fmt.Errorf("%w: nil column", errs.ErrNotFound))
			continue
		}
		if adopt {
			rows = c.Size()
			adopt = false
		}
		if c.Size() != rows {
			result = multierror.Append(result, fmt.Errorf("%w: column %q has %d rows, table %q has %d",
				errs.ErrLengthMismatch, c.Name(), c.Size(), t.name, rows))
		}
		if _, exists := t.byName[c.Name()]; exists || seen[c.Name()] {
			result = multierror.Append(result, fmt.Errorf("%w: %q", errs.ErrDuplicateColumn, c.Name()))
		}
		seen[c.Name()] = true
	}
	if err := result.ErrorOrNil(); err != nil {
		return err
	}

	for _, c := range cols {
		t.byName[c.Name()] = len(t.columns)
		t.columns = append(t.columns, c)
	}
	return nil
}

// RemoveColumns drops the named columns. Unknown names fail with
// errs.ErrNotFound and leave the table unchanged.
func (t *Table) RemoveColumns(names ...string) error {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		if _, ok := t.byName[n]; !ok {
			return fmt.Errorf("%w: column %q in table %q", errs.ErrNotFound, n, t.name)
		}
		drop[n] = true
	}
	kept := t.columns[:0:0]
	for _, c := range t.columns {
		if !drop[c.Name()] {
			kept = append(kept, c)
		}
	}
	t.columns = kept
	t.reindex()
	return nil
}

func (t *Table) reindex() {
	t.byName = make(map[string]int, len(t.columns))
	for i, c := range t.columns {
		t.byName[c.Name()] = i
	}
}

// Column returns the column called name, or errs.ErrNotFound.
func (t *Table) Column(name string) (columns.Column, error) {
	i, ok := t.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w: column %q in table %q", errs.ErrNotFound, name, t.name)
	}
	return t.columns[i], nil
}

// ColumnAt returns the column at position i, or errs.ErrIndexOutOfRange.
func (t *Table) ColumnAt(i int) (columns.Column, error) {
	if i < 0 || i >= len(t.columns) {
		return nil, errs.IndexOutOfRange(i, len(t.columns))
	}
	return t.columns[i], nil
}

// HasColumn reports whether the table holds a column called name.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.byName[name]
	return ok
}

func (t *Table) DoubleColumn(name string) (*columns.DoubleColumn, error) {
	return typedColumn[*columns.DoubleColumn](t, name, columns.TypeDouble)
}

func (t *Table) IntColumn(name string) (*columns.IntColumn, error) {
	return typedColumn[*columns.IntColumn](t, name, columns.TypeInteger)
}

func (t *Table) StringColumn(name string) (*columns.StringColumn, error) {
	return typedColumn[*columns.StringColumn](t, name, columns.TypeString)
}

func (t *Table) BoolColumn(name string) (*columns.BoolColumn, error) {
	return typedColumn[*columns.BoolColumn](t, name, columns.TypeBoolean)
}

func typedColumn[C columns.Column](t *Table, name string, want columns.ColumnType) (C, error) {
	var zero C
	col, err := t.Column(name)
	if err != nil {
		return zero, err
	}
	typed, ok := col.(C)
	if !ok {
		return zero, fmt.Errorf("%w: column %q is %s, not %s", errs.ErrTypeMismatch, name, col.Type(), want)
	}
	return typed, nil
}

// Where returns a new table holding the selected rows of every column.
// Indices at or beyond RowCount are ignored.
func (t *Table) Where(sel *selection.Selection) *Table {
	return t.derive(t.name, func(c columns.Column) columns.Column { return c.WhereColumn(sel) })
}

// Rows returns a new table holding the given rows, in the given order.
func (t *Table) Rows(rows ...int) (*Table, error) {
	n := t.RowCount()
	for _, r := range rows {
		if r < 0 || r >= n {
			return nil, errs.IndexOutOfRange(r, n)
		}
	}
	return t.take(rows), nil
}

func (t *Table) take(rows []int) *Table {
	return t.derive(t.name, func(c columns.Column) columns.Column { return c.TakeColumn(rows) })
}

// First returns the first n rows, or the whole table when it is shorter.
func (t *Table) First(n int) *Table {
	return t.Where(selection.WithRange(0, min(n, t.RowCount())))
}

// Last returns the last n rows, or the whole table when it is shorter.
func (t *Table) Last(n int) *Table {
	rows := t.RowCount()
	return t.Where(selection.WithRange(max(rows-n, 0), rows))
}

// Copy returns a deep copy; mutating it never affects t.
func (t *Table) Copy() *Table {
	return t.derive(t.name, func(c columns.Column) columns.Column { return c.CopyColumn() })
}

// EmptyCopy returns a table with the same columns and no rows.
func (t *Table) EmptyCopy() *Table {
	return t.derive(t.name, func(c columns.Column) columns.Column { return c.EmptyCopy(0) })
}

// Append adds the rows of other, whose columns must match t by name and
// kind.
func (t *Table) Append(other *Table) error {
	if other.ColumnCount() != t.ColumnCount() {
		return fmt.Errorf("%w: table %q has %d columns, table %q has %d",
			errs.ErrLengthMismatch, other.name, other.ColumnCount(), t.name, t.ColumnCount())
	}
	srcs := make([]columns.Column, len(t.columns))
	for i, c := range t.columns {
		src, err := other.Column(c.Name())
		if err != nil {
			return err
		}
		if src.Type() != c.Type() {
			return fmt.Errorf("%w: column %q is %s in %q and %s in %q",
				errs.ErrTypeMismatch, c.Name(), c.Type(), t.name, src.Type(), other.name)
		}
		srcs[i] = src
	}
	for i, c := range t.columns {
		if err := c.AppendColumn(srcs[i]); err != nil {
			return err
		}
	}
	return nil
}

// derive builds a table whose columns are fn applied to each column of t.
// fn preserves column names and yields equal sizes, so the invariants hold
// without revalidation.
func (t *Table) derive(name string, fn func(columns.Column) columns.Column) *Table {
	out := &Table{
		name:    name,
		columns: make([]columns.Column, len(t.columns)),
		byName:  make(map[string]int, len(t.columns)),
	}
	for i, c := range t.columns {
		out.columns[i] = fn(c)
		out.byName[c.Name()] = i
	}
	return out
}

func (t *Table) String() string {
	return t.Print(DefaultPrintRows)
}
