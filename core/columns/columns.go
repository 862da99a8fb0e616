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

// Package columns implements named, typed, nullable columns. Each column
// keeps its values in a slice and tracks absent cells in a separate bitmap,
// so a missing cell is never confused with a legitimate value.
package columns

import (
	"fmt"

	"github.com/google/colframe/core/errs"
	"github.com/google/colframe/core/selection"
)

// ColumnType identifies the scalar kind stored in a column.
type ColumnType int

const (
	TypeString ColumnType = iota
	TypeInteger
	TypeDouble
	TypeBoolean
)

// String returns the type name shown by Table.Structure.
func (t ColumnType) String() string {
	switch t {
	case TypeString:
		return "STRING"
	case TypeInteger:
		return "INTEGER"
	case TypeDouble:
		return "DOUBLE"
	case TypeBoolean:
		return "BOOLEAN"
	default:
		return "UNKNOWN"
	}
}

// Column is the capability shared by every column kind.
type Column interface {
	Name() string
	SetName(name string)
	Size() int
	Type() ColumnType

	// GetString returns the text form of cell i; a missing cell is "".
	GetString(i int) (string, error)
	IsMissingAt(i int) bool
	IsMissing() *selection.Selection
	IsNotMissing() *selection.Selection
	CountMissing() int
	SetMissing(i int) error

	AppendMissing()
	// AppendString parses s as the column's kind and appends it.
	// The empty string appends a missing cell.
	AppendString(s string) error
	// AppendColumn appends all cells of other, which must be the same kind.
	AppendColumn(other Column) error

	WhereColumn(sel *selection.Selection) Column
	// TakeColumn returns the cells at rows, in the given order. Every row
	// must be in range.
	TakeColumn(rows []int) Column
	CopyColumn() Column
	// EmptyCopy returns a column of the same name and kind with size
	// missing cells.
	EmptyCopy(size int) Column

	// CompareRows orders cells i and j; missing cells sort after present ones.
	CompareRows(i, j int) int

	Print() string
	String() string
}

// New creates an empty column of the given kind.
func New(kind ColumnType, name string) (Column, error) {
	switch kind {
	case TypeString:
		return NewStringColumn(name), nil
	case TypeInteger:
		return NewIntColumn(name), nil
	case TypeDouble:
		return NewDoubleColumn(name), nil
	case TypeBoolean:
		return NewBoolColumn(name), nil
	default:
		return nil, fmt.Errorf("%w: unsupported column type %d", errs.ErrTypeMismatch, kind)
	}
}

func typeMismatch(c Column, other Column) error {
	return fmt.Errorf("%w: cannot append %s column %q to %s column %q",
		errs.ErrTypeMismatch, other.Type(), other.Name(), c.Type(), c.Name())
}
