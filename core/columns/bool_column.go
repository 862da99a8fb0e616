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

package columns

import (
	"fmt"
	"strings"

	"github.com/google/colframe/core/selection"
)

// BoolColumn stores boolean values.
type BoolColumn struct {
	DataColumn[bool]
}

// NewBoolColumn creates a boolean column holding values.
func NewBoolColumn(name string, values ...bool) *BoolColumn {
	return &BoolColumn{DataColumn: newDataColumn(name, values)}
}

// NewSizedBoolColumn creates a boolean column of size missing cells.
func NewSizedBoolColumn(name string, size int) *BoolColumn {
	return &BoolColumn{DataColumn: newSizedDataColumn[bool](name, size)}
}

func (c *BoolColumn) Type() ColumnType {
	return TypeBoolean
}

// Get returns the value at index i. present is false for a missing cell.
func (c *BoolColumn) Get(i int) (value bool, present bool, err error) {
	return c.get(i)
}

func (c *BoolColumn) Set(i int, v bool) error {
	return c.set(i, v)
}

// Append adds a boolean value to the column.
func (c *BoolColumn) Append(value bool) {
	c.appendValue(value)
}

// AppendString parses and adds a boolean from a string.
// The empty string appends a missing cell.
func (c *BoolColumn) AppendString(s string) error {
	if s == "" {
		c.AppendMissing()
		return nil
	}
	b, err := ParseBool(s)
	if err != nil {
		return err
	}
	c.appendValue(b)
	return nil
}

// ParseBool parses a string to a boolean value.
// Accepts: "true", "false", "yes", "no", "t", "f", "y", "n" (case-insensitive).
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "t", "y":
		return true, nil
	case "false", "no", "f", "n":
		return false, nil
	default:
		return false, fmt.Errorf("cannot parse %q as boolean", s)
	}
}

func (c *BoolColumn) AppendColumn(other Column) error {
	o, ok := other.(*BoolColumn)
	if !ok {
		return typeMismatch(c, other)
	}
	c.appendData(&o.DataColumn)
	return nil
}

// GetString returns the string representation of the boolean at the given index.
func (c *BoolColumn) GetString(i int) (string, error) {
	v, ok, err := c.get(i)
	if err != nil || !ok {
		return "", err
	}
	if v {
		return "true", nil
	}
	return "false", nil
}

func (c *BoolColumn) Where(sel *selection.Selection) *BoolColumn {
	return &BoolColumn{DataColumn: c.where(sel)}
}

func (c *BoolColumn) WhereColumn(sel *selection.Selection) Column {
	return c.Where(sel)
}

func (c *BoolColumn) Take(rows []int) *BoolColumn {
	return &BoolColumn{DataColumn: c.take(rows)}
}

func (c *BoolColumn) TakeColumn(rows []int) Column {
	return c.Take(rows)
}

func (c *BoolColumn) Copy() *BoolColumn {
	return &BoolColumn{DataColumn: c.clone()}
}

func (c *BoolColumn) CopyColumn() Column {
	return c.Copy()
}

func (c *BoolColumn) EmptyCopy(size int) Column {
	return NewSizedBoolColumn(c.name, size)
}

func (c *BoolColumn) RemoveMissing() *BoolColumn {
	return &BoolColumn{DataColumn: c.removeMissing()}
}

func (c *BoolColumn) CompareRows(i, j int) int {
	return compareRows(&c.DataColumn, i, j, compareBools)
}

func (c *BoolColumn) Print() string {
	return c.print(func(i int) string {
		s, _ := c.GetString(i)
		return s
	})
}

func (c *BoolColumn) String() string {
	return fmt.Sprintf("Boolean column: %s", c.name)
}

// IsTrue selects the cells holding true.
func (c *BoolColumn) IsTrue() *selection.Selection {
	return c.eval(func(v bool) bool { return v })
}

// IsFalse selects the cells holding false.
func (c *BoolColumn) IsFalse() *selection.Selection {
	return c.eval(func(v bool) bool { return !v })
}

// CountTrue returns the number of true values in the column.
func (c *BoolColumn) CountTrue() int {
	return c.IsTrue().Size()
}

// CountFalse returns the number of false values in the column.
func (c *BoolColumn) CountFalse() int {
	return c.IsFalse().Size()
}
