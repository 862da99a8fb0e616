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
	"strconv"

	"github.com/google/colframe/core/aggregates"
	"github.com/google/colframe/core/errs"
	"github.com/google/colframe/core/selection"
)

// IntColumn stores int64 values.
type IntColumn struct {
	DataColumn[int64]
}

// NewIntColumn creates an int column holding values.
func NewIntColumn(name string, values ...int64) *IntColumn {
	return &IntColumn{DataColumn: newDataColumn(name, values)}
}

// NewSizedIntColumn creates an int column of size missing cells.
func NewSizedIntColumn(name string, size int) *IntColumn {
	return &IntColumn{DataColumn: newSizedDataColumn[int64](name, size)}
}

func (c *IntColumn) Type() ColumnType {
	return TypeInteger
}

// Get returns the value at index i. present is false for a missing cell.
func (c *IntColumn) Get(i int) (value int64, present bool, err error) {
	return c.get(i)
}

func (c *IntColumn) Set(i int, v int64) error {
	return c.set(i, v)
}

func (c *IntColumn) Append(v int64) {
	c.appendValue(v)
}

func (c *IntColumn) AppendString(s string) error {
	if s == "" {
		c.AppendMissing()
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	c.appendValue(v)
	return nil
}

func (c *IntColumn) AppendColumn(other Column) error {
	o, ok := other.(*IntColumn)
	if !ok {
		return typeMismatch(c, other)
	}
	c.appendData(&o.DataColumn)
	return nil
}

func (c *IntColumn) GetString(i int) (string, error) {
	v, ok, err := c.get(i)
	if err != nil || !ok {
		return "", err
	}
	return strconv.FormatInt(v, 10), nil
}

func (c *IntColumn) Where(sel *selection.Selection) *IntColumn {
	return &IntColumn{DataColumn: c.where(sel)}
}

func (c *IntColumn) WhereColumn(sel *selection.Selection) Column {
	return c.Where(sel)
}

func (c *IntColumn) Take(rows []int) *IntColumn {
	return &IntColumn{DataColumn: c.take(rows)}
}

func (c *IntColumn) TakeColumn(rows []int) Column {
	return c.Take(rows)
}

func (c *IntColumn) Copy() *IntColumn {
	return &IntColumn{DataColumn: c.clone()}
}

func (c *IntColumn) CopyColumn() Column {
	return c.Copy()
}

func (c *IntColumn) EmptyCopy(size int) Column {
	return NewSizedIntColumn(c.name, size)
}

func (c *IntColumn) RemoveMissing() *IntColumn {
	return &IntColumn{DataColumn: c.removeMissing()}
}

// AsSlice returns every cell in row order; missing cells read as 0.
func (c *IntColumn) AsSlice() []int64 {
	out := make([]int64, len(c.data))
	copy(out, c.data)
	return out
}

// Float64s returns the present values widened to float64.
func (c *IntColumn) Float64s() []float64 {
	return aggregates.ToFloat64s(c.present())
}

// AsDoubleColumn converts the column, keeping the name and missing cells.
func (c *IntColumn) AsDoubleColumn() *DoubleColumn {
	return wrapDouble(mapValues(&c.DataColumn, c.name, func(v int64) float64 { return float64(v) }))
}

func (c *IntColumn) CompareRows(i, j int) int {
	return compareRows(&c.DataColumn, i, j, compareOrdered[int64])
}

func (c *IntColumn) Print() string {
	return c.print(func(i int) string {
		s, _ := c.GetString(i)
		return s
	})
}

func (c *IntColumn) String() string {
	return fmt.Sprintf("Integer column: %s", c.name)
}

func (c *IntColumn) Eval(pred func(int64) bool) *selection.Selection {
	return c.eval(pred)
}

func (c *IntColumn) IsGreaterThan(v int64) *selection.Selection {
	return c.eval(func(x int64) bool { return x > v })
}

func (c *IntColumn) IsGreaterThanOrEqualTo(v int64) *selection.Selection {
	return c.eval(func(x int64) bool { return x >= v })
}

func (c *IntColumn) IsLessThan(v int64) *selection.Selection {
	return c.eval(func(x int64) bool { return x < v })
}

func (c *IntColumn) IsLessThanOrEqualTo(v int64) *selection.Selection {
	return c.eval(func(x int64) bool { return x <= v })
}

func (c *IntColumn) IsEqualTo(v int64) *selection.Selection {
	return c.eval(func(x int64) bool { return x == v })
}

func (c *IntColumn) IsNotEqualTo(v int64) *selection.Selection {
	return c.eval(func(x int64) bool { return x != v })
}

func (c *IntColumn) IsBetweenInclusive(lo, hi int64) *selection.Selection {
	return c.eval(func(x int64) bool { return x >= lo && x <= hi })
}

func (c *IntColumn) IsIn(values ...int64) *selection.Selection {
	set := make(map[int64]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return c.eval(func(x int64) bool {
		_, ok := set[x]
		return ok
	})
}

func (c *IntColumn) IsNotIn(values ...int64) *selection.Selection {
	return c.IsNotMissing().AndNot(c.IsIn(values...))
}

// Map applies fn to every present value.
func (c *IntColumn) Map(fn func(int64) int64) *IntColumn {
	return &IntColumn{DataColumn: mapValues(&c.DataColumn, c.name, fn)}
}

// Multiply returns the products as a double column.
func (c *IntColumn) Multiply(v float64) *DoubleColumn {
	return c.AsDoubleColumn().Multiply(v)
}

func (c *IntColumn) Add(v int64) *IntColumn {
	return &IntColumn{DataColumn: mapValues(&c.DataColumn, c.name+" + "+strconv.FormatInt(v, 10), func(x int64) int64 { return x + v })}
}

func (c *IntColumn) Subtract(v int64) *IntColumn {
	return &IntColumn{DataColumn: mapValues(&c.DataColumn, c.name+" - "+strconv.FormatInt(v, 10), func(x int64) int64 { return x - v })}
}

// Divide returns the quotients as a double column. 0/0 is missing.
func (c *IntColumn) Divide(v float64) *DoubleColumn {
	return c.AsDoubleColumn().Divide(v)
}

func (c *IntColumn) Abs() *IntColumn {
	return &IntColumn{DataColumn: mapValues(&c.DataColumn, "abs("+c.name+")", func(x int64) int64 {
		if x < 0 {
			return -x
		}
		return x
	})}
}

// Round is the identity on integers; it returns a renamed copy.
func (c *IntColumn) Round() *IntColumn {
	return &IntColumn{DataColumn: mapValues(&c.DataColumn, "round("+c.name+")", func(x int64) int64 { return x })}
}

func (c *IntColumn) AddColumn(other *IntColumn) (*IntColumn, error) {
	return c.combine(other, "+", func(a, b int64) int64 { return a + b })
}

func (c *IntColumn) SubtractColumn(other *IntColumn) (*IntColumn, error) {
	return c.combine(other, "-", func(a, b int64) int64 { return a - b })
}

func (c *IntColumn) MultiplyColumn(other *IntColumn) (*IntColumn, error) {
	return c.combine(other, "*", func(a, b int64) int64 { return a * b })
}

// DivideColumn divides element-wise into a double column.
func (c *IntColumn) DivideColumn(other *IntColumn) (*DoubleColumn, error) {
	return c.AsDoubleColumn().DivideColumn(other.AsDoubleColumn())
}

// combine applies op element-wise; a cell is missing when either input is.
func (c *IntColumn) combine(other *IntColumn, symbol string, op func(a, b int64) int64) (*IntColumn, error) {
	if other.Size() != c.Size() {
		return nil, fmt.Errorf("%w: %q has %d rows, %q has %d",
			errs.ErrLengthMismatch, c.name, c.Size(), other.name, other.Size())
	}
	out := NewSizedIntColumn(c.name+" "+symbol+" "+other.name, c.Size())
	for i := range c.data {
		if c.IsMissingAt(i) || other.IsMissingAt(i) {
			continue
		}
		_ = out.Set(i, op(c.data[i], other.data[i]))
	}
	return out, nil
}

func (c *IntColumn) Sum() float64 {
	return aggregates.SumOf(c.Float64s())
}

func (c *IntColumn) Mean() float64 {
	return aggregates.MeanOf(c.Float64s())
}

func (c *IntColumn) StandardDeviation() float64 {
	return aggregates.StandardDeviationOf(c.Float64s())
}

func (c *IntColumn) Min() float64 {
	return aggregates.MinOf(c.Float64s())
}

func (c *IntColumn) Max() float64 {
	return aggregates.MaxOf(c.Float64s())
}

func (c *IntColumn) Median() float64 {
	return aggregates.MedianOf(c.Float64s())
}

func (c *IntColumn) Variance() float64 {
	return aggregates.VarianceOf(c.Float64s())
}

func (c *IntColumn) Range() float64 {
	return aggregates.RangeOf(c.Float64s())
}

// Count returns the number of present cells.
func (c *IntColumn) Count() int {
	return c.Size() - c.CountMissing()
}

func (c *IntColumn) Summarize(fn aggregates.AggregateFunction, policy aggregates.MissingPolicy) float64 {
	return fn.Summarize(c, policy)
}
