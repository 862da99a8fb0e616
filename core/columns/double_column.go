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
	"math"
	"strconv"

	"github.com/google/colframe/core/aggregates"
	"github.com/google/colframe/core/errs"
	"github.com/google/colframe/core/selection"
)

// DoubleColumn stores float64 values.
// NaN is never stored as a present value: writing NaN through any method
// marks the cell missing instead.
type DoubleColumn struct {
	DataColumn[float64]
}

// NewDoubleColumn creates a double column holding values. NaN entries
// become missing cells.
func NewDoubleColumn(name string, values ...float64) *DoubleColumn {
	c := &DoubleColumn{DataColumn: newDataColumn(name, values)}
	c.normalizeNaN()
	return c
}

// NewSizedDoubleColumn creates a double column of size missing cells.
func NewSizedDoubleColumn(name string, size int) *DoubleColumn {
	return &DoubleColumn{DataColumn: newSizedDataColumn[float64](name, size)}
}

func wrapDouble(d DataColumn[float64]) *DoubleColumn {
	c := &DoubleColumn{DataColumn: d}
	c.normalizeNaN()
	return c
}

func (c *DoubleColumn) normalizeNaN() {
	for i, v := range c.data {
		if math.IsNaN(v) {
			c.data[i] = 0
			c.missing.Add(uint32(i))
		}
	}
}

// Type returns TypeDouble.
func (c *DoubleColumn) Type() ColumnType {
	return TypeDouble
}

// Get returns the value at index i. present is false for a missing cell.
func (c *DoubleColumn) Get(i int) (value float64, present bool, err error) {
	return c.get(i)
}

// Set overwrites cell i. Setting NaN marks the cell missing.
func (c *DoubleColumn) Set(i int, v float64) error {
	if math.IsNaN(v) {
		return c.SetMissing(i)
	}
	return c.set(i, v)
}

// Append adds a value. NaN appends a missing cell.
func (c *DoubleColumn) Append(v float64) {
	if math.IsNaN(v) {
		c.AppendMissing()
		return
	}
	c.appendValue(v)
}

// AppendString parses s and appends it.
// Recognizes "NaN", "Inf", "+Inf", "-Inf" as special values.
func (c *DoubleColumn) AppendString(s string) error {
	if s == "" {
		c.AppendMissing()
		return nil
	}
	v, err := ParseFloat64(s)
	if err != nil {
		return err
	}
	c.Append(v)
	return nil
}

// AppendColumn appends every cell of other, which must be a DoubleColumn.
func (c *DoubleColumn) AppendColumn(other Column) error {
	o, ok := other.(*DoubleColumn)
	if !ok {
		return typeMismatch(c, other)
	}
	c.appendData(&o.DataColumn)
	return nil
}

// GetString returns the display form of cell i.
func (c *DoubleColumn) GetString(i int) (string, error) {
	v, ok, err := c.get(i)
	if err != nil || !ok {
		return "", err
	}
	return FormatFloat64(v), nil
}

// FormatFloat64 formats a float64 value for display.
// Returns "NaN" for NaN, "+Inf"/"-Inf" for infinities.
func FormatFloat64(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	if math.IsInf(v, 1) {
		return "+Inf"
	}
	if math.IsInf(v, -1) {
		return "-Inf"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseFloat64 parses a string to float64.
// Recognizes "NaN", "Inf", "+Inf", "-Inf" as special values.
func ParseFloat64(s string) (float64, error) {
	switch s {
	case "NaN", "nan", "NAN":
		return math.NaN(), nil
	case "Inf", "+Inf", "inf", "+inf":
		return math.Inf(1), nil
	case "-Inf", "-inf":
		return math.Inf(-1), nil
	}
	return strconv.ParseFloat(s, 64)
}

// Where returns the selected cells as a new column.
func (c *DoubleColumn) Where(sel *selection.Selection) *DoubleColumn {
	return &DoubleColumn{DataColumn: c.where(sel)}
}

// WhereColumn implements Column.
func (c *DoubleColumn) WhereColumn(sel *selection.Selection) Column {
	return c.Where(sel)
}

// Take returns the cells at rows, in the given order.
func (c *DoubleColumn) Take(rows []int) *DoubleColumn {
	return &DoubleColumn{DataColumn: c.take(rows)}
}

func (c *DoubleColumn) TakeColumn(rows []int) Column {
	return c.Take(rows)
}

// Copy returns an independent deep copy.
func (c *DoubleColumn) Copy() *DoubleColumn {
	return &DoubleColumn{DataColumn: c.clone()}
}

// CopyColumn implements Column.
func (c *DoubleColumn) CopyColumn() Column {
	return c.Copy()
}

// EmptyCopy implements Column.
func (c *DoubleColumn) EmptyCopy(size int) Column {
	return NewSizedDoubleColumn(c.name, size)
}

// RemoveMissing returns a new column with only the present cells.
func (c *DoubleColumn) RemoveMissing() *DoubleColumn {
	return &DoubleColumn{DataColumn: c.removeMissing()}
}

// AsSlice returns every cell in row order; missing cells read as NaN.
func (c *DoubleColumn) AsSlice() []float64 {
	out := make([]float64, len(c.data))
	for i, v := range c.data {
		if c.missing.Contains(uint32(i)) {
			out[i] = math.NaN()
		} else {
			out[i] = v
		}
	}
	return out
}

// Float64s returns the present values in row order.
func (c *DoubleColumn) Float64s() []float64 {
	return c.present()
}

// CompareRows implements Column.
func (c *DoubleColumn) CompareRows(i, j int) int {
	return compareRows(&c.DataColumn, i, j, compareFloat64s)
}

// Print renders the column one value per line.
func (c *DoubleColumn) Print() string {
	return c.print(func(i int) string {
		s, _ := c.GetString(i)
		return s
	})
}

func (c *DoubleColumn) String() string {
	return fmt.Sprintf("Double column: %s", c.name)
}

// Predicates. Missing cells are never selected by a predicate, so
// IsNotIn and IsNotEqualTo only select present cells.

// Eval selects the present cells for which pred holds.
func (c *DoubleColumn) Eval(pred func(float64) bool) *selection.Selection {
	return c.eval(pred)
}

func (c *DoubleColumn) IsGreaterThan(v float64) *selection.Selection {
	return c.eval(func(x float64) bool { return x > v })
}

func (c *DoubleColumn) IsGreaterThanOrEqualTo(v float64) *selection.Selection {
	return c.eval(func(x float64) bool { return x >= v })
}

func (c *DoubleColumn) IsLessThan(v float64) *selection.Selection {
	return c.eval(func(x float64) bool { return x < v })
}

func (c *DoubleColumn) IsLessThanOrEqualTo(v float64) *selection.Selection {
	return c.eval(func(x float64) bool { return x <= v })
}

func (c *DoubleColumn) IsEqualTo(v float64) *selection.Selection {
	return c.eval(func(x float64) bool { return x == v })
}

func (c *DoubleColumn) IsNotEqualTo(v float64) *selection.Selection {
	return c.eval(func(x float64) bool { return x != v })
}

// IsBetweenInclusive selects cells in [lo, hi].
func (c *DoubleColumn) IsBetweenInclusive(lo, hi float64) *selection.Selection {
	return c.eval(func(x float64) bool { return x >= lo && x <= hi })
}

func (c *DoubleColumn) IsIn(values ...float64) *selection.Selection {
	set := make(map[float64]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return c.eval(func(x float64) bool {
		_, ok := set[x]
		return ok
	})
}

func (c *DoubleColumn) IsNotIn(values ...float64) *selection.Selection {
	return c.IsNotMissing().AndNot(c.IsIn(values...))
}

// Arithmetic. Results are new columns; missing cells stay missing and a
// NaN result (such as 0/0) becomes missing.

// Map applies fn to every present value.
func (c *DoubleColumn) Map(fn func(float64) float64) *DoubleColumn {
	return wrapDouble(mapValues(&c.DataColumn, c.name, fn))
}

func (c *DoubleColumn) Multiply(v float64) *DoubleColumn {
	return wrapDouble(mapValues(&c.DataColumn, c.name+" * "+FormatFloat64(v), func(x float64) float64 { return x * v }))
}

func (c *DoubleColumn) Add(v float64) *DoubleColumn {
	return wrapDouble(mapValues(&c.DataColumn, c.name+" + "+FormatFloat64(v), func(x float64) float64 { return x + v }))
}

func (c *DoubleColumn) Subtract(v float64) *DoubleColumn {
	return wrapDouble(mapValues(&c.DataColumn, c.name+" - "+FormatFloat64(v), func(x float64) float64 { return x - v }))
}

func (c *DoubleColumn) Divide(v float64) *DoubleColumn {
	return wrapDouble(mapValues(&c.DataColumn, c.name+" / "+FormatFloat64(v), func(x float64) float64 { return x / v }))
}

// Abs returns the absolute values.
func (c *DoubleColumn) Abs() *DoubleColumn {
	return wrapDouble(mapValues(&c.DataColumn, "abs("+c.name+")", math.Abs))
}

// Round rounds every value to the nearest integer, half away from zero.
func (c *DoubleColumn) Round() *DoubleColumn {
	return wrapDouble(mapValues(&c.DataColumn, "round("+c.name+")", math.Round))
}

func (c *DoubleColumn) AddColumn(other *DoubleColumn) (*DoubleColumn, error) {
	return c.combine(other, "+", func(a, b float64) float64 { return a + b })
}

func (c *DoubleColumn) SubtractColumn(other *DoubleColumn) (*DoubleColumn, error) {
	return c.combine(other, "-", func(a, b float64) float64 { return a - b })
}

func (c *DoubleColumn) MultiplyColumn(other *DoubleColumn) (*DoubleColumn, error) {
	return c.combine(other, "*", func(a, b float64) float64 { return a * b })
}

func (c *DoubleColumn) DivideColumn(other *DoubleColumn) (*DoubleColumn, error) {
	return c.combine(other, "/", func(a, b float64) float64 { return a / b })
}

// combine applies op element-wise; a cell is missing when either input is.
func (c *DoubleColumn) combine(other *DoubleColumn, symbol string, op func(a, b float64) float64) (*DoubleColumn, error) {
	if other.Size() != c.Size() {
		return nil, fmt.Errorf("%w: %q has %d rows, %q has %d",
			errs.ErrLengthMismatch, c.name, c.Size(), other.name, other.Size())
	}
	out := NewSizedDoubleColumn(c.name+" "+symbol+" "+other.name, c.Size())
	for i := range c.data {
		if c.IsMissingAt(i) || other.IsMissingAt(i) {
			continue
		}
		// Set routes a NaN result to missing
		_ = out.Set(i, op(c.data[i], other.data[i]))
	}
	return out, nil
}

// Aggregates over present values; see package aggregates for the
// degenerate-case policy.

func (c *DoubleColumn) Sum() float64 {
	return aggregates.SumOf(c.present())
}

func (c *DoubleColumn) Mean() float64 {
	return aggregates.MeanOf(c.present())
}

func (c *DoubleColumn) StandardDeviation() float64 {
	return aggregates.StandardDeviationOf(c.present())
}

func (c *DoubleColumn) Variance() float64 {
	return aggregates.VarianceOf(c.present())
}

func (c *DoubleColumn) Min() float64 {
	return aggregates.MinOf(c.present())
}

func (c *DoubleColumn) Max() float64 {
	return aggregates.MaxOf(c.present())
}

func (c *DoubleColumn) Median() float64 {
	return aggregates.MedianOf(c.present())
}

func (c *DoubleColumn) Range() float64 {
	return aggregates.RangeOf(c.present())
}

// Count returns the number of present cells.
func (c *DoubleColumn) Count() int {
	return c.Size() - c.CountMissing()
}

// Summarize applies fn under the given missing-value policy.
func (c *DoubleColumn) Summarize(fn aggregates.AggregateFunction, policy aggregates.MissingPolicy) float64 {
	return fn.Summarize(c, policy)
}
