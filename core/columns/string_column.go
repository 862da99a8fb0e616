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
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/colframe/core/selection"
)

// StringColumn stores text values.
// An empty string passed to Set or Append is a present value; only
// AppendString, SetMissing and AppendMissing create missing cells.
type StringColumn struct {
	DataColumn[string]
}

// NewStringColumn creates a string column holding values.
func NewStringColumn(name string, values ...string) *StringColumn {
	return &StringColumn{DataColumn: newDataColumn(name, values)}
}

// NewSizedStringColumn creates a string column of size missing cells.
func NewSizedStringColumn(name string, size int) *StringColumn {
	return &StringColumn{DataColumn: newSizedDataColumn[string](name, size)}
}

func (c *StringColumn) Type() ColumnType {
	return TypeString
}

// Get returns the value at index i. present is false for a missing cell.
func (c *StringColumn) Get(i int) (value string, present bool, err error) {
	return c.get(i)
}

func (c *StringColumn) Set(i int, v string) error {
	return c.set(i, v)
}

func (c *StringColumn) Append(v string) {
	c.appendValue(v)
}

// AppendString appends s; the empty string appends a missing cell.
func (c *StringColumn) AppendString(s string) error {
	if s == "" {
		c.AppendMissing()
		return nil
	}
	c.appendValue(s)
	return nil
}

func (c *StringColumn) AppendColumn(other Column) error {
	o, ok := other.(*StringColumn)
	if !ok {
		return typeMismatch(c, other)
	}
	c.appendData(&o.DataColumn)
	return nil
}

// GetString returns the string value at index i
func (c *StringColumn) GetString(i int) (string, error) {
	v, _, err := c.get(i)
	return v, err
}

func (c *StringColumn) Where(sel *selection.Selection) *StringColumn {
	return &StringColumn{DataColumn: c.where(sel)}
}

func (c *StringColumn) WhereColumn(sel *selection.Selection) Column {
	return c.Where(sel)
}

func (c *StringColumn) Take(rows []int) *StringColumn {
	return &StringColumn{DataColumn: c.take(rows)}
}

func (c *StringColumn) TakeColumn(rows []int) Column {
	return c.Take(rows)
}

func (c *StringColumn) Copy() *StringColumn {
	return &StringColumn{DataColumn: c.clone()}
}

func (c *StringColumn) CopyColumn() Column {
	return c.Copy()
}

func (c *StringColumn) EmptyCopy(size int) Column {
	return NewSizedStringColumn(c.name, size)
}

func (c *StringColumn) RemoveMissing() *StringColumn {
	return &StringColumn{DataColumn: c.removeMissing()}
}

// AsSlice returns every cell in row order; missing cells read as "".
func (c *StringColumn) AsSlice() []string {
	out := make([]string, len(c.data))
	copy(out, c.data)
	return out
}

func (c *StringColumn) CompareRows(i, j int) int {
	return compareRows(&c.DataColumn, i, j, strings.Compare)
}

func (c *StringColumn) Print() string {
	return c.print(func(i int) string { return c.data[i] })
}

func (c *StringColumn) String() string {
	return fmt.Sprintf("String column: %s", c.name)
}

// Predicates select present cells only.

func (c *StringColumn) Eval(pred func(string) bool) *selection.Selection {
	return c.eval(pred)
}

func (c *StringColumn) IsEqualTo(v string) *selection.Selection {
	return c.eval(func(x string) bool { return x == v })
}

func (c *StringColumn) IsNotEqualTo(v string) *selection.Selection {
	return c.eval(func(x string) bool { return x != v })
}

func (c *StringColumn) IsIn(values ...string) *selection.Selection {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return c.eval(func(x string) bool {
		_, ok := set[x]
		return ok
	})
}

func (c *StringColumn) IsNotIn(values ...string) *selection.Selection {
	return c.IsNotMissing().AndNot(c.IsIn(values...))
}

func (c *StringColumn) StartsWith(prefix string) *selection.Selection {
	return c.eval(func(x string) bool { return strings.HasPrefix(x, prefix) })
}

func (c *StringColumn) EndsWith(suffix string) *selection.Selection {
	return c.eval(func(x string) bool { return strings.HasSuffix(x, suffix) })
}

func (c *StringColumn) Contains(substr string) *selection.Selection {
	return c.eval(func(x string) bool { return strings.Contains(x, substr) })
}

// IsEmptyString selects present cells holding "".
func (c *StringColumn) IsEmptyString() *selection.Selection {
	return c.eval(func(x string) bool { return x == "" })
}

// MatchesRegex selects cells fully matched by pattern.
func (c *StringColumn) MatchesRegex(pattern string) (*selection.Selection, error) {
	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return nil, err
	}
	return c.eval(re.MatchString), nil
}

// Transforms return new columns; missing cells stay missing.

func (c *StringColumn) Map(fn func(string) string) *StringColumn {
	return &StringColumn{DataColumn: mapValues(&c.DataColumn, c.name, fn)}
}

func (c *StringColumn) UpperCase() *StringColumn {
	return c.Map(strings.ToUpper)
}

func (c *StringColumn) LowerCase() *StringColumn {
	return c.Map(strings.ToLower)
}

func (c *StringColumn) Trim() *StringColumn {
	return c.Map(strings.TrimSpace)
}

func (c *StringColumn) ReplaceAll(old, replacement string) *StringColumn {
	return c.Map(func(x string) string { return strings.ReplaceAll(x, old, replacement) })
}

// ReplaceAllRegex replaces every match of re with replacement.
func (c *StringColumn) ReplaceAllRegex(re *regexp.Regexp, replacement string) *StringColumn {
	return c.Map(func(x string) string { return re.ReplaceAllString(x, replacement) })
}

// Substring returns runes [start, end) of every value, clamped to the
// value's length.
func (c *StringColumn) Substring(start, end int) *StringColumn {
	return c.Map(func(x string) string {
		r := []rune(x)
		s, e := clamp(start, len(r)), clamp(end, len(r))
		if s >= e {
			return ""
		}
		return string(r[s:e])
	})
}

func clamp(v, n int) int {
	if v < 0 {
		return 0
	}
	if v > n {
		return n
	}
	return v
}

// Length returns the rune count of every value.
func (c *StringColumn) Length() *IntColumn {
	return &IntColumn{DataColumn: mapValues(&c.DataColumn, c.name+" length", func(x string) int64 {
		return int64(utf8.RuneCountInString(x))
	})}
}

// ParseDouble converts the column to doubles. Values that do not parse
// become missing cells.
func (c *StringColumn) ParseDouble() *DoubleColumn {
	out := NewSizedDoubleColumn(c.name, c.Size())
	for i, v := range c.data {
		if c.IsMissingAt(i) {
			continue
		}
		if f, err := ParseFloat64(strings.TrimSpace(v)); err == nil {
			_ = out.Set(i, f)
		}
	}
	return out
}

// Unique returns the distinct present values in first-appearance order.
func (c *StringColumn) Unique() *StringColumn {
	seen := make(map[string]struct{})
	out := NewStringColumn(c.name + " Unique values")
	for _, v := range c.present() {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out.Append(v)
	}
	return out
}

// CountUnique returns the number of distinct present values.
func (c *StringColumn) CountUnique() int {
	return c.Unique().Size()
}
