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
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/colframe/core/errs"
)

func TestStringColumnCreationWithName(t *testing.T) {
	c := NewStringColumn("My Column")
	assert.Equal(t, "My Column", c.Name())
	assert.Equal(t, 0, c.Size())
	assert.Equal(t, TypeString, c.Type())
}

func TestStringColumnRoundTrip(t *testing.T) {
	values := []string{"a", "b", "c", "d", "e", "f"}
	c := NewStringColumn("default_string_column", values...)
	for i, want := range values {
		got, ok, err := c.Get(i)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}
}

func TestStringColumnMissingCells(t *testing.T) {
	c := NewSizedStringColumn("s", 2)
	require.NoError(t, c.Set(1, ""))
	assert.Equal(t, []int{0}, c.IsMissing().Indices(), "an explicit empty string is present")
	assert.Equal(t, []int{1}, c.IsEmptyString().Indices())

	require.NoError(t, c.AppendString(""))
	assert.True(t, c.IsMissingAt(2))

	s, err := c.GetString(0)
	require.NoError(t, err)
	assert.Equal(t, "", s)
}

func TestStringColumnPredicates(t *testing.T) {
	c := NewStringColumn("city", "Delhi", "Mumbai", "Chennai", "Kolkata", "Delhi")
	assert.Equal(t, []int{0, 4}, c.IsEqualTo("Delhi").Indices())
	assert.Equal(t, []int{1, 2, 3}, c.IsNotEqualTo("Delhi").Indices())
	assert.Equal(t, []int{1, 3}, c.IsIn("Mumbai", "Kolkata").Indices())
	assert.Equal(t, []int{0, 2, 4}, c.IsNotIn("Mumbai", "Kolkata").Indices())
	assert.Equal(t, []int{2}, c.StartsWith("Ch").Indices())
	assert.Equal(t, []int{3}, c.EndsWith("ta").Indices())
	assert.Equal(t, []int{1}, c.Contains("mba").Indices())

	sel, err := c.MatchesRegex("[DK].*")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 4}, sel.Indices())

	_, err = c.MatchesRegex("(")
	assert.Error(t, err)
}

func TestStringColumnTransforms(t *testing.T) {
	c := NewStringColumn("s", " Ab ", "cD")
	require.NoError(t, c.AppendString(""))

	assert.Equal(t, []string{" AB ", "CD", ""}, c.UpperCase().AsSlice())
	assert.Equal(t, []string{" ab ", "cd", ""}, c.LowerCase().AsSlice())
	assert.Equal(t, []string{"Ab", "cD", ""}, c.Trim().AsSlice())
	assert.Equal(t, []int{2}, c.Trim().IsMissing().Indices())
	assert.Equal(t, []string{" Xb ", "cD", ""}, c.ReplaceAll("A", "X").AsSlice())
	assert.Equal(t, []string{"Ab", "D", ""}, c.Substring(1, 3).AsSlice())
	assert.Equal(t, []string{"", "", ""}, c.Substring(5, 2).AsSlice())

	lengths := c.Length()
	assert.Equal(t, []int64{4, 2, 0}, lengths.AsSlice())
	assert.True(t, lengths.IsMissingAt(2))
}

func TestStringColumnReplaceAllRegexAndParseDouble(t *testing.T) {
	prices := NewStringColumn("Cars Prices", "$1,100,000", "$460,000 ", "n/a")
	digits := prices.ReplaceAllRegex(regexp.MustCompile(`[^0-9]`), "")
	assert.Equal(t, []string{"1100000", "460000", ""}, digits.AsSlice())

	parsed := digits.ParseDouble()
	assert.Equal(t, TypeDouble, parsed.Type())
	assert.Equal(t, []int{2}, parsed.IsMissing().Indices())
	assert.InDelta(t, 780000, parsed.Mean(), 0.001)
}

func TestStringColumnUnique(t *testing.T) {
	c := NewStringColumn("airline", "Vistara", "Indigo", "Vistara", "AirAsia")
	c.AppendMissing()
	assert.Equal(t, []string{"Vistara", "Indigo", "AirAsia"}, c.Unique().AsSlice())
	assert.Equal(t, 3, c.CountUnique())
}

func TestStringColumnAppendColumn(t *testing.T) {
	a := NewStringColumn("a", "x")
	b := NewSizedStringColumn("b", 1)
	require.NoError(t, a.AppendColumn(b))
	assert.Equal(t, 2, a.Size())
	assert.True(t, a.IsMissingAt(1))
	assert.ErrorIs(t, a.AppendColumn(NewIntColumn("i", 1)), errs.ErrTypeMismatch)
}

func TestIntColumn(t *testing.T) {
	c := NewIntColumn("n", 5, 1, 3)
	c.AppendMissing()

	assert.Equal(t, TypeInteger, c.Type())
	assert.Equal(t, []int{0}, c.IsGreaterThan(3).Indices())
	assert.Equal(t, []int{0, 2}, c.IsGreaterThanOrEqualTo(3).Indices())
	assert.Equal(t, []int{1}, c.IsLessThan(3).Indices())
	assert.Equal(t, []int{1, 2}, c.IsLessThanOrEqualTo(3).Indices())
	assert.Equal(t, []int{1, 2}, c.IsBetweenInclusive(1, 3).Indices())
	assert.Equal(t, []int{0, 2}, c.IsNotIn(1).Indices())
	assert.Equal(t, []int{2}, c.IsEqualTo(3).Indices())
	assert.Equal(t, []int{0, 1}, c.IsNotEqualTo(3).Indices())

	assert.Equal(t, 9.0, c.Sum())
	assert.Equal(t, 3.0, c.Mean())
	assert.Equal(t, 3.0, c.Median())
	assert.Equal(t, 1.0, c.Min())
	assert.Equal(t, 5.0, c.Max())
	assert.InDelta(t, 2.0, c.StandardDeviation(), 1e-9)

	d := c.AsDoubleColumn()
	assert.Equal(t, "n", d.Name())
	assert.True(t, d.IsMissingAt(3))

	tripled := c.Multiply(3)
	v, ok, err := tripled.Get(0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 15.0, v)

	neg := c.Map(func(v int64) int64 { return -v })
	assert.Equal(t, []int64{-5, -1, -3, 0}, neg.AsSlice())

	require.NoError(t, c.AppendString("7"))
	assert.Error(t, c.AppendString("7.5"))
	s, err := c.GetString(4)
	require.NoError(t, err)
	assert.Equal(t, "7", s)
}

func TestBoolColumn(t *testing.T) {
	c := NewBoolColumn("flag", true, false, true)
	require.NoError(t, c.AppendString(""))
	require.NoError(t, c.AppendString("No"))
	assert.Error(t, c.AppendString("maybe"))

	assert.Equal(t, TypeBoolean, c.Type())
	assert.Equal(t, []int{0, 2}, c.IsTrue().Indices())
	assert.Equal(t, []int{1, 4}, c.IsFalse().Indices())
	assert.Equal(t, 2, c.CountTrue())
	assert.Equal(t, 2, c.CountFalse())

	s, err := c.GetString(0)
	require.NoError(t, err)
	assert.Equal(t, "true", s)
	s, err = c.GetString(3)
	require.NoError(t, err)
	assert.Equal(t, "", s)

	assert.Equal(t, -1, c.CompareRows(1, 0))
	assert.Equal(t, 1, c.CompareRows(3, 0))
}

func TestNewColumnFactory(t *testing.T) {
	for _, kind := range []ColumnType{TypeString, TypeInteger, TypeDouble, TypeBoolean} {
		c, err := New(kind, "c")
		require.NoError(t, err)
		assert.Equal(t, kind, c.Type())
		assert.Equal(t, 0, c.Size())

		sized := c.EmptyCopy(3)
		assert.Equal(t, 3, sized.Size())
		assert.Equal(t, 3, sized.CountMissing())
	}
	_, err := New(ColumnType(42), "c")
	assert.ErrorIs(t, err, errs.ErrTypeMismatch)
	assert.Equal(t, "DOUBLE", TypeDouble.String())
	assert.Equal(t, "UNKNOWN", ColumnType(42).String())
}

func TestWhereColumnKeepsKindAndName(t *testing.T) {
	var c Column = NewIntColumn("n", 1, 2, 3)
	c.SetName("renamed")
	w := c.WhereColumn(c.IsNotMissing())
	assert.IsType(t, &IntColumn{}, w)
	assert.Equal(t, "renamed", w.Name())

	cp := c.CopyColumn()
	assert.NotSame(t, c, cp)
	assert.Equal(t, 3, cp.Size())
}
