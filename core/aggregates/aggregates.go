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

// Package aggregates provides stateless reductions of a numeric column to a
// scalar. Every reduction runs over the present values only: missing cells
// are skipped, never counted as zero. Degenerate inputs (no values, or a
// single value for the dispersion measures) produce NaN instead of an error.
package aggregates

import (
	"math"
	"sort"
	"strings"

	"golang.org/x/exp/constraints"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Source is the view of a column that aggregate functions need.
type Source interface {
	Name() string
	Size() int
	CountMissing() int
	// Float64s returns the present values in row order.
	Float64s() []float64
}

// MissingPolicy controls how missing cells affect an aggregate.
type MissingPolicy int

const (
	// SkipMissing computes over the present values only.
	SkipMissing MissingPolicy = iota
	// PropagateMissing yields NaN when any cell is missing.
	PropagateMissing
)

// String returns the policy name.
func (p MissingPolicy) String() string {
	switch p {
	case SkipMissing:
		return "skip"
	case PropagateMissing:
		return "propagate"
	default:
		return "unknown"
	}
}

// AggregateFunction is a named reduction. The name labels summary columns.
type AggregateFunction struct {
	name string
	fn   func(values []float64, missing int) float64
	// countsOnly functions are meaningful even with missing cells present.
	countsOnly bool
}

// Name returns the display name, e.g. "Mean".
func (a AggregateFunction) Name() string {
	return a.name
}

// Summarize applies the function to src under the given policy.
func (a AggregateFunction) Summarize(src Source, policy MissingPolicy) float64 {
	missing := src.CountMissing()
	if policy == PropagateMissing && missing > 0 && !a.countsOnly {
		return math.NaN()
	}
	return a.fn(src.Float64s(), missing)
}

// Apply applies the function to already extracted present values.
func (a AggregateFunction) Apply(values []float64) float64 {
	return a.fn(values, 0)
}

var (
	Mean         = AggregateFunction{name: "Mean", fn: func(v []float64, _ int) float64 { return MeanOf(v) }}
	Sum          = AggregateFunction{name: "Sum", fn: func(v []float64, _ int) float64 { return SumOf(v) }}
	Median       = AggregateFunction{name: "Median", fn: func(v []float64, _ int) float64 { return MedianOf(v) }}
	Range        = AggregateFunction{name: "Range", fn: func(v []float64, _ int) float64 { return RangeOf(v) }}
	Min          = AggregateFunction{name: "Min", fn: func(v []float64, _ int) float64 { return MinOf(v) }}
	Max          = AggregateFunction{name: "Max", fn: func(v []float64, _ int) float64 { return MaxOf(v) }}
	StdDev       = AggregateFunction{name: "Std. Deviation", fn: func(v []float64, _ int) float64 { return StandardDeviationOf(v) }}
	Variance     = AggregateFunction{name: "Variance", fn: func(v []float64, _ int) float64 { return VarianceOf(v) }}
	Count        = AggregateFunction{name: "Count", fn: func(v []float64, _ int) float64 { return float64(len(v)) }, countsOnly: true}
	CountMissing = AggregateFunction{name: "Missing Values", fn: func(_ []float64, m int) float64 { return float64(m) }, countsOnly: true}
)

var byName = map[string]AggregateFunction{
	"mean":     Mean,
	"sum":      Sum,
	"median":   Median,
	"range":    Range,
	"min":      Min,
	"max":      Max,
	"std":      StdDev,
	"stddev":   StdDev,
	"variance": Variance,
	"count":    Count,
	"missing":  CountMissing,
}

// Lookup returns the function with the given short name, such as "mean"
// or "std". Names are case-insensitive.
func Lookup(name string) (AggregateFunction, bool) {
	fn, ok := byName[strings.ToLower(strings.TrimSpace(name))]
	return fn, ok
}

// SumOf returns the sum of values, 0 when empty.
func SumOf(values []float64) float64 {
	return floats.Sum(values)
}

// MeanOf returns the arithmetic mean, NaN when empty.
func MeanOf(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	return stat.Mean(values, nil)
}

// VarianceOf returns the sample variance (n-1 denominator), NaN when fewer
// than two values are present.
func VarianceOf(values []float64) float64 {
	if len(values) < 2 {
		return math.NaN()
	}
	return stat.Variance(values, nil)
}

// StandardDeviationOf returns the sample standard deviation, NaN when fewer
// than two values are present.
func StandardDeviationOf(values []float64) float64 {
	if len(values) < 2 {
		return math.NaN()
	}
	return stat.StdDev(values, nil)
}

// MinOf returns the smallest value, NaN when empty.
func MinOf(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	return floats.Min(values)
}

// MaxOf returns the largest value, NaN when empty.
func MaxOf(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	return floats.Max(values)
}

// RangeOf returns max - min, NaN when empty.
func RangeOf(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	return floats.Max(values) - floats.Min(values)
}

// MedianOf returns the middle value; for an even count it interpolates
// linearly between the two middle values. NaN when empty.
func MedianOf(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return math.NaN()
	}
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// ToFloat64s widens a numeric slice to float64.
func ToFloat64s[T constraints.Integer | constraints.Float](values []T) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}

// ColumnName returns the summary column label for fn applied to column,
// e.g. "Mean [price]".
func ColumnName(fn AggregateFunction, column string) string {
	return fn.Name() + " [" + column + "]"
}
