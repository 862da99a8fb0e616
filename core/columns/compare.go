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
	"math"

	"golang.org/x/exp/constraints"
)

// CompareAtIndex compares rows i and j of col.
// Returns -1 if value[i] < value[j], 0 if equal, 1 if value[i] > value[j].
// Missing cells compare greater than any present value.
func CompareAtIndex(col Column, i, j int) int {
	return col.CompareRows(i, j)
}

// compareRows compares two cells of a store using cmp for present values.
func compareRows[T any](c *DataColumn[T], i, j int, cmp func(a, b T) int) int {
	if r, done := compareMissing(c.missing.Contains(uint32(i)), c.missing.Contains(uint32(j))); done {
		return r
	}
	return cmp(c.data[i], c.data[j])
}

// compareOrdered compares two ordered values
func compareOrdered[T constraints.Ordered](a, b T) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// compareBools compares two bool values (false < true)
func compareBools(a, b bool) int {
	if a == b {
		return 0
	}
	if !a && b {
		return -1
	}
	return 1
}

// compareFloat64s compares two float64 values with NaN handling.
// NaN values are considered greater than all other values (sort to end).
func compareFloat64s(a, b float64) int {
	aNaN := math.IsNaN(a)
	bNaN := math.IsNaN(b)

	if aNaN && bNaN {
		return 0
	}
	if aNaN {
		return 1
	}
	if bNaN {
		return -1
	}
	return compareOrdered(a, b)
}
