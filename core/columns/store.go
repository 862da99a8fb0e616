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
	"strings"

	"github.com/RoaringBitmap/roaring"

	"github.com/google/colframe/core/errs"
	"github.com/google/colframe/core/selection"
)

// DataColumn holds the values and the missing bitmap shared by all column
// kinds. The value stored under a missing cell is the zero value of T and
// is never observed by callers.
type DataColumn[T any] struct {
	name    string
	data    []T
	missing *roaring.Bitmap
}

func newDataColumn[T any](name string, values []T) DataColumn[T] {
	data := make([]T, len(values))
	copy(data, values)
	return DataColumn[T]{name: name, data: data, missing: roaring.New()}
}

func newSizedDataColumn[T any](name string, size int) DataColumn[T] {
	if size < 0 {
		size = 0
	}
	missing := roaring.New()
	if size > 0 {
		missing.AddRange(0, uint64(size))
	}
	return DataColumn[T]{name: name, data: make([]T, size), missing: missing}
}

// Name returns the column name.
func (c *DataColumn[T]) Name() string {
	return c.name
}

// SetName renames the column.
func (c *DataColumn[T]) SetName(name string) {
	c.name = name
}

// Size returns the number of cells, missing ones included.
func (c *DataColumn[T]) Size() int {
	return len(c.data)
}

func (c *DataColumn[T]) checkIndex(i int) error {
	if i < 0 || i >= len(c.data) {
		return errs.IndexOutOfRange(i, len(c.data))
	}
	return nil
}

// IsMissingAt reports whether cell i is absent. Out-of-range indices
// report false.
func (c *DataColumn[T]) IsMissingAt(i int) bool {
	return i >= 0 && i < len(c.data) && c.missing.Contains(uint32(i))
}

// IsMissing returns the indices of all absent cells.
func (c *DataColumn[T]) IsMissing() *selection.Selection {
	return selection.FromBitmap(c.missing.Clone())
}

// IsNotMissing returns the indices of all present cells.
func (c *DataColumn[T]) IsNotMissing() *selection.Selection {
	return c.IsMissing().Not(len(c.data))
}

// CountMissing returns the number of absent cells.
func (c *DataColumn[T]) CountMissing() int {
	return int(c.missing.GetCardinality())
}

// SetMissing marks cell i absent without changing the size.
func (c *DataColumn[T]) SetMissing(i int) error {
	if err := c.checkIndex(i); err != nil {
		return err
	}
	var zero T
	c.data[i] = zero
	c.missing.Add(uint32(i))
	return nil
}

// AppendMissing appends an absent cell.
func (c *DataColumn[T]) AppendMissing() {
	var zero T
	c.missing.Add(uint32(len(c.data)))
	c.data = append(c.data, zero)
}

func (c *DataColumn[T]) get(i int) (T, bool, error) {
	var zero T
	if err := c.checkIndex(i); err != nil {
		return zero, false, err
	}
	if c.missing.Contains(uint32(i)) {
		return zero, false, nil
	}
	return c.data[i], true, nil
}

func (c *DataColumn[T]) set(i int, v T) error {
	if err := c.checkIndex(i); err != nil {
		return err
	}
	c.data[i] = v
	c.missing.Remove(uint32(i))
	return nil
}

func (c *DataColumn[T]) appendValue(v T) {
	c.data = append(c.data, v)
}

func (c *DataColumn[T]) appendData(other *DataColumn[T]) {
	offset := uint32(len(c.data))
	c.data = append(c.data, other.data...)
	other.missing.Iterate(func(x uint32) bool {
		c.missing.Add(offset + x)
		return true
	})
}

// where returns the cells at the selected indices, in ascending order.
// Indices outside the column are skipped.
func (c *DataColumn[T]) where(sel *selection.Selection) DataColumn[T] {
	out := DataColumn[T]{name: c.name, data: make([]T, 0, sel.Size()), missing: roaring.New()}
	sel.Iterate(func(i int) bool {
		if i >= len(c.data) {
			return false
		}
		if c.missing.Contains(uint32(i)) {
			out.missing.Add(uint32(len(out.data)))
		}
		out.data = append(out.data, c.data[i])
		return true
	})
	return out
}

// take returns the cells at rows, in the given order. Rows may repeat.
func (c *DataColumn[T]) take(rows []int) DataColumn[T] {
	out := DataColumn[T]{name: c.name, data: make([]T, len(rows)), missing: roaring.New()}
	for k, i := range rows {
		out.data[k] = c.data[i]
		if c.missing.Contains(uint32(i)) {
			out.missing.Add(uint32(k))
		}
	}
	return out
}

func (c *DataColumn[T]) clone() DataColumn[T] {
	data := make([]T, len(c.data))
	copy(data, c.data)
	return DataColumn[T]{name: c.name, data: data, missing: c.missing.Clone()}
}

func (c *DataColumn[T]) removeMissing() DataColumn[T] {
	return c.where(c.IsNotMissing())
}

// present returns the present values in row order.
func (c *DataColumn[T]) present() []T {
	if c.missing.IsEmpty() {
		out := make([]T, len(c.data))
		copy(out, c.data)
		return out
	}
	out := make([]T, 0, len(c.data)-c.CountMissing())
	for i, v := range c.data {
		if !c.missing.Contains(uint32(i)) {
			out = append(out, v)
		}
	}
	return out
}

// eval selects the present cells for which pred holds.
func (c *DataColumn[T]) eval(pred func(T) bool) *selection.Selection {
	b := selection.NewBuilder()
	for i, v := range c.data {
		if c.missing.Contains(uint32(i)) {
			continue
		}
		if pred(v) {
			b.Add(i)
		}
	}
	return b.Build()
}

// mapValues applies fn to every present cell; missing cells stay missing.
func mapValues[T, U any](c *DataColumn[T], name string, fn func(T) U) DataColumn[U] {
	out := DataColumn[U]{name: name, data: make([]U, len(c.data)), missing: c.missing.Clone()}
	for i, v := range c.data {
		if c.missing.Contains(uint32(i)) {
			continue
		}
		out.data[i] = fn(v)
	}
	return out
}

func compareMissing(aMissing, bMissing bool) (int, bool) {
	switch {
	case aMissing && bMissing:
		return 0, true
	case aMissing:
		return 1, true
	case bMissing:
		return -1, true
	}
	return 0, false
}

func (c *DataColumn[T]) print(format func(i int) string) string {
	var sb strings.Builder
	sb.WriteString("Column: ")
	sb.WriteString(c.name)
	sb.WriteByte('\n')
	for i := range c.data {
		sb.WriteString(format(i))
		sb.WriteByte('\n')
	}
	return sb.String()
}
