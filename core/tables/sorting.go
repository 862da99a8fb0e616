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

package tables

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/google/colframe/core/columns"
	"github.com/google/colframe/core/errs"
)

// SortKey names a column and its sort direction.
type SortKey struct {
	Name       string
	Descending bool
}

func Ascending(name string) SortKey  { return SortKey{Name: name} }
func Descending(name string) SortKey { return SortKey{Name: name, Descending: true} }

// sortableColumn holds a column reference and its sort direction
type sortableColumn struct {
	col        columns.Column
	descending bool
}

func (t *Table) resolveKeys(keys []SortKey) ([]sortableColumn, error) {
	cols := make([]sortableColumn, 0, len(keys))
	for _, k := range keys {
		col, err := t.Column(k.Name)
		if err != nil {
			return nil, err
		}
		cols = append(cols, sortableColumn{col: col, descending: k.Descending})
	}
	return cols, nil
}

// compareRows orders rows i and j by each key in turn. Missing cells sort
// last whatever the direction, so only the present-vs-present result is
// reversed for a descending key.
func compareRows(cols []sortableColumn, i, j int) int {
	for _, sc := range cols {
		mi, mj := sc.col.IsMissingAt(i), sc.col.IsMissingAt(j)
		switch {
		case mi && mj:
			continue
		case mi:
			return 1
		case mj:
			return -1
		}
		cmp := columns.CompareAtIndex(sc.col, i, j)
		if cmp != 0 {
			if sc.descending {
				return -cmp
			}
			return cmp
		}
	}
	return 0
}

// SortOn returns a new table with rows ordered by keys. The sort is stable:
// rows that compare equal keep their relative order.
func (t *Table) SortOn(keys ...SortKey) (*Table, error) {
	cols, err := t.resolveKeys(keys)
	if err != nil {
		return nil, err
	}
	rows := make([]int, t.RowCount())
	for i := range rows {
		rows[i] = i
	}
	sortIndices(rows, cols)
	return t.take(rows), nil
}

// SortAscendingOn sorts by the named columns, smallest first.
func (t *Table) SortAscendingOn(names ...string) (*Table, error) {
	keys := make([]SortKey, len(names))
	for i, n := range names {
		keys[i] = Ascending(n)
	}
	return t.SortOn(keys...)
}

// SortDescendingOn sorts by the named columns, largest first.
func (t *Table) SortDescendingOn(names ...string) (*Table, error) {
	keys := make([]SortKey, len(names))
	for i, n := range names {
		keys[i] = Descending(n)
	}
	return t.SortOn(keys...)
}

// sortIndices sorts a slice of indices according to the sortable columns
func sortIndices(indices []int, cols []sortableColumn) {
	sort.SliceStable(indices, func(i, j int) bool {
		return compareRows(cols, indices[i], indices[j]) < 0
	})
}

// topKHeap keeps the best k rows seen so far with the worst of them on
// top, so a better candidate replaces the top in O(log k).
type topKHeap struct {
	indices []int
	cols    []sortableColumn
}

func (h *topKHeap) Len() int { return len(h.indices) }

// Less puts the worse row above the better one. Ties fall back on row
// position so the later row is evicted first, matching a stable sort.
func (h *topKHeap) Less(i, j int) bool {
	return h.worse(h.indices[i], h.indices[j])
}

func (h *topKHeap) worse(a, b int) bool {
	if cmp := compareRows(h.cols, a, b); cmp != 0 {
		return cmp > 0
	}
	return a > b
}

func (h *topKHeap) Swap(i, j int) {
	h.indices[i], h.indices[j] = h.indices[j], h.indices[i]
}

func (h *topKHeap) Push(x any) {
	h.indices = append(h.indices, x.(int))
}

func (h *topKHeap) Pop() any {
	old := h.indices
	n := len(old)
	x := old[n-1]
	h.indices = old[0 : n-1]
	return x
}

// Top returns the first n rows of the table sorted by keys, without
// sorting the whole table.
func (t *Table) Top(n int, keys ...SortKey) (*Table, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative row count %d", errs.ErrIndexOutOfRange, n)
	}
	cols, err := t.resolveKeys(keys)
	if err != nil {
		return nil, err
	}
	rows := t.RowCount()
	if len(cols) == 0 || n >= rows {
		if len(cols) == 0 {
			return t.First(n), nil
		}
		return t.SortOn(keys...)
	}

	h := &topKHeap{indices: make([]int, 0, n), cols: cols}
	for i := 0; i < n; i++ {
		h.indices = append(h.indices, i)
	}
	heap.Init(h)
	for i := n; i < rows && n > 0; i++ {
		if h.worse(h.indices[0], i) {
			h.indices[0] = i
			heap.Fix(h, 0)
		}
	}

	// Heap order is arbitrary; restore row order so the stable sort
	// breaks ties by position.
	result := h.indices
	sort.Ints(result)
	sortIndices(result, cols)
	return t.take(result), nil
}
