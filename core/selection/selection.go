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

// Package selection provides Selection, an immutable ascending set of row
// indices produced by column predicates and consumed by Where.
package selection

import (
	"fmt"
	"strings"

	"github.com/RoaringBitmap/roaring"
)

// Selection is an ordered set of unique, non-negative row indices.
// A Selection is never modified after construction; all set operations
// return a new Selection.
type Selection struct {
	bm *roaring.Bitmap
}

// Empty returns a Selection with no indices.
func Empty() *Selection {
	return &Selection{bm: roaring.New()}
}

// With returns a Selection holding exactly the given indices, deduplicated
// and sorted. Negative indices are ignored.
func With(indices ...int) *Selection {
	bm := roaring.New()
	for _, i := range indices {
		if i < 0 {
			continue
		}
		bm.Add(uint32(i))
	}
	return &Selection{bm: bm}
}

// WithRange returns the Selection [start, end). A range with start >= end
// is empty; a negative start is clamped to zero.
func WithRange(start, end int) *Selection {
	if start < 0 {
		start = 0
	}
	bm := roaring.New()
	if start < end {
		bm.AddRange(uint64(start), uint64(end))
	}
	return &Selection{bm: bm}
}

// FromBitmap wraps a bitmap. The bitmap must not be modified afterwards.
func FromBitmap(bm *roaring.Bitmap) *Selection {
	if bm == nil {
		return Empty()
	}
	return &Selection{bm: bm}
}

// Builder accumulates indices in any order and produces a Selection.
type Builder struct {
	bm *roaring.Bitmap
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{bm: roaring.New()}
}

// Add adds row index i.
func (b *Builder) Add(i int) {
	if i >= 0 {
		b.bm.Add(uint32(i))
	}
}

// Build returns the accumulated Selection. The Builder must not be used
// after Build.
func (b *Builder) Build() *Selection {
	s := &Selection{bm: b.bm}
	b.bm = nil
	return s
}

// And returns the intersection of s and other.
func (s *Selection) And(other *Selection) *Selection {
	return &Selection{bm: roaring.And(s.bm, other.bm)}
}

// Or returns the union of s and other.
func (s *Selection) Or(other *Selection) *Selection {
	return &Selection{bm: roaring.Or(s.bm, other.bm)}
}

// AndNot returns the indices of s that are not in other.
func (s *Selection) AndNot(other *Selection) *Selection {
	return &Selection{bm: roaring.AndNot(s.bm, other.bm)}
}

// Not returns the complement of s within [0, universe).
func (s *Selection) Not(universe int) *Selection {
	if universe <= 0 {
		return Empty()
	}
	flipped := &Selection{bm: roaring.Flip(s.bm, 0, uint64(universe))}
	return flipped.clip(universe)
}

// clip drops indices >= n.
func (s *Selection) clip(n int) *Selection {
	if s.bm.IsEmpty() || int(s.bm.Maximum()) < n {
		return s
	}
	bm := s.bm.Clone()
	bm.RemoveRange(uint64(n), uint64(s.bm.Maximum())+1)
	return &Selection{bm: bm}
}

// Size returns the number of selected indices.
func (s *Selection) Size() int {
	return int(s.bm.GetCardinality())
}

// IsEmpty reports whether no index is selected.
func (s *Selection) IsEmpty() bool {
	return s.bm.IsEmpty()
}

// Contains reports whether row index i is selected.
func (s *Selection) Contains(i int) bool {
	return i >= 0 && s.bm.Contains(uint32(i))
}

// Get returns the n-th smallest selected index.
func (s *Selection) Get(n int) (int, error) {
	if n < 0 || n >= s.Size() {
		return 0, fmt.Errorf("selection position %d out of range [0:%d)", n, s.Size())
	}
	v, err := s.bm.Select(uint32(n))
	if err != nil {
		return 0, err
	}
	return int(v), nil
}

// Max returns the largest selected index, or -1 when empty.
func (s *Selection) Max() int {
	if s.bm.IsEmpty() {
		return -1
	}
	return int(s.bm.Maximum())
}

// Indices returns the selected indices in ascending order.
func (s *Selection) Indices() []int {
	out := make([]int, 0, s.Size())
	s.bm.Iterate(func(x uint32) bool {
		out = append(out, int(x))
		return true
	})
	return out
}

// Iterate calls fn for each index in ascending order until fn returns false.
func (s *Selection) Iterate(fn func(i int) bool) {
	s.bm.Iterate(func(x uint32) bool {
		return fn(int(x))
	})
}

// Equals reports whether both selections hold the same indices.
func (s *Selection) Equals(other *Selection) bool {
	if other == nil {
		return false
	}
	return s.bm.Equals(other.bm)
}

// Clone returns an independent copy of s.
func (s *Selection) Clone() *Selection {
	return &Selection{bm: s.bm.Clone()}
}

// Bitmap returns a copy of the underlying bitmap.
func (s *Selection) Bitmap() *roaring.Bitmap {
	return s.bm.Clone()
}

// String renders the selection as "[0, 4, 7]".
func (s *Selection) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	s.bm.Iterate(func(x uint32) bool {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&sb, "%d", x)
		return true
	})
	sb.WriteByte(']')
	return sb.String()
}
