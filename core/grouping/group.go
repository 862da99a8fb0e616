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

// Package grouping partitions table rows by the values of one or more
// columns.
package grouping

import (
	"strconv"
	"strings"

	"github.com/google/colframe/core/columns"
	"github.com/google/colframe/core/selection"
)

// Terminology:
// * the columns whose values define a group are called grouped columns
// * every row of a group shares the same value (or missing cell) in each grouped column

type Group struct {
	GroupKey uint32
	// Representative row: its cells in the grouped columns are the group's key values.
	FirstRow int
	Indices  []int
}

func (g *Group) Length() int {
	return len(g.Indices)
}

// Selection returns the group's rows as a Selection.
func (g *Group) Selection() *selection.Selection {
	return selection.With(g.Indices...)
}

// Split groups rows [0, rowCount) by the composite value of cols.
// Groups are returned in order of first appearance; a missing cell is its
// own value, distinct from every present value including "".
func Split(cols []columns.Column, rowCount int) []*Group {
	groups := make([]*Group, 0)
	if rowCount <= 0 {
		return groups
	}
	if len(cols) == 0 {
		all := &Group{GroupKey: 0, FirstRow: 0, Indices: make([]int, rowCount)}
		for i := range all.Indices {
			all.Indices[i] = i
		}
		return append(groups, all)
	}

	valueToGroupKey := map[string]uint32{}
	var sb strings.Builder
	for i := 0; i < rowCount; i++ {
		sb.Reset()
		for _, col := range cols {
			if col.IsMissingAt(i) {
				// present parts always start with a digit
				sb.WriteString("\x00|")
				continue
			}
			s, _ := col.GetString(i)
			writeKeyPart(&sb, s)
		}
		key := sb.String()
		if groupKey, ok := valueToGroupKey[key]; ok {
			groups[groupKey].Indices = append(groups[groupKey].Indices, i)
			continue
		}
		groupKey := uint32(len(groups))
		valueToGroupKey[key] = groupKey
		groups = append(groups, &Group{GroupKey: groupKey, FirstRow: i, Indices: []int{i}})
	}
	return groups
}

// writeKeyPart length-prefixes s so composite keys cannot collide.
func writeKeyPart(sb *strings.Builder, s string) {
	sb.WriteString(strconv.Itoa(len(s)))
	sb.WriteByte(':')
	sb.WriteString(s)
	sb.WriteByte('|')
}
