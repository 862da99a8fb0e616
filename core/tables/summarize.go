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
	"fmt"

	"github.com/google/colframe/core/aggregates"
	"github.com/google/colframe/core/columns"
	"github.com/google/colframe/core/errs"
	"github.com/google/colframe/core/grouping"
)

// Summarizer builds a summary of one numeric column. Nothing is computed
// until Apply.
type Summarizer struct {
	table   *Table
	column  string
	fns     []aggregates.AggregateFunction
	groupBy []string
	policy  aggregates.MissingPolicy
}

// Summarize starts a summary of column using fns.
func (t *Table) Summarize(column string, fns ...aggregates.AggregateFunction) *Summarizer {
	return &Summarizer{table: t, column: column, fns: fns, policy: aggregates.SkipMissing}
}

// By groups the summary by the named columns.
func (s *Summarizer) By(groupColumns ...string) *Summarizer {
	s.groupBy = append(s.groupBy, groupColumns...)
	return s
}

// WithMissingPolicy sets how missing cells affect the aggregates. The
// default is aggregates.SkipMissing.
func (s *Summarizer) WithMissingPolicy(p aggregates.MissingPolicy) *Summarizer {
	s.policy = p
	return s
}

// Apply computes the summary.
//
// Without grouping the result has a single row and one DOUBLE column per
// function, named "<function> [<column>]". With grouping there is one row
// per distinct key, in order of first appearance, led by the grouping
// columns.
func (s *Summarizer) Apply() (*Table, error) {
	col, err := s.table.Column(s.column)
	if err != nil {
		return nil, err
	}
	if _, ok := col.(aggregates.Source); !ok {
		return nil, fmt.Errorf("%w: cannot summarize %s column %q", errs.ErrTypeMismatch, col.Type(), s.column)
	}
	keyCols := make([]columns.Column, len(s.groupBy))
	for i, name := range s.groupBy {
		if keyCols[i], err = s.table.Column(name); err != nil {
			return nil, err
		}
	}

	groups := grouping.Split(keyCols, s.table.RowCount())
	if len(keyCols) == 0 && len(groups) == 0 {
		// Summarizing an empty table still yields one row.
		groups = []*grouping.Group{{}}
	}

	firstRows := make([]int, len(groups))
	for i, g := range groups {
		firstRows[i] = g.FirstRow
	}
	out := make([]columns.Column, 0, len(keyCols)+len(s.fns))
	for _, kc := range keyCols {
		out = append(out, kc.TakeColumn(firstRows))
	}

	results := make([]*columns.DoubleColumn, len(s.fns))
	for i, fn := range s.fns {
		results[i] = columns.NewDoubleColumn(aggregates.ColumnName(fn, s.column))
	}
	for _, g := range groups {
		src := col.WhereColumn(g.Selection()).(aggregates.Source)
		for i, fn := range s.fns {
			results[i].Append(fn.Summarize(src, s.policy))
		}
	}
	for _, r := range results {
		out = append(out, r)
	}

	return NewTable(s.table.name+" summary", out...)
}
