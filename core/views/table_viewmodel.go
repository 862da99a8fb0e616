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

// Package views turns tables into plain structs for the HTML templates.
package views

import (
	"github.com/google/safehtml"

	"github.com/google/colframe/core/tables"
)

// TableViewModel contains the data from the table formatted for template consumption
type TableViewModel struct {
	Title     string
	Anchor    safehtml.Identifier // Fragment for in-page links
	Headers   []string            // Column names
	Types     []string            // Column type names, parallel to Headers
	Rows      [][]CellViewModel
	TotalRows int
	// HiddenRows counts the rows left out of Rows.
	HiddenRows int
}

// CellViewModel is one rendered cell.
type CellViewModel struct {
	Value   string
	Missing bool
}

// LandingViewModel lists several tables on one page.
type LandingViewModel struct {
	Title  string
	Tables []TableSummary
}

// TableSummary describes one table on the landing page.
type TableSummary struct {
	Name        string
	RowCount    int
	ColumnCount int
	URL         safehtml.URL // Link to the table's section
	Structure   TableViewModel
	Head        TableViewModel
}

// BuildTableViewModel renders the first maxRows rows of t; a negative
// maxRows keeps every row.
func BuildTableViewModel(t *tables.Table, maxRows int) TableViewModel {
	total := t.RowCount()
	shown := total
	if maxRows >= 0 && maxRows < total {
		shown = maxRows
	}

	vm := TableViewModel{
		Title:      t.Name(),
		Anchor:     anchorFor(t.Name()),
		TotalRows:  total,
		HiddenRows: total - shown,
	}
	cols := t.Columns()
	for _, c := range cols {
		vm.Headers = append(vm.Headers, c.Name())
		vm.Types = append(vm.Types, c.Type().String())
	}
	vm.Rows = make([][]CellViewModel, shown)
	for row := 0; row < shown; row++ {
		cells := make([]CellViewModel, len(cols))
		for i, c := range cols {
			if c.IsMissingAt(row) {
				cells[i] = CellViewModel{Missing: true}
				continue
			}
			s, _ := c.GetString(row)
			cells[i] = CellViewModel{Value: s}
		}
		vm.Rows[row] = cells
	}
	return vm
}

// BuildLandingViewModel summarizes each table with its structure and its
// first headRows rows.
func BuildLandingViewModel(title string, ts []*tables.Table, headRows int) LandingViewModel {
	vm := LandingViewModel{Title: title}
	for _, t := range ts {
		vm.Tables = append(vm.Tables, TableSummary{
			Name:        t.Name(),
			RowCount:    t.RowCount(),
			ColumnCount: t.ColumnCount(),
			URL:         safehtml.URLSanitized("#" + anchorFor(t.Name()).String()),
			Structure:   BuildTableViewModel(t.Structure(), -1),
			Head:        BuildTableViewModel(t, headRows),
		})
	}
	return vm
}

// anchorFor maps a table name to an identifier "table-<slug>", where the
// slug is made of [a-z0-9-].
func anchorFor(name string) safehtml.Identifier {
	b := make([]byte, 0, len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b = append(b, byte(r))
		case r >= 'A' && r <= 'Z':
			b = append(b, byte(r-'A'+'a'))
		default:
			b = append(b, '-')
		}
	}
	return safehtml.IdentifierFromConstantPrefix("table", string(b))
}
