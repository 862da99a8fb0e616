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
	"strings"
	"unicode/utf8"
)

// DefaultPrintRows is the number of rows String renders.
const DefaultPrintRows = 20

// Print returns the first maxRows rows of the table with ASCII borders.
// A negative maxRows prints every row. The output is for display only.
func (t *Table) Print(maxRows int) string {
	var sb strings.Builder

	rows := t.RowCount()
	shown := rows
	if maxRows >= 0 && maxRows < rows {
		shown = maxRows
	}

	if t.name != "" {
		sb.WriteString(t.name)
		sb.WriteString("\n")
	}
	if len(t.columns) == 0 {
		sb.WriteString("(no columns)\n")
		return sb.String()
	}

	colWidths := t.calculateColumnWidths(shown)

	writeRow := func(cell func(col int) string) {
		for col := range t.columns {
			sb.WriteString("| ")
			v := cell(col)
			sb.WriteString(v)
			sb.WriteString(strings.Repeat(" ", colWidths[col]-utf8.RuneCountInString(v)))
			sb.WriteString(" ")
		}
		sb.WriteString("|\n")
	}

	writeRow(func(col int) string { return t.columns[col].Name() })
	for col := range t.columns {
		sb.WriteString("|")
		sb.WriteString(strings.Repeat("-", colWidths[col]+2))
	}
	sb.WriteString("|\n")
	for row := 0; row < shown; row++ {
		writeRow(func(col int) string {
			s, _ := t.columns[col].GetString(row)
			return s
		})
	}
	if shown < rows {
		fmt.Fprintf(&sb, "... %d more rows\n", rows-shown)
	}
	return sb.String()
}

// calculateColumnWidths returns the width of each column over its header
// and the first rows cells.
func (t *Table) calculateColumnWidths(rows int) []int {
	widths := make([]int, len(t.columns))
	for i, c := range t.columns {
		widths[i] = max(1, utf8.RuneCountInString(c.Name()))
		for row := 0; row < rows; row++ {
			val, err := c.GetString(row)
			if err == nil && utf8.RuneCountInString(val) > widths[i] {
				widths[i] = utf8.RuneCountInString(val)
			}
		}
	}
	return widths
}
