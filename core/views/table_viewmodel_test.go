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

package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/colframe/core/columns"
	"github.com/google/colframe/core/tables"
)

func sampleTable(t *testing.T) *tables.Table {
	t.Helper()
	price := columns.NewDoubleColumn("price", 1.5, 2, 3)
	require.NoError(t, price.SetMissing(1))
	tbl, err := tables.NewTable("Sales Q1", columns.NewStringColumn("item", "a", "b", "c"), price)
	require.NoError(t, err)
	return tbl
}

func TestBuildTableViewModel(t *testing.T) {
	vm := BuildTableViewModel(sampleTable(t), 2)

	assert.Equal(t, "Sales Q1", vm.Title)
	assert.Equal(t, "table-sales-q1", vm.Anchor.String())
	assert.Equal(t, []string{"item", "price"}, vm.Headers)
	assert.Equal(t, []string{"STRING", "DOUBLE"}, vm.Types)
	assert.Equal(t, 3, vm.TotalRows)
	assert.Equal(t, 1, vm.HiddenRows)
	require.Len(t, vm.Rows, 2)
	assert.Equal(t, CellViewModel{Value: "1.5"}, vm.Rows[0][1])
	assert.True(t, vm.Rows[1][1].Missing)
}

func TestBuildTableViewModelAllRows(t *testing.T) {
	vm := BuildTableViewModel(sampleTable(t), -1)
	assert.Len(t, vm.Rows, 3)
	assert.Zero(t, vm.HiddenRows)
}

func TestBuildLandingViewModel(t *testing.T) {
	vm := BuildLandingViewModel("Report", []*tables.Table{sampleTable(t)}, 1)

	require.Len(t, vm.Tables, 1)
	summary := vm.Tables[0]
	assert.Equal(t, 3, summary.RowCount)
	assert.Equal(t, 2, summary.ColumnCount)
	assert.Equal(t, "#table-sales-q1", summary.URL.String())
	assert.Len(t, summary.Structure.Rows, 2)
	assert.Len(t, summary.Head.Rows, 1)
}
