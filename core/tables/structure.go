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
	"github.com/google/colframe/core/columns"
)

const (
	StructureIndex = "Index"
	StructureName  = "Column Name"
	StructureType  = "Column Type"
)

// Structure describes the columns of t: their position, name and type.
// The result is independent of t.
func (t *Table) Structure() *Table {
	index := columns.NewIntColumn(StructureIndex)
	names := columns.NewStringColumn(StructureName)
	types := columns.NewStringColumn(StructureType)
	for i, c := range t.columns {
		index.Append(int64(i))
		names.Append(c.Name())
		types.Append(c.Type().String())
	}
	return &Table{
		name:    "Structure of " + t.name,
		columns: []columns.Column{index, names, types},
		byName:  map[string]int{StructureIndex: 0, StructureName: 1, StructureType: 2},
	}
}
