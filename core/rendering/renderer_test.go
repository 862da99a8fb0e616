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

package rendering

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/colframe/core/columns"
	"github.com/google/colframe/core/tables"
)

func carsTable(t *testing.T) *tables.Table {
	t.Helper()
	price := columns.NewDoubleColumn("price", 1100000, 460000)
	price.AppendMissing()
	tbl, err := tables.NewTable("cars",
		columns.NewStringColumn("name", "SF90", "<PHANTOM>", "NEXON"),
		price,
	)
	require.NoError(t, err)
	return tbl
}

func TestRender(t *testing.T) {
	r, err := NewTableRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, carsTable(t), 2))
	out := buf.String()

	assert.Contains(t, out, "<title>cars</title>")
	assert.Contains(t, out, `id="table-cars"`)
	assert.Contains(t, out, "<td>1100000</td>")
	assert.Contains(t, out, "&lt;PHANTOM&gt;")
	assert.NotContains(t, out, "<PHANTOM>")
	assert.Contains(t, out, "1 more rows of 3")
	assert.Contains(t, out, "<small>DOUBLE</small>")
}

func TestRenderMissingCell(t *testing.T) {
	r, err := NewTableRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, carsTable(t), -1))
	assert.Contains(t, buf.String(), `<td class="missing"></td>`)
	assert.NotContains(t, buf.String(), "more rows")
}

func TestRenderLanding(t *testing.T) {
	r, err := NewTableRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.RenderLanding(&buf, "Datasets", []*tables.Table{carsTable(t)}, DefaultRows))
	out := buf.String()

	assert.Contains(t, out, "<h1>Datasets</h1>")
	assert.Contains(t, out, `href="#table-cars"`)
	assert.Contains(t, out, "(3 rows, 2 columns)")
	assert.Contains(t, out, "Structure of cars")
	assert.Contains(t, out, "<td>price</td>")
	assert.Contains(t, out, "<td>DOUBLE</td>")
}
