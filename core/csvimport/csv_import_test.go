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

package csvimport

import (
	"bytes"
	"errors"
	"log/slog"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/colframe/core/aggregates"
	"github.com/google/colframe/core/columns"
	"github.com/google/colframe/core/errs"
	"github.com/google/colframe/core/tables"
)

func TestImportBasicCSV(t *testing.T) {
	csvData := `name,age,city
Alice,30,New York
Bob,25,Los Angeles
Charlie,35,Chicago`

	table, err := ImportFromReader(strings.NewReader(csvData), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 3, table.RowCount())
	assert.Equal(t, []string{"name", "age", "city"}, table.ColumnNames())

	nameCol, err := table.StringColumn("name")
	require.NoError(t, err)
	val, err := nameCol.GetString(0)
	require.NoError(t, err)
	assert.Equal(t, "Alice", val)

	ageCol, err := table.IntColumn("age")
	require.NoError(t, err)
	age, ok, err := ageCol.Get(0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(30), age)
}

func TestImportWithoutHeader(t *testing.T) {
	csvData := `Alice,30,New York
Bob,25,Los Angeles`

	options := DefaultOptions()
	options.HasHeader = false

	table, err := ImportFromReader(strings.NewReader(csvData), options)
	require.NoError(t, err)
	assert.Equal(t, 2, table.RowCount())

	col1, err := table.Column("column_1")
	require.NoError(t, err)
	val, err := col1.GetString(0)
	require.NoError(t, err)
	assert.Equal(t, "Alice", val)
}

func TestImportTypeInference(t *testing.T) {
	csvData := `i,d,b,s,empty,mixed
1,1.5,true,x,,1
2,2,false,y,,yes
-3,NaN,T,z,,2.5`

	table, err := ImportFromReader(strings.NewReader(csvData), DefaultOptions())
	require.NoError(t, err)

	s := table.Structure()
	types, err := s.StringColumn(tables.StructureType)
	require.NoError(t, err)
	assert.Equal(t, []string{"INTEGER", "DOUBLE", "BOOLEAN", "STRING", "STRING", "STRING"}, types.AsSlice())

	d, err := table.DoubleColumn("d")
	require.NoError(t, err)
	assert.Equal(t, 1, d.CountMissing(), "NaN is read as a missing cell")

	empty, err := table.Column("empty")
	require.NoError(t, err)
	assert.Equal(t, 3, empty.CountMissing())
}

func TestImportMissingValues(t *testing.T) {
	csvData := `price,label
10,a
NA,
 ,N/A
20,b`

	table, err := ImportFromReader(strings.NewReader(csvData), DefaultOptions())
	require.NoError(t, err)

	price, err := table.IntColumn("price")
	require.NoError(t, err)
	assert.Equal(t, 2, price.CountMissing())
	assert.Equal(t, 15.0, price.Mean())

	label, err := table.StringColumn("label")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, label.IsMissing().Indices())
}

func TestImportWithCsvColumnSource(t *testing.T) {
	csvData := `id,region,amount
1,North,100
2,South,200`

	options := DefaultOptions()
	options.ColumnSources = map[string]CsvColumnSource{
		"id": {
			Name: "Order ID",
			Type: CsvColumnTypeString, // Force string even though it looks numeric
		},
		"amount": {Type: CsvColumnTypeDouble},
	}

	table, err := ImportFromReader(strings.NewReader(csvData), options)
	require.NoError(t, err)

	idCol, err := table.StringColumn("Order ID")
	require.NoError(t, err)
	idVal, err := idCol.GetString(0)
	require.NoError(t, err)
	assert.Equal(t, "1", idVal)

	amount, err := table.DoubleColumn("amount")
	require.NoError(t, err)
	assert.Equal(t, 300.0, amount.Sum())
}

func TestImportWithDelimiter(t *testing.T) {
	csvData := "code;value\nA;1.5\nB;2.5\n"

	options := DefaultOptions()
	options.Delimiter = ';'

	table, err := ImportFromReader(strings.NewReader(csvData), options)
	require.NoError(t, err)

	codeCol, err := table.Column("code")
	require.NoError(t, err)
	codeVal, _ := codeCol.GetString(0)
	assert.Equal(t, "A", codeVal)

	valueCol, err := table.DoubleColumn("value")
	require.NoError(t, err)
	assert.Equal(t, 4.0, valueCol.Sum())
}

func TestImportSampleSize(t *testing.T) {
	csvData := `count
1
2
x`

	options := DefaultOptions()
	options.SampleSize = 2

	_, err := ImportFromReader(strings.NewReader(csvData), options)
	require.Error(t, err)

	var perr *errs.ParseError
	require.True(t, errors.As(err, &perr))
	assert.True(t, errors.Is(err, errs.ErrParse))
	assert.Equal(t, 2, perr.Row)
	assert.Equal(t, 4, perr.Line)
	assert.Equal(t, "count", perr.Column)
	assert.Equal(t, "x", perr.Value)

	// Sampling every row falls back to strings.
	table, err := ImportFromReader(strings.NewReader(csvData), DefaultOptions())
	require.NoError(t, err)
	countCol, err := table.Column("count")
	require.NoError(t, err)
	countVal, _ := countCol.GetString(1)
	assert.Equal(t, "2", countVal)
	assert.Equal(t, columns.TypeString, countCol.Type())
}

func TestImportRaggedRows(t *testing.T) {
	_, err := ImportFromFile(filepath.Join("testdata", "ragged.csv"), DefaultOptions())
	require.Error(t, err)

	var perr *errs.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 3, perr.Line)
	assert.ErrorIs(t, err, errs.ErrParse)
}

func TestImportEmptyInput(t *testing.T) {
	_, err := ImportFromReader(strings.NewReader(""), DefaultOptions())
	assert.ErrorIs(t, err, errs.ErrParse)
}

func TestImportHeaderOnly(t *testing.T) {
	table, err := ImportFromReader(strings.NewReader("a,b\n"), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 0, table.RowCount())
	assert.Equal(t, 2, table.ColumnCount())
}

func TestImportStripsByteOrderMark(t *testing.T) {
	table, err := ImportFromReader(strings.NewReader("\ufeffname,v\nx,1\n"), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "v"}, table.ColumnNames())
	assert.True(t, table.HasColumn("name"))

	quoted, err := ImportFromReader(strings.NewReader("\ufeff\"name\",v\nx,1\n"), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "v"}, quoted.ColumnNames())

	// only a leading mark is dropped
	data, err := ImportFromReader(strings.NewReader("s\n\ufeffx\n"), DefaultOptions())
	require.NoError(t, err)
	s, err := data.StringColumn("s")
	require.NoError(t, err)
	assert.Equal(t, []string{"\ufeffx"}, s.AsSlice())
}

func TestImportDuplicateHeaders(t *testing.T) {
	var logs bytes.Buffer
	options := DefaultOptions()
	options.Logger = slog.New(slog.NewTextHandler(&logs, nil))

	table, err := ImportFromReader(strings.NewReader("a,a,\n1,2,3\n"), options)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "a_2", "column_3"}, table.ColumnNames())
	assert.Contains(t, logs.String(), "duplicate CSV header")
	assert.Contains(t, logs.String(), "blank CSV header")
}

func TestImportFileNotFound(t *testing.T) {
	_, err := ImportFromFile(filepath.Join("testdata", "nope.csv"), DefaultOptions())
	assert.ErrorIs(t, err, errs.ErrFileNotFound)
}

func TestReadCarsData(t *testing.T) {
	cars, err := ImportFromFile(filepath.Join("testdata", "cars.csv"), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "cars", cars.Name())
	assert.Equal(t, 11, cars.ColumnCount())
	assert.Equal(t, 8, cars.RowCount())

	first, err := cars.ColumnAt(0)
	require.NoError(t, err)
	assert.Equal(t, "Company Names", first.Name())
	second, err := cars.ColumnAt(1)
	require.NoError(t, err)
	assert.Equal(t, "Cars Names", second.Name())

	seats, err := cars.IntColumn("Seats")
	require.NoError(t, err)
	assert.Equal(t, 27.0, seats.Sum())
}

func TestReadAirlinesData(t *testing.T) {
	airlines, err := ImportFromFile(filepath.Join("testdata", "airlines.csv"), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, 12, airlines.ColumnCount())
	for i, name := range map[int]string{1: "airline", 3: "source_city", 7: "destination_city"} {
		col, err := airlines.ColumnAt(i)
		require.NoError(t, err)
		assert.Equal(t, name, col.Name())
	}

	duration, err := airlines.Column("duration")
	require.NoError(t, err)
	assert.Equal(t, columns.TypeDouble, duration.Type())
}

func TestAddColumnWithType(t *testing.T) {
	airlines, err := ImportFromFile(filepath.Join("testdata", "airlines.csv"), DefaultOptions())
	require.NoError(t, err)

	original, err := airlines.Column("price")
	require.NoError(t, err)
	newPrice := columns.NewSizedDoubleColumn("new_price_column", original.Size())
	for i := 0; i < original.Size(); i++ {
		s, err := original.GetString(i)
		require.NoError(t, err)
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			require.NoError(t, newPrice.SetMissing(i))
			continue
		}
		require.NoError(t, newPrice.Set(i, v))
	}

	require.NoError(t, airlines.AddColumns(newPrice))

	added, err := airlines.ColumnAt(12)
	require.NoError(t, err)
	assert.Equal(t, "new_price_column", added.Name())
	_, err = airlines.DoubleColumn("new_price_column")
	require.NoError(t, err)
	assert.Equal(t, 1, added.CountMissing())

	types, err := airlines.Structure().StringColumn(tables.StructureType)
	require.NoError(t, err)
	assert.Equal(t, "DOUBLE", types.AsSlice()[12])
}

var priceSeparators = regexp.MustCompile(`[-/]`)
var nonDigits = regexp.MustCompile(`[^0-9]`)

func TestCleanDataAndSummarizeNumericColumn(t *testing.T) {
	cars, err := ImportFromFile(filepath.Join("testdata", "cars.csv"), DefaultOptions())
	require.NoError(t, err)

	prices, err := cars.StringColumn("Cars Prices")
	require.NoError(t, err)
	updated := columns.NewSizedDoubleColumn("Updated Car Price", prices.Size())
	for r := 0; r < prices.Size(); r++ {
		raw, ok, err := prices.Get(r)
		require.NoError(t, err)
		if !ok {
			continue
		}
		bounds := priceSeparators.Split(raw, -1)
		var sum, n float64
		for _, b := range bounds {
			digits := nonDigits.ReplaceAllString(b, "")
			if digits == "" {
				continue
			}
			v, err := strconv.ParseFloat(digits, 64)
			require.NoError(t, err)
			sum += v
			n++
		}
		if n > 0 {
			require.NoError(t, updated.Set(r, sum/n))
		}
	}
	require.NoError(t, cars.AddColumns(updated))

	summary, err := cars.Summarize("Updated Car Price",
		aggregates.Mean, aggregates.Median, aggregates.Range, aggregates.Max, aggregates.Min).Apply()
	require.NoError(t, err)
	assert.Equal(t, 1, summary.RowCount())
	assert.Equal(t, 5, summary.ColumnCount())

	mean, err := summary.DoubleColumn("Mean [Updated Car Price]")
	require.NoError(t, err)
	v, _, _ := mean.Get(0)
	assert.InDelta(t, 382890.0, v, 0.001)
	median, _ := summary.DoubleColumn("Median [Updated Car Price]")
	v, _, _ = median.Get(0)
	assert.Equal(t, 253290.0, v)
	rng, _ := summary.DoubleColumn("Range [Updated Car Price]")
	v, _, _ = rng.Get(0)
	assert.Equal(t, 1086500.0, v)

	sorted, err := cars.SortDescendingOn("Updated Car Price")
	require.NoError(t, err)
	company, _ := sorted.StringColumn("Company Names")
	assert.Equal(t, "FERRARI", company.AsSlice()[0])
	assert.Equal(t, "Tata Motors", company.AsSlice()[7])
}

func TestExportRoundTrip(t *testing.T) {
	price := columns.NewDoubleColumn("price", 1.5, 2)
	price.AppendMissing()
	name := columns.NewStringColumn("name", "a", "b, c", "d")
	original, err := tables.NewTable("t", name, price)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ExportToWriter(&buf, original, 0))
	assert.Equal(t, "name,price\na,1.5\n\"b, c\",2\nd,\n", buf.String())

	back, err := ImportFromReader(&buf, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, original.ColumnNames(), back.ColumnNames())
	p, err := back.DoubleColumn("price")
	require.NoError(t, err)
	assert.Equal(t, []int{2}, p.IsMissing().Indices())
	n, err := back.StringColumn("name")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b, c", "d"}, n.AsSlice())
}

func TestExportEmptyStringReadsBackMissing(t *testing.T) {
	name := columns.NewStringColumn("name", "", "b")
	name.AppendMissing()
	original, err := tables.NewTable("t", name)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ExportToWriter(&buf, original, 0))
	assert.Equal(t, "name\n\"\"\nb\n\"\"\n", buf.String())

	back, err := ImportFromReader(&buf, DefaultOptions())
	require.NoError(t, err)
	n, err := back.StringColumn("name")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, n.IsMissing().Indices())
}

func TestExportToFile(t *testing.T) {
	table, err := tables.NewTable("t", columns.NewIntColumn("x", 1, 2, 3))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, ExportToFile(path, table, '\t'))

	options := DefaultOptions()
	options.Delimiter = '\t'
	back, err := ImportFromFile(path, options)
	require.NoError(t, err)
	assert.Equal(t, "out", back.Name())
	x, err := back.IntColumn("x")
	require.NoError(t, err)
	assert.Equal(t, 6.0, x.Sum())
}
