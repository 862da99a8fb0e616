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

// Package demo builds small sample tables for the command line tool and
// for examples.
package demo

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/google/colframe/core/csvimport"
	"github.com/google/colframe/core/logging"
	"github.com/google/colframe/core/tables"
)

//go:embed data/orders.csv
var ordersCSV string

//go:embed data/regions.csv
var regionsCSV string

// tableOptions holds per-table import overrides.
var tableOptions = map[string]map[string]csvimport.CsvColumnSource{
	"orders": {
		"order_id": {Type: csvimport.CsvColumnTypeString},
	},
}

// importTable is a helper function to import an embedded CSV table
func importTable(name, csv string) (*tables.Table, error) {
	options := csvimport.DefaultOptions()
	options.TableName = name
	if sources, ok := tableOptions[name]; ok {
		options.ColumnSources = sources
	}

	table, err := csvimport.ImportFromReader(strings.NewReader(csv), options)
	if err != nil {
		return nil, fmt.Errorf("failed to import %s CSV: %w", name, err)
	}

	logging.Logger().Info("demo table imported", "table", name, "rows", table.RowCount())
	return table, nil
}

// CreateOrdersTable loads the sample order data.
func CreateOrdersTable() (*tables.Table, error) {
	return importTable("orders", ordersCSV)
}

// CreateRegionsTable loads the region information.
func CreateRegionsTable() (*tables.Table, error) {
	return importTable("regions", regionsCSV)
}

// CreateDemoTables returns every embedded sample table.
func CreateDemoTables() ([]*tables.Table, error) {
	orders, err := CreateOrdersTable()
	if err != nil {
		return nil, err
	}
	regions, err := CreateRegionsTable()
	if err != nil {
		return nil, err
	}
	return []*tables.Table{orders, regions}, nil
}
