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
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/google/colframe/core/tables"
)

// ExportToWriter writes the table as CSV: a header row of column names,
// then one record per row. Missing cells are written as empty fields.
//
// A present empty string is also written as an empty field; the output
// cannot tell the two apart, and with the default MissingValues both read
// back as missing.
func ExportToWriter(w io.Writer, table *tables.Table, delimiter rune) error {
	writer := csv.NewWriter(w)
	if delimiter != 0 {
		writer.Comma = delimiter
	}

	if err := writer.Write(table.ColumnNames()); err != nil {
		return err
	}
	cols := table.Columns()
	record := make([]string, len(cols))
	for row := 0; row < table.RowCount(); row++ {
		for i, c := range cols {
			s, err := c.GetString(row)
			if err != nil {
				return err
			}
			record[i] = s
		}
		if len(record) == 1 && record[0] == "" {
			// A bare empty line would be skipped by readers.
			writer.Flush()
			if err := writer.Error(); err != nil {
				return err
			}
			if _, err := io.WriteString(w, "\"\"\n"); err != nil {
				return err
			}
			continue
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// ExportToFile writes the table to path, replacing any existing file.
func ExportToFile(path string, table *tables.Table, delimiter rune) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()
	return ExportToWriter(file, table, delimiter)
}
