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

// Package csvimport loads delimited text into tables and writes tables
// back out. Column kinds are inferred from the data unless overridden.
package csvimport

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/colframe/core/columns"
	"github.com/google/colframe/core/errs"
	"github.com/google/colframe/core/logging"
	"github.com/google/colframe/core/tables"
)

// CsvColumnType specifies the data type for a column
type CsvColumnType int

const (
	// CsvColumnTypeAuto auto-detects type from data (default)
	CsvColumnTypeAuto CsvColumnType = iota
	// CsvColumnTypeString forces string type
	CsvColumnTypeString
	// CsvColumnTypeInteger forces int64 type
	CsvColumnTypeInteger
	// CsvColumnTypeDouble forces float64 type
	CsvColumnTypeDouble
	// CsvColumnTypeBoolean forces bool type
	CsvColumnTypeBoolean
)

// CsvColumnSource defines how a column is imported
type CsvColumnSource struct {
	// Name renames the column (defaults to the header name)
	Name string
	// Type specifies the data type for this column (default: auto-detect)
	Type CsvColumnType
}

// ImportOptions configures CSV import behavior
type ImportOptions struct {
	// HasHeader indicates whether the first row contains column headers
	HasHeader bool
	// Delimiter is the field delimiter (defaults to comma)
	Delimiter rune
	// ColumnSources provides configuration for specific columns by header name
	ColumnSources map[string]CsvColumnSource
	// SampleSize is the number of rows to sample for type detection; 0 samples every row
	SampleSize int
	// MissingValues lists the tokens, after trimming, read as missing cells
	MissingValues []string
	// TableName names the result; ImportFromFile defaults it to the file's base name
	TableName string
	// Logger receives load diagnostics; nil uses logging.Logger()
	Logger *slog.Logger
}

// DefaultOptions returns default import options
func DefaultOptions() ImportOptions {
	return ImportOptions{
		HasHeader:     true,
		Delimiter:     ',',
		ColumnSources: make(map[string]CsvColumnSource),
		SampleSize:    0,
		MissingValues: []string{"", "NA", "N/A", "null"},
	}
}

func (o ImportOptions) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return logging.Logger()
}

// ImportFromFile imports a CSV file and returns a Table. A missing file
// fails with errs.ErrFileNotFound.
func ImportFromFile(path string, options ImportOptions) (*tables.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", errs.ErrFileNotFound, path, err)
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	if options.TableName == "" {
		base := filepath.Base(path)
		options.TableName = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return ImportFromReader(file, options)
}

// record is one data row and the input line it started on.
type record struct {
	fields []string
	line   int
}

// ImportFromReader imports CSV data from an io.Reader and returns a Table.
// Rows whose field count differs from the first row fail with an
// *errs.ParseError naming the line.
func ImportFromReader(reader io.Reader, options ImportOptions) (*tables.Table, error) {
	log := options.logger()

	csvReader := csv.NewReader(skipBOM(reader))
	if options.Delimiter != 0 {
		csvReader.Comma = options.Delimiter
	}

	var records []record
	for {
		fields, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var csvErr *csv.ParseError
			if errors.As(err, &csvErr) {
				return nil, &errs.ParseError{Line: csvErr.Line, Row: -1, Err: csvErr.Err}
			}
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		line, _ := csvReader.FieldPos(0)
		records = append(records, record{fields: fields, line: line})
	}

	if len(records) == 0 {
		return nil, &errs.ParseError{Line: -1, Row: -1, Err: errors.New("CSV input is empty")}
	}

	// Extract headers
	var headers []string
	dataRows := records
	if options.HasHeader {
		headers = uniqueHeaders(records[0].fields, log)
		dataRows = records[1:]
	} else {
		// Generate column names if no header
		headers = make([]string, len(records[0].fields))
		for i := range headers {
			headers[i] = fmt.Sprintf("column_%d", i+1)
		}
	}

	missing := make(map[string]bool, len(options.MissingValues))
	for _, m := range options.MissingValues {
		missing[m] = true
	}

	kinds := detectColumnTypes(headers, dataRows, options.SampleSize, options.ColumnSources, missing)

	cols := make([]columns.Column, len(headers))
	for i, header := range headers {
		name := header
		if src, ok := options.ColumnSources[header]; ok && src.Name != "" {
			name = src.Name
		}
		col, err := columns.New(kinds[i], name)
		if err != nil {
			return nil, err
		}
		cols[i] = col
	}

	// Populate the columns
	for r, row := range dataRows {
		for i, col := range cols {
			value := strings.TrimSpace(row.fields[i])
			if missing[value] {
				col.AppendMissing()
				continue
			}
			if err := col.AppendString(value); err != nil {
				return nil, &errs.ParseError{Line: row.line, Row: r, Column: col.Name(), Value: value, Err: err}
			}
		}
	}

	table, err := tables.NewTable(options.TableName, cols...)
	if err != nil {
		return nil, err
	}
	log.Debug("imported CSV",
		"table", options.TableName,
		"rows", table.RowCount(),
		"columns", table.ColumnCount())
	return table, nil
}

// skipBOM drops a leading UTF-8 byte order mark, which spreadsheet
// exports often write before the header.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if c, _, err := br.ReadRune(); err == nil && c != '\ufeff' {
		_ = br.UnreadRune()
	}
	return br
}

// uniqueHeaders names blank headers column_N and suffixes repeats so every
// column name is unique.
func uniqueHeaders(raw []string, log *slog.Logger) []string {
	headers := make([]string, len(raw))
	seen := make(map[string]int, len(raw))
	for i, h := range raw {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("column_%d", i+1)
			log.Warn("blank CSV header", "position", i, "name", h)
		}
		if n := seen[h]; n > 0 {
			renamed := h + "_" + strconv.Itoa(n+1)
			log.Warn("duplicate CSV header", "name", h, "renamed", renamed)
			seen[h]++
			h = renamed
		}
		seen[h]++
		headers[i] = h
	}
	return headers
}

// detectColumnTypes samples data to pick the narrowest kind that accepts
// every sampled value: integer, then double, then boolean, then string.
// Columns with no sampled value are strings.
func detectColumnTypes(headers []string, dataRows []record, sampleSize int, configs map[string]CsvColumnSource, missing map[string]bool) []columns.ColumnType {
	types := make([]columns.ColumnType, len(headers))

	// Sample rows for type detection
	rowsToSample := len(dataRows)
	if sampleSize > 0 && sampleSize < rowsToSample {
		rowsToSample = sampleSize
	}

	for i, header := range headers {
		// Check if type is explicitly set
		if config, ok := configs[header]; ok && config.Type != CsvColumnTypeAuto {
			types[i] = config.Type.columnType()
			continue
		}

		isInt, isDouble, isBool := true, true, true
		hasNonEmpty := false
		for j := 0; j < rowsToSample && (isInt || isDouble || isBool); j++ {
			value := strings.TrimSpace(dataRows[j].fields[i])
			if missing[value] {
				continue
			}
			hasNonEmpty = true

			if isInt {
				if _, err := strconv.ParseInt(value, 10, 64); err != nil {
					isInt = false
				}
			}
			if isDouble {
				if _, err := columns.ParseFloat64(value); err != nil {
					isDouble = false
				}
			}
			if isBool {
				if _, err := columns.ParseBool(value); err != nil {
					isBool = false
				}
			}
		}

		switch {
		case !hasNonEmpty:
			types[i] = columns.TypeString
		case isInt:
			types[i] = columns.TypeInteger
		case isDouble:
			types[i] = columns.TypeDouble
		case isBool:
			types[i] = columns.TypeBoolean
		default:
			types[i] = columns.TypeString
		}
	}

	return types
}

func (t CsvColumnType) columnType() columns.ColumnType {
	switch t {
	case CsvColumnTypeInteger:
		return columns.TypeInteger
	case CsvColumnTypeDouble:
		return columns.TypeDouble
	case CsvColumnTypeBoolean:
		return columns.TypeBoolean
	default:
		return columns.TypeString
	}
}
