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

// Package errs defines the error taxonomy shared by columns, tables and
// the CSV importer. Every error returned by the engine wraps one of the
// sentinels below, so callers can branch with errors.Is.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned for positional access outside [0, size).
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrNotFound is returned when a column name is unknown.
	ErrNotFound = errors.New("not found")
	// ErrLengthMismatch is returned when column sizes conflict.
	ErrLengthMismatch = errors.New("length mismatch")
	// ErrTypeMismatch is returned when column element types are incompatible.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrDuplicateColumn is returned when a table already holds a column with the same name.
	ErrDuplicateColumn = errors.New("duplicate column")
	// ErrFileNotFound is returned by the CSV importer when the source file is missing.
	ErrFileNotFound = errors.New("file not found")
	// ErrParse is wrapped by every ParseError.
	ErrParse = errors.New("parse error")
)

// IndexOutOfRange builds an ErrIndexOutOfRange error for index i of a
// sequence of the given size.
func IndexOutOfRange(i, size int) error {
	return fmt.Errorf("%w: index %d, size %d", ErrIndexOutOfRange, i, size)
}

// ParseError describes a CSV input that could not be turned into a table.
// Line is the 1-based line in the source, Row the 0-based data row, and
// Column the header name of the offending cell. Fields that do not apply
// are left at their zero value (Row and Line at -1).
type ParseError struct {
	Line   int
	Row    int
	Column string
	Value  string
	Err    error
}

// Error returns a textual representation of this ParseError
func (e *ParseError) Error() string {
	switch {
	case e.Column != "":
		return fmt.Sprintf("parse error at row %d, column %q, value %q: %v", e.Row, e.Column, e.Value, e.Err)
	case e.Line >= 0:
		return fmt.Sprintf("parse error at line %d: %v", e.Line, e.Err)
	default:
		return fmt.Sprintf("parse error: %v", e.Err)
	}
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports ErrParse as a match so callers can test the category.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
