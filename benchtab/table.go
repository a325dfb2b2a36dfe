// Copyright 2025 The benchreport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchtab loads raw benchmark-result tables and classifies
// them by experiment schema.
//
// A raw table is a delimited text file with a header row, as written
// by the experiment harnesses. Cells are kept as loosely-typed
// Values at this stage; filtering and type coercion happen in
// package benchnorm once the schema is known.
package benchtab

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// A Value is a single raw cell as read from a result table. It may
// hold a number, free text, or a harness sentinel such as "ERROR".
type Value string

func (v Value) String() string { return string(v) }

// Float reports the cell parsed as a float64, if it parses.
func (v Value) Float() (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(string(v)), 64)
	return f, err == nil
}

// Int reports the cell parsed as an int64. Cells holding a
// fractional representation of a whole number ("42.0") also parse;
// genuinely fractional cells do not.
func (v Value) Int() (int64, bool) {
	s := strings.TrimSpace(string(v))
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int64(f)) {
		return 0, false
	}
	return int64(f), true
}

// A Row is one record of a raw table.
type Row struct {
	cells map[string]Value
}

// Get returns the cell for column col and whether the column exists.
func (r Row) Get(col string) (Value, bool) {
	v, ok := r.cells[col]
	return v, ok
}

// NewRow constructs a row from a column-to-cell mapping. It is
// intended for tests and for synthesizing derived rows; loaded
// tables come from ReadCSV.
func NewRow(cells map[string]Value) Row {
	m := make(map[string]Value, len(cells))
	for k, v := range cells {
		m[k] = v
	}
	return Row{cells: m}
}

// A Table is an as-loaded result table: an ordered column set plus
// the data rows in file order. No typing or filtering has been
// applied.
type Table struct {
	// Path is the file the table was loaded from, for diagnostics.
	Path string

	// Cols lists the column names in header order.
	Cols []string

	Rows []Row
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.Rows) }

// HasColumn reports whether the header declared column name.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Cols {
		if c == name {
			return true
		}
	}
	return false
}

// ReadCSV loads a raw table from path. The file must have a header
// row; a file with a header and zero data rows is a valid (empty)
// table. I/O errors are returned wrapped so callers can distinguish
// a missing input file with errors.Is(err, fs.ErrNotExist).
func ReadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading results: %w", err)
	}
	defer f.Close()
	return Read(f, path)
}

// Read loads a raw table from r. name is used in diagnostics only.
func Read(r io.Reader, name string) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%s: empty table (no header row)", name)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %v", name, err)
	}
	cols := make([]string, len(header))
	seen := make(map[string]bool, len(header))
	for i, c := range header {
		c = strings.TrimSpace(c)
		if c == "" {
			return nil, fmt.Errorf("%s: blank column name in header", name)
		}
		if seen[c] {
			return nil, fmt.Errorf("%s: duplicate column %q in header", name, c)
		}
		seen[c] = true
		cols[i] = c
	}

	t := &Table{Path: name, Cols: cols}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %v", name, err)
		}
		cells := make(map[string]Value, len(cols))
		for i, c := range cols {
			cells[c] = Value(rec[i])
		}
		t.Rows = append(t.Rows, Row{cells: cells})
	}
	return t, nil
}
