// Copyright 2025 The benchreport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchnorm turns a classified raw table into a normalized
// one: sentinel and unparseable rows dropped, numeric columns
// coerced, and missing derivable columns backfilled.
//
// Normalization never reorders rows. Sorting, where a chart needs
// it, is the renderer's job.
package benchnorm

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hdfs-lab/benchreport/benchtab"
)

// Harness sentinels marking a failed or skipped run. Rows carrying
// one in a numeric column are dropped, never charted as zero.
var sentinels = map[string]bool{
	"ERROR":   true,
	"SKIPPED": true,
}

// A SchemaMismatchError reports that a table lacks columns its
// detected kind requires. Since the kind is detected from the same
// table, this indicates a bug in the caller rather than bad input.
type SchemaMismatchError struct {
	Kind    benchtab.Kind
	Missing []string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("%s table missing required columns: %s",
		e.Kind, strings.Join(e.Missing, ", "))
}

// ErrEmptyTable is returned when every row was dropped by sentinel
// or coercion filtering. Nothing downstream can work with zero rows.
var ErrEmptyTable = errors.New("no valid data rows after filtering")

// A Table is a normalized result table: every declared numeric
// column of every surviving row parses as a number, and the declared
// required columns are all present (loaded or backfilled).
type Table struct {
	Kind benchtab.Kind

	// Cols is the loaded column order plus any backfilled
	// columns, appended in derivation order.
	Cols []string

	rows []map[string]benchtab.Value
}

// Len returns the number of surviving rows.
func (t *Table) Len() int { return len(t.rows) }

// HasColumn reports whether col exists, loaded or backfilled.
func (t *Table) HasColumn(col string) bool {
	for _, c := range t.Cols {
		if c == col {
			return true
		}
	}
	return false
}

// Floats returns column col as float64s, one per row, or nil if the
// column is absent.
func (t *Table) Floats(col string) []float64 {
	if !t.HasColumn(col) {
		return nil
	}
	out := make([]float64, len(t.rows))
	for i, r := range t.rows {
		out[i], _ = r[col].Float()
	}
	return out
}

// Ints returns column col as int64s, one per row, or nil if the
// column is absent.
func (t *Table) Ints(col string) []int64 {
	if !t.HasColumn(col) {
		return nil
	}
	out := make([]int64, len(t.rows))
	for i, r := range t.rows {
		out[i], _ = r[col].Int()
	}
	return out
}

// Strings returns column col as raw strings, or nil if absent.
func (t *Table) Strings(col string) []string {
	if !t.HasColumn(col) {
		return nil
	}
	out := make([]string, len(t.rows))
	for i, r := range t.rows {
		out[i] = r[col].String()
	}
	return out
}

// Value returns the cell at row i, column col.
func (t *Table) Value(i int, col string) benchtab.Value {
	return t.rows[i][col]
}

// Normalize filters and coerces a raw table according to the schema
// of kind. Row order is preserved; the result never has more rows
// than the input.
//
// It returns a *SchemaMismatchError if a required column is absent
// and not derivable, and ErrEmptyTable if no row survives filtering.
func Normalize(t *benchtab.Table, kind benchtab.Kind) (*Table, error) {
	s, ok := schemas[kind]
	if !ok {
		return nil, fmt.Errorf("no normalization schema for %s tables", kind)
	}

	present := make(map[string]bool, len(t.Cols))
	for _, c := range t.Cols {
		present[c] = true
	}

	// Decide which derivations fire. A derivation may consume a
	// column produced by an earlier one, so this walks in
	// declaration order.
	var active []derivation
	cols := append([]string(nil), t.Cols...)
	for _, d := range s.derivations {
		if present[d.col] || !present[d.from] {
			continue
		}
		active = append(active, d)
		present[d.col] = true
		cols = append(cols, d.col)
	}

	var missing []string
	for _, c := range s.required {
		if !present[c] {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaMismatchError{Kind: kind, Missing: missing}
	}

	out := &Table{Kind: kind, Cols: cols}
rows:
	for _, raw := range t.Rows {
		cells := make(map[string]benchtab.Value, len(cols))
		for _, c := range t.Cols {
			v, _ := raw.Get(c)
			cells[c] = v
		}
		for _, d := range active {
			v, ok := d.fn(cells[d.from])
			if !ok {
				continue rows
			}
			cells[d.col] = v
		}
		for _, c := range s.numeric {
			if !present[c.name] {
				continue
			}
			v := cells[c.name]
			if sentinels[strings.TrimSpace(v.String())] {
				continue rows
			}
			f, ok := v.Float()
			if !ok {
				continue rows
			}
			if c.typ == colInt {
				// One-directional coercion: a float
				// representation of an integral column is
				// truncated, never widened back.
				cells[c.name] = benchtab.Value(strconv.FormatInt(int64(f), 10))
			}
		}
		out.rows = append(out.rows, cells)
	}

	if len(out.rows) == 0 {
		return nil, ErrEmptyTable
	}
	return out, nil
}
