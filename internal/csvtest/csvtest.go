// Copyright 2025 The benchreport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package csvtest provides helpers for writing CSV fixtures in tests.
package csvtest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Write writes lines as a CSV file named name under a fresh temp
// directory and returns its path.
func Write(t *testing.T, name string, lines ...string) string {
	t.Helper()
	return WriteDir(t, t.TempDir(), name, lines...)
}

// WriteDir writes lines as a CSV file named name under dir and
// returns its path.
func WriteDir(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0777); err != nil {
		t.Fatal(err)
	}
	data := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(data), 0666); err != nil {
		t.Fatal(err)
	}
	return path
}
