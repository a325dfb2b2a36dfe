// Copyright 2025 The benchreport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeRun(t *testing.T, root, name, runtime string) {
	t.Helper()
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0777); err != nil {
		t.Fatal(err)
	}
	if runtime == "" {
		return
	}
	if err := os.WriteFile(filepath.Join(dir, "runtime_seconds.txt"), []byte(runtime), 0666); err != nil {
		t.Fatal(err)
	}
}

func TestAnalyze(t *testing.T) {
	root := t.TempDir()
	writeRun(t, root, "run_01", "100.0\n")
	writeRun(t, root, "run_02", "120.0\n")
	writeRun(t, root, "run_03", "")

	var buf strings.Builder
	if err := analyze(&buf, root); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		"Warning: runtime_seconds.txt not found in " + filepath.Join(root, "run_03"),
		"Total runs: 2",
		"Mean runtime: 110.00 sec",
		"Std deviation: 14.14 sec",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	root := t.TempDir()

	var buf strings.Builder
	if err := analyze(&buf, root); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "Total runs: 0") {
		t.Errorf("output missing run count:\n%s", out)
	}
	if strings.Contains(out, "Mean runtime") {
		t.Errorf("unexpected mean for zero runs:\n%s", out)
	}
}

func TestAnalyzeMissingRoot(t *testing.T) {
	var buf strings.Builder
	err := analyze(&buf, filepath.Join(t.TempDir(), "nope"))
	if err == nil || !strings.Contains(err.Error(), "input not found") {
		t.Errorf("analyze on missing root: err = %v, want input not found", err)
	}
}

func TestResolveInput(t *testing.T) {
	dir := t.TempDir()

	test := func(name, arg, want string, wantErr bool) {
		t.Helper()
		got, err := resolveInput(arg)
		if wantErr {
			if err == nil {
				t.Errorf("%s: resolveInput(%q) = %q, want error", name, arg, got)
			}
			return
		}
		if err != nil {
			t.Errorf("%s: resolveInput(%q): %v", name, arg, err)
			return
		}
		if got != want {
			t.Errorf("%s: resolveInput(%q) = %q, want %q", name, arg, got, want)
		}
	}

	csv := filepath.Join(dir, "custom.csv")
	if err := os.WriteFile(csv, []byte("a\n1\n"), 0666); err != nil {
		t.Fatal(err)
	}
	test("file", csv, csv, false)
	test("missing", filepath.Join(dir, "nope.csv"), "", true)

	runDir := filepath.Join(dir, "run_2025")
	if err := os.MkdirAll(runDir, 0777); err != nil {
		t.Fatal(err)
	}
	test("empty dir", runDir, "", true)

	all := filepath.Join(runDir, "all_results.csv")
	if err := os.WriteFile(all, []byte("a\n1\n"), 0666); err != nil {
		t.Fatal(err)
	}
	test("dir fallback", runDir, all, false)

	results := filepath.Join(runDir, "results.csv")
	if err := os.WriteFile(results, []byte("a\n1\n"), 0666); err != nil {
		t.Fatal(err)
	}
	test("dir preferred", runDir, results, false)
}
