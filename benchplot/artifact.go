// Copyright 2025 The benchreport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchplot renders the diagnostic report for a normalized
// result table: a fixed set of figures per experiment kind plus a
// plain-text summary.
//
// The summary is a stable contract: given identical inputs, the text
// written to the summary writer is byte-identical across runs. The
// figure files carry the same fixed names the original tooling
// globs for, so downstream scripts keep working.
package benchplot

import "fmt"

// An ArtifactKind says what a rendered artifact is.
type ArtifactKind int

const (
	KindPNG ArtifactKind = iota
	KindPDF
	// KindSummary is the console text block. Its Artifact carries
	// no path; the text goes to the writer passed to Render.
	KindSummary
)

func (k ArtifactKind) String() string {
	switch k {
	case KindPNG:
		return "png"
	case KindPDF:
		return "pdf"
	case KindSummary:
		return "summary"
	}
	return fmt.Sprintf("ArtifactKind(%d)", int(k))
}

// An Artifact is one output of a render: a figure file or the
// console summary. Artifacts are terminal sinks; the pipeline never
// reads them back.
type Artifact struct {
	Path string // empty for KindSummary
	Kind ArtifactKind
}
