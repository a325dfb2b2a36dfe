// Copyright 2025 The benchreport Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchplot

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
)

// The harness reports have used this palette since the matplotlib
// days; keeping it makes old and new figures comparable at a glance.
var (
	colorBlue    = color.RGBA{R: 0x2E, G: 0x86, B: 0xAB, A: 0xFF}
	colorRed     = color.RGBA{R: 0xE9, G: 0x4F, B: 0x37, A: 0xFF}
	colorTeal    = color.RGBA{R: 0x4E, G: 0xCD, B: 0xC4, A: 0xFF}
	colorPurple  = color.RGBA{R: 0x9B, G: 0x59, B: 0xB6, A: 0xFF}
	colorCrimson = color.RGBA{R: 0xE7, G: 0x4C, B: 0x3C, A: 0xFF}
	colorSky     = color.RGBA{R: 0x34, G: 0x98, B: 0xDB, A: 0xFF}
	colorGreen   = color.RGBA{R: 0x2E, G: 0xCC, B: 0x71, A: 0xFF}
	colorOrange  = color.RGBA{R: 0xF3, G: 0x9C, B: 0x12, A: 0xFF}
	colorSteel   = color.RGBA{R: 0x46, G: 0x82, B: 0xB4, A: 0xFF}
	colorGray    = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}
	colorWhite   = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// newPlot returns a plot with the house grid and axis typography.
func newPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(13)
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	grid := plotter.NewGrid()
	grid.Vertical.Color = color.RGBA{A: 0x30}
	grid.Horizontal.Color = color.RGBA{A: 0x30}
	p.Add(grid)
	return p
}

func newLine(xys plotter.XYs, c color.Color) (*plotter.Line, *plotter.Scatter, error) {
	l, s, err := plotter.NewLinePoints(xys)
	if err != nil {
		return nil, nil, err
	}
	l.Color = c
	l.Width = vg.Points(2)
	s.GlyphStyle.Color = c
	s.GlyphStyle.Radius = vg.Points(3)
	return l, s, nil
}

func dashed(l *plotter.Line) {
	l.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
}

// barWidth scales bars so charts stay readable for any row count.
func barWidth(n int) vg.Length {
	if n == 0 {
		return vg.Points(20)
	}
	w := vg.Points(240) / vg.Length(n)
	if w > vg.Points(30) {
		w = vg.Points(30)
	}
	if w < vg.Points(4) {
		w = vg.Points(4)
	}
	return w
}

// refLine is a horizontal reference line spanning [x0, x1] at height y.
func refLine(x0, x1, y float64, c color.Color) *plotter.Line {
	l, _ := plotter.NewLine(plotter.XYs{{X: x0, Y: y}, {X: x1, Y: y}})
	l.Color = c
	l.Width = vg.Points(1)
	dashed(l)
	return l
}

// textBlock is a plotter that writes monospace text lines into an
// otherwise empty panel, standing in for matplotlib's text axes.
type textBlock struct {
	lines []string
}

func (tb *textBlock) Plot(c draw.Canvas, _ *plot.Plot) {
	sty := text.Style{
		Color:   color.Black,
		Font:    font.Font{Typeface: "Liberation", Variant: "Mono", Size: vg.Points(9)},
		XAlign:  draw.XLeft,
		YAlign:  draw.YTop,
		Handler: plot.DefaultTextHandler,
	}
	lineHeight := sty.Font.Size * 1.45
	x := c.Min.X + vg.Points(10)
	y := c.Max.Y - vg.Points(10)
	for _, line := range tb.lines {
		if !c.Contains(vg.Point{X: x, Y: y}) {
			break
		}
		c.FillText(sty, vg.Point{X: x, Y: y}, line)
		y -= lineHeight
	}
}

// textPanel wraps a textBlock in an axis-less plot cell.
func textPanel(lines []string) *plot.Plot {
	p := plot.New()
	p.HideAxes()
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1
	p.Add(&textBlock{lines: lines})
	return p
}

// writeFigure draws a grid of panels to dir/base.<format> for each
// requested format and logs one "Plot saved to:" line per file.
// Panels may be nil to leave a cell empty.
func writeFigure(logw io.Writer, dir, base string, formats []string, dpi int, wIn, hIn float64, panels [][]*plot.Plot) ([]Artifact, error) {
	w := vg.Length(wIn) * vg.Inch
	h := vg.Length(hIn) * vg.Inch
	cols := 0
	for _, row := range panels {
		if len(row) > cols {
			cols = len(row)
		}
	}
	tiles := draw.Tiles{
		Rows: len(panels), Cols: cols,
		PadX: vg.Points(12), PadY: vg.Points(12),
		PadTop: vg.Points(8), PadBottom: vg.Points(8),
		PadLeft: vg.Points(8), PadRight: vg.Points(8),
	}

	drawAll := func(dc draw.Canvas) {
		cs := plot.Align(panels, tiles, dc)
		for i := range panels {
			for j := range panels[i] {
				if panels[i][j] != nil {
					panels[i][j].Draw(cs[i][j])
				}
			}
		}
	}

	var arts []Artifact
	for _, format := range formats {
		path := filepath.Join(dir, base+"."+format)
		var can vg.CanvasWriterTo
		switch format {
		case "png":
			img := vgimg.NewWith(
				vgimg.UseWH(w, h),
				vgimg.UseDPI(dpi),
				vgimg.UseBackgroundColor(color.White),
			)
			drawAll(draw.New(img))
			can = vgimg.PngCanvas{Canvas: img}
		case "pdf":
			pdf := vgpdf.New(w, h)
			drawAll(draw.New(pdf))
			can = pdf
		default:
			return nil, fmt.Errorf("unsupported figure format %q", format)
		}

		f, err := os.Create(path)
		if err != nil {
			return nil, err
		}
		if _, err := can.WriteTo(f); err != nil {
			f.Close()
			return nil, err
		}
		if err := f.Close(); err != nil {
			return nil, err
		}

		kind := KindPNG
		if format == "pdf" {
			kind = KindPDF
		}
		arts = append(arts, Artifact{Path: path, Kind: kind})
		fmt.Fprintf(logw, "Plot saved to: %s\n", path)
	}
	return arts, nil
}
