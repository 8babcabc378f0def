// github.com/re-gui/repaint - a 2D vector graphics toolkit
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package repaint

import (
	"image"
)

// AlphaConsumer writes coverage into an alpha mask.  Pixels are combined
// with the existing mask contents by taking the maximum, so drawing the
// same shape twice gives the same result as drawing it once.
// Pixels outside the image bounds are ignored.
type AlphaConsumer struct {
	Img *image.Alpha

	y   int
	row []uint8 // pixels of line y, indexed from Img.Rect.Min.X
}

// NewAlphaConsumer returns a consumer writing into img.
func NewAlphaConsumer(img *image.Alpha) *AlphaConsumer {
	return &AlphaConsumer{Img: img}
}

func (a *AlphaConsumer) StartLine(y int) {
	a.y = y
	a.row = nil
	r := a.Img.Rect
	if y < r.Min.Y || y >= r.Max.Y {
		return
	}
	start := a.Img.PixOffset(r.Min.X, y)
	a.row = a.Img.Pix[start : start+r.Dx()]
}

func (a *AlphaConsumer) EndLine() {
	a.row = nil
}

func (a *AlphaConsumer) PutWeighted(x int, coverage float32) {
	i := x - a.Img.Rect.Min.X
	if a.row == nil || i < 0 || i >= len(a.row) {
		return
	}
	v := coverageToAlpha(coverage)
	if v > a.row[i] {
		a.row[i] = v
	}
}

func (a *AlphaConsumer) PutSolidSpan(x0, x1 int) {
	if a.row == nil {
		return
	}
	minX := a.Img.Rect.Min.X
	i0 := max(x0-minX, 0)
	i1 := min(x1-minX, len(a.row))
	for i := i0; i < i1; i++ {
		a.row[i] = 255
	}
}

// coverageToAlpha converts a coverage value to an 8-bit alpha value.
func coverageToAlpha(c float32) uint8 {
	switch {
	case !(c > 0): // also catches NaN
		return 0
	case c >= 1:
		return 255
	default:
		return uint8(c*255 + 0.5)
	}
}

// Span is a run of pixels on one scanline with constant coverage.
// The pixels X0 <= x < X1 are covered.
type Span struct {
	X0, X1   int
	Coverage float32
}

// SpanRecorder records everything it receives, for inspection by tests and
// debugging tools.  Lines are recorded even if they contain no spans.
type SpanRecorder struct {
	Lines []SpanLine
}

// SpanLine holds the spans reported for scanline Y, in the order they were
// received.
type SpanLine struct {
	Y     int
	Spans []Span
}

func (r *SpanRecorder) StartLine(y int) {
	r.Lines = append(r.Lines, SpanLine{Y: y})
}

func (r *SpanRecorder) EndLine() {}

func (r *SpanRecorder) PutWeighted(x int, coverage float32) {
	r.put(Span{X0: x, X1: x + 1, Coverage: coverage})
}

func (r *SpanRecorder) PutSolidSpan(x0, x1 int) {
	r.put(Span{X0: x0, X1: x1, Coverage: 1})
}

func (r *SpanRecorder) put(s Span) {
	if len(r.Lines) == 0 {
		panic("repaint: span outside of StartLine/EndLine")
	}
	l := &r.Lines[len(r.Lines)-1]
	l.Spans = append(l.Spans, s)
}

// Pixels returns the covered pixels as a map from (x, y) to coverage.
// Later spans overwrite earlier ones.
func (r *SpanRecorder) Pixels() map[image.Point]float32 {
	res := make(map[image.Point]float32)
	for _, l := range r.Lines {
		for _, s := range l.Spans {
			for x := s.X0; x < s.X1; x++ {
				res[image.Point{X: x, Y: l.Y}] = s.Coverage
			}
		}
	}
	return res
}
