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
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// DrawLine rasterizes the segment from p0 to p1 without antialiasing,
// plotting one pixel per column (or per row, for steep lines).  The pixel
// at the far end of the major axis is not plotted, so that consecutive
// segments of a polyline do not plot their shared vertex twice.
func DrawLine(p0, p1 vec.Vec2, plot func(x, y int)) {
	if p0 == p1 || !finite(p0) || !finite(p1) {
		return
	}

	d := p1.Sub(p0)
	if math.Abs(d.Y) <= math.Abs(d.X) {
		if p0.X > p1.X {
			p0, p1 = p1, p0
		}
		for x := int(math.Round(p0.X)); x < int(math.Round(p1.X)); x++ {
			y := p0.Y + (float64(x)-p0.X)*d.Y/d.X
			plot(x, int(math.Round(y)))
		}
	} else {
		if p0.Y > p1.Y {
			p0, p1 = p1, p0
		}
		for y := int(math.Round(p0.Y)); y < int(math.Round(p1.Y)); y++ {
			x := p0.X + (float64(y)-p0.Y)*d.X/d.Y
			plot(int(math.Round(x)), y)
		}
	}
}

// DrawLineAA rasterizes the segment from p0 to p1 with antialiasing, using
// Xiaolin Wu's algorithm.  Every column (or row, for steep lines) touched
// by the segment receives two pixels whose coverage adds up to the
// covered fraction of the column.
func DrawLineAA(p0, p1 vec.Vec2, plot func(x, y int, coverage float32)) {
	if p0 == p1 || !finite(p0) || !finite(p1) {
		return
	}

	x0, y0, x1, y1 := p0.X, p0.Y, p1.X, p1.Y
	steep := math.Abs(y1-y0) > math.Abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	put := func(x, y int, c float64) {
		if c <= 0 {
			return
		}
		if steep {
			plot(y, x, float32(c))
		} else {
			plot(x, y, float32(c))
		}
	}

	gradient := (y1 - y0) / (x1 - x0)

	// first end point
	xEnd := math.Round(x0)
	yEnd := y0 + gradient*(xEnd-x0)
	xGap := rfpart(x0 + 0.5)
	xPixel1 := int(xEnd)
	yPixel := math.Floor(yEnd)
	put(xPixel1, int(yPixel), rfpart(yEnd)*xGap)
	put(xPixel1, int(yPixel)+1, fpart(yEnd)*xGap)
	yInter := yEnd + gradient

	// second end point
	xEnd = math.Round(x1)
	yEnd = y1 + gradient*(xEnd-x1)
	xGap = fpart(x1 + 0.5)
	xPixel2 := int(xEnd)
	yPixel = math.Floor(yEnd)
	put(xPixel2, int(yPixel), rfpart(yEnd)*xGap)
	put(xPixel2, int(yPixel)+1, fpart(yEnd)*xGap)

	for x := xPixel1 + 1; x < xPixel2; x++ {
		y := math.Floor(yInter)
		put(x, int(y), rfpart(yInter))
		put(x, int(y)+1, fpart(yInter))
		yInter += gradient
	}
}

func fpart(x float64) float64  { return x - math.Floor(x) }
func rfpart(x float64) float64 { return 1 - fpart(x) }

// StrokeHairline draws every segment of a polyline as a thin line.  The
// segments are clipped to clip before rasterization, and only pixels
// inside clip are reported.  Without antialiasing, the coverage passed to
// plot is always 1.
func StrokeHairline(polyline []PolylineCommand, clip image.Rectangle, antialiased bool, plot func(x, y int, coverage float32)) {
	if clip.Empty() {
		return
	}
	r := rect.Rect{
		LLx: float64(clip.Min.X),
		LLy: float64(clip.Min.Y),
		URx: float64(clip.Max.X),
		URy: float64(clip.Max.Y),
	}

	inside := func(x, y int) bool {
		return image.Pt(x, y).In(clip)
	}
	plotAA := func(x, y int, c float32) {
		if inside(x, y) {
			plot(x, y, c)
		}
	}
	plotSolid := func(x, y int) {
		if inside(x, y) {
			plot(x, y, 1)
		}
	}

	var prev vec.Vec2
	hasPrev := false
	for _, cmd := range polyline {
		if cmd.Op == PolylineMoveTo || !hasPrev {
			prev = cmd.Pt
			hasPrev = true
			continue
		}
		p0, p1 := prev, cmd.Pt
		prev = cmd.Pt

		q0, q1, ok := ClipLine(p0, p1, r)
		if !ok {
			continue
		}
		if antialiased {
			DrawLineAA(q0, q1, plotAA)
		} else {
			DrawLine(q0, q1, plotSolid)
		}
	}
}
