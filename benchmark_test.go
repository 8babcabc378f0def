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

package repaint_test

import (
	"fmt"
	"image"
	"image/color"
	"iter"
	"testing"

	"golang.org/x/image/vector"
	"honnef.co/go/curve"
	"seehuhn.de/go/geom/vec"

	"github.com/re-gui/repaint"
	"github.com/re-gui/repaint/testcases"
)

// BenchmarkFillO benchmarks the scanline filler drawing an "O" shape.
func BenchmarkFillO(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		for _, aa := range []bool{false, true} {
			b.Run(fmt.Sprintf("%dx%d/aa=%t", size, size, aa), func(b *testing.B) {
				clip := image.Rect(0, 0, size, size)
				f := repaint.NewScanlineFiller(clip)
				f.Antialiased = aa

				dst := image.NewAlpha(clip)
				c := repaint.NewAlphaConsumer(dst)

				center := float64(size) / 2
				oPath := makeOPath(center, center, float64(size)*0.45, float64(size)*0.30)
				polyline := repaint.AppendPolyline(nil, oPath, nil)

				b.ResetTimer()
				b.ReportAllocs()

				for b.Loop() {
					f.Fill(polyline, c)
				}
			})
		}
	}
}

// BenchmarkVectorO benchmarks x/image/vector drawing an "O" shape.
func BenchmarkVectorO(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			center := float32(size) / 2
			outerR := float32(size) * 0.45
			innerR := float32(size) * 0.30

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(size, size)

				// Outer circle (counter-clockwise)
				addCircleToVector(r, center, center, outerR, false)
				// Inner circle (clockwise)
				addCircleToVector(r, center, center, innerR, true)

				// Rasterize and composite
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkDiscretizeO benchmarks turning the "O" shape into a polyline.
func BenchmarkDiscretizeO(b *testing.B) {
	oPath := makeOPath(100, 100, 90, 60)
	params := repaint.DefaultParams()
	var buf []repaint.PolylineCommand

	b.ReportAllocs()
	for b.Loop() {
		buf = repaint.AppendPolyline(buf[:0], oPath, params)
	}
}

// BenchmarkFlattenO benchmarks honnef.co/go/curve flattening the same shape
// with the same tolerance.
func BenchmarkFlattenO(b *testing.B) {
	elems := makeOElements(100, 100, 90, 60)
	tol := repaint.DefaultParams().Tolerance

	b.ReportAllocs()
	for b.Loop() {
		for range curve.Flatten(elems, tol) {
		}
	}
}

func BenchmarkRenderAll(b *testing.B) {
	for category, cases := range testcases.All {
		b.Run(category, func(b *testing.B) {
			for b.Loop() {
				for _, tc := range cases {
					buf := make([]byte, tc.Width*tc.Height)
					testcases.Render(tc, buf, tc.Width, tc.Height, tc.Width)
				}
			}
		})
	}
}

// circleArcs returns the four cubic arcs of a circle, starting at the top.
func circleArcs(cx, cy, r float64, clockwise bool) [4][3]vec.Vec2 {
	// Magic number for circular arc approximation with cubic Bézier
	const k = 0.5522847498
	kr := k * r

	s := 1.0
	if clockwise {
		s = -1
	}
	return [4][3]vec.Vec2{
		{{X: cx + s*kr, Y: cy - r}, {X: cx + s*r, Y: cy - kr}, {X: cx + s*r, Y: cy}},
		{{X: cx + s*r, Y: cy + kr}, {X: cx + s*kr, Y: cy + r}, {X: cx, Y: cy + r}},
		{{X: cx - s*kr, Y: cy + r}, {X: cx - s*r, Y: cy + kr}, {X: cx - s*r, Y: cy}},
		{{X: cx - s*r, Y: cy - kr}, {X: cx - s*kr, Y: cy - r}, {X: cx, Y: cy - r}},
	}
}

// makeOPath creates an "O" shape.  The outer circle is counter-clockwise,
// the inner circle is clockwise.
func makeOPath(cx, cy, outerR, innerR float64) []repaint.PathCommand {
	var cmds []repaint.PathCommand
	for _, c := range []struct {
		r  float64
		cw bool
	}{{outerR, false}, {innerR, true}} {
		cmds = append(cmds, repaint.MoveTo{To: vec.Vec2{X: cx, Y: cy - c.r}})
		for _, arc := range circleArcs(cx, cy, c.r, c.cw) {
			cmds = append(cmds, repaint.CubicTo{C1: arc[0], C2: arc[1], To: arc[2]})
		}
		cmds = append(cmds, repaint.ClosePath{})
	}
	return cmds
}

func makeOElements(cx, cy, outerR, innerR float64) iter.Seq[curve.PathElement] {
	cp := func(p vec.Vec2) curve.Point { return curve.Pt(p.X, p.Y) }
	return func(yield func(curve.PathElement) bool) {
		for _, c := range []struct {
			r  float64
			cw bool
		}{{outerR, false}, {innerR, true}} {
			if !yield(curve.MoveTo(curve.Pt(cx, cy-c.r))) {
				return
			}
			for _, arc := range circleArcs(cx, cy, c.r, c.cw) {
				if !yield(curve.CubicTo(cp(arc[0]), cp(arc[1]), cp(arc[2]))) {
					return
				}
			}
			if !yield(curve.ClosePath()) {
				return
			}
		}
	}
}

// addCircleToVector adds a circle to a vector.Rasterizer using cubic Bézier curves.
func addCircleToVector(r *vector.Rasterizer, cx, cy, radius float32, clockwise bool) {
	r.MoveTo(cx, cy-radius)
	for _, arc := range circleArcs(float64(cx), float64(cy), float64(radius), clockwise) {
		r.CubeTo(
			float32(arc[0].X), float32(arc[0].Y),
			float32(arc[1].X), float32(arc[1].Y),
			float32(arc[2].X), float32(arc[2].Y))
	}
	r.ClosePath()
}
