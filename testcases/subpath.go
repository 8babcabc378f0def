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

package testcases

import "github.com/re-gui/repaint"

var subpathCases = []TestCase{
	{
		Name:   "two_triangles",
		Path:   twoTriangles(16, 32, 48, 32, 12),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "overlapping_rect",
		Path:   overlappingRectangles(10, 10, 40, 40, 24, 24, 54, 54),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "ring_shape",
		Path:   ringShape(32, 32, 25, 12),
		Width:  64,
		Height: 64,
		Op:     Fill{Antialiased: true},
	},
	{
		Name:   "multiple_rings",
		Path:   multipleRings(64, 64),
		Width:  128,
		Height: 128,
		Op:     Fill{},
	},
	{
		Name:   "many_small_shapes",
		Path:   manySmallShapes(8, 8),
		Width:  128,
		Height: 128,
		Op:     Fill{Antialiased: true},
	},
	{
		// Subpaths which are not closed explicitly contribute only the
		// edges which are present.
		Name: "unclosed_subpaths",
		Path: []repaint.PathCommand{
			repaint.MoveTo{To: pt(8, 8)},
			repaint.LineTo{To: pt(56, 8)},
			repaint.LineTo{To: pt(56, 56)},
			repaint.LineTo{To: pt(8, 56)},
			repaint.LineTo{To: pt(8, 8)},
			repaint.MoveTo{To: pt(20, 20)},
			repaint.LineTo{To: pt(44, 20)},
			repaint.LineTo{To: pt(44, 44)},
			repaint.LineTo{To: pt(20, 44)},
			repaint.LineTo{To: pt(20, 20)},
		},
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "curved_hole",
		Path:   append(rectangle(4, 4, 60, 60), circle(32, 32, 16)...),
		Width:  64,
		Height: 64,
		Op:     Fill{Antialiased: true},
	},
}

// twoTriangles builds two separate, disjoint triangles.
func twoTriangles(cx1, cy1, cx2, cy2 float64, size float64) []repaint.PathCommand {
	return append(
		triangle(cx1, cy1-size, cx1+size, cy1+size, cx1-size, cy1+size),
		triangle(cx2, cy2-size, cx2+size, cy2+size, cx2-size, cy2+size)...)
}

// overlappingRectangles builds two overlapping rectangles.  With the
// even-odd rule, the overlap stays empty.
func overlappingRectangles(x1a, y1a, x2a, y2a, x1b, y1b, x2b, y2b float64) []repaint.PathCommand {
	return append(rectangle(x1a, y1a, x2a, y2a), rectangle(x1b, y1b, x2b, y2b)...)
}

// ringShape builds a ring (outer square with inner square cutout).
func ringShape(cx, cy, outerSize, innerSize float64) []repaint.PathCommand {
	return append(
		rectangle(cx-outerSize, cy-outerSize, cx+outerSize, cy+outerSize),
		rectangle(cx-innerSize, cy-innerSize, cx+innerSize, cy+innerSize)...)
}

// multipleRings builds three rings around (cx, cy).
func multipleRings(cx, cy float64) []repaint.PathCommand {
	rings := []struct{ cx, cy, outer, inner float64 }{
		{cx - 30, cy - 30, 20, 10},
		{cx + 30, cy - 30, 20, 10},
		{cx, cy + 30, 20, 10},
	}

	var cmds []repaint.PathCommand
	for _, ring := range rings {
		cmds = append(cmds, ringShape(ring.cx, ring.cy, ring.outer, ring.inner)...)
	}
	return cmds
}

// manySmallShapes builds a grid of small triangles.
func manySmallShapes(rows, cols int) []repaint.PathCommand {
	size := 5.0
	spacing := 14.0

	var cmds []repaint.PathCommand
	for row := range rows {
		for col := range cols {
			cx := 10.0 + float64(col)*spacing
			cy := 10.0 + float64(row)*spacing
			cmds = append(cmds, triangle(cx, cy-size, cx+size, cy+size, cx-size, cy+size)...)
		}
	}
	return cmds
}
