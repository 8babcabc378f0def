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

import (
	"math"

	"github.com/re-gui/repaint"
	"seehuhn.de/go/geom/vec"
)

var fillCases = []TestCase{
	{
		Name:   "rectangle_10",
		Path:   rectangle(0, 0, 10, 10),
		Width:  20,
		Height: 20,
		Op:     Fill{},
	},
	{
		Name:   "rectangle",
		Path:   rectangle(10, 10, 44, 44),
		Width:  64,
		Height: 64,
		Op:     Fill{Antialiased: true},
	},
	{
		Name:   "triangle",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "triangle_aa",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Fill{Antialiased: true},
	},
	{
		Name:   "star",
		Path:   fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "star_aa",
		Path:   fivePointStar(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Fill{Antialiased: true},
	},
	{
		Name:   "subpixel_offset_25",
		Path:   rectangle(10.25, 10.25, 30.25, 30.25),
		Width:  64,
		Height: 64,
		Op:     Fill{Antialiased: true},
	},
	{
		Name:   "subpixel_offset_50",
		Path:   rectangle(10.5, 10.5, 30.5, 30.5),
		Width:  64,
		Height: 64,
		Op:     Fill{Antialiased: true},
	},
	{
		Name:   "narrow_sliver",
		Path:   rectangle(20.25, 4, 20.75, 60),
		Width:  64,
		Height: 64,
		Op:     Fill{Antialiased: true},
	},
	{
		Name:   "clipped",
		Path:   rectangle(-20, -20, 40, 84),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "large_diamond",
		Path:   polygon(pt(128, 8), pt(248, 128), pt(128, 248), pt(8, 128)),
		Width:  256,
		Height: 256,
		Op:     Fill{Antialiased: true},
	},
}

// rectangle builds a closed axis-aligned rectangle.
func rectangle(x1, y1, x2, y2 float64) []repaint.PathCommand {
	return []repaint.PathCommand{
		repaint.MoveTo{To: pt(x1, y1)},
		repaint.LineTo{To: pt(x2, y1)},
		repaint.LineTo{To: pt(x2, y2)},
		repaint.LineTo{To: pt(x1, y2)},
		repaint.ClosePath{},
	}
}

// triangle builds a closed triangle.
func triangle(x1, y1, x2, y2, x3, y3 float64) []repaint.PathCommand {
	return polygon(pt(x1, y1), pt(x2, y2), pt(x3, y3))
}

// polygon builds a closed polygon through the given vertices.
func polygon(vertices ...vec.Vec2) []repaint.PathCommand {
	if len(vertices) == 0 {
		return nil
	}
	cmds := []repaint.PathCommand{repaint.MoveTo{To: vertices[0]}}
	for _, v := range vertices[1:] {
		cmds = append(cmds, repaint.LineTo{To: v})
	}
	return append(cmds, repaint.ClosePath{})
}

// fivePointStar builds a five-pointed star (self-intersecting).
// With the even-odd rule, the central pentagon stays empty.
func fivePointStar(cx, cy, r float64) []repaint.PathCommand {
	pts := make([]vec.Vec2, 5)
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}

	// draw star: 0 -> 2 -> 4 -> 1 -> 3 -> 0
	return polygon(pts[0], pts[2], pts[4], pts[1], pts[3])
}
