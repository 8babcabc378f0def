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

var smoothCases = []TestCase{
	{
		Name: "smooth_cubic_wave",
		Path: []repaint.PathCommand{
			repaint.MoveTo{To: pt(4, 32)},
			repaint.CubicTo{C1: pt(10, 8), C2: pt(20, 8), To: pt(24, 32)},
			repaint.SmoothCubicTo{C2: pt(40, 56), To: pt(44, 32)},
			repaint.SmoothCubicTo{C2: pt(56, 8), To: pt(60, 32)},
			repaint.VLineTo{Y: 60},
			repaint.HLineTo{X: 4},
			repaint.ClosePath{},
		},
		Width:  64,
		Height: 64,
		Op:     Fill{Antialiased: true},
	},
	{
		Name: "smooth_quad_wave",
		Path: []repaint.PathCommand{
			repaint.MoveTo{To: pt(4, 32)},
			repaint.QuadTo{C: pt(11, 8), To: pt(18, 32)},
			repaint.SmoothQuadTo{To: pt(32, 32)},
			repaint.SmoothQuadTo{To: pt(46, 32)},
			repaint.SmoothQuadTo{To: pt(60, 32)},
		},
		Width:  64,
		Height: 64,
		Op:     Hairline{Antialiased: true},
	},
	{
		// Without a preceding curve, the reflected control point is the
		// current point.
		Name: "smooth_without_previous",
		Path: []repaint.PathCommand{
			repaint.MoveTo{To: pt(8, 56)},
			repaint.SmoothCubicTo{C2: pt(56, 8), To: pt(56, 56)},
			repaint.ClosePath{},
		},
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name: "smooth_after_line",
		Path: []repaint.PathCommand{
			repaint.MoveTo{To: pt(8, 56)},
			repaint.LineTo{To: pt(8, 32)},
			repaint.SmoothQuadTo{To: pt(56, 32)},
			repaint.LineTo{To: pt(56, 56)},
			repaint.ClosePath{},
		},
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
}
