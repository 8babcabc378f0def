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

var relativeCases = []TestCase{
	{
		Name: "relative_rectangle",
		Path: []repaint.PathCommand{
			repaint.MoveTo{To: pt(10, 10)},
			repaint.HLineTo{X: 34, Rel: true},
			repaint.VLineTo{Y: 34, Rel: true},
			repaint.HLineTo{X: -34, Rel: true},
			repaint.ClosePath{},
		},
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name: "relative_curves",
		Path: []repaint.PathCommand{
			repaint.MoveTo{To: pt(8, 48)},
			repaint.CubicTo{C1: pt(0, -30), C2: pt(20, -30), To: pt(20, 0), Rel: true},
			repaint.SmoothCubicTo{C2: pt(20, 30), To: pt(20, 0), Rel: true},
			repaint.QuadTo{C: pt(4, -40), To: pt(8, 0), Rel: true},
			repaint.LineTo{To: pt(0, 8), Rel: true},
			repaint.HLineTo{X: 8},
			repaint.ClosePath{},
		},
		Width:  64,
		Height: 64,
		Op:     Fill{Antialiased: true},
	},
	{
		Name: "relative_moves",
		Path: []repaint.PathCommand{
			repaint.MoveTo{To: pt(4, 4), Rel: true},
			repaint.LineTo{To: pt(20, 0), Rel: true},
			repaint.LineTo{To: pt(0, 20), Rel: true},
			repaint.ClosePath{},
			repaint.MoveTo{To: pt(30, 30), Rel: true},
			repaint.LineTo{To: pt(20, 0), Rel: true},
			repaint.LineTo{To: pt(0, 20), Rel: true},
			repaint.ClosePath{},
		},
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name: "relative_arc",
		Path: []repaint.PathCommand{
			repaint.MoveTo{To: pt(12, 40)},
			repaint.ArcTo{Radii: pt(20, 20), Sweep: true, To: pt(40, 0), Rel: true},
			repaint.VLineTo{Y: 16, Rel: true},
			repaint.HLineTo{X: -40, Rel: true},
			repaint.ClosePath{},
		},
		Width:  64,
		Height: 64,
		Op:     Fill{Antialiased: true},
	},
}
