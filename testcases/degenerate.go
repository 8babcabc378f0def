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
)

// degenerateCases must render without panicking.  Most of them produce an
// empty image.
var degenerateCases = []TestCase{
	{
		Name:   "empty",
		Path:   nil,
		Width:  16,
		Height: 16,
		Op:     Fill{},
	},
	{
		Name:   "move_only",
		Path:   []repaint.PathCommand{repaint.MoveTo{To: pt(8, 8)}},
		Width:  16,
		Height: 16,
		Op:     Fill{Antialiased: true},
	},
	{
		Name: "zero_length_curves",
		Path: []repaint.PathCommand{
			repaint.MoveTo{To: pt(8, 8)},
			repaint.QuadTo{C: pt(8, 8), To: pt(8, 8)},
			repaint.CubicTo{C1: pt(8, 8), C2: pt(8, 8), To: pt(8, 8)},
			repaint.ArcTo{Radii: pt(4, 4), To: pt(8, 8)},
			repaint.ClosePath{},
		},
		Width:  16,
		Height: 16,
		Op:     Fill{},
	},
	{
		Name: "nan_curve",
		Path: []repaint.PathCommand{
			repaint.MoveTo{To: pt(2, 2)},
			repaint.LineTo{To: pt(14, 2)},
			repaint.CubicTo{C1: pt(math.NaN(), 8), C2: pt(14, 14), To: pt(2, 14)},
			repaint.ClosePath{},
		},
		Width:  16,
		Height: 16,
		Op:     Fill{Antialiased: true},
	},
	{
		Name: "infinite_line",
		Path: []repaint.PathCommand{
			repaint.MoveTo{To: pt(2, 2)},
			repaint.LineTo{To: pt(math.Inf(1), 8)},
			repaint.LineTo{To: pt(2, 14)},
			repaint.ClosePath{},
		},
		Width:  16,
		Height: 16,
		Op:     Hairline{Antialiased: true},
	},
	{
		Name: "self_overlapping_edges",
		Path: []repaint.PathCommand{
			repaint.MoveTo{To: pt(2, 2)},
			repaint.LineTo{To: pt(14, 14)},
			repaint.LineTo{To: pt(2, 2)},
		},
		Width:  16,
		Height: 16,
		Op:     Fill{},
	},
	{
		Name:   "outside_clip",
		Path:   rectangle(100, 100, 200, 200),
		Width:  16,
		Height: 16,
		Op:     Fill{Antialiased: true},
	},
}
