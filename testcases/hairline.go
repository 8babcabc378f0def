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

var hairlineCases = []TestCase{
	{
		Name:   "triangle",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Hairline{},
	},
	{
		Name:   "triangle_aa",
		Path:   triangle(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Hairline{Antialiased: true},
	},
	{
		Name:   "circle_aa",
		Path:   circle(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Hairline{Antialiased: true},
	},
	{
		Name: "clipped_lines",
		Path: []repaint.PathCommand{
			repaint.MoveTo{To: pt(-20, 32)},
			repaint.LineTo{To: pt(84, 20)},
			repaint.MoveTo{To: pt(32, -40)},
			repaint.LineTo{To: pt(40, 100)},
		},
		Width:  64,
		Height: 64,
		Op:     Hairline{},
	},
}
