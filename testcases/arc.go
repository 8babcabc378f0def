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

var arcCases = []TestCase{
	{
		Name:   "half_disc",
		Path:   arcShape(12, 32, 52, 32, 20, 20, 0, false, false),
		Width:  64,
		Height: 64,
		Op:     Fill{Antialiased: true},
	},
	{
		Name:   "large_arc_sweep",
		Path:   arcShape(20, 40, 44, 40, 16, 16, 0, true, true),
		Width:  64,
		Height: 64,
		Op:     Fill{Antialiased: true},
	},
	{
		Name:   "small_arc_sweep",
		Path:   arcShape(20, 40, 44, 40, 16, 16, 0, false, true),
		Width:  64,
		Height: 64,
		Op:     Fill{Antialiased: true},
	},
	{
		Name:   "radius_too_small",
		Path:   arcShape(8, 32, 56, 32, 5, 5, 0, false, true),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "rotated_ellipse",
		Path:   arcShape(16, 44, 48, 20, 24, 10, math.Pi/6, true, false),
		Width:  64,
		Height: 64,
		Op:     Fill{Antialiased: true},
	},
	{
		Name:   "full_circle",
		Path:   fullCircleArcs(32, 32, 24),
		Width:  64,
		Height: 64,
		Op:     Fill{Antialiased: true},
	},
	{
		Name: "zero_radius",
		Path: []repaint.PathCommand{
			repaint.MoveTo{To: pt(10, 10)},
			repaint.ArcTo{Radii: pt(0, 20), To: pt(54, 54)},
			repaint.LineTo{To: pt(10, 54)},
			repaint.ClosePath{},
		},
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name: "arc_outline",
		Path: []repaint.PathCommand{
			repaint.MoveTo{To: pt(8, 32)},
			repaint.ArcTo{Radii: pt(12, 12), Sweep: true, To: pt(32, 32)},
			repaint.ArcTo{Radii: pt(12, 12), To: pt(56, 32)},
		},
		Width:  64,
		Height: 64,
		Op:     Hairline{Antialiased: true},
	},
}

// arcShape builds the region between an elliptical arc from (x1, y1) to
// (x2, y2) and its chord.
func arcShape(x1, y1, x2, y2, rx, ry, rotation float64, largeArc, sweep bool) []repaint.PathCommand {
	return []repaint.PathCommand{
		repaint.MoveTo{To: pt(x1, y1)},
		repaint.ArcTo{
			Radii:     pt(rx, ry),
			XRotation: rotation,
			LargeArc:  largeArc,
			Sweep:     sweep,
			To:        pt(x2, y2),
		},
		repaint.ClosePath{},
	}
}

// fullCircleArcs builds a circle from two half circle arcs.
func fullCircleArcs(cx, cy, r float64) []repaint.PathCommand {
	return []repaint.PathCommand{
		repaint.MoveTo{To: pt(cx-r, cy)},
		repaint.ArcTo{Radii: pt(r, r), Sweep: true, To: pt(cx+r, cy)},
		repaint.ArcTo{Radii: pt(r, r), Sweep: true, To: pt(cx-r, cy)},
		repaint.ClosePath{},
	}
}
