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
	"github.com/re-gui/repaint"
	"seehuhn.de/go/geom/path"
)

// kappa for cubic Bezier approximation of a quarter circle
const kappa = 0.5522847498307936

var curveCases = []TestCase{
	{
		Name:   "quadratic",
		Path:   quadraticCurve(10, 50, 32, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "quadratic_shallow",
		Path:   quadraticCurve(10, 32, 32, 28, 54, 32), // control point near chord
		Width:  64,
		Height: 64,
		Op:     Fill{Antialiased: true},
	},
	{
		Name:   "quadratic_s_shape",
		Path:   sCurveQuadratic(8, 40, 56, 24),
		Width:  64,
		Height: 64,
		Op:     Fill{Antialiased: true},
	},
	{
		Name:   "cubic",
		Path:   cubicCurve(10, 50, 20, 10, 44, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
	{
		Name:   "cubic_loop",
		Path:   cubicCurve(10, 40, 60, 0, 4, 0, 54, 40),
		Width:  64,
		Height: 64,
		Op:     Fill{Antialiased: true},
	},
	{
		Name:   "cubic_cusp",
		Path:   cubicCurve(10, 50, 54, 10, 10, 10, 54, 50),
		Width:  64,
		Height: 64,
		Op:     Fill{Antialiased: true},
	},
	{
		Name:   "cubic_collinear",
		Path:   cubicCurve(10, 10, 20, 20, 40, 40, 54, 54),
		Width:  64,
		Height: 64,
		Op:     Hairline{},
	},
	{
		Name:   "circle",
		Path:   circle(32, 32, 25),
		Width:  64,
		Height: 64,
		Op:     Fill{Antialiased: true},
	},
	{
		Name:   "circle_small",
		Path:   circle(8, 8, 3),
		Width:  16,
		Height: 16,
		Op:     Fill{Antialiased: true},
	},
	{
		Name:   "ellipse",
		Path:   ellipse(32, 32, 28, 12),
		Width:  64,
		Height: 64,
		Op:     Fill{},
	},
}

// quadraticCurve builds a closed shape with a quadratic Bezier curve.
func quadraticCurve(x1, y1, cx, cy, x2, y2 float64) []repaint.PathCommand {
	return repaint.CommandsFromData((&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt(cx, cy), pt(x2, y2)).
		Close())
}

// cubicCurve builds a closed shape with a cubic Bezier curve.
func cubicCurve(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) []repaint.PathCommand {
	return repaint.CommandsFromData((&path.Data{}).
		MoveTo(pt(x1, y1)).
		CubeTo(pt(c1x, c1y), pt(c2x, c2y), pt(x2, y2)).
		Close())
}

// sCurveQuadratic builds a closed S-shaped path from two quadratic Bezier curves.
func sCurveQuadratic(x1, y1, x2, y2 float64) []repaint.PathCommand {
	midX := (x1 + x2) / 2
	midY := (y1 + y2) / 2

	return repaint.CommandsFromData((&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt((x1+midX)/2, y1-20), pt(midX, midY)).
		QuadTo(pt((midX+x2)/2, y2+20), pt(x2, y2)).
		Close())
}

// circle builds an approximate circle using four cubic Bezier curves.
func circle(cx, cy, r float64) []repaint.PathCommand {
	return ellipse(cx, cy, r, r)
}

// ellipse builds an approximate ellipse using four cubic Bezier curves.
func ellipse(cx, cy, rx, ry float64) []repaint.PathCommand {
	kx := rx * kappa
	ky := ry * kappa

	return repaint.CommandsFromData((&path.Data{}).
		MoveTo(pt(cx+rx, cy)).
		CubeTo(pt(cx+rx, cy-ky), pt(cx+kx, cy-ry), pt(cx, cy-ry)).
		CubeTo(pt(cx-kx, cy-ry), pt(cx-rx, cy-ky), pt(cx-rx, cy)).
		CubeTo(pt(cx-rx, cy+ky), pt(cx-kx, cy+ry), pt(cx, cy+ry)).
		CubeTo(pt(cx+kx, cy+ry), pt(cx+rx, cy+ky), pt(cx+rx, cy)).
		Close())
}
