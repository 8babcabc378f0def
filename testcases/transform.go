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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

var transformCases = []TestCase{
	{
		Name:      "scale_2x",
		Path:      rectangle(0, 0, 20, 20),
		Width:     64,
		Height:    64,
		Op:        Fill{},
		Transform: repaint.Scale(2),
	},
	{
		Name:      "scale_2x_1y",
		Path:      circle(16, 32, 15),
		Width:     64,
		Height:    64,
		Op:        Fill{Antialiased: true},
		Transform: repaint.XYScale{X: 2, Y: 1},
	},
	{
		Name:      "rotate_45deg",
		Path:      rectangle(-10, -10, 10, 10),
		Width:     64,
		Height:    64,
		Op:        Fill{Antialiased: true},
		Transform: repaint.Affine(matrix.RotateDeg(45).Translate(32, 32)),
	},
	{
		Name:      "rotate_5deg",
		Path:      rectangle(-20, -10, 20, 10),
		Width:     64,
		Height:    64,
		Op:        Fill{Antialiased: true},
		Transform: repaint.Affine(matrix.RotateDeg(5).Translate(32, 32)),
	},
	{
		Name:   "shear_horizontal",
		Path:   rectangle(-15, -15, 15, 15),
		Width:  64,
		Height: 64,
		Op:     Fill{},
		// Shear matrix: [1, 0, 0.5, 1, 0, 0] then translate
		Transform: repaint.Affine(matrix.Matrix{1, 0, 0.5, 1, 0, 0}.Translate(32, 32)),
	},
	{
		Name:      "circle_scaled_up",
		Path:      circle(0, 0, 3),
		Width:     128,
		Height:    128,
		Op:        Fill{Antialiased: true},
		Transform: repaint.Affine(matrix.Scale(18, 18).Translate(64, 64)),
	},
	{
		// Straight lines become curves under a polar warp, so they are
		// sampled adaptively.
		Name:      "polar_warp",
		Path:      rectangle(0, 10, 2*math.Pi, 28),
		Width:     64,
		Height:    64,
		Op:        Fill{Antialiased: true},
		Transform: repaint.Func(polar(32, 32)),
	},
	{
		Name:      "wave_hairline",
		Path:      []repaint.PathCommand{repaint.MoveTo{To: pt(4, 32)}, repaint.LineTo{To: pt(60, 32)}},
		Width:     64,
		Height:    64,
		Op:        Hairline{Antialiased: true},
		Transform: repaint.Func(wave(8, 16)),
	},
}

// polar maps (angle, radius) to a point around (cx, cy).
func polar(cx, cy float64) func(vec.Vec2) vec.Vec2 {
	return func(p vec.Vec2) vec.Vec2 {
		sin, cos := math.Sincos(p.X)
		return vec.Vec2{X: cx + p.Y*cos, Y: cy + p.Y*sin}
	}
}

// wave displaces points vertically by a sine wave.
func wave(amplitude, wavelength float64) func(vec.Vec2) vec.Vec2 {
	return func(p vec.Vec2) vec.Vec2 {
		return vec.Vec2{X: p.X, Y: p.Y + amplitude*math.Sin(2*math.Pi*p.X/wavelength)}
	}
}
