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
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name      string                // lowercase a-z, 0-9 and _ only
	Path      []repaint.PathCommand // the geometry to render
	Width     int                   // canvas width in pixels
	Height    int                   // canvas height in pixels
	Op        Operation             // fill or hairline
	Transform repaint.Transform     // user space to device space (nil means identity)
}

// Operation is the rendering operation to apply to the path.
type Operation interface {
	isOperation()
}

// Fill specifies an even-odd fill.
type Fill struct {
	Antialiased bool
}

func (Fill) isOperation() {}

// Hairline specifies a one pixel wide stroke.
type Hairline struct {
	Antialiased bool
}

func (Hairline) isOperation() {}

// Params returns the discretization parameters for tc.  Accuracy is only
// required on the canvas, plus a one pixel margin.
func (tc *TestCase) Params() *repaint.Params {
	p := repaint.DefaultParams()
	p.Transform = tc.Transform
	p.AOI = &rect.Rect{
		LLx: -1,
		LLy: -1,
		URx: float64(tc.Width) + 1,
		URy: float64(tc.Height) + 1,
	}
	return p
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
