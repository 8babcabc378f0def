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
	"image"

	"github.com/re-gui/repaint"
)

// Polyline returns the discretized path of tc, in device space.
func (tc *TestCase) Polyline() []repaint.PolylineCommand {
	return repaint.AppendPolyline(nil, tc.Path, tc.Params())
}

// Render renders tc into buf, an 8-bit coverage buffer with the given
// dimensions and stride.  buf must be cleared by the caller.
func Render(tc TestCase, buf []byte, width, height, stride int) {
	img := &image.Alpha{
		Pix:    buf,
		Stride: stride,
		Rect:   image.Rect(0, 0, width, height),
	}
	polyline := tc.Polyline()

	switch op := tc.Op.(type) {
	case Fill:
		repaint.Fill(polyline, img.Rect, op.Antialiased, repaint.NewAlphaConsumer(img))
	case Hairline:
		repaint.StrokeHairline(polyline, img.Rect, op.Antialiased, func(x, y int, c float32) {
			i := img.PixOffset(x, y)
			v := uint8(min(c, 1)*255 + 0.5)
			if v > img.Pix[i] {
				img.Pix[i] = v
			}
		})
	}
}
