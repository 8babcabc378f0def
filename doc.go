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

// Package repaint implements the backend-agnostic geometry core of a 2D
// vector graphics toolkit.
//
// Paths are given as a sequence of [PathCommand] values (SVG-style moves,
// lines, quadratic and cubic Bézier curves, elliptical arcs).  A
// [PathDiscretizer] flattens them into a polyline of [PolylineCommand]
// values, adaptively sampling each curve with a [CurveDiscretizer] so that
// the result stays within a given tolerance after an arbitrary, possibly
// non-linear [Transform] has been applied.
//
// The polyline can be handed to a stroking backend (see [StrokeHairline]
// for a simple one) or filled with a [ScanlineFiller], which sweeps an
// active edge list over the scanlines and reports horizontal spans to a
// [SpanConsumer] using the even-odd rule, optionally with antialiased
// edge pixels.
//
// Nothing in this package returns errors.  Malformed geometry (NaN or
// infinite coordinates, zero-length curves, undersized arc radii) is
// handled locally and results in reduced or empty output.
package repaint

//go:generate go run ./testcases/export
