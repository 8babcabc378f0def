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

package repaint

import (
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ClipLine clips the segment from p0 to p1 to the closed rectangle r.
// The returned segment has the same direction as the input.  If no part
// of the segment lies inside r, or if any coordinate is not finite, ok is
// false.
func ClipLine(p0, p1 vec.Vec2, r rect.Rect) (q0, q1 vec.Vec2, ok bool) {
	if !finite(p0) || !finite(p1) {
		return p0, p1, false
	}

	// Parametric clipping of p0 + t*(p1-p0) against the four edges.
	d := p1.Sub(p0)
	tMin, tMax := 0.0, 1.0
	clipAxis := func(p, dp, lo, hi float64) bool {
		if dp == 0 {
			return p >= lo && p <= hi
		}
		t0 := (lo - p) / dp
		t1 := (hi - p) / dp
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		tMin = max(tMin, t0)
		tMax = min(tMax, t1)
		return tMin <= tMax
	}
	if !clipAxis(p0.X, d.X, r.LLx, r.URx) || !clipAxis(p0.Y, d.Y, r.LLy, r.URy) {
		return p0, p1, false
	}

	q0, q1 = p0, p1
	if tMin > 0 {
		q0 = p0.Add(d.Mul(tMin))
	}
	if tMax < 1 {
		q1 = p0.Add(d.Mul(tMax))
	}
	return clampToRect(q0, r), clampToRect(q1, r), true
}

// clampToRect removes rounding errors from clipped points.
func clampToRect(p vec.Vec2, r rect.Rect) vec.Vec2 {
	return vec.Vec2{
		X: min(max(p.X, r.LLx), r.URx),
		Y: min(max(p.Y, r.LLy), r.URy),
	}
}

// IntersectRect returns the intersection of a and b.  If the intersection
// is empty, or if any coordinate is NaN, ok is false.  Infinite
// coordinates are allowed, so that an unbounded rectangle can be used as
// a clip region.
func IntersectRect(a, b rect.Rect) (res rect.Rect, ok bool) {
	for _, x := range [...]float64{a.LLx, a.LLy, a.URx, a.URy, b.LLx, b.LLy, b.URx, b.URy} {
		if math.IsNaN(x) {
			return rect.Rect{}, false
		}
	}
	res = rect.Rect{
		LLx: max(a.LLx, b.LLx),
		LLy: max(a.LLy, b.LLy),
		URx: min(a.URx, b.URx),
		URy: min(a.URy, b.URy),
	}
	if res.LLx > res.URx || res.LLy > res.URy {
		return rect.Rect{}, false
	}
	return res, true
}
