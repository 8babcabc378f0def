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

	"seehuhn.de/go/geom/vec"
)

// CurveKind identifies the shape of a Curve.
type CurveKind uint8

const (
	CurveSegment CurveKind = iota
	CurveQuadratic
	CurveCubic
	CurveArc
)

// Curve is a parametric curve evaluated over the domain [Start, End].
//
// P holds the control points: P[0], P[1] for a segment, P[0..2] for a
// quadratic and P[0..3] for a cubic Bézier curve.  For CurveArc, P is
// unused and Arc describes the curve; its parameter runs over [0, 1].
type Curve struct {
	Kind       CurveKind
	P          [4]vec.Vec2
	Arc        CenterArc
	Start, End float64
}

// Segment returns the straight line from p0 to p1.
func Segment(p0, p1 vec.Vec2) Curve {
	return Curve{Kind: CurveSegment, P: [4]vec.Vec2{p0, p1}, End: 1}
}

// Quadratic returns the quadratic Bézier curve with control points p0, p1, p2.
func Quadratic(p0, p1, p2 vec.Vec2) Curve {
	return Curve{Kind: CurveQuadratic, P: [4]vec.Vec2{p0, p1, p2}, End: 1}
}

// Cubic returns the cubic Bézier curve with control points p0, ..., p3.
func Cubic(p0, p1, p2, p3 vec.Vec2) Curve {
	return Curve{Kind: CurveCubic, P: [4]vec.Vec2{p0, p1, p2, p3}, End: 1}
}

// ArcCurve returns the curve tracing a.
func ArcCurve(a CenterArc) Curve {
	return Curve{Kind: CurveArc, Arc: a, End: 1}
}

// Eval returns the point at parameter t.
func (c *Curve) Eval(t float64) vec.Vec2 {
	switch c.Kind {
	case CurveSegment:
		return c.P[0].Add(c.P[1].Sub(c.P[0]).Mul(t))
	case CurveQuadratic:
		// B(t) = (1-t)²P0 + 2(1-t)tP1 + t²P2
		omt := 1 - t
		return c.P[0].Mul(omt * omt).Add(c.P[1].Mul(2 * omt * t)).Add(c.P[2].Mul(t * t))
	case CurveCubic:
		// B(t) = (1-t)³P0 + 3(1-t)²tP1 + 3(1-t)t²P2 + t³P3
		omt := 1 - t
		omt2 := omt * omt
		t2 := t * t
		return c.P[0].Mul(omt2 * omt).Add(c.P[1].Mul(3 * omt2 * t)).Add(c.P[2].Mul(3 * omt * t2)).Add(c.P[3].Mul(t2 * t))
	case CurveArc:
		return c.Arc.Eval(t)
	default:
		panic("unreachable")
	}
}

// Degree returns the number of intermediate samples used for the first
// step of adaptive discretization.
func (c *Curve) Degree() int {
	switch c.Kind {
	case CurveQuadratic:
		return 2
	case CurveCubic:
		return 3
	default:
		return 1
	}
}

// isFinite reports whether all defining coordinates of c are finite.
func (c *Curve) isFinite() bool {
	switch c.Kind {
	case CurveSegment:
		return finite(c.P[0]) && finite(c.P[1])
	case CurveQuadratic:
		return finite(c.P[0]) && finite(c.P[1]) && finite(c.P[2])
	case CurveCubic:
		return finite(c.P[0]) && finite(c.P[1]) && finite(c.P[2]) && finite(c.P[3])
	case CurveArc:
		a := &c.Arc
		return finite(a.Center) && finite(a.Radii) &&
			isFinite(a.StartAngle) && isFinite(a.Sweep) && isFinite(a.XRotation)
	default:
		return false
	}
}

// CenterArc is an elliptical arc in center parameterization.
// The point at parameter t ∈ [0, 1] lies at angle StartAngle + t*Sweep on
// the ellipse with the given center and radii, rotated by XRotation
// (radians) about the center.
type CenterArc struct {
	Center     vec.Vec2
	Radii      vec.Vec2
	StartAngle float64
	Sweep      float64
	XRotation  float64
}

// Eval returns the point at parameter t.
func (a CenterArc) Eval(t float64) vec.Vec2 {
	sin, cos := math.Sincos(a.StartAngle + t*a.Sweep)
	return a.Center.Add(rotate(vec.Vec2{X: a.Radii.X * cos, Y: a.Radii.Y * sin}, a.XRotation))
}

// ArcFromEndpoints converts an SVG endpoint arc from p0 to p1 into center
// parameterization, following SVG 1.1 Appendix F.6.5.
//
// Radii are used by absolute value, and radii too small to span the chord
// are scaled up until they just do.  The caller must handle the cases
// p0 == p1 (no arc) and a zero radius (a straight line).
func ArcFromEndpoints(radii vec.Vec2, xRotation float64, largeArc, sweep bool, p0, p1 vec.Vec2) CenterArc {
	rx, ry := math.Abs(radii.X), math.Abs(radii.Y)

	// midpoint of the chord, in the unrotated frame of the ellipse
	p := rotate(p0.Sub(p1).Mul(0.5), -xRotation)

	lambda := p.X*p.X/(rx*rx) + p.Y*p.Y/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	rx2, ry2 := rx*rx, ry*ry
	var coef float64
	if den := rx2*p.Y*p.Y + ry2*p.X*p.X; den > 0 {
		sq := (rx2*ry2 - rx2*p.Y*p.Y - ry2*p.X*p.X) / den
		coef = math.Sqrt(max(sq, 0))
	}
	if largeArc == sweep {
		coef = -coef
	}
	c := vec.Vec2{X: coef * rx * p.Y / ry, Y: -coef * ry * p.X / rx}

	center := rotate(c, xRotation).Add(p0.Add(p1).Mul(0.5))

	u := vec.Vec2{X: (p.X - c.X) / rx, Y: (p.Y - c.Y) / ry}
	v := vec.Vec2{X: (-p.X - c.X) / rx, Y: (-p.Y - c.Y) / ry}
	theta := angleBetween(vec.Vec2{X: 1}, u)
	delta := math.Mod(angleBetween(u, v), 2*math.Pi)
	if sweep && delta < 0 {
		delta += 2 * math.Pi
	} else if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	}

	return CenterArc{
		Center:     center,
		Radii:      vec.Vec2{X: rx, Y: ry},
		StartAngle: theta,
		Sweep:      delta,
		XRotation:  xRotation,
	}
}

// rotate rotates p about the origin by angle radians.
func rotate(p vec.Vec2, angle float64) vec.Vec2 {
	sin, cos := math.Sincos(angle)
	return vec.Vec2{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// angleBetween returns the signed angle from u to v, in (-π, π].
func angleBetween(u, v vec.Vec2) float64 {
	return math.Atan2(u.X*v.Y-u.Y*v.X, u.Dot(v))
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func finite(p vec.Vec2) bool {
	return isFinite(p.X) && isFinite(p.Y)
}
