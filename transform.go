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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Transform maps points from user space to device space.
type Transform interface {
	// Apply returns the image of p.
	Apply(p vec.Vec2) vec.Vec2

	// IsLinePreserving reports whether straight lines are mapped to
	// straight lines.  Line segments under such a transform are emitted
	// as a single chord without adaptive sampling.
	IsLinePreserving() bool
}

// Identity is the identity transform.
type Identity struct{}

func (Identity) Apply(p vec.Vec2) vec.Vec2 { return p }
func (Identity) IsLinePreserving() bool    { return true }

// Scale scales uniformly about the origin.
type Scale float64

func (s Scale) Apply(p vec.Vec2) vec.Vec2 { return p.Mul(float64(s)) }
func (Scale) IsLinePreserving() bool      { return true }

// XYScale scales the two axes independently.
type XYScale struct {
	X, Y float64
}

func (s XYScale) Apply(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: p.X * s.X, Y: p.Y * s.Y}
}

func (XYScale) IsLinePreserving() bool { return true }

// Affine applies a PDF-style transformation matrix, translation included.
// The point (x, y) is mapped to (a*x + c*y + e, b*x + d*y + f) where
// [a b c d e f] are the matrix entries.
type Affine matrix.Matrix

func (m Affine) Apply(p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

func (Affine) IsLinePreserving() bool { return true }

// LinePreservingFunc wraps a caller-supplied mapping which is known to map
// straight lines to straight lines (for example a projective map restricted
// to a region away from its singular line).
type LinePreservingFunc func(vec.Vec2) vec.Vec2

func (f LinePreservingFunc) Apply(p vec.Vec2) vec.Vec2 { return f(p) }
func (LinePreservingFunc) IsLinePreserving() bool      { return true }

// Func wraps an arbitrary mapping.  Line segments under a Func are
// adaptively sampled like curves.
type Func func(vec.Vec2) vec.Vec2

func (f Func) Apply(p vec.Vec2) vec.Vec2 { return f(p) }
func (Func) IsLinePreserving() bool      { return false }

// orIdentity returns t, or Identity if t is nil.
func orIdentity(t Transform) Transform {
	if t == nil {
		return Identity{}
	}
	return t
}
