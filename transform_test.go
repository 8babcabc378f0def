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
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

func TestTransforms(t *testing.T) {
	type testCase struct {
		name     string
		tf       Transform
		in, want vec.Vec2
		linear   bool
	}
	cases := []testCase{
		{"identity", Identity{}, pt(3, -4), pt(3, -4), true},
		{"scale", Scale(2.5), pt(2, -4), pt(5, -10), true},
		{"xyscale", XYScale{X: 2, Y: -1}, pt(3, 4), pt(6, -4), true},
		{"affine_translate", Affine{1, 0, 0, 1, 10, 20}, pt(1, 2), pt(11, 22), true},
		{"affine_shear", Affine{1, 0, 2, 1, 0, 0}, pt(1, 3), pt(7, 3), true},
		{"affine_matrix", Affine(matrix.Scale(2, 3)), pt(1, 1), pt(2, 3), true},
		{"line_preserving_func", LinePreservingFunc(func(p vec.Vec2) vec.Vec2 {
			return vec.Vec2{X: p.Y, Y: p.X}
		}), pt(1, 2), pt(2, 1), true},
		{"func", Func(func(p vec.Vec2) vec.Vec2 {
			return vec.Vec2{X: p.X * p.X, Y: p.Y}
		}), pt(3, 2), pt(9, 2), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.tf.Apply(tc.in)
			if !closeTo(got, tc.want, 1e-12) {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
			if lp := tc.tf.IsLinePreserving(); lp != tc.linear {
				t.Errorf("expected IsLinePreserving() = %t, got %t", tc.linear, lp)
			}
		})
	}
}

func TestAffineRotation(t *testing.T) {
	m := Affine(matrix.RotateDeg(90))
	got := m.Apply(pt(1, 0))
	if math.Abs(got.X) > 1e-12 || math.Abs(math.Abs(got.Y)-1) > 1e-12 {
		t.Errorf("expected a quarter turn, got %v", got)
	}
	if l := got.Length(); math.Abs(l-1) > 1e-12 {
		t.Errorf("expected length 1, got %g", l)
	}
}

func TestOrIdentity(t *testing.T) {
	if _, ok := orIdentity(nil).(Identity); !ok {
		t.Error("expected Identity for a nil transform")
	}
	s := Scale(3)
	if got := orIdentity(s); got != s {
		t.Errorf("expected %v, got %v", s, got)
	}
}
