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
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func moveTo(x, y float64) PolylineCommand {
	return PolylineCommand{Op: PolylineMoveTo, Pt: pt(x, y)}
}

func lineTo(x, y float64) PolylineCommand {
	return PolylineCommand{Op: PolylineLineTo, Pt: pt(x, y)}
}

func TestLinesExact(t *testing.T) {
	cmds := []PathCommand{
		MoveTo{To: pt(1, 1)},
		LineTo{To: pt(11, 1)},
		VLineTo{Y: 5},
		HLineTo{X: 2},
	}
	want := []PolylineCommand{
		moveTo(1, 1),
		lineTo(11, 1),
		lineTo(11, 5),
		lineTo(2, 5),
	}
	for _, tol := range []float64{1e-9, 0.25, 1000} {
		params := &Params{Tolerance: tol, MaxAngle: 1e-6}
		diff(t, want, AppendPolyline(nil, cmds, params))
	}
}

func TestRectangleOutline(t *testing.T) {
	cmds := []PathCommand{
		MoveTo{To: pt(0, 0)},
		LineTo{To: pt(10, 0)},
		LineTo{To: pt(10, 10)},
		LineTo{To: pt(0, 10)},
		ClosePath{},
	}
	want := []PolylineCommand{
		moveTo(0, 0),
		lineTo(10, 0),
		lineTo(10, 10),
		lineTo(0, 10),
		lineTo(0, 0),
	}
	diff(t, want, AppendPolyline(nil, cmds, nil))
}

func TestClosePathAtStart(t *testing.T) {
	cmds := []PathCommand{
		MoveTo{To: pt(0, 0)},
		LineTo{To: pt(10, 0)},
		LineTo{To: pt(0, 10)},
		LineTo{To: pt(0, 0)},
		ClosePath{},
		ClosePath{},
	}
	want := []PolylineCommand{
		moveTo(0, 0),
		lineTo(10, 0),
		lineTo(0, 10),
		lineTo(0, 0),
	}
	diff(t, want, AppendPolyline(nil, cmds, nil))
}

func TestClosePathStraight(t *testing.T) {
	// Under a non-linear transform, ClosePath still emits a single
	// straight segment.
	square := Func(func(p vec.Vec2) vec.Vec2 {
		return vec.Vec2{X: p.X * p.X, Y: p.Y}
	})
	cmds := []PathCommand{
		MoveTo{To: pt(1, 0)},
		LineTo{To: pt(10, 0)},
		LineTo{To: pt(10, 10)},
		ClosePath{},
	}
	params := DefaultParams()
	params.Transform = square
	got := AppendPolyline(nil, cmds, params)

	if got[0] != moveTo(1, 0) {
		t.Errorf("expected %v, got %v", moveTo(1, 0), got[0])
	}
	if last := got[len(got)-1]; last != lineTo(1, 0) {
		t.Errorf("expected %v, got %v", lineTo(1, 0), last)
	}
	// the diagonal from (10, 10) back to the start is not sampled
	if prev := got[len(got)-2]; prev != lineTo(100, 10) {
		t.Errorf("expected %v, got %v", lineTo(100, 10), prev)
	}

	// an explicit line along the same diagonal is sampled
	cmds[3] = LineTo{To: pt(1, 0)}
	explicit := AppendPolyline(nil, cmds, params)
	if len(explicit) <= len(got) {
		t.Errorf("expected a sampled diagonal, got %v", explicit)
	}
}

func TestTransformedMoveTo(t *testing.T) {
	cmds := []PathCommand{
		MoveTo{To: pt(1, 2)},
		LineTo{To: pt(3, 2)},
		ClosePath{},
		MoveTo{To: pt(1, 1), Rel: true},
	}
	params := DefaultParams()
	params.Transform = Affine(matrix.Matrix{2, 0, 0, 3, 10, 20})
	want := []PolylineCommand{
		moveTo(12, 26),
		lineTo(16, 26),
		lineTo(12, 26),
		moveTo(14, 29),
	}
	diff(t, want, AppendPolyline(nil, cmds, params), approxPolyline)
}

func TestRelativeCommands(t *testing.T) {
	abs := []PathCommand{
		MoveTo{To: pt(5, 5)},
		LineTo{To: pt(15, 5)},
		VLineTo{Y: 25},
		HLineTo{X: 10},
		CubicTo{C1: pt(10, 30), C2: pt(0, 30), To: pt(0, 20)},
		SmoothCubicTo{C2: pt(5, 10), To: pt(5, 5)},
		QuadTo{C: pt(20, 0), To: pt(30, 5)},
		SmoothQuadTo{To: pt(40, 5)},
		ArcTo{Radii: pt(5, 5), Sweep: true, To: pt(50, 5)},
		ClosePath{},
	}
	rel := []PathCommand{
		MoveTo{To: pt(5, 5), Rel: true},
		LineTo{To: pt(10, 0), Rel: true},
		VLineTo{Y: 20, Rel: true},
		HLineTo{X: -5, Rel: true},
		CubicTo{C1: pt(0, 5), C2: pt(-10, 5), To: pt(-10, -5), Rel: true},
		SmoothCubicTo{C2: pt(5, -10), To: pt(5, -15), Rel: true},
		QuadTo{C: pt(15, -5), To: pt(25, 0), Rel: true},
		SmoothQuadTo{To: pt(10, 0), Rel: true},
		ArcTo{Radii: pt(5, 5), Sweep: true, To: pt(10, 0), Rel: true},
		ClosePath{},
	}
	want := AppendPolyline(nil, abs, nil)
	got := AppendPolyline(nil, rel, nil)
	diff(t, want, got, approxPolyline)
}

func TestSmoothCubic(t *testing.T) {
	smooth := []PathCommand{
		MoveTo{To: pt(0, 0)},
		CubicTo{C1: pt(0, 10), C2: pt(10, 10), To: pt(10, 0)},
		SmoothCubicTo{C2: pt(20, -10), To: pt(20, 0)},
		SmoothCubicTo{C2: pt(30, 10), To: pt(30, 0)},
	}
	explicit := []PathCommand{
		MoveTo{To: pt(0, 0)},
		CubicTo{C1: pt(0, 10), C2: pt(10, 10), To: pt(10, 0)},
		CubicTo{C1: pt(10, -10), C2: pt(20, -10), To: pt(20, 0)},
		CubicTo{C1: pt(20, 10), C2: pt(30, 10), To: pt(30, 0)},
	}
	diff(t, AppendPolyline(nil, explicit, nil), AppendPolyline(nil, smooth, nil))
}

func TestSmoothQuad(t *testing.T) {
	smooth := []PathCommand{
		MoveTo{To: pt(0, 0)},
		QuadTo{C: pt(5, 10), To: pt(10, 0)},
		SmoothQuadTo{To: pt(20, 0)},
		SmoothQuadTo{To: pt(30, 0)},
	}
	explicit := []PathCommand{
		MoveTo{To: pt(0, 0)},
		QuadTo{C: pt(5, 10), To: pt(10, 0)},
		QuadTo{C: pt(15, -10), To: pt(20, 0)},
		QuadTo{C: pt(25, 10), To: pt(30, 0)},
	}
	diff(t, AppendPolyline(nil, explicit, nil), AppendPolyline(nil, smooth, nil))
}

func TestSmoothWithoutCurve(t *testing.T) {
	// After a line, the reflected control point is the current point.
	smooth := []PathCommand{
		MoveTo{To: pt(0, 0)},
		LineTo{To: pt(10, 0)},
		SmoothCubicTo{C2: pt(20, 10), To: pt(20, 0)},
		SmoothQuadTo{To: pt(30, 0)},
	}
	explicit := []PathCommand{
		MoveTo{To: pt(0, 0)},
		LineTo{To: pt(10, 0)},
		CubicTo{C1: pt(10, 0), C2: pt(20, 10), To: pt(20, 0)},
		QuadTo{C: pt(20, -10), To: pt(30, 0)},
	}
	diff(t, AppendPolyline(nil, explicit, nil), AppendPolyline(nil, smooth, nil))

	// At the start of a subpath, the same holds.
	smooth = []PathCommand{
		MoveTo{To: pt(0, 0)},
		SmoothQuadTo{To: pt(10, 0)},
	}
	explicit = []PathCommand{
		MoveTo{To: pt(0, 0)},
		QuadTo{C: pt(0, 0), To: pt(10, 0)},
	}
	diff(t, AppendPolyline(nil, explicit, nil), AppendPolyline(nil, smooth, nil))
}

func TestArcCommands(t *testing.T) {
	// identical end points: no output
	got := AppendPolyline(nil, []PathCommand{
		MoveTo{To: pt(3, 4)},
		ArcTo{Radii: pt(5, 5), LargeArc: true, To: pt(3, 4)},
	}, nil)
	diff(t, []PolylineCommand{moveTo(3, 4)}, got)

	// zero radius: a straight line
	got = AppendPolyline(nil, []PathCommand{
		MoveTo{To: pt(3, 4)},
		ArcTo{Radii: pt(0, 5), To: pt(13, 4)},
		ArcTo{Radii: pt(5, 0), To: pt(13, 14)},
	}, nil)
	diff(t, []PolylineCommand{moveTo(3, 4), lineTo(13, 4), lineTo(13, 14)}, got)

	// a half circle stays on the circle
	got = AppendPolyline(nil, []PathCommand{
		MoveTo{To: pt(0, 0)},
		ArcTo{Radii: pt(10, 10), To: pt(20, 0)},
	}, nil)
	if len(got) < 4 {
		t.Fatalf("expected a sampled arc, got %v", got)
	}
	for _, c := range got {
		if r := c.Pt.Sub(pt(10, 0)).Length(); math.Abs(r-10) > 1e-9 {
			t.Errorf("point %v has distance %g from the center", c.Pt, r)
		}
	}
	if last := got[len(got)-1]; !closeTo(last.Pt, pt(20, 0), 1e-9) {
		t.Errorf("expected end point (20, 0), got %v", last.Pt)
	}
}

func TestNonFiniteCommands(t *testing.T) {
	nan := math.NaN()
	cmds := []PathCommand{
		MoveTo{To: pt(nan, 0)},
		LineTo{To: pt(1, 1)},
		MoveTo{To: pt(0, 0)},
		LineTo{To: pt(math.Inf(1), 1)},
		LineTo{To: pt(5, 5)},
		MoveTo{To: pt(0, 0)},
		CubicTo{C1: pt(nan, 0), C2: pt(1, 1), To: pt(2, 0)},
		QuadTo{C: pt(3, 3), To: pt(4, 0)},
		ClosePath{},
	}
	got := AppendPolyline(nil, cmds, nil)
	for _, c := range got {
		if !finite(c.Pt) {
			t.Errorf("non-finite point in output: %v", c)
		}
	}
	if got[0] != moveTo(0, 0) {
		t.Errorf("expected first command %v, got %v", moveTo(0, 0), got[0])
	}
	if last := got[len(got)-1]; last != lineTo(0, 0) {
		t.Errorf("expected closing line, got %v", last)
	}
}

func TestManyEmptyCommands(t *testing.T) {
	cmds := []PathCommand{MoveTo{To: pt(1, 1)}}
	for range 100000 {
		cmds = append(cmds, ArcTo{Radii: pt(1, 1), To: pt(0, 0), Rel: true}, ClosePath{})
	}
	cmds = append(cmds, LineTo{To: pt(2, 2)})

	d := NewPathDiscretizer(cmds, nil)
	got := slices.Collect(d.All())
	diff(t, []PolylineCommand{moveTo(1, 1), lineTo(2, 2)}, got)

	if _, ok := d.Next(); ok {
		t.Error("expected exhausted discretizer")
	}
}

func TestPullAndAppend(t *testing.T) {
	cmds := []PathCommand{
		MoveTo{To: pt(0, 0)},
		CubicTo{C1: pt(0, 10), C2: pt(10, 10), To: pt(10, 0)},
		ArcTo{Radii: pt(4, 3), XRotation: 0.5, To: pt(0, 0)},
		ClosePath{},
	}
	var pulled []PolylineCommand
	d := NewPathDiscretizer(cmds, nil)
	for {
		c, ok := d.Next()
		if !ok {
			break
		}
		pulled = append(pulled, c)
	}

	prefix := []PolylineCommand{moveTo(-1, -1)}
	appended := AppendPolyline(prefix, cmds, nil)
	diff(t, prefix[0], appended[0])
	diff(t, pulled, appended[1:])

	// Stopping early must not disturb anything.
	for c := range NewPathDiscretizer(cmds, nil).All() {
		if c.Op != PolylineMoveTo {
			t.Errorf("expected MoveTo first, got %v", c)
		}
		break
	}
}

func TestCommandsFromPath(t *testing.T) {
	data := (&path.Data{}).
		MoveTo(pt(1, 2)).
		LineTo(pt(3, 4)).
		QuadTo(pt(5, 6), pt(7, 8)).
		CubeTo(pt(9, 10), pt(11, 12), pt(13, 14)).
		Close()
	want := []PathCommand{
		MoveTo{To: pt(1, 2)},
		LineTo{To: pt(3, 4)},
		QuadTo{C: pt(5, 6), To: pt(7, 8)},
		CubicTo{C1: pt(9, 10), C2: pt(11, 12), To: pt(13, 14)},
		ClosePath{},
	}
	diff(t, want, CommandsFromData(data))

	var p path.Path = func(yield func(path.Command, []vec.Vec2) bool) {
		_ = yield(path.CmdMoveTo, []vec.Vec2{pt(1, 2)}) &&
			yield(path.CmdLineTo, []vec.Vec2{pt(3, 4)}) &&
			yield(path.CmdQuadTo, []vec.Vec2{pt(5, 6), pt(7, 8)}) &&
			yield(path.CmdCubeTo, []vec.Vec2{pt(9, 10), pt(11, 12), pt(13, 14)}) &&
			yield(path.CmdClose, nil)
	}
	diff(t, want, CommandsFromPath(p))
}

var approxPolyline = cmp.Comparer(func(a, b PolylineCommand) bool {
	return a.Op == b.Op && closeTo(a.Pt, b.Pt, 1e-9)
})
