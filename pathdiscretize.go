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
	"iter"

	"seehuhn.de/go/geom/vec"
)

// PathDiscretizer flattens a sequence of path commands into a polyline in
// device space.
//
// Moves produce a PolylineMoveTo, everything else produces PolylineLineTo
// commands.  Line segments under a line-preserving transform produce
// exactly one point; all other segments and curves are sampled with a
// CurveDiscretizer.  ClosePath always produces a straight line back to
// the start of the subpath, even under a general transform.
//
// The output can be consumed only once.  A PathDiscretizer is not safe for
// concurrent use.
type PathDiscretizer struct {
	cmds   []PathCommand
	pos    int
	params *Params
	tf     Transform

	current      vec.Vec2 // current position (user space)
	subpathStart vec.Vec2 // start of the current subpath (user space)
	control      vec.Vec2 // last explicit control point (user space)

	sub       CurveDiscretizer
	subActive bool
}

// NewPathDiscretizer returns a discretizer for cmds.  If params is nil,
// DefaultParams is used.
func NewPathDiscretizer(cmds []PathCommand, params *Params) *PathDiscretizer {
	if params == nil {
		params = DefaultParams()
	}
	return &PathDiscretizer{
		cmds:   cmds,
		params: params,
		tf:     orIdentity(params.Transform),
	}
}

// Next returns the next polyline command, or false when the path is
// exhausted.
func (d *PathDiscretizer) Next() (PolylineCommand, bool) {
	for {
		if d.subActive {
			if pt, ok := d.sub.Next(); ok {
				return PolylineCommand{Op: PolylineLineTo, Pt: pt}, true
			}
			d.subActive = false
		}

		if d.pos >= len(d.cmds) {
			return PolylineCommand{}, false
		}
		cmd := d.cmds[d.pos]
		d.pos++

		if out, ok := d.apply(cmd); ok {
			return out, true
		}
	}
}

// All returns the remaining polyline commands as an iterator.
func (d *PathDiscretizer) All() iter.Seq[PolylineCommand] {
	return func(yield func(PolylineCommand) bool) {
		for {
			c, ok := d.Next()
			if !ok || !yield(c) {
				return
			}
		}
	}
}

// AppendPolyline discretizes cmds and appends the result to dst.
func AppendPolyline(dst []PolylineCommand, cmds []PathCommand, params *Params) []PolylineCommand {
	d := NewPathDiscretizer(cmds, params)
	for {
		c, ok := d.Next()
		if !ok {
			return dst
		}
		dst = append(dst, c)
	}
}

// apply updates the state for one command.  It either returns a command
// to emit directly, or starts a sub-discretizer (or does neither, for
// commands without output).
func (d *PathDiscretizer) apply(cmd PathCommand) (PolylineCommand, bool) {
	cur := d.current

	switch c := cmd.(type) {
	case MoveTo:
		to := d.resolve(c.To, c.Rel)
		d.current, d.subpathStart, d.control = to, to, to
		p := d.tf.Apply(to)
		if !finite(p) {
			return PolylineCommand{}, false
		}
		return PolylineCommand{Op: PolylineMoveTo, Pt: p}, true

	case LineTo:
		return d.lineTo(d.resolve(c.To, c.Rel))

	case HLineTo:
		to := vec.Vec2{X: c.X, Y: cur.Y}
		if c.Rel {
			to.X += cur.X
		}
		return d.lineTo(to)

	case VLineTo:
		to := vec.Vec2{X: cur.X, Y: c.Y}
		if c.Rel {
			to.Y += cur.Y
		}
		return d.lineTo(to)

	case ClosePath:
		start := d.subpathStart
		d.current, d.control = start, start
		if cur == start {
			return PolylineCommand{}, false
		}
		p := d.tf.Apply(start)
		if !finite(p) {
			return PolylineCommand{}, false
		}
		return PolylineCommand{Op: PolylineLineTo, Pt: p}, true

	case CubicTo:
		c1 := d.resolve(c.C1, c.Rel)
		c2 := d.resolve(c.C2, c.Rel)
		to := d.resolve(c.To, c.Rel)
		d.startCurve(Cubic(cur, c1, c2, to))
		d.current, d.control = to, c2

	case SmoothCubicTo:
		c1 := d.reflectedControl()
		c2 := d.resolve(c.C2, c.Rel)
		to := d.resolve(c.To, c.Rel)
		d.startCurve(Cubic(cur, c1, c2, to))
		d.current, d.control = to, c2

	case QuadTo:
		ctl := d.resolve(c.C, c.Rel)
		to := d.resolve(c.To, c.Rel)
		d.startCurve(Quadratic(cur, ctl, to))
		d.current, d.control = to, ctl

	case SmoothQuadTo:
		ctl := d.reflectedControl()
		to := d.resolve(c.To, c.Rel)
		d.startCurve(Quadratic(cur, ctl, to))
		d.current, d.control = to, ctl

	case ArcTo:
		to := d.resolve(c.To, c.Rel)
		switch {
		case to == cur:
			// SVG: an arc with identical endpoints is omitted
		case c.Radii.X == 0 || c.Radii.Y == 0:
			d.startCurve(Segment(cur, to))
		default:
			d.startCurve(ArcCurve(ArcFromEndpoints(c.Radii, c.XRotation, c.LargeArc, c.Sweep, cur, to)))
		}
		d.current, d.control = to, to
	}

	return PolylineCommand{}, false
}

// lineTo handles all straight line commands.
func (d *PathDiscretizer) lineTo(to vec.Vec2) (PolylineCommand, bool) {
	from := d.current
	d.current, d.control = to, to

	if !d.tf.IsLinePreserving() {
		d.startCurve(Segment(from, to))
		return PolylineCommand{}, false
	}
	if !finite(d.tf.Apply(from)) {
		return PolylineCommand{}, false
	}
	p := d.tf.Apply(to)
	if !finite(p) {
		return PolylineCommand{}, false
	}
	return PolylineCommand{Op: PolylineLineTo, Pt: p}, true
}

// startCurve makes c the active sub-sequence.  The start point of c is
// already part of the output, so it is skipped.
func (d *PathDiscretizer) startCurve(c Curve) {
	d.sub.reset(c, d.params, true)
	d.subActive = true
}

// reflectedControl returns the first control point of a smooth curve.
// Without a preceding curve, the control point equals the current
// position, which gives the current position back.
func (d *PathDiscretizer) reflectedControl() vec.Vec2 {
	return d.current.Add(d.current.Sub(d.control))
}

func (d *PathDiscretizer) resolve(p vec.Vec2, rel bool) vec.Vec2 {
	if rel {
		return d.current.Add(p)
	}
	return p
}
