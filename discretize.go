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
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Params controls the accuracy of curve discretization.
type Params struct {
	// Tolerance is the maximum distance, in device space, between the
	// curve and the chord approximating it.  Values <= 0 select the
	// default tolerance.
	Tolerance float64

	// MaxAngle is the maximum turn angle, in radians, between consecutive
	// chords.  Values <= 0 disable the angle check.
	MaxAngle float64

	// AOI is an optional area of interest in device space.  Accuracy is
	// not enforced for chords ending outside of it.
	AOI *rect.Rect

	// Transform maps user space to device space.  Nil means identity.
	Transform Transform
}

// DefaultParams returns the default discretization parameters with an
// identity transform.
func DefaultParams() *Params {
	return &Params{
		Tolerance: defaultTolerance,
		MaxAngle:  defaultMaxAngle,
	}
}

func (p *Params) tolerance() float64 {
	if p.Tolerance > 0 {
		return p.Tolerance
	}
	return defaultTolerance
}

// inAOI reports whether q lies inside the area of interest.  Without an
// area of interest, every point is inside.
func (p *Params) inAOI(q vec.Vec2) bool {
	a := p.AOI
	if a == nil {
		return true
	}
	return q.X >= a.LLx && q.X <= a.URx && q.Y >= a.LLy && q.Y <= a.URy
}

// CurveDiscretizer adaptively samples a curve in device space.
//
// Each call to Next performs a bounded amount of work and returns the next
// sample.  Consecutive samples satisfy the accuracy criteria of the
// Params: the image of the parameter midpoint lies within Tolerance of
// the chord segment, and the chord turns by at most MaxAngle.  Where a
// step cannot be made accurate before it falls below a small fraction of
// the domain width (for example at a cusp), it is accepted anyway, so
// that the sequence always terminates.
//
// A CurveDiscretizer cannot be restarted.  It is not safe for concurrent
// use.
type CurveDiscretizer struct {
	curve     Curve
	tf        Transform
	tol       float64
	maxAngle  float64
	params    *Params
	skipFirst bool

	started  bool
	finished bool

	t, dt   float64
	pt      vec.Vec2
	endSnap float64 // distance to End below which a step reaches End
	minStep float64 // smallest step size tried when halving
}

// NewCurveDiscretizer returns a discretizer for c.  If skipFirst is set,
// the image of the start point is not returned.
func NewCurveDiscretizer(c Curve, params *Params, skipFirst bool) *CurveDiscretizer {
	d := &CurveDiscretizer{}
	d.reset(c, params, skipFirst)
	return d
}

func (d *CurveDiscretizer) reset(c Curve, params *Params, skipFirst bool) {
	*d = CurveDiscretizer{
		curve:     c,
		tf:        orIdentity(params.Transform),
		tol:       params.tolerance(),
		maxAngle:  params.MaxAngle,
		params:    params,
		skipFirst: skipFirst,
	}
}

// Next returns the next sample point, or false when the curve is
// exhausted.
func (d *CurveDiscretizer) Next() (vec.Vec2, bool) {
	if !d.started {
		d.started = true
		if !d.init() {
			d.finished = true
			return vec.Vec2{}, false
		}
		if !d.skipFirst {
			return d.pt, true
		}
	}
	if d.finished {
		return vec.Vec2{}, false
	}

	nextT, isEnd, step := d.stepFrom(d.dt)
	next, ok := d.try(nextT, step)

	switch {
	case isEnd && ok:
		// accept
	case ok:
		// Grow the step while the larger chord stays accurate.
		for {
			t2, isEnd2, step2 := d.stepFrom(2 * step)
			next2, ok2 := d.try(t2, step2)
			if !ok2 {
				break
			}
			nextT, isEnd, step, next = t2, isEnd2, step2, next2
			if isEnd {
				break
			}
		}
	default:
		// Shrink the step until it becomes accurate or too small.
		for {
			t2, isEnd2, step2 := d.stepFrom(step / 2)
			if math.Abs(step2) < d.minStep {
				break
			}
			next2, ok2 := d.try(t2, step2)
			nextT, isEnd, step, next = t2, isEnd2, step2, next2
			if isEnd || ok2 {
				break
			}
		}
	}

	if !finite(next) {
		d.finished = true
		return vec.Vec2{}, false
	}
	if isEnd {
		d.finished = true
	}
	d.dt = nextT - d.t
	d.t = nextT
	d.pt = next
	return next, true
}

// All returns the remaining samples as an iterator.
func (d *CurveDiscretizer) All() iter.Seq[vec.Vec2] {
	return func(yield func(vec.Vec2) bool) {
		for {
			p, ok := d.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}

// init sets up the stepping state.  It returns false for curves which
// cannot be discretized.
func (d *CurveDiscretizer) init() bool {
	c := &d.curve
	start, end := c.Start, c.End
	if !isFinite(start) || !isFinite(end) || !c.isFinite() {
		return false
	}
	width := end - start
	scale := max(math.Abs(start), math.Abs(end), 1)
	if math.Abs(width) <= domainEpsilon*scale {
		return false
	}

	pt := d.tf.Apply(c.Eval(start))
	if !finite(pt) {
		return false
	}

	d.t = start
	d.dt = width / float64(c.Degree()+1)
	d.pt = pt
	d.endSnap = endSnapFraction * math.Abs(width)
	d.minStep = minStepFraction * math.Abs(width)
	return true
}

// stepFrom returns the parameter reached by stepping from the current
// position, whether this is the end of the domain, and the step actually
// taken.
func (d *CurveDiscretizer) stepFrom(step float64) (t float64, isEnd bool, taken float64) {
	end := d.curve.End
	t = d.t + step
	if math.Abs(t-end) < d.endSnap ||
		(end > d.curve.Start && t >= end) ||
		(end < d.curve.Start && t <= end) {
		return end, true, end - d.t
	}
	return t, false, step
}

// try evaluates the candidate at parameter t, reached by the given step,
// and checks it against the accuracy criteria.
func (d *CurveDiscretizer) try(t, step float64) (vec.Vec2, bool) {
	next := d.tf.Apply(d.curve.Eval(t))
	if !finite(next) {
		return next, false
	}
	if !d.params.inAOI(next) {
		return next, true
	}
	mid := d.tf.Apply(d.curve.Eval(d.t + step/2))
	if !finite(mid) {
		return next, false
	}

	if distToSegment(mid, d.pt, next) > d.tol {
		return next, false
	}
	if d.maxAngle > 0 && math.Abs(angleBetween(mid.Sub(d.pt), next.Sub(mid))) > d.maxAngle {
		return next, false
	}
	return next, true
}

// distToSegment returns the distance from p to the line segment from a
// to b.
func distToSegment(p, a, b vec.Vec2) float64 {
	ab := b.Sub(a)
	ap := p.Sub(a)
	l2 := ab.Dot(ab)
	if l2 == 0 {
		return ap.Length()
	}
	t := ap.Dot(ab) / l2
	switch {
	case t <= 0:
		return ap.Length()
	case t >= 1:
		return p.Sub(b).Length()
	}
	return math.Abs(ab.X*ap.Y-ab.Y*ap.X) / math.Sqrt(l2)
}

// Default values for discretization parameters.
const (
	// defaultTolerance is the default maximum chord deviation in device
	// pixels.
	defaultTolerance = 0.25

	// defaultMaxAngle is the default maximum turn angle between
	// consecutive chords.
	defaultMaxAngle = math.Pi / 8
)

// Numerical tolerances for curve discretization, relative to the width
// of the parameter domain.
const (
	// domainEpsilon is the relative domain width below which a curve is
	// considered degenerate and produces no output.
	domainEpsilon = 1e-12

	// endSnapFraction is the relative distance to the end of the domain
	// below which a step is extended to reach the end.
	endSnapFraction = 1e-9

	// minStepFraction is the smallest relative step tried when halving.
	// Steps below this are accepted even if inaccurate.
	minStepFraction = 1e-4
)
