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
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// PathCommand is one element of a path.  The concrete types are MoveTo,
// LineTo, HLineTo, VLineTo, ClosePath, CubicTo, SmoothCubicTo, QuadTo,
// SmoothQuadTo and ArcTo.
//
// Commands with Rel set interpret all their coordinates relative to the
// current position, like the lower-case SVG path letters.
type PathCommand interface {
	isPathCommand()
}

// MoveTo starts a new subpath at To.
type MoveTo struct {
	To  vec.Vec2
	Rel bool
}

// LineTo draws a straight line to To.
type LineTo struct {
	To  vec.Vec2
	Rel bool
}

// HLineTo draws a horizontal line to the given x coordinate.
type HLineTo struct {
	X   float64
	Rel bool
}

// VLineTo draws a vertical line to the given y coordinate.
type VLineTo struct {
	Y   float64
	Rel bool
}

// ClosePath draws a straight line back to the start of the current subpath.
type ClosePath struct{}

// CubicTo draws a cubic Bézier curve with control points C1 and C2.
type CubicTo struct {
	C1, C2 vec.Vec2
	To     vec.Vec2
	Rel    bool
}

// SmoothCubicTo draws a cubic Bézier curve whose first control point is
// the reflection of the previous curve's last control point through the
// current position.
type SmoothCubicTo struct {
	C2  vec.Vec2
	To  vec.Vec2
	Rel bool
}

// QuadTo draws a quadratic Bézier curve with control point C.
type QuadTo struct {
	C   vec.Vec2
	To  vec.Vec2
	Rel bool
}

// SmoothQuadTo draws a quadratic Bézier curve whose control point is the
// reflection of the previous curve's control point through the current
// position.
type SmoothQuadTo struct {
	To  vec.Vec2
	Rel bool
}

// ArcTo draws an elliptical arc in SVG endpoint parameterization.
// XRotation is in radians.
type ArcTo struct {
	Radii     vec.Vec2
	XRotation float64
	LargeArc  bool
	Sweep     bool
	To        vec.Vec2
	Rel       bool
}

func (MoveTo) isPathCommand()        {}
func (LineTo) isPathCommand()        {}
func (HLineTo) isPathCommand()       {}
func (VLineTo) isPathCommand()       {}
func (ClosePath) isPathCommand()     {}
func (CubicTo) isPathCommand()       {}
func (SmoothCubicTo) isPathCommand() {}
func (QuadTo) isPathCommand()        {}
func (SmoothQuadTo) isPathCommand()  {}
func (ArcTo) isPathCommand()         {}

// PolylineOp identifies the kind of a PolylineCommand.
type PolylineOp uint8

const (
	PolylineMoveTo PolylineOp = iota
	PolylineLineTo
)

func (op PolylineOp) String() string {
	switch op {
	case PolylineMoveTo:
		return "MoveTo"
	case PolylineLineTo:
		return "LineTo"
	default:
		return "PolylineOp(?)"
	}
}

// PolylineCommand is one element of a flattened path, in device space.
type PolylineCommand struct {
	Op PolylineOp
	Pt vec.Vec2
}

// CommandsFromPath converts a geom path to path commands.  Each
// path.CmdClose becomes a ClosePath.
func CommandsFromPath(p path.Path) []PathCommand {
	var cmds []PathCommand
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			cmds = append(cmds, MoveTo{To: pts[0]})
		case path.CmdLineTo:
			cmds = append(cmds, LineTo{To: pts[0]})
		case path.CmdQuadTo:
			cmds = append(cmds, QuadTo{C: pts[0], To: pts[1]})
		case path.CmdCubeTo:
			cmds = append(cmds, CubicTo{C1: pts[0], C2: pts[1], To: pts[2]})
		case path.CmdClose:
			cmds = append(cmds, ClosePath{})
		}
	}
	return cmds
}

// CommandsFromData converts path data to path commands, like
// CommandsFromPath.
func CommandsFromData(p *path.Data) []PathCommand {
	cmds := make([]PathCommand, 0, len(p.Cmds))
	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			cmds = append(cmds, MoveTo{To: p.Coords[coordIdx]})
			coordIdx++
		case path.CmdLineTo:
			cmds = append(cmds, LineTo{To: p.Coords[coordIdx]})
			coordIdx++
		case path.CmdQuadTo:
			cmds = append(cmds, QuadTo{C: p.Coords[coordIdx], To: p.Coords[coordIdx+1]})
			coordIdx += 2
		case path.CmdCubeTo:
			cmds = append(cmds, CubicTo{
				C1: p.Coords[coordIdx],
				C2: p.Coords[coordIdx+1],
				To: p.Coords[coordIdx+2],
			})
			coordIdx += 3
		case path.CmdClose:
			cmds = append(cmds, ClosePath{})
		}
	}
	return cmds
}
