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

// Command export writes all test cases, together with their discretized
// polylines, to testdata/testcases.json.
package main

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"os"
	"slices"

	"github.com/re-gui/repaint"
	"github.com/re-gui/repaint/testcases"
	"seehuhn.de/go/geom/vec"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(fmt.Errorf("testcases.json: %w", err))
	}
}

type jsonTestCase struct {
	Name        string        `json:"name"`
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	Path        []jsonSegment `json:"path"`
	Polyline    []jsonSegment `json:"polyline"`
	Op          string        `json:"op"`
	Antialiased bool          `json:"antialiased,omitempty"`
}

type jsonSegment struct {
	Cmd  string      `json:"cmd"`
	Pts  [][]float64 `json:"pts,omitempty"`
	Args []float64   `json:"args,omitempty"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:     category + "_" + tc.Name,
		Width:    tc.Width,
		Height:   tc.Height,
		Path:     pathToJSON(tc.Path),
		Polyline: polylineToJSON(tc.Polyline()),
	}

	switch op := tc.Op.(type) {
	case testcases.Fill:
		jtc.Op = "fill"
		jtc.Antialiased = op.Antialiased
	case testcases.Hairline:
		jtc.Op = "hairline"
		jtc.Antialiased = op.Antialiased
	}
	return jtc
}

// pathToJSON encodes path commands using the SVG command letters.
func pathToJSON(cmds []repaint.PathCommand) []jsonSegment {
	var segs []jsonSegment
	for _, cmd := range cmds {
		var seg jsonSegment
		var rel bool
		switch c := cmd.(type) {
		case repaint.MoveTo:
			seg.Cmd, rel = "M", c.Rel
			seg.Pts = points(c.To)
		case repaint.LineTo:
			seg.Cmd, rel = "L", c.Rel
			seg.Pts = points(c.To)
		case repaint.HLineTo:
			seg.Cmd, rel = "H", c.Rel
			seg.Args = []float64{c.X}
		case repaint.VLineTo:
			seg.Cmd, rel = "V", c.Rel
			seg.Args = []float64{c.Y}
		case repaint.ClosePath:
			seg.Cmd = "Z"
		case repaint.CubicTo:
			seg.Cmd, rel = "C", c.Rel
			seg.Pts = points(c.C1, c.C2, c.To)
		case repaint.SmoothCubicTo:
			seg.Cmd, rel = "S", c.Rel
			seg.Pts = points(c.C2, c.To)
		case repaint.QuadTo:
			seg.Cmd, rel = "Q", c.Rel
			seg.Pts = points(c.C, c.To)
		case repaint.SmoothQuadTo:
			seg.Cmd, rel = "T", c.Rel
			seg.Pts = points(c.To)
		case repaint.ArcTo:
			seg.Cmd, rel = "A", c.Rel
			seg.Args = []float64{
				c.Radii.X, c.Radii.Y,
				c.XRotation * 180 / math.Pi,
				flag(c.LargeArc), flag(c.Sweep),
			}
			seg.Pts = points(c.To)
		}
		if rel {
			seg.Cmd = string(seg.Cmd[0] + 'a' - 'A')
		}
		segs = append(segs, seg)
	}
	return segs
}

func polylineToJSON(cmds []repaint.PolylineCommand) []jsonSegment {
	segs := make([]jsonSegment, 0, len(cmds))
	for _, cmd := range cmds {
		seg := jsonSegment{Cmd: "L", Pts: points(cmd.Pt)}
		if cmd.Op == repaint.PolylineMoveTo {
			seg.Cmd = "M"
		}
		segs = append(segs, seg)
	}
	return segs
}

// points converts points to JSON arrays.  encoding/json cannot represent
// non-finite numbers, so these are replaced by null.
func points(pts ...vec.Vec2) [][]float64 {
	res := make([][]float64, len(pts))
	for i, pt := range pts {
		if isFinite(pt.X) && isFinite(pt.Y) {
			res[i] = []float64{pt.X, pt.Y}
		}
	}
	return res
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
