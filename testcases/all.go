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

// Package testcases provides shared rendering fixtures for the repaint
// tests and the reference image tools.
package testcases

// All maps category names to test cases.
var All = map[string][]TestCase{
	"fill":       fillCases,
	"curve":      curveCases,
	"arc":        arcCases,
	"smooth":     smoothCases,
	"relative":   relativeCases,
	"transform":  transformCases,
	"subpath":    subpathCases,
	"degenerate": degenerateCases,
	"hairline":   hairlineCases,
}
