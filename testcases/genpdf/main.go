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

// Command genpdf generates reference images for the rendering tests.
// It writes the discretized polyline of every test case to a PDF file and
// renders it to PNG using Ghostscript.
//
// Ghostscript uses area coverage, so edge pixels of the resulting images
// differ from the output of the scanline filler.
package main

import (
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"github.com/re-gui/repaint"
	"github.com/re-gui/repaint/testcases"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
)

const refDir = "testdata/reference"

func main() {
	if err := os.MkdirAll(refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(refDir, name+".pdf")
			pngPath := filepath.Join(refDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}

			if err := renderPNG(pdfPath, pngPath, antialiased(tc.Op)); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.TestCase, pdfPath string) error {
	// Page size in points (1 point = 1 pixel at 72 DPI)
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}

	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// Black background, so that the gray value equals the coverage.
	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// PDF origin is bottom-left; test cases assume top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})

	page.SetFillColor(color.DeviceGray(1))
	page.SetStrokeColor(color.DeviceGray(1))
	if _, ok := tc.Op.(testcases.Hairline); ok {
		page.SetLineWidth(1)
	}

	// The polyline is already in device space, so the transform of the
	// test case is not applied again.
	polyline := tc.Polyline()
	for _, cmd := range polyline {
		switch cmd.Op {
		case repaint.PolylineMoveTo:
			page.MoveTo(cmd.Pt.X, cmd.Pt.Y)
		case repaint.PolylineLineTo:
			page.LineTo(cmd.Pt.X, cmd.Pt.Y)
		}
	}

	if len(polyline) > 0 {
		switch tc.Op.(type) {
		case testcases.Fill:
			page.FillEvenOdd()
		case testcases.Hairline:
			page.Stroke()
		}
	}

	return page.Close()
}

func antialiased(op testcases.Operation) bool {
	switch op := op.(type) {
	case testcases.Fill:
		return op.Antialiased
	case testcases.Hairline:
		return op.Antialiased
	}
	return false
}

func renderPNG(pdfPath, pngPath string, antialiased bool) error {
	// -sDEVICE=pnggray: 8-bit grayscale
	// -r72: 72 DPI (1 point = 1 pixel)
	// -dGraphicsAlphaBits: 4x supersampling for anti-aliasing
	alphaBits := "-dGraphicsAlphaBits=1"
	if antialiased {
		alphaBits = "-dGraphicsAlphaBits=4"
	}
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		alphaBits,
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
