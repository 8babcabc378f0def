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
	"cmp"
	"context"
	"image"
	"log/slog"
	"math"
	"slices"
)

// SpanConsumer receives the output of a ScanlineFiller.
//
// For every scanline, StartLine is called first, followed by any number of
// PutWeighted (and PutSolidSpan, if implemented) calls for that line, and
// finally EndLine.
type SpanConsumer interface {
	StartLine(y int)
	EndLine()

	// PutWeighted sets pixel x of the current line to the given coverage,
	// in the range (0, 1].
	PutWeighted(x int, coverage float32)
}

// SolidSpanConsumer is implemented by consumers which can process runs of
// fully covered pixels more efficiently than pixel by pixel.
type SolidSpanConsumer interface {
	SpanConsumer

	// PutSolidSpan marks the pixels x0 <= x < x1 of the current line as
	// fully covered.
	PutSolidSpan(x0, x1 int)
}

// segment is a polyline edge in device coordinates, with y0 <= y1.
type segment struct {
	x0, y0 float64
	x1, y1 float64
}

// ScanlineFiller fills polyline contours using the even-odd rule and
// reports the covered pixels to a SpanConsumer.  Create one instance and
// reuse it for multiple contours; internal buffers grow as needed but never
// shrink.
//
// Each scanline y is sampled at the single height y.  Pairs of consecutive
// edge crossings along the scanline enclose the inside of the contour.
// With antialiasing, only the horizontal position of the crossings is
// used to compute partial coverage of the boundary pixels.
//
// A ScanlineFiller is not safe for concurrent use.
type ScanlineFiller struct {
	// Clip bounds the output.  Only pixels (x, y) with
	// Clip.Min.X <= x < Clip.Max.X and Clip.Min.Y <= y < Clip.Max.Y
	// are reported.
	Clip image.Rectangle

	// Antialiased enables fractional coverage for the boundary pixels of
	// each span.
	Antialiased bool

	// Logger receives debug statistics for every fill.  Nil disables
	// logging.
	Logger *slog.Logger

	segments      []segment
	active        []int
	intersections []float64
}

// NewScanlineFiller returns a non-antialiased filler for the given clip
// rectangle.
func NewScanlineFiller(clip image.Rectangle) *ScanlineFiller {
	return &ScanlineFiller{Clip: clip}
}

// Reset changes the clip rectangle and restores the default settings,
// keeping the allocated buffers.
func (f *ScanlineFiller) Reset(clip image.Rectangle) {
	f.Clip = clip
	f.Antialiased = false
	f.Logger = nil
	f.segments = f.segments[:0]
	f.active = f.active[:0]
	f.intersections = f.intersections[:0]
}

// Fill is a convenience wrapper which fills contour with a new
// ScanlineFiller.
func Fill(contour []PolylineCommand, clip image.Rectangle, antialiased bool, c SpanConsumer) {
	f := NewScanlineFiller(clip)
	f.Antialiased = antialiased
	f.Fill(contour, c)
}

// Fill rasterizes contour.  All sub-contours together form one region.
// Sub-contours need not be closed explicitly: only the edges present in
// the polyline take part in the fill.
func (f *ScanlineFiller) Fill(contour []PolylineCommand, c SpanConsumer) {
	minY, maxY, ok := f.collectSegments(contour)
	if !ok || f.Clip.Empty() {
		return
	}

	yStart := max(math.Floor(minY), float64(f.Clip.Min.Y))
	yEnd := min(math.Ceil(maxY), float64(f.Clip.Max.Y))
	if yStart >= yEnd {
		return
	}

	slices.SortFunc(f.segments, func(a, b segment) int {
		return cmp.Compare(a.y0, b.y0)
	})

	solid, _ := c.(SolidSpanConsumer)
	putSolid := func(x0, x1 int) {
		if x0 >= x1 {
			return
		}
		if solid != nil {
			solid.PutSolidSpan(x0, x1)
			return
		}
		for x := x0; x < x1; x++ {
			c.PutWeighted(x, 1)
		}
	}

	clipXMin := float64(f.Clip.Min.X)
	clipXMax := float64(f.Clip.Max.X)

	f.active = f.active[:0]
	nextSeg := 0
	pruned := 0
	dropped := 0

	// yStart and yEnd are integers within the clip rectangle.
	for y := int(yStart); y < int(yEnd); y++ {
		yf := float64(y)

		// Add segments which start at or above this scanline.
		for nextSeg < len(f.segments) && f.segments[nextSeg].y0 <= yf {
			f.active = append(f.active, nextSeg)
			nextSeg++
		}

		f.intersections = f.intersections[:0]
		for i := 0; i < len(f.active); {
			s := &f.segments[f.active[i]]
			if s.y1 <= yf {
				// Remove from active list (swap with last).
				f.active[i] = f.active[len(f.active)-1]
				f.active = f.active[:len(f.active)-1]
				pruned++
				continue
			}

			x := s.x0 + (yf-s.y0)/(s.y1-s.y0)*(s.x1-s.x0)
			if math.IsNaN(x) {
				x = s.x0
			}
			x = min(max(x, min(s.x0, s.x1)), max(s.x0, s.x1))
			x = min(max(x, clipXMin), clipXMax)
			f.intersections = append(f.intersections, x)
			i++
		}
		slices.Sort(f.intersections)
		if len(f.intersections)%2 == 1 {
			dropped++
		}

		c.StartLine(y)
		for i := 0; i+1 < len(f.intersections); i += 2 {
			a, b := f.intersections[i], f.intersections[i+1]
			if !f.Antialiased {
				putSolid(int(math.Floor(a)), int(math.Ceil(b)))
				continue
			}

			x0 := math.Floor(a)
			x1 := math.Floor(b)
			fracA := a - x0
			fracB := b - x1
			if x0 == x1 {
				if cov := float32((1 - fracA) * fracB); cov > 0 {
					c.PutWeighted(int(x0), cov)
				}
				continue
			}
			if cov := float32(1 - fracA); cov > 0 {
				c.PutWeighted(int(x0), cov)
			}
			putSolid(int(x0)+1, int(x1))
			if cov := float32(fracB); cov > 0 {
				c.PutWeighted(int(x1), cov)
			}
		}
		c.EndLine()
	}

	if log := f.logger(); log.Enabled(context.Background(), slog.LevelDebug) {
		log.Debug("scanline fill",
			"segments", len(f.segments),
			"rows", int(yEnd-yStart),
			"pruned", pruned,
			"oddRows", dropped)
	}
}

// collectSegments builds the edge list for contour and returns its
// vertical extent.  Zero-length and non-finite edges are skipped.
func (f *ScanlineFiller) collectSegments(contour []PolylineCommand) (minY, maxY float64, ok bool) {
	f.segments = f.segments[:0]

	var prev PolylineCommand
	hasPrev := false
	for _, cmd := range contour {
		if cmd.Op == PolylineMoveTo || !hasPrev {
			prev = cmd
			hasPrev = true
			continue
		}
		p0, p1 := prev.Pt, cmd.Pt
		prev = cmd

		if p0 == p1 || !finite(p0) || !finite(p1) {
			continue
		}
		if p0.Y > p1.Y {
			p0, p1 = p1, p0
		}
		f.segments = append(f.segments, segment{
			x0: p0.X, y0: p0.Y,
			x1: p1.X, y1: p1.Y,
		})

		if !ok {
			minY, maxY = p0.Y, p1.Y
			ok = true
		} else {
			minY = min(minY, p0.Y)
			maxY = max(maxY, p1.Y)
		}
	}
	return minY, maxY, ok
}

func (f *ScanlineFiller) logger() *slog.Logger {
	if f.Logger == nil {
		return nopLogger
	}
	return f.Logger
}

// nopHandler is a slog.Handler that discards all records.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var nopLogger = slog.New(nopHandler{})
