// seehuhn.de/go/linedraw - line clipping and scan conversion
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

// Package testcases collects named clipping and rasterisation examples.
// They are shared by the unit tests, the benchmarks and the genpdf tool.
package testcases

import (
	"image"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/linedraw/clip"
	"seehuhn.de/go/linedraw/geometry"
	"seehuhn.de/go/linedraw/pixel"
)

// ClipCase describes one segment/viewport pair and the expected outcome.
type ClipCase struct {
	Name     string           // lowercase a-z and _ only
	Segment  geometry.Segment // input segment
	Viewport rect.Rect        // clip region
	Want     clip.Acceptance  // expected classification

	// Result is the expected segment after Accept or Clip.
	// It is ignored for Reject.
	Result geometry.Segment
}

// LineCase describes a segment drawn into a small framebuffer.
type LineCase struct {
	Name       string           // lowercase a-z and _ only
	Segment    geometry.Segment // the line to draw
	Width      int              // framebuffer width in pixels
	Height     int              // framebuffer height in pixels
	Background pixel.RGB        // initial framebuffer contents
	Color      pixel.RGBA       // line colour
	Pixels     []image.Point    // exactly the pixels the line must touch
}

// vp is a helper to create a viewport.
func vp(xMin, yMin, xMax, yMax float64) rect.Rect {
	return rect.Rect{LLx: xMin, LLy: yMin, URx: xMax, URy: yMax}
}

// seg is a shorthand for geometry.Seg.
func seg(x0, y0, x1, y1 float64) geometry.Segment {
	return geometry.Seg(x0, y0, x1, y1)
}

// pts builds a pixel list from coordinate pairs.
func pts(xy ...int) []image.Point {
	res := make([]image.Point, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		res = append(res, image.Point{X: xy[i], Y: xy[i+1]})
	}
	return res
}
