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


// Package pdfexport writes line drawings as vector graphics to PDF files.
//
// The PDF uses the same coordinate system as the framebuffer: the origin is
// in the top-left corner, one unit is one pixel, and the stroke through a
// segment with integer endpoints covers the pixels the rasteriser draws.
// Colours are reduced to DeviceGray.
package pdfexport

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/linedraw/geometry"
	"seehuhn.de/go/linedraw/pixel"
)

// Page describes the output page.
type Page struct {
	Width, Height int       // page size in pixels, one pixel per PDF point
	Background    pixel.RGB // page fill colour
	LineWidth     float64   // stroke width; zero selects 1
}

// Stroke is one segment together with its colour.
type Stroke struct {
	Segment geometry.Segment
	Color   pixel.RGB
}

// WriteFile writes a single page PDF showing the given strokes.
// Consecutive strokes of the same colour are combined into one path.
func WriteFile(fname string, pg Page, strokes []Stroke) error {
	w := float64(pg.Width)
	h := float64(pg.Height)
	paper := &pdf.Rectangle{URx: w, URy: h}

	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(pg.Background.Luma()))
	page.Rectangle(0, 0, w, h)
	page.Fill()

	// PDF origin is bottom-left; move it to the top-left and put integer
	// coordinates at pixel centres.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0.5, h - 0.5})

	lw := pg.LineWidth
	if lw <= 0 {
		lw = 1
	}
	page.SetLineWidth(lw)
	page.SetLineCap(graphics.LineCapRound)

	for len(strokes) > 0 {
		c := strokes[0].Color
		n := 1
		for n < len(strokes) && strokes[n].Color == c {
			n++
		}
		segs := make([]geometry.Segment, 0, n)
		for _, s := range strokes[:n] {
			if s.Segment.IsFinite() {
				segs = append(segs, s.Segment)
			}
		}
		strokes = strokes[n:]
		if len(segs) == 0 {
			continue
		}

		page.SetStrokeColor(color.DeviceGray(c.Luma()))
		for cmd, pts := range geometry.Path(segs) {
			switch cmd {
			case path.CmdMoveTo:
				page.MoveTo(pts[0].X, pts[0].Y)
			case path.CmdLineTo:
				page.LineTo(pts[0].X, pts[0].Y)
			}
		}
		page.Stroke()
	}

	return page.Close()
}
