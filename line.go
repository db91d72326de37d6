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


package linedraw

import (
	"log/slog"
	"math"

	"golang.org/x/exp/constraints"

	"seehuhn.de/go/linedraw/geometry"
	"seehuhn.de/go/linedraw/internal/logging"
	"seehuhn.de/go/linedraw/pixel"
)

// maxCoord bounds the pixel coordinates accepted by the line drawing
// functions.  Larger values cannot be represented exactly after the
// float to int conversion.
const maxCoord = 1 << 30

// DrawLine draws the segment s, compositing c over the existing pixels.
// The endpoints are mapped to the pixels containing them; both end pixels
// are drawn.  Pixels outside the framebuffer are skipped, so s need not be
// clipped first.  Segments with non-finite or out of range coordinates
// draw nothing.
func (fb *Framebuffer) DrawLine(s geometry.Segment, c pixel.RGBA) {
	x0, y0, x1, y1, ok := pixelEnds(s)
	if !ok {
		return
	}
	scanLine(x0, y0, x1, y1, func(x, y int) {
		fb.BlendRGBA(x, y, c)
	})
}

// DrawLineOpaque draws the segment s in the opaque colour c, overwriting
// the existing pixels.  It visits the same pixels as [Framebuffer.DrawLine].
func (fb *Framebuffer) DrawLineOpaque(s geometry.Segment, c pixel.RGB) {
	x0, y0, x1, y1, ok := pixelEnds(s)
	if !ok {
		return
	}
	scanLine(x0, y0, x1, y1, func(x, y int) {
		fb.SetRGB(x, y, c)
	})
}

// pixelEnds converts the endpoints of s to integer pixel positions.
func pixelEnds(s geometry.Segment) (x0, y0, x1, y1 int, ok bool) {
	coords := [4]float64{s.P0.X, s.P0.Y, s.P1.X, s.P1.Y}
	var ip [4]int
	for i, v := range coords {
		if math.IsNaN(v) || math.Abs(v) > maxCoord {
			logging.Logger().Debug("line skipped",
				slog.Any("p0", s.P0), slog.Any("p1", s.P1))
			return 0, 0, 0, 0, false
		}
		ip[i] = int(math.Floor(v))
	}
	return ip[0], ip[1], ip[2], ip[3], true
}

// scanLine calls plot for every pixel on the integer line from (x0, y0) to
// (x1, y1), both ends included, using Bresenham's midpoint rule.
// The pixels are visited in order, starting at (x0, y0).
func scanLine(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	ix := sign(x1 - x0)
	iy := sign(y1 - y0)

	x, y := x0, y0
	d := 0
	if dx >= dy {
		for {
			plot(x, y)
			if x == x1 {
				break
			}
			x += ix
			d += 2 * dy
			if d > dx {
				y += iy
				d -= 2 * dx
			}
		}
	} else {
		for {
			plot(x, y)
			if y == y1 {
				break
			}
			y += iy
			d += 2 * dx
			if d > dy {
				x += ix
				d -= 2 * dy
			}
		}
	}
}

func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func sign[T constraints.Signed](x T) T {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
