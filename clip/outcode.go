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

package clip

import (
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/linedraw/geometry"
)

// outcode classifies a point against the four half-planes outside a
// viewport.  Zero means the point is inside or on the boundary.
type outcode uint8

const (
	inside outcode = 0
	left   outcode = 1 << 0 // x < xmin
	right  outcode = 1 << 1 // x > xmax
	bottom outcode = 1 << 2 // y < ymin
	top    outcode = 1 << 3 // y > ymax
)

func computeOutcode(p geometry.Point, vp rect.Rect) outcode {
	code := inside
	if p.X < vp.LLx {
		code |= left
	} else if p.X > vp.URx {
		code |= right
	}
	if p.Y < vp.LLy {
		code |= bottom
	} else if p.Y > vp.URy {
		code |= top
	}
	return code
}

// CohenSutherlandClip clips s to vp using the Cohen-Sutherland algorithm.
//
// While at least one endpoint is outside, the endpoint with the larger
// outcode is moved to the intersection of the segment with the first
// violated boundary, checked in the order top, bottom, right, left.
// Segments with NaN or infinite coordinates are rejected unchanged.
func CohenSutherlandClip(s *geometry.Segment, vp rect.Rect) Acceptance {
	if !s.IsFinite() {
		return Reject
	}
	p0, p1 := s.P0, s.P1
	code0 := computeOutcode(p0, vp)
	code1 := computeOutcode(p1, vp)

	res := Reject
	for {
		if code0|code1 == inside {
			if res == Reject {
				res = Accept
			}
			break
		}
		if code0&code1 != inside {
			// both endpoints beyond the same boundary
			res = Reject
			break
		}

		codeOut := max(code0, code1)

		var p geometry.Point
		var ok bool
		switch {
		case codeOut&top != 0:
			p.X, ok = intersect(p0.X, p1.X, p0.Y, p1.Y, vp.URy)
			p.Y = vp.URy
		case codeOut&bottom != 0:
			p.X, ok = intersect(p0.X, p1.X, p0.Y, p1.Y, vp.LLy)
			p.Y = vp.LLy
		case codeOut&right != 0:
			p.Y, ok = intersect(p0.Y, p1.Y, p0.X, p1.X, vp.URx)
			p.X = vp.URx
		case codeOut&left != 0:
			p.Y, ok = intersect(p0.Y, p1.Y, p0.X, p1.X, vp.LLx)
			p.X = vp.LLx
		}
		if !ok {
			// parallel to the boundary and outside of it
			res = Reject
			break
		}

		if codeOut == code0 {
			p0 = p
			code0 = computeOutcode(p0, vp)
		} else {
			p1 = p
			code1 = computeOutcode(p1, vp)
		}
		res = Clip
	}

	s.P0, s.P1 = p0, p1
	return res
}

// intersect returns the coordinate a at which the line through (a0, b0)
// and (a1, b1) reaches b = bound.  The second return value is false if the
// line is parallel to the boundary.
func intersect(a0, a1, b0, b1, bound float64) (float64, bool) {
	db := b1 - b0
	if db == 0 {
		return 0, false
	}
	return a0 + (a1-a0)*(bound-b0)/db, true
}
