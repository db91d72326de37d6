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
	"seehuhn.de/go/linedraw/internal/logging"
)

// LiangBarskyClip clips s to vp using the Liang-Barsky algorithm.
//
// The segment is parametrised as P0 + t·(P1-P0) for t in [0, 1].  Each
// viewport edge either raises the lower bound on t (the segment enters the
// viewport there) or lowers the upper bound (it leaves).  If the bounds
// cross, the segment is invisible.
// Segments with NaN or infinite coordinates are rejected unchanged.
func LiangBarskyClip(s *geometry.Segment, vp rect.Rect) Acceptance {
	if !s.IsFinite() {
		return Reject
	}
	x0, y0 := s.P0.X, s.P0.Y
	dx := s.P1.X - x0
	dy := s.P1.Y - y0

	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x0 - vp.LLx, vp.URx - x0, y0 - vp.LLy, vp.URy - y0}

	for k := range p {
		if p[k] == 0 && q[k] < 0 {
			// parallel to this edge, on the outside
			return Reject
		}
	}

	tEnter := 0.0
	tLeave := 1.0
	for k := 0; k < 4; k += 2 {
		if p[k] == 0 {
			continue
		}
		r0 := q[k] / p[k]
		r1 := q[k+1] / p[k+1]
		if p[k] > 0 {
			r0, r1 = r1, r0
		}
		// r0 belongs to the edge where the segment enters, r1 to the edge
		// where it leaves
		if r0 > tEnter {
			tEnter = r0
		}
		if r1 < tLeave {
			tLeave = r1
		}
	}

	if tEnter > tLeave {
		logging.Logger().Debug("segment outside viewport",
			"p0", s.P0, "p1", s.P1, "tEnter", tEnter, "tLeave", tLeave)
		return Reject
	}
	if tEnter == 0 && tLeave == 1 {
		return Accept
	}

	// The exact points P0 + t·d lie in vp.  The clamp only absorbs rounding,
	// which can leave a computed endpoint one ulp outside, and moves no
	// endpoint by more than that.
	s.P0 = clamp(geometry.Point{X: x0 + dx*tEnter, Y: y0 + dy*tEnter}, vp)
	s.P1 = clamp(geometry.Point{X: x0 + dx*tLeave, Y: y0 + dy*tLeave}, vp)
	return Clip
}

func clamp(p geometry.Point, vp rect.Rect) geometry.Point {
	return geometry.Point{
		X: max(vp.LLx, min(vp.URx, p.X)),
		Y: max(vp.LLy, min(vp.URy, p.Y)),
	}
}
