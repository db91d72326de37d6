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

package geometry

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Segment is a line segment from P0 to P1.
// The order of the endpoints has no geometric meaning, but clipping
// algorithms report which endpoint they moved.
type Segment struct {
	P0, P1 Point
}

// Seg returns the segment from (x0, y0) to (x1, y1).
func Seg(x0, y0, x1, y1 float64) Segment {
	return Segment{P0: Point{X: x0, Y: y0}, P1: Point{X: x1, Y: y1}}
}

// Length returns the distance between the endpoints.
func (s Segment) Length() float64 {
	return s.Vector().Norm()
}

// Vector returns P1-P0.
func (s Segment) Vector() Point {
	return s.P1.Sub(s.P0)
}

// Reverse returns the segment with its endpoints swapped.
func (s Segment) Reverse() Segment {
	return Segment{P0: s.P1, P1: s.P0}
}

// Equal reports whether the endpoints of s and o agree, in order, up to EPS.
func (s Segment) Equal(o Segment) bool {
	return s.P0.Equal(o.P0) && s.P1.Equal(o.P1)
}

// IsFinite reports whether both endpoints have finite coordinates.
func (s Segment) IsFinite() bool {
	return s.P0.IsFinite() && s.P1.IsFinite()
}

// Bounds returns the smallest axis-aligned rectangle containing s.
func (s Segment) Bounds() rect.Rect {
	return rect.Rect{
		LLx: min(s.P0.X, s.P1.X),
		LLy: min(s.P0.Y, s.P1.Y),
		URx: max(s.P0.X, s.P1.X),
		URy: max(s.P0.Y, s.P1.Y),
	}
}

// Transform applies the affine map m to both endpoints.
func (s Segment) Transform(m matrix.Matrix) Segment {
	return Segment{P0: s.P0.Transform(m), P1: s.P1.Transform(m)}
}

// Path returns a path which draws every segment as a separate subpath.
func Path(segs []Segment) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		var buf [1]vec.Vec2
		for _, s := range segs {
			buf[0] = s.P0.Vec()
			if !yield(path.CmdMoveTo, buf[:]) {
				return
			}
			buf[0] = s.P1.Vec()
			if !yield(path.CmdLineTo, buf[:]) {
				return
			}
		}
	}
}
