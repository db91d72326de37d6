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

// Package geometry provides the 2D point and segment types used by the
// clipping engine and the rasteriser.
//
// All operations are pure functions on value types.  Degenerate input is not
// reported as an error: dividing by zero, for example when normalising the
// zero vector, yields non-finite coordinates which the caller must check for
// with [Point.IsFinite].
package geometry

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// EPS is the tolerance used by [Point.Equal] and [Compare].
const EPS = 1e-9

// Point is a point or vector in the plane.
type Point struct {
	X, Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// FromAngle returns the unit vector (cos θ, sin θ).
func FromAngle(theta float64) Point {
	return Point{X: math.Cos(theta), Y: math.Sin(theta)}
}

// FromVec converts a vec.Vec2 to a Point.
func FromVec(v vec.Vec2) Point {
	return Point{X: v.X, Y: v.Y}
}

// Vec converts p to a vec.Vec2.
func (p Point) Vec() vec.Vec2 {
	return vec.Vec2{X: p.X, Y: p.Y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns p scaled by k.
func (p Point) Mul(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Div returns p divided by k.
// For k == 0 the result has infinite or NaN coordinates.
func (p Point) Div(k float64) Point {
	return Point{X: p.X / k, Y: p.Y / k}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the z component of the 3D cross product of p and q.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Norm returns the Euclidean length of p.
func (p Point) Norm() float64 {
	return math.Sqrt(p.NormSquared())
}

// NormSquared returns the squared Euclidean length of p.
func (p Point) NormSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Unit returns p divided by its length.
// The zero vector has no direction; in this case both coordinates of the
// result are NaN.
func (p Point) Unit() Point {
	return p.Div(p.Norm())
}

// IsFinite reports whether both coordinates are neither infinite nor NaN.
func (p Point) IsFinite() bool {
	return !math.IsInf(p.X, 0) && !math.IsNaN(p.X) &&
		!math.IsInf(p.Y, 0) && !math.IsNaN(p.Y)
}

// Transform applies the affine map m to p.
func (p Point) Transform(m matrix.Matrix) Point {
	return Point{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Orient returns Cross(q-p, r-q).
// The result is positive if p→q→r turns left, negative if it turns right and
// close to zero if the three points are collinear.
func Orient(p, q, r Point) float64 {
	return q.Sub(p).Cross(r.Sub(q))
}

// Equal reports whether p and q agree in both coordinates up to EPS.
func (p Point) Equal(q Point) bool {
	return ApproxEqual(p, q, EPS)
}

// ApproxEqual reports whether p and q agree in both coordinates up to eps.
func ApproxEqual(p, q Point, eps float64) bool {
	return math.Abs(p.X-q.X) < eps && math.Abs(p.Y-q.Y) < eps
}

// Compare orders points lexicographically by x, then y, treating coordinate
// differences below EPS as ties.  The result is -1, 0 or +1, so that Compare
// can be passed to slices.SortFunc.
//
// Because of the tolerance this is not a strict total order: a may tie with
// b and b with c while a < c.  This is good enough for sorting and removing
// near-duplicates, but callers must not rely on transitivity near EPS.
func Compare(p, q Point) int {
	if math.Abs(p.X-q.X) >= EPS {
		if p.X < q.X {
			return -1
		}
		return 1
	}
	if math.Abs(p.Y-q.Y) < EPS {
		return 0
	}
	if p.Y < q.Y {
		return -1
	}
	return 1
}
