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

// Package clip truncates line segments to an axis-aligned viewport.
//
// Two independent algorithms are provided, the outcode-based
// Cohen-Sutherland method and the parametric Liang-Barsky method.  Both
// classify a segment as entirely inside ([Accept]), entirely outside
// ([Reject]) or partially visible ([Clip]); in the latter case the segment
// is shortened in place to its visible part.
//
// The viewport is given as a rect.Rect with LLx <= URx and LLy <= URy.
// Points on the boundary count as inside.
package clip

import (
	"errors"
	"fmt"
	"strings"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/linedraw/geometry"
)

// Acceptance is the result of clipping a segment.
type Acceptance int

const (
	// Accept means the segment lies inside the viewport and was not changed.
	Accept Acceptance = iota

	// Reject means the segment lies outside the viewport.  The contents of
	// the segment are unspecified after a reject.
	Reject

	// Clip means the segment was truncated to its visible part.
	Clip
)

func (a Acceptance) String() string {
	switch a {
	case Accept:
		return "accept"
	case Reject:
		return "reject"
	case Clip:
		return "clip"
	default:
		return fmt.Sprintf("Acceptance(%d)", int(a))
	}
}

// Clipper is implemented by the clipping algorithms.
type Clipper interface {
	// Clip classifies s with respect to vp and truncates s in place if it is
	// partially visible.
	Clip(s *geometry.Segment, vp rect.Rect) Acceptance
}

// CohenSutherland is the outcode-based clipping algorithm.
type CohenSutherland struct{}

// Clip implements the [Clipper] interface.
func (CohenSutherland) Clip(s *geometry.Segment, vp rect.Rect) Acceptance {
	return CohenSutherlandClip(s, vp)
}

// LiangBarsky is the parametric clipping algorithm.
type LiangBarsky struct{}

// Clip implements the [Clipper] interface.
func (LiangBarsky) Clip(s *geometry.Segment, vp rect.Rect) Acceptance {
	return LiangBarskyClip(s, vp)
}

// Copy clips a copy of s using c and returns the copy together with the
// classification.  The caller's segment is not modified.
func Copy(c Clipper, s geometry.Segment, vp rect.Rect) (geometry.Segment, Acceptance) {
	res := c.Clip(&s, vp)
	return s, res
}

// ErrUnknownAlgorithm is returned by [ByName] for unrecognised names.
var ErrUnknownAlgorithm = errors.New("unknown clipping algorithm")

// ByName returns the clipping algorithm with the given name.
// Recognised names are "cohen-sutherland" (also "cs" and "outcode") and
// "liang-barsky" (also "lb" and "parametric").  Case is ignored.
func ByName(name string) (Clipper, error) {
	switch strings.ToLower(name) {
	case "cohen-sutherland", "cs", "outcode":
		return CohenSutherland{}, nil
	case "liang-barsky", "lb", "parametric":
		return LiangBarsky{}, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownAlgorithm, name)
}
