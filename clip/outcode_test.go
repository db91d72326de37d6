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
	"errors"
	"testing"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/linedraw/geometry"
)

func TestOutcode(t *testing.T) {
	vp := rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10}
	cases := []struct {
		p    geometry.Point
		want outcode
	}{
		{geometry.Pt(5, 5), inside},
		{geometry.Pt(0, 10), inside},
		{geometry.Pt(-1, 5), left},
		{geometry.Pt(11, 5), right},
		{geometry.Pt(5, -1), bottom},
		{geometry.Pt(5, 11), top},
		{geometry.Pt(-1, -1), left | bottom},
		{geometry.Pt(11, 11), right | top},
	}
	for _, tc := range cases {
		if got := computeOutcode(tc.p, vp); got != tc.want {
			t.Errorf("%v: got %04b, want %04b", tc.p, got, tc.want)
		}
	}
}

// TestLargerOutcodeFirst checks the tie-break: the endpoint with the larger
// outcode is moved first, so a segment that misses the viewport is rejected
// with only that endpoint changed.
func TestLargerOutcodeFirst(t *testing.T) {
	vp := rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 10}
	s := geometry.Seg(-2, 9, 2, 13) // outcodes left and top
	if got := CohenSutherlandClip(&s, vp); got != Reject {
		t.Fatalf("got %v", got)
	}
	if s.P0 != geometry.Pt(-2, 9) {
		t.Errorf("P0 moved to %v", s.P0)
	}
	if !s.P1.Equal(geometry.Pt(-1, 10)) {
		t.Errorf("P1 = %v, want (-1, 10)", s.P1)
	}
}

func TestIntersectParallel(t *testing.T) {
	if _, ok := intersect(0, 5, 3, 3, 10); ok {
		t.Error("parallel line reported an intersection")
	}
	if a, ok := intersect(0, 10, 0, 10, 4); !ok || a != 4 {
		t.Errorf("got %g, %t", a, ok)
	}
}

func TestByName(t *testing.T) {
	for _, name := range []string{"cohen-sutherland", "CS", "outcode"} {
		c, err := ByName(name)
		if err != nil {
			t.Errorf("%s: %v", name, err)
		} else if _, ok := c.(CohenSutherland); !ok {
			t.Errorf("%s: got %T", name, c)
		}
	}
	for _, name := range []string{"liang-barsky", "lb", "Parametric"} {
		c, err := ByName(name)
		if err != nil {
			t.Errorf("%s: %v", name, err)
		} else if _, ok := c.(LiangBarsky); !ok {
			t.Errorf("%s: got %T", name, c)
		}
	}
	if _, err := ByName("sutherland-hodgman"); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("expected ErrUnknownAlgorithm, got %v", err)
	}
}
