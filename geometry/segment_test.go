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
	"math"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
)

func TestSegmentLength(t *testing.T) {
	cases := []struct {
		s    Segment
		want float64
	}{
		{Seg(0, 0, 3, 4), 5},
		{Seg(1, 1, 1, 1), 0},
		{Seg(-2, 0, 2, 0), 4},
	}
	for _, tc := range cases {
		if got := tc.s.Length(); math.Abs(got-tc.want) > EPS {
			t.Errorf("%v: got %g, want %g", tc.s, got, tc.want)
		}
		if got := tc.s.Reverse().Length(); math.Abs(got-tc.want) > EPS {
			t.Errorf("%v reversed: got %g, want %g", tc.s, got, tc.want)
		}
	}
}

func TestSegmentEqual(t *testing.T) {
	s := Seg(0, 0, 1, 1)
	if !s.Equal(Seg(EPS/4, 0, 1, 1-EPS/4)) {
		t.Error("expected equal")
	}
	if s.Equal(s.Reverse()) {
		t.Error("endpoint order must matter")
	}
}

func TestSegmentBounds(t *testing.T) {
	got := Seg(5, -1, 2, 3).Bounds()
	want := rect.Rect{LLx: 2, LLy: -1, URx: 5, URy: 3}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSegmentIsFinite(t *testing.T) {
	if !Seg(0, 0, 1, 1).IsFinite() {
		t.Error("finite segment reported as non-finite")
	}
	if Seg(0, math.Inf(1), 1, 1).IsFinite() {
		t.Error("infinite coordinate not detected")
	}
	if Seg(0, 0, math.NaN(), 1).IsFinite() {
		t.Error("NaN coordinate not detected")
	}
}

func TestPath(t *testing.T) {
	segs := []Segment{Seg(0, 0, 1, 0), Seg(2, 2, 3, 3)}

	var cmds []path.Command
	var pts []Point
	for cmd, v := range Path(segs) {
		cmds = append(cmds, cmd)
		pts = append(pts, FromVec(v[0]))
	}

	wantCmds := []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdMoveTo, path.CmdLineTo}
	if len(cmds) != len(wantCmds) {
		t.Fatalf("got %d commands, want %d", len(cmds), len(wantCmds))
	}
	for i := range cmds {
		if cmds[i] != wantCmds[i] {
			t.Errorf("command %d: got %v, want %v", i, cmds[i], wantCmds[i])
		}
	}
	wantPts := []Point{Pt(0, 0), Pt(1, 0), Pt(2, 2), Pt(3, 3)}
	for i := range pts {
		if pts[i] != wantPts[i] {
			t.Errorf("point %d: got %v, want %v", i, pts[i], wantPts[i])
		}
	}

	// early termination must be honoured
	n := 0
	for range Path(segs) {
		n++
		break
	}
	if n != 1 {
		t.Errorf("iteration did not stop, n=%d", n)
	}
}
