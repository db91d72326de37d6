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


// Package scene reads line drawings from a simple text format.
//
// A scene file lists a point count N, then N lines of two integer
// coordinates, then an edge count M, then M lines of two 0-based point
// indices:
//
//	4
//	0 0
//	100 0
//	100 100
//	0 100
//	4
//	0 1
//	1 2
//	2 3
//	3 0
//
// Fields are separated by white space.  Blank lines are ignored.
package scene

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/linedraw/geometry"
)

// ErrFormat is wrapped by all errors caused by malformed scene data.
var ErrFormat = errors.New("malformed scene")

// Scene is a set of points connected by straight edges.
type Scene struct {
	Points []geometry.Point
	Edges  [][2]int // indices into Points
}

// Load reads a scene from the named file.
func Load(fname string) (*Scene, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return s, nil
}

// Parse reads a scene from r.
func Parse(r io.Reader) (*Scene, error) {
	p := &parser{scanner: bufio.NewScanner(r)}

	n, err := p.count("point count")
	if err != nil {
		return nil, err
	}
	s := &Scene{Points: make([]geometry.Point, 0, min(n, 1<<16))}
	for range n {
		x, y, err := p.pair("point")
		if err != nil {
			return nil, err
		}
		s.Points = append(s.Points, geometry.Pt(float64(x), float64(y)))
	}

	m, err := p.count("edge count")
	if err != nil {
		return nil, err
	}
	s.Edges = make([][2]int, 0, min(m, 1<<16))
	for range m {
		u, v, err := p.pair("edge")
		if err != nil {
			return nil, err
		}
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, p.errorf("edge %d-%d: point index out of range [0, %d)", u, v, n)
		}
		s.Edges = append(s.Edges, [2]int{u, v})
	}

	fields, err := p.next()
	if err != nil && err != io.EOF {
		return nil, err
	}
	if fields != nil {
		return nil, p.errorf("unexpected data after %d edges", m)
	}
	return s, nil
}

type parser struct {
	scanner *bufio.Scanner
	line    int
}

// next returns the fields of the next non-blank line.
func (p *parser) next() ([]string, error) {
	for p.scanner.Scan() {
		p.line++
		fields := strings.Fields(p.scanner.Text())
		if len(fields) > 0 {
			return fields, nil
		}
	}
	if err := p.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("line %d: %w: %s", p.line, ErrFormat, fmt.Sprintf(format, args...))
}

func (p *parser) count(what string) (int, error) {
	fields, err := p.next()
	if err == io.EOF {
		return 0, p.errorf("missing %s", what)
	} else if err != nil {
		return 0, err
	}
	if len(fields) != 1 {
		return 0, p.errorf("%s: expected 1 field, got %d", what, len(fields))
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n < 0 {
		return 0, p.errorf("invalid %s %q", what, fields[0])
	}
	return n, nil
}

func (p *parser) pair(what string) (int, int, error) {
	fields, err := p.next()
	if err == io.EOF {
		return 0, 0, p.errorf("missing %s", what)
	} else if err != nil {
		return 0, 0, err
	}
	if len(fields) != 2 {
		return 0, 0, p.errorf("%s: expected 2 fields, got %d", what, len(fields))
	}
	a, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, p.errorf("invalid %s %q", what, fields[0])
	}
	b, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, p.errorf("invalid %s %q", what, fields[1])
	}
	return a, b, nil
}

// Segments returns one segment per edge, in file order.
func (s *Scene) Segments() []geometry.Segment {
	res := make([]geometry.Segment, len(s.Edges))
	for i, e := range s.Edges {
		res[i] = geometry.Segment{P0: s.Points[e[0]], P1: s.Points[e[1]]}
	}
	return res
}

// Bounds returns the bounding box of all points used by edges.
// The second return value is false if the scene has no edges.
func (s *Scene) Bounds() (rect.Rect, bool) {
	if len(s.Edges) == 0 {
		return rect.Rect{}, false
	}
	b := rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	for _, seg := range s.Segments() {
		sb := seg.Bounds()
		b.LLx = min(b.LLx, sb.LLx)
		b.LLy = min(b.LLy, sb.LLy)
		b.URx = max(b.URx, sb.URx)
		b.URy = max(b.URy, sb.URy)
	}
	return b, true
}

// Size returns the width and height of the figure.
func (s *Scene) Size() (w, h float64) {
	b, ok := s.Bounds()
	if !ok {
		return 0, 0
	}
	return b.URx - b.LLx, b.URy - b.LLy
}

// ScreenMatrix maps scene coordinates to screen coordinates for a screen of
// the given size.  The centre of bounds is moved to the centre of the
// screen and the y axis is flipped so that it points down.  The figure is
// not scaled.
func ScreenMatrix(bounds rect.Rect, width, height int) matrix.Matrix {
	cx := (bounds.LLx + bounds.URx) / 2
	cy := (bounds.LLy + bounds.URy) / 2
	return matrix.Matrix{
		1, 0,
		0, -1,
		float64(width)/2 - cx, float64(height)/2 + cy,
	}
}
