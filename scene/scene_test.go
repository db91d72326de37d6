package scene

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/linedraw/geometry"
)

const square = `4
0 0
100 0
100 50
0 50
4
0 1
1 2
2 3
3 0
`

func TestParse(t *testing.T) {
	s, err := Parse(strings.NewReader(square))
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Points) != 4 || len(s.Edges) != 4 {
		t.Fatalf("got %d points and %d edges", len(s.Points), len(s.Edges))
	}
	segs := s.Segments()
	if want := geometry.Seg(100, 0, 100, 50); !segs[1].Equal(want) {
		t.Errorf("segment 1: got %v, want %v", segs[1], want)
	}
	if want := geometry.Seg(0, 50, 0, 0); !segs[3].Equal(want) {
		t.Errorf("segment 3: got %v, want %v", segs[3], want)
	}
}

func TestParseLenient(t *testing.T) {
	in := "2\r\n\r\n  -3   7 \r\n5 -1\r\n\n1\r\n1 0\r\n\n"
	s, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	if want := geometry.Pt(-3, 7); !s.Points[0].Equal(want) {
		t.Errorf("got %v, want %v", s.Points[0], want)
	}
	if s.Edges[0] != [2]int{1, 0} {
		t.Errorf("got edge %v", s.Edges[0])
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		line string
	}{
		{"empty", "", "line 0"},
		{"bad_count", "x\n", "line 1"},
		{"negative_count", "-1\n", "line 1"},
		{"short_point", "1\n5\n0\n", "line 2"},
		{"float_point", "1\n1.5 2\n0\n", "line 2"},
		{"missing_points", "3\n0 0\n", "line 2"},
		{"missing_edges", "1\n0 0\n", "line 2"},
		{"index_range", "2\n0 0\n1 1\n1\n0 2\n", "line 5"},
		{"negative_index", "2\n0 0\n1 1\n1\n-1 0\n", "line 5"},
		{"trailing", "1\n0 0\n0\n7\n", "line 4"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.in))
			if !errors.Is(err, ErrFormat) {
				t.Fatalf("got %v, want ErrFormat", err)
			}
			if !strings.HasPrefix(err.Error(), tc.line+":") {
				t.Errorf("error %q does not start with %q", err, tc.line)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "square.txt")
	if err := os.WriteFile(fname, []byte(square), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(fname)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Edges) != 4 {
		t.Errorf("got %d edges", len(s.Edges))
	}

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v, want ErrNotExist", err)
	}
}

func TestBounds(t *testing.T) {
	s, err := Parse(strings.NewReader(square))
	if err != nil {
		t.Fatal(err)
	}
	b, ok := s.Bounds()
	if !ok {
		t.Fatal("no bounds")
	}
	if want := (rect.Rect{LLx: 0, LLy: 0, URx: 100, URy: 50}); b != want {
		t.Errorf("got %v, want %v", b, want)
	}
	if w, h := s.Size(); w != 100 || h != 50 {
		t.Errorf("got size %gx%g", w, h)
	}

	// unused points do not count
	s.Points = append(s.Points, geometry.Pt(1000, 1000))
	if b2, _ := s.Bounds(); b2 != b {
		t.Errorf("unused point changed bounds to %v", b2)
	}

	empty := &Scene{Points: []geometry.Point{geometry.Pt(1, 2)}}
	if _, ok := empty.Bounds(); ok {
		t.Error("empty scene has bounds")
	}
	if w, h := empty.Size(); w != 0 || h != 0 {
		t.Errorf("empty scene has size %gx%g", w, h)
	}
}

func TestScreenMatrix(t *testing.T) {
	b := rect.Rect{LLx: 0, LLy: 0, URx: 100, URy: 50}
	m := ScreenMatrix(b, 500, 400)

	cases := []struct {
		in, want geometry.Point
	}{
		{geometry.Pt(50, 25), geometry.Pt(250, 200)}, // centre
		{geometry.Pt(0, 0), geometry.Pt(200, 225)},   // lower left goes down
		{geometry.Pt(100, 50), geometry.Pt(300, 175)},
	}
	for _, c := range cases {
		if got := c.in.Transform(m); !got.Equal(c.want) {
			t.Errorf("%v: got %v, want %v", c.in, got, c.want)
		}
	}
}
