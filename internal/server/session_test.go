package server

import (
	"bytes"
	"errors"
	"image/png"
	"math"
	"testing"
	"time"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/linedraw/clip"
	"seehuhn.de/go/linedraw/pixel"
)

func testSession(t *testing.T, cfg Config) *session {
	t.Helper()
	clipper, err := cfg.check()
	if err != nil {
		t.Fatal(err)
	}
	return newSession(cfg, clipper)
}

// segment sends a down/up pair and returns the result.
func segment(t *testing.T, s *session, x0, y0, x1, y1 float64) *resultMsg {
	t.Helper()
	if _, _, err := s.handle(inboundMessage{Type: "down", X: x0, Y: y0}); err != nil {
		t.Fatal(err)
	}
	res, redraw, err := s.handle(inboundMessage{Type: "up", X: x1, Y: y1})
	if err != nil {
		t.Fatal(err)
	}
	if res == nil || !redraw {
		t.Fatalf("up: got result %v, redraw=%t", res, redraw)
	}
	return res
}

func TestSessionInitial(t *testing.T) {
	s := testSession(t, DefaultConfig())
	pal := pixel.DefaultPalette()

	checks := []struct {
		x, y int
		want pixel.RGB
	}{
		{0, 0, pal.Background},
		{100, 100, pal.Outline},
		{300, 300, pal.Outline},
		{100, 200, pal.Outline},
		{200, 300, pal.Outline},
		{200, 200, pal.Background},
		{399, 399, pal.Background},
	}
	for _, c := range checks {
		if got := s.fb.RGBAt(c.x, c.y); got != c.want {
			t.Errorf("pixel (%d,%d): got %s, want %s", c.x, c.y, got, c.want)
		}
	}
}

func TestSessionOutcomes(t *testing.T) {
	s := testSession(t, DefaultConfig())
	pal := pixel.DefaultPalette()

	res := segment(t, s, 150, 150, 250, 250)
	if res.Acceptance != "accept" || res.P0 != (pointDTO{150, 150}) || res.P1 != (pointDTO{250, 250}) {
		t.Errorf("accept: got %+v", res)
	}
	if got := s.fb.RGBAt(200, 200); got != pal.Accept {
		t.Errorf("accepted line: got %s, want %s", got, pal.Accept)
	}

	res = segment(t, s, 0, 120, 399, 120)
	if res.Acceptance != "clip" {
		t.Errorf("clip: got %+v", res)
	}
	if math.Abs(res.P0.X-100) > 1e-6 || math.Abs(res.P1.X-300) > 1e-6 || res.P0.Y != 120 {
		t.Errorf("clip: got %+v", res)
	}
	if got := s.fb.RGBAt(200, 120); got != pal.Clip {
		t.Errorf("clipped line: got %s, want %s", got, pal.Clip)
	}
	if got := s.fb.RGBAt(50, 120); got != pal.Background {
		t.Errorf("clipped part drawn: got %s", got)
	}

	res = segment(t, s, 10, 10, 50, 20)
	if res.Acceptance != "reject" || res.P0 != (pointDTO{10, 10}) || res.P1 != (pointDTO{50, 20}) {
		t.Errorf("reject: got %+v", res)
	}
	for _, p := range [][2]int{{10, 10}, {50, 20}} {
		if got := s.fb.RGBAt(p[0], p[1]); got != pal.Reject {
			t.Errorf("rejected line at %v: got %s, want %s", p, got, pal.Reject)
		}
	}

	_, redraw, err := s.handle(inboundMessage{Type: "clear"})
	if err != nil || !redraw {
		t.Fatalf("clear: redraw=%t, err=%v", redraw, err)
	}
	for _, p := range [][2]int{{10, 10}, {200, 200}, {200, 120}} {
		if got := s.fb.RGBAt(p[0], p[1]); got != pal.Background {
			t.Errorf("after clear at %v: got %s", p, got)
		}
	}
	if got := s.fb.RGBAt(100, 120); got != pal.Outline {
		t.Errorf("outline not restored: got %s", got)
	}
}

func TestSessionRejectUnclipped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Algorithm = "cohen-sutherland"
	s := testSession(t, cfg)

	// Cohen-Sutherland moves P1 before it detects the rejection.
	res := segment(t, s, 98, 299, 102, 303)
	if res.Acceptance != "reject" {
		t.Fatalf("got %+v", res)
	}
	if res.P0 != (pointDTO{98, 299}) || res.P1 != (pointDTO{102, 303}) {
		t.Errorf("rejected segment was modified: %+v", res)
	}
}

func TestSessionRejectFarOutside(t *testing.T) {
	pal := pixel.DefaultPalette()
	for _, algo := range []string{"liang-barsky", "cohen-sutherland"} {
		t.Run(algo, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Algorithm = algo
			s := testSession(t, cfg)

			start := time.Now()

			// entirely outside the framebuffer
			res := segment(t, s, -1e9, -1e9, -1e9, 1e9)
			if res.Acceptance != "reject" || res.P0 != (pointDTO{-1e9, -1e9}) {
				t.Errorf("got %+v", res)
			}

			// crosses the framebuffer below the viewport
			res = segment(t, s, -1e9, 10, 1e9, 10)
			if res.Acceptance != "reject" || res.P1 != (pointDTO{1e9, 10}) {
				t.Errorf("got %+v", res)
			}

			if d := time.Since(start); d > time.Second {
				t.Errorf("drawing took %v", d)
			}
			for _, x := range []int{1, 200, 398} {
				if got := s.fb.RGBAt(x, 10); got != pal.Reject {
					t.Errorf("pixel (%d,10): got %s, want %s", x, got, pal.Reject)
				}
			}
			if got := s.fb.RGBAt(200, 11); got != pal.Background {
				t.Errorf("pixel (200,11): got %s", got)
			}
		})
	}
}

func TestSessionProtocol(t *testing.T) {
	s := testSession(t, DefaultConfig())

	if _, _, err := s.handle(inboundMessage{Type: "up", X: 1, Y: 1}); err == nil {
		t.Error("up without down accepted")
	}
	if _, _, err := s.handle(inboundMessage{Type: "jump"}); err == nil {
		t.Error("unknown type accepted")
	}
	if _, _, err := s.handle(inboundMessage{Type: "down", X: math.NaN()}); err == nil {
		t.Error("NaN position accepted")
	}

	// a second press keeps the first start point
	res, redraw, err := s.handle(inboundMessage{Type: "down", X: 150, Y: 160})
	if res != nil || redraw || err != nil {
		t.Errorf("down: got %v, %t, %v", res, redraw, err)
	}
	s.handle(inboundMessage{Type: "down", X: 10, Y: 10})
	res, _, err = s.handle(inboundMessage{Type: "up", X: 170, Y: 180})
	if err != nil {
		t.Fatal(err)
	}
	if res.P0 != (pointDTO{150, 160}) {
		t.Errorf("start point: got %+v", res.P0)
	}
}

func TestSessionAlpha(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Alpha = 0.5
	cfg.Palette.Background = pixel.Blue
	s := testSession(t, cfg)

	segment(t, s, 150, 200, 250, 200)
	want := pixel.Merge(pixel.Blue, cfg.Palette.Accept.WithAlpha(0.5))
	if got := s.fb.RGBAt(200, 200); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestSessionFrame(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 50, 40
	cfg.Viewport = rect.Rect{LLx: 10, LLy: 10, URx: 40, URy: 30}
	s := testSession(t, cfg)

	data, err := s.frame()
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 50 || b.Dy() != 40 {
		t.Errorf("frame size %v", b)
	}
	r, g, b, _ := img.At(10, 10).RGBA()
	if r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("outline pixel: %d %d %d", r>>8, g>>8, b>>8)
	}
}

func TestConfig(t *testing.T) {
	if _, err := New(DefaultConfig()); err != nil {
		t.Fatalf("default config: %v", err)
	}

	bad := map[string]func(*Config){
		"zero_width":     func(c *Config) { c.Width = 0 },
		"inverted":       func(c *Config) { c.Viewport.LLx, c.Viewport.URx = 300, 100 },
		"outside":        func(c *Config) { c.Viewport.URy = 400 },
		"negative":       func(c *Config) { c.Viewport.LLx = -1 },
		"alpha":          func(c *Config) { c.Alpha = 1.5 },
		"alpha_nan":      func(c *Config) { c.Alpha = float32(math.NaN()) },
		"unknown_method": func(c *Config) { c.Algorithm = "sutherland-hodgman" },
	}
	for name, modify := range bad {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			modify(&cfg)
			_, err := New(cfg)
			if !errors.Is(err, ErrConfig) {
				t.Errorf("got %v, want ErrConfig", err)
			}
		})
	}

	cfg := DefaultConfig()
	cfg.Algorithm = "nope"
	if _, err := New(cfg); !errors.Is(err, clip.ErrUnknownAlgorithm) {
		t.Errorf("got %v, want ErrUnknownAlgorithm", err)
	}
}

func TestColorFor(t *testing.T) {
	pal := pixel.DefaultPalette()
	cases := map[clip.Acceptance]pixel.RGB{
		clip.Accept: pixel.Green,
		clip.Reject: pixel.Red,
		clip.Clip:   pixel.Yellow,
	}
	for a, want := range cases {
		if got := colorFor(pal, a); got != want {
			t.Errorf("%s: got %s, want %s", a, got, want)
		}
	}
}
