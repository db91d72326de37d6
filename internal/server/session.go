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


package server

import (
	"bytes"
	"fmt"
	"image/png"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/linedraw"
	"seehuhn.de/go/linedraw/clip"
	"seehuhn.de/go/linedraw/geometry"
)

type inboundMessage struct {
	Type string  `json:"type"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

type pointDTO struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type resultMsg struct {
	Type       string   `json:"type"`
	Acceptance string   `json:"acceptance"`
	P0         pointDTO `json:"p0"`
	P1         pointDTO `json:"p1"`
}

type errorMsg struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// session holds the drawing state of one client connection.
type session struct {
	cfg     Config
	clipper clip.Clipper
	fb      *linedraw.Framebuffer

	start    geometry.Point
	hasStart bool
}

func newSession(cfg Config, clipper clip.Clipper) *session {
	s := &session{
		cfg:     cfg,
		clipper: clipper,
		fb:      linedraw.NewFramebuffer(cfg.Width, cfg.Height),
	}
	s.reset()
	return s
}

// reset clears the framebuffer and redraws the viewport outline.
func (s *session) reset() {
	s.fb.Fill(s.cfg.Palette.Background)
	vp := s.cfg.Viewport
	s.fb.DrawRect(int(vp.LLx), int(vp.LLy), int(vp.URx), int(vp.URy), s.cfg.Palette.Outline)
	s.hasStart = false
}

// screen returns the framebuffer area in pixel coordinates.
func (s *session) screen() rect.Rect {
	return rect.Rect{URx: float64(s.cfg.Width - 1), URy: float64(s.cfg.Height - 1)}
}

// handle applies one client message.  If the message completes a segment,
// the clipping result is returned.  redraw reports whether the
// framebuffer has changed.
func (s *session) handle(m inboundMessage) (res *resultMsg, redraw bool, err error) {
	switch m.Type {
	case "down":
		p := geometry.Pt(m.X, m.Y)
		if !p.IsFinite() {
			return nil, false, fmt.Errorf("invalid position (%g, %g)", m.X, m.Y)
		}
		if !s.hasStart {
			s.start = p
			s.hasStart = true
		}
		return nil, false, nil

	case "up":
		if !s.hasStart {
			return nil, false, fmt.Errorf("%q without preceding %q", "up", "down")
		}
		end := geometry.Pt(m.X, m.Y)
		if !end.IsFinite() {
			return nil, false, fmt.Errorf("invalid position (%g, %g)", m.X, m.Y)
		}
		s.hasStart = false

		seg := geometry.Segment{P0: s.start, P1: end}
		clipped, acc := clip.Copy(s.clipper, seg, s.cfg.Viewport)
		visible, drawn := clipped, acc
		if acc == clip.Reject {
			// Rejected segments are shown unclipped, but only the part
			// inside the framebuffer is scanned.
			clipped = seg
			visible, drawn = clip.Copy(s.clipper, seg, s.screen())
		}
		if drawn != clip.Reject {
			col := colorFor(s.cfg.Palette, acc).WithAlpha(s.cfg.Alpha)
			s.fb.DrawLine(visible, col)
		}

		res = &resultMsg{
			Type:       "result",
			Acceptance: acc.String(),
			P0:         pointDTO{X: clipped.P0.X, Y: clipped.P0.Y},
			P1:         pointDTO{X: clipped.P1.X, Y: clipped.P1.Y},
		}
		return res, true, nil

	case "clear":
		s.reset()
		return nil, true, nil

	default:
		return nil, false, fmt.Errorf("unknown message type %q", m.Type)
	}
}

// frame encodes the current framebuffer as PNG.
func (s *session) frame() ([]byte, error) {
	buf := &bytes.Buffer{}
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(buf, s.fb.Image()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

