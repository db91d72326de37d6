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
	"errors"
	"fmt"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/linedraw/clip"
	"seehuhn.de/go/linedraw/pixel"
)

// ErrConfig is wrapped by all configuration errors reported by [New].
var ErrConfig = errors.New("invalid server configuration")

// Config holds the settings shared by all sessions of a server.
type Config struct {
	// Width and Height give the framebuffer size in pixels.
	Width, Height int

	// Viewport is the clip rectangle in pixel coordinates.  It must lie
	// inside the framebuffer so that its outline is visible.
	Viewport rect.Rect

	// Algorithm names the clipping algorithm, see [clip.ByName].
	Algorithm string

	// Alpha is the opacity used for drawing segments, in [0, 1].
	Alpha float32

	// Palette gives the colours for the background, the viewport outline
	// and the three clipping outcomes.
	Palette pixel.Palette
}

// DefaultConfig returns a 400x400 framebuffer with the viewport
// (100, 100)-(300, 300), Liang-Barsky clipping and opaque lines.
func DefaultConfig() Config {
	return Config{
		Width:     400,
		Height:    400,
		Viewport:  rect.Rect{LLx: 100, LLy: 100, URx: 300, URy: 300},
		Algorithm: "liang-barsky",
		Alpha:     1,
		Palette:   pixel.DefaultPalette(),
	}
}

// check validates the configuration and resolves the clipping algorithm.
func (c *Config) check() (clip.Clipper, error) {
	if c.Width <= 0 || c.Height <= 0 {
		return nil, fmt.Errorf("%w: framebuffer size %dx%d", ErrConfig, c.Width, c.Height)
	}
	vp := c.Viewport
	if !(vp.LLx <= vp.URx && vp.LLy <= vp.URy) {
		return nil, fmt.Errorf("%w: viewport %v is inverted", ErrConfig, vp)
	}
	if vp.LLx < 0 || vp.LLy < 0 || vp.URx >= float64(c.Width) || vp.URy >= float64(c.Height) {
		return nil, fmt.Errorf("%w: viewport %v outside %dx%d framebuffer",
			ErrConfig, vp, c.Width, c.Height)
	}
	if !(c.Alpha >= 0 && c.Alpha <= 1) {
		return nil, fmt.Errorf("%w: alpha %g not in [0, 1]", ErrConfig, c.Alpha)
	}
	clipper, err := clip.ByName(c.Algorithm)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfig, err)
	}
	return clipper, nil
}

// colorFor returns the palette colour used to draw a segment with the
// given clipping outcome.
func colorFor(p pixel.Palette, a clip.Acceptance) pixel.RGB {
	switch a {
	case clip.Accept:
		return p.Accept
	case clip.Clip:
		return p.Clip
	default:
		return p.Reject
	}
}
