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

// Package pixel implements the packed 32-bit colour formats stored in a
// framebuffer.
//
// Two formats exist and are kept apart by the type system: [RGB] holds an
// opaque colour in the low 24 bits, [RGBA] holds a colour with a straight
// (non-premultiplied) alpha channel in the low byte.  [Merge] composites an
// RGBA colour over an RGB pixel.
package pixel

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// RGB is an opaque colour packed as 0x00RRGGBB.
type RGB uint32

// RGBA is a colour with straight alpha, packed as 0xRRGGBBAA.
type RGBA uint32

// Commonly used opaque colours.
const (
	Black  RGB = 0x000000
	White  RGB = 0xFFFFFF
	Red    RGB = 0xFF0000
	Green  RGB = 0x00FF00
	Blue   RGB = 0x0000FF
	Yellow RGB = 0xFFFF00
)

// NewRGB packs the given channels into an RGB value.
func NewRGB(r, g, b uint8) RGB {
	return RGB(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// R returns the red channel.
func (c RGB) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c RGB) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c RGB) B() uint8 { return uint8(c) }

// WithAlpha returns c with the given opacity.
// Alpha is clamped to [0, 1] and stored as trunc(alpha*255).
func (c RGB) WithAlpha(alpha float32) RGBA {
	alpha = max(0, min(1, alpha))
	return NewRGBA(c.R(), c.G(), c.B(), uint8(alpha*255))
}

// Luma returns the Rec. 601 luma of c, in the range [0, 1].
func (c RGB) Luma() float64 {
	return (0.299*float64(c.R()) + 0.587*float64(c.G()) + 0.114*float64(c.B())) / 255
}

// RGBA implements the color.Color interface.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R())
	r |= r << 8
	g = uint32(c.G())
	g |= g << 8
	b = uint32(c.B())
	b |= b << 8
	return r, g, b, 0xffff
}

// String returns the colour in #rrggbb notation.
func (c RGB) String() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xFFFFFF)
}

// Set implements flag.Value.
func (c *RGB) Set(s string) error {
	v, err := ParseRGB(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ParseRGB parses a colour given as "rrggbb" or "#rrggbb".
func ParseRGB(s string) (RGB, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return 0, fmt.Errorf("invalid RGB colour %q: need 6 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid RGB colour %q: %w", s, err)
	}
	return RGB(v), nil
}

// NewRGBA packs the given channels into an RGBA value.
func NewRGBA(r, g, b, a uint8) RGBA {
	return RGBA(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// R returns the red channel.
func (c RGBA) R() uint8 { return uint8(c >> 24) }

// G returns the green channel.
func (c RGBA) G() uint8 { return uint8(c >> 16) }

// B returns the blue channel.
func (c RGBA) B() uint8 { return uint8(c >> 8) }

// A returns the alpha channel as a byte.
func (c RGBA) A() uint8 { return uint8(c) }

// Alpha returns the alpha channel as a blend factor in [0, 1].
func (c RGBA) Alpha() float32 {
	return float32(c.A()) / 255
}

// Opaque drops the alpha channel.
func (c RGBA) Opaque() RGB {
	return NewRGB(c.R(), c.G(), c.B())
}

// RGBA implements the color.Color interface.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}.RGBA()
}

// String returns the colour in #rrggbbaa notation.
func (c RGBA) String() string {
	return fmt.Sprintf("#%08x", uint32(c))
}

// Merge composites fg over the opaque background bg.
// Each channel is computed as bg*(1-α) + fg*α and truncated.  The alpha of
// fg is consumed; the result is opaque.
func Merge(bg RGB, fg RGBA) RGB {
	a := fg.Alpha()
	ba := 1 - a
	r := mix(bg.R(), fg.R(), a, ba)
	g := mix(bg.G(), fg.G(), a, ba)
	b := mix(bg.B(), fg.B(), a, ba)
	return NewRGB(r, g, b)
}

func mix(bg, fg uint8, a, ba float32) uint8 {
	v := uint32(float32(bg)*ba + float32(fg)*a)
	return uint8(min(v, 255))
}

// RGBModel converts arbitrary colours to RGB.
// Translucent colours are composited over black.
var RGBModel color.Model = color.ModelFunc(rgbModel)

func rgbModel(c color.Color) color.Color {
	if c, ok := c.(RGB); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return NewRGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// Palette collects the colours used to visualise clipping results.
type Palette struct {
	Background RGB // framebuffer fill
	Outline    RGB // viewport border
	Accept     RGB // segments entirely inside the viewport
	Reject     RGB // segments entirely outside the viewport
	Clip       RGB // segments truncated to the viewport
}

// DefaultPalette returns white on black with green, red and yellow for
// accepted, rejected and clipped segments.
func DefaultPalette() Palette {
	return Palette{
		Background: Black,
		Outline:    White,
		Accept:     Green,
		Reject:     Red,
		Clip:       Yellow,
	}
}
