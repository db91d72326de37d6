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


package linedraw

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"seehuhn.de/go/linedraw/pixel"
)

// ErrSize is returned when a pixel slice does not match the requested
// framebuffer dimensions.
var ErrSize = errors.New("framebuffer size mismatch")

// Framebuffer is a rectangular grid of opaque pixels.
// Pixels are stored row by row; pixel (x, y) lives at index x + y*Width.
//
// Drawing operations never resize the framebuffer.  Pixels outside
// [0, Width) × [0, Height) are skipped.
type Framebuffer struct {
	Width  int
	Height int
	Pix    []pixel.RGB
}

// NewFramebuffer allocates a black framebuffer of the given size.
// Negative dimensions are treated as zero.
func NewFramebuffer(width, height int) *Framebuffer {
	width = max(width, 0)
	height = max(height, 0)
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pix:    make([]pixel.RGB, width*height),
	}
}

// WrapFramebuffer uses pix as the pixel storage of a new framebuffer.
// The slice stays owned by the caller and is modified in place.
func WrapFramebuffer(pix []pixel.RGB, width, height int) (*Framebuffer, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: negative dimensions %dx%d", ErrSize, width, height)
	}
	if len(pix) != width*height {
		return nil, fmt.Errorf("%w: %d pixels for %dx%d", ErrSize, len(pix), width, height)
	}
	return &Framebuffer{Width: width, Height: height, Pix: pix}, nil
}

// Fill sets every pixel to c.
func (fb *Framebuffer) Fill(c pixel.RGB) {
	for i := range fb.Pix {
		fb.Pix[i] = c
	}
}

// inside reports whether (x, y) is a valid pixel position.
func (fb *Framebuffer) inside(x, y int) bool {
	return x >= 0 && x < fb.Width && y >= 0 && y < fb.Height
}

// RGBAt returns the pixel at (x, y), or black outside the framebuffer.
func (fb *Framebuffer) RGBAt(x, y int) pixel.RGB {
	if !fb.inside(x, y) {
		return pixel.Black
	}
	return fb.Pix[x+y*fb.Width]
}

// SetRGB overwrites the pixel at (x, y).
// Positions outside the framebuffer are ignored.
func (fb *Framebuffer) SetRGB(x, y int, c pixel.RGB) {
	if !fb.inside(x, y) {
		return
	}
	fb.Pix[x+y*fb.Width] = c
}

// BlendRGBA composites c over the pixel at (x, y).
// Positions outside the framebuffer are ignored.
func (fb *Framebuffer) BlendRGBA(x, y int, c pixel.RGBA) {
	if !fb.inside(x, y) {
		return
	}
	i := x + y*fb.Width
	fb.Pix[i] = pixel.Merge(fb.Pix[i], c)
}

// DrawRect draws the outline of the rectangle with corners (x0, y0) and
// (x1, y1).  Both corners are part of the outline.  The corners may be
// given in any order.
func (fb *Framebuffer) DrawRect(x0, y0, x1, y1 int, c pixel.RGB) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	for x := x0; x <= x1; x++ {
		fb.SetRGB(x, y0, c)
		fb.SetRGB(x, y1, c)
	}
	for y := y0 + 1; y < y1; y++ {
		fb.SetRGB(x0, y, c)
		fb.SetRGB(x1, y, c)
	}
}

// ColorModel implements the image.Image interface.
func (fb *Framebuffer) ColorModel() color.Model {
	return pixel.RGBModel
}

// Bounds implements the image.Image interface.
func (fb *Framebuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, fb.Width, fb.Height)
}

// At implements the image.Image interface.
func (fb *Framebuffer) At(x, y int) color.Color {
	return fb.RGBAt(x, y)
}

// Image returns a copy of the framebuffer contents as an *image.RGBA.
// Encoders handle this type faster than the generic image.Image path.
func (fb *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(fb.Bounds())
	for y := range fb.Height {
		row := fb.Pix[y*fb.Width : (y+1)*fb.Width]
		dst := img.Pix[y*img.Stride:]
		for x, c := range row {
			dst[4*x] = c.R()
			dst[4*x+1] = c.G()
			dst[4*x+2] = c.B()
			dst[4*x+3] = 0xFF
		}
	}
	return img
}
