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


package testcases

import "seehuhn.de/go/linedraw/pixel"

var opaqueWhite = pixel.White.WithAlpha(1)

var axisLines = []LineCase{
	{
		Name:       "horizontal",
		Segment:    seg(0, 0, 4, 0),
		Width:      5,
		Height:     1,
		Background: pixel.Black,
		Color:      opaqueWhite,
		Pixels:     pts(0, 0, 1, 0, 2, 0, 3, 0, 4, 0),
	},
	{
		Name:       "vertical",
		Segment:    seg(1, 0, 1, 3),
		Width:      3,
		Height:     4,
		Background: pixel.Black,
		Color:      opaqueWhite,
		Pixels:     pts(1, 0, 1, 1, 1, 2, 1, 3),
	},
	{
		Name:       "horizontal_reverse",
		Segment:    seg(4, 2, 1, 2),
		Width:      6,
		Height:     4,
		Background: pixel.Black,
		Color:      pixel.Green.WithAlpha(1),
		Pixels:     pts(1, 2, 2, 2, 3, 2, 4, 2),
	},
	{
		Name:       "point",
		Segment:    seg(2, 2, 2, 2),
		Width:      5,
		Height:     5,
		Background: pixel.Black,
		Color:      opaqueWhite,
		Pixels:     pts(2, 2),
	},
}

var slopeLines = []LineCase{
	{
		Name:       "diagonal",
		Segment:    seg(0, 0, 3, 3),
		Width:      4,
		Height:     4,
		Background: pixel.Black,
		Color:      opaqueWhite,
		Pixels:     pts(0, 0, 1, 1, 2, 2, 3, 3),
	},
	{
		Name:       "anti_diagonal",
		Segment:    seg(0, 3, 3, 0),
		Width:      4,
		Height:     4,
		Background: pixel.Black,
		Color:      opaqueWhite,
		Pixels:     pts(0, 3, 1, 2, 2, 1, 3, 0),
	},
	{
		Name:       "shallow",
		Segment:    seg(0, 0, 4, 2),
		Width:      5,
		Height:     3,
		Background: pixel.Black,
		Color:      opaqueWhite,
		Pixels:     pts(0, 0, 1, 0, 2, 1, 3, 1, 4, 2),
	},
	{
		Name:       "steep_reverse",
		Segment:    seg(2, 4, 0, 0),
		Width:      3,
		Height:     5,
		Background: pixel.Black,
		Color:      opaqueWhite,
		Pixels:     pts(2, 4, 2, 3, 1, 2, 1, 1, 0, 0),
	},
	{
		Name:       "fractional",
		Segment:    seg(0.7, 0.2, 3.9, 0.9),
		Width:      5,
		Height:     2,
		Background: pixel.Black,
		Color:      opaqueWhite,
		Pixels:     pts(0, 0, 1, 0, 2, 0, 3, 0),
	},
}

var offscreenLines = []LineCase{
	{
		Name:       "partial",
		Segment:    seg(-2, 1, 6, 1),
		Width:      4,
		Height:     3,
		Background: pixel.Black,
		Color:      opaqueWhite,
		Pixels:     pts(0, 1, 1, 1, 2, 1, 3, 1),
	},
	{
		Name:       "diagonal",
		Segment:    seg(-2, -2, 5, 5),
		Width:      4,
		Height:     4,
		Background: pixel.Black,
		Color:      opaqueWhite,
		Pixels:     pts(0, 0, 1, 1, 2, 2, 3, 3),
	},
	{
		Name:       "entirely_outside",
		Segment:    seg(10, 10, 20, 12),
		Width:      4,
		Height:     4,
		Background: pixel.Black,
		Color:      opaqueWhite,
		Pixels:     nil,
	},
	{
		Name:       "negative_fraction",
		Segment:    seg(-0.5, 1, 2, 1),
		Width:      3,
		Height:     2,
		Background: pixel.Black,
		Color:      opaqueWhite,
		Pixels:     pts(0, 1, 1, 1, 2, 1),
	},
}

var blendLines = []LineCase{
	{
		Name:       "half_red_on_blue",
		Segment:    seg(0, 1, 3, 1),
		Width:      4,
		Height:     3,
		Background: pixel.Blue,
		Color:      pixel.NewRGBA(0xFF, 0, 0, 128),
		Pixels:     pts(0, 1, 1, 1, 2, 1, 3, 1),
	},
	{
		Name:       "faint_white_on_black",
		Segment:    seg(0, 0, 4, 2),
		Width:      5,
		Height:     3,
		Background: pixel.Black,
		Color:      pixel.White.WithAlpha(0.25),
		Pixels:     pts(0, 0, 1, 0, 2, 1, 3, 1, 4, 2),
	},
	{
		Name:       "transparent",
		Segment:    seg(0, 0, 3, 0),
		Width:      4,
		Height:     1,
		Background: pixel.Yellow,
		Color:      pixel.Red.WithAlpha(0),
		Pixels:     pts(0, 0, 1, 0, 2, 0, 3, 0),
	},
}
