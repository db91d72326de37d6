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

// Command genpdf writes every line test case twice, as a vector PDF and as
// the PNG produced by the rasteriser, so that the two can be compared by
// eye.  Run it from the module root directory.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/linedraw"
	"seehuhn.de/go/linedraw/internal/pdfexport"
	"seehuhn.de/go/linedraw/pixel"
	"seehuhn.de/go/linedraw/testcases"
)

func main() {
	outDir := flag.String("o", "testdata/lines", "output directory")
	scale := flag.Int("scale", 16, "pixel magnification for the PNG output")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.Lines)) {
		for _, tc := range testcases.Lines[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(*outDir, name+".pdf")
			pngPath := filepath.Join(*outDir, name+".png")

			if err := generatePDF(tc, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := renderPNG(tc, pngPath, *scale); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generatePDF(tc testcases.LineCase, pdfPath string) error {
	pg := pdfexport.Page{
		Width:      tc.Width,
		Height:     tc.Height,
		Background: tc.Background,
		LineWidth:  0.25,
	}
	strokes := []pdfexport.Stroke{
		{Segment: tc.Segment, Color: pixel.Merge(tc.Background, tc.Color)},
	}
	return pdfexport.WriteFile(pdfPath, pg, strokes)
}

// renderPNG draws the test case and writes it enlarged by the given factor.
func renderPNG(tc testcases.LineCase, pngPath string, scale int) error {
	fb := linedraw.NewFramebuffer(tc.Width, tc.Height)
	fb.Fill(tc.Background)
	fb.DrawLine(tc.Segment, tc.Color)

	big := linedraw.NewFramebuffer(tc.Width*scale, tc.Height*scale)
	for y := range big.Height {
		for x := range big.Width {
			big.SetRGB(x, y, fb.RGBAt(x/scale, y/scale))
		}
	}

	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	if err := png.Encode(f, big.Image()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
