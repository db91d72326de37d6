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


// Command drawer renders a scene file.
//
// Usage:
//
//	drawer [flags] scene.txt
//
// The figure is centred in the output without scaling, with the y axis
// pointing up.  The output format is chosen by the file name extension of
// the -o flag: .png, .bmp or .pdf.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/linedraw"
	"seehuhn.de/go/linedraw/clip"
	"seehuhn.de/go/linedraw/geometry"
	"seehuhn.de/go/linedraw/internal/pdfexport"
	"seehuhn.de/go/linedraw/pixel"
	"seehuhn.de/go/linedraw/scene"
)

type options struct {
	output    string
	width     int
	height    int
	color     pixel.RGB
	alpha     float64
	algorithm string
}

func main() {
	opt := options{color: pixel.White}
	flag.StringVar(&opt.output, "o", "out.png", "output file (.png, .bmp or .pdf)")
	flag.IntVar(&opt.width, "width", 500, "output width in pixels")
	flag.IntVar(&opt.height, "height", 500, "output height in pixels")
	flag.Var(&opt.color, "color", "line colour as rrggbb")
	flag.Float64Var(&opt.alpha, "alpha", 1, "line opacity in [0, 1]")
	flag.StringVar(&opt.algorithm, "clip", "", "clip segments to the output first (cohen-sutherland or liang-barsky)")
	verbose := flag.Bool("v", false, "log debug messages")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] scene.txt\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	linedraw.SetLogger(logger)

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), opt); err != nil {
		logger.Error("drawing failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(sceneFile string, opt options) error {
	if opt.width <= 0 || opt.height <= 0 {
		return fmt.Errorf("invalid output size %dx%d", opt.width, opt.height)
	}
	if !(opt.alpha >= 0 && opt.alpha <= 1) {
		return fmt.Errorf("alpha %g not in [0, 1]", opt.alpha)
	}
	var clipper clip.Clipper
	if opt.algorithm != "" {
		var err error
		clipper, err = clip.ByName(opt.algorithm)
		if err != nil {
			return err
		}
	}

	sc, err := scene.Load(sceneFile)
	if err != nil {
		return err
	}
	segs := layout(sc, opt.width, opt.height, clipper)
	figW, figH := sc.Size()
	linedraw.Logger().Debug("scene loaded",
		slog.String("file", sceneFile),
		slog.Int("points", len(sc.Points)),
		slog.Int("segments", len(segs)),
		slog.Float64("width", figW),
		slog.Float64("height", figH))
	if figW >= float64(opt.width) || figH >= float64(opt.height) {
		linedraw.Logger().Debug("figure larger than output, edges are cut off",
			slog.Float64("width", figW), slog.Float64("height", figH))
	}

	col := opt.color.WithAlpha(float32(opt.alpha))

	switch ext := strings.ToLower(filepath.Ext(opt.output)); ext {
	case ".pdf":
		strokes := make([]pdfexport.Stroke, len(segs))
		for i, s := range segs {
			strokes[i] = pdfexport.Stroke{Segment: s, Color: pixel.Merge(pixel.Black, col)}
		}
		pg := pdfexport.Page{Width: opt.width, Height: opt.height, Background: pixel.Black}
		return pdfexport.WriteFile(opt.output, pg, strokes)
	case ".png", ".bmp":
		fb := linedraw.NewFramebuffer(opt.width, opt.height)
		for _, s := range segs {
			fb.DrawLine(s, col)
		}
		return writeImage(opt.output, ext, fb)
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}
}

// layout maps the scene to screen coordinates.  If clipper is not nil,
// segments are clipped to the screen and rejected segments are dropped.
func layout(sc *scene.Scene, width, height int, clipper clip.Clipper) []geometry.Segment {
	segs := sc.Segments()
	bounds, ok := sc.Bounds()
	if !ok {
		return nil
	}
	m := scene.ScreenMatrix(bounds, width, height)
	screen := rect.Rect{URx: float64(width - 1), URy: float64(height - 1)}

	res := segs[:0]
	for _, s := range segs {
		s = s.Transform(m)
		if clipper != nil && clipper.Clip(&s, screen) == clip.Reject {
			continue
		}
		res = append(res, s)
	}
	return res
}

func writeImage(fname, ext string, fb *linedraw.Framebuffer) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}

	img := fb.Image()
	if ext == ".bmp" {
		err = bmp.Encode(f, img)
	} else {
		err = png.Encode(f, img)
	}
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
