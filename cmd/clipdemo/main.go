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


// Command clipdemo serves an interactive line clipping demo.
//
// Open the printed address in a browser, then press and release the mouse
// button to draw segments.  Segments inside the viewport are shown in
// green, segments outside in red and clipped segments in yellow.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/linedraw"
	"seehuhn.de/go/linedraw/internal/server"
)

func main() {
	cfg := server.DefaultConfig()

	addr := flag.String("addr", "localhost:8080", "address to listen on")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "framebuffer width in pixels")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "framebuffer height in pixels")
	flag.Var((*viewportFlag)(&cfg.Viewport), "viewport", "clip rectangle as xmin,ymin,xmax,ymax")
	flag.StringVar(&cfg.Algorithm, "algo", cfg.Algorithm, "clipping algorithm (cohen-sutherland or liang-barsky)")
	alpha := flag.Float64("alpha", float64(cfg.Alpha), "line opacity in [0, 1]")
	verbose := flag.Bool("v", false, "log debug messages")
	flag.Parse()
	cfg.Alpha = float32(*alpha)

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	linedraw.SetLogger(logger)

	srv, err := server.New(cfg)
	if err != nil {
		logger.Error("cannot start", slog.Any("error", err))
		os.Exit(1)
	}

	hs := &http.Server{
		Addr:              *addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	logger.Info("listening", slog.String("url", "http://"+*addr+"/"),
		slog.String("algorithm", cfg.Algorithm))
	if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// viewportFlag parses a rectangle given as "xmin,ymin,xmax,ymax".
type viewportFlag rect.Rect

func (v *viewportFlag) String() string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%g,%g,%g,%g", v.LLx, v.LLy, v.URx, v.URy)
}

func (v *viewportFlag) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return fmt.Errorf("viewport %q: need 4 comma separated numbers", s)
	}
	var x [4]float64
	for i, p := range parts {
		val, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return fmt.Errorf("viewport %q: %w", s, err)
		}
		x[i] = val
	}
	*v = viewportFlag{LLx: x[0], LLy: x[1], URx: x[2], URy: x[3]}
	return nil
}
