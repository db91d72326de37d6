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

// Package linedraw scan-converts line segments into a framebuffer of packed
// RGB pixels.
//
// Segments are normally clipped to a viewport first, using package
// [seehuhn.de/go/linedraw/clip]; the rasteriser itself silently skips any
// pixel outside the framebuffer, so unclipped segments are safe to draw but
// may cost time proportional to their full length.
//
// Translucent lines are composited over the existing pixels with
// [seehuhn.de/go/linedraw/pixel.Merge].  There is no anti-aliasing.
package linedraw

import (
	"log/slog"

	"seehuhn.de/go/linedraw/internal/logging"
)

// SetLogger configures the logger for linedraw and all its sub-packages.
// By default nothing is logged.  Pass nil to restore the silent default.
//
// Only [slog.LevelDebug] messages are produced by the library code, for
// example when a segment with non-finite coordinates is skipped.
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the logger used by linedraw.
func Logger() *slog.Logger {
	return logging.Logger()
}
