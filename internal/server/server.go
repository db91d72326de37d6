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


// Package server implements the interactive clipping demo.
//
// The browser page served at "/" opens a WebSocket connection to "/ws".
// Every connection owns a private framebuffer showing the viewport
// outline.  The client reports mouse presses and releases as JSON
// messages; each completed segment is clipped, drawn in the colour for its
// outcome and the new framebuffer is sent back as a binary PNG frame.
package server

import (
	_ "embed"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"seehuhn.de/go/linedraw/clip"
	"seehuhn.de/go/linedraw/internal/logging"
)

//go:embed web/index.html
var htmlIndex []byte

// Server serves the demo page and the WebSocket endpoint.
type Server struct {
	cfg      Config
	clipper  clip.Clipper
	upgrader websocket.Upgrader
}

// New validates cfg and returns a server using it.
func New(cfg Config) (*Server, error) {
	clipper, err := cfg.check()
	if err != nil {
		return nil, err
	}
	s := &Server{
		cfg:     cfg,
		clipper: clipper,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	return s, nil
}

// Handler returns the HTTP handler for the demo.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(htmlIndex)
	})
	mux.HandleFunc("/ws", s.serveWS)
	return mux
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	log := logging.Logger().With(slog.String("remote", r.RemoteAddr))

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("upgrade failed", slog.Any("error", err))
		return
	}
	defer conn.Close()
	log.Info("session started")
	defer log.Info("session ended")

	sess := newSession(s.cfg, s.clipper)
	if err := sendFrame(conn, sess); err != nil {
		log.Debug("write failed", slog.Any("error", err))
		return
	}

	for {
		msgType, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		var msg inboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Debug("bad message", slog.Any("error", err))
			err = conn.WriteJSON(errorMsg{Type: "error", Message: "malformed JSON"})
			if err != nil {
				return
			}
			continue
		}

		res, redraw, err := sess.handle(msg)
		if err != nil {
			log.Debug("message rejected", slog.String("type", msg.Type), slog.Any("error", err))
			err = conn.WriteJSON(errorMsg{Type: "error", Message: err.Error()})
			if err != nil {
				return
			}
			continue
		}
		if res != nil {
			log.Debug("segment",
				slog.String("acceptance", res.Acceptance),
				slog.Float64("x0", res.P0.X), slog.Float64("y0", res.P0.Y),
				slog.Float64("x1", res.P1.X), slog.Float64("y1", res.P1.Y))
			if err := conn.WriteJSON(res); err != nil {
				return
			}
		}
		if redraw {
			if err := sendFrame(conn, sess); err != nil {
				log.Debug("write failed", slog.Any("error", err))
				return
			}
		}
	}
}

// sendFrame sends the session framebuffer as a binary PNG frame.
func sendFrame(conn *websocket.Conn, sess *session) error {
	data, err := sess.frame()
	if err != nil {
		return err
	}
	return conn.WriteMessage(websocket.BinaryMessage, data)
}
