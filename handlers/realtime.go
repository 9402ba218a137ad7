// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/danielhkuo/quickly-ask/realtime"
)

// Viewers only send keep-alive pings
const viewerReadLimit = 4096

type RealtimeHandler struct {
	registry *realtime.Registry
	upgrader websocket.Upgrader
}

func NewRealtimeHandler(registry *realtime.Registry) *RealtimeHandler {
	return &RealtimeHandler{
		registry: registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The dashboard is served from other origins in development
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Connect handles GET /ws
// The socket is registered for broadcasts and served until it closes.
func (h *RealtimeHandler) Connect(w http.ResponseWriter, r *http.Request) {
	// Upgrade writes its own error response on failure
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Info("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	conn.SetReadLimit(viewerReadLimit)

	c := h.registry.Register(conn)
	h.registry.Listen(c, conn)
}
