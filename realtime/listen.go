// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package realtime

import (
	"log/slog"

	"github.com/gorilla/websocket"
)

// MessageReader is the read side of a viewer socket
type MessageReader interface {
	ReadMessage() (messageType int, p []byte, err error)
}

var (
	pingPayload = []byte("ping")
	pongPayload = []byte("pong")
)

// Listen runs the receive loop for c until the socket reports an error,
// then deregisters it. A text "ping" is answered with "pong"; anything
// else is ignored.
func (r *Registry) Listen(c *Connection, src MessageReader) {
	defer r.Deregister(c)

	for {
		messageType, data, err := src.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Info("viewer read failed", "conn_id", c.ID, "error", err)
			}
			return
		}

		if messageType != websocket.TextMessage || string(data) != string(pingPayload) {
			continue
		}
		if err := c.SendText(pongPayload); err != nil {
			slog.Debug("pong failed", "conn_id", c.ID, "error", err)
			return
		}
	}
}
