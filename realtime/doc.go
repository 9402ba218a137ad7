// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package realtime owns the set of live viewer connections and fans events
out to them.

# Lifecycle

Each viewer moves through connecting → live → closed. The HTTP handler
performs the WebSocket upgrade, then hands the socket to the registry:

	c := registry.Register(ws)
	registry.Listen(c, ws) // blocks until the socket fails

Listen answers "ping" with "pong" and deregisters the connection once the
socket fails. A reconnecting client always gets a new Connection.

# Broadcast

	registry.Broadcast(models.NewQuestionEvent{Question: q})

Broadcast snapshots the live set, writes the encoded event to every member
concurrently (each write bounded by the registry's write timeout), then
removes exactly the members whose write failed. It never returns an error
and never waits for acknowledgement. Viewers that connect mid-broadcast may
miss that event but are not affected by its pruning.

Writes to one socket are serialised, so broadcasts and pong replies may be
issued from any goroutine.
*/
package realtime
