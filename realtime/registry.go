// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package realtime

import (
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/danielhkuo/quickly-ask/models"
)

var ErrConnectionClosed = errors.New("connection closed")

// Transport is the write side of one viewer socket.
// *websocket.Conn satisfies it.
type Transport interface {
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

type State int

const (
	StateConnecting State = iota
	StateLive
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateLive:
		return "live"
	default:
		return "closed"
	}
}

// Connection is a registry-owned handle to one live viewer.
// Closed connections are never reused.
type Connection struct {
	ID uuid.UUID

	writeMu      sync.Mutex // one writer at a time per socket
	transport    Transport
	state        atomic.Int32
	closeOnce    sync.Once
	writeTimeout time.Duration
}

func (c *Connection) State() State {
	return State(c.state.Load())
}

// SendText writes a text frame. Safe for concurrent use with broadcasts.
func (c *Connection) SendText(data []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if c.State() != StateLive {
		return ErrConnectionClosed
	}
	if c.writeTimeout > 0 {
		if err := c.transport.SetWriteDeadline(time.Now().Add(c.writeTimeout)); err != nil {
			return err
		}
	}
	return c.transport.WriteMessage(websocket.TextMessage, data)
}

// close does not wait for an in-flight write; closing the transport
// makes that write fail.
func (c *Connection) close() {
	c.closeOnce.Do(func() {
		c.state.Store(int32(StateClosed))
		if err := c.transport.Close(); err != nil {
			slog.Debug("closing viewer transport", "conn_id", c.ID, "error", err)
		}
	})
}

// Registry tracks live viewer connections and fans events out to them
type Registry struct {
	mu           sync.Mutex
	conns        map[*Connection]struct{}
	writeTimeout time.Duration
}

// NewRegistry returns an empty registry. Each send to a viewer is bounded
// by writeTimeout; zero means no deadline.
func NewRegistry(writeTimeout time.Duration) *Registry {
	return &Registry{
		conns:        make(map[*Connection]struct{}),
		writeTimeout: writeTimeout,
	}
}

// Register adds an already-handshaken transport to the live set
func (r *Registry) Register(t Transport) *Connection {
	c := &Connection{
		ID:           uuid.New(),
		transport:    t,
		writeTimeout: r.writeTimeout,
	}
	c.state.Store(int32(StateLive))

	r.mu.Lock()
	r.conns[c] = struct{}{}
	n := len(r.conns)
	r.mu.Unlock()

	slog.Info("viewer connected", "conn_id", c.ID, "viewers", n)
	return c
}

// Deregister removes c from the live set and closes its transport.
// Calling it for an already-removed connection is a no-op.
func (r *Registry) Deregister(c *Connection) {
	if c == nil {
		return
	}

	r.mu.Lock()
	_, ok := r.conns[c]
	delete(r.conns, c)
	n := len(r.conns)
	r.mu.Unlock()

	c.close()
	if ok {
		slog.Info("viewer disconnected", "conn_id", c.ID, "viewers", n)
	}
}

// Len returns the number of live connections
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.conns)
}

// Broadcast sends e to every connection live at call time. Sends run
// independently; any connection whose send fails is removed. Connections
// registered while the broadcast is in flight are never removed by it.
func (r *Registry) Broadcast(e models.Event) {
	data, err := models.EncodeEvent(e)
	if err != nil {
		slog.Error("failed to encode event", "type", e.Type(), "error", err)
		return
	}

	r.mu.Lock()
	snapshot := make([]*Connection, 0, len(r.conns))
	for c := range r.conns {
		snapshot = append(snapshot, c)
	}
	r.mu.Unlock()

	var (
		wg       sync.WaitGroup
		failedMu sync.Mutex
		failed   []*Connection
	)
	for _, c := range snapshot {
		wg.Add(1)
		go func(c *Connection) {
			defer wg.Done()
			if err := c.SendText(data); err != nil {
				slog.Debug("viewer send failed", "conn_id", c.ID, "error", err)
				failedMu.Lock()
				failed = append(failed, c)
				failedMu.Unlock()
			}
		}(c)
	}
	wg.Wait()

	if len(failed) > 0 {
		r.mu.Lock()
		for _, c := range failed {
			delete(r.conns, c)
		}
		r.mu.Unlock()

		for _, c := range failed {
			c.close()
		}
	}

	slog.Debug("event broadcast",
		"type", e.Type(),
		"recipients", len(snapshot),
		"dropped", len(failed),
	)
}

// Close disconnects every viewer. Used on shutdown.
func (r *Registry) Close() {
	r.mu.Lock()
	conns := r.conns
	r.conns = make(map[*Connection]struct{})
	r.mu.Unlock()

	for c := range conns {
		c.close()
	}
}
