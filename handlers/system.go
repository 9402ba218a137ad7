// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-ask/middleware"
	"github.com/danielhkuo/quickly-ask/models"
	"github.com/danielhkuo/quickly-ask/realtime"
)

const (
	ServiceName    = "quickly-ask"
	ServiceVersion = "1.0.0"
)

// Pinger reports whether the database is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

type SystemHandler struct {
	db       Pinger
	registry *realtime.Registry
}

func NewSystemHandler(db Pinger, registry *realtime.Registry) *SystemHandler {
	return &SystemHandler{db: db, registry: registry}
}

// Health handles GET /health
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := models.HealthResponse{
		Status:      "healthy",
		Service:     ServiceName,
		Connections: h.registry.Len(),
	}

	if err := h.db.Ping(r.Context()); err != nil {
		slog.Error("health check failed", "error", err)
		resp.Status = "unhealthy"
		middleware.JSONResponse(w, http.StatusServiceUnavailable, resp)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// Info handles GET /
func (h *SystemHandler) Info(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.InfoResponse{
		Name:    ServiceName,
		Version: ServiceVersion,
		Endpoints: map[string][]string{
			"auth":      {"POST /register", "POST /login"},
			"questions": {"POST /questions", "GET /questions", "GET /questions/{id}", "POST /questions/{id}/answer", "POST /questions/{id}/escalate"},
			"realtime":  {"GET /ws"},
			"system":    {"GET /health", "POST /suggest", "GET /"},
		},
	})
}
