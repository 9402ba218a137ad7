// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/danielhkuo/quickly-ask/auth"
	"github.com/danielhkuo/quickly-ask/cliparse"
	"github.com/danielhkuo/quickly-ask/handlers"
	"github.com/danielhkuo/quickly-ask/middleware"
	"github.com/danielhkuo/quickly-ask/realtime"
	"github.com/danielhkuo/quickly-ask/service"
	"github.com/danielhkuo/quickly-ask/store"
	"github.com/danielhkuo/quickly-ask/webhook"
)

const webhookTimeout = 5 * time.Second

func NewRouter(db *sql.DB, registry *realtime.Registry, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Wire the dashboard
	questionStore := store.New(db)
	var notifier service.Notifier
	if n := webhook.New(cfg.WebhookURL, webhookTimeout); n != nil {
		notifier = n
	}
	svc := service.New(questionStore, registry, auth.NewSigner(cfg.SigningSecret), notifier, service.Options{
		TokenTTL:           cfg.TokenTTL,
		AdminBootstrapCode: cfg.AdminBootstrapCode,
	})

	// Initialize handlers
	questionHandler := handlers.NewQuestionHandler(svc)
	accountHandler := handlers.NewAccountHandler(svc)
	realtimeHandler := handlers.NewRealtimeHandler(registry)
	suggestHandler := handlers.NewSuggestHandler()
	systemHandler := handlers.NewSystemHandler(questionStore, registry)

	// Brute-force guard for credential endpoints
	authLimiter := middleware.NewRateLimiter(cfg.AuthRateLimit, int(cfg.AuthRateLimit*2))

	// Health check
	mux.HandleFunc("GET /health", systemHandler.Health)

	// Accounts
	mux.HandleFunc("POST /register", middleware.WithLogging(authLimiter.Limit(accountHandler.Register)))
	mux.HandleFunc("POST /login", middleware.WithLogging(authLimiter.Limit(accountHandler.Login)))

	// Questions
	mux.HandleFunc("POST /questions", middleware.WithLogging(questionHandler.Submit))
	mux.HandleFunc("GET /questions", middleware.WithLogging(questionHandler.List))
	mux.HandleFunc("GET /questions/{id}", middleware.WithLogging(questionHandler.Get))
	mux.HandleFunc("POST /questions/{id}/answer", middleware.WithLogging(questionHandler.Answer))
	mux.HandleFunc("POST /questions/{id}/escalate", middleware.WithLogging(questionHandler.Escalate))

	// Live updates
	mux.HandleFunc("GET /ws", middleware.WithLogging(realtimeHandler.Connect))

	// Suggestions (mocked)
	mux.HandleFunc("POST /suggest", middleware.WithLogging(suggestHandler.Suggest))

	// Root endpoint
	mux.HandleFunc("GET /{$}", systemHandler.Info)

	return mux
}
