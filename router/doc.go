// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quickly Ask API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	registry := realtime.NewRegistry(10 * time.Second)
	mux := router.NewRouter(db, registry, cfg)

The registry is owned by the caller so it can be closed on shutdown.

# Endpoints

Health and discovery:

	GET /health - Liveness, with the number of connected viewers
	GET /       - Service name, version and endpoint listing

Accounts (rate limited per client IP):

	POST /register - Create account, returns access token
	POST /login    - Username or email plus password

Questions:

	POST /questions                - Submit (token optional)
	GET  /questions                - List, optional ?status_filter=
	GET  /questions/{id}           - Fetch one
	POST /questions/{id}/answer    - Mark answered (admin token)
	POST /questions/{id}/escalate  - Move to top of queue

Live updates:

	GET /ws - Websocket stream of question events

Suggestions:

	POST /suggest - Canned answer suggestions

# Handler Initialization

The router builds the store, token signer, webhook notifier and service,
then hands the service to each handler:

	svc := service.New(store.New(db), registry, auth.NewSigner(cfg.SigningSecret), notifier, opts)
	questionHandler := handlers.NewQuestionHandler(svc)
*/
package router
