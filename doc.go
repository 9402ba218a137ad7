// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Ask API server.

Quickly Ask is a real-time question and answer dashboard. Clients submit
questions over HTTP, anyone may escalate a question to the top of the
queue, admins mark questions answered, and every connected viewer sees
each change live over a websocket.

# Starting the Server

The server reads environment variables (and a .env file if present) or CLI flags:

	SECRET_KEY=change-me go run .

Or with flags:

	go run . -p 8000 -d "postgres://..." -secret change-me

# Configuration

Required settings:

  - SECRET_KEY (-secret): Secret for signing access tokens

Optional settings:

  - PORT (-p): Server port (default: 8000)
  - DATABASE_URL (-d): SQLite file or Postgres URL (default: file:qa.db)
  - DATABASE_TYPE (-t): sqlite, postgres or pgx (inferred from the URL)
  - TOKEN_TTL (-token-ttl): Access token lifetime (default: 24h)
  - ADMIN_SECRET (-admin-code): Registration code that grants admin
  - WEBHOOK_URL (-webhook): Notified when a question is answered
  - AUTH_RATE_LIMIT (-auth-rate): Login/register requests per second per IP (default: 5, 0 disables)
  - LOG_LEVEL (-log-level): debug, info, warn or error

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP and websocket handlers
  - service: Question lifecycle and accounts, commits then broadcasts
  - realtime: Registry of live viewer connections and event fan-out
  - store: SQL persistence for users and questions
  - webhook: Fire-and-forget answer notifications
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, rate limiting, JSON and error helpers
  - models: Request/response and event types
  - auth: Password hashing and signed tokens
  - db: Driver selection and schema creation
  - errorz: Error kinds shared across layers
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
