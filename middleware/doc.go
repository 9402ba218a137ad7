// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).
The ResponseWriter is passed through untouched so websocket upgrades can
still hijack the connection.

# CORS Middleware

Enable cross-origin requests for the dashboard frontend:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, PUT, DELETE, OPTIONS with headers
Content-Type and Authorization.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Map service errors to a status with WriteError:

	q, err := h.svc.GetQuestion(r.Context(), id)
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}

Validation, not found, forbidden, unauthorized and conflict errors keep
their message. Anything else is logged and reported as a generic 500.

# Credentials

BearerToken reads the access token from the token query parameter or an
Authorization: Bearer header.

# Rate Limiting

RateLimiter keeps a token bucket per client IP:

	limiter := middleware.NewRateLimiter(5, 10)
	mux.HandleFunc("POST /login", limiter.Limit(handler))

Rejected requests get 429.

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
