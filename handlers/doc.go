// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP and websocket handlers for the Quickly Ask API.

# Handler Types

Each handler is a thin adapter over the service or the live registry:

  - QuestionHandler: submit, list, get, answer and escalate questions
  - AccountHandler: registration and login
  - RealtimeHandler: websocket upgrade for live viewers
  - SuggestHandler: canned answer suggestions
  - SystemHandler: health check and capability listing

Handlers are created via constructor functions:

	questions := handlers.NewQuestionHandler(svc)
	live := handlers.NewRealtimeHandler(registry)

# Question Lifecycle

Questions start Pending. Anyone may escalate a question once, which moves
it to the top of the queue. Only admins may mark a question answered.

	POST /questions                → Submit (201, the stored question)
	GET  /questions?status_filter= → List (escalated first, newest first)
	GET  /questions/{id}           → Get
	POST /questions/{id}/answer    → Answer (admin token required)
	POST /questions/{id}/escalate  → Escalate (409 if already escalated)

Tokens are read from the token query parameter or an Authorization: Bearer
header. An invalid token on submission is treated as anonymous.

# Live Updates

	GET /ws → Connect

Each state change is pushed to every connected viewer as a JSON text frame:

	{"type": "new_question", "question": {...}}
	{"type": "question_updated", "question": {"question_id": 4, "status": "Answered", "answered_by": 1}}

Viewers may send the text "ping" and receive "pong".

# Errors

Service errors are mapped by middleware.WriteError, so every handler
reports validation, not found, forbidden, unauthorized and conflict
outcomes with the same status codes.
*/
package handlers
