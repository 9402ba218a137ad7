// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, domain, and event types for the API.

# Request Types

  - CreateQuestionRequest: message
  - RegisterRequest: username, email, password, admin_code
  - LoginRequest: username (or email), password
  - SuggestRequest: question

# Response Types

  - TokenResponse: access_token, token_type
  - DetailResponse: detail
  - SuggestResponse: question, suggestions
  - HealthResponse, InfoResponse
  - ErrorResponse: error, message

# Domain Types

  - User: account with admin flag (password hash never serialized)
  - Question: a submitted question and its lifecycle fields
  - QuestionUpdate: the subset of fields changed by answer/escalate

# Events

Events pushed to realtime viewers are a closed set of variants:

	models.NewQuestionEvent{Question: q}
	models.QuestionUpdatedEvent{Update: u}

EncodeEvent renders either one as

	{"type": "new_question" | "question_updated", "question": {...}}

# Status Values

	StatusPending   = "Pending"
	StatusEscalated = "Escalated"
	StatusAnswered  = "Answered"
*/
package models
