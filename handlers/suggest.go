// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strings"

	"github.com/danielhkuo/quickly-ask/middleware"
	"github.com/danielhkuo/quickly-ask/models"
)

const suggestPreviewLen = 80

type SuggestHandler struct{}

func NewSuggestHandler() *SuggestHandler {
	return &SuggestHandler{}
}

// Suggest handles POST /suggest
// Returns canned answers until a retrieval backend is connected.
func (h *SuggestHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	var req models.SuggestRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if strings.TrimSpace(req.Question) == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question is required")
		return
	}

	// The question is echoed as sent, whitespace included
	preview := req.Question
	if runes := []rune(preview); len(runes) > suggestPreviewLen {
		preview = string(runes[:suggestPreviewLen])
	}

	shortAnswer := "Short answer: You can reset your password by visiting Settings > Password and following the prompts. " +
		"If you use OAuth, follow provider-specific steps. (Context-aware suggestion for: " + preview + ")"
	stepByStep := "Step-by-step: 1) Go to your profile. 2) Click 'Change password'. 3) Enter current and new password. " +
		"4) Confirm via email if required. (Suggested for: " + preview + ")"

	middleware.JSONResponse(w, http.StatusOK, models.SuggestResponse{
		Question: req.Question,
		Suggestions: []models.Suggestion{
			{ID: "s1", Text: shortAnswer, Confidence: 0.86, Source: "mock_kb:reset_password"},
			{ID: "s2", Text: stepByStep, Confidence: 0.78, Source: "mock_kb:howto_reset"},
		},
	})
}
