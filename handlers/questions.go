// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strconv"

	"github.com/danielhkuo/quickly-ask/middleware"
	"github.com/danielhkuo/quickly-ask/models"
	"github.com/danielhkuo/quickly-ask/service"
)

type QuestionHandler struct {
	svc *service.Dashboard
}

func NewQuestionHandler(svc *service.Dashboard) *QuestionHandler {
	return &QuestionHandler{svc: svc}
}

// Submit handles POST /questions
// A valid token attributes the question to its user; otherwise it is anonymous.
func (h *QuestionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	author := h.svc.ResolveUser(r.Context(), middleware.BearerToken(r))

	q, err := h.svc.SubmitQuestion(r.Context(), req.Message, author)
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, q)
}

// List handles GET /questions?status_filter=
func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	questions, err := h.svc.ListQuestions(r.Context(), r.URL.Query().Get("status_filter"))
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, questions)
}

// Get handles GET /questions/{id}
func (h *QuestionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := questionID(w, r)
	if !ok {
		return
	}

	q, err := h.svc.GetQuestion(r.Context(), id)
	if err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, q)
}

// Answer handles POST /questions/{id}/answer
// The caller must present an admin token, as ?token= or a Bearer header.
func (h *QuestionHandler) Answer(w http.ResponseWriter, r *http.Request) {
	id, ok := questionID(w, r)
	if !ok {
		return
	}

	user := h.svc.ResolveUser(r.Context(), middleware.BearerToken(r))

	if _, err := h.svc.AnswerQuestion(r.Context(), id, user); err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.DetailResponse{Detail: "Question marked as answered"})
}

// Escalate handles POST /questions/{id}/escalate
func (h *QuestionHandler) Escalate(w http.ResponseWriter, r *http.Request) {
	id, ok := questionID(w, r)
	if !ok {
		return
	}

	if _, err := h.svc.EscalateQuestion(r.Context(), id); err != nil {
		middleware.WriteError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.DetailResponse{Detail: "Question escalated"})
}

// questionID parses the {id} path value, writing a 400 when it is not a
// positive integer.
func questionID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "question id must be a positive integer")
		return 0, false
	}
	return id, true
}
