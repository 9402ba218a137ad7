package models

import "time"

// Question status constants
const (
	StatusPending   = "Pending"
	StatusEscalated = "Escalated"
	StatusAnswered  = "Answered"
)

// ValidStatus reports whether s is one of the known question statuses
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusEscalated, StatusAnswered:
		return true
	}
	return false
}

// Request types

type CreateQuestionRequest struct {
	Message string `json:"message"`
}

type RegisterRequest struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	AdminCode string `json:"admin_code,omitempty"`
}

// Username may also hold the account email
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SuggestRequest struct {
	Question string `json:"question"`
}

// Response types

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type DetailResponse struct {
	Detail string `json:"detail"`
}

type Suggestion struct {
	ID         string  `json:"id"`
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source"`
}

type SuggestResponse struct {
	Question    string       `json:"question"`
	Suggestions []Suggestion `json:"suggestions"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	Service     string `json:"service"`
	Connections int    `json:"connections"`
}

type InfoResponse struct {
	Name      string              `json:"name"`
	Version   string              `json:"version"`
	Endpoints map[string][]string `json:"endpoints"`
}

// Domain types

type User struct {
	ID           int64  `json:"user_id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // Never expose in JSON
	IsAdmin      bool   `json:"is_admin"`
}

type Question struct {
	ID         int64     `json:"question_id"`
	UserID     *int64    `json:"user_id"`
	Message    string    `json:"message"`
	Timestamp  time.Time `json:"timestamp"`
	Status     string    `json:"status"`
	Escalated  bool      `json:"escalated"`
	AnsweredBy *int64    `json:"answered_by"`
}

// QuestionUpdate carries only the fields a state transition changed
type QuestionUpdate struct {
	QuestionID int64  `json:"question_id"`
	Status     string `json:"status"`
	Escalated  *bool  `json:"escalated,omitempty"`
	AnsweredBy *int64 `json:"answered_by,omitempty"`
}

// Webhook payload sent when a question is answered
type AnsweredNotification struct {
	QuestionID int64  `json:"question_id"`
	Event      string `json:"event"`
	AnsweredBy string `json:"answered_by"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
