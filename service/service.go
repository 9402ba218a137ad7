// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/danielhkuo/quickly-ask/auth"
	"github.com/danielhkuo/quickly-ask/errorz"
	"github.com/danielhkuo/quickly-ask/models"
	"github.com/danielhkuo/quickly-ask/webhook"
)

// QuestionStore is the persistence the dashboard needs
type QuestionStore interface {
	CreateUser(ctx context.Context, u models.User) (models.User, error)
	UserExists(ctx context.Context, username, email string) (bool, error)
	GetUserByID(ctx context.Context, id int64) (models.User, error)
	GetUserByLogin(ctx context.Context, login string) (models.User, error)
	CreateQuestion(ctx context.Context, q models.Question) (models.Question, error)
	GetQuestion(ctx context.Context, id int64) (models.Question, error)
	ListQuestions(ctx context.Context, status string) ([]models.Question, error)
	UpdateQuestion(ctx context.Context, q models.Question) error
	MarkAnswered(ctx context.Context, id, answeredBy int64) error
}

// Broadcaster delivers events to live viewers
type Broadcaster interface {
	Broadcast(e models.Event)
}

// Notifier is told about answered questions, in the background
type Notifier interface {
	Notify(payload models.AnsweredNotification, done func(error))
}

type Options struct {
	TokenTTL           time.Duration
	AdminBootstrapCode string
}

// Dashboard applies question state changes and announces them.
// Every mutation is committed to the store before its event is broadcast.
type Dashboard struct {
	store    QuestionStore
	events   Broadcaster
	signer   *auth.Signer
	notifier Notifier
	opts     Options
}

func New(store QuestionStore, events Broadcaster, signer *auth.Signer, notifier Notifier, opts Options) *Dashboard {
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = 24 * time.Hour
	}
	return &Dashboard{
		store:    store,
		events:   events,
		signer:   signer,
		notifier: notifier,
		opts:     opts,
	}
}

// SubmitQuestion stores a new Pending question and announces it.
// author may be nil for anonymous submissions.
func (d *Dashboard) SubmitQuestion(ctx context.Context, message string, author *models.User) (models.Question, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return models.Question{}, fmt.Errorf("%w: question cannot be empty", errorz.ErrValidation)
	}

	q := models.Question{
		Message: message,
		Status:  models.StatusPending,
	}
	if author != nil {
		q.UserID = &author.ID
	}

	q, err := d.store.CreateQuestion(ctx, q)
	if err != nil {
		return models.Question{}, internal("submit question", err)
	}

	d.events.Broadcast(models.NewQuestionEvent{Question: q})

	slog.Info("question submitted", "question_id", q.ID)
	return q, nil
}

// ListQuestions returns questions escalated first, newest first.
// An empty statusFilter matches every question.
func (d *Dashboard) ListQuestions(ctx context.Context, statusFilter string) ([]models.Question, error) {
	if statusFilter != "" && !models.ValidStatus(statusFilter) {
		return nil, fmt.Errorf("%w: status_filter must be Pending, Escalated or Answered", errorz.ErrValidation)
	}

	questions, err := d.store.ListQuestions(ctx, statusFilter)
	if err != nil {
		return nil, internal("list questions", err)
	}
	return questions, nil
}

func (d *Dashboard) GetQuestion(ctx context.Context, id int64) (models.Question, error) {
	q, err := d.store.GetQuestion(ctx, id)
	if err != nil {
		return models.Question{}, internal("get question", err)
	}
	return q, nil
}

// AnswerQuestion marks a question answered. Only admins may do this.
func (d *Dashboard) AnswerQuestion(ctx context.Context, id int64, user *models.User) (models.Question, error) {
	q, err := d.store.GetQuestion(ctx, id)
	if err != nil {
		return models.Question{}, internal("answer question", err)
	}

	if user == nil || !user.IsAdmin {
		return models.Question{}, fmt.Errorf("%w: only admins can mark questions as answered", errorz.ErrForbidden)
	}

	if err := d.store.MarkAnswered(ctx, q.ID, user.ID); err != nil {
		return models.Question{}, internal("answer question", err)
	}
	if q, err = d.store.GetQuestion(ctx, id); err != nil {
		return models.Question{}, internal("answer question", err)
	}

	d.events.Broadcast(models.QuestionUpdatedEvent{Update: models.QuestionUpdate{
		QuestionID: q.ID,
		Status:     q.Status,
		AnsweredBy: q.AnsweredBy,
	}})

	if d.notifier != nil {
		d.notifier.Notify(models.AnsweredNotification{
			QuestionID: q.ID,
			Event:      webhook.EventAnswered,
			AnsweredBy: user.Username,
		}, nil)
	}

	slog.Info("question answered", "question_id", q.ID, "answered_by", user.Username)
	return q, nil
}

// EscalateQuestion moves a question to the top of the queue.
// Anyone may escalate, including anonymous callers.
func (d *Dashboard) EscalateQuestion(ctx context.Context, id int64) (models.Question, error) {
	q, err := d.store.GetQuestion(ctx, id)
	if err != nil {
		return models.Question{}, internal("escalate question", err)
	}

	if q.Escalated {
		return models.Question{}, fmt.Errorf("%w: question is already escalated", errorz.ErrConflict)
	}

	q.Escalated = true
	q.Status = models.StatusEscalated
	if err := d.store.UpdateQuestion(ctx, q); err != nil {
		return models.Question{}, internal("escalate question", err)
	}

	escalated := true
	d.events.Broadcast(models.QuestionUpdatedEvent{Update: models.QuestionUpdate{
		QuestionID: q.ID,
		Status:     q.Status,
		Escalated:  &escalated,
	}})

	slog.Info("question escalated", "question_id", q.ID)
	return q, nil
}

// ResolveUser maps a bearer token to its user. Invalid or expired tokens
// and unknown users all resolve to nil (anonymous).
func (d *Dashboard) ResolveUser(ctx context.Context, token string) *models.User {
	if token == "" {
		return nil
	}

	claims, err := d.signer.VerifyToken(token)
	if err != nil {
		slog.Debug("rejected access token", "error", err)
		return nil
	}

	user, err := d.store.GetUserByID(ctx, claims.UserID)
	if err != nil {
		if !errors.Is(err, errorz.ErrNotFound) {
			slog.Error("failed to resolve token user", "user_id", claims.UserID, "error", err)
		}
		return nil
	}
	return &user
}

// Register creates an account and returns an access token for it.
// The admin flag is granted only when AdminCode matches the configured
// bootstrap code.
func (d *Dashboard) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)

	switch {
	case username == "":
		return "", fmt.Errorf("%w: username is required", errorz.ErrValidation)
	case email == "":
		return "", fmt.Errorf("%w: email is required", errorz.ErrValidation)
	case !strings.Contains(email, "@"):
		return "", fmt.Errorf("%w: email is invalid", errorz.ErrValidation)
	case req.Password == "":
		return "", fmt.Errorf("%w: password is required", errorz.ErrValidation)
	}

	exists, err := d.store.UserExists(ctx, username, email)
	if err != nil {
		return "", internal("register", err)
	}
	if exists {
		return "", fmt.Errorf("%w: username or email already registered", errorz.ErrConflict)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return "", internal("register", err)
	}

	user, err := d.store.CreateUser(ctx, models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      d.isAdminCode(req.AdminCode),
	})
	if err != nil {
		return "", internal("register", err)
	}

	token, err := d.issue(user)
	if err != nil {
		return "", internal("register", err)
	}

	slog.Info("user registered", "user_id", user.ID, "username", user.Username, "is_admin", user.IsAdmin)
	return token, nil
}

// Login accepts either the username or the email as login
func (d *Dashboard) Login(ctx context.Context, login, password string) (string, error) {
	invalid := fmt.Errorf("%w: invalid username/email or password", errorz.ErrUnauthorized)

	user, err := d.store.GetUserByLogin(ctx, strings.TrimSpace(login))
	if errors.Is(err, errorz.ErrNotFound) {
		return "", invalid
	}
	if err != nil {
		return "", internal("login", err)
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return "", invalid
	}

	token, err := d.issue(user)
	if err != nil {
		return "", internal("login", err)
	}

	slog.Info("user logged in", "user_id", user.ID, "username", user.Username)
	return token, nil
}

func (d *Dashboard) issue(u models.User) (string, error) {
	return d.signer.IssueToken(auth.Claims{
		UserID:   u.ID,
		Username: u.Username,
		IsAdmin:  u.IsAdmin,
	}, d.opts.TokenTTL)
}

func (d *Dashboard) isAdminCode(code string) bool {
	if d.opts.AdminBootstrapCode == "" || code == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(code), []byte(d.opts.AdminBootstrapCode)) == 1
}

// internal passes expected outcomes through and tags everything else as
// an internal failure.
func internal(op string, err error) error {
	for _, expected := range []error{
		errorz.ErrValidation,
		errorz.ErrNotFound,
		errorz.ErrForbidden,
		errorz.ErrUnauthorized,
		errorz.ErrConflict,
	} {
		if errors.Is(err, expected) {
			return err
		}
	}
	return fmt.Errorf("%s: %w: %w", op, errorz.ErrInternal, err)
}
