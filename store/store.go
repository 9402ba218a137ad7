// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/danielhkuo/quickly-ask/errorz"
	"github.com/danielhkuo/quickly-ask/models"
)

// Store persists users and questions
type Store struct {
	db  *sql.DB
	now func() time.Time
}

func New(db *sql.DB) *Store {
	return &Store{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// Ping reports whether the database is reachable
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// CreateUser inserts u and returns it with its assigned ID.
// A duplicate username or email yields errorz.ErrConflict.
func (s *Store) CreateUser(ctx context.Context, u models.User) (models.User, error) {
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (username, email, password_hash, is_admin)
		VALUES ($1, $2, $3, $4)
		RETURNING user_id
	`, u.Username, u.Email, u.PasswordHash, u.IsAdmin).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, fmt.Errorf("%w: username or email already registered", errorz.ErrConflict)
		}
		return models.User{}, fmt.Errorf("failed to insert user: %w", err)
	}
	return u, nil
}

// UserExists reports whether username or email is already taken
func (s *Store) UserExists(ctx context.Context, username, email string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM users WHERE username = $1 OR email = $2
		)
	`, username, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}

func (s *Store) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	return s.getUser(ctx, `
		SELECT user_id, username, email, password_hash, is_admin
		FROM users
		WHERE user_id = $1
	`, id)
}

// GetUserByLogin finds a user whose username or email equals login
func (s *Store) GetUserByLogin(ctx context.Context, login string) (models.User, error) {
	return s.getUser(ctx, `
		SELECT user_id, username, email, password_hash, is_admin
		FROM users
		WHERE username = $1 OR email = $1
		ORDER BY user_id
		LIMIT 1
	`, login)
}

func (s *Store) getUser(ctx context.Context, query string, arg any) (models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsAdmin,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, fmt.Errorf("%w: user not found", errorz.ErrNotFound)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	return u, nil
}

// CreateQuestion inserts q. A zero Timestamp is set to the current time
// and an empty Status to Pending.
func (s *Store) CreateQuestion(ctx context.Context, q models.Question) (models.Question, error) {
	if q.Timestamp.IsZero() {
		q.Timestamp = s.now()
	}
	if q.Status == "" {
		q.Status = models.StatusPending
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO questions (user_id, message, created_at, status, escalated, answered_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING question_id
	`, nullInt(q.UserID), q.Message, q.Timestamp, q.Status, q.Escalated, nullInt(q.AnsweredBy)).Scan(&q.ID)
	if err != nil {
		return models.Question{}, fmt.Errorf("failed to insert question: %w", err)
	}
	return q, nil
}

const questionColumns = `question_id, user_id, message, created_at, status, escalated, answered_by`

func (s *Store) GetQuestion(ctx context.Context, id int64) (models.Question, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+questionColumns+`
		FROM questions
		WHERE question_id = $1
	`, id)

	q, err := scanQuestion(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Question{}, fmt.Errorf("%w: question %d not found", errorz.ErrNotFound, id)
	}
	if err != nil {
		return models.Question{}, fmt.Errorf("failed to query question: %w", err)
	}
	return q, nil
}

// ListQuestions returns escalated questions first, newest first within
// each group. An empty status returns every question.
func (s *Store) ListQuestions(ctx context.Context, status string) ([]models.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions`
	var args []any
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY escalated DESC, created_at DESC, question_id DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read questions: %w", err)
	}
	return questions, nil
}

// UpdateQuestion writes the mutable lifecycle fields of q
func (s *Store) UpdateQuestion(ctx context.Context, q models.Question) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE questions
		SET status = $1, escalated = $2, answered_by = $3
		WHERE question_id = $4
	`, q.Status, q.Escalated, nullInt(q.AnsweredBy), q.ID)
	if err != nil {
		return fmt.Errorf("failed to update question: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update question: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: question %d not found", errorz.ErrNotFound, q.ID)
	}
	return nil
}

// MarkAnswered sets status and answered_by only, leaving escalated untouched
func (s *Store) MarkAnswered(ctx context.Context, id, answeredBy int64) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE questions
		SET status = $1, answered_by = $2
		WHERE question_id = $3
	`, models.StatusAnswered, answeredBy, id)
	if err != nil {
		return fmt.Errorf("failed to mark question answered: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to mark question answered: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: question %d not found", errorz.ErrNotFound, id)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanQuestion(row scanner) (models.Question, error) {
	var q models.Question
	var userID, answeredBy sql.NullInt64
	err := row.Scan(&q.ID, &userID, &q.Message, &q.Timestamp, &q.Status, &q.Escalated, &answeredBy)
	if err != nil {
		return models.Question{}, err
	}
	if userID.Valid {
		q.UserID = &userID.Int64
	}
	if answeredBy.Valid {
		q.AnsweredBy = &answeredBy.Int64
	}
	return q, nil
}

func nullInt(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

// isUniqueViolation recognises unique constraint errors from every
// supported driver.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE ||
			liteErr.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return false
}
