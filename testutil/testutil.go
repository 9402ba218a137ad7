// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-ask/auth"
	"github.com/danielhkuo/quickly-ask/cliparse"
	"github.com/danielhkuo/quickly-ask/db"
	"github.com/danielhkuo/quickly-ask/models"
	"github.com/danielhkuo/quickly-ask/store"
)

// TestSecret signs every token issued in tests
const TestSecret = "test-signing-secret"

// TestAdminCode is the bootstrap code accepted by GetTestConfig
const TestAdminCode = "test-admin-code"

// SetupTestDB creates a fresh in-memory SQLite database with the full schema.
// Each call gets its own database, so tests may run in parallel.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := cliparse.Config{
		DatabaseType: cliparse.DatabaseSQLite,
		DatabaseURL:  "file:test-" + uuid.NewString() + "?mode=memory&cache=shared",
	}

	conn, err := db.Open(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:               8000,
		DatabaseType:       cliparse.DatabaseSQLite,
		DatabaseURL:        "file::memory:",
		SigningSecret:      TestSecret,
		TokenTTL:           time.Hour,
		AdminBootstrapCode: TestAdminCode,
	}
}

// CreateTestUser inserts a user with password "password" and returns it
// together with a valid access token.
func CreateTestUser(t *testing.T, conn *sql.DB, username string, isAdmin bool) (models.User, string) {
	t.Helper()

	hash, err := auth.HashPassword("password")
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	user, err := store.New(conn).CreateUser(context.Background(), models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		IsAdmin:      isAdmin,
	})
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	token, err := auth.NewSigner(TestSecret).IssueToken(auth.Claims{
		UserID:   user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
	}, time.Hour)
	if err != nil {
		t.Fatalf("Failed to issue test token: %v", err)
	}

	return user, token
}

// CreateTestQuestion inserts a question with an explicit timestamp
func CreateTestQuestion(t *testing.T, conn *sql.DB, message string, ts time.Time, escalated bool) models.Question {
	t.Helper()

	status := models.StatusPending
	if escalated {
		status = models.StatusEscalated
	}

	q, err := store.New(conn).CreateQuestion(context.Background(), models.Question{
		Message:   message,
		Timestamp: ts.UTC(),
		Status:    status,
		Escalated: escalated,
	})
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}

	return q
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
