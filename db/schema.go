// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/quickly-ask/cliparse"
)

// Open connects to the database selected by cfg.DatabaseType and verifies
// the connection with a ping.
func Open(ctx context.Context, cfg cliparse.Config) (*sql.DB, error) {
	driver, dsn := driverFor(cfg.DatabaseType, cfg.DatabaseURL)

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", cfg.DatabaseType, err)
	}

	if cfg.DatabaseType == cliparse.DatabaseSQLite {
		// SQLite allows a single writer
		conn.SetMaxOpenConns(1)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", cfg.DatabaseType, err)
	}

	return conn, nil
}

func driverFor(dbType, url string) (driver, dsn string) {
	switch dbType {
	case cliparse.DatabasePostgres:
		return "postgres", url
	case cliparse.DatabasePGX:
		return "pgx", url
	default:
		return "sqlite", url + sqlitePragmas(url)
	}
}

func sqlitePragmas(url string) string {
	sep := "?"
	if strings.Contains(url, "?") {
		sep = "&"
	}
	return sep + "_pragma=foreign_keys(on)&_pragma=busy_timeout(5000)"
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dbType string) error {
	stmts := postgresSchema
	if dbType == cliparse.DatabaseSQLite {
		stmts = sqliteSchema
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id BIGSERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		is_admin BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS questions (
		question_id BIGSERIAL PRIMARY KEY,
		user_id BIGINT REFERENCES users(user_id),
		message TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		status TEXT NOT NULL DEFAULT 'Pending' CHECK (status IN ('Pending', 'Escalated', 'Answered')),
		escalated BOOLEAN NOT NULL DEFAULT FALSE,
		answered_by BIGINT REFERENCES users(user_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_questions_order ON questions(escalated DESC, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_questions_status ON questions(status)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		is_admin BOOLEAN NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS questions (
		question_id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER REFERENCES users(user_id),
		message TEXT NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		status TEXT NOT NULL DEFAULT 'Pending' CHECK (status IN ('Pending', 'Escalated', 'Answered')),
		escalated BOOLEAN NOT NULL DEFAULT 0,
		answered_by INTEGER REFERENCES users(user_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_questions_order ON questions(escalated DESC, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_questions_status ON questions(status)`,
}
