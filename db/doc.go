// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the configured database and creates the schema.

# Drivers

Open picks the database/sql driver from cfg.DatabaseType:

  - sqlite:   modernc.org/sqlite (pure Go; foreign keys enabled, one open connection)
  - postgres: github.com/lib/pq
  - pgx:      github.com/jackc/pgx/v5/stdlib

All queries in the store use $N placeholders, which every driver accepts.

# Schema Creation

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - users: accounts (username and email unique)
  - questions: submitted questions and their lifecycle state

# Relationships

	users 1──* questions (user_id, nullable)
	users 1──* questions (answered_by, nullable)
*/
package db
