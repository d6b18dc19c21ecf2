// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dialect string) error {
	var statements []string
	switch dialect {
	case DialectPostgres:
		statements = postgresSchema
	case DialectSQLite:
		statements = sqliteSchema
	default:
		return fmt.Errorf("unsupported database type %q", dialect)
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

// "user" is reserved in Postgres, hence app_user
var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS app_user (
		id BIGSERIAL PRIMARY KEY,
		nickname TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS element (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS element_question (
		element_id BIGINT NOT NULL REFERENCES element(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		text TEXT NOT NULL,
		PRIMARY KEY (element_id, position)
	)`,
	`CREATE TABLE IF NOT EXISTS user_element (
		user_id BIGINT NOT NULL REFERENCES app_user(id) ON DELETE CASCADE,
		element_id BIGINT NOT NULL REFERENCES element(id) ON DELETE CASCADE,
		PRIMARY KEY (user_id, element_id)
	)`,
	`CREATE TABLE IF NOT EXISTS polygon (
		id BIGSERIAL PRIMARY KEY,
		date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		grade INTEGER NOT NULL DEFAULT 0 CHECK (grade BETWEEN 0 AND 3)
	)`,
	`CREATE TABLE IF NOT EXISTS polygon_element (
		id BIGSERIAL PRIMARY KEY,
		polygon_id BIGINT NOT NULL REFERENCES polygon(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		score INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_polygon_element_polygon_id ON polygon_element(polygon_id)`,
	`CREATE TABLE IF NOT EXISTS user_polygon (
		user_id BIGINT NOT NULL REFERENCES app_user(id) ON DELETE CASCADE,
		polygon_id BIGINT NOT NULL REFERENCES polygon(id) ON DELETE CASCADE,
		PRIMARY KEY (user_id, polygon_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_user_polygon_polygon_id ON user_polygon(polygon_id)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS app_user (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		nickname TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS element (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS element_question (
		element_id INTEGER NOT NULL REFERENCES element(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		text TEXT NOT NULL,
		PRIMARY KEY (element_id, position)
	)`,
	`CREATE TABLE IF NOT EXISTS user_element (
		user_id INTEGER NOT NULL REFERENCES app_user(id) ON DELETE CASCADE,
		element_id INTEGER NOT NULL REFERENCES element(id) ON DELETE CASCADE,
		PRIMARY KEY (user_id, element_id)
	)`,
	`CREATE TABLE IF NOT EXISTS polygon (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		date TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		grade INTEGER NOT NULL DEFAULT 0 CHECK (grade BETWEEN 0 AND 3)
	)`,
	`CREATE TABLE IF NOT EXISTS polygon_element (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		polygon_id INTEGER NOT NULL REFERENCES polygon(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		score INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS idx_polygon_element_polygon_id ON polygon_element(polygon_id)`,
	`CREATE TABLE IF NOT EXISTS user_polygon (
		user_id INTEGER NOT NULL REFERENCES app_user(id) ON DELETE CASCADE,
		polygon_id INTEGER NOT NULL REFERENCES polygon(id) ON DELETE CASCADE,
		PRIMARY KEY (user_id, polygon_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_user_polygon_polygon_id ON user_polygon(polygon_id)`,
}
