// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danielhkuo/satisfaction-polygon/models"
)

// SQLStore implements the repositories on Postgres or SQLite. Queries use
// $n placeholders, which both drivers accept.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// withTx runs fn in a transaction and commits only if fn succeeds.
// fn must not touch s.db: SQLite runs with a single connection.
func (s *SQLStore) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *SQLStore) CreateUser(ctx context.Context, nickname string) (models.User, error) {
	user := models.User{
		Nickname:  nickname,
		CreatedAt: time.Now().UTC(),
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO app_user (nickname, created_at)
		VALUES ($1, $2)
		RETURNING id
	`, user.Nickname, user.CreatedAt).Scan(&user.ID)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return user, nil
}

func (s *SQLStore) GetUser(ctx context.Context, userID int64) (models.User, error) {
	var user models.User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, nickname, created_at FROM app_user WHERE id = $1
	`, userID).Scan(&user.ID, &user.Nickname, &user.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to query user: %w", err)
	}

	return user, nil
}
