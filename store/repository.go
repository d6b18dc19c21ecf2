// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"

	"github.com/danielhkuo/satisfaction-polygon/models"
)

var (
	ErrNotFound       = errors.New("polygon not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrUnknownElement = errors.New("unknown element")
)

type UserRepository interface {
	CreateUser(ctx context.Context, nickname string) (models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
}

type ElementRepository interface {
	ListElements(ctx context.Context) ([]models.Element, error)
	// LinkToUser adds elements to the user's set, ignoring ones already linked
	LinkToUser(ctx context.Context, userID int64, elementIDs []int64) error
	// ReplaceForUser swaps the user's whole set in one transaction
	ReplaceForUser(ctx context.Context, userID int64, elementIDs []int64) error
	UserElements(ctx context.Context, userID int64) ([]models.Element, error)
	UserQuestionPools(ctx context.Context, userID int64) ([]models.ElementQuestions, error)
}

type PolygonRepository interface {
	// CreatePolygon grades entries against the user's current elements and
	// persists the polygon, its elements and the user link atomically
	CreatePolygon(ctx context.Context, userID int64, entries []models.ScoreEntry) (models.Polygon, error)
	ListPolygons(ctx context.Context, userID int64) ([]models.Polygon, error)
	GetPolygon(ctx context.Context, userID, polygonID int64) (models.Polygon, error)
	// Neighbors finds adjacent polygon ids. ownerID 0 searches every polygon.
	Neighbors(ctx context.Context, polygonID, ownerID int64) (models.Neighbors, error)
}
