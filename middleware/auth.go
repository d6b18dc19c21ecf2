// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/satisfaction-polygon/auth"
	"github.com/danielhkuo/satisfaction-polygon/models"
	"github.com/danielhkuo/satisfaction-polygon/store"
)

// UserLookup resolves a token subject to a stored user
type UserLookup interface {
	GetUser(ctx context.Context, userID int64) (models.User, error)
}

// RequireUser rejects requests without a valid bearer token for an existing
// user and stores the caller's auth.Identity on the request context
func RequireUser(users UserLookup, secret string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token, err := auth.BearerToken(r)
			if errors.Is(err, auth.ErrMissingToken) {
				ErrorResponse(w, http.StatusUnauthorized, "Authorization token required")
				return
			}
			if err != nil {
				ErrorResponse(w, http.StatusUnauthorized, "Invalid Authorization header")
				return
			}

			userID, err := auth.ParseToken(token, secret)
			if err != nil {
				ErrorResponse(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			user, err := users.GetUser(r.Context(), userID)
			if errors.Is(err, store.ErrUserNotFound) {
				ErrorResponse(w, http.StatusUnauthorized, "Unknown user")
				return
			}
			if err != nil {
				slog.Error("failed to load user", "error", err, "user_id", userID)
				ErrorResponse(w, http.StatusInternalServerError, "Server error: "+err.Error())
				return
			}

			ctx := auth.WithIdentity(r.Context(), auth.Identity{
				UserID:   user.ID,
				Nickname: user.Nickname,
			})
			next(w, r.WithContext(ctx))
		}
	}
}
