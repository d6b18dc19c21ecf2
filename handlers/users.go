// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/danielhkuo/satisfaction-polygon/auth"
	"github.com/danielhkuo/satisfaction-polygon/cliparse"
	"github.com/danielhkuo/satisfaction-polygon/middleware"
	"github.com/danielhkuo/satisfaction-polygon/models"
	"github.com/danielhkuo/satisfaction-polygon/store"
)

const maxNicknameLength = 50

type UserHandler struct {
	users store.UserRepository
	cfg   cliparse.Config
}

func NewUserHandler(users store.UserRepository, cfg cliparse.Config) *UserHandler {
	return &UserHandler{users: users, cfg: cfg}
}

// Register handles POST /users
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterUserRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	nickname := strings.TrimSpace(req.Nickname)
	if nickname == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "nickname is required")
		return
	}
	if utf8.RuneCountInString(nickname) > maxNicknameLength {
		middleware.ErrorResponse(w, http.StatusBadRequest, "nickname must be at most 50 characters")
		return
	}

	user, err := h.users.CreateUser(r.Context(), nickname)
	if err != nil {
		storageError(w, r, err, "create user")
		return
	}

	token, err := auth.IssueToken(user.ID, h.cfg.TokenSecret, h.cfg.TokenTTL)
	if err != nil {
		slog.Error("failed to issue token", "error", err, "user_id", user.ID)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	slog.Info("user registered", "user_id", user.ID)

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterUserResponse{
		Success: true,
		Message: user.Nickname + " registered",
		UserID:  user.ID,
		Token:   token,
	})
}
