// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/satisfaction-polygon/auth"
	"github.com/danielhkuo/satisfaction-polygon/middleware"
	"github.com/danielhkuo/satisfaction-polygon/store"
)

// storageError maps a store error to its HTTP status and writes the
// error envelope. Unclassified errors are logged and echoed as 500.
func storageError(w http.ResponseWriter, r *http.Request, err error, action string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Polygon not found")
	case errors.Is(err, store.ErrUnknownElement):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, context.DeadlineExceeded), errors.Is(r.Context().Err(), context.DeadlineExceeded):
		slog.Warn(action+" timed out", "error", err, "request_id", w.Header().Get(middleware.RequestIDHeader))
		middleware.ErrorResponse(w, http.StatusGatewayTimeout, "Request timed out")
	default:
		slog.Error(action+" failed", "error", err, "request_id", w.Header().Get(middleware.RequestIDHeader))
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Server error: "+err.Error())
	}
}

// identity returns the caller attached by middleware.RequireUser
func identity(w http.ResponseWriter, r *http.Request) (auth.Identity, bool) {
	id, ok := auth.FromContext(r.Context())
	if !ok {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Authorization token required")
	}
	return id, ok
}
