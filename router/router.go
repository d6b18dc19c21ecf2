// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/satisfaction-polygon/cliparse"
	"github.com/danielhkuo/satisfaction-polygon/handlers"
	"github.com/danielhkuo/satisfaction-polygon/middleware"
	"github.com/danielhkuo/satisfaction-polygon/store"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()
	sqlStore := store.NewSQLStore(db)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(sqlStore, cfg)
	elementHandler := handlers.NewElementHandler(sqlStore, cfg)
	polygonHandler := handlers.NewPolygonHandler(sqlStore, cfg)

	requireUser := middleware.RequireUser(sqlStore, cfg.TokenSecret)

	public := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.WithTimeout(cfg.RequestTimeout, h))
	}
	protected := func(h http.HandlerFunc) http.HandlerFunc {
		return public(requireUser(h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Registration (public)
	mux.HandleFunc("POST /users", public(userHandler.Register))

	// Element selection
	mux.HandleFunc("GET /elements", protected(elementHandler.ListElements))
	mux.HandleFunc("POST /set-element", protected(elementHandler.SetElements))
	mux.HandleFunc("PUT /update-element", protected(elementHandler.UpdateElements))
	mux.HandleFunc("GET /questions", protected(elementHandler.Questions))

	// Polygons
	mux.HandleFunc("POST /create", protected(polygonHandler.Create))
	mux.HandleFunc("GET /read-all", protected(polygonHandler.ReadAll))
	mux.HandleFunc("GET /read/{id}", protected(polygonHandler.Read))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("satisfaction-polygon API v1"))
	})

	return mux
}
