// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and JSON helpers.

# Middleware

	mux.HandleFunc("GET /read-all", middleware.WithLogging(handler))

  - WithLogging: logs start and completion with a request id (X-Request-ID)
  - WithTimeout: puts a deadline on the request context
  - RequireUser: validates the bearer token and attaches auth.Identity
  - CORS: allows cross-origin requests from the frontend

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusNotFound, "Polygon not found")
	err := middleware.ParseJSONBody(r, &req)

Error bodies have the shape:

	{"success": false, "error": "Not Found", "message": "Polygon not found"}

# Client IP

GetClientIP checks X-Forwarded-For, then X-Real-IP, then RemoteAddr.
*/
package middleware
