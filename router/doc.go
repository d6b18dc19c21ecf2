// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Satisfaction Polygon API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Health:

	GET /health
	GET /

Registration (public):

	POST /users - Register a nickname, returns a bearer token

Elements (requires Authorization: Bearer):

	GET  /elements       - List the element catalog
	POST /set-element    - Add elements to the caller's set
	PUT  /update-element - Replace the caller's set
	GET  /questions      - Sample questions for the caller's elements

Polygons (requires Authorization: Bearer):

	POST /create    - Grade and store a polygon
	GET  /read-all  - List the caller's polygons
	GET  /read/{id} - Read one polygon with navigation flags

# Middleware

Every API route is wrapped in WithLogging and WithTimeout. Protected
routes additionally run RequireUser before the handler.
*/
package router
