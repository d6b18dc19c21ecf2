// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Satisfaction Polygon API.

# Handler Types

Each handler is a struct with a store dependency and the config:

  - UserHandler: registration and token issue
  - ElementHandler: element catalog, element selection and questions
  - PolygonHandler: polygon creation, listing and navigation

Handlers accept the store interfaces they need:

	polygonHandler := handlers.NewPolygonHandler(sqlStore, cfg)

# Identity

Every route except POST /users runs behind middleware.RequireUser, which
stores an auth.Identity on the request context. Handlers read it once and
pass the user id to the store explicitly.

# Survey Flow

	POST /users           → Register (returns bearer token)
	POST /set-element     → SetElements (adds to the user's set)
	PUT  /update-element  → UpdateElements (replaces the set)
	GET  /questions       → Questions (5 random questions per element)
	POST /create          → Create (grades and stores a polygon)
	GET  /read-all        → ReadAll
	GET  /read/{id}       → Read (with start/end navigation flags)

# Errors

Request validation failures return 400 before storage is touched.
store.ErrNotFound maps to 404, an expired request deadline to 504, and
any other storage error to 500 with the error message echoed.
*/
package handlers
