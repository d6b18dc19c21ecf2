// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Satisfaction Polygon API server.

Satisfaction Polygon is a self-assessment service. A user picks life
elements (health, work, family, ...), answers a few randomly sampled
questions for each one, and submits a 0-5 score per element. Every
submission is stored as a polygon with an overall grade.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=polygon.db TOKEN_SECRET=... go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." -token-secret "..."

A .env file in the working directory is loaded first.

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file or PostgreSQL connection string
  - TOKEN_SECRET (-token-secret): Secret for bearer token signatures

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - TOKEN_TTL (-token-ttl): Token lifetime (default: 720h)
  - CATALOG_PATH (-catalog): Element catalog YAML (default: built-in)
  - REQUEST_TIMEOUT (-timeout): Per-request storage deadline (default: 5s)
  - NAVIGATION_SCOPE (-nav-scope): global or user (default: global)

# Architecture

  - handlers: HTTP request handlers (users, elements, polygons)
  - router: Route definitions using Go 1.22+ routing
  - middleware: logging, timeouts, bearer auth, CORS, JSON helpers
  - models: Request/response and domain types
  - auth: Bearer token issue and validation
  - survey: Question sampling and grading
  - catalog: Element catalog loading
  - store: SQL persistence
  - db: Connection setup and schema
  - cliparse: Configuration parsing
*/
package main
