// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Drivers

Two database types are supported:

  - postgres: github.com/lib/pq
  - sqlite: modernc.org/sqlite (pure Go, used by the tests)

Open picks the driver and pings the database:

	conn, err := db.Open(ctx, db.DialectSQLite, "polygon.db")

# Schema Creation

	if err := db.CreateSchema(conn, db.DialectSQLite); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - app_user: registered users
  - element: catalog elements (unique name)
  - element_question: question pool per element
  - user_element: elements a user selected
  - polygon: graded survey submissions
  - polygon_element: per-element scores of a polygon
  - user_polygon: links users to their polygons

# Relationships

	element 1──* element_question
	app_user *──* element (via user_element)
	polygon 1──* polygon_element
	app_user *──* polygon (via user_polygon)

All foreign keys use ON DELETE CASCADE.
*/
package db
