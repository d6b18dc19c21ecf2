// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags and Environment Variables

	-p             PORT              Server port (default: 3318)
	-d             DATABASE_URL      Database URL or SQLite file (required)
	-t             DATABASE_TYPE     sqlite or postgres (default: sqlite)
	-token-secret  TOKEN_SECRET      Bearer token signing secret (required)
	-token-ttl     TOKEN_TTL         Token lifetime (default: 720h)
	-catalog       CATALOG_PATH      Element catalog YAML (default: built-in)
	-timeout       REQUEST_TIMEOUT   Per-request storage deadline (default: 5s)
	-nav-scope     NAVIGATION_SCOPE  global or user (default: global)

CLI flags take precedence over environment variables. main loads a .env
file before parsing, so its values behave like environment variables.

# Validation

ParseFlags returns an error if:

  - DATABASE_URL or TOKEN_SECRET is missing
  - the database type or navigation scope is unknown
  - a duration does not parse or is not positive
*/
package cliparse
