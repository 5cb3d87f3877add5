// Copyright (c) 2026 Bentofolio.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3324)
  - DatabaseURL: Connection string (required)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - AdminKeySalt: Secret for admin key HMAC (required)
  - FinalistLimit: Max finalists in the public showcase (default: 5)

# CLI Flags

	-p           Server port
	-d           Database URL
	-t           Database type
	-finalists   Finalist limit
	-admin-salt  Admin key salt

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	FINALIST_LIMIT → -finalists
	ADMIN_KEY_SALT → -admin-salt

CLI flags take precedence over environment variables. main loads a .env file
(if present) before parsing, so local development can keep secrets there.

# Validation

ParseFlags returns an error if required values are missing or malformed:

  - DATABASE_URL must be provided
  - ADMIN_KEY_SALT must be provided
  - DATABASE_TYPE must be sqlite or postgres
  - FinalistLimit must be positive
*/
package cliparse
