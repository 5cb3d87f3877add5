// Copyright (c) 2026 Bentofolio.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Bentofolio showcase API server.

The Weekly Builder Showcase is the recurring cycle where profile owners
nominate each other's bento pages: nominations accumulate during a week,
the tally ranks finalists, and exactly one winner set per week is resolved -
automatically from the tally or by an administrator's pick.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... ADMIN_KEY_SALT=... go run main.go

Or with flags:

	go run main.go -p 3324 -d showcase.db -t sqlite -admin-salt dev

A .env file in the working directory is loaded first when present.

# Configuration

Required settings:

  - DATABASE_URL (-d): connection string (Postgres URL or SQLite path)
  - ADMIN_KEY_SALT (-admin-salt): secret for admin key HMAC

Optional settings:

  - PORT (-p): server port (default: 3324)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - FINALIST_LIMIT (-finalists): public finalist list size (default: 5)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - weekclock: canonical ISO week identifiers and boundaries
  - showcase: nomination store, tally, winner resolver, query service
  - handlers: HTTP request handlers (nominations, admin, showcase)
  - router: route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: request/response and domain types
  - auth: admin key derivation and validation
  - metrics: Prometheus collectors
  - db: schema creation and driver selection
  - cliparse: configuration parsing

The scheduled resolution job is external to this process: a cron hits
POST /admin/resolve once the week closes. See package documentation for
each component.
*/
package main
