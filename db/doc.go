// Copyright (c) 2026 Bentofolio.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation and driver selection.

# Schema

CreateSchema creates the two showcase tables:

	if err := db.CreateSchema(dbConn); err != nil {
		// handle error
	}

Tables:

  - nomination: active picks, UNIQUE (voter_id, week)
  - winner: decided winners, UNIQUE (candidate_id, week)

Both uniqueness invariants live in the database on purpose: the stores rely
on constraint-checked writes instead of in-process locking for the
per-voter-per-week rule, and the winner constraint is the backstop for
concurrent resolution.

The DDL is portable across PostgreSQL and SQLite. Rows never use server-side
time defaults; every timestamp is written explicitly by the caller, which
keeps the stores deterministic under an injected clock.

# Drivers

DriverFor maps the configured DATABASE_TYPE to a database/sql driver name
("postgres" via lib/pq, "sqlite" via modernc.org/sqlite). Both drivers are
blank-imported by main.
*/
package db
