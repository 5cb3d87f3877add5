// Copyright (c) 2026 Bentofolio.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the showcase service.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// DriverFor maps the configured database type to its database/sql driver name.
func DriverFor(databaseType string) (string, error) {
	switch databaseType {
	case "postgres":
		return "postgres", nil
	case "sqlite":
		return "sqlite", nil
	default:
		return "", fmt.Errorf("unsupported database type %q", databaseType)
	}
}

// The DDL is kept portable across PostgreSQL and SQLite: no server-side
// defaults (timestamps always arrive as explicit parameters) and no
// dialect-specific column types.
const schema = `
-- Nominations: one active row per (voter_id, week). The UNIQUE constraint is
-- the arbiter for concurrent nominations by the same voter.
CREATE TABLE IF NOT EXISTS nomination (
    id TEXT PRIMARY KEY,
    voter_id TEXT NOT NULL,
    candidate_id TEXT NOT NULL,
    week TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    UNIQUE (voter_id, week)
);

CREATE INDEX IF NOT EXISTS idx_nomination_week ON nomination(week);
CREATE INDEX IF NOT EXISTS idx_nomination_candidate ON nomination(week, candidate_id);

-- Winners: per-week decision log. UNIQUE (candidate_id, week) allows several
-- tied winners for one week while forbidding duplicates.
CREATE TABLE IF NOT EXISTS winner (
    id TEXT PRIMARY KEY,
    candidate_id TEXT NOT NULL,
    week TEXT NOT NULL,
    decided_at TIMESTAMP NOT NULL,
    decided_by TEXT NOT NULL,
    UNIQUE (candidate_id, week)
);

CREATE INDEX IF NOT EXISTS idx_winner_week ON winner(week);
`
