// Copyright (c) 2026 Bentofolio.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package showcase

import (
	"context"
	"database/sql"

	"github.com/bentofolio/showcase-api/models"
)

// WinnerStore persists winner records. Writes go through the resolver; the
// query service only reads.
type WinnerStore struct {
	db *sql.DB
}

func NewWinnerStore(db *sql.DB) *WinnerStore {
	return &WinnerStore{db: db}
}

// WinnersForWeek returns the decided winners for a week, candidate id
// ascending. Empty slice (not nil) when the week is still open.
func (s *WinnerStore) WinnersForWeek(ctx context.Context, week string) ([]models.WinnerRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, candidate_id, week, decided_at, decided_by
		FROM winner
		WHERE week = $1
		ORDER BY candidate_id
	`, week)
	if err != nil {
		return nil, storageErr("list winners", err)
	}
	defer rows.Close()

	winners := []models.WinnerRecord{}
	for rows.Next() {
		var rec models.WinnerRecord
		if err := rows.Scan(&rec.ID, &rec.CandidateID, &rec.Week, &rec.DecidedAt, &rec.DecidedBy); err != nil {
			return nil, storageErr("scan winner", err)
		}
		winners = append(winners, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list winners", err)
	}
	return winners, nil
}

// LatestDecidedWeek returns the most recent week holding a winner record,
// or "" when no week has ever been decided. Week identifiers sort lexically
// in chronological order, so MAX(week) is the latest.
func (s *WinnerStore) LatestDecidedWeek(ctx context.Context) (string, error) {
	var week string
	err := s.db.QueryRowContext(ctx, `
		SELECT week FROM winner ORDER BY week DESC LIMIT 1
	`).Scan(&week)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", storageErr("latest decided week", err)
	}
	return week, nil
}

// RecordAll inserts a winner set in one transaction. A unique violation
// means another caller decided the week between the resolver's check and
// this insert; that race loss surfaces as ErrAlreadyDecided, never as a
// silent overwrite.
func (s *WinnerStore) RecordAll(ctx context.Context, records []models.WinnerRecord) error {
	if len(records) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("begin winner insert", err)
	}
	defer tx.Rollback()

	for _, rec := range records {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO winner (id, candidate_id, week, decided_at, decided_by)
			VALUES ($1, $2, $3, $4, $5)
		`, rec.ID, rec.CandidateID, rec.Week, rec.DecidedAt, rec.DecidedBy); err != nil {
			if isUniqueViolation(err) {
				return ErrAlreadyDecided
			}
			return storageErr("insert winner", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return storageErr("commit winner insert", err)
	}
	return nil
}

// ReplaceForWeek atomically swaps the week's winner set for a single
// record. The delete and insert share a transaction so there is no window
// where the week appears undecided.
func (s *WinnerStore) ReplaceForWeek(ctx context.Context, week string, rec models.WinnerRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("begin winner replace", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM winner WHERE week = $1`, week); err != nil {
		return storageErr("clear winners", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO winner (id, candidate_id, week, decided_at, decided_by)
		VALUES ($1, $2, $3, $4, $5)
	`, rec.ID, rec.CandidateID, rec.Week, rec.DecidedAt, rec.DecidedBy); err != nil {
		return storageErr("insert winner", err)
	}

	if err := tx.Commit(); err != nil {
		return storageErr("commit winner replace", err)
	}
	return nil
}

// ClearWeek deletes the week's winner set and reports how many records
// were removed. Clearing an open week is a no-op.
func (s *WinnerStore) ClearWeek(ctx context.Context, week string) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM winner WHERE week = $1`, week)
	if err != nil {
		return 0, storageErr("clear winners", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, storageErr("clear winners", err)
	}
	return n, nil
}
