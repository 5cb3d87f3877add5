// Copyright (c) 2026 Bentofolio.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package showcase

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/bentofolio/showcase-api/models"
	"github.com/bentofolio/showcase-api/weekclock"
)

// NominationStore owns the nomination rows and enforces "one active
// nomination per voter per week" through the UNIQUE (voter_id, week)
// constraint rather than in-process locking.
type NominationStore struct {
	db *sql.DB
}

func NewNominationStore(db *sql.DB) *NominationStore {
	return &NominationStore{db: db}
}

// Nominate records that voterID picks candidateID for the week of now.
//
// Outcomes:
//   - fresh week for the voter: row inserted
//   - same candidate already active: idempotent, existing row returned
//     with its original created_at (keeps the earliest-first tie-break stable)
//   - different candidate active, override false: *AlreadyNominatedError
//     carrying the current choice
//   - different candidate active, override true: atomic delete-and-insert,
//     never observable half-applied
//
// The insert is attempted blind first; a unique violation means another row
// holds the (voter, week) slot and is re-read to decide between the
// idempotent, conflict, and override outcomes. Two racing calls therefore
// serialize on the constraint and exactly one row survives.
func (s *NominationStore) Nominate(ctx context.Context, voterID, candidateID string, now time.Time, override bool) (models.Nomination, error) {
	if voterID == "" || candidateID == "" {
		return models.Nomination{}, errMissingID
	}
	if voterID == candidateID {
		return models.Nomination{}, ErrSelfNomination
	}

	nom := models.Nomination{
		ID:          uuid.NewString(),
		VoterID:     voterID,
		CandidateID: candidateID,
		Week:        weekclock.WeekOf(now),
		CreatedAt:   now.UTC(),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO nomination (id, voter_id, candidate_id, week, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, nom.ID, nom.VoterID, nom.CandidateID, nom.Week, nom.CreatedAt)
	if err == nil {
		return nom, nil
	}
	if !isUniqueViolation(err) {
		return models.Nomination{}, storageErr("insert nomination", err)
	}

	existing, err := s.ActiveNomination(ctx, voterID, nom.Week)
	if err != nil {
		return models.Nomination{}, err
	}
	if existing != nil && existing.CandidateID == candidateID {
		return *existing, nil
	}
	if existing != nil && !override {
		return models.Nomination{}, &AlreadyNominatedError{ExistingCandidateID: existing.CandidateID}
	}
	// existing == nil only if the row was withdrawn between insert and
	// read; the replace below then degenerates to a plain insert.
	return s.replace(ctx, nom)
}

// replace swaps the voter's active nomination for the week in one
// transaction. Partial application (delete without insert) is never
// observable.
func (s *NominationStore) replace(ctx context.Context, nom models.Nomination) (models.Nomination, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Nomination{}, storageErr("begin nomination override", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM nomination WHERE voter_id = $1 AND week = $2
	`, nom.VoterID, nom.Week); err != nil {
		return models.Nomination{}, storageErr("delete prior nomination", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO nomination (id, voter_id, candidate_id, week, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, nom.ID, nom.VoterID, nom.CandidateID, nom.Week, nom.CreatedAt); err != nil {
		return models.Nomination{}, storageErr("insert override nomination", err)
	}

	if err := tx.Commit(); err != nil {
		return models.Nomination{}, storageErr("commit nomination override", err)
	}
	return nom, nil
}

// Withdraw deletes the voter's active nomination for the week of now if it
// matches candidateID. Absent or mismatched rows are a no-op, not an error.
func (s *NominationStore) Withdraw(ctx context.Context, voterID, candidateID string, now time.Time) error {
	week := weekclock.WeekOf(now)
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM nomination WHERE voter_id = $1 AND week = $2 AND candidate_id = $3
	`, voterID, week, candidateID)
	if err != nil {
		return storageErr("withdraw nomination", err)
	}
	return nil
}

// ActiveNomination returns the voter's nomination for the week, or nil when
// none exists.
func (s *NominationStore) ActiveNomination(ctx context.Context, voterID, week string) (*models.Nomination, error) {
	var nom models.Nomination
	err := s.db.QueryRowContext(ctx, `
		SELECT id, voter_id, candidate_id, week, created_at
		FROM nomination
		WHERE voter_id = $1 AND week = $2
	`, voterID, week).Scan(&nom.ID, &nom.VoterID, &nom.CandidateID, &nom.Week, &nom.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr("lookup active nomination", err)
	}
	return &nom, nil
}

// ListForWeek returns every nomination for the week, created_at ascending.
func (s *NominationStore) ListForWeek(ctx context.Context, week string) ([]models.Nomination, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, voter_id, candidate_id, week, created_at
		FROM nomination
		WHERE week = $1
		ORDER BY created_at, id
	`, week)
	if err != nil {
		return nil, storageErr("list nominations", err)
	}
	defer rows.Close()

	noms := []models.Nomination{}
	for rows.Next() {
		var nom models.Nomination
		if err := rows.Scan(&nom.ID, &nom.VoterID, &nom.CandidateID, &nom.Week, &nom.CreatedAt); err != nil {
			return nil, storageErr("scan nomination", err)
		}
		noms = append(noms, nom)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list nominations", err)
	}
	return noms, nil
}
