// Copyright (c) 2026 Bentofolio.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package showcase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bentofolio/showcase-api/models"
)

// Resolver owns the Open → Decided transition for a week. A week is Open
// while no winner records exist and Decided once they do; re-deciding
// requires the explicit Clear or ResolveManual paths, never an implicit
// overwrite.
//
// Two layers defend the at-most-one-decision invariant: a per-process mutex
// serializes resolutions between the scheduled job and admin requests, and
// the UNIQUE (candidate_id, week) constraint makes the losing side of any
// remaining race fail cleanly with ErrAlreadyDecided.
type Resolver struct {
	mu          sync.Mutex
	nominations *NominationStore
	winners     *WinnerStore
	notifier    WinnerNotifier
}

func NewResolver(nominations *NominationStore, winners *WinnerStore, notifier WinnerNotifier) *Resolver {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &Resolver{
		nominations: nominations,
		winners:     winners,
		notifier:    notifier,
	}
}

// ResolveAutomatic decides the week from its tally. When several candidates
// tie at the top count, every tied leader is recorded as a winner for the
// week; the multi-winner read model makes the tie visible instead of
// silently crowning one candidate.
//
// Returns ErrAlreadyDecided if the week is already decided (checked first,
// then enforced again by the constraint-checked insert) and ErrNoNominations
// when the tally is empty.
func (r *Resolver) ResolveAutomatic(ctx context.Context, week string, now time.Time) ([]models.WinnerRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, err := r.winners.WinnersForWeek(ctx, week)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, ErrAlreadyDecided
	}

	noms, err := r.nominations.ListForWeek(ctx, week)
	if err != nil {
		return nil, err
	}
	if len(noms) == 0 {
		return nil, ErrNoNominations
	}

	tied := leaders(Tally(noms))
	records := make([]models.WinnerRecord, len(tied))
	for i, f := range tied {
		records[i] = models.WinnerRecord{
			ID:          uuid.NewString(),
			CandidateID: f.CandidateID,
			Week:        week,
			DecidedAt:   now.UTC(),
			DecidedBy:   models.DecidedByAuto,
		}
	}

	if err := r.winners.RecordAll(ctx, records); err != nil {
		return nil, err
	}

	r.notify(ctx, records)
	return records, nil
}

// ResolveManual records an administrator's explicit pick, replacing any
// existing winner set for the week in one atomic swap. This is the only
// sanctioned way to change a decided week.
func (r *Resolver) ResolveManual(ctx context.Context, week, candidateID, adminID string, now time.Time) (models.WinnerRecord, error) {
	if adminID == "" {
		return models.WinnerRecord{}, ErrUnauthorized
	}
	if candidateID == "" {
		return models.WinnerRecord{}, errMissingID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec := models.WinnerRecord{
		ID:          uuid.NewString(),
		CandidateID: candidateID,
		Week:        week,
		DecidedAt:   now.UTC(),
		DecidedBy:   adminID,
	}
	if err := r.winners.ReplaceForWeek(ctx, week, rec); err != nil {
		return models.WinnerRecord{}, err
	}

	r.notify(ctx, []models.WinnerRecord{rec})
	return rec, nil
}

// Clear transitions a Decided week back to Open so it can be re-resolved.
// Admin-only; clearing an open week is a no-op.
func (r *Resolver) Clear(ctx context.Context, week, adminID string) (int64, error) {
	if adminID == "" {
		return 0, ErrUnauthorized
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cleared, err := r.winners.ClearWeek(ctx, week)
	if err != nil {
		return 0, err
	}
	if cleared > 0 {
		slog.Info("winners cleared", "week", week, "cleared", cleared, "admin_id", adminID)
	}
	return cleared, nil
}

func (r *Resolver) notify(ctx context.Context, records []models.WinnerRecord) {
	for _, rec := range records {
		if err := r.notifier.WinnerDecided(ctx, rec); err != nil {
			// Best-effort only; the decision is already durable.
			slog.Error("winner notification failed",
				"error", err,
				"week", rec.Week,
				"candidate_id", rec.CandidateID,
			)
		}
	}
}
