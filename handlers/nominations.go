// Copyright (c) 2026 Bentofolio.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/bentofolio/showcase-api/metrics"
	"github.com/bentofolio/showcase-api/middleware"
	"github.com/bentofolio/showcase-api/models"
	"github.com/bentofolio/showcase-api/showcase"
	"github.com/bentofolio/showcase-api/weekclock"
)

type NominationHandler struct {
	store *showcase.NominationStore
	m     *metrics.Metrics
}

func NewNominationHandler(store *showcase.NominationStore, m *metrics.Metrics) *NominationHandler {
	return &NominationHandler{store: store, m: m}
}

// voterID extracts the pre-authenticated voter identity forwarded by the
// gateway. An empty header means the request never passed auth.
func voterID(r *http.Request) string {
	return r.Header.Get("X-Voter-Id")
}

// Nominate handles POST /nominations
func (h *NominationHandler) Nominate(w http.ResponseWriter, r *http.Request) {
	voter := voterID(r)
	if voter == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Voter-Id header required")
		return
	}

	var req models.NominateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.CandidateID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "candidate_id is required")
		return
	}

	nom, err := h.store.Nominate(r.Context(), voter, req.CandidateID, time.Now(), req.Override)
	if err != nil {
		if _, ok := err.(*showcase.AlreadyNominatedError); ok {
			h.m.ObserveNomination(metrics.OutcomeConflict)
		} else {
			h.m.ObserveNomination(metrics.OutcomeRejected)
		}
		writeDomainError(w, err)
		return
	}

	outcome := metrics.OutcomeAccepted
	if req.Override {
		outcome = metrics.OutcomeReplaced
	}
	h.m.ObserveNomination(outcome)

	slog.Info("nomination recorded",
		"voter_id", voter,
		"candidate_id", nom.CandidateID,
		"week", nom.Week,
		"override", req.Override,
	)

	middleware.JSONResponse(w, http.StatusCreated, models.NominateResponse{Nomination: nom})
}

// Withdraw handles POST /nominations/withdraw
func (h *NominationHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	voter := voterID(r)
	if voter == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Voter-Id header required")
		return
	}

	var req models.WithdrawRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.CandidateID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "candidate_id is required")
		return
	}

	if err := h.store.Withdraw(r.Context(), voter, req.CandidateID, time.Now()); err != nil {
		writeDomainError(w, err)
		return
	}

	h.m.WithdrawalsTotal.Inc()
	slog.Info("nomination withdrawn", "voter_id", voter, "candidate_id", req.CandidateID)

	w.WriteHeader(http.StatusNoContent)
}

// GetMine handles GET /nominations/me
// Returns the voter's active nomination for the current week, null if none.
// Drives both the "you nominated X" display and the override confirmation.
func (h *NominationHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	voter := voterID(r)
	if voter == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Voter-Id header required")
		return
	}

	week := weekclock.WeekOf(time.Now())
	nom, err := h.store.ActiveNomination(r.Context(), voter, week)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ActiveNominationResponse{
		Week:       week,
		Nomination: nom,
	})
}
