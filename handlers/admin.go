// Copyright (c) 2026 Bentofolio.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/bentofolio/showcase-api/auth"
	"github.com/bentofolio/showcase-api/cliparse"
	"github.com/bentofolio/showcase-api/metrics"
	"github.com/bentofolio/showcase-api/middleware"
	"github.com/bentofolio/showcase-api/models"
	"github.com/bentofolio/showcase-api/showcase"
	"github.com/bentofolio/showcase-api/weekclock"
)

type AdminHandler struct {
	resolver *showcase.Resolver
	cfg      cliparse.Config
	m        *metrics.Metrics
}

func NewAdminHandler(resolver *showcase.Resolver, cfg cliparse.Config, m *metrics.Metrics) *AdminHandler {
	return &AdminHandler{resolver: resolver, cfg: cfg, m: m}
}

// authenticate validates the X-Admin-Id / X-Admin-Key pair and returns the
// admin identity. Writes the 401 itself so callers just bail on !ok.
func (h *AdminHandler) authenticate(w http.ResponseWriter, r *http.Request) (string, bool) {
	adminID := r.Header.Get("X-Admin-Id")
	adminKey := r.Header.Get("X-Admin-Key")
	if adminID == "" || adminKey == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "X-Admin-Id and X-Admin-Key headers required")
		return "", false
	}
	if err := auth.ValidateAdminKey(adminID, adminKey, h.cfg.AdminKeySalt); err != nil {
		slog.Warn("admin key rejected", "admin_id", adminID, "remote", middleware.GetClientIP(r))
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return "", false
	}
	return adminID, true
}

// Resolve handles POST /admin/resolve
// Decides a week from its tally. The scheduled job calls this with an empty
// body; the week then defaults to the most recently closed one, so the live
// cycle is never resolved mid-week.
func (h *AdminHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	adminID, ok := h.authenticate(w, r)
	if !ok {
		return
	}

	var req models.ResolveRequest
	if r.ContentLength != 0 {
		if err := middleware.ParseJSONBody(r, &req); err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
			return
		}
	}

	now := time.Now()
	week := req.Week
	if week == "" {
		var err error
		week, err = weekclock.Previous(weekclock.WeekOf(now))
		if err != nil {
			slog.Error("failed to derive previous week", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to resolve week")
			return
		}
	} else if _, _, err := weekclock.Parse(week); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "week must be formatted YYYY-Www")
		return
	}

	records, err := h.resolver.ResolveAutomatic(r.Context(), week, now)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	h.m.ObserveResolution(metrics.ModeAuto)
	slog.Info("week resolved", "week", week, "winners", len(records), "admin_id", adminID)

	middleware.JSONResponse(w, http.StatusCreated, models.ResolveResponse{
		Week:    week,
		Winners: records,
	})
}

// SetWinner handles POST /admin/winners
// Administrator override: atomically replaces the week's winner set with
// the explicit pick.
func (h *AdminHandler) SetWinner(w http.ResponseWriter, r *http.Request) {
	adminID, ok := h.authenticate(w, r)
	if !ok {
		return
	}

	var req models.SetWinnerRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.CandidateID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "candidate_id is required")
		return
	}
	if _, _, err := weekclock.Parse(req.Week); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "week must be formatted YYYY-Www")
		return
	}

	rec, err := h.resolver.ResolveManual(r.Context(), req.Week, req.CandidateID, adminID, time.Now())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	h.m.ObserveResolution(metrics.ModeManual)
	slog.Info("winner set manually", "week", rec.Week, "candidate_id", rec.CandidateID, "admin_id", adminID)

	middleware.JSONResponse(w, http.StatusCreated, models.ResolveResponse{
		Week:    rec.Week,
		Winners: []models.WinnerRecord{rec},
	})
}

// ClearWinners handles POST /admin/winners/clear
// Explicit Decided → Open transition; required before a week can be
// automatically re-resolved.
func (h *AdminHandler) ClearWinners(w http.ResponseWriter, r *http.Request) {
	adminID, ok := h.authenticate(w, r)
	if !ok {
		return
	}

	var req models.ClearWinnersRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if _, _, err := weekclock.Parse(req.Week); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "week must be formatted YYYY-Www")
		return
	}

	cleared, err := h.resolver.Clear(r.Context(), req.Week, adminID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	h.m.ObserveResolution(metrics.ModeClear)

	middleware.JSONResponse(w, http.StatusOK, models.ClearWinnersResponse{
		Week:    req.Week,
		Cleared: cleared,
	})
}
