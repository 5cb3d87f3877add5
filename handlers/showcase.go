// Copyright (c) 2026 Bentofolio.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"time"

	"github.com/bentofolio/showcase-api/metrics"
	"github.com/bentofolio/showcase-api/middleware"
	"github.com/bentofolio/showcase-api/showcase"
	"github.com/bentofolio/showcase-api/weekclock"
)

type ShowcaseHandler struct {
	query *showcase.QueryService
	m     *metrics.Metrics
}

func NewShowcaseHandler(query *showcase.QueryService, m *metrics.Metrics) *ShowcaseHandler {
	return &ShowcaseHandler{query: query, m: m}
}

// GetShowcase handles GET /showcase
// Public read model. Without ?week the winners look back at the last
// decided cycle while the finalists reflect the live one; an explicit
// ?week=YYYY-Www scopes both.
func (h *ShowcaseHandler) GetShowcase(w http.ResponseWriter, r *http.Request) {
	week := r.URL.Query().Get("week")
	if week != "" {
		if _, _, err := weekclock.Parse(week); err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "week must be formatted YYYY-Www")
			return
		}
	}

	start := time.Now()
	sc, err := h.query.GetShowcase(r.Context(), week, start)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	h.m.ObserveShowcaseRead(start)

	middleware.JSONResponse(w, http.StatusOK, sc)
}
