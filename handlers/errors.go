// Copyright (c) 2026 Bentofolio.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bentofolio/showcase-api/middleware"
	"github.com/bentofolio/showcase-api/showcase"
)

// writeDomainError maps the showcase error taxonomy onto HTTP statuses.
// Conflict outcomes (already nominated, already decided) are expected
// user-visible results that drive confirmation UI, so they respond 409
// without being logged as errors.
func writeDomainError(w http.ResponseWriter, err error) {
	var nominated *showcase.AlreadyNominatedError
	switch {
	case errors.Is(err, showcase.ErrSelfNomination):
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "You cannot nominate your own profile")
	case errors.As(err, &nominated):
		middleware.ConflictResponse(w, "You already have an active nomination this week", nominated.ExistingCandidateID)
	case errors.Is(err, showcase.ErrAlreadyDecided):
		middleware.ErrorResponse(w, http.StatusConflict, "A winner is already decided for this week")
	case errors.Is(err, showcase.ErrNoNominations):
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "No nominations exist for this week")
	case errors.Is(err, showcase.ErrUnauthorized):
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Administrator identity required")
	default:
		slog.Error("showcase operation failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}
