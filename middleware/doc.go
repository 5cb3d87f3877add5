// Copyright (c) 2026 Bentofolio.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP helpers shared by all handlers.

# Logging

WithLogging wraps a handler with start/complete slog entries including
method, path, client IP, and duration.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, payload)
	middleware.ErrorResponse(w, http.StatusBadRequest, "candidate_id is required")
	middleware.ConflictResponse(w, msg, existingCandidateID)
	middleware.ParseJSONBody(r, &req)

ConflictResponse is the 409 shape for nomination conflicts; it carries
existing_candidate_id so the client can render the confirm-swap dialog.

# CORS

CORS allows cross-origin requests from the profile-builder frontend and
answers preflight requests. The identity headers (X-Voter-Id, X-Admin-Id,
X-Admin-Key) are explicitly allowed.

# Client IP

GetClientIP resolves the caller address through X-Forwarded-For and
X-Real-IP before falling back to RemoteAddr; used for request logging only.
*/
package middleware
