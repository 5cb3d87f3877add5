// Copyright (c) 2026 Bentofolio.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the showcase API.

# Handler Types

Each handler is a struct wrapping its domain service plus metrics:

  - NominationHandler: nominate, withdraw, my-nomination
  - AdminHandler: resolution, manual winner, clear
  - ShowcaseHandler: the public read model

Handlers are created via constructors in router.NewRouter.

# Voting Flow

Voter identity arrives pre-authenticated in the X-Voter-Id header (the
platform gateway owns sessions; this service never sees credentials).

	POST /nominations          → Nominate {candidate_id, override}
	POST /nominations/withdraw → Withdraw {candidate_id}
	GET  /nominations/me       → GetMine

Nominating while a different candidate is active returns 409 with
existing_candidate_id; the client confirms with the voter and retries with
override=true. This two-phase shape is deliberate - a vote is never swapped
silently.

# Admin Flow

Admin operations require X-Admin-Id plus the HMAC X-Admin-Key:

	POST /admin/resolve       → Resolve {week?} (scheduled job entry point)
	POST /admin/winners       → SetWinner {week, candidate_id}
	POST /admin/winners/clear → ClearWinners {week}

Resolve with no week defaults to the most recently closed week.

# Error Mapping

writeDomainError translates the showcase error taxonomy: self-nomination
and empty-tally → 422, nomination/decision conflicts → 409, missing or bad
identity → 401, anything from storage → 500. Conflicts are expected
outcomes and are not logged as errors.
*/
package handlers
