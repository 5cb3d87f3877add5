// Copyright (c) 2026 Bentofolio.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - NominateRequest: candidate_id, override
  - WithdrawRequest: candidate_id
  - ResolveRequest: week (optional, defaults to the last closed week)
  - SetWinnerRequest: week, candidate_id
  - ClearWinnersRequest: week

# Response Types

Types for JSON responses:

  - NominateResponse: nomination
  - ActiveNominationResponse: week, nomination (null when none)
  - ResolveResponse: week, winners
  - ClearWinnersResponse: week, cleared
  - ErrorResponse: error, message, existing_candidate_id

ErrorResponse.ExistingCandidateID is set only on nomination conflicts; the
client uses it to render the "replace your nomination of X?" confirmation.

# Domain Types

  - Nomination: one voter's active pick for a week
  - WinnerRecord: immutable winner fact, possibly several per week on a tie
  - Finalist: derived (candidate_id, count) ranking entry, never persisted
  - Showcase: the public read model {week, winners_week, winners, finalists}

Candidate and voter identifiers are opaque references to profiles owned by
the surrounding system; nothing here dereferences them.

# Constants

	DecidedByAuto = "auto"
*/
package models
