// Copyright (c) 2026 Bentofolio.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// DecidedBy value for winners resolved from the tally rather than an admin pick.
const DecidedByAuto = "auto"

// Request types

type NominateRequest struct {
	CandidateID string `json:"candidate_id"`
	Override    bool   `json:"override"`
}

type WithdrawRequest struct {
	CandidateID string `json:"candidate_id"`
}

type ResolveRequest struct {
	Week string `json:"week,omitempty"`
}

type SetWinnerRequest struct {
	Week        string `json:"week"`
	CandidateID string `json:"candidate_id"`
}

type ClearWinnersRequest struct {
	Week string `json:"week"`
}

// Response types

type NominateResponse struct {
	Nomination Nomination `json:"nomination"`
}

type ActiveNominationResponse struct {
	Week       string      `json:"week"`
	Nomination *Nomination `json:"nomination"`
}

type ResolveResponse struct {
	Week    string         `json:"week"`
	Winners []WinnerRecord `json:"winners"`
}

type ClearWinnersResponse struct {
	Week    string `json:"week"`
	Cleared int64  `json:"cleared"`
}

// Domain types

// Nomination is one voter's current pick of a candidate for a given week.
// At most one row exists per (voter_id, week); overriding replaces the row.
type Nomination struct {
	ID          string    `json:"id"`
	VoterID     string    `json:"voter_id"`
	CandidateID string    `json:"candidate_id"`
	Week        string    `json:"week"`
	CreatedAt   time.Time `json:"created_at"`
}

// WinnerRecord is a durable "candidate C won week W" fact. A week may carry
// several records when the top of the tally is tied.
type WinnerRecord struct {
	ID          string    `json:"id"`
	CandidateID string    `json:"candidate_id"`
	Week        string    `json:"week"`
	DecidedAt   time.Time `json:"decided_at"`
	DecidedBy   string    `json:"decided_by"`
}

// Finalist is derived from nominations on every read; never persisted.
type Finalist struct {
	CandidateID string `json:"candidate_id"`
	Count       int    `json:"count"`
}

// Showcase is the read model consumed by the UI layer. Week scopes the
// finalists; WinnersWeek scopes the winners and may lag behind Week (winners
// look backward at the last decided cycle, finalists at the live one).
type Showcase struct {
	Week        string         `json:"week"`
	WinnersWeek string         `json:"winners_week"`
	Winners     []WinnerRecord `json:"winners"`
	Finalists   []Finalist     `json:"finalists"`
}

// Error response

type ErrorResponse struct {
	Error               string `json:"error"`
	Message             string `json:"message,omitempty"`
	ExistingCandidateID string `json:"existing_candidate_id,omitempty"`
}
