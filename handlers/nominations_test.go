// Copyright (c) 2026 Bentofolio.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/bentofolio/showcase-api/metrics"
	"github.com/bentofolio/showcase-api/models"
	"github.com/bentofolio/showcase-api/showcase"
	"github.com/bentofolio/showcase-api/testutil"
	"github.com/bentofolio/showcase-api/weekclock"
)

func newNominationHandler(t *testing.T) (*NominationHandler, *sql.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	m := metrics.New(prometheus.NewRegistry())
	return NewNominationHandler(showcase.NewNominationStore(db), m), db
}

func TestNominateEndpoint(t *testing.T) {
	handler, _ := newNominationHandler(t)

	req := testutil.MakeRequest("POST", "/nominations",
		models.NominateRequest{CandidateID: "builder-x"},
		map[string]string{"X-Voter-Id": "voter-a"})
	w := httptest.NewRecorder()
	handler.Nominate(w, req)

	testutil.AssertStatus(t, w, 201)

	var resp models.NominateResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Nomination.CandidateID != "builder-x" {
		t.Errorf("Expected candidate builder-x, got %s", resp.Nomination.CandidateID)
	}
	if resp.Nomination.Week != weekclock.WeekOf(time.Now()) {
		t.Errorf("Expected current week, got %s", resp.Nomination.Week)
	}
}

func TestNominateRequiresVoterIdentity(t *testing.T) {
	handler, _ := newNominationHandler(t)

	req := testutil.MakeRequest("POST", "/nominations",
		models.NominateRequest{CandidateID: "builder-x"}, nil)
	w := httptest.NewRecorder()
	handler.Nominate(w, req)

	testutil.AssertStatus(t, w, 401)
}

func TestNominateRequiresCandidate(t *testing.T) {
	handler, _ := newNominationHandler(t)

	req := testutil.MakeRequest("POST", "/nominations",
		models.NominateRequest{},
		map[string]string{"X-Voter-Id": "voter-a"})
	w := httptest.NewRecorder()
	handler.Nominate(w, req)

	testutil.AssertStatus(t, w, 400)
}

func TestNominateRejectsSelfNomination(t *testing.T) {
	handler, _ := newNominationHandler(t)

	req := testutil.MakeRequest("POST", "/nominations",
		models.NominateRequest{CandidateID: "voter-a"},
		map[string]string{"X-Voter-Id": "voter-a"})
	w := httptest.NewRecorder()
	handler.Nominate(w, req)

	testutil.AssertStatus(t, w, 422)
}

func TestNominateConflictCarriesExistingChoice(t *testing.T) {
	handler, _ := newNominationHandler(t)
	headers := map[string]string{"X-Voter-Id": "voter-a"}

	w := httptest.NewRecorder()
	handler.Nominate(w, testutil.MakeRequest("POST", "/nominations",
		models.NominateRequest{CandidateID: "builder-x"}, headers))
	testutil.AssertStatus(t, w, 201)

	// Second pick without override: conflict with the existing choice.
	w = httptest.NewRecorder()
	handler.Nominate(w, testutil.MakeRequest("POST", "/nominations",
		models.NominateRequest{CandidateID: "builder-y"}, headers))
	testutil.AssertStatus(t, w, 409)

	var errResp models.ErrorResponse
	testutil.AssertJSON(t, w, &errResp)
	if errResp.ExistingCandidateID != "builder-x" {
		t.Errorf("Expected existing_candidate_id builder-x, got %q", errResp.ExistingCandidateID)
	}

	// Retry with override: the swap succeeds.
	w = httptest.NewRecorder()
	handler.Nominate(w, testutil.MakeRequest("POST", "/nominations",
		models.NominateRequest{CandidateID: "builder-y", Override: true}, headers))
	testutil.AssertStatus(t, w, 201)

	var resp models.NominateResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Nomination.CandidateID != "builder-y" {
		t.Errorf("Expected candidate builder-y after override, got %s", resp.Nomination.CandidateID)
	}
}

func TestWithdrawEndpoint(t *testing.T) {
	handler, _ := newNominationHandler(t)
	headers := map[string]string{"X-Voter-Id": "voter-a"}

	w := httptest.NewRecorder()
	handler.Nominate(w, testutil.MakeRequest("POST", "/nominations",
		models.NominateRequest{CandidateID: "builder-x"}, headers))
	testutil.AssertStatus(t, w, 201)

	w = httptest.NewRecorder()
	handler.Withdraw(w, testutil.MakeRequest("POST", "/nominations/withdraw",
		models.WithdrawRequest{CandidateID: "builder-x"}, headers))
	testutil.AssertStatus(t, w, 204)

	// Withdrawing again is still a 204, not an error.
	w = httptest.NewRecorder()
	handler.Withdraw(w, testutil.MakeRequest("POST", "/nominations/withdraw",
		models.WithdrawRequest{CandidateID: "builder-x"}, headers))
	testutil.AssertStatus(t, w, 204)
}

func TestGetMineEndpoint(t *testing.T) {
	handler, _ := newNominationHandler(t)
	headers := map[string]string{"X-Voter-Id": "voter-a"}

	// Nothing nominated yet: null nomination, current week.
	w := httptest.NewRecorder()
	handler.GetMine(w, testutil.MakeRequest("GET", "/nominations/me", nil, headers))
	testutil.AssertStatus(t, w, 200)

	var resp models.ActiveNominationResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Nomination != nil {
		t.Errorf("Expected null nomination, got %+v", resp.Nomination)
	}
	if resp.Week != weekclock.WeekOf(time.Now()) {
		t.Errorf("Expected current week, got %s", resp.Week)
	}

	w = httptest.NewRecorder()
	handler.Nominate(w, testutil.MakeRequest("POST", "/nominations",
		models.NominateRequest{CandidateID: "builder-x"}, headers))
	testutil.AssertStatus(t, w, 201)

	w = httptest.NewRecorder()
	handler.GetMine(w, testutil.MakeRequest("GET", "/nominations/me", nil, headers))
	testutil.AssertStatus(t, w, 200)
	testutil.AssertJSON(t, w, &resp)
	if resp.Nomination == nil || resp.Nomination.CandidateID != "builder-x" {
		t.Errorf("Expected active nomination of builder-x, got %+v", resp.Nomination)
	}
}
