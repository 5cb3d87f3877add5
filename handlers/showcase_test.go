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

func newShowcaseHandler(t *testing.T) (*ShowcaseHandler, *sql.DB) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	query := showcase.NewQueryService(showcase.NewNominationStore(db), showcase.NewWinnerStore(db), 5)
	m := metrics.New(prometheus.NewRegistry())
	return NewShowcaseHandler(query, m), db
}

func TestGetShowcaseEndpoint(t *testing.T) {
	handler, db := newShowcaseHandler(t)
	week := weekclock.WeekOf(time.Now())
	seeded := time.Now().UTC().Add(-time.Hour)
	testutil.SeedNomination(t, db, "voter-a", "builder-x", week, seeded)
	testutil.SeedNomination(t, db, "voter-b", "builder-x", week, seeded.Add(time.Minute))
	testutil.SeedNomination(t, db, "voter-c", "builder-y", week, seeded.Add(2*time.Minute))

	w := httptest.NewRecorder()
	handler.GetShowcase(w, testutil.MakeRequest("GET", "/showcase", nil, nil))
	testutil.AssertStatus(t, w, 200)

	var sc models.Showcase
	testutil.AssertJSON(t, w, &sc)
	if sc.Week != week {
		t.Errorf("Expected week %s, got %s", week, sc.Week)
	}
	if len(sc.Finalists) != 2 {
		t.Fatalf("Expected 2 finalists, got %d", len(sc.Finalists))
	}
	if sc.Finalists[0].CandidateID != "builder-x" || sc.Finalists[0].Count != 2 {
		t.Errorf("Expected builder-x leading with 2, got %+v", sc.Finalists[0])
	}
}

func TestGetShowcaseExplicitWeek(t *testing.T) {
	handler, db := newShowcaseHandler(t)
	seeded := time.Date(2024, time.March, 6, 12, 0, 0, 0, time.UTC)
	testutil.SeedNomination(t, db, "voter-a", "builder-x", "2024-W10", seeded)
	testutil.SeedWinner(t, db, "builder-x", "2024-W10", models.DecidedByAuto, seeded.Add(7*24*time.Hour))

	w := httptest.NewRecorder()
	handler.GetShowcase(w, testutil.MakeRequest("GET", "/showcase?week=2024-W10", nil, nil))
	testutil.AssertStatus(t, w, 200)

	var sc models.Showcase
	testutil.AssertJSON(t, w, &sc)
	if sc.Week != "2024-W10" || sc.WinnersWeek != "2024-W10" {
		t.Errorf("Expected both weeks scoped to 2024-W10, got week=%s winners_week=%s", sc.Week, sc.WinnersWeek)
	}
	if len(sc.Winners) != 1 || sc.Winners[0].CandidateID != "builder-x" {
		t.Errorf("Expected winner builder-x, got %+v", sc.Winners)
	}
}

func TestGetShowcaseRejectsMalformedWeek(t *testing.T) {
	handler, _ := newShowcaseHandler(t)

	w := httptest.NewRecorder()
	handler.GetShowcase(w, testutil.MakeRequest("GET", "/showcase?week=10-2024", nil, nil))
	testutil.AssertStatus(t, w, 400)
}

func TestGetShowcaseEmptyShapes(t *testing.T) {
	handler, _ := newShowcaseHandler(t)

	w := httptest.NewRecorder()
	handler.GetShowcase(w, testutil.MakeRequest("GET", "/showcase", nil, nil))
	testutil.AssertStatus(t, w, 200)

	// Empty lists marshal as [], never null.
	body := w.Body.String()
	if body == "" {
		t.Fatal("Expected a response body")
	}
	var sc models.Showcase
	testutil.AssertJSON(t, w, &sc)
	if sc.Winners == nil || sc.Finalists == nil {
		t.Errorf("Expected non-nil winners and finalists, got %+v", sc)
	}
}
