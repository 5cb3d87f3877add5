// Copyright (c) 2026 Bentofolio.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/bentofolio/showcase-api/auth"
	"github.com/bentofolio/showcase-api/cliparse"
	schema "github.com/bentofolio/showcase-api/db"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full
// schema. Hermetic: no running database server is required. A single
// connection keeps the in-memory store alive and serializes writers the
// way the production sqlite config does.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	db.SetMaxOpenConns(1)

	if err := schema.CreateSchema(db); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3324,
		DatabaseURL:   ":memory:",
		DatabaseType:  "sqlite",
		AdminKeySalt:  "test-admin-salt",
		FinalistLimit: 5,
	}
}

// TestAdminKey derives the admin key the test config accepts for adminID.
func TestAdminKey(adminID string) string {
	return auth.GenerateAdminKey(adminID, GetTestConfig().AdminKeySalt)
}

// SeedNomination inserts a nomination row directly and returns its id.
func SeedNomination(t *testing.T, db *sql.DB, voterID, candidateID, week string, createdAt time.Time) string {
	t.Helper()

	id := uuid.NewString()
	_, err := db.Exec(`
		INSERT INTO nomination (id, voter_id, candidate_id, week, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, id, voterID, candidateID, week, createdAt.UTC())
	if err != nil {
		t.Fatalf("Failed to seed nomination: %v", err)
	}

	return id
}

// SeedWinner inserts a winner row directly and returns its id.
func SeedWinner(t *testing.T, db *sql.DB, candidateID, week, decidedBy string, decidedAt time.Time) string {
	t.Helper()

	id := uuid.NewString()
	_, err := db.Exec(`
		INSERT INTO winner (id, candidate_id, week, decided_at, decided_by)
		VALUES ($1, $2, $3, $4, $5)
	`, id, candidateID, week, decidedAt.UTC(), decidedBy)
	if err != nil {
		t.Fatalf("Failed to seed winner: %v", err)
	}

	return id
}

// CountRows returns the number of rows in table matching week.
func CountRows(t *testing.T, db *sql.DB, table, week string) int {
	t.Helper()

	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM `+table+` WHERE week = $1`, week).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s rows: %v", table, err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
