// Copyright (c) 2026 Bentofolio.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package showcase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
)

var (
	// ErrSelfNomination rejects a voter nominating their own profile.
	ErrSelfNomination = errors.New("voters cannot nominate themselves")

	// ErrAlreadyDecided means a winner set already exists for the week.
	// It is an expected outcome for the second of two racing resolutions,
	// not a failure.
	ErrAlreadyDecided = errors.New("winner already decided for week")

	// ErrNoNominations means the week's tally is empty.
	ErrNoNominations = errors.New("no nominations for week")

	// ErrUnauthorized means the caller did not present an administrator
	// identity for an admin-only transition.
	ErrUnauthorized = errors.New("administrator identity required")
)

// errMissingID guards against blank identifiers reaching the database;
// the gateway should never let these through.
var errMissingID = errors.New("voter and candidate ids are required")

// AlreadyNominatedError reports that the voter already holds an active
// nomination for a different candidate this week. It carries the existing
// choice so the caller can drive a confirm-swap flow and retry with
// override set.
type AlreadyNominatedError struct {
	ExistingCandidateID string
}

func (e *AlreadyNominatedError) Error() string {
	return fmt.Sprintf("already nominated %s this week", e.ExistingCandidateID)
}

// StorageError wraps an underlying persistence failure. Constraint
// violations never surface as StorageError; they are translated to the
// typed errors above at the store seam.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *StorageError) Unwrap() error { return e.Err }

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// isUniqueViolation reports whether err is a uniqueness-constraint failure
// from either supported driver: pq error code 23505, or the SQLite
// constraint message.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
