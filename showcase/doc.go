// Copyright (c) 2026 Bentofolio.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package showcase implements the weekly builder showcase cycle: nominations,
tally, winner resolution, and the public read model.

# Pieces

  - NominationStore: one active nomination per (voter, week), atomic
    override swap, withdrawal
  - Tally / TopFinalists: pure, deterministic ranking with an
    earliest-first tie-break
  - Resolver: the single Open → Decided transition per week, automatic
    (from the tally, all tied leaders win) or manual (admin pick, atomic
    replace), plus the explicit Clear back to Open
  - QueryService: composes the above into {week, winners, finalists}
  - WinnerNotifier: best-effort seam to the external notification system

# Time

Nothing below main reads the wall clock. Every operation takes an explicit
now and derives the week through weekclock, so behavior is reproducible in
tests without clock mocking.

# Concurrency

The only contended keys are (voter_id, week) for nominations and week for
winners. Both invariants are pushed down to database UNIQUE constraints;
violations come back as the typed errors in errors.go (AlreadyNominatedError,
ErrAlreadyDecided), which are expected user-visible outcomes rather than
failures. The resolver additionally serializes decisions behind a mutex so
a manual replace can never interleave with an automatic resolution.

# Errors

ErrSelfNomination, AlreadyNominatedError, ErrAlreadyDecided,
ErrNoNominations, ErrUnauthorized, and StorageError for anything the
persistence layer throws that is not a constraint outcome. Raw driver
errors never cross this package's boundary.
*/
package showcase
