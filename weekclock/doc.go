// Copyright (c) 2026 Bentofolio.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package weekclock converts instants to canonical showcase week identifiers
and back. It is the single source of truth for what "week" means across the
showcase cycle.

# Week Rule

One rule everywhere: ISO-8601 week numbering. Weeks start Monday 00:00 UTC;
the year component is the year of the Thursday in that week. Identifiers are
formatted "YYYY-Www":

	weekclock.WeekOf(time.Date(2024, 3, 6, 12, 0, 0, 0, time.UTC)) // "2024-W10"

Identifiers sort lexically in chronological order, so the database can ORDER
BY week without parsing.

# Boundaries

BoundsOf is the inverse mapping, used to scope queries and to decide whether
a week has closed:

	start, end, err := weekclock.BoundsOf("2024-W10") // [Mar 4, Mar 11)

Boundaries are contiguous and non-overlapping, including the year-end
roll-over (week 52/53 hands off to week 1 of the next ISO year with no gap).

All functions are pure; nothing in this package reads the wall clock.
*/
package weekclock
