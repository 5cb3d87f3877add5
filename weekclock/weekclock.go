// Copyright (c) 2026 Bentofolio.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package weekclock

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

var ErrInvalidWeekID = errors.New("invalid week identifier")

// WeekOf returns the ISO-8601 week identifier for t, formatted "YYYY-Www".
// The year component is the ISO week-based year, which differs from the
// calendar year near year boundaries. Computed in UTC so the result never
// depends on server timezone.
func WeekOf(t time.Time) string {
	year, week := t.UTC().ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// Current is WeekOf with a name that reads well at call sites that
// contrast it with a stored or requested week.
func Current(now time.Time) string {
	return WeekOf(now)
}

// Parse validates a week identifier and returns its ISO year and week number.
// Rejects malformed strings and week numbers that do not exist in the given
// year (week 53 in a 52-week year).
func Parse(weekID string) (year, week int, err error) {
	if len(weekID) != 8 || weekID[4] != '-' || weekID[5] != 'W' {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidWeekID, weekID)
	}
	year, err = strconv.Atoi(weekID[:4])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidWeekID, weekID)
	}
	week, err = strconv.Atoi(weekID[6:])
	if err != nil || week < 1 || week > 53 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidWeekID, weekID)
	}
	// Round-trip check catches week 53 in years that only have 52.
	if y, w := mondayOf(year, week).ISOWeek(); y != year || w != week {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidWeekID, weekID)
	}
	return year, week, nil
}

// BoundsOf returns the [start, end) UTC interval covered by weekID.
// Start is Monday 00:00:00 UTC; end is the following Monday.
func BoundsOf(weekID string) (start, end time.Time, err error) {
	year, week, err := Parse(weekID)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start = mondayOf(year, week)
	return start, start.AddDate(0, 0, 7), nil
}

// Previous returns the identifier of the week immediately before weekID,
// rolling over year boundaries (2025-W01 → 2024-W52).
func Previous(weekID string) (string, error) {
	start, _, err := BoundsOf(weekID)
	if err != nil {
		return "", err
	}
	return WeekOf(start.AddDate(0, 0, -7)), nil
}

// mondayOf returns Monday 00:00:00 UTC of the given ISO week.
// January 4 always falls within ISO week 1 of its year.
func mondayOf(isoYear, isoWeek int) time.Time {
	jan4 := time.Date(isoYear, time.January, 4, 0, 0, 0, 0, time.UTC)
	wd := int(jan4.Weekday())
	if wd == 0 {
		wd = 7 // Sunday
	}
	week1Monday := jan4.AddDate(0, 0, 1-wd)
	return week1Monday.AddDate(0, 0, (isoWeek-1)*7)
}
