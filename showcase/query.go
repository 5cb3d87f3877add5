// Copyright (c) 2026 Bentofolio.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package showcase

import (
	"context"
	"time"

	"github.com/bentofolio/showcase-api/models"
	"github.com/bentofolio/showcase-api/weekclock"
)

// QueryService composes the stores and the tally into the read model the
// UI consumes. Read-only; safe under arbitrary concurrency.
type QueryService struct {
	nominations   *NominationStore
	winners       *WinnerStore
	finalistLimit int
}

func NewQueryService(nominations *NominationStore, winners *WinnerStore, finalistLimit int) *QueryService {
	if finalistLimit <= 0 {
		finalistLimit = 5
	}
	return &QueryService{
		nominations:   nominations,
		winners:       winners,
		finalistLimit: finalistLimit,
	}
}

// GetShowcase builds the {week, winners, finalists} read model.
//
// With requestedWeek empty, winners come from the most recently decided
// week (falling back to the current week when nothing was ever decided)
// while finalists always reflect the current, live cycle - the two weeks
// intentionally differ. An explicit requestedWeek scopes both to that week.
func (q *QueryService) GetShowcase(ctx context.Context, requestedWeek string, now time.Time) (models.Showcase, error) {
	currentWeek := weekclock.WeekOf(now)

	finalistsWeek := requestedWeek
	winnersWeek := requestedWeek
	if requestedWeek == "" {
		finalistsWeek = currentWeek
		latest, err := q.winners.LatestDecidedWeek(ctx)
		if err != nil {
			return models.Showcase{}, err
		}
		winnersWeek = latest
		if winnersWeek == "" {
			winnersWeek = currentWeek
		}
	}

	winners, err := q.winners.WinnersForWeek(ctx, winnersWeek)
	if err != nil {
		return models.Showcase{}, err
	}

	noms, err := q.nominations.ListForWeek(ctx, finalistsWeek)
	if err != nil {
		return models.Showcase{}, err
	}

	return models.Showcase{
		Week:        finalistsWeek,
		WinnersWeek: winnersWeek,
		Winners:     winners,
		Finalists:   TopFinalists(noms, q.finalistLimit),
	}, nil
}
