// Copyright (c) 2026 Bentofolio.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package showcase

import (
	"sort"
	"time"

	"github.com/bentofolio/showcase-api/models"
)

// Tally ranks candidates by nomination count, descending. Ties are broken
// by the earliest created_at among the candidate's nominations (first to
// reach the count wins), then by lexical candidate id so the ordering is
// fully deterministic and independent of input order.
//
// Pure function; recomputed on every read, never persisted.
func Tally(noms []models.Nomination) []models.Finalist {
	type entry struct {
		count    int
		earliest time.Time
	}
	byCandidate := make(map[string]*entry)
	for _, nom := range noms {
		e := byCandidate[nom.CandidateID]
		if e == nil {
			e = &entry{earliest: nom.CreatedAt}
			byCandidate[nom.CandidateID] = e
		}
		e.count++
		if nom.CreatedAt.Before(e.earliest) {
			e.earliest = nom.CreatedAt
		}
	}

	ids := make([]string, 0, len(byCandidate))
	for id := range byCandidate {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := byCandidate[ids[i]], byCandidate[ids[j]]
		if a.count != b.count {
			return a.count > b.count
		}
		if !a.earliest.Equal(b.earliest) {
			return a.earliest.Before(b.earliest)
		}
		return ids[i] < ids[j]
	})

	finalists := make([]models.Finalist, len(ids))
	for i, id := range ids {
		finalists[i] = models.Finalist{CandidateID: id, Count: byCandidate[id].count}
	}
	return finalists
}

// TopFinalists is Tally truncated to the public finalist list. The full,
// untruncated ranking is what the resolver consumes so tied leaders are
// never cut off.
func TopFinalists(noms []models.Nomination, limit int) []models.Finalist {
	finalists := Tally(noms)
	if limit > 0 && len(finalists) > limit {
		finalists = finalists[:limit]
	}
	return finalists
}

// leaders returns the prefix of the ranking tied at the top count.
func leaders(finalists []models.Finalist) []models.Finalist {
	if len(finalists) == 0 {
		return nil
	}
	top := finalists[0].Count
	n := 0
	for n < len(finalists) && finalists[n].Count == top {
		n++
	}
	return finalists[:n]
}
