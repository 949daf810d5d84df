package rate

import (
	"time"

	"vesrates/internal/domain"
)

// StaleThreshold is how old the last write may be before the rate is
// considered stale, regardless of its calendar date.
const StaleThreshold = 4 * time.Hour

// EvaluateStatus computes staleness and "has a rate for today" from the
// latest stored entry. Pure, no I/O; shared by the HTTP surface and the
// client poller so the two can never disagree.
func EvaluateStatus(latest *domain.RateEntry, now time.Time) domain.RateStatus {
	if latest == nil {
		return domain.RateStatus{IsStale: true}
	}

	rate := latest.Rate
	lastUpdate := latest.CreatedAt
	return domain.RateStatus{
		HasRateToday: sameDay(latest.AsOfDate, now),
		IsStale:      now.Sub(latest.CreatedAt) > StaleThreshold,
		Rate:         &rate,
		Source:       latest.Source,
		LastUpdate:   &lastUpdate,
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
