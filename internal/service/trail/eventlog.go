package trail

import (
	"slices"
	"time"

	"github.com/heartmarshall/pokeranch-backend/internal/domain"
)

// fallbackEvents is used for trails whose title has no event range.
var fallbackEvents = domain.EventRange{Min: 1, Max: 3}

// generateLog pre-computes the events of one trail run: a count drawn from
// events, instants drawn uniformly in [start, end] at second precision and
// sorted, and a key drawn uniformly from the catalog for each instant.
func generateLog(rng RandSource, catalog *Catalog, events domain.EventRange, start, end time.Time) []domain.TrailLogEntry {
	if catalog.Len() == 0 {
		return []domain.TrailLogEntry{}
	}

	count := events.Min
	if events.Max > events.Min {
		count += rng.IntN(events.Max - events.Min + 1)
	}
	count = max(count, 0)

	lo := start.Truncate(time.Second)
	if lo.Before(start) {
		lo = lo.Add(time.Second)
	}
	// No whole second fits in [start, end]: every event lands on start.
	if lo.After(end) {
		lo = start
	}
	secs := max(int64(end.Truncate(time.Second).Sub(lo)/time.Second), 0)

	instants := make([]time.Time, count)
	for i := range instants {
		instants[i] = lo.Add(time.Duration(rng.Int64N(secs+1)) * time.Second).UTC()
	}
	slices.SortFunc(instants, func(a, b time.Time) int { return a.Compare(b) })

	entries := make([]domain.TrailLogEntry, count)
	for i, at := range instants {
		entries[i] = domain.TrailLogEntry{
			ScheduledAt: at,
			EventKey:    catalog.keyAt(rng.IntN(catalog.Len())),
		}
	}
	return entries
}
