package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Trail is a trail definition: a named route with a base duration and the
// roster of creatures currently out on it.
type Trail struct {
	ID           uuid.UUID
	Title        string
	BuffedTypes  []CreatureType
	BaseDuration time.Duration
	Roster       []uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Slug returns the URL form of the trail title.
func (t *Trail) Slug() string { return TrailSlug(t.Title) }

// EffectiveDuration scales the base duration down by the trail multiplier.
// Multipliers below 1 are treated as 1.
func (t *Trail) EffectiveDuration(trailMulti int) time.Duration {
	return t.BaseDuration / time.Duration(atLeastOne(trailMulti))
}

// TrailUpdateParams holds optional fields for editing a trail. Nil means
// "leave unchanged". The title is immutable.
type TrailUpdateParams struct {
	BuffedTypes  *[]CreatureType
	BaseDuration *time.Duration
}

// EventEffect is the reward attached to a trail event key. All deltas are
// non-negative.
type EventEffect struct {
	Currency  int64
	Vouchers  int
	Happiness int
}

// TrailLogTimeLayout is the timestamp layout of a serialized log entry,
// e.g. "07/March/2024 14:05:09". Always UTC.
const TrailLogTimeLayout = "02/January/2006 15:04:05"

// TrailLogEntry is one pre-generated trail event.
type TrailLogEntry struct {
	ScheduledAt time.Time
	EventKey    string
}

// String serializes the entry as "<timestamp>\n<eventKey>".
func (e TrailLogEntry) String() string {
	return e.ScheduledAt.UTC().Format(TrailLogTimeLayout) + "\n" + e.EventKey
}

// VisibleAt reports whether the event has happened by now.
func (e TrailLogEntry) VisibleAt(now time.Time) bool {
	return !e.ScheduledAt.After(now)
}

// ParseTrailLogEntry parses the "<timestamp>\n<eventKey>" form produced by String.
func ParseTrailLogEntry(s string) (TrailLogEntry, error) {
	ts, key, ok := strings.Cut(s, "\n")
	if !ok || key == "" {
		return TrailLogEntry{}, fmt.Errorf("trail log entry %q: missing event key", s)
	}

	at, err := time.ParseInLocation(TrailLogTimeLayout, ts, time.UTC)
	if err != nil {
		return TrailLogEntry{}, fmt.Errorf("trail log entry %q: %w", s, err)
	}

	return TrailLogEntry{ScheduledAt: at, EventKey: key}, nil
}

// TrailAssignment is the trail state of a creature that is out on a trail.
type TrailAssignment struct {
	TrailID    uuid.UUID
	TrailTitle string
	StartedAt  time.Time
	Duration   time.Duration
	FinishesAt time.Time
	Log        []TrailLogEntry
}

// Remaining returns the time left until the trail finishes. It may be negative.
func (a *TrailAssignment) Remaining(now time.Time) time.Duration {
	return a.FinishesAt.Sub(now)
}

// Done reports whether the trail duration has fully elapsed.
func (a *TrailAssignment) Done(now time.Time) bool {
	return a.Remaining(now) <= 0
}

// VisibleLog returns the entries scheduled at or before now, in log order.
func (a *TrailAssignment) VisibleLog(now time.Time) []TrailLogEntry {
	visible := make([]TrailLogEntry, 0, len(a.Log))
	for _, e := range a.Log {
		if e.VisibleAt(now) {
			visible = append(visible, e)
		}
	}
	return visible
}
