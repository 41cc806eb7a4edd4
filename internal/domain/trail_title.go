package domain

import (
	"strings"
	"time"
)

// Known trail titles.
const (
	TrailTitleWild   = "Wild Trail"
	TrailTitleRocky  = "Rocky Trail"
	TrailTitleWet    = "Wet Trail"
	TrailTitleFrosty = "Frosty Trail"
)

// EventRange bounds how many events a single run of a trail produces.
type EventRange struct {
	Min int
	Max int
}

type trailKind struct {
	title    string
	events   EventRange
	duration time.Duration
	buffed   []CreatureType
}

// trailKinds is keyed by slug.
var trailKinds = map[string]trailKind{
	"wildtrail": {
		title:    TrailTitleWild,
		events:   EventRange{Min: 1, Max: 3},
		duration: time.Hour,
		buffed:   []CreatureType{CreatureTypeNormal, CreatureTypeGrass, CreatureTypeBug},
	},
	"rockytrail": {
		title:    TrailTitleRocky,
		events:   EventRange{Min: 2, Max: 4},
		duration: 2 * time.Hour,
		buffed:   []CreatureType{CreatureTypeRock, CreatureTypeGround, CreatureTypeFighting},
	},
	"wettrail": {
		title:    TrailTitleWet,
		events:   EventRange{Min: 2, Max: 5},
		duration: 3 * time.Hour,
		buffed:   []CreatureType{CreatureTypeWater, CreatureTypeElectric},
	},
	"frostytrail": {
		title:    TrailTitleFrosty,
		events:   EventRange{Min: 3, Max: 6},
		duration: 4 * time.Hour,
		buffed:   []CreatureType{CreatureTypeIce, CreatureTypeSteel},
	},
}

var trailSlugOrder = []string{"wildtrail", "rockytrail", "wettrail", "frostytrail"}

// DefaultTrails returns the starter definition of every known trail, in
// ascending length. IDs and timestamps are left zero.
func DefaultTrails() []Trail {
	out := make([]Trail, 0, len(trailSlugOrder))
	for _, slug := range trailSlugOrder {
		k := trailKinds[slug]
		out = append(out, Trail{
			Title:        k.title,
			BuffedTypes:  append([]CreatureType(nil), k.buffed...),
			BaseDuration: k.duration,
		})
	}
	return out
}

// TrailSlug converts a display title to its URL slug ("Wet Trail" -> "wettrail").
func TrailSlug(title string) string {
	return strings.ToLower(strings.Join(strings.Fields(title), ""))
}

// TrailTitleFromSlug maps a URL slug to its display title. The second result
// is false for unrecognized slugs.
func TrailTitleFromSlug(slug string) (string, bool) {
	k, ok := trailKinds[strings.ToLower(strings.TrimSpace(slug))]
	if !ok {
		return "", false
	}
	return k.title, true
}

// ResolveTrailTitle accepts either a slug or a display title and returns the
// display title. Unrecognized input is returned trimmed and unchanged.
func ResolveTrailTitle(s string) string {
	s = strings.TrimSpace(s)
	if title, ok := TrailTitleFromSlug(TrailSlug(s)); ok {
		return title
	}
	return s
}

// IsKnownTrailTitle reports whether title is one of the known trail titles.
func IsKnownTrailTitle(title string) bool {
	k, ok := trailKinds[TrailSlug(title)]
	return ok && k.title == title
}

// EventRangeFor returns the event count range for a trail title.
func EventRangeFor(title string) (EventRange, bool) {
	k, ok := trailKinds[TrailSlug(title)]
	if !ok || k.title != title {
		return EventRange{}, false
	}
	return k.events, true
}
